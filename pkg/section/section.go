// Package section segments normalized resume text into named blocks.
// Classification is purely lexical: a fixed synonym vocabulary plus
// casing and length heuristics decide whether a line is a section
// header, and a two-state walk partitions everything else.
package section

// Name identifies one of the closed set of canonical resume sections.
type Name string

const (
	BasicDetails Name = "basic_details"
	Summary      Name = "summary"
	Objective    Name = "objective"
	Experience   Name = "experience"
	Education    Name = "education"
	Skills       Name = "skills"
	Projects     Name = "projects"
	Activities   Name = "activities"
	Volunteering Name = "volunteering"
	Certificates Name = "certificates"
	Reference    Name = "reference"
)

// CanonicalNames lists every section name in classification priority
// order. Segmentation iterates this slice rather than a map so ties
// between overlapping synonyms resolve the same way on every run.
var CanonicalNames = []Name{
	Summary,
	Objective,
	Experience,
	Education,
	Skills,
	Projects,
	Activities,
	Volunteering,
	Certificates,
	Reference,
}

// Block is a contiguous run of content lines assigned to one section.
// Header is the line that opened the block ("" for the implicit leading
// basic_details block); together Header and Lines account for every
// non-blank line of the original text exactly once.
type Block struct {
	Name   Name
	Header string
	Lines  []string
}
