package parser

import (
	"regexp"
	"strings"

	"github.com/coolbeans/vitae/pkg/resume"
)

// gradePattern matches GPA/percentage grade fragments.
var gradePattern = regexp.MustCompile(`(?i)\b(c?gpa|grade|percentage)\s*[:\-]?\s*[\d.]+\s*(/\s*[\d.]+)?|\b[\d.]+\s*%`)

// yearSpanPattern matches a loose year value: "2018 - 2022", "2018-22",
// or a single year.
var yearSpanPattern = regexp.MustCompile(`\b(19|20)\d{2}\s*(-\s*((19|20)?\d{2}|present|current|Present|Current))?`)

// EducationParser converts an education block into EducationEntry
// values: a single pass classifying each line as institution, degree,
// year, or grade, with unmatched lines accumulating into the
// description. A line carrying a signal the current entry already holds
// starts the next entry.
type EducationParser struct{}

// NewEducationParser creates an education section parser.
func NewEducationParser() *EducationParser { return &EducationParser{} }

// Name implements Parser.
func (p *EducationParser) Name() string { return "education" }

// Parse implements Parser.
func (p *EducationParser) Parse(lines []string, doc *resume.ParsedDocument) {
	var current *resume.EducationEntry
	var desc []string

	flush := func() {
		if current == nil {
			return
		}
		if current.Institution != "" || current.Degree != "" {
			current.Description = strings.Join(desc, " ")
			current.ID = len(doc.Education) + 1
			doc.Education = append(doc.Education, *current)
		}
		current = nil
		desc = nil
	}

	for _, line := range lines {
		line = stripBullet(line)
		if line == "" {
			continue
		}

		hasDegree := containsAny(line, degreeKeywords)
		hasInstitution := containsAny(line, institutionKeywords)

		// Entry boundary: the line restates a field the current entry
		// already has.
		if current != nil &&
			((hasDegree && current.Degree != "") ||
				(hasInstitution && current.Institution != "" && !hasDegree)) {
			flush()
		}
		if current == nil {
			current = &resume.EducationEntry{}
		}

		assigned := false
		if hasDegree && current.Degree == "" {
			current.Degree, current.Year = liftYear(line, current.Year)
			assigned = true
		} else if hasInstitution && current.Institution == "" {
			current.Institution, current.Year = liftYear(line, current.Year)
			assigned = true
		}

		if grade := gradePattern.FindString(line); grade != "" && current.Grade == "" {
			current.Grade = strings.TrimSpace(grade)
			if strings.TrimSpace(gradePattern.ReplaceAllString(line, "")) == "" {
				assigned = true
			}
		}

		if !assigned {
			if span := yearSpanPattern.FindString(line); span != "" && current.Year == "" &&
				len(strings.TrimSpace(line)) <= len(span)+6 {
				current.Year = strings.TrimSpace(span)
				continue
			}
			desc = append(desc, line)
		}
	}
	flush()
}

// liftYear pulls a year span out of a field line when the entry does
// not have one yet, returning the cleaned field text and the year.
func liftYear(line, existingYear string) (field, year string) {
	year = existingYear
	span := yearSpanPattern.FindString(line)
	if span != "" && year == "" {
		year = strings.TrimSpace(span)
		line = strings.Replace(line, span, "", 1)
	}
	return strings.Trim(line, " \t,-|()"), year
}
