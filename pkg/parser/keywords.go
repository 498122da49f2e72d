// Package parser converts section blocks into structured resume
// entities. Each section has a specialized parser; a registry keyed by
// canonical section name dispatches blocks to them. All heuristics are
// permissive: a failed guess degrades to an empty field or a
// description line, never an error.
package parser

import (
	"regexp"
	"strings"
)

// jobTitleKeywords mark lines that name a position.
var jobTitleKeywords = []string{
	"engineer", "developer", "programmer", "architect", "scientist",
	"analyst", "consultant", "manager", "director", "lead", "head",
	"officer", "administrator", "specialist", "designer", "intern",
	"trainee", "coordinator", "executive", "founder", "president",
	"technician", "accountant", "associate", "researcher",
}

// companyIndicators mark lines that name an employer.
var companyIndicators = []string{
	"inc", "llc", "ltd", "pvt", "corp", "corporation", "company",
	"co.", "technologies", "technology", "solutions", "systems",
	"labs", "software", "services", "group", "gmbh", "consulting",
	"bank", "agency", "studio", "enterprises",
}

// descriptionVerbs open accomplishment sentences. A line containing one
// is prose, never an entry boundary or a field value.
var descriptionVerbs = []string{
	"developed", "implemented", "built", "created", "designed",
	"managed", "led", "improved", "reduced", "increased", "achieved",
	"collaborated", "maintained", "delivered", "automated", "optimized",
	"launched", "wrote", "migrated", "integrated", "deployed",
	"organized", "conducted", "responsible", "worked",
}

// techTokens identify technology-stack vocabulary, used for tech-stack
// extraction in projects and for summary reclassification.
var techTokens = []string{
	"python", "java", "javascript", "typescript", "golang", "c++", "c#",
	"php", "ruby", "kotlin", "swift", "react", "angular", "vue",
	"node", "django", "flask", "spring", "rails", "flutter",
	"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite",
	"docker", "kubernetes", "aws", "azure", "gcp", "firebase",
	"html", "css", "rest", "graphql", "api", "git", "linux",
	"tensorflow", "pytorch", "pandas", "numpy",
}

// degreeKeywords mark education degree lines.
var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "mba", "diploma",
	"b.tech", "m.tech", "b.sc", "m.sc", "bsc", "msc", "b.e", "m.e",
	"b.a", "m.a", "bca", "mca", "high school", "higher secondary",
	"secondary", "associate degree",
}

// institutionKeywords mark education institution lines.
var institutionKeywords = []string{
	"university", "college", "institute", "school", "academy",
	"polytechnic", "iit", "nit",
}

// proficiencyLevels is the closed set of language proficiency values.
var proficiencyLevels = []string{
	"native", "fluent", "advanced", "intermediate", "basic",
}

var (
	// yearPattern matches a plausible 4-digit year.
	yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	// datePattern matches anything date-like: month-year forms, bare
	// years, numeric dates, and the Present/Current end markers.
	datePattern = regexp.MustCompile(`(?i)\b((jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s*(19|20)?\d{2,4}|(19|20)\d{2}|\d{1,2}[/.]\d{4}|present|current)\b`)

	// dateRangePattern matches a full "start SEP end" span inside a
	// longer line, used to lift dates out of compound lines.
	dateRangePattern = regexp.MustCompile(`(?i)\b((jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s*(19|20)?\d{2,4}|(19|20)\d{2}|\d{1,2}[/.]\d{4})\s*(-|to)\s*((jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s*(19|20)?\d{2,4}|(19|20)\d{2}|\d{1,2}[/.]\d{4}|present|current)`)

	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	urlPattern   = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s|,;]+`)
)

// containsAny reports whether the lowercased line contains any of the
// keywords as a whole word.
func containsAny(line string, keywords []string) bool {
	return matchKeyword(line, keywords) != ""
}

// matchKeyword returns the first keyword found in the line as a whole
// word, or "" when none match. Matching is case-insensitive; keywords
// containing punctuation (like "b.tech") match as plain substrings
// bounded by non-letters.
func matchKeyword(line string, keywords []string) string {
	lowered := strings.ToLower(line)
	for _, kw := range keywords {
		idx := 0
		for {
			pos := strings.Index(lowered[idx:], kw)
			if pos < 0 {
				break
			}
			pos += idx
			end := pos + len(kw)
			beforeOK := pos == 0 || !isWordByte(lowered[pos-1])
			afterOK := end == len(lowered) || !isWordByte(lowered[end])
			if beforeOK && afterOK {
				return kw
			}
			idx = pos + 1
		}
	}
	return ""
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// isShortCapitalizedPhrase reports whether the line is a short
// standalone phrase whose words are capitalized, the shape of a company
// or title line without any other signal.
func isShortCapitalizedPhrase(line string, maxWords int) bool {
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > maxWords {
		return false
	}
	for _, w := range words {
		r := []rune(w)[0]
		if !(r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// stripBullet removes the canonical bullet prefix.
func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, "• "))
}
