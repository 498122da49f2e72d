package parser

import (
	"strings"
)

// lineLabel is the structural role assigned to one experience line.
type lineLabel int

const (
	labelDescription lineLabel = iota
	labelSeparator
	labelPosition
	labelDate
	labelCompany
)

func (l lineLabel) String() string {
	switch l {
	case labelSeparator:
		return "separator"
	case labelPosition:
		return "position"
	case labelDate:
		return "date"
	case labelCompany:
		return "company"
	default:
		return "description"
	}
}

// fieldState tracks which fields of the entry under construction are
// still open; classification consults it so a line is never assigned to
// a field that is already filled.
type fieldState struct {
	hasPosition bool
	hasCompany  bool
	hasDates    bool
}

func (s fieldState) anyOpen() bool {
	return !s.hasPosition || !s.hasCompany || !s.hasDates
}

// scoredLabel is a label with the confidence of the rule that produced
// it. Rules run in a fixed priority order and the first match wins, so
// two rules can never claim the same line.
type scoredLabel struct {
	label lineLabel
	score float64
}

// experienceRules is the ordered classifier chain for experience lines.
// Order encodes priority: separator lines are unambiguous, then
// position, date, and company signals, with description as the final
// fallback.
var experienceRules = []struct {
	label lineLabel
	score float64
	match func(line string, st fieldState) bool
}{
	{labelSeparator, 1.0, func(line string, _ fieldState) bool {
		return strings.Contains(line, "|")
	}},
	{labelPosition, 0.9, func(line string, st fieldState) bool {
		return !st.hasPosition && len(line) <= 60 &&
			containsAny(line, jobTitleKeywords) &&
			!containsAny(line, descriptionVerbs)
	}},
	{labelDate, 0.8, func(line string, st fieldState) bool {
		return !st.hasDates && len(line) <= 40 && datePattern.MatchString(line)
	}},
	{labelCompany, 0.7, func(line string, st fieldState) bool {
		if st.hasCompany {
			return false
		}
		if containsAny(line, companyIndicators) && len(line) <= 60 {
			return true
		}
		return isShortCapitalizedPhrase(line, 5) &&
			!containsAny(line, jobTitleKeywords) &&
			!datePattern.MatchString(line) &&
			!strings.HasPrefix(line, "• ")
	}},
	{labelDescription, 0.5, func(line string, st fieldState) bool {
		return len(line) > 50 || !st.anyOpen()
	}},
}

// classifyExperienceLine runs the classifier chain and returns the
// first matching scored label. Lines nothing claims are description
// with low confidence.
func classifyExperienceLine(line string, st fieldState) scoredLabel {
	for _, rule := range experienceRules {
		if rule.match(line, st) {
			return scoredLabel{label: rule.label, score: rule.score}
		}
	}
	return scoredLabel{label: labelDescription, score: 0.3}
}

// isNewExperienceEntry reports whether a line opens a new entry.
// Boundary detection never fires on prose (description verbs, very
// long lines, bullets); it fires on job vocabulary paired with a year,
// on short employer-shaped lines, and on lines noticeably shorter than
// their predecessor that carry job vocabulary.
func isNewExperienceEntry(line, previous string) bool {
	if len(line) > 100 {
		return false
	}
	if strings.HasPrefix(line, "• ") {
		return false
	}
	if containsAny(line, descriptionVerbs) {
		return false
	}
	if containsAny(line, jobTitleKeywords) && yearPattern.MatchString(line) {
		return true
	}
	if containsAny(line, companyIndicators) && len(line) <= 40 {
		return true
	}
	if previous != "" && len(line)*2 < len(previous) && containsAny(line, jobTitleKeywords) {
		return true
	}
	return false
}
