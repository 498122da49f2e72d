package parser

import (
	"strings"
)

// firstPersonVocabulary marks genuine career-summary prose; its
// presence keeps a summary from being reclassified as project content.
var firstPersonVocabulary = []string{
	"i am", "i have", "my", "me", "years of experience", "passionate",
	"motivated", "enthusiastic", "dedicated", "seeking", "career",
	"professional with",
}

// LooksLikeProjectProse reports whether free text reads like a
// description of built software rather than a career summary:
// technology-stack tokens together with build verbs and no first-person
// summary vocabulary.
func LooksLikeProjectProse(text string) bool {
	lowered := strings.ToLower(text)
	if !containsAny(lowered, techTokens) {
		return false
	}
	if !containsAny(lowered, descriptionVerbs) {
		return false
	}
	return !containsAny(lowered, firstPersonVocabulary)
}

// IsContactLine reports whether a line is contact material: an email
// address, a URL, or a phone-density digit run. Used when deciding
// which part of an unsegmented document is left over after contact
// extraction.
func IsContactLine(line string) bool {
	if emailPattern.MatchString(line) || urlPattern.MatchString(line) {
		return true
	}
	if strings.Contains(strings.ToLower(line), "linkedin") ||
		strings.Contains(strings.ToLower(line), "github") {
		return true
	}
	return phoneDigitCount(line) >= 7 && phonePattern.MatchString(line)
}
