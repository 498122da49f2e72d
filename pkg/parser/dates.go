package parser

import (
	"strings"
)

// dateRangeSeparators are tried in order when splitting a date span.
// En and em dashes are already folded to "-" by normalization; the
// spaced form is preferred so hyphenated month tokens survive.
var dateRangeSeparators = []string{" - ", " to ", "-"}

// splitDateRange splits a date-bearing string into start and end parts:
// "Jan 2020 - Present" yields ("Jan 2020", "Present"). A lone value
// becomes the start date, unless it is itself the Present/Current
// marker, which becomes the end date.
func splitDateRange(s string) (start, end string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}

	for _, sep := range dateRangeSeparators {
		left, right, found := strings.Cut(s, sep)
		if !found {
			continue
		}
		left = strings.TrimSpace(left)
		right = strings.TrimSpace(right)
		if left == "" || right == "" {
			continue
		}
		return left, canonicalizeEndMarker(right)
	}

	if isPresentMarker(s) {
		return "", "Present"
	}
	return s, ""
}

// parseDates extracts a date range from a line, re-splitting around a
// field separator first: a value like "Acme Corp | 2020 - Present"
// carries an embedded company name that is returned separately instead
// of being lost inside the start date.
func parseDates(line string) (start, end, company string) {
	line = strings.TrimSpace(line)

	if left, right, found := strings.Cut(line, "|"); found {
		left = strings.TrimSpace(left)
		right = strings.TrimSpace(right)
		switch {
		case datePattern.MatchString(right):
			company = left
			line = right
		case datePattern.MatchString(left):
			company = right
			line = left
		}
	}

	// Lift the date span out of any surrounding text.
	if span := dateRangePattern.FindString(line); span != "" {
		line = span
	} else if match := datePattern.FindString(line); match != "" {
		line = match
	}

	start, end = splitDateRange(line)
	return start, end, company
}

// isPresentMarker reports whether the token means "still ongoing".
func isPresentMarker(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "present" || s == "current" || s == "now" || s == "till date" || s == "ongoing"
}

// canonicalizeEndMarker rewrites any ongoing-marker spelling to the
// literal "Present"; all other values pass through untouched.
func canonicalizeEndMarker(s string) string {
	if isPresentMarker(s) {
		return "Present"
	}
	return s
}
