// Package textnorm cleans raw text recovered from document extraction
// before any structural parsing. All functions are pure; Normalize
// always returns a string, possibly empty when the input was empty.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var (
	// spacedCapsPattern matches runs of 2-4 single capital letters
	// separated by single spaces ("S T R M"), an artifact of
	// layout-aware extraction splitting names and headers across
	// character cells.
	spacedCapsPattern = regexp.MustCompile(`\b[A-Z](?: [A-Z]){1,3}\b`)

	// bulletPrefixPattern matches the bullet glyph variants different
	// resume templates use at the start of a line.
	bulletPrefixPattern = regexp.MustCompile(`^[\x{2022}\x{25CF}\x{25E6}\x{25AA}\x{25AB}\x{2023}\x{00B7}\x{2219}*\-\x{2013}]\s+`)

	// innerSpacePattern collapses repeated spaces and tabs inside a line.
	innerSpacePattern = regexp.MustCompile(`[ \t\x{00A0}]+`)
)

// Normalize cleans raw extracted text: Unicode NFC with fullwidth
// folding, whitespace collapse, letter-spaced all-caps repair, bullet
// glyph canonicalization, date separator canonicalization, and blank
// line trimming.
func Normalize(raw string) string {
	s := norm.NFC.String(raw)
	s = width.Fold.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	rawLines := strings.Split(s, "\n")
	cleaned := make([]string, 0, len(rawLines))
	lastBlank := true // swallow leading blanks
	for _, line := range rawLines {
		line = normalizeLine(line)
		if line == "" {
			if !lastBlank {
				cleaned = append(cleaned, "")
			}
			lastBlank = true
			continue
		}
		cleaned = append(cleaned, line)
		lastBlank = false
	}

	// Drop a trailing blank left by the collapse above.
	for len(cleaned) > 0 && cleaned[len(cleaned)-1] == "" {
		cleaned = cleaned[:len(cleaned)-1]
	}

	return strings.Join(cleaned, "\n")
}

// Lines splits normalized text into its non-blank lines.
func Lines(normalized string) []string {
	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// normalizeLine applies the per-line passes in a fixed order: whitespace
// collapse first so the letter-spacing pattern sees single spaces.
func normalizeLine(line string) string {
	line = innerSpacePattern.ReplaceAllString(line, " ")
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	line = repairSpacedCaps(line)
	line = canonicalizeBullet(line)
	line = canonicalizeDashes(line)
	return line
}

// repairSpacedCaps merges letter-spaced capital runs into words:
// "S T R M NAME" becomes "STRM NAME".
func repairSpacedCaps(line string) string {
	return spacedCapsPattern.ReplaceAllStringFunc(line, func(run string) string {
		return strings.ReplaceAll(run, " ", "")
	})
}

// canonicalizeBullet rewrites any leading bullet glyph variant to the
// canonical "• " prefix.
func canonicalizeBullet(line string) string {
	if bulletPrefixPattern.MatchString(line) {
		return bulletPrefixPattern.ReplaceAllString(line, "• ")
	}
	return line
}

// canonicalizeDashes maps en and em dashes to plain hyphens so the date
// range splitter and title/description splitter see one separator form.
func canonicalizeDashes(line string) string {
	line = strings.ReplaceAll(line, "–", "-")
	line = strings.ReplaceAll(line, "—", "-")
	return line
}
