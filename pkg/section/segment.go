package section

import (
	"strings"
	"unicode"
)

// Length ceilings for the casing-based header tiers. A line longer than
// its tier's ceiling is content no matter what words it contains.
const (
	maxAllCapsHeaderLen    = 25
	maxTitleCaseHeaderLen  = 35
	maxPunctuatedHeaderLen = 30
)

// Segmenter partitions normalized text into section blocks using a
// two-state walk: lines before the first recognized header accumulate
// into the implicit basic_details block, every later line into the
// block opened by the most recent header.
type Segmenter struct {
	vocab *Vocabulary
}

// NewSegmenter creates a segmenter. A nil vocabulary selects the
// built-in synonym table.
func NewSegmenter(vocab *Vocabulary) *Segmenter {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Segmenter{vocab: vocab}
}

// Segment walks the normalized text line by line and returns the
// section blocks in document order. Every non-blank input line lands in
// exactly one block, either as its header or among its content lines.
func (s *Segmenter) Segment(normalized string) []Block {
	var blocks []Block
	current := Block{Name: BasicDetails}

	flush := func() {
		if current.Header != "" || len(current.Lines) > 0 {
			blocks = append(blocks, current)
		}
	}

	for _, line := range strings.Split(normalized, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if name, ok := s.IsSectionHeader(line); ok {
			flush()
			current = Block{Name: name, Header: line}
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	flush()

	return blocks
}

// IsSectionHeader classifies a line as a section header. The checks run
// in a fixed order: exact synonym match, then all-caps short lines,
// then title-case short lines, then short lines ending in a colon or
// dash; each tier scans the canonical names in priority order.
func (s *Segmenter) IsSectionHeader(line string) (Name, bool) {
	lowered := strings.ToLower(strings.TrimSpace(line))
	if lowered == "" {
		return "", false
	}

	// Tier 1: the whole line is a known synonym.
	for _, name := range CanonicalNames {
		for _, syn := range s.vocab.Synonyms(name) {
			if lowered == syn {
				return name, true
			}
		}
	}

	// Tier 2: short all-caps line containing a synonym ("WORK EXPERIENCE").
	if len(line) < maxAllCapsHeaderLen && isAllCaps(line) {
		if name, ok := s.containsSynonym(lowered); ok {
			return name, true
		}
	}

	// Tier 3: short title-case line containing a synonym ("Work Experience").
	if len(line) < maxTitleCaseHeaderLen && isTitleCase(line) {
		if name, ok := s.containsSynonym(lowered); ok {
			return name, true
		}
	}

	// Tier 4: short line ending in a colon or dash ("Skills:").
	if len(line) < maxPunctuatedHeaderLen &&
		(strings.HasSuffix(lowered, ":") || strings.HasSuffix(lowered, "-")) {
		trimmed := strings.TrimRight(lowered, ":- ")
		if name, ok := s.containsSynonym(trimmed); ok {
			return name, true
		}
	}

	return "", false
}

// containsSynonym reports the first canonical section whose synonym
// appears as a whole word inside the lowered line.
func (s *Segmenter) containsSynonym(lowered string) (Name, bool) {
	for _, name := range CanonicalNames {
		for _, syn := range s.vocab.Synonyms(name) {
			if containsWord(lowered, syn) {
				return name, true
			}
		}
	}
	return "", false
}

// containsWord reports whether needle occurs in haystack bounded by
// non-letter characters, so "art" never matches inside "department".
func containsWord(haystack, needle string) bool {
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(needle)
		beforeOK := idx == 0 || !isLetter(haystack[idx-1])
		afterOK := end == len(haystack) || !isLetter(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isAllCaps reports whether the line contains at least one letter and
// no lowercase letters.
func isAllCaps(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase reports whether every word of the line starts with an
// uppercase letter (connective words like "and"/"of" are allowed).
func isTitleCase(line string) bool {
	connectives := map[string]bool{"and": true, "of": true, "the": true, "&": true}
	sawWord := false
	for _, word := range strings.Fields(line) {
		if connectives[strings.ToLower(word)] {
			continue
		}
		r := []rune(word)[0]
		if !unicode.IsUpper(r) {
			return false
		}
		sawWord = true
	}
	return sawWord
}
