package section

import (
	"strings"
	"testing"

	"github.com/coolbeans/vitae/pkg/textnorm"
)

// FuzzSegment checks the partition invariant on arbitrary input: after
// normalization, every non-blank line appears in exactly one block,
// either as the block header or among its content lines, in order.
func FuzzSegment(f *testing.F) {
	f.Add("John Smith\njohn@example.com\n\nEXPERIENCE\nSoftware Engineer\nAcme Corp | 2020 - Present")
	f.Add("SKILLS\nPython, Go, SQL")
	f.Add("")
	f.Add("Summary:\nBuilt things.\nEducation\nB.Tech")
	f.Add("•\u00a0bullet\twith\todd\twhitespace\nREFERENCES\nJane Doe")

	f.Fuzz(func(t *testing.T, raw string) {
		normalized := textnorm.Normalize(raw)
		blocks := NewSegmenter(nil).Segment(normalized)

		var reassembled []string
		for _, b := range blocks {
			if b.Header != "" {
				reassembled = append(reassembled, b.Header)
			}
			reassembled = append(reassembled, b.Lines...)
		}

		var want []string
		for _, line := range strings.Split(normalized, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				want = append(want, line)
			}
		}

		if strings.Join(reassembled, "\n") != strings.Join(want, "\n") {
			t.Errorf("partition broken for %q:\n got: %q\nwant: %q", raw, reassembled, want)
		}
	})
}
