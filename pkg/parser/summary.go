package parser

import (
	"strings"

	"github.com/coolbeans/vitae/pkg/resume"
)

// SummaryParser joins a summary block's lines into the summary field.
// Whether that prose really is a career summary is revisited by the
// reclassification pass after all sections are parsed.
type SummaryParser struct{}

// NewSummaryParser creates a summary section parser.
func NewSummaryParser() *SummaryParser { return &SummaryParser{} }

// Name implements Parser.
func (p *SummaryParser) Name() string { return "summary" }

// Parse implements Parser.
func (p *SummaryParser) Parse(lines []string, doc *resume.ParsedDocument) {
	text := joinProse(lines)
	if text == "" {
		return
	}
	if doc.Summary == "" {
		doc.Summary = text
	} else {
		doc.Summary += " " + text
	}
}

// ObjectiveParser joins an objective block's lines into the objective
// field.
type ObjectiveParser struct{}

// NewObjectiveParser creates an objective section parser.
func NewObjectiveParser() *ObjectiveParser { return &ObjectiveParser{} }

// Name implements Parser.
func (p *ObjectiveParser) Name() string { return "objective" }

// Parse implements Parser.
func (p *ObjectiveParser) Parse(lines []string, doc *resume.ParsedDocument) {
	text := joinProse(lines)
	if text == "" {
		return
	}
	if doc.Objective == "" {
		doc.Objective = text
	} else {
		doc.Objective += " " + text
	}
}

// joinProse joins content lines into one prose string, dropping bullet
// glyphs.
func joinProse(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		line = stripBullet(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
