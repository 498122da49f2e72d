package pipeline

import (
	"go.uber.org/zap"

	"github.com/coolbeans/vitae/pkg/parser"
	"github.com/coolbeans/vitae/pkg/resume"
	"github.com/coolbeans/vitae/pkg/section"
)

// reclassify is the post-pass over ambiguous output: a "summary" whose
// prose actually describes built software is rerouted to the projects
// parser, and a document that produced no section headers at all gets
// the same check on whatever the basic_details block held beyond
// contact lines.
func (p *Pipeline) reclassify(doc *resume.ParsedDocument, blocks []section.Block) {
	if doc.Summary != "" && parser.LooksLikeProjectProse(doc.Summary) {
		lines := collectLines(blocks, section.Summary)
		if len(lines) > 0 {
			p.log.Debug("reclassifying summary as project content",
				zap.Int("lines", len(lines)))
			parser.NewProjectsParser().Parse(lines, doc)
			doc.Summary = ""
		}
	}

	if sawHeader(blocks) {
		return
	}

	// No header-driven segmentation happened: everything landed in
	// basic_details. Whatever is not contact material may still be
	// parseable content.
	var leftover []string
	for _, line := range collectLines(blocks, section.BasicDetails) {
		if parser.IsContactLine(line) || line == doc.BasicDetails.FullName ||
			line == doc.BasicDetails.ProfessionalTitle || line == doc.BasicDetails.Location {
			continue
		}
		leftover = append(leftover, line)
	}
	if len(leftover) == 0 {
		return
	}
	if parser.LooksLikeProjectProse(joinLines(leftover)) {
		p.log.Debug("reclassifying unsegmented content as project content",
			zap.Int("lines", len(leftover)))
		parser.NewProjectsParser().Parse(leftover, doc)
	}
}

func sawHeader(blocks []section.Block) bool {
	for _, b := range blocks {
		if b.Header != "" {
			return true
		}
	}
	return false
}

func collectLines(blocks []section.Block, name section.Name) []string {
	var lines []string
	for _, b := range blocks {
		if b.Name == name {
			lines = append(lines, b.Lines...)
		}
	}
	return lines
}

func joinLines(lines []string) string {
	joined := ""
	for i, line := range lines {
		if i > 0 {
			joined += " "
		}
		joined += line
	}
	return joined
}
