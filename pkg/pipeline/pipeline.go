// Package pipeline wires the normalizer, segmenter, and section
// parsers into the single entry point that turns raw extracted resume
// text into a ParsedDocument. The pipeline is stateless across runs:
// identical input yields byte-identical output.
package pipeline

import (
	"errors"

	"go.uber.org/zap"

	"github.com/coolbeans/vitae/pkg/parser"
	"github.com/coolbeans/vitae/pkg/resume"
	"github.com/coolbeans/vitae/pkg/section"
	"github.com/coolbeans/vitae/pkg/textnorm"
)

// ErrEmptyInput is returned when the extracted text is empty after
// normalization. It is the only hard failure: every other heuristic
// miss degrades into empty fields, never an error.
var ErrEmptyInput = errors.New("input text is empty after normalization")

// Pipeline runs the full parse: normalize, segment, dispatch each
// block through the parser registry, then reclassify ambiguous output.
type Pipeline struct {
	segmenter *section.Segmenter
	registry  *parser.Registry
	log       *zap.Logger

	vocab *section.Vocabulary
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger injects a structured logger; parsing trace lines are
// emitted at debug level. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// WithVocabulary overrides the section header synonym table.
func WithVocabulary(vocab *section.Vocabulary) Option {
	return func(p *Pipeline) { p.vocab = vocab }
}

// WithRegistry overrides the section parser registry.
func WithRegistry(registry *parser.Registry) Option {
	return func(p *Pipeline) {
		if registry != nil {
			p.registry = registry
		}
	}
}

// New creates a pipeline with the default registry and vocabulary.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		log:      zap.NewNop(),
		registry: parser.DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.segmenter = section.NewSegmenter(p.vocab)
	return p
}

// Run parses raw extracted text into a fully shaped document. The
// returned document always carries every output key, arrays defaulting
// to empty; the only error case is input that is empty after
// normalization.
func (p *Pipeline) Run(rawText string) (*resume.ParsedDocument, error) {
	normalized := textnorm.Normalize(rawText)
	if normalized == "" {
		return nil, ErrEmptyInput
	}

	blocks := p.segmenter.Segment(normalized)
	p.log.Debug("segmented document", zap.Int("blocks", len(blocks)))

	doc := resume.NewParsedDocument()
	for _, block := range blocks {
		sectionParser, ok := p.registry.Lookup(block.Name)
		if !ok {
			p.log.Debug("no parser for section", zap.String("section", string(block.Name)))
			continue
		}
		sectionParser.Parse(block.Lines, doc)
		p.log.Debug("parsed section",
			zap.String("section", string(block.Name)),
			zap.String("parser", sectionParser.Name()),
			zap.Int("lines", len(block.Lines)),
		)
	}

	p.reclassify(doc, blocks)
	return doc, nil
}

// Segment exposes the segmentation step on its own, for inspection
// tooling. Same empty-input contract as Run.
func (p *Pipeline) Segment(rawText string) ([]section.Block, error) {
	normalized := textnorm.Normalize(rawText)
	if normalized == "" {
		return nil, ErrEmptyInput
	}
	return p.segmenter.Segment(normalized), nil
}
