package parser

import (
	"fmt"
	"sort"

	"github.com/coolbeans/vitae/pkg/resume"
	"github.com/coolbeans/vitae/pkg/section"
)

// Parser converts the content lines of one section block into
// structured entities on the document. Implementations are pure and
// never fail: unparseable lines degrade into description text.
type Parser interface {
	// Name identifies the parser in logs and registry errors.
	Name() string

	// Parse consumes a block's content lines and appends or sets the
	// corresponding fields on the document.
	Parse(lines []string, doc *resume.ParsedDocument)
}

// Registry maps canonical section names to their parsers. It replaces
// chained name checks with an explicit lookup table.
type Registry struct {
	parsers map[section.Name]Parser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[section.Name]Parser)}
}

// Register binds a parser to a canonical section name.
// Returns an error if the parser is nil or the name is already bound.
func (r *Registry) Register(name section.Name, p Parser) error {
	if p == nil {
		return fmt.Errorf("section parser cannot be nil")
	}
	if name == "" {
		return fmt.Errorf("section name cannot be empty")
	}
	if _, exists := r.parsers[name]; exists {
		return fmt.Errorf("section %q already has a registered parser", name)
	}
	r.parsers[name] = p
	return nil
}

// Lookup returns the parser bound to a section name.
func (r *Registry) Lookup(name section.Name) (Parser, bool) {
	p, ok := r.parsers[name]
	return p, ok
}

// Sections returns the registered section names in sorted order.
func (r *Registry) Sections() []section.Name {
	names := make([]section.Name, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// DefaultRegistry returns a registry with every section parser bound to
// its canonical name.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	bindings := []struct {
		name   section.Name
		parser Parser
	}{
		{section.BasicDetails, NewContactInfoParser()},
		{section.Summary, NewSummaryParser()},
		{section.Objective, NewObjectiveParser()},
		{section.Experience, NewExperienceParser()},
		{section.Education, NewEducationParser()},
		{section.Skills, NewSkillsLanguagesParser()},
		{section.Projects, NewProjectsParser()},
		{section.Activities, NewActivitiesParser()},
		{section.Volunteering, NewVolunteeringParser()},
		{section.Certificates, NewCertificatesParser()},
		{section.Reference, NewReferenceParser()},
	}
	for _, b := range bindings {
		// Registration of the built-in set cannot collide.
		_ = r.Register(b.name, b.parser)
	}
	return r
}
