package parser

import (
	"regexp"
	"strings"

	"github.com/coolbeans/vitae/pkg/resume"
)

var (
	// parentheticalPattern captures a "(Go, Docker, Postgres)" style
	// tech-stack annotation on a project title line.
	parentheticalPattern = regexp.MustCompile(`\(([^)]{2,120})\)`)

	// techStackLinePattern matches dedicated stack lines like
	// "Tech Stack: Go, Redis" or "Technologies used - React, Node".
	techStackLinePattern = regexp.MustCompile(`(?i)^(tech(?:nology|nologies)?(?:\s+(?:stack|used))?|stack|tools?(?:\s+used)?|built with)\s*[:\-]\s*(.+)$`)
)

// ProjectsParser converts a projects block into ProjectEntry values. A
// short non-prose line starts a new project; the title line may carry a
// parenthetical tech stack and a same-line "Title - Description" split.
// Date spans and dedicated tech-stack lines fill their fields, and
// everything else accumulates into the description.
type ProjectsParser struct{}

// NewProjectsParser creates a projects section parser.
func NewProjectsParser() *ProjectsParser { return &ProjectsParser{} }

// Name implements Parser.
func (p *ProjectsParser) Name() string { return "projects" }

// Parse implements Parser.
func (p *ProjectsParser) Parse(lines []string, doc *resume.ParsedDocument) {
	var current *resume.ProjectEntry
	var desc []string

	flush := func() {
		if current == nil {
			return
		}
		if current.Title != "" {
			current.Description = strings.TrimSpace(strings.Join(desc, " "))
			current.ID = len(doc.Projects) + 1
			doc.Projects = append(doc.Projects, *current)
		}
		current = nil
		desc = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if current != nil {
			if m := techStackLinePattern.FindStringSubmatch(stripBullet(line)); m != nil && current.TechStack == "" {
				current.TechStack = normalizeStackList(m[2])
				continue
			}
			if !projectHasDates(current) && len(line) <= 40 && datePattern.MatchString(line) {
				start, end, _ := parseDates(line)
				current.StartDate, current.EndDate = start, end
				continue
			}
		}

		if isProjectTitleLine(line) {
			flush()
			current = &resume.ProjectEntry{}
			parseProjectTitle(line, current, &desc)
			continue
		}

		if current == nil {
			// Content before any recognizable title: treat the first
			// line as the title so the block is not dropped wholesale.
			current = &resume.ProjectEntry{}
			parseProjectTitle(line, current, &desc)
			continue
		}

		desc = append(desc, stripBullet(line))
	}
	flush()
}

// hasDates reports whether the project already carries a date span.
func projectHasDates(p *resume.ProjectEntry) bool {
	return p.StartDate != "" || p.EndDate != ""
}

// isProjectTitleLine marks short, non-bullet, non-prose lines as
// project starts.
func isProjectTitleLine(line string) bool {
	if strings.HasPrefix(line, "• ") {
		return false
	}
	if len(line) > 80 {
		return false
	}
	head := line
	if idx := strings.Index(line, " - "); idx > 0 {
		head = line[:idx]
	}
	if containsAny(head, descriptionVerbs) {
		return false
	}
	r := []rune(strings.TrimSpace(head))
	return len(r) > 0 && (r[0] >= 'A' && r[0] <= 'Z' || r[0] >= '0' && r[0] <= '9')
}

// parseProjectTitle dissects a title line: parenthetical tech stack,
// embedded date span, and a same-line "Title - Description" split.
func parseProjectTitle(line string, project *resume.ProjectEntry, desc *[]string) {
	line = stripBullet(line)

	if m := parentheticalPattern.FindStringSubmatch(line); m != nil && looksLikeStack(m[1]) {
		project.TechStack = normalizeStackList(m[1])
		line = strings.Replace(line, m[0], "", 1)
	}

	if span := dateRangePattern.FindString(line); span != "" {
		start, end := splitDateRange(span)
		project.StartDate, project.EndDate = start, end
		line = strings.Replace(line, span, "", 1)
	}

	if title, rest, found := strings.Cut(line, " - "); found {
		line = title
		if rest = strings.TrimSpace(rest); rest != "" {
			*desc = append(*desc, rest)
		}
	}

	project.Title = strings.Trim(line, " \t,-|:")
}

// looksLikeStack reports whether a parenthetical is a technology list
// rather than an aside: it holds a comma-separated list or a known
// technology token.
func looksLikeStack(inner string) bool {
	return strings.Contains(inner, ",") || containsAny(inner, techTokens)
}

// normalizeStackList canonicalizes a tech list to comma-space
// separation.
func normalizeStackList(raw string) string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '/'
	})
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			cleaned = append(cleaned, part)
		}
	}
	return strings.Join(cleaned, ", ")
}
