package parser

import (
	"strings"

	"github.com/coolbeans/vitae/pkg/resume"
)

// ActivitiesParser converts an activities block into ActivityEntry
// values: short headline lines become titles, prose lines accumulate
// into the current activity's description.
type ActivitiesParser struct{}

// NewActivitiesParser creates an activities section parser.
func NewActivitiesParser() *ActivitiesParser { return &ActivitiesParser{} }

// Name implements Parser.
func (p *ActivitiesParser) Name() string { return "activities" }

// Parse implements Parser.
func (p *ActivitiesParser) Parse(lines []string, doc *resume.ParsedDocument) {
	var current *resume.ActivityEntry
	var desc []string

	flush := func() {
		if current == nil {
			return
		}
		if current.Title != "" {
			current.Description = strings.Join(desc, " ")
			current.ID = len(doc.Activities) + 1
			doc.Activities = append(doc.Activities, *current)
		}
		current = nil
		desc = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if isActivityTitleLine(line) {
			flush()
			title := stripBullet(line)
			var trailing string
			if head, rest, found := strings.Cut(title, " - "); found {
				title = strings.TrimSpace(head)
				trailing = strings.TrimSpace(rest)
			}
			current = &resume.ActivityEntry{Title: title}
			if trailing != "" {
				desc = append(desc, trailing)
			}
			continue
		}

		if current == nil {
			current = &resume.ActivityEntry{Title: stripBullet(line)}
			continue
		}
		desc = append(desc, stripBullet(line))
	}
	flush()
}

// isActivityTitleLine marks short non-prose lines as activity starts.
// Bulleted short items count: activity sections are often plain bullet
// lists where every item is its own activity.
func isActivityTitleLine(line string) bool {
	stripped := stripBullet(line)
	if len(stripped) > 70 {
		return false
	}
	head := stripped
	if idx := strings.Index(stripped, " - "); idx > 0 {
		head = stripped[:idx]
	}
	return !containsAny(head, descriptionVerbs)
}
