package parser

import (
	"strings"

	"github.com/coolbeans/vitae/pkg/resume"
)

// volunteerRoleKeywords mark lines naming a volunteering role.
var volunteerRoleKeywords = []string{
	"volunteer", "mentor", "tutor", "organizer", "organiser",
	"coordinator", "member", "leader", "ambassador", "fundraiser",
	"teacher", "coach", "president", "secretary", "treasurer",
}

// organizationKeywords mark lines naming a volunteering organization.
var organizationKeywords = []string{
	"ngo", "foundation", "charity", "trust", "society", "club",
	"association", "community", "red cross", "rotary", "church",
	"shelter", "organization", "organisation",
}

// VolunteeringParser converts a volunteering block into
// VolunteeringEntry values: a single pass classifying lines as role or
// organization, with prose accumulating into the description. A line
// restating a field the current entry holds starts the next entry.
type VolunteeringParser struct{}

// NewVolunteeringParser creates a volunteering section parser.
func NewVolunteeringParser() *VolunteeringParser { return &VolunteeringParser{} }

// Name implements Parser.
func (p *VolunteeringParser) Name() string { return "volunteering" }

// Parse implements Parser.
func (p *VolunteeringParser) Parse(lines []string, doc *resume.ParsedDocument) {
	var current *resume.VolunteeringEntry
	var desc []string

	flush := func() {
		if current == nil {
			return
		}
		if current.Organization != "" || current.Role != "" {
			current.Description = strings.Join(desc, " ")
			current.ID = len(doc.Volunteering) + 1
			doc.Volunteering = append(doc.Volunteering, *current)
		}
		current = nil
		desc = nil
	}

	for _, raw := range lines {
		line := stripBullet(strings.TrimSpace(raw))
		if line == "" {
			continue
		}

		isRole := len(line) <= 60 && containsAny(line, volunteerRoleKeywords) &&
			!containsAny(line, descriptionVerbs)
		isOrg := len(line) <= 60 && !isRole &&
			(containsAny(line, organizationKeywords) || looksLikeCompanyLine(line))

		if current != nil &&
			((isRole && current.Role != "") || (isOrg && current.Organization != "")) {
			flush()
		}
		if current == nil {
			current = &resume.VolunteeringEntry{}
		}

		switch {
		case isRole && current.Role == "":
			// "Volunteer Teacher at Bright Futures NGO" carries both.
			if role, org, found := strings.Cut(line, " at "); found && current.Organization == "" {
				current.Role = strings.TrimSpace(role)
				current.Organization = strings.TrimSpace(org)
			} else if role, org, found := strings.Cut(line, " - "); found && current.Organization == "" {
				current.Role = strings.TrimSpace(role)
				current.Organization = strings.TrimSpace(org)
			} else {
				current.Role = line
			}
		case isOrg && current.Organization == "":
			current.Organization = line
		default:
			desc = append(desc, line)
		}
	}
	flush()
}
