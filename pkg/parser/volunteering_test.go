package parser

import (
	"testing"

	"github.com/coolbeans/vitae/pkg/resume"
)

func TestVolunteeringParser_RoleAtOrganization(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewVolunteeringParser().Parse([]string{
		"Volunteer Teacher at Bright Futures NGO",
		"Organized weekend classes for underprivileged children.",
	}, doc)

	if len(doc.Volunteering) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(doc.Volunteering), doc.Volunteering)
	}
	entry := doc.Volunteering[0]
	if entry.Role != "Volunteer Teacher" {
		t.Errorf("Role = %q", entry.Role)
	}
	if entry.Organization != "Bright Futures NGO" {
		t.Errorf("Organization = %q", entry.Organization)
	}
	if entry.Description != "Organized weekend classes for underprivileged children." {
		t.Errorf("Description = %q", entry.Description)
	}
	if entry.ID != 1 {
		t.Errorf("ID = %d, want 1", entry.ID)
	}
}

func TestVolunteeringParser_SeparateRoleAndOrgLines(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewVolunteeringParser().Parse([]string{
		"Mentor",
		"Code Club",
	}, doc)

	if len(doc.Volunteering) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(doc.Volunteering), doc.Volunteering)
	}
	entry := doc.Volunteering[0]
	if entry.Role != "Mentor" || entry.Organization != "Code Club" {
		t.Errorf("entry = %+v", entry)
	}
}

func TestVolunteeringParser_RestatedRoleStartsNewEntry(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewVolunteeringParser().Parse([]string{
		"Mentor",
		"Code Club",
		"Tutor",
		"Literacy Foundation",
	}, doc)

	if len(doc.Volunteering) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(doc.Volunteering), doc.Volunteering)
	}
	if doc.Volunteering[1].Role != "Tutor" || doc.Volunteering[1].Organization != "Literacy Foundation" {
		t.Errorf("second entry = %+v", doc.Volunteering[1])
	}
	if doc.Volunteering[0].ID != 1 || doc.Volunteering[1].ID != 2 {
		t.Errorf("IDs = %d, %d", doc.Volunteering[0].ID, doc.Volunteering[1].ID)
	}
}

func TestVolunteeringParser_ProseOnlyEmitsNothing(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewVolunteeringParser().Parse([]string{
		"Helped out at various local events over the years.",
	}, doc)

	if len(doc.Volunteering) != 0 {
		t.Errorf("got %d entries, want none: %+v", len(doc.Volunteering), doc.Volunteering)
	}
}
