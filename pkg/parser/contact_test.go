package parser

import (
	"testing"

	"github.com/coolbeans/vitae/pkg/resume"
)

func TestContactInfoParser_FullHeader(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewContactInfoParser().Parse([]string{
		"John Smith",
		"Software Engineer",
		"john.smith@example.com",
		"+1 555 123 4567",
		"Berlin, Germany",
		"linkedin.com/in/jsmith",
	}, doc)

	bd := doc.BasicDetails
	if bd.FullName != "John Smith" {
		t.Errorf("FullName = %q", bd.FullName)
	}
	if bd.ProfessionalTitle != "Software Engineer" {
		t.Errorf("ProfessionalTitle = %q", bd.ProfessionalTitle)
	}
	if bd.Email != "john.smith@example.com" {
		t.Errorf("Email = %q", bd.Email)
	}
	if bd.Phone != "+1 555 123 4567" {
		t.Errorf("Phone = %q", bd.Phone)
	}
	if bd.Location != "Berlin, Germany" {
		t.Errorf("Location = %q", bd.Location)
	}
	if bd.Linkedin != "linkedin.com/in/jsmith" {
		t.Errorf("Linkedin = %q", bd.Linkedin)
	}
}

func TestContactInfoParser_AllCapsNameFallback(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewContactInfoParser().Parse([]string{
		"JOHN SMITH",
		"john@example.com",
	}, doc)

	if doc.BasicDetails.FullName != "JOHN SMITH" {
		t.Errorf("FullName = %q, want all-caps fallback", doc.BasicDetails.FullName)
	}
}

func TestContactInfoParser_MixedCasePreferredOverCaps(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewContactInfoParser().Parse([]string{
		"CURRICULUM VITAE",
		"John Smith",
	}, doc)

	if doc.BasicDetails.FullName != "John Smith" {
		t.Errorf("FullName = %q, want mixed-case candidate preferred", doc.BasicDetails.FullName)
	}
}

func TestContactInfoParser_SynthesizesProfileSlugs(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewContactInfoParser().Parse([]string{"John Smith"}, doc)

	bd := doc.BasicDetails
	if bd.Linkedin != "linkedin.com/in/john-smith" {
		t.Errorf("Linkedin = %q, want synthesized slug", bd.Linkedin)
	}
	if bd.Github != "github.com/john-smith" {
		t.Errorf("Github = %q, want synthesized slug", bd.Github)
	}
}

func TestContactInfoParser_RealLinksNotOverwritten(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewContactInfoParser().Parse([]string{
		"John Smith",
		"github.com/jsmith-dev",
	}, doc)

	if doc.BasicDetails.Github != "github.com/jsmith-dev" {
		t.Errorf("Github = %q, want detected link kept", doc.BasicDetails.Github)
	}
}

func TestContactInfoParser_WebsiteExcludesProfileHosts(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewContactInfoParser().Parse([]string{
		"https://www.linkedin.com/in/jsmith",
		"https://github.com/jsmith",
		"www.johnsmith.dev",
	}, doc)

	if doc.BasicDetails.Website != "www.johnsmith.dev" {
		t.Errorf("Website = %q, want personal site only", doc.BasicDetails.Website)
	}
}

func TestContactInfoParser_PhoneIgnoresEmailDigits(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewContactInfoParser().Parse([]string{
		"john1234567890@example.com",
	}, doc)

	if doc.BasicDetails.Phone != "" {
		t.Errorf("Phone = %q, want none from an email line", doc.BasicDetails.Phone)
	}
}

func TestFindLinkedin(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"https://www.linkedin.com/in/jsmith", "https://www.linkedin.com/in/jsmith"},
		{"see linkedin.com/in/john-smith for details", "linkedin.com/in/john-smith"},
		{"linkedin.com/pub/john/1/2/3", "linkedin.com/pub/john/1/2/3"},
		{"no links here", ""},
	}
	for _, tt := range tests {
		if got := findLinkedin(tt.line); got != tt.want {
			t.Errorf("findLinkedin(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestIsNameCandidate(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"John Smith", true},
		{"JOHN SMITH", true},
		{"Maria de la Cruz", true},
		{"john@example.com", false},
		{"Berlin, Germany", false},
		{"Software Engineer", false},
		{"Acme Technologies", false},
		{"+1 555 123 4567", false},
		{"", false},
		{"A very long line that cannot possibly be a name", false},
	}
	for _, tt := range tests {
		if got := isNameCandidate(tt.line); got != tt.want {
			t.Errorf("isNameCandidate(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
