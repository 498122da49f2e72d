package parser

import (
	"testing"

	"github.com/coolbeans/vitae/pkg/resume"
)

func TestSummaryParser_JoinsLines(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewSummaryParser().Parse([]string{
		"Backend engineer with five years of experience.",
		"• Focused on reliability and tooling.",
	}, doc)

	want := "Backend engineer with five years of experience. Focused on reliability and tooling."
	if doc.Summary != want {
		t.Errorf("Summary = %q, want %q", doc.Summary, want)
	}
}

func TestSummaryParser_AppendsToExistingSummary(t *testing.T) {
	doc := resume.NewParsedDocument()
	doc.Summary = "First part."
	NewSummaryParser().Parse([]string{"Second part."}, doc)

	if doc.Summary != "First part. Second part." {
		t.Errorf("Summary = %q", doc.Summary)
	}
}

func TestSummaryParser_EmptyBlockLeavesSummaryUntouched(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewSummaryParser().Parse([]string{"", "  "}, doc)

	if doc.Summary != "" {
		t.Errorf("Summary = %q, want empty", doc.Summary)
	}
}

func TestObjectiveParser_JoinsLines(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewObjectiveParser().Parse([]string{
		"Seeking a backend role",
		"in a product company.",
	}, doc)

	if doc.Objective != "Seeking a backend role in a product company." {
		t.Errorf("Objective = %q", doc.Objective)
	}
}
