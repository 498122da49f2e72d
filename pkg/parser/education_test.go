package parser

import (
	"testing"

	"github.com/coolbeans/vitae/pkg/resume"
)

func TestEducationParser_SingleEntry(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewEducationParser().Parse([]string{
		"B.Tech in Computer Science",
		"Indian Institute of Technology Delhi",
		"2018 - 2022",
		"CGPA: 8.5/10",
	}, doc)

	if len(doc.Education) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(doc.Education), doc.Education)
	}
	entry := doc.Education[0]
	if entry.Degree != "B.Tech in Computer Science" {
		t.Errorf("Degree = %q", entry.Degree)
	}
	if entry.Institution != "Indian Institute of Technology Delhi" {
		t.Errorf("Institution = %q", entry.Institution)
	}
	if entry.Year != "2018 - 2022" {
		t.Errorf("Year = %q", entry.Year)
	}
	if entry.Grade != "CGPA: 8.5/10" {
		t.Errorf("Grade = %q", entry.Grade)
	}
	if entry.ID != 1 {
		t.Errorf("ID = %d, want 1", entry.ID)
	}
}

func TestEducationParser_RestatedDegreeStartsNewEntry(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewEducationParser().Parse([]string{
		"Master of Science in Data Engineering",
		"Technical University of Munich",
		"Bachelor of Science in Computer Science",
		"University of Hamburg",
	}, doc)

	if len(doc.Education) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(doc.Education), doc.Education)
	}
	if doc.Education[0].Institution != "Technical University of Munich" {
		t.Errorf("first Institution = %q", doc.Education[0].Institution)
	}
	if doc.Education[1].Degree != "Bachelor of Science in Computer Science" {
		t.Errorf("second Degree = %q", doc.Education[1].Degree)
	}
	if doc.Education[0].ID != 1 || doc.Education[1].ID != 2 {
		t.Errorf("IDs = %d, %d", doc.Education[0].ID, doc.Education[1].ID)
	}
}

func TestEducationParser_YearLiftedFromDegreeLine(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewEducationParser().Parse([]string{
		"Bachelor of Engineering, 2015 - 2019",
		"Pune University",
	}, doc)

	if len(doc.Education) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(doc.Education), doc.Education)
	}
	entry := doc.Education[0]
	if entry.Degree != "Bachelor of Engineering" {
		t.Errorf("Degree = %q, want year span stripped", entry.Degree)
	}
	if entry.Year != "2015 - 2019" {
		t.Errorf("Year = %q", entry.Year)
	}
	if entry.Institution != "Pune University" {
		t.Errorf("Institution = %q", entry.Institution)
	}
}

func TestEducationParser_ProseAccumulatesIntoDescription(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewEducationParser().Parse([]string{
		"MBA",
		"Harvard Business School",
		"Focus on operations and supply chain.",
	}, doc)

	if len(doc.Education) != 1 {
		t.Fatalf("got %d entries, want 1", len(doc.Education))
	}
	if doc.Education[0].Description != "Focus on operations and supply chain." {
		t.Errorf("Description = %q", doc.Education[0].Description)
	}
}

func TestEducationParser_NoSignalEmitsNothing(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewEducationParser().Parse([]string{
		"Attended evening courses on data tooling.",
	}, doc)

	if len(doc.Education) != 0 {
		t.Errorf("got %d entries, want none: %+v", len(doc.Education), doc.Education)
	}
}
