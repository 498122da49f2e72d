package parser

import "testing"

func TestClassifyExperienceLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		state fieldState
		want  lineLabel
	}{
		{"pipe separator", "Software Engineer | Acme Corp | 2020", fieldState{}, labelSeparator},
		{"job title", "Senior Software Engineer", fieldState{}, labelPosition},
		{"job title already placed", "Senior Software Engineer", fieldState{hasPosition: true}, labelDescription},
		{"date range", "Jan 2020 - Dec 2021", fieldState{}, labelDate},
		{"date already placed", "Jan 2020 - Dec 2021", fieldState{hasDates: true}, labelDescription},
		{"company vocabulary", "Acme Technologies", fieldState{}, labelCompany},
		{"short capitalized phrase", "Globex", fieldState{}, labelCompany},
		{"company already placed", "Acme Technologies", fieldState{hasCompany: true, hasPosition: true, hasDates: true}, labelDescription},
		{"long prose", "Responsible for the design and rollout of the internal billing platform.", fieldState{}, labelDescription},
		{"bullet prose", "• Built internal tools.", fieldState{}, labelDescription},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyExperienceLine(tt.line, tt.state)
			if got.label != tt.want {
				t.Errorf("classifyExperienceLine(%q, %+v) = %s, want %s",
					tt.line, tt.state, got.label, tt.want)
			}
			if got.score <= 0 || got.score > 1 {
				t.Errorf("score %v out of range", got.score)
			}
		})
	}
}

func TestClassifyExperienceLine_PriorityOrder(t *testing.T) {
	// A line carrying both a job title and a date classifies as position:
	// the chain runs in a fixed order and the first match wins.
	got := classifyExperienceLine("Software Engineer 2020", fieldState{})
	if got.label != labelPosition {
		t.Errorf("got %s, want %s", got.label, labelPosition)
	}
}

func TestIsNewExperienceEntry(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		previous string
		want     bool
	}{
		{"title with year", "Software Engineer 2020", "", true},
		{"short company line", "Acme Corp", "", true},
		{"short title after long prose", "Data Analyst", "Drove adoption of the reporting stack across four teams.", true},
		{"bullet never a boundary", "• Software Engineer 2020", "", false},
		{"description verb never a boundary", "Built the payments service in 2021", "", false},
		{"very long line never a boundary", "Software Engineer responsible for the complete lifecycle of the customer onboarding platform serving millions", "", false},
		{"title without year or shrink", "Software Engineer", "Acme", false},
		{"plain prose", "and shipped it to production", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNewExperienceEntry(tt.line, tt.previous); got != tt.want {
				t.Errorf("isNewExperienceEntry(%q, %q) = %v, want %v",
					tt.line, tt.previous, got, tt.want)
			}
		})
	}
}

func TestFieldStateAnyOpen(t *testing.T) {
	if !(fieldState{}).anyOpen() {
		t.Error("empty state should report open fields")
	}
	full := fieldState{hasPosition: true, hasCompany: true, hasDates: true}
	if full.anyOpen() {
		t.Error("full state should report no open fields")
	}
}
