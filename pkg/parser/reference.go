package parser

import (
	"regexp"
	"strings"

	"github.com/coolbeans/vitae/pkg/resume"
)

// relationshipKeywords mark lines describing how the referee knows the
// candidate.
var relationshipKeywords = []string{
	"manager", "supervisor", "colleague", "mentor", "professor",
	"advisor", "team lead", "reporting manager", "hod",
}

// relationshipPrefixPattern strips "Relationship:" style labels.
var relationshipPrefixPattern = regexp.MustCompile(`(?i)^relation(ship)?\s*[:\-]\s*`)

// ReferenceParser converts a reference block into ReferenceEntry
// values: phone and email by regex, title/company from dash or comma
// splits and job vocabulary, relationship from its keyword set, and an
// early short capitalized line as the referee name. A name-shaped line
// while the current entry is already named starts the next entry.
type ReferenceParser struct{}

// NewReferenceParser creates a reference section parser.
func NewReferenceParser() *ReferenceParser { return &ReferenceParser{} }

// Name implements Parser.
func (p *ReferenceParser) Name() string { return "reference" }

// Parse implements Parser.
func (p *ReferenceParser) Parse(lines []string, doc *resume.ParsedDocument) {
	var current *resume.ReferenceEntry

	flush := func() {
		if current != nil && (current.Name != "" || current.Email != "" || current.Phone != "") {
			doc.References = append(doc.References, *current)
		}
		current = nil
	}

	for _, raw := range lines {
		line := stripBullet(strings.TrimSpace(raw))
		if line == "" {
			continue
		}
		if current == nil {
			current = &resume.ReferenceEntry{}
		}

		if email := emailPattern.FindString(line); email != "" {
			if current.Email != "" {
				flush()
				current = &resume.ReferenceEntry{}
			}
			current.Email = email
			continue
		}
		if !strings.Contains(line, "@") {
			if phone := phonePattern.FindString(line); phone != "" && phoneDigitCount(phone) >= 7 {
				if current.Phone != "" {
					flush()
					current = &resume.ReferenceEntry{}
				}
				current.Phone = strings.TrimSpace(phone)
				continue
			}
		}

		if m := relationshipPrefixPattern.FindString(line); m != "" {
			current.Relationship = strings.TrimSpace(line[len(m):])
			continue
		}
		if containsAny(line, relationshipKeywords) && len(line) <= 40 &&
			!containsAny(line, companyIndicators) && current.Relationship == "" {
			current.Relationship = line
			continue
		}

		if containsAny(line, jobTitleKeywords) || containsAny(line, companyIndicators) {
			assignReferenceTitle(line, current)
			continue
		}

		if isNameCandidate(line) {
			if current.Name != "" {
				flush()
				current = &resume.ReferenceEntry{}
			}
			current.Name = line
			continue
		}

		// Unmatched lines fall into whichever of title/company is open.
		if current.Title == "" {
			current.Title = line
		} else if current.Company == "" {
			current.Company = line
		}
	}
	flush()
}

// assignReferenceTitle splits "Engineering Manager, Acme Corp" or
// "CTO - Initech" into title and company.
func assignReferenceTitle(line string, ref *resume.ReferenceEntry) {
	for _, sep := range []string{" - ", ", ", " at "} {
		if head, rest, found := strings.Cut(line, sep); found {
			if ref.Title == "" {
				ref.Title = strings.TrimSpace(head)
			}
			if ref.Company == "" {
				ref.Company = strings.TrimSpace(rest)
			}
			return
		}
	}
	if containsAny(line, companyIndicators) && ref.Company == "" {
		ref.Company = line
		return
	}
	if ref.Title == "" {
		ref.Title = line
	}
}
