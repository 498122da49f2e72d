package parser

import (
	"regexp"
	"strings"

	"github.com/coolbeans/vitae/pkg/resume"
)

// issuerKeywords mark lines naming a certificate's issuing body.
var issuerKeywords = []string{
	"coursera", "udemy", "udacity", "edx", "linkedin learning",
	"pluralsight", "google", "microsoft", "amazon", "aws", "oracle",
	"cisco", "ibm", "university", "institute", "academy", "issued by",
	"offered by",
}

// issuedByPrefixPattern strips "Issued by" / "Offered by" lead-ins.
var issuedByPrefixPattern = regexp.MustCompile(`(?i)^(issued|offered)\s+by\s*[:\-]?\s*`)

// CertificatesParser converts a certificates block into
// CertificateEntry values: a single pass classifying lines as
// certificate name, link, issuing body, or date span. A name-shaped
// line while the current entry already has a name starts the next
// entry. All fields default to "".
type CertificatesParser struct{}

// NewCertificatesParser creates a certificates section parser.
func NewCertificatesParser() *CertificatesParser { return &CertificatesParser{} }

// Name implements Parser.
func (p *CertificatesParser) Name() string { return "certificates" }

// Parse implements Parser.
func (p *CertificatesParser) Parse(lines []string, doc *resume.ParsedDocument) {
	var current *resume.CertificateEntry

	flush := func() {
		if current != nil && current.CertificateName != "" {
			doc.Certificates = append(doc.Certificates, *current)
		}
		current = nil
	}

	for _, raw := range lines {
		line := stripBullet(strings.TrimSpace(raw))
		if line == "" {
			continue
		}

		if link := urlPattern.FindString(line); link != "" {
			if current == nil {
				current = &resume.CertificateEntry{}
			}
			if current.Link == "" {
				current.Link = link
			}
			line = strings.TrimSpace(strings.Replace(line, link, "", 1))
			if line == "" {
				continue
			}
		}

		if current != nil && current.StartDate == "" && current.EndDate == "" &&
			len(line) <= 40 && datePattern.MatchString(line) {
			start, end, _ := parseDates(line)
			if start != "" || end != "" {
				current.StartDate, current.EndDate = start, end
				continue
			}
		}

		if issuer := extractIssuer(line); issuer != "" {
			if current == nil {
				current = &resume.CertificateEntry{}
			}
			if current.InstituteName == "" {
				current.InstituteName = issuer
				continue
			}
		}

		// Name-shaped line: starts a new certificate when the current
		// one is already named.
		if current != nil && current.CertificateName != "" {
			flush()
		}
		if current == nil {
			current = &resume.CertificateEntry{}
		}
		name, year := liftYear(line, "")
		if year != "" && current.StartDate == "" {
			start, end := splitDateRange(year)
			current.StartDate, current.EndDate = start, end
		}
		// "Name - Issuer" and "Name, Issuer" splits.
		if head, rest, found := strings.Cut(name, " - "); found {
			name = strings.TrimSpace(head)
			if current.InstituteName == "" {
				current.InstituteName = strings.TrimSpace(rest)
			}
		} else if head, rest, found := strings.Cut(name, ","); found && containsAny(rest, issuerKeywords) {
			name = strings.TrimSpace(head)
			if current.InstituteName == "" {
				current.InstituteName = strings.TrimSpace(rest)
			}
		}
		current.CertificateName = name
	}
	flush()
}

// extractIssuer returns the issuing body named by a line, or "" when
// the line does not look like a standalone issuer reference.
func extractIssuer(line string) string {
	if !containsAny(line, issuerKeywords) || len(line) > 60 {
		return ""
	}
	// "AWS Certified Solutions Architect" names a certificate, not its
	// issuer, even though it mentions a vendor.
	if strings.Contains(strings.ToLower(line), "certif") {
		return ""
	}
	cleaned := issuedByPrefixPattern.ReplaceAllString(line, "")
	// A line that is mostly the issuer name, not a certificate title
	// that merely mentions a vendor.
	if len(strings.Fields(cleaned)) > 6 {
		return ""
	}
	return strings.Trim(cleaned, " \t,-")
}
