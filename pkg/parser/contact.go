package parser

import (
	"regexp"
	"strings"

	"github.com/coolbeans/vitae/pkg/resume"
)

var (
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3,5}\)?[-.\s]?\d{3}[-.\s]?\d{3,5}`)

	// linkedinPatterns cover the URL shapes profiles appear under:
	// full profile URLs, public directory URLs, and bare host slugs.
	linkedinPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/in/[A-Za-z0-9_%\-]+/?`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/pub/[A-Za-z0-9_%\-/]+`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/[A-Za-z0-9_%\-]+/?`),
	}

	githubProfilePattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_\-]+/?`)

	// locationPattern matches "City, Region" shaped lines.
	locationPattern = regexp.MustCompile(`^[A-Z][A-Za-z .]+,\s*[A-Z][A-Za-z .]+$`)

	nameSymbolPattern = regexp.MustCompile(`[0-9@/\\|:;#()_=+{}\[\]<>]`)
)

// nameScanWindow is how many leading lines are considered when looking
// for the candidate full name.
const nameScanWindow = 6

// ContactInfoParser extracts contact details from the implicit
// basic_details block at the top of a resume. Detectors for email,
// phone, URLs, and location run independently per line; name and
// professional title use position-and-casing heuristics over the first
// few lines.
type ContactInfoParser struct{}

// NewContactInfoParser creates a basic_details parser.
func NewContactInfoParser() *ContactInfoParser {
	return &ContactInfoParser{}
}

// Name implements Parser.
func (p *ContactInfoParser) Name() string { return "contact_info" }

// Parse implements Parser.
func (p *ContactInfoParser) Parse(lines []string, doc *resume.ParsedDocument) {
	bd := &doc.BasicDetails

	for _, line := range lines {
		if bd.Email == "" {
			if email := emailPattern.FindString(line); email != "" {
				bd.Email = email
			}
		}
		if bd.Linkedin == "" {
			if link := findLinkedin(line); link != "" {
				bd.Linkedin = link
			}
		}
		if bd.Github == "" {
			if gh := githubProfilePattern.FindString(line); gh != "" {
				bd.Github = gh
			}
		}
		if bd.Website == "" {
			if site := urlPattern.FindString(line); site != "" &&
				!strings.Contains(strings.ToLower(site), "linkedin.com") &&
				!strings.Contains(strings.ToLower(site), "github.com") {
				bd.Website = site
			}
		}
		if bd.Phone == "" && !strings.Contains(line, "@") {
			if phone := phonePattern.FindString(line); phone != "" && phoneDigitCount(phone) >= 7 {
				bd.Phone = strings.TrimSpace(phone)
			}
		}
		if bd.Location == "" && locationPattern.MatchString(strings.TrimSpace(line)) {
			bd.Location = strings.TrimSpace(line)
		}
	}

	p.extractNameAndTitle(lines, bd)

	// Best-effort default: with a name in hand but no profile URLs
	// found, synthesize the conventional firstname-lastname slugs.
	if bd.FullName != "" {
		slug := nameSlug(bd.FullName)
		if slug != "" {
			if bd.Linkedin == "" {
				bd.Linkedin = "linkedin.com/in/" + slug
			}
			if bd.Github == "" {
				bd.Github = "github.com/" + slug
			}
		}
	}
}

// extractNameAndTitle picks the candidate full name from the leading
// lines: an early, short line free of symbols and contact fragments.
// Mixed-case candidates are preferred; an all-caps candidate is used
// when nothing else qualifies. The first job-vocabulary line after the
// name becomes the professional title.
func (p *ContactInfoParser) extractNameAndTitle(lines []string, bd *resume.BasicDetails) {
	nameIndex := -1
	capsIndex := -1

	for i, line := range lines {
		if i >= nameScanWindow {
			break
		}
		line = strings.TrimSpace(line)
		if !isNameCandidate(line) {
			continue
		}
		if isAllUpper(line) {
			if capsIndex < 0 {
				capsIndex = i
			}
			continue
		}
		nameIndex = i
		break
	}
	if nameIndex < 0 {
		nameIndex = capsIndex
	}
	if nameIndex < 0 {
		return
	}
	if bd.FullName == "" {
		bd.FullName = strings.TrimSpace(lines[nameIndex])
	}

	for _, line := range lines[nameIndex+1:] {
		line = strings.TrimSpace(line)
		if len(line) <= 60 && containsAny(line, jobTitleKeywords) &&
			!containsAny(line, descriptionVerbs) {
			if bd.ProfessionalTitle == "" {
				bd.ProfessionalTitle = line
			}
			break
		}
	}
}

// isNameCandidate filters lines that cannot be a person's name.
func isNameCandidate(line string) bool {
	if line == "" || len(line) > 40 {
		return false
	}
	if nameSymbolPattern.MatchString(line) {
		return false
	}
	// "Berlin, Germany" passes every other check but is a location.
	if locationPattern.MatchString(line) {
		return false
	}
	if containsAny(line, jobTitleKeywords) || containsAny(line, companyIndicators) {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 1 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if len([]rune(w)) < 2 {
			return false
		}
	}
	return true
}

func isAllUpper(line string) bool {
	return line == strings.ToUpper(line) && line != strings.ToLower(line)
}

// nameSlug builds the firstname-lastname slug used for synthesized
// profile links.
func nameSlug(fullName string) string {
	words := strings.Fields(strings.ToLower(fullName))
	if len(words) == 0 {
		return ""
	}
	return strings.Join(words, "-")
}

func findLinkedin(line string) string {
	for _, pat := range linkedinPatterns {
		if m := pat.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

func phoneDigitCount(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
