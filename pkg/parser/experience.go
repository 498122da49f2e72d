package parser

import (
	"strings"

	"github.com/coolbeans/vitae/pkg/resume"
)

// maxEntryLookahead bounds how many lines a single experience entry may
// span during block-level parsing.
const maxEntryLookahead = 10

// ExperienceParser converts an experience block into ordered
// ExperienceEntry values. It tries a block-level lookahead parse for
// each candidate entry start and falls back to line-by-line
// classification when the block shape is not recognizable. An entry is
// only emitted when at least one of company or position was identified.
type ExperienceParser struct{}

// NewExperienceParser creates an experience section parser.
func NewExperienceParser() *ExperienceParser {
	return &ExperienceParser{}
}

// Name implements Parser.
func (p *ExperienceParser) Name() string { return "experience" }

// Parse implements Parser.
func (p *ExperienceParser) Parse(lines []string, doc *resume.ParsedDocument) {
	i := 0
	for i < len(lines) {
		entry, consumed, ok := parseEntryBlock(lines, i)
		if !ok {
			entry, consumed, ok = parseEntryLinear(lines, i)
		}
		if consumed < 1 {
			consumed = 1
		}
		i += consumed
		if ok {
			appendExperience(doc, entry)
		}
	}
}

// parseEntryBlock attempts a lookahead parse: classify the start line
// as position or company, extend the block until a new entry boundary
// (or the lookahead limit), then sweep the block for a date line, a
// company line, and a position line, assigning everything else to the
// description. Returns ok=false when the start line fits neither role.
func parseEntryBlock(lines []string, start int) (resume.ExperienceEntry, int, bool) {
	var entry resume.ExperienceEntry
	var st fieldState
	var desc []string

	first := lines[start]
	switch {
	case strings.Contains(first, "|"):
		assignSeparatorLine(first, &entry, &st, &desc)
	case len(first) <= 60 && containsAny(first, jobTitleKeywords) && !containsAny(first, descriptionVerbs):
		entry.Position = liftDates(first, &entry, &st)
		st.hasPosition = true
	case looksLikeCompanyLine(first):
		entry.Company = liftDates(first, &entry, &st)
		st.hasCompany = true
	default:
		return entry, 0, false
	}

	end := start + 1
	previous := first
	for end < len(lines) && end-start < maxEntryLookahead {
		line := lines[end]
		// A boundary is honored only once the current entry already
		// holds the information the line carries; while the block is
		// still looking for its date or company line, such a line is
		// consumed as a continuation.
		if isNewExperienceEntry(line, previous) && !blockStillNeeds(line, st) {
			break
		}
		end++
		previous = line
	}

	for _, line := range lines[start+1 : end] {
		assignExperienceLine(line, &entry, &st, &desc)
	}
	entry.Description = strings.Join(desc, " ")

	return entry, end - start, entry.Position != "" || entry.Company != ""
}

// parseEntryLinear is the fallback strategy: classify lines one at a
// time through the classifier chain until the next entry boundary.
// Always consumes at least one line.
func parseEntryLinear(lines []string, start int) (resume.ExperienceEntry, int, bool) {
	var entry resume.ExperienceEntry
	var st fieldState
	var desc []string

	i := start
	for i < len(lines) {
		line := lines[i]
		if i > start && (st.hasPosition || st.hasCompany) &&
			isNewExperienceEntry(line, lines[i-1]) && !blockStillNeeds(line, st) {
			break
		}
		assignExperienceLine(line, &entry, &st, &desc)
		i++
	}
	entry.Description = strings.Join(desc, " ")

	return entry, i - start, entry.Position != "" || entry.Company != ""
}

// assignExperienceLine routes one line into the entry according to the
// classifier chain.
func assignExperienceLine(line string, entry *resume.ExperienceEntry, st *fieldState, desc *[]string) {
	switch classifyExperienceLine(line, *st).label {
	case labelSeparator:
		assignSeparatorLine(line, entry, st, desc)
	case labelPosition:
		entry.Position = liftDates(line, entry, st)
		st.hasPosition = true
	case labelDate:
		start, end, company := parseDates(line)
		setDates(entry, st, start, end)
		if company != "" && !st.hasCompany {
			entry.Company = company
			st.hasCompany = true
		}
	case labelCompany:
		entry.Company = liftDates(line, entry, st)
		st.hasCompany = true
	default:
		*desc = append(*desc, stripBullet(line))
	}
}

// assignSeparatorLine splits a "Field | Field | Field" line and assigns
// each part by its own signals ("Acme Corp | 2020 - Present",
// "Software Engineer | Acme | Jan 2020 - Dec 2021").
func assignSeparatorLine(line string, entry *resume.ExperienceEntry, st *fieldState, desc *[]string) {
	for _, part := range strings.Split(line, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case !st.hasDates && datePattern.MatchString(part):
			start, end, company := parseDates(part)
			setDates(entry, st, start, end)
			if company != "" && !st.hasCompany {
				entry.Company = company
				st.hasCompany = true
			}
		case !st.hasPosition && containsAny(part, jobTitleKeywords):
			entry.Position = part
			st.hasPosition = true
		case !st.hasCompany:
			entry.Company = part
			st.hasCompany = true
		default:
			*desc = append(*desc, part)
		}
	}
}

// liftDates removes an embedded date span from a field line, recording
// it on the entry, and returns the remaining text.
func liftDates(line string, entry *resume.ExperienceEntry, st *fieldState) string {
	span := dateRangePattern.FindString(line)
	if span == "" {
		span = datePattern.FindString(line)
	}
	if span == "" || st.hasDates {
		return strings.TrimSpace(line)
	}
	start, end := splitDateRange(span)
	setDates(entry, st, start, end)
	cleaned := strings.Replace(line, span, "", 1)
	return strings.Trim(cleaned, " \t,-|()")
}

func setDates(entry *resume.ExperienceEntry, st *fieldState, start, end string) {
	if st.hasDates || (start == "" && end == "") {
		return
	}
	entry.StartDate = start
	entry.EndDate = end
	st.hasDates = true
}

// blockStillNeeds reports whether a would-be boundary line carries a
// field the current entry is still missing, in which case it belongs
// to the current block.
func blockStillNeeds(line string, st fieldState) bool {
	if strings.Contains(line, "|") && (!st.hasCompany || !st.hasDates) {
		return true
	}
	if !st.hasDates && len(line) <= 60 && datePattern.MatchString(line) {
		return true
	}
	if !st.hasPosition && containsAny(line, jobTitleKeywords) && !yearPattern.MatchString(line) {
		return true
	}
	if !st.hasCompany && looksLikeCompanyLine(line) {
		return true
	}
	return false
}

// looksLikeCompanyLine reports whether a line has the shape of an
// employer name: company vocabulary, or a short capitalized standalone
// phrase without job or date signals.
func looksLikeCompanyLine(line string) bool {
	if containsAny(line, jobTitleKeywords) || containsAny(line, descriptionVerbs) {
		return false
	}
	if containsAny(line, companyIndicators) && len(line) <= 60 {
		return true
	}
	return isShortCapitalizedPhrase(line, 5) &&
		!datePattern.MatchString(line) &&
		!strings.HasPrefix(line, "• ")
}

// appendExperience appends an entry unless it duplicates an accepted
// one: both company and position match case-insensitively, or one
// matches and the other side is empty in either entry. Duplicates merge
// their non-empty fields into the first-seen entry instead of being
// appended, so output order preserves first appearance.
func appendExperience(doc *resume.ParsedDocument, entry resume.ExperienceEntry) {
	for i := range doc.Experience {
		existing := &doc.Experience[i]
		companyMatch := existing.Company != "" && strings.EqualFold(existing.Company, entry.Company)
		positionMatch := existing.Position != "" && strings.EqualFold(existing.Position, entry.Position)
		duplicate := (companyMatch && positionMatch) ||
			(companyMatch && (existing.Position == "" || entry.Position == "")) ||
			(positionMatch && (existing.Company == "" || entry.Company == ""))
		if !duplicate {
			continue
		}
		mergeExperience(existing, entry)
		return
	}

	entry.ID = len(doc.Experience) + 1
	doc.Experience = append(doc.Experience, entry)
}

// mergeExperience fills empty fields of the kept entry from the
// duplicate.
func mergeExperience(kept *resume.ExperienceEntry, dup resume.ExperienceEntry) {
	if kept.Company == "" {
		kept.Company = dup.Company
	}
	if kept.Position == "" {
		kept.Position = dup.Position
	}
	if kept.StartDate == "" && kept.EndDate == "" {
		kept.StartDate = dup.StartDate
		kept.EndDate = dup.EndDate
	}
	if kept.Description == "" {
		kept.Description = dup.Description
	}
}
