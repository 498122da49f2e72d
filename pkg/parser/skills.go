package parser

import (
	"regexp"
	"strings"

	"github.com/coolbeans/vitae/pkg/resume"
)

// languageLinePattern matches "English - Fluent", "Spanish: basic" and
// "German (Intermediate)" shapes.
var languageLinePattern = regexp.MustCompile(`(?i)^([A-Za-z ]{2,30}?)\s*(?:[-:]\s*|\(\s*)(native|fluent|advanced|intermediate|basic)\s*\)?$`)

// skillCategoryPrefixPattern strips "Programming Languages:" style
// category labels from a skills line before splitting.
var skillCategoryPrefixPattern = regexp.MustCompile(`^[A-Za-z &/]+:\s*`)

// SkillsLanguagesParser converts a skills block into the flat skill
// list plus {language, proficiency} pairs. Lines split on commas,
// semicolons, pipes, and slash-free bullet items; a line naming a
// language with a recognized proficiency level becomes a language
// entry instead of a skill.
type SkillsLanguagesParser struct{}

// NewSkillsLanguagesParser creates a skills section parser.
func NewSkillsLanguagesParser() *SkillsLanguagesParser {
	return &SkillsLanguagesParser{}
}

// Name implements Parser.
func (p *SkillsLanguagesParser) Name() string { return "skills_languages" }

// Parse implements Parser.
func (p *SkillsLanguagesParser) Parse(lines []string, doc *resume.ParsedDocument) {
	for _, line := range lines {
		line = stripBullet(line)

		if lang, level, ok := matchLanguageLine(line); ok {
			appendLanguage(doc, lang, level)
			continue
		}

		line = skillCategoryPrefixPattern.ReplaceAllString(line, "")
		for _, token := range splitSkillTokens(line) {
			if lang, level, ok := matchLanguageLine(token); ok {
				appendLanguage(doc, lang, level)
				continue
			}
			appendSkill(doc, token)
		}
	}
}

// splitSkillTokens splits a skills line on list delimiters.
func splitSkillTokens(line string) []string {
	replacer := strings.NewReplacer(";", ",", "|", ",", "•", ",")
	var tokens []string
	for _, token := range strings.Split(replacer.Replace(line), ",") {
		token = strings.TrimSpace(token)
		if token == "" || len(token) > 50 {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func matchLanguageLine(line string) (language, proficiency string, ok bool) {
	m := languageLinePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.ToLower(m[2]), true
}

func appendSkill(doc *resume.ParsedDocument, skill string) {
	for _, existing := range doc.Skills {
		if strings.EqualFold(existing, skill) {
			return
		}
	}
	doc.Skills = append(doc.Skills, skill)
}

func appendLanguage(doc *resume.ParsedDocument, language, proficiency string) {
	for _, existing := range doc.Languages {
		if strings.EqualFold(existing.Language, language) {
			return
		}
	}
	doc.Languages = append(doc.Languages, resume.LanguageEntry{
		Language:    language,
		Proficiency: proficiency,
	})
}
