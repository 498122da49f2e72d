package section

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vocabulary maps canonical section names to the header synonyms that
// identify them. The built-in table covers common resume templates;
// deployments whose documents use different wording can extend it from
// a YAML file.
type Vocabulary struct {
	synonyms map[Name][]string
}

// defaultSynonyms is the built-in header synonym table. Entries are
// lowercase; matching lowercases the candidate line first.
var defaultSynonyms = map[Name][]string{
	Summary: {
		"summary", "professional summary", "career summary", "profile",
		"professional profile", "about me", "about",
	},
	Objective: {
		"objective", "career objective", "professional objective",
	},
	Experience: {
		"experience", "work experience", "employment", "employment history",
		"professional experience", "work history", "career history",
		"internships", "internship experience",
	},
	Education: {
		"education", "academic background", "academics", "qualifications",
		"educational qualifications", "academic qualifications", "degrees",
	},
	Skills: {
		"skills", "technical skills", "core competencies", "competencies",
		"expertise", "technologies", "skills and abilities", "languages",
	},
	Projects: {
		"projects", "personal projects", "academic projects", "key projects",
		"portfolio",
	},
	Activities: {
		"activities", "extracurricular activities",
		"co-curricular activities", "extracurriculars", "achievements",
	},
	Volunteering: {
		"volunteering", "volunteer experience", "volunteer work",
		"community service", "community involvement",
	},
	Certificates: {
		"certificates", "certifications", "certifications and licenses",
		"licenses", "courses", "training",
	},
	Reference: {
		"reference", "references", "referees",
	},
}

// DefaultVocabulary returns a vocabulary backed by the built-in table.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{synonyms: defaultSynonyms}
}

// vocabularyFile is the YAML override document shape: canonical section
// name to extra synonyms.
type vocabularyFile struct {
	Sections map[string][]string `yaml:"sections"`
}

// LoadVocabulary reads a YAML synonym override file and merges it into
// the built-in table. Unknown canonical names are rejected so typos in
// override files fail loudly instead of silently never matching.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary file: %w", err)
	}

	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing vocabulary file %s: %w", path, err)
	}

	merged := make(map[Name][]string, len(defaultSynonyms))
	for name, syns := range defaultSynonyms {
		merged[name] = append([]string(nil), syns...)
	}
	for rawName, extra := range file.Sections {
		name := Name(rawName)
		if _, known := merged[name]; !known {
			return nil, fmt.Errorf("vocabulary file %s: unknown section name %q", path, rawName)
		}
		merged[name] = append(merged[name], extra...)
	}

	return &Vocabulary{synonyms: merged}, nil
}

// Synonyms returns the synonym list for a canonical section name.
func (v *Vocabulary) Synonyms(name Name) []string {
	return v.synonyms[name]
}
