// Package resume defines the structured output model produced by the
// parsing pipeline. Field names and JSON keys form the external contract
// consumed by downstream services and must stay stable.
package resume

// BasicDetails holds contact information extracted from the leading
// portion of a resume. Every field is optional and defaults to "".
type BasicDetails struct {
	FullName          string `json:"fullName"`
	ProfessionalTitle string `json:"professionalTitle"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Location          string `json:"location"`
	Website           string `json:"website"`
	Github            string `json:"github"`
	Linkedin          string `json:"linkedin"`
}

// ExperienceEntry is one job. ID is the 1-based position in the final
// experience list.
type ExperienceEntry struct {
	ID          int    `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// EducationEntry is one degree or program.
type EducationEntry struct {
	ID          int    `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
	Grade       string `json:"grade"`
	Description string `json:"description"`
}

// ProjectEntry is one project. TechStack is a comma-separated list
// recovered from a parenthetical or a dedicated line.
type ProjectEntry struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TechStack   string `json:"tech_stack"`
	Description string `json:"description"`
}

// ActivityEntry is one extracurricular or professional activity.
type ActivityEntry struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// VolunteeringEntry is one volunteering engagement.
type VolunteeringEntry struct {
	ID           int    `json:"id"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Description  string `json:"description"`
}

// CertificateEntry is one certification or course completion.
type CertificateEntry struct {
	CertificateName string `json:"certificateName"`
	Link            string `json:"link"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	InstituteName   string `json:"instituteName"`
}

// LanguageEntry pairs a spoken language with a proficiency level.
// Proficiency is one of: native, fluent, advanced, intermediate, basic.
type LanguageEntry struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// ReferenceEntry is one professional reference.
type ReferenceEntry struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Relationship string `json:"relationship"`
}

// ParsedDocument is the terminal output of the pipeline: one per input
// document, assembled once and never mutated afterwards.
type ParsedDocument struct {
	BasicDetails BasicDetails        `json:"basicDetails"`
	Summary      string              `json:"summary"`
	Objective    string              `json:"objective"`
	Experience   []ExperienceEntry   `json:"experience"`
	Education    []EducationEntry    `json:"education"`
	Skills       []string            `json:"skills"`
	Languages    []LanguageEntry     `json:"languages"`
	Activities   []ActivityEntry     `json:"activities"`
	Projects     []ProjectEntry      `json:"projects"`
	Volunteering []VolunteeringEntry `json:"volunteering"`
	Certificates []CertificateEntry  `json:"certificates"`
	References   []ReferenceEntry    `json:"references"`
}

// NewParsedDocument returns a fully shaped document: every array is
// initialized to an empty (non-nil) slice so JSON output always carries
// [] rather than null, and every scalar defaults to "".
func NewParsedDocument() *ParsedDocument {
	return &ParsedDocument{
		Experience:   []ExperienceEntry{},
		Education:    []EducationEntry{},
		Skills:       []string{},
		Languages:    []LanguageEntry{},
		Activities:   []ActivityEntry{},
		Projects:     []ProjectEntry{},
		Volunteering: []VolunteeringEntry{},
		Certificates: []CertificateEntry{},
		References:   []ReferenceEntry{},
	}
}
