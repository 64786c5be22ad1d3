package types

import "github.com/go-playground/validator/v10"

// ResumeDocument is the structured résumé supplied by the caller, usually
// loaded from a JSON file. Raw text may come from the same file or be
// extracted separately from a PDF or text export of the résumé.
type ResumeDocument struct {
	Contact    ContactInfo       `json:"contact"`
	Summary    string            `json:"summary,omitempty"`
	Skills     []string          `json:"skills" validate:"required,min=1"`
	Experience []ExperienceEntry `json:"experience" validate:"dive"`
	Education  []EducationEntry  `json:"education" validate:"dive"`
	RawText    string            `json:"raw_text,omitempty"`
}

// ContactInfo holds candidate contact details used for cover letters.
type ContactInfo struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry is a single work-history entry. Dates are strings in
// YYYY-MM, YYYY/MM, or MM/YYYY format; the end date may be "present" or
// "current" for an ongoing role.
type ExperienceEntry struct {
	Title       string `json:"title" validate:"required,min=1"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is a single education entry. The degree text is matched
// against the education keyword table to derive an ordinal level.
type EducationEntry struct {
	Degree      string `json:"degree" validate:"required,min=1"`
	Institution string `json:"institution,omitempty"`
	Field       string `json:"field,omitempty"`
}

// Validate validates the ResumeDocument using struct tags.
func (d *ResumeDocument) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}
