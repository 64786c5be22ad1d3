package types

import (
	"fmt"
	"time"
)

// YearMonth is a calendar month with no day component, the resolution used
// for experience date ranges.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Before reports whether y is strictly earlier than other.
func (y YearMonth) Before(other YearMonth) bool {
	if y.Year != other.Year {
		return y.Year < other.Year
	}
	return y.Month < other.Month
}

// YearsUntil returns the span from y to end in fractional years,
// floored at zero.
func (y YearMonth) YearsUntil(end YearMonth) float64 {
	years := float64(end.Year-y.Year) + float64(end.Month-y.Month)/12.0
	if years < 0 {
		return 0
	}
	return years
}

// String formats the month as YYYY-MM.
func (y YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", y.Year, int(y.Month))
}

// ExperienceRecord is a work-history entry with resolved dates. Ongoing
// roles have Present set; their end date is the evaluation month.
type ExperienceRecord struct {
	Title   string    `json:"title"`
	Company string    `json:"company,omitempty"`
	Start   YearMonth `json:"start"`
	End     YearMonth `json:"end"`
	Present bool      `json:"present,omitempty"`
	Years   float64   `json:"years"`
}

// ResumeFeatures is the structured feature set extracted once per résumé.
// It is immutable for the lifetime of a matching session.
type ResumeFeatures struct {
	Skills               *SkillSet          `json:"-"`
	SkillList            []string           `json:"skills"`
	Experience           []ExperienceRecord `json:"experience"`
	TotalExperienceYears float64            `json:"total_experience_years"`
	EducationLevel       EducationLevel     `json:"education_level"`
	RawText              string             `json:"-"`
	SemanticVector       []float32          `json:"semantic_vector,omitempty"`
}

// JobFeatures is the feature set extracted from a single job description.
// It is stateless and discarded after scoring.
type JobFeatures struct {
	RequiredSkills *SkillSet `json:"-"`
	SkillList      []string  `json:"required_skills"`
	RawText        string    `json:"-"`
	SemanticVector []float32 `json:"semantic_vector,omitempty"`
}
