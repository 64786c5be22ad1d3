package types

// Subscores holds the four component scores of a match, each on a 0-100
// scale rounded to one decimal place.
type Subscores struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Semantic   float64 `json:"semantic"`
}

// MatchReport is the output of matching one résumé against one job
// description. It is a value object with no persistent identity.
type MatchReport struct {
	OverallScore   float64   `json:"overall_score"`
	Subscores      Subscores `json:"subscores"`
	MatchingSkills []string  `json:"matching_skills"`
	MissingSkills  []string  `json:"missing_skills"`
	Strengths      []string  `json:"strengths"`
	Weaknesses     []string  `json:"weaknesses"`
}

// EmptyMatchReport returns the report for a match with no usable input:
// zero scores and empty lists rather than nils, so callers and JSON
// consumers always see well-formed output.
func EmptyMatchReport() *MatchReport {
	return &MatchReport{
		MatchingSkills: []string{},
		MissingSkills:  []string{},
		Strengths:      []string{},
		Weaknesses:     []string{},
	}
}
