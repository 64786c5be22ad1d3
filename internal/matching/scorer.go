// Package matching computes match reports between résumé and job feature
// sets: four independent subscores combined by fixed weights into one
// overall percentage, plus human-readable explanation lists.
package matching

import (
	"fmt"
	"math"

	"github.com/jmartin/jobmatch/internal/embedding"
	"github.com/jmartin/jobmatch/internal/types"
)

// Default weights for the subscore components. They sum to 1.0.
const (
	defaultSkillWeight      = 0.40
	defaultExperienceWeight = 0.30
	defaultEducationWeight  = 0.15
	defaultSemanticWeight   = 0.15
)

// neutralSemantic is the subscore substituted when either semantic vector
// is missing or degenerate, so extraction failures are not penalized.
const neutralSemantic = 0.5

// Weights holds the relative importance of each subscore.
type Weights struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Semantic   float64 `json:"semantic"`
}

// DefaultWeights returns the standard weight configuration.
func DefaultWeights() Weights {
	return Weights{
		Skill:      defaultSkillWeight,
		Experience: defaultExperienceWeight,
		Education:  defaultEducationWeight,
		Semantic:   defaultSemanticWeight,
	}
}

// Validate checks that all weights are non-negative and sum to 1.0.
func (w Weights) Validate() error {
	if w.Skill < 0 || w.Experience < 0 || w.Education < 0 || w.Semantic < 0 {
		return fmt.Errorf("weights must be non-negative")
	}
	sum := w.Skill + w.Experience + w.Education + w.Semantic
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

// skillSubscore is the recall of required skills: the fraction of skills the
// job asks for that the résumé has. Extra résumé skills neither help nor
// hurt. An empty requirement set scores 0.
func skillSubscore(required, resume *types.SkillSet) float64 {
	if required.Len() == 0 {
		return 0
	}
	matched := 0
	for _, skill := range required.Slice() {
		if resume.Contains(skill) {
			matched++
		}
	}
	return float64(matched) / float64(required.Len())
}

// experienceSubscore compares candidate years against the job's required
// years with an asymmetric piecewise ramp: exceeding the bar by 50% scores
// 1.0, meeting it scores at least 0.8, and falling short is capped at 0.8
// regardless of how close the candidate gets.
func experienceSubscore(candidateYears, requiredYears float64) float64 {
	if requiredYears <= 0 {
		requiredYears = DefaultRequiredYears
	}
	switch {
	case candidateYears >= requiredYears*1.5:
		return 1.0
	case candidateYears >= requiredYears:
		return 0.8 + 0.2*(candidateYears-requiredYears)/(requiredYears*0.5)
	default:
		return math.Min(0.8, candidateYears/requiredYears)
	}
}

// educationSubscore maps the gap between candidate and required education
// rank onto a fixed step function.
func educationSubscore(candidate, required types.EducationLevel) float64 {
	switch {
	case candidate >= required:
		return 1.0
	case candidate == required-1:
		return 0.7
	case candidate > types.LevelNone:
		return 0.4
	default:
		return 0.0
	}
}

// semanticSubscore is the cosine similarity of the two semantic vectors,
// clamped to [0, 1]. Missing or all-zero vectors yield the neutral default
// rather than 0 or 1, to avoid penalizing extraction failures.
func semanticSubscore(resumeVec, jobVec []float32) float64 {
	if embedding.IsZero(resumeVec) || embedding.IsZero(jobVec) {
		return neutralSemantic
	}
	return embedding.Cosine(resumeVec, jobVec)
}

// round1 rounds to one decimal place for display.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
