package matching

import (
	"strings"

	"github.com/jmartin/jobmatch/internal/extraction"
	"github.com/jmartin/jobmatch/internal/types"
	"github.com/jmartin/jobmatch/internal/vocab"
)

// Matcher scores résumé feature sets against job feature sets. It holds no
// mutable state beyond its weight configuration and the read-only education
// table, so it may be shared by concurrent matches.
type Matcher struct {
	weights  Weights
	eduTable *vocab.EducationTable
}

// NewMatcher creates a Matcher with the given weights. Zero-value weights
// select the defaults; a nil education table selects the default table.
func NewMatcher(weights Weights, eduTable *vocab.EducationTable) (*Matcher, error) {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if eduTable == nil {
		eduTable = vocab.DefaultEducation()
	}
	return &Matcher{weights: weights, eduTable: eduTable}, nil
}

// Match computes the full match report for one (résumé, job) pair. It is a
// pure synchronous computation: extraction failures have already been
// degraded to neutral defaults inside the feature sets, so Match always
// returns a complete, well-formed report and never fails.
//
// Empty job or résumé text is a valid terminal state and yields a zero
// report with empty lists.
func (m *Matcher) Match(resume *types.ResumeFeatures, job *types.JobFeatures) *types.MatchReport {
	if strings.TrimSpace(job.RawText) == "" || strings.TrimSpace(resume.RawText) == "" {
		return types.EmptyMatchReport()
	}

	requiredYears, yearsStated := ExtractRequiredYears(job.RawText)
	requiredEducation := extraction.RequiredEducationLevel(job.RawText, m.eduTable)

	skill := skillSubscore(job.RequiredSkills, resume.Skills)
	experience := experienceSubscore(resume.TotalExperienceYears, requiredYears)
	education := educationSubscore(resume.EducationLevel, requiredEducation)
	semantic := semanticSubscore(resume.SemanticVector, job.SemanticVector)

	overall := (skill*m.weights.Skill +
		experience*m.weights.Experience +
		education*m.weights.Education +
		semantic*m.weights.Semantic) * 100

	details := explain(resume, job, requiredYears, yearsStated)

	return &types.MatchReport{
		OverallScore: round1(overall),
		Subscores: types.Subscores{
			Skill:      round1(skill * 100),
			Experience: round1(experience * 100),
			Education:  round1(education * 100),
			Semantic:   round1(semantic * 100),
		},
		MatchingSkills: details.matchingSkills,
		MissingSkills:  details.missingSkills,
		Strengths:      details.strengths,
		Weaknesses:     details.weaknesses,
	}
}
