package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmartin/jobmatch/internal/types"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcher(Weights{}, nil)
	require.NoError(t, err)
	return m
}

func TestMatch_ReferenceScenario(t *testing.T) {
	// 6 years against "5+ years of experience", bachelor vs unstated
	// requirement, 2 of 3 required skills held.
	resume := &types.ResumeFeatures{
		Skills:               types.NewSkillSet("python", "aws", "docker"),
		TotalExperienceYears: 6,
		EducationLevel:       types.LevelBachelor,
		RawText:              "resume text",
	}
	job := &types.JobFeatures{
		RequiredSkills: types.NewSkillSet("python", "aws", "react"),
		RawText:        "Requires 5+ years of experience with python, aws and react.",
	}

	report := newTestMatcher(t).Match(resume, job)

	assert.InDelta(t, 66.7, report.Subscores.Skill, 0.05)
	// 0.8 + 0.2*(6-5)/(5*0.5) = 0.88
	assert.InDelta(t, 88.0, report.Subscores.Experience, 0.05)
	assert.InDelta(t, 100.0, report.Subscores.Education, 0.05)
	// no vectors supplied, neutral semantic
	assert.InDelta(t, 50.0, report.Subscores.Semantic, 0.05)
	assert.Equal(t, []string{"python", "aws"}, report.MatchingSkills)
	assert.Equal(t, []string{"react"}, report.MissingSkills)
	// 0.40*0.667 + 0.30*0.88 + 0.15*1.0 + 0.15*0.5 = 0.7557
	assert.InDelta(t, 75.6, report.OverallScore, 0.05)
}

func TestMatch_EmptyJobText(t *testing.T) {
	resume := &types.ResumeFeatures{
		Skills:  types.NewSkillSet("python"),
		RawText: "resume text",
	}
	job := &types.JobFeatures{RequiredSkills: types.NewSkillSet(), RawText: "   "}

	report := newTestMatcher(t).Match(resume, job)

	assert.Equal(t, 0.0, report.OverallScore)
	assert.Empty(t, report.MatchingSkills)
	assert.Empty(t, report.MissingSkills)
	assert.NotNil(t, report.MatchingSkills)
}

func TestMatch_EmptyResumeText(t *testing.T) {
	resume := &types.ResumeFeatures{Skills: types.NewSkillSet(), RawText: ""}
	job := &types.JobFeatures{
		RequiredSkills: types.NewSkillSet("python"),
		RawText:        "python role",
	}

	report := newTestMatcher(t).Match(resume, job)

	assert.Equal(t, 0.0, report.OverallScore)
	assert.Empty(t, report.MissingSkills)
}

func TestMatch_OverallScoreWithinBounds(t *testing.T) {
	matcher := newTestMatcher(t)
	resumes := []*types.ResumeFeatures{
		{Skills: types.NewSkillSet(), RawText: "x", EducationLevel: types.LevelNone},
		{Skills: types.NewSkillSet("python", "aws"), RawText: "x", TotalExperienceYears: 40, EducationLevel: types.LevelDoctorate},
	}
	jobs := []*types.JobFeatures{
		{RequiredSkills: types.NewSkillSet(), RawText: "y"},
		{RequiredSkills: types.NewSkillSet("python", "aws"), RawText: "requires 1 year of experience"},
	}

	for _, resume := range resumes {
		for _, job := range jobs {
			report := matcher.Match(resume, job)
			assert.GreaterOrEqual(t, report.OverallScore, 0.0)
			assert.LessOrEqual(t, report.OverallScore, 100.0)
		}
	}
}

func TestMatch_Idempotent(t *testing.T) {
	matcher := newTestMatcher(t)
	resume := &types.ResumeFeatures{
		Skills:               types.NewSkillSet("python", "aws"),
		TotalExperienceYears: 4,
		EducationLevel:       types.LevelBachelor,
		RawText:              "resume text",
		SemanticVector:       []float32{0.2, 0.4, 0.1},
	}
	job := &types.JobFeatures{
		RequiredSkills: types.NewSkillSet("python", "kafka"),
		RawText:        "minimum of 3 years with python and kafka",
		SemanticVector: []float32{0.25, 0.35, 0.05},
	}

	first := matcher.Match(resume, job)
	second := matcher.Match(resume, job)

	assert.Equal(t, first, second)
}

func TestMatch_SemanticVectorsUsedWhenPresent(t *testing.T) {
	matcher := newTestMatcher(t)
	resume := &types.ResumeFeatures{
		Skills:         types.NewSkillSet("python"),
		RawText:        "resume",
		SemanticVector: []float32{1, 0},
	}
	job := &types.JobFeatures{
		RequiredSkills: types.NewSkillSet("python"),
		RawText:        "python job",
		SemanticVector: []float32{1, 0},
	}

	report := matcher.Match(resume, job)

	assert.InDelta(t, 100.0, report.Subscores.Semantic, 0.05)
}

func TestMatch_RequiredEducationFromJobText(t *testing.T) {
	matcher := newTestMatcher(t)
	resume := &types.ResumeFeatures{
		Skills:         types.NewSkillSet("python"),
		EducationLevel: types.LevelBachelor,
		RawText:        "resume",
	}
	job := &types.JobFeatures{
		RequiredSkills: types.NewSkillSet("python"),
		RawText:        "PhD required for this python research role",
	}

	report := matcher.Match(resume, job)

	// bachelor is two ranks below doctorate
	assert.InDelta(t, 40.0, report.Subscores.Education, 0.05)
}

func TestMatch_NoGapWeaknessWithoutStatedRequirement(t *testing.T) {
	matcher := newTestMatcher(t)
	resume := &types.ResumeFeatures{
		Skills:               types.NewSkillSet("python"),
		TotalExperienceYears: 1,
		EducationLevel:       types.LevelBachelor,
		RawText:              "resume",
	}
	job := &types.JobFeatures{
		RequiredSkills: types.NewSkillSet("python"),
		RawText:        "python role with no stated requirement",
	}

	report := matcher.Match(resume, job)

	// The defaulted 3 years still drives the subscore down, silently.
	assert.Less(t, report.Subscores.Experience, 50.0)
	for _, w := range report.Weaknesses {
		assert.NotContains(t, w, "job requires")
	}
}

func TestNewMatcher_RejectsInvalidWeights(t *testing.T) {
	_, err := NewMatcher(Weights{Skill: 1, Experience: 1, Education: 1, Semantic: 1}, nil)

	assert.Error(t, err)
}
