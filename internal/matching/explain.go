package matching

import (
	"fmt"

	"github.com/jmartin/jobmatch/internal/types"
)

// experienceStrengthYears is the threshold above which total experience
// becomes a strengths bullet.
const experienceStrengthYears = 5.0

// missingSkillsDetailLimit is the largest number of missing skills listed
// individually before collapsing into a single summary bullet.
const missingSkillsDetailLimit = 3

// explanation holds the derived lists of a match report.
type explanation struct {
	matchingSkills []string
	missingSkills  []string
	strengths      []string
	weaknesses     []string
}

// explain derives matching/missing skills and strengths/weaknesses bullets
// from the same feature sets the scorer used. Skill lists keep the order in
// which the skills appear in the job text. The experience-gap bullet is
// only produced when the job text actually stated a years requirement.
func explain(resume *types.ResumeFeatures, job *types.JobFeatures, requiredYears float64, yearsStated bool) explanation {
	matching := job.RequiredSkills.Intersect(resume.Skills)
	missing := job.RequiredSkills.Subtract(resume.Skills)

	return explanation{
		matchingSkills: matching,
		missingSkills:  missing,
		strengths:      buildStrengths(resume, matching),
		weaknesses:     buildWeaknesses(resume, missing, requiredYears, yearsStated),
	}
}

func buildStrengths(resume *types.ResumeFeatures, matchingSkills []string) []string {
	strengths := make([]string, 0, len(matchingSkills)+2)
	for _, skill := range matchingSkills {
		strengths = append(strengths, fmt.Sprintf("Has experience with %s", skill))
	}

	if resume.TotalExperienceYears >= experienceStrengthYears {
		strengths = append(strengths,
			fmt.Sprintf("Has %.1f years of relevant experience", resume.TotalExperienceYears))
	}

	if name := resume.EducationLevel.DegreeName(); name != "" {
		strengths = append(strengths, fmt.Sprintf("Has %s", name))
	}

	return strengths
}

func buildWeaknesses(resume *types.ResumeFeatures, missingSkills []string, requiredYears float64, yearsStated bool) []string {
	weaknesses := make([]string, 0, len(missingSkills)+1)

	if len(missingSkills) > 0 {
		if len(missingSkills) <= missingSkillsDetailLimit {
			for _, skill := range missingSkills {
				weaknesses = append(weaknesses, fmt.Sprintf("Missing experience with %s", skill))
			}
		} else {
			weaknesses = append(weaknesses,
				fmt.Sprintf("Missing %d required skills", len(missingSkills)))
		}
	}

	if yearsStated && requiredYears > resume.TotalExperienceYears {
		weaknesses = append(weaknesses,
			fmt.Sprintf("Has %.1f years of experience but job requires %.0f",
				resume.TotalExperienceYears, requiredYears))
	}

	return weaknesses
}
