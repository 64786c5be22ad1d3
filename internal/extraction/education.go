package extraction

import (
	"strings"

	"github.com/jmartin/jobmatch/internal/types"
	"github.com/jmartin/jobmatch/internal/vocab"
)

// DegreeLevel derives the education level of a single degree text by
// scanning the keyword table, longest keyword first. The first keyword
// found on a whole-token boundary wins.
func DegreeLevel(degree string, table *vocab.EducationTable) types.EducationLevel {
	degreeLower := strings.ToLower(degree)
	for _, keyword := range table.Keywords() {
		if indexWithBoundary(degreeLower, keyword) >= 0 {
			return table.Rank(keyword)
		}
	}
	return types.LevelNone
}

// HighestEducationLevel returns the maximum level across all education
// entries, or LevelNone when there are none.
func HighestEducationLevel(entries []types.EducationEntry, table *vocab.EducationTable) types.EducationLevel {
	highest := types.LevelNone
	for _, entry := range entries {
		if level := DegreeLevel(entry.Degree, table); level > highest {
			highest = level
		}
	}
	return highest
}

// RequiredEducationLevel derives the education level a job description asks
// for by scanning the full text against the keyword table and taking the
// highest rank mentioned. Jobs that do not mention a degree default to
// bachelor's.
func RequiredEducationLevel(jobText string, table *vocab.EducationTable) types.EducationLevel {
	textLower := strings.ToLower(jobText)
	highest := types.LevelNone
	for _, keyword := range table.Keywords() {
		if indexWithBoundary(textLower, keyword) < 0 {
			continue
		}
		if rank := table.Rank(keyword); rank > highest {
			highest = rank
		}
	}
	if highest == types.LevelNone {
		return types.LevelBachelor
	}
	return highest
}
