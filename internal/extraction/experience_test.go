package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmartin/jobmatch/internal/types"
)

func TestResolveExperience_SumsDurations(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Title: "Engineer", Company: "Acme", StartDate: "2018-01", EndDate: "2020-01"},
		{Title: "Senior Engineer", Company: "Globex", StartDate: "2020-01", EndDate: "2023-07"},
	}

	records := ResolveExperience(entries, evalDate, nil)

	assert.Len(t, records, 2)
	assert.InDelta(t, 2.0, records[0].Years, 0.001)
	assert.InDelta(t, 3.5, records[1].Years, 0.001)
	assert.InDelta(t, 5.5, TotalExperienceYears(records), 0.001)
}

func TestResolveExperience_PresentResolvesToEvalDate(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Title: "Engineer", StartDate: "2024-06", EndDate: "present"},
	}

	records := ResolveExperience(entries, evalDate, nil)

	assert.Len(t, records, 1)
	assert.True(t, records[0].Present)
	// 2024-06 through 2025-06 is exactly one year
	assert.InDelta(t, 1.0, records[0].Years, 0.001)
}

func TestResolveExperience_UnparseableDateDropped(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Title: "Engineer", StartDate: "sometime", EndDate: "2020-01"},
		{Title: "Analyst", StartDate: "2019-01", EndDate: "2020-01"},
	}

	records := ResolveExperience(entries, evalDate, nil)

	assert.Len(t, records, 1)
	assert.Equal(t, "Analyst", records[0].Title)
	assert.InDelta(t, 1.0, TotalExperienceYears(records), 0.001)
}

func TestResolveExperience_MixedDateFormats(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Title: "Engineer", StartDate: "01/2020", EndDate: "2021/01"},
	}

	records := ResolveExperience(entries, evalDate, nil)

	assert.Len(t, records, 1)
	assert.InDelta(t, 1.0, records[0].Years, 0.001)
}

func TestTotalExperienceYears_Empty(t *testing.T) {
	assert.Equal(t, 0.0, TotalExperienceYears(nil))
}
