package extraction

import (
	"time"

	"go.uber.org/zap"

	"github.com/jmartin/jobmatch/internal/types"
)

// ResolveExperience parses the date ranges of the given work-history entries
// and computes each record's duration in fractional years. Entries with
// unparseable dates are dropped from the result and logged at debug level;
// they contribute zero experience rather than failing the extraction.
func ResolveExperience(entries []types.ExperienceEntry, eval time.Time, logger *zap.Logger) []types.ExperienceRecord {
	records := make([]types.ExperienceRecord, 0, len(entries))
	for _, entry := range entries {
		start, _, ok := ParseYearMonth(entry.StartDate, eval)
		if !ok {
			logDroppedEntry(logger, entry, "start_date")
			continue
		}
		end, present, ok := ParseYearMonth(entry.EndDate, eval)
		if !ok {
			logDroppedEntry(logger, entry, "end_date")
			continue
		}
		records = append(records, types.ExperienceRecord{
			Title:   entry.Title,
			Company: entry.Company,
			Start:   start,
			End:     end,
			Present: present,
			Years:   start.YearsUntil(end),
		})
	}
	return records
}

// TotalExperienceYears sums the durations of all records.
func TotalExperienceYears(records []types.ExperienceRecord) float64 {
	total := 0.0
	for _, record := range records {
		total += record.Years
	}
	return total
}

func logDroppedEntry(logger *zap.Logger, entry types.ExperienceEntry, field string) {
	if logger == nil {
		return
	}
	logger.Debug("dropping experience entry with unparseable date",
		zap.String("title", entry.Title),
		zap.String("company", entry.Company),
		zap.String("field", field),
	)
}
