package extraction

import (
	"strings"
	"time"

	"github.com/jmartin/jobmatch/internal/types"
)

// yearMonthLayouts are the accepted date formats, tried in order.
var yearMonthLayouts = []string{"2006-01", "2006/01", "01/2006"}

// ParseYearMonth parses a year-month date string in YYYY-MM, YYYY/MM, or
// MM/YYYY format. "present" and "current" (any case) resolve to the
// evaluation month and are reported via the second return value. The final
// return value is false for unparseable input; such dates contribute zero
// experience and are not retried.
func ParseYearMonth(s string, eval time.Time) (ym types.YearMonth, present bool, ok bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return types.YearMonth{}, false, false
	}

	switch strings.ToLower(trimmed) {
	case "present", "current":
		return types.YearMonth{Year: eval.Year(), Month: eval.Month()}, true, true
	}

	for _, layout := range yearMonthLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return types.YearMonth{Year: parsed.Year(), Month: parsed.Month()}, false, true
		}
	}
	return types.YearMonth{}, false, false
}
