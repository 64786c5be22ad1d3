package matching

import (
	"regexp"
	"strconv"
)

// DefaultRequiredYears is assumed when a job description does not state a
// years-of-experience requirement.
const DefaultRequiredYears = 3.0

// requiredYearsPatterns recognize phrases like "5+ years of experience",
// "minimum of 3 years", and "at least 2 yrs". They are tried in order and
// the first match wins.
var requiredYearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years|yrs|yr)(?:\s*of)?\s*(?:experience|work)`),
	regexp.MustCompile(`(?i)(?:experience|work)(?:\s*of)?\s*(\d+)\+?\s*(?:years|yrs|yr)`),
	regexp.MustCompile(`(?i)minimum\s*(?:of\s*)?(\d+)\+?\s*(?:years|yrs|yr)`),
	regexp.MustCompile(`(?i)at\s*least\s*(\d+)\+?\s*(?:years|yrs|yr)`),
}

// ExtractRequiredYears pulls the required years of experience out of a job
// description. Jobs that state no requirement (or a zero one) default to
// DefaultRequiredYears; stated reports whether the text carried a usable
// requirement, so callers can tell a stated 3 years from the default.
func ExtractRequiredYears(jobText string) (years float64, stated bool) {
	for _, pattern := range requiredYearsPatterns {
		match := pattern.FindStringSubmatch(jobText)
		if match == nil {
			continue
		}
		parsed, err := strconv.Atoi(match[1])
		if err != nil || parsed == 0 {
			break
		}
		return float64(parsed), true
	}
	return DefaultRequiredYears, false
}
