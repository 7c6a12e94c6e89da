// Package tenure computes years of experience from parsed work entries by
// summing month deltas between each entry's start and end dates.
package tenure

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/learnbot/resume-pipeline/internal/schema"
)

var monthYearRe = regexp.MustCompile(`(?i)^(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?\s+(\d{4})$`)
var yearOnlyRe = regexp.MustCompile(`^(\d{4})$`)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// parseDate parses a date string with the strict "Month Year" / "Year"
// parser first, falling back to dateparse's free-text tolerance for
// anything else the résumé might contain (e.g. "03/2019", "March 3, 2019").
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if m := monthYearRe.FindStringSubmatch(s); len(m) == 3 {
		if mo, ok := monthIndex[strings.ToLower(m[1][:3])]; ok {
			if y, err := strconv.Atoi(m[2]); err == nil {
				return time.Date(y, mo, 1, 0, 0, 0, 0, time.UTC), true
			}
		}
	}
	if m := yearOnlyRe.FindStringSubmatch(s); len(m) == 2 {
		if y, err := strconv.Atoi(m[1]); err == nil {
			return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC), true
		}
	}

	if t, err := dateparse.ParseAny(s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// isOpenEnded reports whether an end-date string means "ongoing".
func isOpenEnded(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	return lower == "" || lower == "present" || lower == "current"
}

// monthsBetween returns the whole-month delta between start and end,
// clamped to 0 for negative ranges.
func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// YearsOfExperience sums month deltas across every experience entry with a
// parsable start date — open-ended entries measure to now — and returns
// floor(sum_months / 12).
func YearsOfExperience(entries []schema.Experience) int {
	return YearsOfExperienceAt(entries, schema.Now())
}

// YearsOfExperienceAt is YearsOfExperience with an explicit "now" reference,
// used by tests. The metadata store does not call it: years of experience
// is computed once at parse time and not recomputed when experience rows
// change.
func YearsOfExperienceAt(entries []schema.Experience, now time.Time) int {
	totalMonths := 0
	for _, e := range entries {
		start, ok := parseDate(e.StartDate)
		if !ok {
			continue
		}
		var end time.Time
		if isOpenEnded(e.EndDate) {
			end = now
		} else {
			parsedEnd, ok := parseDate(e.EndDate)
			if !ok {
				end = now
			} else {
				end = parsedEnd
			}
		}
		totalMonths += monthsBetween(start, end)
	}
	return totalMonths / 12
}
