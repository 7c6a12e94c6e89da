package fields

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/learnbot/resume-pipeline/internal/schema"
)

var fourDigitYearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// GraduationYear scans lines carrying an education keyword for a 4-digit
// year within [1960, currentYear+6]. Failing that, it falls back to a
// 4-line window centered on any line mentioning "graduat".
func GraduationYear(text string) *int {
	lines := strings.Split(text, "\n")
	maxYear := schema.Now().Year() + 6

	for _, line := range lines {
		if !HasEducationKeyword(line) {
			continue
		}
		if y, ok := firstYearInRange(line, 1960, maxYear); ok {
			return &y
		}
	}

	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), "graduat") {
			continue
		}
		start := i - 1
		if start < 0 {
			start = 0
		}
		end := i + 3
		if end > len(lines) {
			end = len(lines)
		}
		window := strings.Join(lines[start:end], " ")
		if y, ok := firstYearInRange(window, 1960, maxYear); ok {
			return &y
		}
	}

	return nil
}

func firstYearInRange(s string, min, max int) (int, bool) {
	for _, m := range fourDigitYearRe.FindAllString(s, -1) {
		y, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if y >= min && y <= max {
			return y, true
		}
	}
	return 0, false
}
