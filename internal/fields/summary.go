package fields

import (
	"regexp"
	"strings"

	"github.com/learnbot/resume-pipeline/internal/section"
)

var summaryHeaderRe = regexp.MustCompile(`(?im)^\s*(PROFESSIONAL SUMMARY|CAREER SUMMARY|EXECUTIVE SUMMARY|SUMMARY|OBJECTIVES?|CAREER OBJECTIVES?|ABOUT ME|PROFESSIONAL PROFILE|PROFILE|PERSONAL STATEMENT|OVERVIEW)\s*:?\s*$`)

const summaryMaxChars = 600

// Summary locates a professional-summary-style header and returns the text
// up to the next ALL-CAPS header or 600 characters, whichever comes first.
// Non-header lines are joined with single spaces. Returns "" unless the
// result is between 20 and 1500 characters.
func Summary(text string) string {
	lines := strings.Split(text, "\n")
	headerLine := -1
	for i, line := range lines {
		if summaryHeaderRe.MatchString(strings.TrimSpace(line)) {
			headerLine = i
			break
		}
	}
	if headerLine == -1 {
		return ""
	}

	var parts []string
	total := 0
	for i := headerLine + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if section.IsGenericHeader(trimmed, 8) {
			break
		}
		if total+len(trimmed) > summaryMaxChars {
			break
		}
		parts = append(parts, trimmed)
		total += len(trimmed) + 1
	}

	result := strings.Join(parts, " ")
	if len(result) < 20 || len(result) > 1500 {
		return ""
	}
	return result
}
