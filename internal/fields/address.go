package fields

import (
	"regexp"
	"strings"

	"github.com/learnbot/resume-pipeline/internal/section"
)

const addressScanChars = 1500

var (
	addrEmailRe = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	addrPhoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[\s\-.]?)?\(?\d{2,4}\)?[\s\-.]?\d{3,4}[\s\-.]?\d{3,4}`)
	addrURLRe   = regexp.MustCompile(`(?i)https?://|www\.`)
	cityShapeRe = regexp.MustCompile(`^[A-Z][a-zA-Z.\s]+,\s*[A-Z][a-zA-Z.\s]+(?:,\s*[A-Z][a-zA-Z.\s]+)?$`)

	institutionWords = []string{"university", "college", "institute", "school", "academy"}
)

// Address selects the first plausible address line within the first ~1500
// characters of text: 10-150 chars, not a phone/email/URL/section-header/
// institution-name line, and either "City, Region[, Country]"-shaped or
// carrying a known regional keyword.
func Address(text string) string {
	head := text
	if len(head) > addressScanChars {
		head = head[:addressScanChars]
	}

	for _, line := range strings.Split(head, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < 10 || len(trimmed) > 150 {
			continue
		}
		if addrEmailRe.MatchString(trimmed) || addrPhoneRe.MatchString(trimmed) || addrURLRe.MatchString(trimmed) {
			continue
		}
		if section.IsGenericHeader(trimmed, 8) {
			continue
		}
		if looksLikeInstitution(trimmed) {
			continue
		}
		if cityShapeRe.MatchString(trimmed) || HasRegionalKeyword(trimmed) {
			return trimmed
		}
	}
	return ""
}

func looksLikeInstitution(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range institutionWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
