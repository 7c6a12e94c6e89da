package fields

import (
	"regexp"
	"strings"
)

// facilityPhraseRe captures a proper-noun phrase ending in a facility-type
// suffix, as a second pass beyond curated-set membership.
var facilityPhraseRe = regexp.MustCompile(`\b([A-Z][A-Za-z'&.\-]*(?:\s+[A-Z][A-Za-z'&.\-]*){0,6}\s+(?:Hospital|Medical Center|Health Center|Medical Centre))\b`)

// Hospitals scans text for members of KnownFacilities and for proper-noun
// phrases matching "<ProperNoun>+ (Hospital|Medical Center|Health Center|
// Medical Centre)" of length 10-80, de-duplicating by canonical name.
func Hospitals(text string) []string {
	seen := map[string]bool{}
	var out []string

	lower := strings.ToLower(text)
	for lowerName, canonical := range knownFacilitiesLower {
		if strings.Contains(lower, lowerName) && !seen[canonical] {
			seen[canonical] = true
			out = append(out, canonical)
		}
	}

	for _, m := range facilityPhraseRe.FindAllString(text, -1) {
		if len(m) < 10 || len(m) > 80 {
			continue
		}
		if canonical, ok := MatchKnownFacility(m); ok {
			if !seen[canonical] {
				seen[canonical] = true
				out = append(out, canonical)
			}
			continue
		}
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}

	return out
}
