// Package scorer computes the deterministic 0-100 confidence score for a
// parsed résumé record. This is a different concept from a candidate-vs-job
// acceptance score: it measures how complete and well-shaped the extraction
// itself is, independent of any job opening.
package scorer

import (
	"regexp"
	"strings"

	"github.com/learnbot/resume-pipeline/internal/schema"
)

var workKeywordRe = regexp.MustCompile(`(?i)\b(employed|worked|position|job|employer|staff nurse|responsibilities)\b`)
var clinicalSectionRe = regexp.MustCompile(`(?i)clinical\s+(?:placement|rotation|consolidation\s+hours)`)

// Score returns an integer in [0, 100] measuring how complete and well-
// shaped record's extraction is. text is the raw decoded document and may
// be empty when unavailable.
func Score(record *schema.ParsedRecord, text string) int {
	if record == nil {
		return 0
	}

	score := 0

	saneCount, missingPosOrEmployer := 0, 0
	for _, e := range record.Experience {
		if isSaneShape(e) {
			saneCount++
		}
		if e.Position == "" || e.Employer == "" {
			missingPosOrEmployer++
		}
	}
	if saneCount > 0 {
		score += 30
	} else if len(record.Experience) > 0 {
		score += 5
	}
	if len(record.Experience) > 0 && missingPosOrEmployer*2 > len(record.Experience) {
		score -= 15
	}

	hasDegreeAndInstitution := false
	for _, e := range record.Education {
		if e.Degree != "" && e.Institution != "" && len(e.Institution) < 80 {
			hasDegreeAndInstitution = true
			break
		}
	}
	if hasDegreeAndInstitution {
		score += 25
	} else if len(record.Education) > 0 {
		score += 8
	}

	if len(record.Summary) > 30 {
		score += 10
	}
	if len(record.Certifications) > 0 {
		score += 10
	}
	if len(record.Skills) >= 3 {
		score += 10
	}
	if record.Address != "" {
		score += 5
	}

	hasDescription := false
	for _, e := range record.Experience {
		if e.Description != "" {
			hasDescription = true
			break
		}
	}
	if hasDescription {
		score += 10
	}

	if text != "" {
		if workKeywordRe.MatchString(text) && len(record.Experience) == 0 {
			score -= 15
		}
		if clinicalSectionRe.MatchString(text) && !hasClinicalPlacement(record.Experience) {
			score -= 15
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// isSaneShape reports whether an experience entry's position/employer
// fields read as plausible field values rather than extraction noise.
func isSaneShape(e schema.Experience) bool {
	if e.Position == "" || e.Employer == "" || e.StartDate == "" {
		return false
	}
	if len(e.Position) >= 60 {
		return false
	}
	if len(strings.Fields(e.Employer)) > 8 {
		return false
	}
	if strings.HasSuffix(e.Employer, ".") || strings.HasSuffix(e.Employer, "!") {
		return false
	}
	return true
}

func hasClinicalPlacement(entries []schema.Experience) bool {
	for _, e := range entries {
		if e.Type == schema.ExperienceClinicalPlacement {
			return true
		}
	}
	return false
}
