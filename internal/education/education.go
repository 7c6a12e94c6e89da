// Package education implements the degree-anchored education extractor,
// bounded to the EDUCATION* window the section index computes.
package education

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/learnbot/resume-pipeline/internal/fields"
	"github.com/learnbot/resume-pipeline/internal/schema"
	"github.com/learnbot/resume-pipeline/internal/section"
)

// degreePatterns is priority-ordered, most specific first, so a generic
// two-letter abbreviation never shadows a fuller match found earlier in the
// line (e.g. "Bachelor of Science in Nursing" before bare "B.S.").
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Bachelor of Science in [A-Za-z ]+`),
	regexp.MustCompile(`(?i)Bachelor of Arts in [A-Za-z ]+`),
	regexp.MustCompile(`(?i)\bBSN\b`),
	regexp.MustCompile(`(?i)(?:Chemical|Mechanical|Electrical|Civil) Engineering Technology`),
	regexp.MustCompile(`(?i)\bB\.S\.`),
	regexp.MustCompile(`(?i)\bB\.A\.`),
	regexp.MustCompile(`(?i)\bM\.S\.`),
	regexp.MustCompile(`(?i)\bM\.A\.`),
	regexp.MustCompile(`(?i)\bMBA\b`),
	regexp.MustCompile(`(?i)\bPh\.?D\.?\b`),
	regexp.MustCompile(`(?i)\bAssociate\b`),
}

var (
	fieldOfStudyRe = regexp.MustCompile(`(?i)^(?:Focus on|Major in|Specialization|Concentration|Emphasis|Specializing in)\b[:\s]*(.+)$`)
	statusRe       = regexp.MustCompile(`(?i)\b(?:(1st|2nd|3rd|4th|5th)\s+Year\s+Student|Freshman|Sophomore|Junior Year|Senior Year|Graduated|Graduate|Undergraduate)\b`)
	institutionRe  = regexp.MustCompile(`(?i)\b(University|College|Institute|School|Academy|Polytechnic)\b`)
	subLabelRe     = regexp.MustCompile(`(?i)^(?:Graduate Studies|Undergraduate Studies)\s*:\s*`)
	trailingYearRe = regexp.MustCompile(`,?\s*(?:19|20)\d{2}\s*$`)
	trailingLocRe  = regexp.MustCompile(`,\s*[A-Z][a-zA-Z.\s]+$`)

	graduatedRe  = regexp.MustCompile(`(?i)Graduated[:\s]+(?:[A-Za-z]+\s+)?((?:19|20)\d{2})`)
	dateRangeRe  = regexp.MustCompile(`(?i)((?:19|20)\d{2})\s*[-–—]\s*((?:19|20)\d{2}|[Pp]resent|[Cc]urrent)`)
	bareYearRe   = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
	cityRegionRe = regexp.MustCompile(`^[A-Z][a-zA-Z.\s]+(?:,\s*[A-Z][a-zA-Z.\s]+){0,2}$`)
)

// Extract finds every degree-anchored education entry inside the section
// index's EDUCATION* window.
func Extract(text string, idx *section.Index) []schema.Education {
	if idx == nil {
		idx = section.New(text)
	}
	start, end, ok := idx.EducationWindow()
	if !ok {
		return nil
	}

	var out []schema.Education
	for i := start + 1; i < end && i < len(idx.Lines); i++ {
		line := strings.TrimSpace(idx.Lines[i])
		if line == "" {
			continue
		}
		degree, ok := matchDegree(line)
		if !ok {
			continue
		}
		out = append(out, buildEntry(idx.Lines, i, degree, line))
	}
	return out
}

func matchDegree(line string) (string, bool) {
	for _, re := range degreePatterns {
		if m := re.FindString(line); m != "" {
			return strings.TrimSpace(m), true
		}
	}
	return "", false
}

func buildEntry(lines []string, lineIdx int, degree, degreeLine string) schema.Education {
	edu := schema.Education{Degree: degree}

	// Field of study within the next 2 lines.
	for i := lineIdx + 1; i < len(lines) && i <= lineIdx+2; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if m := fieldOfStudyRe.FindStringSubmatch(trimmed); len(m) > 1 {
			edu.FieldOfStudy = strings.TrimSpace(m[1])
			break
		}
	}

	// Status within the next 3 lines. A "Graduated: <year>" date line is
	// not a status signal on its own.
	for i := lineIdx + 1; i < len(lines) && i <= lineIdx+3; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if graduatedRe.MatchString(trimmed) {
			continue
		}
		if m := statusRe.FindString(trimmed); m != "" {
			edu.Status = m
			break
		}
	}

	// Institution: 3 lines before, then 3 lines after.
	edu.Institution = findInstitution(lines, lineIdx)

	// Date/year.
	if m := graduatedRe.FindStringSubmatch(degreeLine); len(m) > 1 {
		if y, err := strconv.Atoi(m[1]); err == nil {
			edu.Year = &y
		}
	} else {
		for i := lineIdx + 1; i < len(lines) && i <= lineIdx+5; i++ {
			trimmed := strings.TrimSpace(lines[i])
			if m := dateRangeRe.FindStringSubmatch(trimmed); len(m) > 2 {
				edu.StartDate = m[1]
				if strings.EqualFold(m[2], "present") || strings.EqualFold(m[2], "current") {
					edu.EndDate = "Present"
					break
				}
				edu.EndDate = m[2]
				if y, err := strconv.Atoi(m[2]); err == nil {
					edu.Year = &y
				}
				break
			}
			if m := bareYearRe.FindString(trimmed); m != "" {
				if y, err := strconv.Atoi(m); err == nil {
					edu.Year = &y
				}
				break
			}
		}
	}

	// Location: +-2/+6 neighbourhood.
	edu.InstitutionLocation = findLocation(lines, lineIdx)

	return edu
}

func findInstitution(lines []string, lineIdx int) string {
	for i := lineIdx - 1; i >= 0 && i >= lineIdx-3; i-- {
		if inst, ok := cleanInstitutionLine(lines[i]); ok {
			return inst
		}
	}
	for i := lineIdx + 1; i < len(lines) && i <= lineIdx+3; i++ {
		if inst, ok := cleanInstitutionLine(lines[i]); ok {
			return inst
		}
	}
	return ""
}

func cleanInstitutionLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= 150 {
		return "", false
	}
	if !institutionRe.MatchString(trimmed) {
		return "", false
	}
	if section.IsGenericHeader(trimmed, 8) {
		return "", false
	}

	cleaned := subLabelRe.ReplaceAllString(trimmed, "")
	cleaned = trailingYearRe.ReplaceAllString(cleaned, "")
	if m := strings.SplitN(cleaned, "|", 2); len(m) == 2 {
		cleaned = strings.TrimSpace(m[0])
	} else {
		cleaned = trailingLocRe.ReplaceAllString(cleaned, "")
	}
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}

func findLocation(lines []string, lineIdx int) string {
	for i := lineIdx - 2; i <= lineIdx+6; i++ {
		if i < 0 || i >= len(lines) || i == lineIdx {
			continue
		}
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || len(trimmed) >= 80 {
			continue
		}
		if cityRegionRe.MatchString(trimmed) && fields.HasRegionalKeyword(trimmed) {
			return trimmed
		}
		if strings.Contains(trimmed, "|") {
			parts := strings.SplitN(trimmed, "|", 2)
			loc := strings.TrimSpace(parts[1])
			if fields.HasRegionalKeyword(loc) {
				return loc
			}
		}
	}
	return ""
}
