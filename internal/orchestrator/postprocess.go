package orchestrator

import (
	"regexp"
	"strings"

	"github.com/learnbot/resume-pipeline/internal/fields"
	"github.com/learnbot/resume-pipeline/internal/schema"
	"github.com/learnbot/resume-pipeline/internal/section"
)

var (
	clinicalKeywordRe = regexp.MustCompile(`(?i)clinical placement|clinical rotation|practicum|preceptorship`)
	ojtKeywordRe      = regexp.MustCompile(`(?i)\bOJT\b|on[- ]the[- ]job|internship|\bintern\b|\btrainee\b|\btraining\b`)
	volunteerKeywordRe = regexp.MustCompile(`(?i)volunteer|community service|pro bono|medical mission`)

	clinicalHeaderRe  = regexp.MustCompile(`(?im)^\s*CLINICAL PLACEMENT\w*`)
	volunteerHeaderRe = regexp.MustCompile(`(?im)^\s*VOLUNTEER EXPERIENCE\b`)

	descSeparatorRe = regexp.MustCompile(`[•|]|,\s*[A-Z][a-zA-Z]+\s*$`)
)

// postProcess applies the orchestrator's three repair passes to whichever
// record (rule-based or LLM) was chosen.
func postProcess(record *schema.ParsedRecord, text string) *schema.ParsedRecord {
	if record == nil {
		return record
	}
	lines := strings.Split(text, "\n")
	clinicalEmployers := employersInSpan(lines, clinicalHeaderRe)
	volunteerEmployers := employersInSpan(lines, volunteerHeaderRe)

	for i := range record.Experience {
		inferType(&record.Experience[i], clinicalEmployers, volunteerEmployers)
		repairEmployer(&record.Experience[i])
		sanitizeDescription(&record.Experience[i])
	}
	return record
}

// inferType re-categorises an entry whose type is missing or the default
// employment, by keyword search in position+employer, then by checking
// whether its employer was mentioned inside a CLINICAL PLACEMENT* or
// VOLUNTEER EXPERIENCE span of the raw text.
func inferType(e *schema.Experience, clinicalEmployers, volunteerEmployers map[string]bool) {
	if e.Type != "" && e.Type != schema.ExperienceEmployment {
		return
	}

	haystack := e.Position + " " + e.Employer
	switch {
	case clinicalKeywordRe.MatchString(haystack):
		e.Type = schema.ExperienceClinicalPlacement
		return
	case ojtKeywordRe.MatchString(haystack):
		e.Type = schema.ExperienceOJT
		return
	case volunteerKeywordRe.MatchString(haystack):
		e.Type = schema.ExperienceVolunteer
		return
	}

	employerKey := strings.ToLower(strings.TrimSpace(e.Employer))
	if employerKey == "" {
		e.Type = schema.ExperienceEmployment
		return
	}
	if clinicalEmployers[employerKey] {
		e.Type = schema.ExperienceClinicalPlacement
		return
	}
	if volunteerEmployers[employerKey] {
		e.Type = schema.ExperienceVolunteer
		return
	}
	e.Type = schema.ExperienceEmployment
}

// employersInSpan collects the lowercased lines found between a header
// matching headerRe and the next generic ALL-CAPS header, as a set for
// employer membership checks.
func employersInSpan(lines []string, headerRe *regexp.Regexp) map[string]bool {
	out := map[string]bool{}
	for i, line := range lines {
		if !headerRe.MatchString(line) {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" {
				continue
			}
			if section.IsGenericHeader(trimmed, 8) {
				break
			}
			out[strings.ToLower(trimmed)] = true
		}
	}
	return out
}

// repairEmployer promotes a description bullet to employer when the
// current employer has neither a company keyword nor a known-facility hit,
// but a bullet line does.
func repairEmployer(e *schema.Experience) {
	if e.Employer != "" {
		if fields.IsCompanyShape(e.Employer) {
			return
		}
		if _, ok := fields.MatchKnownFacility(e.Employer); ok {
			return
		}
	}

	bullets := splitBullets(e.Description)
	for i, bullet := range bullets {
		cleaned := strings.TrimSpace(strings.TrimPrefix(bullet, "•"))
		cleaned = strings.TrimSpace(cleaned)

		canonical, facilityHit := fields.MatchKnownFacility(cleaned)
		companyHit := fields.IsCompanyShape(cleaned)
		if !facilityHit && !companyHit {
			continue
		}

		newEmployer, location := splitEmployerLocation(cleaned)
		if facilityHit && newEmployer == cleaned {
			newEmployer = canonical
		}

		if e.Employer != "" {
			e.Department = e.Employer
		}
		e.Employer = newEmployer
		if location != "" && e.Location == "" {
			e.Location = location
		}

		bullets = append(bullets[:i], bullets[i+1:]...)
		e.Description = joinBullets(bullets)
		return
	}
}

// sanitizeDescription drops bullet lines that duplicate the employer
// (length < 120), location, or department fields.
func sanitizeDescription(e *schema.Experience) {
	bullets := splitBullets(e.Description)
	if len(bullets) == 0 {
		return
	}
	var kept []string
	for _, bullet := range bullets {
		cleaned := strings.TrimSpace(strings.TrimPrefix(bullet, "•"))
		cleaned = strings.TrimSpace(cleaned)
		if e.Employer != "" && len(cleaned) < 120 && strings.Contains(cleaned, e.Employer) {
			continue
		}
		if e.Location != "" && cleaned == e.Location {
			continue
		}
		if e.Department != "" && cleaned == e.Department {
			continue
		}
		kept = append(kept, bullet)
	}
	e.Description = joinBullets(kept)
}

func splitBullets(description string) []string {
	if strings.TrimSpace(description) == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(description, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func joinBullets(bullets []string) string {
	return strings.Join(bullets, "\n")
}

// splitEmployerLocation splits a bullet into employer and location parts at
// the first '|' ("Facility | City, State"), otherwise at a '•'
// ("Facility • City, State"), otherwise at a comma followed by a single
// capitalised word that ends the line ("Facility, City, State" yields
// "Facility, City" and "State"). A line with none of these is returned whole
// as the employer.
func splitEmployerLocation(line string) (employer, location string) {
	if idx := strings.Index(line, "|"); idx >= 0 {
		return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
	}
	if m := descSeparatorRe.FindStringIndex(line); m != nil {
		if line[m[0]] == ',' {
			return strings.TrimSpace(line[:m[0]]), strings.TrimSpace(line[m[0]+1:])
		}
		return strings.TrimSpace(line[:m[0]]), strings.TrimSpace(line[m[1]:])
	}
	return line, ""
}
