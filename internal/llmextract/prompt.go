package llmextract

import "strings"

// promptInstructions is the stable instruction block transmitted ahead of
// the raw résumé text. Its rules are fixed by the contract the persistence
// layer and the rule-based extractor both depend on — do not reorder or
// reword the field list without updating every consumer of the record
// JSON shape.
const promptInstructions = `You are extracting structured data from a résumé. Respond with JSON only — no commentary, no markdown code fences.

Rules:
- Fix concatenated-word spacing introduced by PDF/DOCX text extraction (e.g. "StaffNurse" -> "Staff Nurse").
- Dates must be formatted as "Month Year" (e.g. "January 2020") or the literal string "Present".
- Description lines must be prefixed with a bullet ("• ").
- Separate "department" from "employer" whenever the résumé distinguishes them.
- Include clinical placements, OJT, internships, and volunteer experience as entries, not just paid employment.
- Include every education level mentioned, not only the highest.
- Extract US state RN license numbers when present.
- When a line reads "Facility | City, State", split it into "employer" and "location".

Respond with a single JSON object with exactly these top-level keys:
summary, address, graduation_year, years_of_experience, salary, hospitals, skills, certifications, experience, education.

"experience" entries have keys: employer, position, type (one of "employment", "clinical_placement", "ojt", "volunteer"), department, start_date, end_date, description, location.
"education" entries have keys: institution, degree, field_of_study, year, institution_location, start_date, end_date, status.
"certifications" entries have keys: type, number, score.

Résumé text follows:
`

// buildPrompt concatenates the stable instruction block with the raw
// decoded document text.
func buildPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString(promptInstructions)
	sb.WriteString(text)
	return sb.String()
}
