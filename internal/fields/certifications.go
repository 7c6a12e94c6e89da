package fields

import (
	"regexp"
	"strings"

	"github.com/learnbot/resume-pipeline/internal/schema"
)

// certRule pairs a canonical credential name with the regex that detects a
// mention of it and an optional regex that extracts a number/score from the
// immediate surrounding context (never a bare global digit match).
type certRule struct {
	Type     string
	mention  *regexp.Regexp
	numberRe *regexp.Regexp
	isScore  bool
}

var certRules = []certRule{
	{
		Type:     "NCLEX",
		mention:  regexp.MustCompile(`(?i)NCLEX(?:-RN)?`),
		numberRe: regexp.MustCompile(`(?i)NCLEX-RN[^0-9]{0,20}(\d{6,10})`),
	},
	{
		Type:     "IELTS",
		mention:  regexp.MustCompile(`(?i)\bIELTS\b`),
		numberRe: regexp.MustCompile(`(?i)IELTS[^0-9]{0,40}(\d(?:\.\d)?)`),
		isScore:  true,
	},
	{
		Type:     "PRC License",
		mention:  regexp.MustCompile(`(?i)PRC\s+License`),
		numberRe: regexp.MustCompile(`(?i)PRC\s+License[^0-9]{0,20}(\d{6,10})`),
	},
	{Type: "BLS", mention: regexp.MustCompile(`(?i)\bBLS\b`)},
	{Type: "ACLS", mention: regexp.MustCompile(`(?i)\bACLS\b`)},
	{Type: "OSCE", mention: regexp.MustCompile(`(?i)\bOSCE\b`)},
	{Type: "NLE", mention: regexp.MustCompile(`(?i)\bNLE\b`)},
	{Type: "PALS", mention: regexp.MustCompile(`(?i)\bPALS\b`)},
	{Type: "TNCC", mention: regexp.MustCompile(`(?i)\bTNCC\b`)},
	{
		Type:     "CCRN",
		mention:  regexp.MustCompile(`(?i)\bCCRN\b`),
		numberRe: regexp.MustCompile(`(?i)CCRN[^0-9]{0,20}(\d{4,10})`),
	},
	{
		Type:    "NIH Stroke Scale",
		mention: regexp.MustCompile(`(?i)NIH\s+Stroke\s+Scale|\bNIHSS\b`),
	},
	{
		Type:    "Chemotherapy & Biotherapy Provider",
		mention: regexp.MustCompile(`(?i)Chemotherapy\s*&?\s*Biotherapy\s+Provider`),
	},
	{
		Type:     "RN License",
		mention:  regexp.MustCompile(`(?i)RN\s+License`),
		numberRe: regexp.MustCompile(`(?i)\b([A-Z]{2}-RN-\d{4,10})\b`),
	},
	{Type: "ENPC", mention: regexp.MustCompile(`(?i)\bENPC\b`)},
	{Type: "CEN", mention: regexp.MustCompile(`(?i)\bCEN\b`)},
}

// Certifications scans text for each canonical credential and emits it once
// when present. When a rule carries a number/score pattern, the extraction
// is anchored to the text immediately surrounding the mention, never a
// document-wide digit scan.
func Certifications(text string) []schema.Certification {
	var out []schema.Certification
	for _, rule := range certRules {
		loc := rule.mention.FindStringIndex(text)
		if loc == nil {
			continue
		}
		cert := schema.Certification{Type: rule.Type}
		if rule.numberRe != nil {
			context := contextWindow(text, loc[0], 60)
			if m := rule.numberRe.FindStringSubmatch(context); len(m) > 1 {
				if rule.isScore {
					cert.Score = m[1]
				} else {
					cert.Number = m[1]
				}
			}
		}
		out = append(out, cert)
	}
	return out
}

// contextWindow returns the substring of text starting at idx, extended
// forward by span characters (or to the end of text), and back to the
// start of the same line, giving number/score regexes a local context
// without risking a match from an unrelated part of the document.
func contextWindow(text string, idx, span int) string {
	lineStart := strings.LastIndexByte(text[:idx], '\n') + 1
	end := idx + span
	if end > len(text) {
		end = len(text)
	}
	return text[lineStart:end]
}
