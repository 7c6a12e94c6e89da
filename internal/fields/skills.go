package fields

import (
	"regexp"
	"strings"

	"github.com/learnbot/resume-pipeline/internal/section"
	"github.com/learnbot/resume-pipeline/internal/taxonomy"
)

var skillListSepRe = regexp.MustCompile(`[,;|]`)

var skillTaxonomy = taxonomy.New()
var skillExtractor = taxonomy.NewExtractor(skillTaxonomy)

// Skills runs the four-pass skill extraction: curated nursing-skill
// membership anywhere in text, a SKILLS-section line split when such a
// section exists, a small global technical-term match, and a taxonomy
// alias sweep over the raw text so standalone abbreviations like "BLS" or
// "EHR" resolve to their canonical names even outside a SKILLS section. A
// raw match is canonicalised through the skill taxonomy when it normalizes
// to a known entry, so "BLS" and "Basic Life Support" collapse to one
// value. Results are de-duplicated case-insensitively, preserving
// first-seen casing.
func Skills(text string, idx *section.Index) []string {
	seen := map[string]bool{}
	var out []string

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if norm := skillTaxonomy.Normalize(s); norm.MatchType != "none" {
			s = norm.CanonicalName
		}
		key := strings.ToLower(s)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	lowerText := strings.ToLower(text)
	for lowerName, canonical := range nursingSkillsLower {
		if strings.Contains(lowerText, lowerName) {
			add(canonical)
		}
	}

	if idx != nil {
		for _, span := range idx.SkillsSections() {
			body := idx.Text(span.Start, span.End)
			for _, line := range strings.Split(body, "\n") {
				trimmed := strings.TrimSpace(line)
				if trimmed == "" {
					continue
				}
				value := trimmed
				if i := strings.Index(trimmed, ":"); i >= 0 && i < len(trimmed)-1 {
					value = trimmed[i+1:]
				}
				for _, part := range skillListSepRe.Split(value, -1) {
					part = strings.TrimSpace(part)
					if part == "" {
						continue
					}
					if len(strings.Fields(part)) > 6 {
						continue
					}
					add(part)
				}
			}
		}
	}

	for _, term := range MatchTechnicalSkillTerm(text) {
		add(term)
	}

	for _, s := range skillExtractor.Extract(text, false).Skills {
		add(s.CanonicalName)
	}

	return out
}
