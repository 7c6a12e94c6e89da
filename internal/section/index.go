// Package section locates ALL-CAPS header lines in résumé text and builds
// the labeled spans and exclusion mask the field and experience extractors
// consult.
package section

import (
	"regexp"
	"strings"
	"unicode"
)

// Kind names a recognized header family. Experience has no header pattern
// of its own — the experience extractor is driven by date anchors — but the
// kind exists so callers can name the concept.
type Kind string

const (
	KindExperience     Kind = "experience"
	KindEducation      Kind = "education"
	KindSkills         Kind = "skills"
	KindExcludeRegion  Kind = "exclude"
)

// headerPattern pairs a kind with the line-anchored regex that detects it.
type headerPattern struct {
	kind Kind
	re   *regexp.Regexp
}

func anchored(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^\s*` + pattern + `\s*:?\s*$`)
}

// educationPatterns also double as the "EDUCATION*" exclusion trigger.
var educationPatterns = []*regexp.Regexp{
	anchored(`EDUCATIONAL\s+BACKGROUND`),
	anchored(`EDUCATIONAL\s+ATTAINMENT`),
	anchored(`ACADEMIC\s+BACKGROUND`),
	anchored(`ACADEMIC\s+QUALIFICATIONS`),
	anchored(`EDUCATION\s*&\s*CERTIFICATIONS`),
	anchored(`EDUCATION`),
}

var skillsPatterns = []*regexp.Regexp{
	anchored(`TECHNICAL\s+SKILLS`),
	anchored(`PROFESSIONAL\s+SKILLS`),
	anchored(`CORE\s+COMPETENCIES`),
	anchored(`CLINICAL\s+SKILLS`),
	anchored(`KEY\s+SKILLS`),
	anchored(`COMPETENCIES`),
	anchored(`EXPERTISE`),
	anchored(`PROFICIENCIES`),
	anchored(`TECHNOLOGIES`),
	anchored(`SKILLS`),
}

var experiencePatterns = []*regexp.Regexp{
	anchored(`PROFESSIONAL\s+EXPERIENCE`),
	anchored(`WORK\s+HISTORY`),
	anchored(`EXPERIENCE`),
}

// excludeOnlyPatterns are exclusion triggers with no other header kind.
var excludeOnlyPatterns = []*regexp.Regexp{
	anchored(`HONORS\s*&\s*AWARDS`),
	anchored(`SEMINARS/TRAININGS\s+ATTENDED`),
	anchored(`CLINICAL\s+INTERNSHIP`),
	anchored(`PERSONAL\s+INFORMATION`),
	anchored(`CHARACTER\s+REFERENCES`),
	anchored(`MEMBERSHIPS`),
	anchored(`LICENSES\s*&\s*CERTIFICATIONS`),
	anchored(`CONTINUING\s+EDUCATION`),
	anchored(`ADDITIONAL\s+INFORMATION`),
}

// Header is a detected header line.
type Header struct {
	Kind      Kind
	Title     string
	LineIndex int
}

// Span is a half-open line range [Start, End) belonging to one header.
type Span struct {
	Header Header
	Start  int
	End    int
}

// Index holds the line-split text and every header detected in it.
type Index struct {
	Lines   []string
	Headers []Header
}

// New splits text into lines and scans every line against the known header
// pattern tables, recording the first kind match in source order. A line
// that also independently qualifies as an exclusion trigger (all education
// variants do) is recorded once with its primary kind; ExclusionMask below
// still uses it as a region start.
func New(text string) *Index {
	lines := strings.Split(text, "\n")
	idx := &Index{Lines: lines}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if kind, title, ok := matchHeader(trimmed); ok {
			idx.Headers = append(idx.Headers, Header{Kind: kind, Title: title, LineIndex: i})
		}
	}

	return idx
}

func matchHeader(line string) (Kind, string, bool) {
	for _, p := range educationPatterns {
		if p.MatchString(line) {
			return KindEducation, strings.TrimSpace(line), true
		}
	}
	for _, p := range skillsPatterns {
		if p.MatchString(line) {
			return KindSkills, strings.TrimSpace(line), true
		}
	}
	for _, p := range experiencePatterns {
		if p.MatchString(line) {
			return KindExperience, strings.TrimSpace(line), true
		}
	}
	for _, p := range excludeOnlyPatterns {
		if p.MatchString(line) {
			return KindExcludeRegion, strings.TrimSpace(line), true
		}
	}
	return "", "", false
}

// IsGenericHeader reports whether a trimmed line reads as an ALL-CAPS header
// by uppercase-letter ratio, for callers outside this package that need the
// same generic boundary test the exclusion mask and education window use.
func IsGenericHeader(trimmed string, minLen int) bool {
	return isGenericHeader(trimmed, minLen)
}

// isGenericHeader reports whether a trimmed line reads as an ALL-CAPS header
// by uppercase-letter ratio, independent of the named pattern tables. minLen
// is applied to the trimmed line length.
func isGenericHeader(trimmed string, minLen int) bool {
	if len(trimmed) < minLen {
		return false
	}
	var upper, alpha int
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			alpha++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if alpha == 0 {
		return false
	}
	return float64(upper)/float64(alpha) > 0.7
}

// isExclusionTrigger reports whether header h starts an exclusion region:
// any education header variant, or one of the explicit exclude-only headers.
func (idx *Index) isExclusionTrigger(h Header) bool {
	if h.Kind == KindEducation || h.Kind == KindExcludeRegion {
		return true
	}
	return false
}

// ExclusionMask returns the line ranges that the experience extractor must
// not draw entries from. Each exclusion-triggering header opens a region
// that runs to the next ALL-CAPS header of at least 8 characters (or EOF).
func (idx *Index) ExclusionMask() []Span {
	var spans []Span
	for _, h := range idx.Headers {
		if !idx.isExclusionTrigger(h) {
			continue
		}
		end := idx.nextGenericHeaderAfter(h.LineIndex, 8)
		spans = append(spans, Span{Header: h, Start: h.LineIndex, End: end})
	}
	return spans
}

// nextGenericHeaderAfter scans forward from line index start+1 for the next
// line that reads as an ALL-CAPS header of at least minLen characters,
// returning its index, or len(Lines) if none is found.
func (idx *Index) nextGenericHeaderAfter(start, minLen int) int {
	for i := start + 1; i < len(idx.Lines); i++ {
		trimmed := strings.TrimSpace(idx.Lines[i])
		if trimmed == "" {
			continue
		}
		if isGenericHeader(trimmed, minLen) {
			return i
		}
	}
	return len(idx.Lines)
}

// IsMasked reports whether lineIndex falls inside any exclusion span.
func IsMasked(mask []Span, lineIndex int) bool {
	for _, s := range mask {
		if lineIndex >= s.Start && lineIndex < s.End {
			return true
		}
	}
	return false
}

// EducationWindow returns the [start, end) line range bounded by the
// longest-matching EDUCATION* header and the next ALL-CAPS header of at
// least 10 characters (uppercase ratio > 0.7), per the education extractor's
// window contract. ok is false when no education header is present.
func (idx *Index) EducationWindow() (start, end int, ok bool) {
	for _, h := range idx.Headers {
		if h.Kind == KindEducation {
			return h.LineIndex, idx.nextGenericHeaderAfter(h.LineIndex, 10), true
		}
	}
	return 0, 0, false
}

// SkillsSections returns the line ranges of every SKILLS-family header,
// each bounded by the next ALL-CAPS header of at least 8 characters.
func (idx *Index) SkillsSections() []Span {
	var spans []Span
	for _, h := range idx.Headers {
		if h.Kind != KindSkills {
			continue
		}
		spans = append(spans, Span{Header: h, Start: h.LineIndex, End: idx.nextGenericHeaderAfter(h.LineIndex, 8)})
	}
	return spans
}

// Text returns the joined text of lines [start, end) with the header line
// itself excluded.
func (idx *Index) Text(start, end int) string {
	if start+1 >= end || start+1 >= len(idx.Lines) {
		return ""
	}
	upper := end
	if upper > len(idx.Lines) {
		upper = len(idx.Lines)
	}
	return strings.Join(idx.Lines[start+1:upper], "\n")
}

// FoundKinds returns the distinct header kinds detected, in source order.
func (idx *Index) FoundKinds() []string {
	seen := map[Kind]bool{}
	var out []string
	for _, h := range idx.Headers {
		if !seen[h.Kind] {
			seen[h.Kind] = true
			out = append(out, string(h.Kind))
		}
	}
	return out
}
