// Package experience implements the date-anchored, feature-scored work
// experience extractor — the centrepiece of the pipeline.
package experience

import (
	"regexp"
	"strings"

	"github.com/learnbot/resume-pipeline/internal/fields"
	"github.com/learnbot/resume-pipeline/internal/schema"
	"github.com/learnbot/resume-pipeline/internal/section"
)

const (
	monthName    = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`
	monthYear    = monthName + `\.?\s+\d{4}`
	monthDayYear = monthName + `\.?\s+\d{1,2},?\s+\d{4}`
	yearOnly     = `\d{4}`
	endWord      = `(?:[Pp]resent|[Cc]urrent)`
	rangeSep     = `(?:[-–—‑]|\s+to\s+)`
)

var (
	startDateRe = regexp.MustCompile(`(?i)(` + monthDayYear + `|` + monthYear + `|` + yearOnly + `)`)
	endDateRe   = regexp.MustCompile(`(?i)(` + monthDayYear + `|` + monthYear + `|` + yearOnly + `|` + endWord + `)`)

	dateRangeRe = regexp.MustCompile(
		`(?i)(` + monthDayYear + `|` + monthYear + `|` + yearOnly + `)\s*` + rangeSep + `\s*(` +
			monthDayYear + `|` + monthYear + `|` + yearOnly + `|` + endWord + `)`)

	semesterRe    = regexp.MustCompile(`(?i)\b(1st|2nd|3rd|4th)\s+Semester\b`)
	quotedTitleRe = regexp.MustCompile(`["“][^"”]+["”]\s*$`)
	bulletGlyphRe = regexp.MustCompile(`^\s*[•\-\*‣◦⁃∙>]\s*`)
	pageSepRe     = regexp.MustCompile(`^\s*-+\s*\d+\s+of\s+\d+\s*-+\s*$`)
	cityRegionRe  = regexp.MustCompile(`^[A-Z][a-zA-Z.\s]+,\s*[A-Z][a-zA-Z.\s]+(?:,\s*[A-Z][a-zA-Z.\s]+)?$`)

	embeddedParenRe = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)\s*$`)
	embeddedAtRe    = regexp.MustCompile(`(?i)^(.+?)\s+at\s+(.+)$`)
	embeddedDashRe  = regexp.MustCompile(`^(.+?)\s*[-–—]\s*(.+)$`)

	subordinatingWords = []string{"which", "that", "where", "because", "although", "while", "since", "whereas"}
)

// dateAnchor is a line carrying a date range, the entry's anchor point.
type dateAnchor struct {
	lineIdx   int
	matchText string
	startDate string
	endDate   string
	before    string // text on the anchor line preceding the date match
	after     string // text on the anchor line following the date match
}

// Extract finds every date-anchored experience entry in text outside the
// section index's exclusion mask.
func Extract(text string, idx *section.Index) []schema.Experience {
	lines := strings.Split(text, "\n")
	var mask []section.Span
	if idx != nil {
		mask = idx.ExclusionMask()
	}

	var out []schema.Experience
	for i, line := range lines {
		if section.IsMasked(mask, i) {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		anchor, ok := findAnchor(trimmed, i)
		if !ok {
			continue
		}
		if exp := buildEntry(lines, mask, anchor); exp != nil {
			out = append(out, *exp)
		}
	}
	return out
}

// findAnchor locates a date-range match on a line and applies the false-
// anchor guards (academic-term lines, quoted-title seminar lines, bullet
// lines never anchor an entry).
func findAnchor(line string, lineIdx int) (dateAnchor, bool) {
	if bulletGlyphRe.MatchString(line) {
		return dateAnchor{}, false
	}
	if semesterRe.MatchString(line) {
		return dateAnchor{}, false
	}

	loc := dateRangeRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return dateAnchor{}, false
	}

	// Seminar/training entry of shape "<Date(s)> \"Quoted Title\"".
	if quotedTitleRe.MatchString(strings.TrimSpace(line[loc[1]:])) {
		return dateAnchor{}, false
	}

	m := dateRangeRe.FindStringSubmatch(line)
	return dateAnchor{
		lineIdx:   lineIdx,
		matchText: m[0],
		startDate: strings.TrimSpace(m[1]),
		endDate:   strings.TrimSpace(m[2]),
		before:    strings.TrimSpace(line[:loc[0]]),
		after:     strings.TrimSpace(line[loc[1]:]),
	}, true
}

// candidate is a scored line considered for position or employer.
type candidate struct {
	text     string
	lineIdx  int
	distance int
	before   bool
}

func buildEntry(lines []string, mask []section.Span, anchor dateAnchor) *schema.Experience {
	exp := &schema.Experience{StartDate: anchor.startDate}
	if isCurrentDate(anchor.endDate) {
		exp.EndDate = "Present"
	} else {
		exp.EndDate = anchor.endDate
	}

	beforeWindow := collectBeforeWindow(lines, anchor.lineIdx, 3)
	afterWindow := collectAfterWindow(lines, mask, anchor.lineIdx, 4)

	// 1. Same-line split.
	if n := len(anchor.before); n >= 3 && n <= 100 && fields.IsPositionKeyword(anchor.before) {
		exp.Position = anchor.before
	}
	if n := len(anchor.after); n >= 3 && n <= 100 {
		exp.Employer = anchor.after
	}

	// 2-3. Position ranking across windows.
	if exp.Position == "" {
		if pos, fromBefore := pickBest(beforeWindow, afterWindow, scorePosition); pos != "" {
			exp.Position = pos
			_ = fromBefore
		}
	}

	// 4. Employer ranking across windows.
	employerLineIdx := -1
	if exp.Employer == "" {
		best, line := pickBestWithLine(beforeWindow, afterWindow, scoreEmployer)
		exp.Employer = best
		employerLineIdx = line
	}
	if exp.Employer == "" {
		if emp, loc := scanAfterWindowForFacility(afterWindow); emp != "" {
			exp.Employer = emp
			if loc != "" {
				exp.Location = loc
			}
		}
	}
	if exp.Employer != "" && exp.Location == "" {
		if emp, loc, ok := splitEmployerLocation(exp.Employer); ok {
			exp.Employer = emp
			exp.Location = loc
		}
	}

	// 5. Department detection.
	if employerLineIdx > anchor.lineIdx {
		if dept := findDepartment(lines, anchor.lineIdx, employerLineIdx, exp.Position, exp.Employer); dept != "" {
			exp.Department = dept
		}
	}
	if exp.Department == "" {
		if pos, dept, ok := splitDashSuffix(exp.Position); ok {
			exp.Position = pos
			exp.Department = dept
		}
	}

	// 6. Embedded forms.
	unpackEmbeddedForms(exp)

	// 7. Location.
	if exp.Location == "" {
		exp.Location = findLocation(beforeWindow, afterWindow)
	}

	// 8. Description aggregation.
	exp.Description = collectDescription(lines, mask, anchor.lineIdx, exp)

	if exp.StartDate == "" {
		return nil
	}
	return exp
}

func collectBeforeWindow(lines []string, anchorIdx, maxLines int) []candidate {
	var out []candidate
	dist := 1
	for i := anchorIdx - 1; i >= 0 && dist <= maxLines; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		out = append(out, candidate{text: trimmed, lineIdx: i, distance: dist, before: true})
		dist++
	}
	return out
}

func collectAfterWindow(lines []string, mask []section.Span, anchorIdx, maxLines int) []candidate {
	var out []candidate
	dist := 1
	for i := anchorIdx + 1; i < len(lines) && dist <= maxLines; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if bulletGlyphRe.MatchString(trimmed) || section.IsGenericHeader(trimmed, 8) {
			break
		}
		if dateRangeRe.MatchString(trimmed) {
			break
		}
		out = append(out, candidate{text: trimmed, lineIdx: i, distance: dist, before: false})
		dist++
	}
	return out
}

type scoreFn func(c candidate) int

func pickBest(before, after []candidate, score scoreFn) (string, bool) {
	text, _, fromBefore := pickBestDetail(before, after, score)
	return text, fromBefore
}

func pickBestWithLine(before, after []candidate, score scoreFn) (string, int) {
	text, line, _ := pickBestDetail(before, after, score)
	return text, line
}

func pickBestDetail(before, after []candidate, score scoreFn) (string, int, bool) {
	bestBeforeScore, bestBeforeIdx := -1<<31, -1
	for i, c := range before {
		if s := score(c); s > bestBeforeScore {
			bestBeforeScore, bestBeforeIdx = s, i
		}
	}
	bestAfterScore, bestAfterIdx := -1<<31, -1
	for i, c := range after {
		if s := score(c) + 10; s > bestAfterScore {
			bestAfterScore, bestAfterIdx = s, i
		}
	}

	switch {
	case bestBeforeIdx == -1 && bestAfterIdx == -1:
		return "", -1, true
	case bestBeforeIdx == -1:
		c := after[bestAfterIdx]
		return c.text, c.lineIdx, false
	case bestAfterIdx == -1:
		c := before[bestBeforeIdx]
		return c.text, c.lineIdx, true
	case bestAfterScore > bestBeforeScore:
		c := after[bestAfterIdx]
		return c.text, c.lineIdx, false
	default:
		c := before[bestBeforeIdx]
		return c.text, c.lineIdx, true
	}
}

func distanceBonus(distance int) int {
	switch distance {
	case 1:
		return 25
	case 2:
		return 15
	case 3:
		return 5
	default:
		return 0
	}
}

func scorePosition(c candidate) int {
	s := 0
	text := c.text
	if fields.IsPositionKeyword(text) {
		s += 40
	}
	if c.before {
		s += 20
	}
	s += distanceBonus(c.distance)
	if len(text) > 0 && isUpperStart(text) {
		s += 10
	}
	if l := len(text); l > 10 && l < 60 {
		s += 15
	}
	if strings.EqualFold(text, "Unknown") {
		s -= 50
	}
	if fields.IsCompanyShape(text) {
		s -= 30
	}
	if cityRegionRe.MatchString(text) {
		s -= 30
	}
	if l := len(text); l < 5 || l > 80 {
		s -= 20
	}
	if isAllCapsLine(text) {
		s -= 15
	}
	return s
}

func scoreEmployer(c candidate) int {
	s := 0
	text := c.text
	if _, ok := fields.MatchKnownFacility(text); ok {
		s += 50
	}
	if fields.IsCompanyShape(text) {
		s += 35
	}
	if c.before {
		s += 20
	}
	s += distanceBonus(c.distance)
	if l := len(text); l > 10 && l < 60 {
		s += 15
	}
	if strings.EqualFold(text, "Unknown") {
		s -= 50
	}
	if cityRegionRe.MatchString(text) {
		s -= 30
	}
	if fields.IsPositionKeyword(text) {
		s -= 25
	}
	words := strings.Fields(text)
	if len(words) > 8 {
		s -= 40
	}
	if looksLikeSentence(text) {
		s -= 50
	}
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") {
		s -= 30
	}
	return s
}

func isUpperStart(s string) bool {
	r := []rune(s)
	return len(r) > 0 && r[0] >= 'A' && r[0] <= 'Z'
}

func isAllCapsLine(s string) bool {
	has := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			has = true
		}
	}
	return has
}

// looksLikeSentence reports whether text reads like descriptive prose
// rather than an employer/position name: more than 8 words, a
// subordinating conjunction, or a trailing sentence-ending punctuation
// mark. Shared with the pipeline's post-processing employer filter.
func looksLikeSentence(text string) bool {
	words := strings.Fields(text)
	if len(words) > 8 {
		return true
	}
	lower := strings.ToLower(text)
	for _, w := range subordinatingWords {
		if strings.Contains(lower, " "+w+" ") {
			return true
		}
	}
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") {
		return true
	}
	return false
}

// LooksLikeSentence exports looksLikeSentence for the pipeline
// employer-shape guard.
func LooksLikeSentence(text string) bool { return looksLikeSentence(text) }

func scanAfterWindowForFacility(after []candidate) (employer, location string) {
	for _, c := range after {
		if emp, loc, ok := splitEmployerLocation(c.text); ok {
			return emp, loc
		}
		if canonical, ok := fields.MatchKnownFacility(c.text); ok {
			return canonical, ""
		}
	}
	return "", ""
}

// splitEmployerLocation splits a single line that embeds both the employer
// and its location behind a "|"/"•" separator or a trailing comma-before-state,
// e.g. "Cedars-Sinai Medical Center • Los Angeles, California". ok is false
// when the line doesn't look like a combined employer/location form.
func splitEmployerLocation(line string) (employer, location string, ok bool) {
	for _, sep := range []string{"|", "•"} {
		if strings.Contains(line, sep) {
			parts := strings.SplitN(line, sep, 2)
			left, right := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
			if _, fok := fields.MatchKnownFacility(left); fok || fields.IsCompanyShape(left) {
				return left, right, true
			}
		}
	}
	if idx := strings.LastIndex(line, ","); idx > 0 {
		left := strings.TrimSpace(line[:idx])
		right := strings.TrimSpace(line[idx+1:])
		if (len(right) == 2 || cityRegionRe.MatchString(right)) && fields.IsCompanyShape(left) {
			return left, right, true
		}
	}
	return "", "", false
}

func findDepartment(lines []string, anchorIdx, employerLineIdx int, position, employer string) string {
	for i := anchorIdx + 1; i < employerLineIdx; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || bulletGlyphRe.MatchString(trimmed) || dateRangeRe.MatchString(trimmed) {
			continue
		}
		if trimmed == position || trimmed == employer {
			continue
		}
		return trimmed
	}
	return ""
}

func splitDashSuffix(position string) (base, dept string, ok bool) {
	m := regexp.MustCompile(`^(.+?)\s*[-–—]\s*(.+)$`).FindStringSubmatch(position)
	if len(m) != 3 {
		return "", "", false
	}
	suffix := strings.TrimSpace(m[2])
	if _, isFacility := fields.MatchKnownFacility(suffix); isFacility {
		return "", "", false
	}
	if fields.IsCompanyShape(suffix) {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), suffix, true
}

func unpackEmbeddedForms(exp *schema.Experience) {
	for _, field := range []*string{&exp.Position, &exp.Employer} {
		if *field == "" {
			continue
		}
		if m := embeddedAtRe.FindStringSubmatch(*field); len(m) == 3 {
			exp.Position = strings.TrimSpace(m[1])
			exp.Employer = strings.TrimSpace(m[2])
			return
		}
		if m := embeddedParenRe.FindStringSubmatch(*field); len(m) == 3 {
			exp.Position = strings.TrimSpace(m[1])
			exp.Employer = strings.TrimSpace(m[2])
			return
		}
	}
	if exp.Department == "" && exp.Employer != "" {
		if m := embeddedDashRe.FindStringSubmatch(exp.Employer); len(m) == 3 {
			emp := strings.TrimSpace(m[1])
			rest := strings.TrimSpace(m[2])
			if strings.Contains(rest, "/") {
				parts := strings.SplitN(rest, "/", 2)
				exp.Employer = emp
				exp.Department = strings.TrimSpace(parts[1])
			}
		}
	}
}

func findLocation(before, after []candidate) string {
	for _, c := range before {
		if len(c.text) < 80 && cityRegionRe.MatchString(c.text) {
			return c.text
		}
	}
	for _, c := range after {
		if len(c.text) < 80 && cityRegionRe.MatchString(c.text) {
			return c.text
		}
	}
	return ""
}

func collectDescription(lines []string, mask []section.Span, anchorIdx int, exp *schema.Experience) string {
	var bullets []string
	blankRun := 0
	for i := anchorIdx + 1; i < len(lines); i++ {
		if section.IsMasked(mask, i) {
			break
		}
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			blankRun++
			if blankRun >= 2 {
				break
			}
			continue
		}
		blankRun = 0

		if dateRangeRe.MatchString(trimmed) || pageSepRe.MatchString(trimmed) || section.IsGenericHeader(trimmed, 8) {
			break
		}

		if trimmed == exp.Position || trimmed == exp.Employer || trimmed == exp.Location || trimmed == exp.Department {
			continue
		}
		if exp.Employer != "" && strings.Contains(trimmed, exp.Employer) && len(trimmed) < 120 {
			continue
		}
		if cityRegionRe.MatchString(trimmed) {
			continue
		}

		if bulletGlyphRe.MatchString(trimmed) {
			bullets = append(bullets, strings.TrimSpace(bulletGlyphRe.ReplaceAllString(trimmed, "")))
			continue
		}
		if l := len(trimmed); l >= 10 && l <= 300 && !section.IsGenericHeader(trimmed, 8) {
			bullets = append(bullets, trimmed)
		}
	}

	if len(bullets) == 0 {
		return ""
	}
	for i, b := range bullets {
		bullets[i] = "• " + b
	}
	return strings.Join(bullets, "\n")
}

func isCurrentDate(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	return lower == "present" || lower == "current"
}
