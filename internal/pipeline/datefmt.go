package pipeline

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/learnbot/resume-pipeline/internal/schema"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var monthYearLooseRe = regexp.MustCompile(`(?i)^(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?\s+(\d{4})$`)

var monthNumber = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04", "may": "05", "jun": "06",
	"jul": "07", "aug": "08", "sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// toDateString normalises a free-text date into YYYY-MM-DD for persistence.
// Already-ISO inputs pass through unchanged (applying it twice is a no-op);
// "Mon(th)? Year" maps to the first of that month; everything else — "",
// "Present", unparsable text — becomes "" so the caller stores no date text:
// a SQL NULL, or for an experience start date the 1900-01-01 sentinel.
func toDateString(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if isoDateRe.MatchString(s) {
		return s
	}
	if m := monthYearLooseRe.FindStringSubmatch(s); len(m) == 3 {
		if mm, ok := monthNumber[strings.ToLower(m[1][:3])]; ok {
			return m[2] + "-" + mm + "-01"
		}
	}
	return ""
}

func defaultMarshal(record *schema.ParsedRecord) ([]byte, error) {
	if record == nil {
		return nil, nil
	}
	return json.Marshal(record)
}
