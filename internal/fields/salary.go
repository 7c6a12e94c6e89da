package fields

import "regexp"

var salaryRe = regexp.MustCompile(`(?i)(?:(?:salary|compensation|pay|wage)\s*:?\s*)?(?:PHP|₱|\$|USD)\s?[\d,]+(?:\.\d+)?(?:\s*(?:/|per)\s*(?:month|year|hr|hour|annum))?`)

// Salary returns the first currency-anchored match in text, verbatim. The
// raw matched string is returned, not a normalized amount.
func Salary(text string) string {
	return salaryRe.FindString(text)
}
