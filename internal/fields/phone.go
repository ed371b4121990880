package fields

import (
	"regexp"
	"strings"
)

// phonePattern tolerates an optional country code, parenthesized area code
// and -, ., / or space separators. It is shared with the email extractor's
// contamination filter.
var phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[\s./-]?)?(?:\(\d{1,4}\)[\s./-]?|\d{2,4}[\s./-])\d{3,4}[\s./-]\d{3,4}`)

// phoneDigits counts digits to reject date ranges and street numbers that
// slip through the shape match.
var phoneDigits = regexp.MustCompile(`\d`)

// Phone returns the first phone-number-shaped span in text, trimmed, or ""
// when none is found.
func Phone(text string) string {
	for _, match := range phonePattern.FindAllString(text, -1) {
		match = strings.Trim(match, " ./-")
		digits := len(phoneDigits.FindAllString(match, -1))
		if digits >= 7 && digits <= 15 {
			return match
		}
	}
	return ""
}
