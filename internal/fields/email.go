// Package fields provides stateless field-level extractors over normalized
// resume text. Every extractor is a pure function that returns the empty
// string when no usable value is found; none of them can fail.
package fields

import (
	"regexp"
	"strings"
)

// strictEmail is the final gate: anything returned by Email must match it.
var strictEmail = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

var strictEmailAnchored = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// emailStrategies is the ordered cascade, strictest first. PDF text
// extraction reflows emails across lines, glues phone numbers to them and
// substitutes commas for dots, so each tier tolerates one more artifact than
// the previous one.
var emailStrategies = []*regexp.Regexp{
	// 1. clean local@domain.tld
	strictEmail,
	// 2. whitespace inside the address (line reflow)
	regexp.MustCompile(`[a-zA-Z0-9._%+-]+\s*@\s*[a-zA-Z0-9.-]+\s*\.\s*[a-zA-Z]{2,}`),
	// 3. comma or semicolon where the TLD dot should be
	regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9-]+[,;][a-zA-Z]{2,}`),
	// 4. commas, semicolons and spaces mixed through the domain
	regexp.MustCompile(`[a-zA-Z0-9._%+-]+\s*@\s*[a-zA-Z0-9,;.\s-]{2,40}[.,;]\s*[a-zA-Z]{2,}`),
}

// atWindow matches any plausible address inside the last-resort window
// around a bare @ character.
var atWindow = regexp.MustCompile(`[^\s@]+@[^\s@]+`)

// Email runs the cascade of matching strategies over text and returns the
// first candidate that survives contamination filtering, cleanup and strict
// validation. It returns "" when nothing recoverable is present.
func Email(text string) string {
	for _, strategy := range emailStrategies {
		matches := strategy.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		return cleanFirstValid(text, matches)
	}

	// Last resort: scan a window around the first @ character.
	at := strings.IndexByte(text, '@')
	if at < 0 {
		return ""
	}
	start := at - 30
	if start < 0 {
		start = 0
	}
	end := at + 20
	if end > len(text) {
		end = len(text)
	}
	matches := atWindow.FindAllString(text[start:end], -1)
	return cleanFirstValid(text, matches)
}

// cleanFirstValid applies the shared sanitize-and-validate step to each
// candidate in order and returns the first one that passes.
func cleanFirstValid(text string, candidates []string) string {
	for _, candidate := range candidates {
		candidate = stripPhoneContamination(text, candidate)
		cleaned := sanitizeEmail(candidate)
		if cleaned != "" {
			return cleaned
		}
	}
	return ""
}

// stripPhoneContamination removes phone digits glued onto the front of an
// email candidate. The check is positional: a phone-regex match in the source
// text must overlap the candidate's start, and the overlapping prefix is cut
// off. Looser cascade tiers can swallow a whole phone number into the local
// part, so the overlap may cover anything from the phone's trailing digits to
// the entire number.
func stripPhoneContamination(text, candidate string) string {
	idx := strings.Index(text, candidate)
	if idx < 0 {
		return candidate
	}

	for _, loc := range phonePattern.FindAllStringIndex(text, -1) {
		if loc[0] > idx {
			break
		}
		if loc[1] <= idx {
			continue
		}
		overlap := loc[1] - idx
		if overlap >= len(candidate) {
			continue
		}
		prefix := candidate[:overlap]
		if strings.ContainsRune(prefix, '@') {
			continue
		}
		return candidate[overlap:]
	}
	return candidate
}

var leadingDigits = regexp.MustCompile(`^[0-9]+`)

var commaBeforeTLD = regexp.MustCompile(`[,;]([a-zA-Z]{2,})$`)

// sanitizeEmail repairs the artifacts the looser cascade tiers let through
// and validates the result. Returns "" when the candidate cannot be repaired
// into a strictly valid address.
func sanitizeEmail(candidate string) string {
	// Rejoin an address broken across lines.
	var b strings.Builder
	for _, r := range candidate {
		switch {
		case r == ' ' || r == '\t' || r == '\n':
		case r == '@' || r == '.':
			b.WriteRune(r)
		case r >= 33 && r <= 126:
			b.WriteRune(r)
		default:
			// leftover symbols and non-ASCII glyphs
		}
	}
	cleaned := b.String()

	at := strings.IndexByte(cleaned, '@')
	if at <= 0 || at != strings.LastIndexByte(cleaned, '@') {
		return ""
	}
	local, domain := cleaned[:at], cleaned[at+1:]

	// A leading digit run of 4 or more is phone-number leakage; restart the
	// local part at its first alphabetic character.
	if run := leadingDigits.FindString(local); len(run) >= 4 {
		cut := strings.IndexFunc(local, func(r rune) bool {
			return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		})
		if cut < 0 {
			return ""
		}
		local = local[cut:]
	}

	// Commas inside the local part are misread dots.
	local = strings.ReplaceAll(local, ",", ".")
	local = strings.ReplaceAll(local, ";", ".")

	// A comma or semicolon immediately before the TLD is a misread dot.
	domain = commaBeforeTLD.ReplaceAllString(domain, ".$1")

	cleaned = local + "@" + domain
	if !strictEmailAnchored.MatchString(cleaned) {
		return ""
	}
	return cleaned
}
