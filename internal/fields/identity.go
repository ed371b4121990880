package fields

import (
	"regexp"
	"strings"
	"unicode"
)

// headerLineLimit is how many non-empty lines from the top of the document
// the name and role extractors consider. Identity information virtually
// always sits in the resume header.
const headerLineLimit = 8

// roleKeywords mark a line as a job title rather than a name or address.
var roleKeywords = []string{
	"developer", "engineer", "manager", "designer", "analyst", "architect",
	"consultant", "specialist", "scientist", "administrator", "director",
	"lead", "devops", "intern", "programmer", "technician", "officer",
}

var datePattern = regexp.MustCompile(`\d{1,2}/\d{4}|\b(19|20)\d{2}\b`)

// Name scans the header lines for a 2-4 word line that is not an email,
// phone, URL or title. Fully upper-case names are re-cased to title case.
func Name(text string) string {
	for _, line := range headerLines(text) {
		if strings.ContainsAny(line, "@") || strings.Contains(line, "http") {
			continue
		}
		if line[0] >= '0' && line[0] <= '9' {
			continue
		}
		if ContainsRoleKeyword(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if !wordsLookLikeName(words) {
			continue
		}
		if isAllUpper(line) {
			return titleCase(line)
		}
		return line
	}
	return ""
}

// Role scans the header lines for a short line containing a role keyword,
// skipping anything that looks like a name or carries a date.
func Role(text string) string {
	for _, line := range headerLines(text) {
		if !ContainsRoleKeyword(line) {
			continue
		}
		if datePattern.MatchString(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 1 || len(words) > 6 {
			continue
		}
		return line
	}
	return ""
}

// locationPattern matches City, ST or City, Country shaped spans.
var locationPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:[ -][A-Z][a-z]+)*,\s?(?:[A-Z]{2}\b|[A-Z][a-z]+(?: [A-Z][a-z]+)?)`)

// technologyNames are capitalized tool and framework names that match the
// City, Thing shape and must not be mistaken for places.
var technologyNames = []string{
	"react", "angular", "vue", "node", "django", "spring", "docker",
	"kubernetes", "redis", "kafka", "python", "java", "golang", "rust",
	"typescript", "javascript", "aws", "azure", "terraform", "ansible",
}

// locationKeywords boost a candidate that names a well-known region.
var locationKeywords = []string{
	"usa", "united states", "canada", "india", "germany", "france",
	"netherlands", "australia", "brazil", "remote",
	"ca", "ny", "tx", "wa", "fl", "il", "ma", "co", "ga", "or",
}

// Location returns the most plausible City, Region span in text.
func Location(text string) string {
	candidates := locationPattern.FindAllString(text, -1)
	filtered := candidates[:0]
	for _, candidate := range candidates {
		if !containsTechnologyName(candidate) {
			filtered = append(filtered, candidate)
		}
	}
	if len(filtered) == 0 {
		return ""
	}

	for _, candidate := range filtered {
		lower := strings.ToLower(candidate)
		for _, keyword := range locationKeywords {
			if strings.HasSuffix(lower, ", "+keyword) || strings.HasSuffix(lower, ","+keyword) || strings.Contains(lower, keyword+" ") {
				return strings.TrimSpace(candidate)
			}
		}
	}

	longest := filtered[0]
	for _, candidate := range filtered[1:] {
		if len(candidate) > len(longest) {
			longest = candidate
		}
	}
	return strings.TrimSpace(longest)
}

// headerLines returns the first non-empty lines of the document, up to
// headerLineLimit, trimmed.
func headerLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == headerLineLimit {
			break
		}
	}
	return lines
}

// ContainsRoleKeyword reports whether the line names a job title.
func ContainsRoleKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range roleKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// containsTechnologyName reports whether the span names a known tool or
// framework.
func containsTechnologyName(span string) bool {
	lower := strings.ToLower(span)
	for _, name := range technologyNames {
		if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

// wordsLookLikeName requires every word to be alphabetic, allowing a middle
// initial like "Q." and common name punctuation.
func wordsLookLikeName(words []string) bool {
	for _, word := range words {
		for _, r := range strings.TrimSuffix(word, ".") {
			if !unicode.IsLetter(r) && r != '\'' && r != '-' {
				return false
			}
		}
	}
	return true
}

// isAllUpper reports whether the line has letters and none of them lowercase.
func isAllUpper(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// titleCase re-cases an all-caps line word by word.
func titleCase(line string) string {
	words := strings.Fields(line)
	for i, word := range words {
		lower := strings.ToLower(word)
		r := []rune(lower)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
