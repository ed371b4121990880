package sections

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// maxSkillEntries caps the retained skill list.
	maxSkillEntries = 30
	// defaultSkillCategory is used until a category header is seen.
	defaultSkillCategory = "General"
	// skillCategoryMaxLen bounds a colon-terminated category header.
	skillCategoryMaxLen = 30
	// sentenceLineLen is the length past which a comma-less line is tested
	// for being leaked summary prose rather than a skill list.
	sentenceLineLen = 80
)

// skillExcludedLine matches lines that are never skill content: URLs,
// emails, page numbers and footer text.
var skillExcludedLine = regexp.MustCompile(`(?i)https?://|www\.|@|^page\s+\d+|^\d+$|^\d+\s+of\s+\d+$|continued|references available`)

// skillDateLine matches date-like strings leaking in from adjacent sections.
var skillDateLine = regexp.MustCompile(`\b(19|20)\d{2}\b|\d{1,2}/\d{4}`)

// skillTokenSplit breaks a line into candidate tokens. A hyphen splits only
// when space-padded so names like scikit-learn survive.
var skillTokenSplit = regexp.MustCompile(`[,;|*•]|\s+-\s+`)

// sentenceConnectives are words that mark prose rather than a skill list.
var sentenceConnectives = []string{" the ", " and ", " with ", " for ", " that ", " have ", " is ", " was "}

// sentenceStarters reject tokens that begin like a sentence.
var sentenceStarters = regexp.MustCompile(`(?i)^(i|my|we|our|responsible|worked|developed|built|created|managed|experienced|proficient|familiar)\b`)

// skillStopWords are connective fragments that survive token splitting.
var skillStopWords = map[string]bool{
	"the": true, "and": true, "with": true, "of": true, "in": true,
	"a": true, "an": true, "to": true, "for": true, "or": true,
	"etc": true, "other": true, "various": true, "more": true,
}

// technologyKeywords whitelist multi-word candidates. A three-or-more word
// token is only a skill when it names an actual technology.
var technologyKeywords = []string{
	"go", "golang", "java", "python", "ruby", "rust", "php", "swift",
	"kotlin", "scala", "sql", "nosql", "html", "css", "javascript",
	"typescript", "react", "angular", "vue", "node", "spring", "django",
	"flask", "rails", "aws", "azure", "gcp", "cloud", "docker",
	"kubernetes", "terraform", "linux", "git", "ci", "cd", "api", "rest",
	"grpc", "graphql", "kafka", "redis", "postgres", "mysql", "mongodb",
	"elasticsearch", "spark", "hadoop", "data", "machine learning",
	"testing", "agile", "scrum",
}

// frameworkNamePattern matches framework-style names like Next.js or
// ASP.NET that carry their own suffix.
var frameworkNamePattern = regexp.MustCompile(`(?i)\.(js|ts|net|py|io|sh)$|\b[a-z]+\.js\b`)

// ExtractSkills scans the skills section, tracking the current category
// (switched by colon-terminated header lines) and splitting content lines
// into candidate tokens. Skills are deduplicated case-insensitively and
// capped at 30. A long prose-looking line ends the section: it means the
// scanner ran into leaked summary text.
func ExtractSkills(text string) []types.SkillEntry {
	inSection := false
	category := defaultSkillCategory
	var entries []types.SkillEntry
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !inSection {
			if isSectionHeader(line, skillsKeywords) {
				inSection = true
			}
			continue
		}
		if line == "" {
			continue
		}
		if skillExcludedLine.MatchString(line) || skillDateLine.MatchString(line) {
			continue
		}
		if isUppercaseHeader(line) {
			continue
		}
		if isSentenceLine(line) {
			break
		}

		rest := line
		if header, remainder, ok := splitCategoryHeader(line); ok {
			category = header
			rest = remainder
		}
		if rest == "" {
			continue
		}

		for _, token := range skillTokenSplit.Split(rest, -1) {
			token = strings.TrimSpace(stripBulletMarker(token))
			if !isValidSkill(token) {
				continue
			}
			key := strings.ToLower(token)
			if seen[key] {
				continue
			}
			seen[key] = true
			entries = append(entries, types.SkillEntry{
				ID:       uuid.New(),
				Name:     token,
				Category: category,
				Order:    len(entries),
			})
			if len(entries) == maxSkillEntries {
				return entries
			}
		}
	}

	return entries
}

// splitCategoryHeader recognizes "Frontend:" and "Frontend: React, Vue"
// forms. It returns the new category, the remainder of the line, and whether
// a header was found.
func splitCategoryHeader(line string) (category, remainder string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx <= 0 || idx > skillCategoryMaxLen {
		return "", line, false
	}
	header := strings.TrimSpace(line[:idx])
	if header == "" || strings.ContainsAny(header, ",;") {
		return "", line, false
	}
	return header, strings.TrimSpace(line[idx+1:]), true
}

// isSentenceLine reports whether the line is leaked summary prose: long,
// comma-less and built around connective words.
func isSentenceLine(line string) bool {
	if len(line) <= sentenceLineLen || strings.Contains(line, ",") {
		return false
	}
	lower := " " + strings.ToLower(line) + " "
	for _, connective := range sentenceConnectives {
		if strings.Contains(lower, connective) {
			return true
		}
	}
	return false
}

// isUppercaseHeader reports whether the line is a pure-uppercase section
// label rather than skill content.
func isUppercaseHeader(line string) bool {
	if len(line) < 4 || len(line) > sectionHeaderMaxLen {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

// isValidSkill is the token-level predicate: plausible length, not a stop
// word, not sentence-shaped, and for long candidates, recognizably a
// technology.
func isValidSkill(token string) bool {
	if len(token) < 2 || len(token) > 30 {
		return false
	}
	if skillStopWords[strings.ToLower(token)] {
		return false
	}
	if strings.ContainsAny(token[len(token)-1:], ".!?:") {
		return false
	}
	if sentenceStarters.MatchString(token) {
		return false
	}
	if len(strings.Fields(token)) >= 3 {
		return containsTechnologyKeyword(token) || frameworkNamePattern.MatchString(token)
	}
	return true
}

// containsTechnologyKeyword reports whether the token names a known
// technology.
func containsTechnologyKeyword(token string) bool {
	lower := " " + strings.ToLower(token) + " "
	for _, keyword := range technologyKeywords {
		if strings.Contains(lower, " "+keyword+" ") {
			return true
		}
	}
	return false
}
