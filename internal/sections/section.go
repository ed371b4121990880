// Package sections provides line-oriented scanners that locate keyword-
// delimited resume sections and parse structured records out of them. Each
// scanner makes a single top-to-bottom pass and degrades to an empty result
// when its section is absent; none of them can fail.
package sections

import (
	"strings"
)

// sectionHeaderMaxLen bounds how long a line can be and still count as a
// section header. Body sentences mention words like "experience" all the
// time; headers are short.
const sectionHeaderMaxLen = 40

var summaryKeywords = []string{"summary", "objective", "profile", "about me"}

var experienceKeywords = []string{"experience", "employment", "work history", "career history"}

var educationKeywords = []string{"education", "academic background", "qualifications"}

var skillsKeywords = []string{"skills", "technologies", "competencies", "technical proficiencies", "tools"}

// isSectionHeader reports whether the trimmed line announces a section from
// the given keyword set. Matching is a case-insensitive substring check over
// short lines only.
func isSectionHeader(line string, keywords []string) bool {
	if line == "" || len(line) > sectionHeaderMaxLen {
		return false
	}
	lower := strings.ToLower(line)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// stripBulletMarker removes a leading list marker left over after
// normalization replaced bullet glyphs with spaces.
func stripBulletMarker(line string) string {
	line = strings.TrimSpace(line)
	for _, prefix := range []string{"- ", "* ", "> "} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):])
		}
	}
	return line
}
