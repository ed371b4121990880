package sections

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/types"
)

// maxEducationEntries caps the retained education records.
const maxEducationEntries = 5

// degreeLine matches "<Degree> in|of <Field>" shaped lines, the most stable
// signal inside an education section.
var degreeLine = regexp.MustCompile(`(?i)\b((?:Bachelor|Master|Doctor|Doctorate|Ph\.?D|Associate)(?:'?s)?(?:\s+of\s+[A-Za-z]+)?)\s+(?:in|of)\s+([A-Za-z][A-Za-z&' ]+)`)

// institutionSuffix marks a line naming a school.
var institutionSuffix = regexp.MustCompile(`(?i)\b(University|College|Institute|School|Academy|Polytechnic)\b`)

// graduationYear extracts a plausible graduation year.
var graduationYear = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// ExtractEducation scans the education section for degree-pattern lines. The
// institution is taken from the following line when it carries an
// institution suffix, and the graduation year is normalized to YYYY-05
// (the usual end of an academic year). At most 5 entries are retained.
func ExtractEducation(text string) []types.EducationEntry {
	inSection := false
	var entries []types.EducationEntry

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if !inSection {
			if isSectionHeader(line, educationKeywords) {
				inSection = true
			}
			continue
		}
		if line == "" || len(entries) >= maxEducationEntries {
			continue
		}

		m := degreeLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		entry := types.EducationEntry{
			ID:     uuid.New(),
			Degree: strings.TrimSpace(m[1]),
			Field:  strings.TrimSpace(strings.Trim(m[2], ",")),
			Order:  len(entries),
		}

		if year := graduationYear.FindString(line); year != "" {
			entry.GraduationDate = year + "-05"
		}

		// The institution usually sits on its own line right below the
		// degree; sometimes it shares the degree line after a comma.
		if inst := institutionLine(line); inst != "" {
			entry.Institution = inst
		} else if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if inst := institutionLine(next); inst != "" {
				entry.Institution = inst
				if entry.GraduationDate == "" {
					if year := graduationYear.FindString(next); year != "" {
						entry.GraduationDate = year + "-05"
					}
				}
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

// institutionLine returns the institution name carried by the line, or ""
// when the line does not look like one.
func institutionLine(line string) string {
	if !institutionSuffix.MatchString(line) {
		return ""
	}
	// Drop a trailing year or date range.
	if loc := graduationYear.FindStringIndex(line); loc != nil {
		line = line[:loc[0]]
	}
	// When the institution shares its line with other segments, keep only
	// the comma segment naming it.
	if strings.Contains(line, ",") {
		for _, seg := range strings.Split(line, ",") {
			if institutionSuffix.MatchString(seg) {
				return strings.Trim(seg, " |-–")
			}
		}
	}
	return strings.Trim(line, " ,|-–")
}
