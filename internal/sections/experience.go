package sections

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/fields"
	"github.com/jonathan/resume-parser/internal/types"
)

// maxExperienceEntries caps the retained work history, earliest-first.
const maxExperienceEntries = 10

// minDescriptionLineLen filters stray fragments out of entry descriptions.
const minDescriptionLineLen = 10

// dateRange matches "MM/YYYY - MM/YYYY", "YYYY - YYYY" and the Present /
// Current forms for an open-ended position.
var dateRange = regexp.MustCompile(`(\d{1,2}/\d{4}|\b(?:19|20)\d{2})\s*[-–—]\s*(\d{1,2}/\d{4}|(?:19|20)\d{2}|[Pp]resent|[Cc]urrent)`)

// monthYear matches a single MM/YYYY date, which also marks a record start.
var monthYear = regexp.MustCompile(`\d{1,2}/\d{4}`)

// entryLocation matches a trailing City, ST span inside a company segment.
var entryLocation = regexp.MustCompile(`[A-Z][a-z]+(?:[ -][A-Z][a-z]+)*,\s?[A-Z]{2}\b$`)

// pendingEntry is the record currently being accumulated: the parsed header
// line plus the description lines collected since.
type pendingEntry struct {
	entry types.ExperienceEntry
	desc  []string
}

// ExtractExperience scans the experience section and parses one entry per
// record-start line. A record-start line contains " at ", " | " or a date
// pattern; everything until the next record start accumulates into the
// current entry's description. Entries missing either role or company are
// dropped. At most 10 entries are retained, earliest-first.
func ExtractExperience(text string) []types.ExperienceEntry {
	inSection := false
	var entries []types.ExperienceEntry
	var pending *pendingEntry

	flush := func() {
		if pending == nil {
			return
		}
		entry := pending.entry
		pending = nil
		if entry.Role == "" || entry.Company == "" {
			return
		}
		if len(entries) >= maxExperienceEntries {
			return
		}
		entry.ID = uuid.New()
		entry.Order = len(entries)
		entries = append(entries, entry)
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !inSection {
			if isSectionHeader(line, experienceKeywords) {
				inSection = true
			}
			continue
		}
		if line == "" {
			continue
		}

		if isRecordStart(line) {
			if pending != nil {
				pending.entry.Description = strings.Join(pending.desc, "\n")
			}
			flush()
			pending = parseRecordStart(line)
			continue
		}

		if pending != nil && len(line) > minDescriptionLineLen {
			pending.desc = append(pending.desc, stripBulletMarker(line))
		}
	}

	if pending != nil {
		pending.entry.Description = strings.Join(pending.desc, "\n")
	}
	flush()
	return entries
}

// isRecordStart reports whether the line opens a new experience entry.
func isRecordStart(line string) bool {
	return strings.Contains(line, " at ") ||
		strings.Contains(line, " | ") ||
		dateRange.MatchString(line) ||
		monthYear.MatchString(line)
}

// parseRecordStart splits a record-start line into role, company and an
// optional date range.
func parseRecordStart(line string) *pendingEntry {
	p := &pendingEntry{}

	if m := dateRange.FindStringSubmatch(line); m != nil {
		p.entry.StartDate = normalizeMonth(m[1])
		lower := strings.ToLower(m[2])
		if lower == "present" || lower == "current" {
			p.entry.IsCurrent = true
		} else {
			end := normalizeMonth(m[2])
			p.entry.EndDate = &end
		}
		line = strings.Replace(line, m[0], "", 1)
	}
	line = strings.Trim(line, " \t|,-–—")

	role, company := splitRoleCompany(line)
	p.entry.Role = strings.TrimSpace(role)

	company = strings.TrimSpace(company)
	if m := entryLocation.FindString(company); m != "" && m != company {
		p.entry.Location = m
		company = strings.Trim(strings.TrimSuffix(company, m), " ,-")
	}
	p.entry.Company = company
	return p
}

// splitRoleCompany separates the header line into its role and company
// halves. The " at " form is unambiguous; the " | " form is disambiguated by
// which side carries a role keyword; a single segment is assigned by the
// same test.
func splitRoleCompany(line string) (role, company string) {
	if idx := strings.Index(line, " at "); idx >= 0 {
		return line[:idx], line[idx+4:]
	}
	if idx := strings.Index(line, " | "); idx >= 0 {
		left, right := line[:idx], line[idx+3:]
		if pipe := strings.Index(right, " | "); pipe >= 0 {
			right = right[:pipe]
		}
		if !fields.ContainsRoleKeyword(left) && fields.ContainsRoleKeyword(right) {
			return right, left
		}
		return left, right
	}
	if fields.ContainsRoleKeyword(line) {
		return line, ""
	}
	return "", line
}

// normalizeMonth converts "M/YYYY" or "YYYY" into YYYY-MM form, defaulting
// the month to January for year-only dates.
func normalizeMonth(date string) string {
	if idx := strings.IndexByte(date, '/'); idx >= 0 {
		month, year := date[:idx], date[idx+1:]
		if len(month) == 1 {
			month = "0" + month
		}
		return year + "-" + month
	}
	return date + "-01"
}
