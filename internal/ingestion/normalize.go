// Package ingestion provides document decoding and text normalization for
// uploaded resumes.
package ingestion

import (
	"regexp"
	"strings"
)

// spaceRun matches repeated spaces after tabs have been folded into spaces.
var spaceRun = regexp.MustCompile(` {2,}`)

// iconRanges are Unicode blocks removed outright: arrows, technical symbols,
// dingbats, emoji and variation selectors. PDF extractors leak these from
// icon fonts used for contact rows and section decorations.
var iconRanges = [][2]rune{
	{0x2190, 0x21FF},   // arrows
	{0x2300, 0x23FF},   // miscellaneous technical
	{0x25A1, 0x25FF},   // geometric shapes (bullets handled separately)
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0x2B00, 0x2BFF},   // miscellaneous symbols and arrows
	{0xFE00, 0xFE0F},   // variation selectors
	{0x1F000, 0x1FAFF}, // emoji and pictographs
}

// bulletRunes are list markers replaced with a space so the text that
// followed them stays separated from the previous word.
var bulletRunes = map[rune]bool{
	'•': true,
	'‣': true,
	'⁃': true,
	'·': true,
	'∙': true,
	'▪': true,
	'■': true,
	'●': true,
	'○': true,
	'◦': true,
}

// zeroWidthRunes are invisible code points that break substring matching if
// they survive into the extracted text.
var zeroWidthRunes = map[rune]bool{
	'\u200B': true, // zero width space
	'\u200C': true, // zero width non-joiner
	'\u200D': true, // zero width joiner
	'\u2060': true, // word joiner
	'\uFEFF': true, // byte order mark
}

// Normalize cleans raw extracted text while preserving line breaks, which are
// the only structural signal available from a PDF text stream. It never fails:
// any input produces a printable, single-spaced, newline-delimited string.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r == '\n':
			b.WriteRune('\n')
		case r == '\t':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7F:
			// C0 control characters and DEL
		case r >= 0x80 && r <= 0x9F:
			// C1 control characters
		case zeroWidthRunes[r]:
		case bulletRunes[r]:
			b.WriteRune(' ')
		case inIconRange(r):
		default:
			b.WriteRune(r)
		}
	}

	// Collapse space runs per line and trim line edges
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}

	return strings.Join(lines, "\n")
}

// inIconRange reports whether the rune falls in a removed symbol block.
func inIconRange(r rune) bool {
	for _, rng := range iconRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}
