package fields

import (
	"regexp"
	"strings"
)

// linkedinProfile matches a canonical profile URL once whitespace has been
// stripped from the surrounding window.
var linkedinProfile = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/in/[A-Za-z0-9_%-]+/?`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// LinkedInURL locates a linkedin.com/in/ profile link in text. PDF extraction
// regularly breaks URLs across lines, so the match is made on a whitespace-
// stripped window around the literal marker rather than on the raw text.
func LinkedInURL(text string) string {
	const marker = "linkedin.com/in/"

	// An intact URL matches directly; the handle class stops at whitespace,
	// so nothing from the surrounding text is picked up.
	if match := linkedinProfile.FindString(text); match != "" {
		return canonicalLinkedIn(match)
	}

	if idx := strings.Index(strings.ToLower(text), marker); idx >= 0 {
		start := idx - 100
		if start < 0 {
			start = 0
		}
		end := idx + 150
		if end > len(text) {
			end = len(text)
		}
		window := whitespaceRun.ReplaceAllString(text[start:end], "")
		if match := linkedinProfile.FindString(window); match != "" {
			return canonicalLinkedIn(match)
		}
	}

	// Fallback: match directly over whitespace-collapsed spans.
	collapsed := whitespaceRun.ReplaceAllString(text, "")
	if match := linkedinProfile.FindString(collapsed); match != "" {
		return canonicalLinkedIn(match)
	}
	return ""
}

// canonicalLinkedIn normalizes a matched profile URL to the
// https://www.linkedin.com/in/<handle> form.
func canonicalLinkedIn(match string) string {
	match = strings.TrimSuffix(match, "/")
	at := strings.Index(strings.ToLower(match), "linkedin.com")
	if at < 0 {
		return ""
	}
	return "https://www." + match[at:]
}

// urlMarker finds the start of every URL-shaped span.
var urlMarker = regexp.MustCompile(`https?://|www\.`)

// urlTerminator cuts a reconstructed URL at characters that cannot belong to it.
var urlTerminator = regexp.MustCompile(`[\[\]{}()<>"',;|]`)

// excludedDomains are hosts that are never a personal portfolio.
var excludedDomains = []string{
	"linkedin.com",
	"github.com",
	"gmail.com",
	"google.com",
	"facebook.com",
	"twitter.com",
}

// portfolioHints mark hosts that are very likely a personal site.
var portfolioHints = []string{
	"vercel.app",
	"netlify.app",
	"portfolio",
	".dev",
	".io",
}

// PortfolioURL scans for URL spans, reconstructs each across line breaks and
// returns the most portfolio-looking candidate. Known social and mail
// domains are excluded.
func PortfolioURL(text string) string {
	var candidates []string

	for _, loc := range urlMarker.FindAllStringIndex(text, -1) {
		end := loc[0] + 200
		if end > len(text) {
			end = len(text)
		}
		span := reconstructURL(text[loc[0]:end])
		if cut := urlTerminator.FindStringIndex(span); cut != nil {
			span = span[:cut[0]]
		}
		span = strings.TrimRight(span, ".,:;")

		if len(span) < 8 || isExcludedDomain(span) {
			continue
		}
		candidates = append(candidates, span)
	}

	if len(candidates) == 0 {
		return ""
	}
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		for _, hint := range portfolioHints {
			if strings.Contains(lower, hint) {
				return candidate
			}
		}
	}
	return candidates[0]
}

// reconstructURL rejoins a URL broken across a line break. The following
// line is appended only while the fragment visibly ends mid-URL, so text
// that merely follows a complete URL is not glued onto it.
func reconstructURL(span string) string {
	lines := strings.Split(span, "\n")
	fields := strings.Fields(lines[0])
	if len(fields) == 0 {
		return ""
	}
	url := fields[0]
	for _, line := range lines[1:] {
		if !strings.ContainsAny(url[len(url)-1:], "./-_=?&%") {
			break
		}
		next := strings.Fields(line)
		if len(next) == 0 {
			break
		}
		url += next[0]
	}
	return url
}

// isExcludedDomain reports whether the span belongs to a known
// non-portfolio host.
func isExcludedDomain(span string) bool {
	lower := strings.ToLower(span)
	for _, domain := range excludedDomains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}
