package sections

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// summaryMaxChars caps the assembled summary content.
	summaryMaxChars = 500
	// summaryMinLineLen filters out stray fragments and section labels.
	summaryMinLineLen = 20
	// summaryMaxLines is how many content lines are collected at most.
	summaryMaxLines = 5
	// summaryMinLines is how many lines are collected before a short line
	// is taken as the end of the paragraph.
	summaryMinLines = 3
)

// ExtractSummary collects the paragraph following a summary-keyword line.
// Contiguous non-trivial lines are joined with spaces and truncated to 500
// characters. Returns nil when no summary section is present.
func ExtractSummary(text string) *types.Summary {
	inSection := false
	var collected []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !inSection {
			if isSectionHeader(line, summaryKeywords) {
				inSection = true
			}
			continue
		}

		if len(line) > summaryMinLineLen {
			collected = append(collected, line)
			if len(collected) == summaryMaxLines {
				break
			}
			continue
		}
		if len(collected) >= summaryMinLines {
			break
		}
	}

	if len(collected) == 0 {
		return nil
	}
	content := strings.Join(collected, " ")
	if len(content) > summaryMaxChars {
		content = strings.TrimSpace(content[:summaryMaxChars])
	}
	return &types.Summary{Content: content}
}
