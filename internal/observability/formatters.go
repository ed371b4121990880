// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractionResult outputs a human-readable summary of what the
// pipeline recovered from the document.
func (p *Printer) PrintExtractionResult(result *types.ExtractionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if info := result.PersonalInfo; info != nil {
		writeField(&sb, "Name", info.Name)
		writeField(&sb, "Role", info.Role)
		writeField(&sb, "Email", info.Email)
		writeField(&sb, "Phone", info.Phone)
		writeField(&sb, "Location", info.Location)
		writeField(&sb, "LinkedIn", info.LinkedInURL)
		writeField(&sb, "Portfolio", info.PortfolioURL)
	} else {
		sb.WriteString("(no personal info recovered)\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience: %d entries\n", len(result.Experience)))
	for i, entry := range result.Experience {
		if i == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Experience)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  %s — %s\n", entry.Role, entry.Company))
	}

	sb.WriteString(fmt.Sprintf("Education:  %d entries\n", len(result.Education)))
	sb.WriteString(fmt.Sprintf("Skills:     %d entries\n", len(result.Skills)))
	if result.Summary != nil {
		sb.WriteString(fmt.Sprintf("Summary:    %d chars\n", len(result.Summary.Content)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Confidence: %.0f%%", result.Confidence*100))

	p.printBox("Extraction Result", sb.String())
}

// writeField appends "Label: value" when the value is present.
func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	sb.WriteString(fmt.Sprintf("%-10s %s\n", label+":", value))
}
