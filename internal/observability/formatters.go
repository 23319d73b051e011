// Package observability provides formatted output utilities for CLI results.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAssessment outputs a human-readable summary of an ATS assessment.
// Absent lists are simply skipped; there is nothing to show.
func (p *Printer) PrintAssessment(result *types.AtsAssessment) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score: %d / 100\n", result.Score))

	appendList := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString("\n" + label + "\n")
		for _, item := range items {
			sb.WriteString("  - " + item + "\n")
		}
	}

	appendList("Matching Jobs:", result.MatchingJobs)
	appendList("Highlights:", result.Highlights)
	appendList("Improvements:", result.Improvements)

	p.printBox("ATS Assessment", strings.TrimRight(sb.String(), "\n"))
}

// PrintExtraction outputs a short summary of an extraction result.
func (p *Printer) PrintExtraction(fileName string, characters int) {
	content := fmt.Sprintf("File: %s\nExtracted characters: %d", fileName, characters)
	p.printBox("Extraction", content)
}
