// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmartin/jobmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for match results
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchReport outputs a human-readable summary of a match report.
func (p *Printer) PrintMatchReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall Score:  %.1f / 100\n", report.OverallScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:      %5.1f\n", report.Subscores.Skill))
	sb.WriteString(fmt.Sprintf("Experience:  %5.1f\n", report.Subscores.Experience))
	sb.WriteString(fmt.Sprintf("Education:   %5.1f\n", report.Subscores.Education))
	sb.WriteString(fmt.Sprintf("Semantic:    %5.1f\n", report.Subscores.Semantic))

	if len(report.MatchingSkills) > 0 {
		sb.WriteString("\nMatching Skills:\n")
		writeSkillList(&sb, report.MatchingSkills)
	}

	if len(report.MissingSkills) > 0 {
		sb.WriteString("\nMissing Skills:\n")
		writeSkillList(&sb, report.MissingSkills)
	}

	p.printBox("MATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))

	p.printExplanations(report)
}

func writeSkillList(sb *strings.Builder, skills []string) {
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
}

// printExplanations outputs the strengths and weaknesses boxes.
func (p *Printer) printExplanations(report *types.MatchReport) {
	if len(report.Strengths) > 0 {
		var sb strings.Builder
		for i, s := range report.Strengths {
			sb.WriteString(fmt.Sprintf("✓ %s", s))
			if i < len(report.Strengths)-1 {
				sb.WriteString("\n")
			}
		}
		p.printBox("STRENGTHS", sb.String())
	}

	if len(report.Weaknesses) > 0 {
		var sb strings.Builder
		for i, w := range report.Weaknesses {
			sb.WriteString(fmt.Sprintf("⚠ %s", w))
			if i < len(report.Weaknesses)-1 {
				sb.WriteString("\n")
			}
		}
		p.printBox("WEAKNESSES", sb.String())
	}
}

// RankedMatch pairs a match report with the job it was scored against.
type RankedMatch struct {
	Label  string
	Report *types.MatchReport
}

// PrintRanking outputs a batch scoring summary, best match first.
func (p *Printer) PrintRanking(matches []RankedMatch) {
	if len(matches) == 0 {
		p.printBox("BATCH RESULTS", "No jobs scored above the threshold.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Scored %d jobs:\n\n", len(matches)))

	for i, m := range matches {
		label := m.Label
		if len(label) > 40 {
			label = label[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, label))
		if m.Report != nil {
			sb.WriteString(fmt.Sprintf("    Score: %.1f", m.Report.OverallScore))
			if len(m.Report.MissingSkills) > 0 {
				sb.WriteString(fmt.Sprintf("  (missing %d skills)", len(m.Report.MissingSkills)))
			}
			sb.WriteString("\n")
		}
		if i < len(matches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("BATCH RESULTS", sb.String())
}
