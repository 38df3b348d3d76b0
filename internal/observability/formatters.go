// Package observability provides formatted output utilities for the CLI text format.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/career-copilot/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the text format
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to limit runes, ending with "..." when cut.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}

// writeList writes up to limit items as bullets with a trailing "and N more" line.
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for _, item := range items[:min(len(items), limit)] {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
	sb.WriteString("\n")
}

// PrintResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:     %s\n", resume.Basics.Name)
	fmt.Fprintf(&sb, "Email:    %s\n", resume.Basics.Email)
	if resume.Basics.YearsExperience > 0 {
		fmt.Fprintf(&sb, "Years:    %d\n", resume.Basics.YearsExperience)
	}
	sb.WriteString("\n")

	skillNames := make([]string, len(resume.Skills))
	for i, s := range resume.Skills {
		skillNames[i] = s.Name
	}
	if len(skillNames) > 0 {
		fmt.Fprintf(&sb, "Skills:   %s\n", strings.Join(skillNames, ", "))
	}
	if len(resume.Tools) > 0 {
		fmt.Fprintf(&sb, "Tools:    %s\n", strings.Join(resume.Tools, ", "))
	}
	sb.WriteString("\n")

	bullets := resume.BulletTexts()
	writeList(&sb, fmt.Sprintf("Bullets (%d)", len(bullets)), bullets, maxItemsToShow)

	p.printBox("PARSED RESUME", strings.TrimRight(sb.String(), "\n"))
}

// PrintJob outputs a human-readable summary of a parsed job posting.
func (p *Printer) PrintJob(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Role:     %s\n", job.Title)
	if job.Company != "" {
		fmt.Fprintf(&sb, "Company:  %s\n", job.Company)
	}
	sb.WriteString("\n")

	writeList(&sb, "Must-have", job.MustHave, maxItemsToShow)
	writeList(&sb, "Nice-to-have", job.NiceToHave, 3)
	writeList(&sb, "Tools", job.Tools, maxItemsToShow)
	writeList(&sb, "Responsibilities", job.Responsibilities, 3)

	p.printBox("PARSED JOB", strings.TrimRight(sb.String(), "\n"))
}

// PrintGapReport outputs the coverage score, the gaps and the evidence per requirement.
func (p *Printer) PrintGapReport(report *types.GapReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Coverage: %d%%\n\n", report.CoverageScore)

	if len(report.MustHaveGaps) == 0 {
		sb.WriteString("✅ No must-have gaps\n\n")
	} else {
		sb.WriteString("Gaps:\n")
		for _, gap := range report.MustHaveGaps {
			fmt.Fprintf(&sb, "  ⚠ %s\n", gap)
		}
		sb.WriteString("\n")
	}

	requirements := make([]string, 0, len(report.EvidenceMap))
	for req := range report.EvidenceMap {
		requirements = append(requirements, req)
	}
	sort.Strings(requirements)

	for _, req := range requirements {
		fmt.Fprintf(&sb, "✓ %s\n", req)
		for _, line := range report.EvidenceMap[req] {
			fmt.Fprintf(&sb, "    %s\n", line)
		}
	}

	p.printBox("COVERAGE REPORT", strings.TrimRight(sb.String(), "\n"))
}
