// Package observability provides formatted terminal output for analyses and history.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
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

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintEntry outputs the score, company intel and skills of an entry.
func (p *Printer) PrintEntry(entry *types.Entry, warning string) {
	if entry == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:       %s\n", entry.ID))
	if entry.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", entry.Company))
	}
	if entry.Role != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s\n", entry.Role))
	}
	sb.WriteString(fmt.Sprintf("Score:    %d/100 (base %d)\n", entry.FinalScore, entry.BaseScore))
	if entry.CreatedAt != "" {
		sb.WriteString(fmt.Sprintf("Created:  %s\n", entry.CreatedAt))
	}
	if warning != "" {
		sb.WriteString(fmt.Sprintf("\n! %s\n", warning))
	}
	p.printBox("READINESS", strings.TrimSuffix(sb.String(), "\n"))

	p.PrintCompanyIntel(entry.CompanyIntel)
	p.PrintSkills(&entry.ExtractedSkills, entry.SkillConfidenceMap)
	p.PrintRoundMapping(entry.RoundMapping)
}

// PrintCompanyIntel outputs the inferred company profile
func (p *Printer) PrintCompanyIntel(intel *types.CompanyIntel) {
	if intel == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", intel.Name))
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", intel.Industry))
	sb.WriteString(fmt.Sprintf("Size:      %s\n", intel.SizeLabel))
	sb.WriteString("\n")
	sb.WriteString(intel.HiringFocus)

	p.printBox("COMPANY INTEL", sb.String())
}

// PrintSkills outputs detected skills per category with the confidence shown for each
func (p *Printer) PrintSkills(extracted *types.ExtractedSkills, confidence types.SkillConfidenceMap) {
	if extracted == nil {
		return
	}

	var sb strings.Builder
	for _, category := range extracted.Present() {
		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, skill := range extracted.Get(category) {
			mark := "○"
			if confidence.Display(skill) == types.ConfidenceKnow {
				mark = "●"
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", mark, skill))
		}
	}

	p.printBox("KEY SKILLS (● know  ○ practice)", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoundMapping outputs the expected interview rounds
func (p *Printer) PrintRoundMapping(items []types.RoundMappingItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	for i, item := range items {
		sb.WriteString(item.RoundTitle + "\n")
		if item.WhyItMatters != "" {
			sb.WriteString(fmt.Sprintf("  Why: %s\n", item.WhyItMatters))
		}
		if i < len(items)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ROUND MAPPING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHistory outputs one line per entry, newest first.
func (p *Printer) PrintHistory(h *types.History) {
	if h == nil {
		return
	}

	var sb strings.Builder
	if len(h.Entries) == 0 {
		sb.WriteString("No analyses yet.\n")
	}
	for _, e := range h.Entries {
		label := e.Company
		if label == "" {
			label = "(no company)"
		}
		if e.Role != "" {
			label += " / " + e.Role
		}
		date := e.CreatedAt
		if len(date) >= 10 {
			date = date[:10]
		}
		sb.WriteString(fmt.Sprintf("%3d  %-10s  %s\n", e.FinalScore, date, label))
		sb.WriteString(fmt.Sprintf("     %s\n", e.ID))
	}

	if h.CorruptedCount > 0 {
		sb.WriteString(fmt.Sprintf("\n%d saved entr%s couldn't be loaded.\n", h.CorruptedCount, plural(h.CorruptedCount)))
	}

	p.printBox(fmt.Sprintf("HISTORY (%d)", len(h.Entries)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the top questions of an entry
func (p *Printer) PrintSummary(entry *types.Entry) {
	if entry == nil || len(entry.Questions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entry.Questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, entry.Questions[i]))
	}
	if len(entry.Questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(entry.Questions)-maxItemsToShow))
	}

	p.printBox("LIKELY QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
