// Package export renders parts of an entry as plain text for copying or saving.
package export

import (
	"fmt"
	"strings"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
)

// Kind selects what to export
type Kind string

// Export kinds
const (
	KindPlan      Kind = "plan"
	KindChecklist Kind = "checklist"
	KindQuestions Kind = "questions"
	KindAll       Kind = "all"
)

// Kinds lists every export kind
var Kinds = []Kind{KindPlan, KindChecklist, KindQuestions, KindAll}

// ParseKind validates a kind name
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == strings.ToLower(strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown export kind %q (want plan, checklist, questions or all)", s)
}

// Text renders the requested part of entry
func Text(entry *types.Entry, kind Kind) (string, error) {
	if entry == nil {
		return "", fmt.Errorf("entry is nil")
	}
	switch kind {
	case KindPlan:
		return Plan(entry.Plan7Days), nil
	case KindChecklist:
		return Checklist(entry.Checklist), nil
	case KindQuestions:
		return Questions(entry.Questions), nil
	case KindAll:
		return All(entry), nil
	default:
		return "", fmt.Errorf("unknown export kind %q", kind)
	}
}

// Plan renders the day-by-day plan
func Plan(days []types.PlanDay) string {
	var sb strings.Builder
	sb.WriteString("7-Day Preparation Plan\n")
	for _, d := range days {
		sb.WriteString(fmt.Sprintf("\nDay %d: %s\n", d.Day, d.Focus))
		for _, task := range d.Tasks {
			sb.WriteString("- " + task + "\n")
		}
	}
	return sb.String()
}

// Checklist renders the round-wise checklist with empty checkboxes
func Checklist(rounds []types.ChecklistRound) string {
	var sb strings.Builder
	sb.WriteString("Round-wise Preparation Checklist\n")
	for _, r := range rounds {
		sb.WriteString("\n" + r.RoundTitle + "\n")
		for _, item := range r.Items {
			sb.WriteString("[ ] " + item + "\n")
		}
	}
	return sb.String()
}

// Questions renders the numbered question list
func Questions(questions []string) string {
	var sb strings.Builder
	sb.WriteString("Likely Interview Questions\n\n")
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
	}
	return sb.String()
}

// All renders a header followed by the plan, checklist and questions
func All(entry *types.Entry) string {
	var sb strings.Builder

	title := "Placement Preparation"
	if entry.Company != "" {
		title += ": " + entry.Company
	}
	if entry.Role != "" {
		title += " (" + entry.Role + ")"
	}
	sb.WriteString(title + "\n")
	sb.WriteString(fmt.Sprintf("Readiness score: %d/100\n", entry.FinalScore))

	for _, section := range []string{Plan(entry.Plan7Days), Checklist(entry.Checklist), Questions(entry.Questions)} {
		sb.WriteString("\n")
		sb.WriteString(section)
	}
	return sb.String()
}
