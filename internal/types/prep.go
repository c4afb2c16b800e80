// Package types provides type definitions for structured data used throughout the placement readiness system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Output caps shared by the generators and tests
const (
	MaxChecklistItems = 8
	MaxPlanTasks      = 6
	MaxQuestions      = 10
	PlanDays          = 7
)

// ChecklistRound is the preparation checklist for one interview round
type ChecklistRound struct {
	RoundTitle string   `json:"roundTitle"`
	Items      []string `json:"items"`
}

// PlanDay is one day of the 7-day study plan
type PlanDay struct {
	Day   int      `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// RoundMappingItem describes an expected interview round and why it matters
type RoundMappingItem struct {
	RoundTitle   string   `json:"roundTitle"`
	FocusAreas   []string `json:"focusAreas"`
	WhyItMatters string   `json:"whyItMatters"`
}
