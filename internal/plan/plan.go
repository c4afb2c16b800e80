// Package plan builds the 7-day study plan from extracted skills.
package plan

import (
	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
)

type dayTemplate struct {
	focus string
	tasks []string
}

// template holds the fixed focus and base tasks for days 1..7
var template = [types.PlanDays]dayTemplate{
	{"Basics + Core CS", []string{"Quantitative aptitude practice", "Logical reasoning", "OS & DBMS basics", "Networks fundamentals"}},
	{"Core CS deep dive", []string{"OOP revision", "DBMS indexing & normalization", "Computer architecture basics", "Practice aptitude mock"}},
	{"DSA + Coding", []string{"Arrays & strings (5 problems)", "Sorting & searching", "Complexity analysis", "Code in primary language"}},
	{"DSA + Coding", []string{"Trees & graphs basics", "Recursion practice", "2–3 medium problems", "Debug and optimize"}},
	{"Project + Resume", []string{"Document 2–3 projects", "Align resume with JD", "Prepare STAR stories", "Update LinkedIn"}},
	{"Mock Interview", []string{"Practice coding aloud", "Mock HR questions", "Behavioral prep", "Time yourself"}},
	{"Revision + Weak Areas", []string{"Revise weak topics", "Final DSA brush-up", "Rest and stay calm", "Prepare for D-day"}},
}

// extraTask appends task to day when category was detected
type extraTask struct {
	category types.SkillCategory
	day      int
	task     string
}

// extras are applied in order, so for a given day earlier rows come first.
var extras = []extraTask{
	{types.CategoryWeb, 5, "Frontend/backend revision"},
	{types.CategoryWeb, 6, "Explain React/Node concepts"},
	{types.CategoryData, 2, "SQL practice"},
	{types.CategoryData, 4, "SQL joins & subqueries"},
	{types.CategoryCloudDevOps, 6, "Deployment & DevOps concepts"},
	{types.CategoryTesting, 5, "Testing strategy for projects"},
}

// Generate returns exactly types.PlanDays days numbered from 1.
// Each day's tasks are capped at types.MaxPlanTasks, keeping the earliest.
func Generate(extracted types.ExtractedSkills) []types.PlanDay {
	days := make([]types.PlanDay, types.PlanDays)
	for i, tmpl := range template {
		tasks := make([]string, len(tmpl.tasks), types.MaxPlanTasks)
		copy(tasks, tmpl.tasks)
		days[i] = types.PlanDay{Day: i + 1, Focus: tmpl.focus, Tasks: tasks}
	}

	for _, extra := range extras {
		if extracted.Has(extra.category) {
			d := &days[extra.day-1]
			d.Tasks = append(d.Tasks, extra.task)
		}
	}

	for i := range days {
		if len(days[i].Tasks) > types.MaxPlanTasks {
			days[i].Tasks = days[i].Tasks[:types.MaxPlanTasks]
		}
	}
	return days
}
