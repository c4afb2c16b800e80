// Package checklist builds the round-by-round preparation checklist from extracted skills.
package checklist

import (
	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
)

// Round titles, in interview order
const (
	RoundAptitude   = "Round 1: Aptitude / Basics"
	RoundDSA        = "Round 2: DSA + Core CS"
	RoundTechnical  = "Round 3: Tech Interview (Projects + Stack)"
	RoundManagerial = "Round 4: Managerial / HR"
)

// minTechItems is the floor below which the technical round receives filler items
const minTechItems = 5

// section is a block of checklist items gated on detected categories.
// Every category in requires must be present, at least one of anyOf (when set),
// and none of noneOf. A section with no gates always applies.
type section struct {
	requires []types.SkillCategory
	anyOf    []types.SkillCategory
	noneOf   []types.SkillCategory
	items    []string
}

func (s section) applies(extracted *types.ExtractedSkills) bool {
	for _, c := range s.requires {
		if !extracted.Has(c) {
			return false
		}
	}
	for _, c := range s.noneOf {
		if extracted.Has(c) {
			return false
		}
	}
	if len(s.anyOf) == 0 {
		return true
	}
	for _, c := range s.anyOf {
		if extracted.Has(c) {
			return true
		}
	}
	return false
}

var aptitudeSections = []section{
	{items: []string{
		"Revise quantitative aptitude (percentages, ratios, time & work)",
		"Practice logical reasoning and puzzles",
		"Review basic CS fundamentals (binary, number systems)",
		"Time yourself on sample aptitude tests",
	}},
	{requires: []types.SkillCategory{types.CategoryCoreCS}, items: []string{
		"Brush up OS and DBMS basics",
		"Quick revision of Networks fundamentals",
	}},
	{items: []string{"Prepare for verbal reasoning if applicable"}},
}

var technicalSections = []section{
	{items: []string{
		"Prepare 2–3 project descriptions (STAR format)",
		"Align resume points with JD requirements",
	}},
	{requires: []types.SkillCategory{types.CategoryWeb}, items: []string{
		"Revise React/Node concepts and lifecycle",
		"Be ready to explain REST/API design",
	}},
	{requires: []types.SkillCategory{types.CategoryData}, items: []string{
		"Explain SQL optimization and indexing",
		"Discuss database design choices",
	}},
	{requires: []types.SkillCategory{types.CategoryCloudDevOps}, items: []string{
		"Explain Docker basics and CI/CD flow",
		"Describe a deployment you've done",
	}},
	{requires: []types.SkillCategory{types.CategoryLanguages}, items: []string{
		"Language-specific: OOP, memory, concurrency",
	}},
}

var technicalFiller = []string{
	"Prepare system design basics (if applicable)",
	"Review version control (Git)",
}

var managerialSections = []section{
	{items: []string{
		"Prepare 'Tell me about yourself' (2 min)",
		"List 5 strengths and 5 weaknesses with examples",
		"Prepare questions to ask the interviewer",
		"Review company culture and recent news",
		"Prepare behavioral examples (conflict, leadership, failure)",
		"Dress code and punctuality checklist",
		"Relax and get good sleep the night before",
	}},
}

var codingSignals = []types.SkillCategory{types.CategoryCoreCS, types.CategoryLanguages}

var dsaSections = []section{
	{anyOf: codingSignals, items: []string{
		"Solve 5 medium DSA problems (arrays, strings)",
		"Revise key algorithms: sorting, searching, DP basics",
		"Practice time & space complexity analysis",
	}},
	{requires: []types.SkillCategory{types.CategoryLanguages}, items: []string{
		"Implement 2 problems in your primary language",
	}},
	{noneOf: codingSignals, items: []string{
		"Practice basic coding problems",
		"Revise control structures and loops",
	}},
	{requires: []types.SkillCategory{types.CategoryCoreCS}, items: []string{
		"Revise OOP concepts and design",
		"DBMS: joins, indexing, normalization",
	}},
	{items: []string{"Practice explaining your approach clearly"}},
}

// Generate returns the four fixed checklist rounds, each capped at types.MaxChecklistItems.
func Generate(extracted types.ExtractedSkills) []types.ChecklistRound {
	return []types.ChecklistRound{
		{RoundTitle: RoundAptitude, Items: collect(aptitudeSections, &extracted)},
		{RoundTitle: RoundDSA, Items: collect(dsaSections, &extracted)},
		{RoundTitle: RoundTechnical, Items: technicalItems(&extracted)},
		{RoundTitle: RoundManagerial, Items: collect(managerialSections, &extracted)},
	}
}

func technicalItems(extracted *types.ExtractedSkills) []string {
	items := collect(technicalSections, extracted)
	if len(items) < minTechItems {
		items = append(items, technicalFiller...)
	}
	return items
}

// collect concatenates the applicable sections in order and keeps the earliest items.
func collect(sections []section, extracted *types.ExtractedSkills) []string {
	items := make([]string, 0, types.MaxChecklistItems)
	for _, s := range sections {
		if !s.applies(extracted) {
			continue
		}
		items = append(items, s.items...)
	}
	if len(items) > types.MaxChecklistItems {
		items = items[:types.MaxChecklistItems]
	}
	return items
}
