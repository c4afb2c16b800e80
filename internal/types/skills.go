// Package types provides type definitions for structured data used throughout the placement readiness system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillCategory is one of the fixed buckets detected skills are grouped into
type SkillCategory string

// Skill categories in canonical order
const (
	CategoryCoreCS      SkillCategory = "Core CS"
	CategoryLanguages   SkillCategory = "Languages"
	CategoryWeb         SkillCategory = "Web"
	CategoryData        SkillCategory = "Data"
	CategoryCloudDevOps SkillCategory = "Cloud/DevOps"
	CategoryTesting     SkillCategory = "Testing"
	CategoryOther       SkillCategory = "Other"
)

// Categories lists every category in canonical order. Other is always last.
var Categories = []SkillCategory{
	CategoryCoreCS,
	CategoryLanguages,
	CategoryWeb,
	CategoryData,
	CategoryCloudDevOps,
	CategoryTesting,
	CategoryOther,
}

// FallbackSkills is injected into Other when no category has any skill
var FallbackSkills = []string{"Communication", "Problem solving", "Basic coding", "Projects"}

// ExtractedSkills maps every skill category to the skills detected for it.
// Every key is always serialized, possibly as an empty list.
type ExtractedSkills struct {
	CoreCS    []string `json:"coreCS"`
	Languages []string `json:"languages"`
	Web       []string `json:"web"`
	Data      []string `json:"data"`
	Cloud     []string `json:"cloud"`
	Testing   []string `json:"testing"`
	Other     []string `json:"other"`
}

// NewExtractedSkills returns an ExtractedSkills with every category set to an empty list
func NewExtractedSkills() ExtractedSkills {
	return ExtractedSkills{
		CoreCS:    []string{},
		Languages: []string{},
		Web:       []string{},
		Data:      []string{},
		Cloud:     []string{},
		Testing:   []string{},
		Other:     []string{},
	}
}

// Get returns the skills recorded for a category
func (e *ExtractedSkills) Get(category SkillCategory) []string {
	if p := e.slot(category); p != nil {
		return *p
	}
	return nil
}

// Set replaces the skills recorded for a category. Unknown categories are ignored.
func (e *ExtractedSkills) Set(category SkillCategory, skills []string) {
	if p := e.slot(category); p != nil {
		if skills == nil {
			skills = []string{}
		}
		*p = skills
	}
}

// Has reports whether at least one skill was detected for the category
func (e *ExtractedSkills) Has(category SkillCategory) bool {
	return len(e.Get(category)) > 0
}

// IsEmpty reports whether no category holds any skill
func (e *ExtractedSkills) IsEmpty() bool {
	for _, c := range Categories {
		if e.Has(c) {
			return false
		}
	}
	return true
}

// ApplyFallback fills Other with FallbackSkills when every category is empty
func (e *ExtractedSkills) ApplyFallback() {
	if e.IsEmpty() {
		e.Other = append([]string(nil), FallbackSkills...)
	}
}

// Present returns the categories with at least one skill, in canonical order
func (e *ExtractedSkills) Present() []SkillCategory {
	present := make([]SkillCategory, 0, len(Categories))
	for _, c := range Categories {
		if e.Has(c) {
			present = append(present, c)
		}
	}
	return present
}

// all returns every detected skill in category order, without duplicates
func (e *ExtractedSkills) all() []string {
	seen := make(map[string]struct{})
	all := make([]string, 0)
	for _, c := range Categories {
		for _, s := range e.Get(c) {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			all = append(all, s)
		}
	}
	return all
}

// Contains reports whether the skill label appears under any category
func (e *ExtractedSkills) Contains(skill string) bool {
	for _, c := range Categories {
		for _, s := range e.Get(c) {
			if s == skill {
				return true
			}
		}
	}
	return false
}

func (e *ExtractedSkills) slot(category SkillCategory) *[]string {
	switch category {
	case CategoryCoreCS:
		return &e.CoreCS
	case CategoryLanguages:
		return &e.Languages
	case CategoryWeb:
		return &e.Web
	case CategoryData:
		return &e.Data
	case CategoryCloudDevOps:
		return &e.Cloud
	case CategoryTesting:
		return &e.Testing
	case CategoryOther:
		return &e.Other
	default:
		return nil
	}
}
