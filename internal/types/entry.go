// Package types provides type definitions for structured data used throughout the placement readiness system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Confidence is the user's self-assessment for one skill
type Confidence string

// Confidence states
const (
	ConfidenceKnow     Confidence = "know"
	ConfidencePractice Confidence = "practice"
)

// Valid reports whether c is one of the known confidence states
func (c Confidence) Valid() bool {
	return c == ConfidenceKnow || c == ConfidencePractice
}

// SkillConfidenceMap maps a skill label to the user's confidence in it
type SkillConfidenceMap map[string]Confidence

// Clone returns a copy of the map that is never nil
func (m SkillConfidenceMap) Clone() SkillConfidenceMap {
	out := make(SkillConfidenceMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Display returns the confidence shown for skill; skills never rated show as practice
func (m SkillConfidenceMap) Display(skill string) Confidence {
	if c, ok := m[skill]; ok {
		return c
	}
	return ConfidencePractice
}

// AnalysisResult bundles every artifact produced for one job description
type AnalysisResult struct {
	ExtractedSkills ExtractedSkills    `json:"extractedSkills"`
	Checklist       []ChecklistRound   `json:"checklist"`
	Plan7Days       []PlanDay          `json:"plan7Days"`
	Questions       []string           `json:"questions"`
	BaseScore       int                `json:"baseScore"`
	CompanyIntel    *CompanyIntel      `json:"companyIntel"`
	RoundMapping    []RoundMappingItem `json:"roundMapping"`
}

// Entry is the canonical persisted analysis record
type Entry struct {
	ID                 string             `json:"id"`
	CreatedAt          string             `json:"createdAt"`
	UpdatedAt          string             `json:"updatedAt"`
	Company            string             `json:"company"`
	Role               string             `json:"role"`
	JDText             string             `json:"jdText"`
	ExtractedSkills    ExtractedSkills    `json:"extractedSkills"`
	RoundMapping       []RoundMappingItem `json:"roundMapping"`
	Checklist          []ChecklistRound   `json:"checklist"`
	Plan7Days          []PlanDay          `json:"plan7Days"`
	Questions          []string           `json:"questions"`
	BaseScore          int                `json:"baseScore"`
	SkillConfidenceMap SkillConfidenceMap `json:"skillConfidenceMap"`
	FinalScore         int                `json:"finalScore"`
	CompanyIntel       *CompanyIntel      `json:"companyIntel"`
}

// History is the visible, normalized view of the persisted records
type History struct {
	Entries        []Entry `json:"entries"`
	CorruptedCount int     `json:"corruptedCount"`
}

// AnalyzeRequest is the input of a single analysis
type AnalyzeRequest struct {
	Company string `json:"company" validate:"max=200"`
	Role    string `json:"role" validate:"max=200"`
	JDText  string `json:"jdText" validate:"required"`
}

// Trim returns a copy of the request with surrounding whitespace removed from every field
func (r AnalyzeRequest) Trim() AnalyzeRequest {
	return AnalyzeRequest{
		Company: strings.TrimSpace(r.Company),
		Role:    strings.TrimSpace(r.Role),
		JDText:  strings.TrimSpace(r.JDText),
	}
}

// Validate validates the AnalyzeRequest using the validator.
// The JD must contain something other than whitespace.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	trimmed := r.Trim()
	return validate.Struct(&trimmed)
}

// ConfidenceUpdateRequest sets the confidence of one skill on an entry.
// Validate only checks presence; the value itself is checked against the entry's skills by the history service.
type ConfidenceUpdateRequest struct {
	Skill      string     `json:"skill" validate:"required"`
	Confidence Confidence `json:"confidence" validate:"required"`
}

// Validate validates the ConfidenceUpdateRequest using the validator.
func (r *ConfidenceUpdateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
