// Package scoring computes the readiness score of an analysis and its live confidence-adjusted value.
package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
)

// Base score components
const (
	baseStart         = 35
	perCategoryPoints = 5
	maxCategoryPoints = 30
	companyPoints     = 10
	rolePoints        = 10
	longJDPoints      = 10
	longJDThreshold   = 800
	confidenceStep    = 2
	minScore          = 0
	maxScore          = 100
)

// BaseScore scores an analysis from its inputs alone, ignoring user feedback.
// Only non-generic categories (everything but Other) earn category points.
func BaseScore(company, role, jdText string, extracted types.ExtractedSkills) int {
	score := baseStart

	categories := 0
	for _, c := range extracted.Present() {
		if c != types.CategoryOther {
			categories++
		}
	}
	score += min(categories*perCategoryPoints, maxCategoryPoints)

	if strings.TrimSpace(company) != "" {
		score += companyPoints
	}
	if strings.TrimSpace(role) != "" {
		score += rolePoints
	}
	if utf8.RuneCountInString(jdText) > longJDThreshold {
		score += longJDPoints
	}

	return min(score, maxScore)
}

// FinalScore adjusts a base score by +2 per known skill and -2 per skill to practice,
// clamped to [0, 100].
func FinalScore(baseScore int, confidence types.SkillConfidenceMap) int {
	delta := 0
	for _, c := range confidence {
		switch c {
		case types.ConfidenceKnow:
			delta += confidenceStep
		case types.ConfidencePractice:
			delta -= confidenceStep
		}
	}
	return Clamp(baseScore + delta)
}

// Clamp limits a score to [0, 100]
func Clamp(score int) int {
	return max(minScore, min(maxScore, score))
}
