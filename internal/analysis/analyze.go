// Package analysis composes the skill extractor and generators into a single JD analysis.
package analysis

import (
	"unicode/utf8"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/checklist"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/company"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/plan"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/questions"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/rounds"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/scoring"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/skills"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
)

// MinJDLength is the JD length below which analysis output is flagged as shallow
const MinJDLength = 200

// ShortJDWarning is attached to analyses of short job descriptions
const ShortJDWarning = "This JD is too short to analyze deeply. Paste full JD for better output."

// AnalyzeJD produces the full preparation bundle for a (company, role, JD) triple.
// It is a pure function of its inputs.
func AnalyzeJD(companyName, role, jdText string) types.AnalysisResult {
	extracted := skills.Extract(jdText)

	return types.AnalysisResult{
		ExtractedSkills: extracted,
		Checklist:       checklist.Generate(extracted),
		Plan7Days:       plan.Generate(extracted),
		Questions:       questions.Generate(extracted),
		BaseScore:       scoring.BaseScore(companyName, role, jdText, extracted),
		CompanyIntel:    company.Resolve(companyName, jdText),
		RoundMapping:    rounds.Map(companyName, extracted, jdText),
	}
}

// Warning returns ShortJDWarning for non-empty JDs under MinJDLength, or "".
func Warning(jdText string) string {
	n := utf8.RuneCountInString(jdText)
	if n > 0 && n < MinJDLength {
		return ShortJDWarning
	}
	return ""
}
