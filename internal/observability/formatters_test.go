package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/analysis"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleEntry() *types.Entry {
	r := analysis.AnalyzeJD("Google", "SDE", "React, Node.js and SQL")
	return &types.Entry{
		ID:                 "e-1",
		CreatedAt:          "2026-03-01T09:30:00.000Z",
		Company:            "Google",
		Role:               "SDE",
		ExtractedSkills:    r.ExtractedSkills,
		RoundMapping:       r.RoundMapping,
		Questions:          r.Questions,
		BaseScore:          r.BaseScore,
		SkillConfidenceMap: types.SkillConfidenceMap{"React": types.ConfidenceKnow},
		FinalScore:         r.BaseScore + 2,
		CompanyIntel:       r.CompanyIntel,
	}
}

func TestPrintEntry(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEntry(sampleEntry(), analysis.ShortJDWarning)
	output := buf.String()

	assert.Contains(t, output, "READINESS")
	assert.Contains(t, output, "67/100 (base 65)")
	assert.Contains(t, output, "COMPANY INTEL")
	assert.Contains(t, output, "Enterprise (2000+)")
	assert.Contains(t, output, "● React")
	assert.Contains(t, output, "○ SQL")
	assert.Contains(t, output, "ROUND MAPPING")
	assert.Contains(t, output, "too short")
}

func TestPrintEntry_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEntry(nil, "")
	p.PrintCompanyIntel(nil)
	p.PrintSkills(nil, nil)
	p.PrintRoundMapping(nil)
	p.PrintHistory(nil)
	p.PrintSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintHistory(&types.History{
		Entries:        []types.Entry{*sampleEntry(), {ID: "e-2", FinalScore: 35}},
		CorruptedCount: 1,
	})
	output := buf.String()

	assert.Contains(t, output, "HISTORY (2)")
	assert.Contains(t, output, "2026-03-01")
	assert.Contains(t, output, "Google / SDE")
	assert.Contains(t, output, "(no company)")
	assert.Contains(t, output, "1 saved entry couldn't be loaded.")
}

func TestPrintHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintHistory(&types.History{CorruptedCount: 2})

	assert.Contains(t, buf.String(), "No analyses yet.")
	assert.Contains(t, buf.String(), "2 saved entries couldn't be loaded.")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSummary(sampleEntry())

	assert.Contains(t, buf.String(), "LIKELY QUESTIONS")
	assert.Contains(t, buf.String(), "1. ")
	assert.Contains(t, buf.String(), "... and 5 more")
}

func TestPrintBox_TruncatesByRune(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("T", strings.Repeat("é", 200))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
}
