//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_JSONFieldNames(t *testing.T) {
	entry := Entry{
		ID:                 "abc",
		CreatedAt:          "2026-01-02T03:04:05.000Z",
		UpdatedAt:          "2026-01-02T03:04:05.000Z",
		ExtractedSkills:    NewExtractedSkills(),
		SkillConfidenceMap: SkillConfidenceMap{"React": ConfidenceKnow},
		BaseScore:          70,
		FinalScore:         72,
	}

	jsonBytes, err := json.Marshal(entry)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &raw))
	for _, key := range []string{
		"id", "createdAt", "updatedAt", "company", "role", "jdText", "extractedSkills",
		"roundMapping", "checklist", "plan7Days", "questions", "baseScore",
		"skillConfidenceMap", "finalScore", "companyIntel",
	} {
		assert.Contains(t, raw, key)
	}
	assert.Nil(t, raw["companyIntel"])
	assert.Equal(t, map[string]any{"React": "know"}, raw["skillConfidenceMap"])
}

func TestConfidence_Valid(t *testing.T) {
	assert.True(t, ConfidenceKnow.Valid())
	assert.True(t, ConfidencePractice.Valid())
	assert.False(t, Confidence("maybe").Valid())
	assert.False(t, Confidence("").Valid())
}

func TestSkillConfidenceMap_Clone(t *testing.T) {
	var nilMap SkillConfidenceMap
	clone := nilMap.Clone()
	require.NotNil(t, clone)
	assert.Empty(t, clone)

	orig := SkillConfidenceMap{"Go": ConfidencePractice}
	clone = orig.Clone()
	clone["Go"] = ConfidenceKnow
	assert.Equal(t, ConfidencePractice, orig["Go"])
}

func TestSkillConfidenceMap_Display(t *testing.T) {
	m := SkillConfidenceMap{"Go": ConfidenceKnow}
	assert.Equal(t, ConfidenceKnow, m.Display("Go"))
	assert.Equal(t, ConfidencePractice, m.Display("Rust"))

	var nilMap SkillConfidenceMap
	assert.Equal(t, ConfidencePractice, nilMap.Display("Go"))
}

func TestAnalyzeRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request AnalyzeRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: AnalyzeRequest{Company: "Google", Role: "SDE", JDText: "We need React"},
		},
		{
			name:    "company and role optional",
			request: AnalyzeRequest{JDText: "We need React"},
		},
		{
			name:    "blank JD",
			request: AnalyzeRequest{Company: "Google", JDText: "   \n\t"},
			wantErr: true,
		},
		{
			name:    "missing JD",
			request: AnalyzeRequest{Company: "Google"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalyzeRequest_Trim(t *testing.T) {
	req := AnalyzeRequest{Company: "  Google ", Role: "\tSDE\n", JDText: "  jd  "}
	assert.Equal(t, AnalyzeRequest{Company: "Google", Role: "SDE", JDText: "jd"}, req.Trim())
}

func TestConfidenceUpdateRequest_Validation(t *testing.T) {
	valid := ConfidenceUpdateRequest{Skill: "React", Confidence: ConfidenceKnow}
	assert.NoError(t, valid.Validate())

	// unknown states are rejected later as invalid confidence, not as a malformed body
	unknownState := ConfidenceUpdateRequest{Skill: "React", Confidence: "maybe"}
	assert.NoError(t, unknownState.Validate())

	noState := ConfidenceUpdateRequest{Skill: "React"}
	assert.Error(t, noState.Validate())

	noSkill := ConfidenceUpdateRequest{Confidence: ConfidencePractice}
	assert.Error(t, noSkill.Validate())
}
