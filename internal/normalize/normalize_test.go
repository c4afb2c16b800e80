package normalize

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/analysis"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// legacyV1 is the earliest stored shape: byCategory skills, round/title/items fields, readinessScore.
const legacyV1 = `{
	"id": "v1",
	"createdAt": "2025-11-01T10:00:00.000Z",
	"company": "Infosys",
	"role": "SE",
	"jdText": "DSA and React",
	"extractedSkills": {"byCategory": {"Core CS": ["DSA"], "Web": ["React"]}},
	"checklist": [{"round": "Round 1: Aptitude / Basics", "items": ["a", "b"]}],
	"plan": [{"day": 1, "title": "Basics + Core CS", "items": ["x", "y"]}],
	"questions": ["q1", "q2"],
	"readinessScore": 70
}`

// legacyV2 carries round mapping with round/why and a confidence map but no finalScore.
const legacyV2 = `{
	"id": "v2",
	"createdAt": "2025-12-01T10:00:00.000Z",
	"extractedSkills": {"coreCS": [], "languages": ["Java"], "web": [], "data": ["SQL"], "cloud": [], "testing": [], "other": []},
	"roundMapping": [{"round": "Round 1: Practical coding", "why": "because"}],
	"plan7Days": [{"day": 1, "focus": "F", "tasks": ["t"]}],
	"baseScore": 60,
	"skillConfidenceMap": {"Java": "know", "SQL": "know", "Rust": "know", "Python": "maybe"}
}`

func TestEntry_RejectsNonObjects(t *testing.T) {
	inputs := []string{
		`null`, `42`, `"id"`, `true`, `[]`, `[{"id":"x"}]`, `not json`, ``, `{"id":`,
	}
	for _, in := range inputs {
		entry, ok := Entry([]byte(in))
		assert.False(t, ok, "input %q", in)
		assert.Nil(t, entry)
	}
}

func TestEntry_RejectsMissingID(t *testing.T) {
	inputs := []string{
		`{}`, `{"id": ""}`, `{"id": null}`, `{"id": 12}`, `{"id": ["a"]}`, `{"id": {"v": "a"}}`, `{"ID": "a"}`,
	}
	for _, in := range inputs {
		_, ok := Entry([]byte(in))
		assert.False(t, ok, "input %q", in)
	}
}

func TestEntry_MinimalRecordDefaults(t *testing.T) {
	entry, ok := Entry([]byte(`{"id": "abc"}`))
	require.True(t, ok)

	assert.Equal(t, "abc", entry.ID)
	assert.Equal(t, "", entry.CreatedAt)
	assert.Equal(t, "", entry.UpdatedAt)
	assert.Equal(t, types.FallbackSkills, entry.ExtractedSkills.Other)
	assert.Empty(t, entry.RoundMapping)
	assert.NotNil(t, entry.RoundMapping)
	assert.Empty(t, entry.Checklist)
	assert.Empty(t, entry.Plan7Days)
	assert.Empty(t, entry.Questions)
	assert.NotNil(t, entry.Questions)
	assert.Equal(t, 0, entry.BaseScore)
	assert.Equal(t, 0, entry.FinalScore)
	assert.NotNil(t, entry.SkillConfidenceMap)
	assert.Nil(t, entry.CompanyIntel)
}

func TestEntry_LegacyV1(t *testing.T) {
	entry, ok := Entry([]byte(legacyV1))
	require.True(t, ok)

	assert.Equal(t, []string{"DSA"}, entry.ExtractedSkills.CoreCS)
	assert.Equal(t, []string{"React"}, entry.ExtractedSkills.Web)
	assert.Empty(t, entry.ExtractedSkills.Other)

	require.Len(t, entry.Checklist, 1)
	assert.Equal(t, "Round 1: Aptitude / Basics", entry.Checklist[0].RoundTitle)
	assert.Equal(t, []string{"a", "b"}, entry.Checklist[0].Items)

	require.Len(t, entry.Plan7Days, 1)
	assert.Equal(t, types.PlanDay{Day: 1, Focus: "Basics + Core CS", Tasks: []string{"x", "y"}}, entry.Plan7Days[0])

	assert.Equal(t, 70, entry.BaseScore)
	assert.Equal(t, 70, entry.FinalScore)
	assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
}

func TestEntry_LegacyV2(t *testing.T) {
	entry, ok := Entry([]byte(legacyV2))
	require.True(t, ok)

	require.Len(t, entry.RoundMapping, 1)
	assert.Equal(t, "Round 1: Practical coding", entry.RoundMapping[0].RoundTitle)
	assert.Equal(t, "because", entry.RoundMapping[0].WhyItMatters)
	assert.Empty(t, entry.RoundMapping[0].FocusAreas)

	// unknown skills and invalid states are dropped
	assert.Equal(t, types.SkillConfidenceMap{"Java": types.ConfidenceKnow, "SQL": types.ConfidenceKnow}, entry.SkillConfidenceMap)

	// finalScore is recomputed rather than defaulted to zero
	assert.Equal(t, 64, entry.FinalScore)
}

func TestEntry_CanonicalRoundTrip(t *testing.T) {
	result := analysis.AnalyzeJD("Google", "SDE", "React, Node.js and SQL")
	canonical := types.Entry{
		ID:                 "canon",
		CreatedAt:          "2026-01-01T00:00:00.000Z",
		UpdatedAt:          "2026-01-02T00:00:00.000Z",
		Company:            "Google",
		Role:               "SDE",
		JDText:             "React, Node.js and SQL",
		ExtractedSkills:    result.ExtractedSkills,
		RoundMapping:       result.RoundMapping,
		Checklist:          result.Checklist,
		Plan7Days:          result.Plan7Days,
		Questions:          result.Questions,
		BaseScore:          result.BaseScore,
		SkillConfidenceMap: types.SkillConfidenceMap{"React": types.ConfidenceKnow},
		FinalScore:         result.BaseScore + 2,
		CompanyIntel:       result.CompanyIntel,
	}

	entry, ok := Value(canonical)
	require.True(t, ok)
	assert.Equal(t, canonical, *entry)
}

func TestEntry_Idempotent(t *testing.T) {
	inputs := []string{
		legacyV1,
		legacyV2,
		`{"id": "x"}`,
		`{"id": "x", "baseScore": "88", "finalScore": 1e400}`,
		`{"id": "x", "extractedSkills": {"byCategory": {"General": ["Teamwork"]}}, "skillConfidenceMap": {"Teamwork": "practice"}}`,
		`{"id": "x", "roundMapping": [null, 3, {"roundTitle": 7, "round": "fallback"}], "checklist": "nope", "plan": {"day": 1}}`,
	}

	for _, in := range inputs {
		first, ok := Entry([]byte(in))
		require.True(t, ok, in)
		second, ok := Value(first)
		require.True(t, ok, in)
		assert.Equal(t, first, second, in)
	}
}

func TestEntry_FieldCoercion(t *testing.T) {
	raw := `{
		"id": "x",
		"company": 5,
		"role": null,
		"jdText": ["a"],
		"createdAt": 123,
		"updatedAt": "2026-02-02",
		"questions": ["ok", 1, null, {"q": "no"}, "fine"],
		"baseScore": 72.6,
		"finalScore": "not a number",
		"roundMapping": [null, 3, {"roundTitle": 7, "round": "ignored", "focusAreas": "x", "why": "w"}],
		"checklist": {"round": "x"},
		"plan7Days": null,
		"plan": [{"day": "3", "title": 9, "items": ["i"]}, "junk"],
		"companyIntel": ["not", "object"],
		"extractedSkills": "junk"
	}`

	entry, ok := Entry([]byte(raw))
	require.True(t, ok)

	assert.Equal(t, "", entry.Company)
	assert.Equal(t, "", entry.Role)
	assert.Equal(t, "", entry.JDText)
	assert.Equal(t, "", entry.CreatedAt)
	assert.Equal(t, "2026-02-02", entry.UpdatedAt)
	assert.Equal(t, []string{"ok", "fine"}, entry.Questions)
	assert.Equal(t, 73, entry.BaseScore)
	assert.Equal(t, 73, entry.FinalScore)

	require.Len(t, entry.RoundMapping, 3)
	assert.Equal(t, "Round", entry.RoundMapping[0].RoundTitle)
	assert.Equal(t, "Round", entry.RoundMapping[1].RoundTitle)
	// a present but non-string roundTitle does not fall through to the legacy name
	assert.Equal(t, "Round", entry.RoundMapping[2].RoundTitle)
	assert.Equal(t, "w", entry.RoundMapping[2].WhyItMatters)
	assert.Empty(t, entry.RoundMapping[2].FocusAreas)

	assert.Empty(t, entry.Checklist)

	require.Len(t, entry.Plan7Days, 2)
	assert.Equal(t, types.PlanDay{Day: 3, Focus: "", Tasks: []string{"i"}}, entry.Plan7Days[0])
	assert.Equal(t, types.PlanDay{Day: 0, Focus: "", Tasks: []string{}}, entry.Plan7Days[1])

	assert.Nil(t, entry.CompanyIntel)
	assert.Equal(t, types.FallbackSkills, entry.ExtractedSkills.Other)
}

func TestEntry_ScoresClamped(t *testing.T) {
	entry, ok := Entry([]byte(`{"id": "x", "baseScore": 250, "finalScore": -40}`))
	require.True(t, ok)
	assert.Equal(t, 100, entry.BaseScore)
	assert.Equal(t, 0, entry.FinalScore)

	entry, ok = Entry([]byte(`{"id": "x", "baseScore": 1e308, "readinessScore": 50}`))
	require.True(t, ok)
	assert.Equal(t, 100, entry.BaseScore)
}

func TestEntry_NonFiniteNumbersDefault(t *testing.T) {
	entry, ok := Entry([]byte(`{"id": "x", "baseScore": 1e400, "skillConfidenceMap": {}}`))
	require.True(t, ok)
	assert.Equal(t, 0, entry.BaseScore)
	assert.Equal(t, 0, entry.FinalScore)
}

func TestEntry_BaseScoreAliasPrecedence(t *testing.T) {
	entry, ok := Entry([]byte(`{"id": "x", "baseScore": null, "readinessScore": 55}`))
	require.True(t, ok)
	assert.Equal(t, 55, entry.BaseScore)

	entry, ok = Entry([]byte(`{"id": "x", "baseScore": 40, "readinessScore": 55}`))
	require.True(t, ok)
	assert.Equal(t, 40, entry.BaseScore)
}

func TestExtractedSkills_Shapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want func(e *types.ExtractedSkills)
	}{
		{
			name: "canonical wins over byCategory",
			raw:  `{"web": ["Vue"], "byCategory": {"Web": ["React"], "Data": ["SQL"]}}`,
			want: func(e *types.ExtractedSkills) {
				e.Web = []string{"Vue"}
				e.Data = []string{"SQL"}
			},
		},
		{
			name: "General alias for Other",
			raw:  `{"byCategory": {"General": ["Teamwork"]}}`,
			want: func(e *types.ExtractedSkills) { e.Other = []string{"Teamwork"} },
		},
		{
			name: "Other label preferred over General",
			raw:  `{"byCategory": {"Other": ["A"], "General": ["B"]}}`,
			want: func(e *types.ExtractedSkills) { e.Other = []string{"A"} },
		},
		{
			name: "Cloud/DevOps label",
			raw:  `{"byCategory": {"Cloud/DevOps": ["AWS"], "Testing": ["Jest"]}}`,
			want: func(e *types.ExtractedSkills) {
				e.Cloud = []string{"AWS"}
				e.Testing = []string{"Jest"}
			},
		},
		{
			name: "byCategory not an object",
			raw:  `{"byCategory": ["Web"]}`,
			want: func(e *types.ExtractedSkills) { e.Other = append([]string(nil), types.FallbackSkills...) },
		},
		{
			name: "all empty gets fallback",
			raw:  `{"coreCS": [], "web": []}`,
			want: func(e *types.ExtractedSkills) { e.Other = append([]string(nil), types.FallbackSkills...) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := Entry([]byte(`{"id": "x", "extractedSkills": ` + tt.raw + `}`))
			require.True(t, ok)
			want := types.NewExtractedSkills()
			tt.want(&want)
			assert.Equal(t, want, entry.ExtractedSkills)
		})
	}
}

func TestValue_Maps(t *testing.T) {
	entry, ok := Value(map[string]any{"id": "m", "readinessScore": 42})
	require.True(t, ok)
	assert.Equal(t, 42, entry.BaseScore)

	_, ok = Value(map[string]any{"id": func() {}})
	assert.False(t, ok)

	_, ok = Value(nil)
	assert.False(t, ok)

	_, ok = Value([]any{map[string]any{"id": "x"}, math.NaN()})
	assert.False(t, ok)
}

func TestValue_UnencodableLeavesDefault(t *testing.T) {
	entry, ok := Value(map[string]any{"id": "keep-me", "baseScore": math.NaN()})
	require.True(t, ok)
	assert.Equal(t, "keep-me", entry.ID)
	assert.Equal(t, 0, entry.BaseScore)
	assert.Equal(t, 0, entry.FinalScore)

	entry, ok = Value(map[string]any{
		"id":             "nested",
		"readinessScore": 61,
		"finalScore":     math.Inf(-1),
		"plan":           []any{map[string]any{"day": math.Inf(1), "focus": "Basics", "tasks": []string{"a"}}},
		"questions":      []any{"q1", make(chan int), "q2"},
		"company":        func() {},
	})
	require.True(t, ok)
	assert.Equal(t, 61, entry.BaseScore)
	assert.Equal(t, 61, entry.FinalScore)
	require.Len(t, entry.Plan7Days, 1)
	assert.Equal(t, 0, entry.Plan7Days[0].Day)
	assert.Equal(t, "Basics", entry.Plan7Days[0].Focus)
	assert.Equal(t, []string{"q1", "q2"}, entry.Questions)
	assert.Equal(t, "", entry.Company)
}

func FuzzEntry(f *testing.F) {
	f.Add([]byte(legacyV1))
	f.Add([]byte(legacyV2))
	f.Add([]byte(`{"id":"x","extractedSkills":{"byCategory":null}}`))
	f.Add([]byte(`{"id":"x","plan":[{"day":1e999}]}`))
	f.Add([]byte(`[]`))

	f.Fuzz(func(t *testing.T, raw []byte) {
		entry, ok := Entry(raw)
		if !ok {
			return
		}
		if entry.ID == "" {
			t.Fatal("accepted entry without id")
		}
		if entry.ExtractedSkills.IsEmpty() {
			t.Fatal("all categories empty")
		}
		if entry.BaseScore < 0 || entry.BaseScore > 100 || entry.FinalScore < 0 || entry.FinalScore > 100 {
			t.Fatalf("score out of range: %d %d", entry.BaseScore, entry.FinalScore)
		}
		again, ok := Value(entry)
		if !ok {
			t.Fatal("normalized entry rejected on second pass")
		}
		a, _ := json.Marshal(entry)
		b, _ := json.Marshal(again)
		if string(a) != string(b) {
			t.Fatalf("not idempotent:\n%s\n%s", a, b)
		}
	})
}
