package scoring

import (
	"strings"
	"testing"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/skills"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestBaseScore(t *testing.T) {
	longJD := strings.Repeat("a", 801)

	tests := []struct {
		name    string
		company string
		role    string
		jd      string
		want    int
	}{
		{name: "nothing supplied", want: 35},
		{name: "fallback only earns nothing", jd: "team player", want: 35},
		{name: "one category", jd: "React", want: 40},
		{name: "company and role", company: "Acme", role: "SDE", jd: "React", want: 60},
		{name: "blank company ignored", company: "   ", role: "\t", jd: "React", want: 40},
		{name: "exactly 800 chars is not long", jd: strings.Repeat("a", 800), want: 35},
		{name: "long JD", jd: longJD, want: 45},
		{name: "six categories", jd: "DSA Java React SQL AWS Jest", want: 65},
		{name: "everything", company: "Acme", role: "SDE", jd: "DSA Java React SQL AWS Jest " + longJD, want: 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseScore(tt.company, tt.role, tt.jd, skills.Extract(tt.jd))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBaseScore_CategoryPointsCapped(t *testing.T) {
	// Other counts as generic even when populated alongside real categories
	e := types.NewExtractedSkills()
	for _, c := range types.Categories {
		e.Set(c, []string{"x"})
	}
	assert.Equal(t, 65, BaseScore("", "", "", e))
}

func TestFinalScore(t *testing.T) {
	tests := []struct {
		name string
		base int
		conf types.SkillConfidenceMap
		want int
	}{
		{name: "nil map", base: 60, want: 60},
		{name: "one know", base: 60, conf: types.SkillConfidenceMap{"React": types.ConfidenceKnow}, want: 62},
		{name: "one practice", base: 60, conf: types.SkillConfidenceMap{"React": types.ConfidencePractice}, want: 58},
		{
			name: "mixed",
			base: 60,
			conf: types.SkillConfidenceMap{"React": types.ConfidenceKnow, "SQL": types.ConfidenceKnow, "AWS": types.ConfidencePractice},
			want: 62,
		},
		{name: "clamped high", base: 99, conf: types.SkillConfidenceMap{"a": "know", "b": "know"}, want: 100},
		{name: "clamped low", base: 1, conf: types.SkillConfidenceMap{"a": "practice", "b": "practice"}, want: 0},
		{name: "unknown state ignored", base: 50, conf: types.SkillConfidenceMap{"a": "maybe"}, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FinalScore(tt.base, tt.conf))
		})
	}
}

func TestFinalScore_AlwaysInRange(t *testing.T) {
	conf := types.SkillConfidenceMap{}
	for i := 0; i < 60; i++ {
		conf[strings.Repeat("s", i+1)] = types.ConfidenceKnow
	}
	for base := 0; base <= 100; base += 10 {
		got := FinalScore(base, conf)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
	for k := range conf {
		conf[k] = types.ConfidencePractice
	}
	for base := 0; base <= 100; base += 10 {
		got := FinalScore(base, conf)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestFinalScore_ToggleToKnowRaisesByTwo(t *testing.T) {
	conf := types.SkillConfidenceMap{"SQL": types.ConfidencePractice}
	before := FinalScore(70, conf)

	conf["React"] = types.ConfidenceKnow
	assert.Equal(t, before+2, FinalScore(70, conf))

	assert.Equal(t, 100, FinalScore(100, types.SkillConfidenceMap{"React": types.ConfidenceKnow}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5))
	assert.Equal(t, 100, Clamp(105))
	assert.Equal(t, 42, Clamp(42))
}
