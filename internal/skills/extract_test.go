package skills

import (
	"testing"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_WebAndData(t *testing.T) {
	skills := Extract("We need React, Node.js and SQL experience.")

	assert.Equal(t, []string{"React", "Node.js"}, skills.Web)
	assert.Equal(t, []string{"SQL"}, skills.Data)
	assert.Empty(t, skills.CoreCS)
	assert.Empty(t, skills.Languages)
	assert.Empty(t, skills.Other)
}

func TestExtract_TableOrderNotTextOrder(t *testing.T) {
	skills := Extract("Vue first, then Angular, then React")
	assert.Equal(t, []string{"React", "Angular", "Vue"}, skills.Web)
}

func TestExtract_CaseInsensitive(t *testing.T) {
	skills := Extract("KUBERNETES and docker on aws")
	assert.Equal(t, []string{"AWS", "Docker", "Kubernetes"}, skills.Cloud)
}

func TestExtract_WholeWordOnly(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		category types.SkillCategory
		want     []string
	}{
		{
			name:     "JavaScript does not imply Java",
			text:     "JavaScript engineer",
			category: types.CategoryLanguages,
			want:     []string{"JavaScript"},
		},
		{
			name:     "NoSQL does not imply SQL",
			text:     "NoSQL stores",
			category: types.CategoryData,
			want:     []string{"NoSQL"},
		},
		{
			name:     "multi-word keyword",
			text:     "Unit testing with Jest",
			category: types.CategoryTesting,
			want:     []string{"Jest", "Unit Testing"},
		},
		{
			name:     "keyword with slash",
			text:     "own the ci/cd pipeline",
			category: types.CategoryCloudDevOps,
			want:     []string{"CI/CD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := Extract(tt.text)
			assert.Equal(t, tt.want, skills.Get(tt.category))
		})
	}
}

func TestExtract_SpecialCharactersAreLiteral(t *testing.T) {
	// "." in Next.js must not act as a wildcard
	skills := Extract("nextxjs is not a framework")
	assert.NotContains(t, skills.Web, "Next.js")

	skills = Extract("Built with Next.js")
	assert.Equal(t, []string{"Next.js"}, skills.Web)
}

func TestExtract_EmptyInputUsesFallback(t *testing.T) {
	for _, text := range []string{"", "Looking for a motivated team player"} {
		skills := Extract(text)
		assert.Equal(t, types.FallbackSkills, skills.Other, "text %q", text)
		assert.Empty(t, skills.CoreCS)
		assert.Empty(t, skills.Web)
	}
}

func TestExtract_EveryCategoryKeyPresent(t *testing.T) {
	skills := Extract("Python")
	for _, c := range types.Categories {
		assert.NotNil(t, skills.Get(c), "category %s", c)
	}
	assert.Equal(t, []string{"Python"}, skills.Languages)
}

func TestExtract_Deterministic(t *testing.T) {
	text := "DSA, OOP, Java, Python, React, SQL, AWS, Docker, Selenium"
	first := Extract(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Extract(text))
	}
}

func TestExtract_NeverAllEmpty(t *testing.T) {
	inputs := []string{"", " ", "\n", "?!", "OS", "random words here", "C"}
	for _, in := range inputs {
		skills := Extract(in)
		require.NotEmpty(t, skills.Present(), "input %q", in)
	}
}

func TestKeywords_ReturnsCopy(t *testing.T) {
	kws := keywordsFor(types.CategoryData)
	require.NotEmpty(t, kws)
	kws[0] = "changed"
	assert.Equal(t, "SQL", keywordsFor(types.CategoryData)[0])
	assert.Nil(t, keywordsFor(types.CategoryOther))
}
