// Package skills classifies job description text into fixed skill categories by keyword matching.
package skills

import (
	"regexp"
	"strings"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
)

// keywordGroup lists the keywords of one category in table order
type keywordGroup struct {
	category types.SkillCategory
	keywords []string
}

// keywordTable is evaluated in order; Other has no keywords and only receives the fallback.
var keywordTable = []keywordGroup{
	{
		category: types.CategoryCoreCS,
		keywords: []string{"DSA", "OOP", "DBMS", "OS", "Networks", "Data Structures", "Algorithms", "Operating System", "Computer Networks"},
	},
	{
		category: types.CategoryLanguages,
		keywords: []string{"Java", "Python", "JavaScript", "TypeScript", "C", "C++", "C#", "Go", "Rust", "Kotlin", "Swift"},
	},
	{
		category: types.CategoryWeb,
		keywords: []string{"React", "Next.js", "Node.js", "Express", "REST", "GraphQL", "Angular", "Vue", "HTML", "CSS"},
	},
	{
		category: types.CategoryData,
		keywords: []string{"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis", "NoSQL", "Elasticsearch"},
	},
	{
		category: types.CategoryCloudDevOps,
		keywords: []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Linux", "Jenkins", "Terraform"},
	},
	{
		category: types.CategoryTesting,
		keywords: []string{"Selenium", "Cypress", "Playwright", "JUnit", "PyTest", "Jest", "Mocha", "Unit Testing"},
	},
}

type keywordMatcher struct {
	label string
	re    *regexp.Regexp
}

// matchers holds one whole-word, case-insensitive pattern per keyword, built once from keywordTable.
var matchers = buildMatchers()

func buildMatchers() map[types.SkillCategory][]keywordMatcher {
	out := make(map[types.SkillCategory][]keywordMatcher, len(keywordTable))
	for _, group := range keywordTable {
		list := make([]keywordMatcher, 0, len(group.keywords))
		for _, kw := range group.keywords {
			list = append(list, keywordMatcher{
				label: kw,
				re:    regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`),
			})
		}
		out[group.category] = list
	}
	return out
}

// keywordsFor returns a copy of the keyword list for a category
func keywordsFor(category types.SkillCategory) []string {
	for _, group := range keywordTable {
		if group.category == category {
			return append([]string(nil), group.keywords...)
		}
	}
	return nil
}

// Extract detects the skills mentioned in a job description.
// Matched labels are listed in keyword table order, not text order.
// When nothing matches, Other is set to types.FallbackSkills.
func Extract(jdText string) types.ExtractedSkills {
	out := types.NewExtractedSkills()

	if jdText != "" {
		text := strings.ToLower(jdText)
		for _, group := range keywordTable {
			found := make([]string, 0)
			for _, m := range matchers[group.category] {
				if m.re.MatchString(text) {
					found = append(found, m.label)
				}
			}
			if len(found) > 0 {
				out.Set(group.category, found)
			}
		}
	}

	out.ApplyFallback()
	return out
}
