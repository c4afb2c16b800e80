// Package rounds predicts the interview round sequence for a company and skill profile.
package rounds

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/company"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
)

// whyItMatters is keyed by round name without the "Round N:" prefix
var whyItMatters = map[string]string{
	"Online Test (DSA + Aptitude)": "Filters candidates on core aptitude and coding basics before face-to-face rounds.",
	"Technical (DSA + Core CS)":    "Assesses depth in algorithms and CS fundamentals. Expect coding and theory.",
	"Tech + Projects":              "Evaluates real-world application and project experience aligned with the role.",
	"HR":                           "Culture fit, behavioral alignment, and communication. Your chance to ask about the team.",
	"Practical coding":             "Quick validation of hands-on coding ability. Often live coding or take-home.",
	"System discussion":            "Assesses architectural thinking, stack depth, and trade-off reasoning.",
	"Culture fit":                  "Startup teams value alignment, ownership, and growth mindset over formal credentials.",
	"Aptitude / Basics":            "Tests quantitative and logical reasoning. Many companies screen here first.",
	"DSA + Core CS":                "Deep dive into data structures and algorithms. Be ready to code and explain.",
	"Projects + Stack":             "Discussion of your projects and how they map to the tech stack.",
}

// rule is one row of the decision table. An empty size matches any size and an
// empty anyOf matches any skill profile.
type rule struct {
	name   string
	size   types.CompanySize
	anyOf  []types.SkillCategory
	rounds []string
}

// decisionTable is evaluated top to bottom; the last row always matches.
var decisionTable = []rule{
	{
		name:  "enterprise-dsa",
		size:  types.SizeEnterprise,
		anyOf: []types.SkillCategory{types.CategoryCoreCS, types.CategoryLanguages},
		rounds: []string{
			"Online Test (DSA + Aptitude)",
			"Technical (DSA + Core CS)",
			"Tech + Projects",
			"HR",
		},
	},
	{
		name:  "startup-web",
		size:  types.SizeStartup,
		anyOf: []types.SkillCategory{types.CategoryWeb},
		rounds: []string{
			"Practical coding",
			"System discussion",
			"Culture fit",
		},
	},
	{
		name: "enterprise-generic",
		size: types.SizeEnterprise,
		rounds: []string{
			"Aptitude / Basics",
			"Technical (DSA + Core CS)",
			"Tech + Projects",
			"HR",
		},
	},
	{
		name: "default",
		rounds: []string{
			"Practical coding",
			"Projects + Stack",
			"Culture fit",
		},
	},
}

func (r rule) matches(size types.CompanySize, extracted *types.ExtractedSkills) bool {
	if r.size != "" && r.size != size {
		return false
	}
	if len(r.anyOf) == 0 {
		return true
	}
	for _, c := range r.anyOf {
		if extracted.Has(c) {
			return true
		}
	}
	return false
}

// Map returns the expected rounds for the company and detected skills.
func Map(companyName string, extracted types.ExtractedSkills, jdText string) []types.RoundMappingItem {
	size := company.SizeOf(company.Resolve(companyName, jdText))
	return build(selectRule(size, &extracted))
}

// flow returns the name of the decision table row chosen for the inputs
func flow(companyName string, extracted types.ExtractedSkills, jdText string) string {
	size := company.SizeOf(company.Resolve(companyName, jdText))
	return selectRule(size, &extracted).name
}

func selectRule(size types.CompanySize, extracted *types.ExtractedSkills) rule {
	for _, r := range decisionTable {
		if r.matches(size, extracted) {
			return r
		}
	}
	return decisionTable[len(decisionTable)-1]
}

func build(r rule) []types.RoundMappingItem {
	items := make([]types.RoundMappingItem, 0, len(r.rounds))
	for i, name := range r.rounds {
		title := fmt.Sprintf("Round %d: %s", i+1, name)
		items = append(items, types.RoundMappingItem{
			RoundTitle:   title,
			FocusAreas:   FocusAreas(title),
			WhyItMatters: whyItMatters[name],
		})
	}
	return items
}

var roundPrefixRe = regexp.MustCompile(`^Round \d+:\s*`)

// FocusAreas strips a leading "Round N:" prefix and splits the rest on "+" and ",".
func FocusAreas(title string) []string {
	rest := roundPrefixRe.ReplaceAllString(title, "")
	parts := strings.FieldsFunc(rest, func(r rune) bool { return r == '+' || r == ',' })
	areas := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			areas = append(areas, p)
		}
	}
	return areas
}
