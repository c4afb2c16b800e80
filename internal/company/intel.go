// Package company derives a heuristic company profile from the company name and JD text.
package company

import (
	"strings"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
)

// enterpriseNames are matched as substrings of the lower-cased company name
var enterpriseNames = []string{
	"amazon", "google", "microsoft", "meta", "apple", "infosys", "tcs", "wipro", "hcl",
	"accenture", "capgemini", "cognizant", "deloitte", "oracle", "sap", "ibm", "salesforce",
	"adobe", "netflix", "uber", "airbnb", "goldman sachs", "morgan stanley", "jpmorgan",
	"flipkart", "paypal", "vmware", "intel", "qualcomm",
}

type industryRule struct {
	keywords []string
	industry string
}

// industryRules are checked in priority order; the first rule with a keyword in the JD wins.
var industryRules = []industryRule{
	{[]string{"finance", "banking", "fintech", "investment"}, "Financial Services"},
	{[]string{"healthcare", "medical", "pharma", "clinical"}, "Healthcare"},
	{[]string{"e-commerce", "ecommerce", "retail", "marketplace"}, "E-commerce"},
	{[]string{"education", "edtech", "learning"}, "EdTech"},
	{[]string{"manufacturing", "automotive", "industrial"}, "Manufacturing"},
}

// DefaultIndustry is used when no industry keyword appears in the JD
const DefaultIndustry = "Technology Services"

var sizeLabels = map[types.CompanySize]string{
	types.SizeStartup:    "Startup (<200)",
	types.SizeMidSize:    "Mid-size (200–2000)",
	types.SizeEnterprise: "Enterprise (2000+)",
}

// Hiring focus narratives
const (
	EnterpriseFocus = "Structured DSA rounds, strong core CS fundamentals, and standardized aptitude screening. Expect multiple technical rounds with algorithm-heavy focus."
	StartupFocus    = "Practical problem-solving, stack depth, and hands-on coding. Startups often value project fit and culture over formal process."
)

// Resolve builds the company profile. It returns nil when the company name is blank.
func Resolve(companyName, jdText string) *types.CompanyIntel {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return nil
	}

	text := strings.ToLower(jdText)
	size := ClassifySize(name, text)

	focus := StartupFocus
	if size == types.SizeEnterprise {
		focus = EnterpriseFocus
	}

	return &types.CompanyIntel{
		Name:        name,
		Industry:    ClassifyIndustry(text),
		Size:        size,
		SizeLabel:   sizeLabels[size],
		HiringFocus: focus,
	}
}

// ClassifySize buckets a company. Known enterprise names win; otherwise a JD that
// mentions "200" together with "2000" or "500" is treated as mid-size.
func ClassifySize(companyName, jdText string) types.CompanySize {
	nameLower := strings.ToLower(companyName)
	for _, c := range enterpriseNames {
		if strings.Contains(nameLower, c) {
			return types.SizeEnterprise
		}
	}

	text := strings.ToLower(jdText)
	if strings.Contains(text, "200") && (strings.Contains(text, "2000") || strings.Contains(text, "500")) {
		return types.SizeMidSize
	}
	return types.SizeStartup
}

// ClassifyIndustry returns the first industry whose keyword appears in the JD
func ClassifyIndustry(jdText string) string {
	text := strings.ToLower(jdText)
	for _, rule := range industryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.industry
			}
		}
	}
	return DefaultIndustry
}

// SizeOf returns the size bucket used for round mapping; a missing profile counts as a startup.
func SizeOf(intel *types.CompanyIntel) types.CompanySize {
	if intel == nil {
		return types.SizeStartup
	}
	return intel.Size
}
