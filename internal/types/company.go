// Package types provides type definitions for structured data used throughout the placement readiness system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CompanySize is the heuristic size bucket of a company
type CompanySize string

// Company size buckets
const (
	SizeStartup    CompanySize = "Startup"
	SizeMidSize    CompanySize = "Mid-size"
	SizeEnterprise CompanySize = "Enterprise"
)

// CompanyIntel is the heuristic company profile derived from name and JD text
type CompanyIntel struct {
	Name        string      `json:"name"`
	Industry    string      `json:"industry"`
	Size        CompanySize `json:"size"`
	SizeLabel   string      `json:"sizeLabel"`
	HiringFocus string      `json:"hiringFocus"`
}
