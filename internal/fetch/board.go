package fetch

import (
	"net/url"
	"strings"
)

// Board is a job board or applicant tracking system with a known page layout.
type Board string

// Known boards
const (
	BoardGreenhouse Board = "greenhouse"
	BoardLever      Board = "lever"
	BoardWorkday    Board = "workday"
	BoardNaukri     Board = "naukri"
	BoardGeneric    Board = "generic"
)

// boardHosts maps host suffixes to boards
var boardHosts = []struct {
	suffix string
	board  Board
}{
	{"greenhouse.io", BoardGreenhouse},
	{"lever.co", BoardLever},
	{"myworkdayjobs.com", BoardWorkday},
	{"workday.com", BoardWorkday},
	{"naukri.com", BoardNaukri},
}

// DetectBoard identifies the board from a posting URL.
func DetectBoard(rawURL string) Board {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return BoardGeneric
	}
	host := strings.ToLower(parsed.Hostname())
	for _, h := range boardHosts {
		if host == h.suffix || strings.HasSuffix(host, "."+h.suffix) {
			return h.board
		}
	}
	return BoardGeneric
}

func (b Board) contentSelectors() []string {
	switch b {
	case BoardGreenhouse:
		return []string{".job__description", "#content", ".job-post-container"}
	case BoardLever:
		return []string{".posting-page", ".posting-description", ".content"}
	case BoardWorkday:
		return []string{"[data-automation-id='jobPostingDescription']", "[data-automation-id='jobDescription']"}
	case BoardNaukri:
		return []string{".styles_JDC__dang-inner-html__h0K4t", ".job-desc", "section.job-desc"}
	default:
		return []string{
			".job-description",
			"#job-description",
			".posting-content",
			".job-details",
			"[data-testid='job-description']",
			"main",
			"article",
			"#content",
		}
	}
}

func (b Board) noiseSelectors() []string {
	common := []string{
		"form",
		".application-form",
		".apply-button-container",
		".eeo-statement",
		".social-share",
		".cookie-banner",
	}
	switch b {
	case BoardGreenhouse:
		return append(common, ".application--wrapper", ".voluntary-self-id")
	case BoardLever:
		return append(common, ".posting-apply", ".lever-application-form")
	case BoardWorkday:
		return append(common, "[data-automation-id='applyButton']")
	default:
		return common
	}
}
