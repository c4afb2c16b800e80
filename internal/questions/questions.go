// Package questions selects likely interview questions for the detected skill categories.
package questions

import (
	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
)

// pools maps each category to its question pool, in pool order
var pools = map[types.SkillCategory][]string{
	types.CategoryCoreCS: {
		"Explain time complexity of common sorting algorithms.",
		"How would you optimize search in sorted data?",
		"Explain OOP pillars with examples.",
		"Describe process vs thread. When to use which?",
		"Explain database indexing and when it helps.",
		"What is normalization? Explain 3NF.",
		"Explain TCP vs UDP. When is each used?",
		"Describe virtual memory and paging.",
	},
	types.CategoryLanguages: {
		"Explain garbage collection in your primary language.",
		"What is the difference between == and equals()?",
		"Explain concurrency and synchronization.",
		"Describe memory management in C/C++.",
		"What are decorators/generics? Give an example.",
	},
	types.CategoryWeb: {
		"Explain state management options in React.",
		"Describe the React lifecycle and hooks.",
		"REST vs GraphQL. When to use each?",
		"Explain authentication (JWT, sessions).",
		"What is the virtual DOM? How does React use it?",
		"Explain server-side vs client-side rendering.",
	},
	types.CategoryData: {
		"Explain indexing and when it helps.",
		"SQL: How would you optimize a slow query?",
		"NoSQL vs SQL. Trade-offs?",
		"Explain ACID properties.",
		"Describe MongoDB aggregation pipeline.",
	},
	types.CategoryCloudDevOps: {
		"Explain Docker vs virtual machines.",
		"What is Kubernetes? Why use it?",
		"Describe a CI/CD pipeline you've used.",
		"How would you debug a production issue?",
		"Explain infrastructure as code.",
	},
	types.CategoryTesting: {
		"Explain unit vs integration testing.",
		"How do you mock dependencies in tests?",
		"Describe TDD and when to use it.",
		"How would you test an API endpoint?",
	},
	types.CategoryOther: {
		"Tell me about a project you're proud of.",
		"How do you approach a new problem?",
		"Describe a time you learned something difficult.",
		"What interests you about this role?",
		"Where do you see yourself in 5 years?",
	},
}

// poolFor returns a copy of the question pool for a category
func poolFor(category types.SkillCategory) []string {
	return append([]string(nil), pools[category]...)
}

// Generate returns up to types.MaxQuestions unique questions.
// Present categories contribute in canonical order, then the Other pool backfills.
func Generate(extracted types.ExtractedSkills) []string {
	categories := extracted.Present()
	if len(categories) == 0 {
		categories = []types.SkillCategory{types.CategoryOther}
	}

	s := selector{used: make(map[string]struct{}), out: make([]string, 0, types.MaxQuestions)}
	for _, c := range categories {
		s.take(pools[c])
	}
	s.take(pools[types.CategoryOther])
	return s.out
}

type selector struct {
	used map[string]struct{}
	out  []string
}

func (s *selector) take(pool []string) {
	for _, q := range pool {
		if len(s.out) >= types.MaxQuestions {
			return
		}
		if _, ok := s.used[q]; ok {
			continue
		}
		s.used[q] = struct{}{}
		s.out = append(s.out, q)
	}
}
