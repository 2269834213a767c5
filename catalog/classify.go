package catalog

import "strings"

// Display categories. CategoryAll is a filter sentinel only; Classify never
// returns it.
const (
	CategoryAll         = "Todos"
	CategoryWeb         = "Web"
	CategoryMobile      = "Mobile"
	CategoryDataScience = "Data Science"
	CategoryAI          = "IA"
	CategoryUXDesign    = "UX Design"
	CategoryOther       = "Outros"
)

// Categories lists every selectable filter value, in display order.
var Categories = []string{
	CategoryAll,
	CategoryWeb,
	CategoryMobile,
	CategoryDataScience,
	CategoryAI,
	CategoryUXDesign,
	CategoryOther,
}

// classification rules, checked in priority order with first match winning.
// Matching is substring-based over lower-cased technology names, so "ai"
// would also hit tokens like "react native" — the priority order is what
// keeps those classified Mobile.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{CategoryMobile, []string{"react native", "mobile", "swift", "kotlin", "unity"}},
	{CategoryDataScience, []string{"python", "data science", "machine learning", "tensorflow"}},
	{CategoryAI, []string{"ai", "inteligência artificial"}},
	{CategoryUXDesign, []string{"ux", "ui", "figma"}},
	{CategoryWeb, []string{"react", "angular", "vue", "node", "web"}},
}

// Classify derives the single display category for a normalized technology
// list. Two identical lists always classify the same; an empty list is
// CategoryOther.
func Classify(technologies []string) string {
	lowered := make([]string, len(technologies))
	for i, tech := range technologies {
		lowered[i] = strings.ToLower(tech)
	}

	for _, rule := range categoryRules {
		for _, tech := range lowered {
			for _, keyword := range rule.keywords {
				if strings.Contains(tech, keyword) {
					return rule.category
				}
			}
		}
	}
	return CategoryOther
}
