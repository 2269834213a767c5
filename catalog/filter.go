package catalog

import (
	"strings"

	"github.com/techconnect/site-backend/models"
)

// Filter returns the visible subset of projects for an active category and a
// free-text search term. CategoryAll disables category filtering; a blank
// term disables text filtering. The text match is a case-insensitive
// substring test against title, description and each technology. Pure
// function: same inputs, same output, every call.
func Filter(projects []models.Project, category, term string) []models.Project {
	results := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if category != CategoryAll && p.Category != category {
			continue
		}
		results = append(results, p)
	}

	if term == "" {
		return results
	}

	lower := strings.ToLower(term)
	matched := results[:0]
	for _, p := range results {
		if matchesTerm(p, lower) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matchesTerm(p models.Project, lowerTerm string) bool {
	if strings.Contains(strings.ToLower(p.Title), lowerTerm) {
		return true
	}
	if p.Description != "" && strings.Contains(strings.ToLower(p.Description), lowerTerm) {
		return true
	}
	for _, tech := range p.Technologies {
		if strings.Contains(strings.ToLower(tech), lowerTerm) {
			return true
		}
	}
	return false
}
