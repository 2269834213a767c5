package catalog

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/techconnect/site-backend/models"
)

func TestFilter(t *testing.T) {
	foo := models.Project{
		ID:           uuid.New(),
		Title:        "Foo",
		Technologies: models.TechnologyList{"React"},
		Category:     CategoryWeb,
	}
	bar := models.Project{
		ID:           uuid.New(),
		Title:        "Bar",
		Technologies: models.TechnologyList{"Swift"},
		Category:     CategoryMobile,
	}
	portal := models.Project{
		ID:           uuid.New(),
		Title:        "Portal",
		Description:  "Institutional portal",
		Technologies: models.TechnologyList{"React"},
		Category:     CategoryWeb,
	}

	tests := []struct {
		name     string
		projects []models.Project
		category string
		term     string
		want     []string // expected titles, in order
	}{
		{
			name:     "category filter",
			projects: []models.Project{foo, bar},
			category: CategoryWeb,
			term:     "",
			want:     []string{"Foo"},
		},
		{
			name:     "all categories pass through",
			projects: []models.Project{foo, bar},
			category: CategoryAll,
			term:     "",
			want:     []string{"Foo", "Bar"},
		},
		{
			name:     "case-insensitive technology match",
			projects: []models.Project{portal},
			category: CategoryAll,
			term:     "react",
			want:     []string{"Portal"},
		},
		{
			name:     "term matches title",
			projects: []models.Project{foo, bar},
			category: CategoryAll,
			term:     "FOO",
			want:     []string{"Foo"},
		},
		{
			name:     "term matches description",
			projects: []models.Project{foo, portal},
			category: CategoryAll,
			term:     "institutional",
			want:     []string{"Portal"},
		},
		{
			name:     "category and term combine",
			projects: []models.Project{foo, bar, portal},
			category: CategoryWeb,
			term:     "portal",
			want:     []string{"Portal"},
		},
		{
			name:     "no matches",
			projects: []models.Project{foo, bar},
			category: CategoryAll,
			term:     "kubernetes",
			want:     []string{},
		},
		{
			name:     "empty input",
			projects: nil,
			category: CategoryAll,
			term:     "",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.projects, tt.category, tt.term)
			titles := make([]string, 0, len(got))
			for _, p := range got {
				titles = append(titles, p.Title)
			}
			if !reflect.DeepEqual(titles, tt.want) {
				t.Errorf("Filter(%q, %q) = %v, want %v", tt.category, tt.term, titles, tt.want)
			}
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	projects := []models.Project{
		{Title: "Foo", Category: CategoryWeb, Technologies: models.TechnologyList{"React"}},
		{Title: "Bar", Category: CategoryMobile, Technologies: models.TechnologyList{"Swift"}},
	}

	first := Filter(projects, CategoryWeb, "foo")
	second := Filter(projects, CategoryWeb, "foo")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Filter not idempotent: %v != %v", first, second)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	projects := []models.Project{
		{Title: "Foo", Category: CategoryWeb},
		{Title: "Bar", Category: CategoryMobile},
	}

	Filter(projects, CategoryMobile, "")

	if projects[0].Title != "Foo" || projects[1].Title != "Bar" {
		t.Error("Filter mutated its input slice")
	}
}
