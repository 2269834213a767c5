package catalog

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		technologies []string
		want         string
	}{
		{
			name:         "web stack",
			technologies: []string{"React", "Node.js"},
			want:         CategoryWeb,
		},
		{
			name:         "react native wins over the ai substring it contains",
			technologies: []string{"React Native", "Firebase"},
			want:         CategoryMobile,
		},
		{
			name:         "empty list",
			technologies: []string{},
			want:         CategoryOther,
		},
		{
			name:         "nil list",
			technologies: nil,
			want:         CategoryOther,
		},
		{
			name:         "data science beats web when both match",
			technologies: []string{"Python", "React"},
			want:         CategoryDataScience,
		},
		{
			name:         "ai keyword",
			technologies: []string{"OpenAI API"},
			want:         CategoryAI,
		},
		{
			name:         "portuguese ai keyword",
			technologies: []string{"Inteligência Artificial"},
			want:         CategoryAI,
		},
		{
			name:         "ux design",
			technologies: []string{"Figma", "Illustrator"},
			want:         CategoryUXDesign,
		},
		{
			name:         "mobile beats data science",
			technologies: []string{"Kotlin", "TensorFlow"},
			want:         CategoryMobile,
		},
		{
			name:         "case insensitive",
			technologies: []string{"REACT"},
			want:         CategoryWeb,
		},
		{
			name:         "unmatched stack",
			technologies: []string{"Rust", "C++"},
			want:         CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.technologies); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.technologies, got, tt.want)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	techs := []string{"React", "Node.js"}
	first := Classify(techs)
	second := Classify(techs)
	if first != second {
		t.Errorf("Classify not deterministic: %q != %q", first, second)
	}
}
