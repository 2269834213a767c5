package catalog

import (
	"reflect"
	"testing"
)

func TestNormalizeTechnologies(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []string
	}{
		{
			name:  "comma separated string with uneven spacing",
			input: "React, Node.js , Vue",
			want:  []string{"React", "Node.js", "Vue"},
		},
		{
			name:  "list passes through unchanged",
			input: []string{"React", "Node.js"},
			want:  []string{"React", "Node.js"},
		},
		{
			name:  "list elements are not re-trimmed",
			input: []string{" React "},
			want:  []string{" React "},
		},
		{
			name:  "nil",
			input: nil,
			want:  []string{},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace-only string",
			input: "   ",
			want:  []string{},
		},
		{
			name:  "empty list",
			input: []string{},
			want:  []string{},
		},
		{
			name:  "unexpected type",
			input: 42,
			want:  []string{},
		},
		{
			name:  "single technology",
			input: "Go",
			want:  []string{"Go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTechnologies(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTechnologies(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTechnologiesIdempotent(t *testing.T) {
	inputs := [][]string{
		{"React", "Node.js", "Vue"},
		{},
		{" padded "},
	}
	for _, input := range inputs {
		once := NormalizeTechnologies(input)
		twice := NormalizeTechnologies(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("normalize not idempotent for %v: %v != %v", input, once, twice)
		}
	}
}
