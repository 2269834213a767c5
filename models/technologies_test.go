package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseTechnologies(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TechnologyList
	}{
		{
			name:  "comma separated with spacing",
			input: "React, Node.js , Vue",
			want:  TechnologyList{"React", "Node.js", "Vue"},
		},
		{
			name:  "blank",
			input: "",
			want:  TechnologyList{},
		},
		{
			name:  "whitespace only",
			input: "  \t ",
			want:  TechnologyList{},
		},
		{
			name:  "single value",
			input: "Go",
			want:  TechnologyList{"Go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTechnologies(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTechnologies(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTechnologyListScan(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  TechnologyList
	}{
		{
			name:  "json array",
			value: []byte(`["React","Node.js"]`),
			want:  TechnologyList{"React", "Node.js"},
		},
		{
			name:  "json string with commas",
			value: []byte(`"React, Node.js"`),
			want:  TechnologyList{"React", "Node.js"},
		},
		{
			name:  "bare legacy string",
			value: "React, Node.js",
			want:  TechnologyList{"React", "Node.js"},
		},
		{
			name:  "null column",
			value: nil,
			want:  TechnologyList{},
		},
		{
			name:  "empty bytes",
			value: []byte{},
			want:  TechnologyList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list TechnologyList
			if err := list.Scan(tt.value); err != nil {
				t.Fatalf("Scan(%v) error = %v", tt.value, err)
			}
			if !reflect.DeepEqual(list, tt.want) {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, list, tt.want)
			}
		})
	}
}

func TestTechnologyListUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want TechnologyList
	}{
		{
			name: "array",
			data: `["React","Vue"]`,
			want: TechnologyList{"React", "Vue"},
		},
		{
			name: "comma string",
			data: `"React, Vue"`,
			want: TechnologyList{"React", "Vue"},
		},
		{
			name: "null",
			data: `null`,
			want: TechnologyList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list TechnologyList
			if err := json.Unmarshal([]byte(tt.data), &list); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.data, err)
			}
			if !reflect.DeepEqual(list, tt.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.data, list, tt.want)
			}
		})
	}
}

func TestTechnologyListValueRoundTrip(t *testing.T) {
	original := TechnologyList{"React", "Node.js"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var scanned TechnologyList
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if !reflect.DeepEqual(scanned, original) {
		t.Errorf("round trip = %v, want %v", scanned, original)
	}
}

func TestTechnologyListNilValue(t *testing.T) {
	var list TechnologyList
	value, err := list.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if string(value.([]byte)) != "[]" {
		t.Errorf("nil list stored as %s, want []", value)
	}
}
