package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// TechnologyList is the canonical materialization of a project's technologies:
// an ordered list of trimmed strings. The column has held more than one shape
// over the site's lifetime (JSON array, bare comma-separated text, null), so
// both the SQL and JSON decoders accept all of them.
type TechnologyList []string

// ParseTechnologies splits a comma-separated string into a TechnologyList,
// trimming each piece. A blank string yields an empty list.
func ParseTechnologies(raw string) TechnologyList {
	if strings.TrimSpace(raw) == "" {
		return TechnologyList{}
	}
	parts := strings.Split(raw, ",")
	list := make(TechnologyList, 0, len(parts))
	for _, part := range parts {
		list = append(list, strings.TrimSpace(part))
	}
	return list
}

// Scan implements sql.Scanner.
func (t *TechnologyList) Scan(value any) error {
	if value == nil {
		*t = TechnologyList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported technologies column type %T", value)
	}

	if len(raw) == 0 {
		*t = TechnologyList{}
		return nil
	}

	if string(raw) == "null" {
		*t = TechnologyList{}
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		*t = list
		return nil
	}

	// Legacy rows stored a plain comma-separated string.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*t = ParseTechnologies(s)
		return nil
	}
	*t = ParseTechnologies(string(raw))
	return nil
}

// Value implements driver.Valuer. The canonical stored shape is a JSON array.
func (t TechnologyList) Value() (driver.Value, error) {
	if t == nil {
		t = TechnologyList{}
	}
	return json.Marshal([]string(t))
}

// UnmarshalJSON accepts either a JSON array of strings or a single
// comma-separated string.
func (t *TechnologyList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = TechnologyList{}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = ParseTechnologies(s)
		return nil
	}

	return fmt.Errorf("technologies must be an array of strings or a comma-separated string")
}
