package catalog

import (
	"strings"

	"github.com/techconnect/site-backend/models"
)

// NormalizeTechnologies converts whatever shape a technologies value arrives
// in into an ordered list of trimmed strings. A value that is already a list
// passes through unchanged; a non-blank string is split on commas with each
// piece trimmed; anything else yields an empty list. The function is total:
// no input is an error.
func NormalizeTechnologies(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case models.TechnologyList:
		return []string(v)
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{}
		}
		return []string(models.ParseTechnologies(v))
	default:
		return []string{}
	}
}
