// Package shared provides common utility functions used across multiple
// packages in the pinfile codebase.
package shared

import (
	"fmt"
	"strings"
)

// NormalizeProjectName lowercases a Python project name and collapses
// runs of underscores, dots, and hyphens into single hyphens, following
// PEP 503 normalization.
func NormalizeProjectName(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	var builder strings.Builder
	separator := false
	for _, r := range lower {
		if r == '-' || r == '_' || r == '.' {
			separator = true
			continue
		}
		if separator && builder.Len() > 0 {
			builder.WriteByte('-')
		}
		separator = false
		builder.WriteRune(r)
	}
	return builder.String()
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}
