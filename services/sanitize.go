package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Free-text fields (preparation notes, deliberations) come from rich-text
// editors; keep basic formatting and drop anything executable.
var freeTextPolicy = bluemonday.UGCPolicy()

// sanitizeText returns nil for nil input and a sanitized, trimmed copy otherwise
func sanitizeText(value *string) *string {
	if value == nil {
		return nil
	}
	clean := strings.TrimSpace(freeTextPolicy.Sanitize(*value))
	return &clean
}

// trimmedOrNil turns blank optional strings into NULLs
func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
