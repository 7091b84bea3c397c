package utils

import (
	"strings"
)

// SanitizeJSON cleans raw AI output so the remainder parses as JSON.
// It strips Markdown code blocks (```json ... ```) and, when the model wraps
// the object in prose, keeps only the outermost object.
func SanitizeJSON(input string) string {
	cleaned := strings.TrimSpace(input)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	if strings.HasSuffix(strings.TrimSpace(cleaned), "```") {
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	}
	cleaned = strings.TrimSpace(cleaned)

	if start := strings.Index(cleaned, "{"); start >= 0 {
		if end := strings.LastIndex(cleaned, "}"); end > start {
			cleaned = cleaned[start : end+1]
		}
	}

	return strings.TrimSpace(cleaned)
}
