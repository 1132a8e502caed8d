package coach

import "strings"

// ExtractPayload strips incidental wrapping from model output so the
// JSON object inside can be decoded. It handles fenced code blocks
// (```json ... ``` and bare ``` ... ```), leading prose before the
// first brace, and surrounding whitespace. The input is returned
// trimmed when no JSON object can be located, leaving the caller to
// treat it as plain text.
func ExtractPayload(content string) string {
	s := strings.TrimSpace(content)

	// Prefer an explicit ```json fence.
	if idx := strings.Index(s, "```json"); idx >= 0 {
		s = s[idx+len("```json"):]
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
		return strings.TrimSpace(s)
	}

	// A bare fence around the whole payload.
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
		return strings.TrimSpace(s)
	}

	// Prose before the object: cut to the outermost braces.
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return strings.TrimSpace(s[start : end+1])
	}

	return s
}
