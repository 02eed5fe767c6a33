package llm

import (
	"encoding/json"
	"strings"
)

// DecodeJSON unmarshals a model reply into v on a best-effort basis.
// Markdown code fences are stripped first; when the reply still does not
// decode, the outermost [...] or {...} span is tried. It reports whether
// decoding succeeded and never panics on malformed input.
func DecodeJSON(raw string, v any) bool {
	s := stripFences(strings.TrimSpace(raw))
	if s == "" {
		return false
	}
	if json.Unmarshal([]byte(s), v) == nil {
		return true
	}
	for _, pair := range [][2]byte{{'[', ']'}, {'{', '}'}} {
		start := strings.IndexByte(s, pair[0])
		end := strings.LastIndexByte(s, pair[1])
		if start < 0 || end <= start {
			continue
		}
		if json.Unmarshal([]byte(s[start:end+1]), v) == nil {
			return true
		}
	}
	return false
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop the language tag line, e.g. "json"
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		if tag := strings.TrimSpace(s[:i]); !strings.ContainsAny(tag, "[{") {
			s = s[i+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Snippet shortens raw to at most n runes for log lines.
func Snippet(raw string, n int) string {
	r := []rune(raw)
	if len(r) <= n {
		return raw
	}
	return string(r[:n]) + "..."
}
