package dsl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CamelAlias converts a snake_case identity to its lowerCamelCase wire name:
// "mime_type" becomes "mimeType" and "texcoord_0" becomes "texcoord0".
// Identities without underscores are returned unchanged.
func CamelAlias(name string) string {
	if !strings.Contains(name, "_") {
		return name
	}
	parts := strings.Split(name, "_")
	var b strings.Builder
	first := true
	for _, p := range parts {
		if p == "" {
			continue
		}
		if first {
			b.WriteString(strings.ToLower(p[:1]) + p[1:])
			first = false
			continue
		}
		r, n := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[n:])
	}
	return b.String()
}

// titleOf derives a human-readable title from a field identity:
// "gpu_size" becomes "Gpu Size".
func titleOf(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '_' })
	for i, p := range parts {
		r, n := utf8.DecodeRuneInString(p)
		parts[i] = string(unicode.ToUpper(r)) + p[n:]
	}
	return strings.Join(parts, " ")
}
