// Package tmpl renders {placeholder} message templates.
package tmpl

import (
	"io"
	"sort"

	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{"
	endTag   = "}"
)

// Render substitutes {name} tags from values. Tags without a value are written
// back verbatim, so a template can be rendered in several passes. A template
// with an unterminated tag is returned unchanged.
func Render(template string, values map[string]string) string {
	out, err := fasttemplate.ExecuteFuncStringWithErr(template, startTag, endTag, func(w io.Writer, tag string) (int, error) {
		if v, ok := values[tag]; ok {
			return io.WriteString(w, v)
		}
		return io.WriteString(w, startTag+tag+endTag)
	})
	if err != nil {
		return template
	}
	return out
}

// Tags lists the distinct placeholder names used by template, sorted.
func Tags(template string) []string {
	seen := map[string]struct{}{}
	_, err := fasttemplate.ExecuteFuncStringWithErr(template, startTag, endTag, func(w io.Writer, tag string) (int, error) {
		seen[tag] = struct{}{}
		return 0, nil
	})
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
