package jsonschema

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	j "github.com/goccy/go-json"
)

// Walk visits s and every schema nested under it in a deterministic order:
// properties by name, items, oneOf members, then definitions by name. fn
// receives a JSON Pointer to the node relative to s. Returning false skips
// the node's children.
func Walk(s *Schema, fn func(ptr string, node *Schema) bool) {
	walk("", s, fn)
}

func walk(ptr string, s *Schema, fn func(string, *Schema) bool) {
	if s == nil || !fn(ptr, s) {
		return
	}
	for _, k := range sortedKeys(s.Properties) {
		walk(ptr+"/properties/"+escape(k), s.Properties[k], fn)
	}
	if s.Items != nil {
		walk(ptr+"/items", s.Items, fn)
	}
	for i, o := range s.OneOf {
		walk(ptr+"/oneOf/"+itoa(i), o, fn)
	}
	for _, k := range sortedKeys(s.Defs) {
		walk(ptr+"/$defs/"+escape(k), s.Defs[k], fn)
	}
}

// StripKeywords removes the named annotation keywords ("title", "default",
// "description", "$comment") from every node below the root of s. The root
// keeps its own annotations; definitions are stripped at every depth.
func StripKeywords(s *Schema, keys ...string) {
	Walk(s, func(ptr string, node *Schema) bool {
		if ptr == "" {
			return true
		}
		for _, k := range keys {
			switch k {
			case "title":
				node.Title = ""
			case "default":
				node.Default = nil
			case "description":
				node.Description = ""
			case "$comment":
				node.Comment = ""
			}
		}
		return true
	})
}

// SchemaID derives a document identifier from a model name:
// "AssetGlasses" becomes "assetGlasses.schema.json".
func SchemaID(modelName string) string {
	if modelName == "" {
		return ".schema.json"
	}
	r, n := utf8.DecodeRuneInString(modelName)
	return string(unicode.ToLower(r)) + modelName[n:] + ".schema.json"
}

// Equal reports whether a and b marshal to the same document.
func Equal(a, b *Schema) bool {
	ab, err1 := j.Marshal(a)
	bb, err2 := j.Marshal(b)
	return err1 == nil && err2 == nil && string(ab) == string(bb)
}

// Clone returns a deep copy of s.
func Clone(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	c := *s
	if s.Enum != nil {
		c.Enum = append([]any(nil), s.Enum...)
	}
	if s.Required != nil {
		c.Required = append([]string(nil), s.Required...)
	}
	if s.Properties != nil {
		c.Properties = make(map[string]*Schema, len(s.Properties))
		for k, v := range s.Properties {
			c.Properties[k] = Clone(v)
		}
	}
	if ap, ok := s.AdditionalProperties.(*Schema); ok {
		c.AdditionalProperties = Clone(ap)
	}
	c.Items = Clone(s.Items)
	if s.OneOf != nil {
		c.OneOf = make([]*Schema, len(s.OneOf))
		for i, o := range s.OneOf {
			c.OneOf[i] = Clone(o)
		}
	}
	if m, ok := s.ErrorMessage.(map[string]string); ok {
		cm := make(map[string]string, len(m))
		for k, v := range m {
			cm[k] = v
		}
		c.ErrorMessage = cm
	}
	if s.Defs != nil {
		c.Defs = make(map[string]*Schema, len(s.Defs))
		for k, v := range s.Defs {
			c.Defs[k] = Clone(v)
		}
	}
	return &c
}

func sortedKeys(m map[string]*Schema) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func escape(k string) string {
	return strings.ReplaceAll(strings.ReplaceAll(k, "~", "~0"), "/", "~1")
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + string(rune('0'+i%10))
}
