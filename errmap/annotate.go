package errmap

import (
	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/dsl"
	"github.com/reoring/assetskema/internal/tmpl"
	js "github.com/reoring/assetskema/jsonschema"
)

// AnnotateField writes the entries of a field into the errorMessage keyword
// of its schema node. Wildcard categories produce the string form on the
// field node; other categories are attached next to the keyword they
// describe, on the field node or on its items. Categories without such a
// keyword are skipped.
func (t *Table) AnnotateField(info dsl.FieldInfo, node *js.Schema) {
	if node == nil {
		return
	}
	for _, e := range t.entriesFor(info.Name) {
		if e.Category == AnyCategory {
			node.SetErrorMessage("", tmpl.Render(e.Template, staticValues(node, e.Category, t.docs)))
			continue
		}
		target, keyword, ok := keywordOf(node, e.Category)
		if !ok {
			continue
		}
		target.SetErrorMessage(keyword, tmpl.Render(e.Template, staticValues(target, e.Category, t.docs)))
	}
}

// candidates lists node and the subschemas a field keyword may live on.
func candidates(node *js.Schema) []*js.Schema {
	out := []*js.Schema{node}
	if node.Items != nil {
		out = append(out, node.Items)
	}
	for _, s := range node.OneOf {
		if s != nil && s.Type != "null" {
			out = append(out, candidates(s)...)
		}
	}
	return out
}

func keywordOf(node *js.Schema, category string) (*js.Schema, string, bool) {
	for _, n := range candidates(node) {
		if kw, _, ok := keywordOn(n, category); ok {
			return n, kw, true
		}
	}
	return nil, "", false
}

// keywordOn returns the keyword of n checked by category and its bound.
func keywordOn(n *js.Schema, category string) (string, any, bool) {
	switch category {
	case assetskema.CodeTooBig:
		if n.Maximum != nil {
			return "maximum", *n.Maximum, true
		}
		if n.ExclusiveMaximum != nil {
			return "exclusiveMaximum", *n.ExclusiveMaximum, true
		}
	case assetskema.CodeTooSmall:
		if n.Minimum != nil {
			return "minimum", *n.Minimum, true
		}
		if n.ExclusiveMinimum != nil {
			return "exclusiveMinimum", *n.ExclusiveMinimum, true
		}
	case assetskema.CodeTooShort:
		if n.MinItems != nil {
			return "minItems", *n.MinItems, true
		}
		if n.MinLength != nil {
			return "minLength", *n.MinLength, true
		}
	case assetskema.CodeTooLong:
		if n.MaxItems != nil {
			return "maxItems", *n.MaxItems, true
		}
		if n.MaxLength != nil {
			return "maxLength", *n.MaxLength, true
		}
	case assetskema.CodeInvalidEnum:
		if n.Enum != nil {
			return "enum", nil, true
		}
	case assetskema.CodeInvalidLiteral:
		if n.Const != nil {
			return "const", nil, true
		}
	case assetskema.CodeInvalidType:
		if n.Type != "" {
			return "type", nil, true
		}
	}
	return "", nil, false
}

// staticValues fills the placeholders known from the declaration. Runtime
// placeholders become ajv-errors references to the failing instance.
func staticValues(node *js.Schema, category, url string) map[string]string {
	vals := map[string]string{
		"value": "${0}",
		"count": "${0/length}",
		"url":   url,
	}
	for _, n := range candidates(node) {
		if len(n.Enum) > 0 {
			expectedValues(vals, n.Enum)
			break
		}
		if n.Const != nil {
			expectedValues(vals, n.Const)
			break
		}
	}
	for _, n := range candidates(node) {
		if _, lim, ok := keywordOn(n, category); ok && lim != nil {
			limitValues(vals, lim)
			break
		}
	}
	return vals
}
