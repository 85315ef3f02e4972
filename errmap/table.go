package errmap

import (
	"fmt"

	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/internal/tmpl"
)

// AnyCategory matches every structural category, or every field when used as
// the field identity of an entry.
const AnyCategory = "*"

// Placeholders understood by message templates.
var placeholders = map[string]struct{}{
	"value":        {},
	"limit":        {},
	"limit_kb":     {},
	"limit_mb":     {},
	"expected":     {},
	"expected_max": {},
	"count":        {},
	"url":          {},
}

var structural = map[string]struct{}{
	assetskema.CodeInvalidType:    {},
	assetskema.CodeRequired:       {},
	assetskema.CodeTooSmall:       {},
	assetskema.CodeTooBig:         {},
	assetskema.CodeTooShort:       {},
	assetskema.CodeTooLong:        {},
	assetskema.CodeInvalidEnum:    {},
	assetskema.CodeInvalidLiteral: {},
}

// Entry is one row of a mapping table.
type Entry struct {
	Field    string // declared identity or AnyCategory
	Category string // structural code or AnyCategory
	Code     string // domain code of the mapped issue
	Template string
}

type entryKey struct{ field, category string }

// Table maps structural issues of a model's fields to domain issues. A built
// Table is read-only and may be shared by several models.
type Table struct {
	code    string
	docs    string
	entries []Entry
	index   map[entryKey]int
}

// Lookup returns the entry for a field identity and structural category.
// Exact matches win over wildcard categories, which win over wildcard fields.
func (t *Table) Lookup(field, category string) (Entry, bool) {
	for _, k := range []entryKey{
		{field, category},
		{field, AnyCategory},
		{AnyCategory, category},
		{AnyCategory, AnyCategory},
	} {
		if i, ok := t.index[k]; ok {
			return t.entries[i], true
		}
	}
	return Entry{}, false
}

// entriesFor lists the entries that annotate a field, one per category in
// declaration order. An entry of the field wins over a wildcard-field entry.
func (t *Table) entriesFor(field string) []Entry {
	var out []Entry
	seen := map[string]struct{}{}
	for _, e := range t.entries {
		if e.Field != field && e.Field != AnyCategory {
			continue
		}
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		if i, ok := t.index[entryKey{field, e.Category}]; ok {
			e = t.entries[i]
		}
		out = append(out, e)
	}
	return out
}

// Builder declares a Table.
type Builder struct {
	code    string
	docs    string
	entries []Entry
}

// New starts a table whose entries use code unless OnCode says otherwise.
func New(code string) *Builder { return &Builder{code: code} }

// Docs sets the documentation URL.
func (b *Builder) Docs(url string) *Builder { b.docs = url; return b }

// On maps category issues of field to the table code with template.
func (b *Builder) On(field, category, template string) *Builder {
	return b.OnCode(field, category, b.code, template)
}

// OnCode is On with an explicit domain code.
func (b *Builder) OnCode(field, category, code, template string) *Builder {
	b.entries = append(b.entries, Entry{Field: field, Category: category, Code: code, Template: template})
	return b
}

// Build validates the entries and returns the table.
func (b *Builder) Build() (*Table, error) {
	t := &Table{
		code:    b.code,
		docs:    b.docs,
		entries: append([]Entry(nil), b.entries...),
		index:   make(map[entryKey]int, len(b.entries)),
	}
	for i, e := range t.entries {
		switch {
		case e.Field == "":
			return nil, fmt.Errorf("errmap: entry %d: empty field", i)
		case e.Code == "":
			return nil, fmt.Errorf("errmap: %s/%s: empty code", e.Field, e.Category)
		}
		if _, ok := structural[e.Category]; !ok && e.Category != AnyCategory {
			return nil, fmt.Errorf("errmap: %s: unknown category %q", e.Field, e.Category)
		}
		for _, tag := range tmpl.Tags(e.Template) {
			if _, ok := placeholders[tag]; !ok {
				return nil, fmt.Errorf("errmap: %s/%s: unknown placeholder {%s}", e.Field, e.Category, tag)
			}
		}
		k := entryKey{e.Field, e.Category}
		if _, dup := t.index[k]; dup {
			return nil, fmt.Errorf("errmap: duplicate entry %s/%s", e.Field, e.Category)
		}
		t.index[k] = i
	}
	return t, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Table {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
