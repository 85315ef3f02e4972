package dsl

import (
	"context"
	"fmt"
	"sort"

	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/i18n"
	js "github.com/reoring/assetskema/jsonschema"
)

// ObjectSchema is a built model. It is immutable and safe for concurrent
// use.
type ObjectSchema struct {
	name    string
	cfg     assetskema.ModelConfig
	desc    string
	comment string
	fields  []*field
	byKey   map[string]int // accepted input key -> index into fields
}

type field struct {
	info       FieldInfo
	ad         AnyAdapter
	desc       string
	comment    string
	wrappers   []Wrapper
	handler    Handler
	hasDefault bool
	def        any // parsed default
	rawDefault any // declared default, exported to JSON Schema
}

var _ assetskema.Schema[map[string]any] = (*ObjectSchema)(nil)

// Name returns the model name.
func (o *ObjectSchema) Name() string { return o.name }

// Config returns the model configuration.
func (o *ObjectSchema) Config() assetskema.ModelConfig { return o.cfg }

// Fields lists the declared fields in declaration order.
func (o *ObjectSchema) Fields() []FieldInfo {
	out := make([]FieldInfo, len(o.fields))
	for i, f := range o.fields {
		out[i] = f.info
	}
	return out
}

// Field looks a field up by identity.
func (o *ObjectSchema) Field(name string) (FieldInfo, bool) {
	for _, f := range o.fields {
		if f.info.Name == name {
			return f.info, true
		}
	}
	return FieldInfo{}, false
}

// Parse validates v and returns a map keyed by wire name holding the coerced
// field values. A present key is always validated, so an explicit null is
// accepted only by Nullable fields. All issues are collected unless the context or the model
// configuration asks for fail-fast. Parsing a previous result again yields
// the same result.
func (o *ObjectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, invalidType(v, "object")
	}
	ctx = assetskema.WithConfig(ctx, o.cfg)
	failFast := assetskema.IsFailFast(ctx)

	out := make(map[string]any, len(o.fields))
	consumed := make(map[string]struct{}, len(src))
	var iss assetskema.Issues
	for _, f := range o.fields {
		key, val, present := o.lookup(src, f)
		if !present {
			switch {
			case f.hasDefault:
				out[f.info.Alias] = f.def
			case f.info.Required:
				iss = assetskema.AppendIssues(iss, assetskema.Issue{
					Path:    assetskema.Root().Field(f.info.Alias).Pointer(),
					Code:    assetskema.CodeRequired,
					Message: i18n.T(assetskema.CodeRequired, nil),
					Params:  map[string]any{assetskema.ParamKey: f.info.Alias},
				})
			}
			if failFast && len(iss) > 0 {
				return nil, iss
			}
			continue
		}
		consumed[key] = struct{}{}
		parsed, err := f.handler(ctx, val)
		if err != nil {
			iss = assetskema.AppendIssues(iss, assetskema.Rebase(assetskema.Root().Field(f.info.Alias), issuesFromErr("/", err))...)
			if failFast {
				return nil, iss
			}
			continue
		}
		out[f.info.Alias] = parsed
	}

	if unknown := o.collectUnknown(src, consumed); len(unknown) > 0 {
		iss = assetskema.AppendIssues(iss, unknown...)
	}
	if len(iss) > 0 {
		if failFast {
			return nil, iss[:1]
		}
		return nil, iss
	}
	return out, nil
}

// lookup finds the input for f: the wire name first, then the declared
// identity when the model populates by name.
func (o *ObjectSchema) lookup(src map[string]any, f *field) (string, any, bool) {
	if v, ok := src[f.info.Alias]; ok {
		return f.info.Alias, v, true
	}
	if o.cfg.PopulateByName && f.info.Name != f.info.Alias {
		if v, ok := src[f.info.Name]; ok {
			return f.info.Name, v, true
		}
	}
	return "", nil, false
}

// collectUnknown reports keys not consumed by any field, in key order.
func (o *ObjectSchema) collectUnknown(src map[string]any, consumed map[string]struct{}) assetskema.Issues {
	if o.cfg.Unknown != assetskema.UnknownStrict {
		return nil
	}
	var uks []string
	for k := range src {
		if _, ok := consumed[k]; !ok {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	var iss assetskema.Issues
	for _, k := range uks {
		iss = assetskema.AppendIssues(iss, assetskema.Issue{
			Path:    assetskema.Root().Field(k).Pointer(),
			Code:    assetskema.CodeUnknownKey,
			Message: i18n.T(assetskema.CodeUnknownKey, map[string]string{"key": k}),
			Params:  map[string]any{assetskema.ParamKey: k, assetskema.ParamGot: src[k]},
		})
	}
	return iss
}

func (o *ObjectSchema) Validate(ctx context.Context, v any) error {
	_, err := o.Parse(ctx, v)
	return err
}

// JSONSchema renders the model as a standalone document body. Nested models
// are collected under $defs; the document keywords ($schema, $id) are added
// by schemagen.
func (o *ObjectSchema) JSONSchema() (*js.Schema, error) {
	defs := js.NewDefinitions()
	s, err := o.Definition(defs)
	if err != nil {
		return nil, err
	}
	s.Defs = defs.Map()
	return s, nil
}

// Definition renders the model body, registering nested models in defs.
func (o *ObjectSchema) Definition(defs *js.Definitions) (*js.Schema, error) {
	s := &js.Schema{
		Title:       o.title(),
		Description: o.desc,
		Comment:     o.comment,
		Type:        "object",
		Properties:  make(map[string]*js.Schema, len(o.fields)),
	}
	for _, f := range o.fields {
		node, err := f.ad.nodeIn(defs)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", o.name, f.info.Name, err)
		}
		if node.Ref == "" {
			node.Title = titleOf(f.info.Name)
		}
		if f.desc != "" {
			node.Description = f.desc
		}
		if f.comment != "" {
			node.Comment = f.comment
		}
		if f.hasDefault {
			node.Default = f.rawDefault
		}
		for _, w := range f.wrappers {
			if a, ok := w.(SchemaAnnotator); ok {
				a.AnnotateField(f.info, node)
			}
		}
		s.Properties[f.info.Alias] = node
		if f.info.Required {
			s.Required = append(s.Required, f.info.Alias)
		}
	}
	switch o.cfg.Unknown {
	case assetskema.UnknownStrict:
		s.AdditionalProperties = false
	case assetskema.UnknownStrip:
		// Runtime accepts then discards unknown keys, so JSON Schema should mark
		// them as accepted (true).
		s.AdditionalProperties = true
	}
	return s, nil
}

// nodeIn places a named model under $defs and returns a reference to it.
// Unnamed models are inlined.
func (o *ObjectSchema) nodeIn(defs *js.Definitions) (*js.Schema, error) {
	if o.name == "" {
		return o.Definition(defs)
	}
	return defs.Add(o.name, o, o.Definition)
}

func (o *ObjectSchema) title() string {
	if o.cfg.Title != "" {
		return o.cfg.Title
	}
	return o.name
}

func (o *ObjectSchema) toAdapter() AnyAdapter {
	return adapt[map[string]any](o, nil)
}
