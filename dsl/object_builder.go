package dsl

import (
	"context"
	"fmt"

	assetskema "github.com/reoring/assetskema"
)

// ObjectBuilder declares a model. Obtain one with Object.
type ObjectBuilder struct {
	name     string
	cfg      assetskema.ModelConfig
	desc     string
	comment  string
	fields   []*fieldDecl
	required []string
	wraps    []wrapReg
}

type fieldDecl struct {
	name       string
	ad         AnyAdapter
	required   bool
	desc       string
	comment    string
	hasDefault bool
	def        any
}

// wrapReg is one Wrap or WrapAll registration.
type wrapReg struct {
	field string
	all   bool
	w     Wrapper
}

type fieldStep struct {
	b *ObjectBuilder
	f *fieldDecl
}

// Object creates a new model builder with DefaultModelConfig.
func Object() *ObjectBuilder {
	return &ObjectBuilder{cfg: assetskema.DefaultModelConfig()}
}

// Name sets the model name. Nested models are exported under $defs by name.
func (b *ObjectBuilder) Name(name string) *ObjectBuilder { b.name = name; return b }

// Config replaces the model configuration.
func (b *ObjectBuilder) Config(cfg assetskema.ModelConfig) *ObjectBuilder { b.cfg = cfg; return b }

// Description sets the model description exported to JSON Schema.
func (b *ObjectBuilder) Description(text string) *ObjectBuilder { b.desc = text; return b }

// Comment sets the model $comment.
func (b *ObjectBuilder) Comment(text string) *ObjectBuilder { b.comment = text; return b }

// UnknownStrict rejects unknown keys.
func (b *ObjectBuilder) UnknownStrict() *ObjectBuilder {
	b.cfg.Unknown = assetskema.UnknownStrict
	return b
}

// UnknownStrip drops unknown keys.
func (b *ObjectBuilder) UnknownStrip() *ObjectBuilder {
	b.cfg.Unknown = assetskema.UnknownStrip
	return b
}

// Field declares a field under its identity. Fields are optional until
// marked Required; the wire name follows the model's alias policy.
func (b *ObjectBuilder) Field(name string, s FieldSchema) *fieldStep {
	var ad AnyAdapter
	if s != nil {
		ad = s.toAdapter()
	}
	f := &fieldDecl{name: name, ad: ad}
	b.fields = append(b.fields, f)
	return &fieldStep{b: b, f: f}
}

// Require marks one or more fields as required.
func (b *ObjectBuilder) Require(names ...string) *ObjectBuilder {
	b.required = append(b.required, names...)
	return b
}

// Wrap registers w around the validation of one field. Wrappers run in
// registration order, the first registered outermost.
func (b *ObjectBuilder) Wrap(field string, w Wrapper) *ObjectBuilder {
	b.wraps = append(b.wraps, wrapReg{field: field, w: w})
	return b
}

// WrapAll registers w around every field declared on the model. It
// expands at Build into one registration per field.
func (b *ObjectBuilder) WrapAll(w Wrapper) *ObjectBuilder {
	b.wraps = append(b.wraps, wrapReg{all: true, w: w})
	return b
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *ObjectBuilder {
	f.f.required = true
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *ObjectBuilder {
	f.f.required = false
	return f.b
}

// Describe sets the field description, overriding the schema's own.
func (f *fieldStep) Describe(text string) *fieldStep {
	f.f.desc = text
	return f
}

// Comment sets the $comment of the field's schema node.
func (f *fieldStep) Comment(text string) *fieldStep {
	f.f.comment = text
	return f
}

// Default sets the value used when the field is missing. The default is
// parsed by the field schema at Build and exported to JSON Schema.
func (f *fieldStep) Default(v any) *fieldStep {
	f.f.hasDefault = true
	f.f.def = v
	return f
}

func (f *fieldStep) Field(name string, s FieldSchema) *fieldStep { return f.b.Field(name, s) }
func (f *fieldStep) Require(names ...string) *ObjectBuilder      { return f.b.Require(names...) }
func (f *fieldStep) Wrap(field string, w Wrapper) *ObjectBuilder { return f.b.Wrap(field, w) }
func (f *fieldStep) WrapAll(w Wrapper) *ObjectBuilder            { return f.b.WrapAll(w) }
func (f *fieldStep) UnknownStrict() *ObjectBuilder               { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownStrip() *ObjectBuilder                { return f.b.UnknownStrip() }
func (f *fieldStep) Build() (*ObjectSchema, error)               { return f.b.Build() }
func (f *fieldStep) MustBuild() *ObjectSchema                    { return f.b.MustBuild() }

// Build resolves the declaration and returns an immutable model. Every
// inconsistency is reported as a *assetskema.DeclarationError.
func (b *ObjectBuilder) Build() (*ObjectSchema, error) {
	declErr := func(field, format string, args ...any) error {
		return &assetskema.DeclarationError{Model: b.name, Field: field, Reason: fmt.Sprintf(format, args...)}
	}

	o := &ObjectSchema{
		name:    b.name,
		cfg:     b.cfg,
		desc:    b.desc,
		comment: b.comment,
		byKey:   map[string]int{},
	}
	byName := map[string]*fieldDecl{}
	for _, d := range b.fields {
		if d.name == "" {
			return nil, declErr("", "field with empty name")
		}
		if _, dup := byName[d.name]; dup {
			return nil, declErr(d.name, "field declared twice")
		}
		byName[d.name] = d
		if d.ad.parse == nil {
			return nil, declErr(d.name, "field has no schema")
		}
		if d.ad.check != nil {
			if err := d.ad.check(); err != nil {
				return nil, declErr(d.name, "%v", err)
			}
		}
	}
	for _, n := range b.required {
		d, ok := byName[n]
		if !ok {
			return nil, declErr(n, "required field is not declared")
		}
		d.required = true
	}

	wrappers := map[string][]Wrapper{}
	for _, r := range b.wraps {
		if r.w == nil {
			return nil, declErr(r.field, "nil wrapper")
		}
		if r.all {
			for _, d := range b.fields {
				wrappers[d.name] = append(wrappers[d.name], r.w)
			}
			continue
		}
		if _, ok := byName[r.field]; !ok {
			return nil, declErr(r.field, "wrapper registered for an undeclared field")
		}
		wrappers[r.field] = append(wrappers[r.field], r.w)
	}

	ctx := assetskema.WithConfig(context.Background(), b.cfg)
	for i, d := range b.fields {
		alias := d.name
		if b.cfg.Aliases == assetskema.AliasCamel {
			alias = CamelAlias(d.name)
		}
		keys := []string{alias}
		if b.cfg.PopulateByName && d.name != alias {
			keys = append(keys, d.name)
		}
		for _, k := range keys {
			if j, taken := o.byKey[k]; taken {
				return nil, declErr(d.name, "input key %q collides with field %q", k, o.fields[j].info.Name)
			}
			o.byKey[k] = i
		}

		info := FieldInfo{Name: d.name, Alias: alias, Model: b.name, Required: d.required}
		fs := &field{
			info:     info,
			ad:       d.ad,
			desc:     d.desc,
			comment:  d.comment,
			wrappers: append([]Wrapper(nil), wrappers[d.name]...),
		}
		fs.handler = chain(d.ad.Parse, fs.wrappers, info)
		if d.hasDefault {
			v, err := d.ad.Parse(ctx, d.def)
			if err != nil {
				return nil, declErr(d.name, "default %v is invalid: %v", d.def, err)
			}
			fs.hasDefault, fs.def, fs.rawDefault = true, v, d.def
		}
		o.fields = append(o.fields, fs)
	}
	return o, nil
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder) MustBuild() *ObjectSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
