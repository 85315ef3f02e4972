package dsl

import (
	"context"

	assetskema "github.com/reoring/assetskema"
	js "github.com/reoring/assetskema/jsonschema"
)

// FieldSchema is accepted by Object().Field. Every schema constructed by this
// package implements it, built models included.
type FieldSchema interface {
	toAdapter() AnyAdapter
}

// AnyAdapter is the type-erased form of a field schema held by object
// models. It snapshots the schema it was created from, so later changes to a
// builder never reach a model that was already built.
type AnyAdapter struct {
	parse      func(context.Context, any) (any, error)
	jsonSchema func(*js.Definitions) (*js.Schema, error)
	check      func() error
	nullable   bool
}

func (ad AnyAdapter) toAdapter() AnyAdapter { return ad }

// nodeSchema is implemented by schemas that can place nested models into a
// shared definition set instead of inlining them.
type nodeSchema interface {
	nodeIn(defs *js.Definitions) (*js.Schema, error)
}

// adapt wraps a typed schema. check reports declaration problems and may be nil.
func adapt[T any](s assetskema.Schema[T], check func() error) AnyAdapter {
	return AnyAdapter{
		parse: func(ctx context.Context, v any) (any, error) {
			val, err := s.Parse(ctx, v)
			if err != nil {
				return nil, err
			}
			return val, nil
		},
		jsonSchema: func(defs *js.Definitions) (*js.Schema, error) { return nodeOf(s, defs) },
		check:      check,
	}
}

// nodeOf renders s for use inside a larger document.
func nodeOf(s any, defs *js.Definitions) (*js.Schema, error) {
	if n, ok := s.(nodeSchema); ok {
		return n.nodeIn(defs)
	}
	if j, ok := s.(interface{ JSONSchema() (*js.Schema, error) }); ok {
		return j.JSONSchema()
	}
	return &js.Schema{}, nil
}

// checkOf returns the declaration check of s, when it has one.
func checkOf(s any) error {
	if fs, ok := s.(FieldSchema); ok {
		if c := fs.toAdapter().check; c != nil {
			return c()
		}
	}
	return nil
}

// Nullable accepts JSON null in addition to s. A null input parses to nil
// without running s, and the exported node becomes a oneOf of s and null.
func Nullable(s FieldSchema) AnyAdapter {
	ad := s.toAdapter()
	ad.nullable = true
	return ad
}

// Parse runs the wrapped schema on v.
func (ad AnyAdapter) Parse(ctx context.Context, v any) (any, error) {
	if v == nil && ad.nullable {
		return nil, nil
	}
	if ad.parse == nil {
		return v, nil
	}
	return ad.parse(ctx, v)
}

func (ad AnyAdapter) Validate(ctx context.Context, v any) error {
	_, err := ad.Parse(ctx, v)
	return err
}

// JSONSchema renders the wrapped schema as a standalone document: nested
// models are collected under $defs.
func (ad AnyAdapter) JSONSchema() (*js.Schema, error) {
	defs := js.NewDefinitions()
	s, err := ad.nodeIn(defs)
	if err != nil {
		return nil, err
	}
	if s.Ref == "" {
		s.Defs = defs.Map()
		return s, nil
	}
	return &js.Schema{Ref: s.Ref, Description: s.Description, Defs: defs.Map()}, nil
}

func (ad AnyAdapter) nodeIn(defs *js.Definitions) (*js.Schema, error) {
	s := &js.Schema{}
	if ad.jsonSchema != nil {
		ps, err := ad.jsonSchema(defs)
		if err != nil {
			return nil, err
		}
		if ps != nil {
			s = ps
		}
	}
	if ad.nullable {
		s = &js.Schema{Description: s.Description, OneOf: []*js.Schema{withoutDescription(s), {Type: "null"}}}
	}
	return s, nil
}

func withoutDescription(s *js.Schema) *js.Schema {
	c := js.Clone(s)
	c.Description = ""
	return c
}

var _ assetskema.Schema[any] = AnyAdapter{}
