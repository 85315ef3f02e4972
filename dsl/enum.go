package dsl

import (
	"context"
	"fmt"
	"strings"

	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/i18n"
	js "github.com/reoring/assetskema/jsonschema"
)

// EnumSchema accepts one member of a closed set of string values and parses
// to the member's type E. A string outside the set is invalid_enum; any
// other input is invalid_type.
type EnumSchema[E ~string] struct {
	values []E
	desc   string
}

// Enum declares the allowed members in order. The order is kept in JSON
// Schema output and in the expected list of issues.
func Enum[E ~string](values ...E) *EnumSchema[E] {
	return &EnumSchema[E]{values: append([]E(nil), values...)}
}

func (s *EnumSchema[E]) Describe(text string) *EnumSchema[E] { s.desc = text; return s }

// Values returns a copy of the members.
func (s *EnumSchema[E]) Values() []E { return append([]E(nil), s.values...) }

func (s *EnumSchema[E]) Parse(ctx context.Context, v any) (E, error) {
	var zero E
	var str string
	switch t := v.(type) {
	case E:
		str = string(t)
	case string:
		str = t
	default:
		return zero, wrongType(v, "string", s.expected())
	}
	for _, e := range s.values {
		if string(e) == str {
			return e, nil
		}
	}
	return zero, s.mismatch(v)
}

func (s *EnumSchema[E]) expected() []string {
	out := make([]string, len(s.values))
	for i, e := range s.values {
		out[i] = string(e)
	}
	return out
}

func (s *EnumSchema[E]) mismatch(got any) assetskema.Issues {
	expected := s.expected()
	return assetskema.Issues{{
		Path:    "/",
		Code:    assetskema.CodeInvalidEnum,
		Message: i18n.T(assetskema.CodeInvalidEnum, map[string]string{"expected": strings.Join(expected, ", ")}),
		Params:  map[string]any{assetskema.ParamGot: got, assetskema.ParamExpected: expected},
	}}
}

func (s *EnumSchema[E]) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (s *EnumSchema[E]) JSONSchema() (*js.Schema, error) {
	enum := make([]any, len(s.values))
	for i, e := range s.values {
		enum[i] = string(e)
	}
	return &js.Schema{Type: "string", Description: s.desc, Enum: enum}, nil
}

func (s *EnumSchema[E]) check() error {
	if len(s.values) == 0 {
		return fmt.Errorf("enum has no members")
	}
	seen := make(map[E]struct{}, len(s.values))
	for _, e := range s.values {
		if _, dup := seen[e]; dup {
			return fmt.Errorf("enum member %q declared twice", string(e))
		}
		seen[e] = struct{}{}
	}
	return nil
}

func (s *EnumSchema[E]) toAdapter() AnyAdapter {
	c := EnumSchema[E]{values: s.Values(), desc: s.desc}
	return adapt[E](&c, c.check)
}

// LiteralSchema accepts exactly one value: a string, a boolean or a number.
// The input must already have the literal's JSON type, otherwise it is
// invalid_type; numbers compare by value, so 1, 1.0 and json.Number("1")
// all match Literal(1).
type LiteralSchema struct {
	value any
	desc  string
}

var _ assetskema.Schema[any] = (*LiteralSchema)(nil)

// Literal declares the only accepted value. Integer kinds are normalized to
// int64.
func Literal(v any) *LiteralSchema {
	if i, ok := toInt(v, true); ok {
		v = i
	}
	return &LiteralSchema{value: v}
}

func (s *LiteralSchema) Describe(text string) *LiteralSchema { s.desc = text; return s }

func (s *LiteralSchema) Parse(ctx context.Context, v any) (any, error) {
	switch want := s.value.(type) {
	case string:
		got, ok := v.(string)
		if !ok {
			return nil, wrongType(v, "string", want)
		}
		if got == want {
			return want, nil
		}
	case bool:
		got, ok := v.(bool)
		if !ok {
			return nil, wrongType(v, "boolean", want)
		}
		if got == want {
			return want, nil
		}
	case int64:
		got, ok := numericValue(v)
		if !ok {
			return nil, wrongType(v, "integer", want)
		}
		if got == float64(want) {
			return want, nil
		}
	case float64:
		got, ok := numericValue(v)
		if !ok {
			return nil, wrongType(v, "number", want)
		}
		if got == want {
			return want, nil
		}
	}
	return nil, assetskema.Issues{{
		Path:    "/",
		Code:    assetskema.CodeInvalidLiteral,
		Message: i18n.T(assetskema.CodeInvalidLiteral, map[string]string{"expected": fmt.Sprint(s.value)}),
		Params:  map[string]any{assetskema.ParamGot: v, assetskema.ParamExpected: s.value},
	}}
}

func (s *LiteralSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (s *LiteralSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Const: s.value, Description: s.desc}
	switch s.value.(type) {
	case string:
		out.Type = "string"
	case bool:
		out.Type = "boolean"
	case int64:
		out.Type = "integer"
	case float64:
		out.Type = "number"
	}
	return out, nil
}

func (s *LiteralSchema) check() error {
	switch s.value.(type) {
	case string, bool, int64, float64:
		return nil
	}
	return fmt.Errorf("unsupported literal %v (%T)", s.value, s.value)
}

func (s *LiteralSchema) toAdapter() AnyAdapter {
	c := *s
	return adapt[any](&c, c.check)
}

// wrongType is invalid_type for a closed-value schema. The message names the
// JSON type while the expected param keeps the allowed values, so remapped
// messages can still list them.
func wrongType(got any, typ string, allowed any) assetskema.Issues {
	iss := invalidType(got, typ)
	iss[0].Params[assetskema.ParamExpected] = allowed
	return iss
}
