package dsl

import (
	"context"
	"fmt"
	"unicode/utf8"

	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/i18n"
	js "github.com/reoring/assetskema/jsonschema"
)

func invalidType(got any, expected string) assetskema.Issues {
	return assetskema.Issues{{
		Path:    "/",
		Code:    assetskema.CodeInvalidType,
		Message: i18n.T(assetskema.CodeInvalidType, map[string]string{"expected": expected}),
		Params:  map[string]any{assetskema.ParamGot: got, assetskema.ParamExpected: expected},
	}}
}

func strictNumbers(ctx context.Context, field bool) bool {
	return field || assetskema.ConfigFrom(ctx).Coercion == assetskema.CoerceStrict
}

// ---- Int ----

// IntSchema is an integer field parsed to int64.
type IntSchema struct {
	b      bounds
	strict bool
	desc   string
}

var _ assetskema.Schema[int64] = (*IntSchema)(nil)

// Int returns an integer schema without bounds.
func Int() *IntSchema { return &IntSchema{} }

func (s *IntSchema) Gt(n int64) *IntSchema { s.b.gt = fptr(float64(n)); return s }
func (s *IntSchema) Ge(n int64) *IntSchema { s.b.ge = fptr(float64(n)); return s }
func (s *IntSchema) Lt(n int64) *IntSchema { s.b.lt = fptr(float64(n)); return s }
func (s *IntSchema) Le(n int64) *IntSchema { s.b.le = fptr(float64(n)); return s }

// Strict disables lax coercion for this field regardless of the model
// configuration: floats and numeric strings are rejected.
func (s *IntSchema) Strict() *IntSchema { s.strict = true; return s }

// Describe sets the description exported to JSON Schema.
func (s *IntSchema) Describe(text string) *IntSchema { s.desc = text; return s }

func (s *IntSchema) Parse(ctx context.Context, v any) (int64, error) {
	n, ok := toInt(v, strictNumbers(ctx, s.strict))
	if !ok {
		return 0, invalidType(v, "integer")
	}
	if iss := s.b.apply(float64(n), n, func(f float64) any { return int64(f) }); len(iss) > 0 {
		return 0, iss
	}
	return n, nil
}

func (s *IntSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (s *IntSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "integer", Description: s.desc}
	s.b.project(out)
	return out, nil
}

func (s *IntSchema) toAdapter() AnyAdapter {
	c := *s
	return adapt[int64](&c, func() error { return c.b.check(true) })
}

// ---- Number ----

// NumberSchema is a number field parsed to float64.
type NumberSchema struct {
	b      bounds
	strict bool
	desc   string
}

var _ assetskema.Schema[float64] = (*NumberSchema)(nil)

// Number returns a number schema without bounds.
func Number() *NumberSchema { return &NumberSchema{} }

func (s *NumberSchema) Gt(n float64) *NumberSchema { s.b.gt = fptr(n); return s }
func (s *NumberSchema) Ge(n float64) *NumberSchema { s.b.ge = fptr(n); return s }
func (s *NumberSchema) Lt(n float64) *NumberSchema { s.b.lt = fptr(n); return s }
func (s *NumberSchema) Le(n float64) *NumberSchema { s.b.le = fptr(n); return s }

// Strict rejects numeric strings regardless of the model configuration.
func (s *NumberSchema) Strict() *NumberSchema { s.strict = true; return s }

func (s *NumberSchema) Describe(text string) *NumberSchema { s.desc = text; return s }

func (s *NumberSchema) Parse(ctx context.Context, v any) (float64, error) {
	f, ok := toFloat(v, strictNumbers(ctx, s.strict))
	if !ok {
		return 0, invalidType(v, "number")
	}
	if iss := s.b.apply(f, f, func(b float64) any { return b }); len(iss) > 0 {
		return 0, iss
	}
	return f, nil
}

func (s *NumberSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (s *NumberSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "number", Description: s.desc}
	s.b.project(out)
	return out, nil
}

func (s *NumberSchema) toAdapter() AnyAdapter {
	c := *s
	return adapt[float64](&c, func() error { return c.b.check(false) })
}

// ---- String ----

// StringSchema is a string field. Strings are never coerced from other types.
type StringSchema struct {
	minLen *int
	maxLen *int
	desc   string
}

var _ assetskema.Schema[string] = (*StringSchema)(nil)

// String returns a string schema.
func String() *StringSchema { return &StringSchema{} }

// MinLen sets the minimum length in characters.
func (s *StringSchema) MinLen(n int) *StringSchema { s.minLen = &n; return s }

// MaxLen sets the maximum length in characters.
func (s *StringSchema) MaxLen(n int) *StringSchema { s.maxLen = &n; return s }

func (s *StringSchema) Describe(text string) *StringSchema { s.desc = text; return s }

func (s *StringSchema) Parse(ctx context.Context, v any) (string, error) {
	str, ok := v.(string)
	if !ok {
		return "", invalidType(v, "string")
	}
	n := utf8.RuneCountInString(str)
	if s.minLen != nil && n < *s.minLen {
		return "", lengthIssue(assetskema.CodeTooShort, "too_short_string", str, *s.minLen, n)
	}
	if s.maxLen != nil && n > *s.maxLen {
		return "", lengthIssue(assetskema.CodeTooLong, "too_long_string", str, *s.maxLen, n)
	}
	return str, nil
}

func (s *StringSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (s *StringSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Description: s.desc, MinLength: s.minLen, MaxLength: s.maxLen}, nil
}

func (s *StringSchema) toAdapter() AnyAdapter {
	c := *s
	return adapt[string](&c, func() error { return checkLengths(c.minLen, c.maxLen) })
}

func lengthIssue(code, msgKey string, got any, limit, n int) assetskema.Issues {
	params := map[string]any{assetskema.ParamLimit: limit, assetskema.ParamLen: n}
	if got != nil {
		params[assetskema.ParamGot] = got
	}
	return assetskema.Issues{{
		Path:    "/",
		Code:    code,
		Message: i18n.T(msgKey, map[string]string{"limit": fmt.Sprint(limit)}),
		Params:  params,
	}}
}

func checkLengths(min, max *int) error {
	switch {
	case min != nil && *min < 0:
		return fmt.Errorf("negative minimum length %d", *min)
	case max != nil && *max < 0:
		return fmt.Errorf("negative maximum length %d", *max)
	case min != nil && max != nil && *min > *max:
		return fmt.Errorf("minimum length %d exceeds maximum length %d", *min, *max)
	}
	return nil
}

// ---- Bool ----

// BoolSchema accepts JSON booleans only.
type BoolSchema struct{ desc string }

var _ assetskema.Schema[bool] = (*BoolSchema)(nil)

func Bool() *BoolSchema { return &BoolSchema{} }

func (s *BoolSchema) Describe(text string) *BoolSchema { s.desc = text; return s }

func (s *BoolSchema) Parse(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, invalidType(v, "boolean")
	}
	return b, nil
}

func (s *BoolSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (s *BoolSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "boolean", Description: s.desc}, nil
}

func (s *BoolSchema) toAdapter() AnyAdapter {
	c := *s
	return adapt[bool](&c, nil)
}

// ---- Any ----

// AnySchema accepts every value unchanged. Its JSON Schema is the empty schema.
type AnySchema struct{ desc string }

var _ assetskema.Schema[any] = (*AnySchema)(nil)

func Any() *AnySchema { return &AnySchema{} }

func (s *AnySchema) Describe(text string) *AnySchema { s.desc = text; return s }

func (s *AnySchema) Parse(ctx context.Context, v any) (any, error) { return v, nil }

func (s *AnySchema) Validate(ctx context.Context, v any) error { return nil }

func (s *AnySchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Description: s.desc}, nil
}

func (s *AnySchema) toAdapter() AnyAdapter {
	c := *s
	return adapt[any](&c, nil)
}
