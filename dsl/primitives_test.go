package dsl_test

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	assetskema "github.com/reoring/assetskema"
	g "github.com/reoring/assetskema/dsl"
)

func firstIssue(t *testing.T, err error) assetskema.Issue {
	t.Helper()
	iss, ok := assetskema.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected issues, got %v", err)
	}
	return iss[0]
}

func TestInt_CoercionModes(t *testing.T) {
	lax := context.Background()
	strict := assetskema.WithConfig(lax, assetskema.DefaultModelConfig().WithCoercion(assetskema.CoerceStrict))

	cases := []struct {
		name    string
		ctx     context.Context
		in      any
		want    int64
		wantErr bool
	}{
		{"int", lax, 7, 7, false},
		{"json number", lax, json.Number("12"), 12, false},
		{"integral float lax", lax, 3.0, 3, false},
		{"numeric string lax", lax, "42", 42, false},
		{"fractional float", lax, 3.5, 0, true},
		{"bool never", lax, true, 0, true},
		{"json number strict", strict, json.Number("12"), 12, false},
		{"float strict", strict, 3.0, 0, true},
		{"string strict", strict, "42", 0, true},
		{"uint overflow", lax, uint64(1 << 63), 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.Int().Parse(tc.ctx, tc.in)
			if tc.wantErr {
				if it := firstIssue(t, err); it.Code != assetskema.CodeInvalidType {
					t.Fatalf("expected invalid_type, got %+v", it)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("got %v err %v, want %v", got, err, tc.want)
			}
		})
	}
}

func TestInt_StrictFieldOverridesLaxModel(t *testing.T) {
	if _, err := g.Int().Strict().Parse(context.Background(), "42"); err == nil {
		t.Fatalf("Strict() field must reject numeric strings")
	}
}

func TestInt_Bounds(t *testing.T) {
	ctx := context.Background()
	s := g.Int().Gt(0).Le(1000)

	it := firstIssue(t, s.Validate(ctx, 0))
	if it.Code != assetskema.CodeTooSmall || it.Params[assetskema.ParamLimit] != int64(0) || it.Params[assetskema.ParamInclusive] != false {
		t.Fatalf("unexpected issue %+v", it)
	}
	if it.Message != "must be greater than 0" {
		t.Fatalf("unexpected message %q", it.Message)
	}

	it = firstIssue(t, s.Validate(ctx, 1500))
	if it.Code != assetskema.CodeTooBig || it.Params[assetskema.ParamGot] != int64(1500) || it.Params[assetskema.ParamLimit] != int64(1000) || it.Params[assetskema.ParamInclusive] != true {
		t.Fatalf("unexpected issue %+v", it)
	}
	if v, err := s.Parse(ctx, 1000); err != nil || v != 1000 {
		t.Fatalf("upper bound is inclusive: %v %v", v, err)
	}
}

func TestNumber_Bounds(t *testing.T) {
	ctx := context.Background()
	s := g.Number().Ge(0).Lt(1)
	if v, err := s.Parse(ctx, json.Number("0.25")); err != nil || v != 0.25 {
		t.Fatalf("got %v %v", v, err)
	}
	if it := firstIssue(t, s.Validate(ctx, 1)); it.Code != assetskema.CodeTooBig || it.Message != "must be less than 1" {
		t.Fatalf("unexpected issue %+v", it)
	}
	if it := firstIssue(t, s.Validate(ctx, "abc")); it.Code != assetskema.CodeInvalidType {
		t.Fatalf("unexpected issue %+v", it)
	}
}

func TestString_Lengths(t *testing.T) {
	ctx := context.Background()
	s := g.String().MinLen(2).MaxLen(3)
	if _, err := s.Parse(ctx, "ab"); err != nil {
		t.Fatalf("err: %v", err)
	}
	it := firstIssue(t, s.Validate(ctx, "a"))
	if it.Code != assetskema.CodeTooShort || it.Params[assetskema.ParamLen] != 1 {
		t.Fatalf("unexpected issue %+v", it)
	}
	if it := firstIssue(t, s.Validate(ctx, "abcd")); it.Code != assetskema.CodeTooLong {
		t.Fatalf("unexpected issue %+v", it)
	}
	if it := firstIssue(t, s.Validate(ctx, 12)); it.Code != assetskema.CodeInvalidType {
		t.Fatalf("strings never coerce: %+v", it)
	}
}

type slot string

func TestEnum(t *testing.T) {
	ctx := context.Background()
	s := g.Enum[slot]("normalTexture", "occlusionTexture")

	v, err := s.Parse(ctx, "normalTexture")
	if err != nil || v != slot("normalTexture") {
		t.Fatalf("got %v %v", v, err)
	}
	if v2, err := s.Parse(ctx, v); err != nil || v2 != v {
		t.Fatalf("typed member must parse to itself: %v %v", v2, err)
	}
	it := firstIssue(t, s.Validate(ctx, "baseColorTexture"))
	if it.Code != assetskema.CodeInvalidEnum || it.Params[assetskema.ParamGot] != "baseColorTexture" {
		t.Fatalf("unexpected issue %+v", it)
	}
	if it.Message != "must be one of normalTexture, occlusionTexture" {
		t.Fatalf("unexpected message %q", it.Message)
	}
	it = firstIssue(t, s.Validate(ctx, 3))
	if it.Code != assetskema.CodeInvalidType || it.Message != "expected string" {
		t.Fatalf("non-strings are type mismatches: %+v", it)
	}
	if !reflect.DeepEqual(it.Params[assetskema.ParamExpected], []string{"normalTexture", "occlusionTexture"}) {
		t.Fatalf("expected param keeps the members: %+v", it.Params)
	}
}

func TestLiteral(t *testing.T) {
	ctx := context.Background()
	one := g.Literal(1)
	for _, in := range []any{1, int64(1), 1.0, json.Number("1")} {
		if v, err := one.Parse(ctx, in); err != nil || v != int64(1) {
			t.Fatalf("Literal(1).Parse(%#v) = %v, %v", in, v, err)
		}
	}
	for _, in := range []any{2, 1.5, json.Number("2")} {
		if it := firstIssue(t, one.Validate(ctx, in)); it.Code != assetskema.CodeInvalidLiteral {
			t.Fatalf("Literal(1).Parse(%#v): unexpected issue %+v", in, it)
		}
	}
	for _, in := range []any{"1", true, nil} {
		if it := firstIssue(t, one.Validate(ctx, in)); it.Code != assetskema.CodeInvalidType || it.Params[assetskema.ParamExpected] != int64(1) {
			t.Fatalf("Literal(1).Parse(%#v): unexpected issue %+v", in, it)
		}
	}
	tri := g.Literal("TRIANGLES")
	if it := firstIssue(t, tri.Validate(ctx, "LINES")); it.Params[assetskema.ParamExpected] != "TRIANGLES" || it.Message != "must be TRIANGLES" {
		t.Fatalf("unexpected issue %+v", it)
	}
	if it := firstIssue(t, tri.Validate(ctx, 7)); it.Code != assetskema.CodeInvalidType || it.Message != "expected string" {
		t.Fatalf("unexpected issue %+v", it)
	}
}

func TestAny_PassesThrough(t *testing.T) {
	in := map[string]any{"x": []any{1}}
	v, err := g.Any().Parse(context.Background(), in)
	if err != nil || v.(map[string]any)["x"] == nil {
		t.Fatalf("got %v %v", v, err)
	}
}

func TestCamelAlias(t *testing.T) {
	cases := map[string]string{
		"mime_type":               "mimeType",
		"non_customizable_avatar": "nonCustomizableAvatar",
		"texcoord_0":              "texcoord0",
		"glPrimitives":            "glPrimitives",
		"beard":                   "beard",
	}
	for in, want := range cases {
		if got := g.CamelAlias(in); got != want {
			t.Fatalf("CamelAlias(%q)=%q want %q", in, got, want)
		}
	}
}
