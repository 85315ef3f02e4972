package errmap_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	assetskema "github.com/reoring/assetskema"
	g "github.com/reoring/assetskema/dsl"
	"github.com/reoring/assetskema/errmap"
)

const docs = "https://docs.example.com/triangles"

func triangleTable() *errmap.Table {
	return errmap.New("TRIANGLE_COUNT").Docs(docs).
		On(errmap.AnyCategory, assetskema.CodeTooSmall, "Mesh must have at least 1 triangle.").
		On(errmap.AnyCategory, assetskema.CodeTooBig, "Mesh exceeds triangle count budget. Allowed: {limit}. Found: {value}.").
		MustBuild()
}

func triangleModel(t *testing.T) *g.ObjectSchema {
	t.Helper()
	return g.Object().Name("MeshTriangleCount").
		Field("beard", g.Int().Gt(0).Le(1000)).Optional().
		Field("outfit_top", g.Int().Gt(0).Le(6000)).Optional().
		WrapAll(triangleTable()).
		MustBuild()
}

func issuesOf(t *testing.T, err error) assetskema.Issues {
	t.Helper()
	iss, ok := assetskema.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	return iss
}

func TestWrapField_MapsBounds(t *testing.T) {
	m := triangleModel(t)
	_, err := m.Parse(context.Background(), map[string]any{"beard": 1500, "outfitTop": 0})
	iss := issuesOf(t, err)
	if len(iss) != 2 {
		t.Fatalf("want 2 issues, got %v", iss)
	}
	want := []assetskema.Issue{
		{Path: "/beard", Code: "TRIANGLE_COUNT", Message: "Mesh exceeds triangle count budget. Allowed: 1000. Found: 1500.\n    For further information visit " + docs + "."},
		{Path: "/outfitTop", Code: "TRIANGLE_COUNT", Message: "Mesh must have at least 1 triangle.\n    For further information visit " + docs + "."},
	}
	for i, w := range want {
		if iss[i].Path != w.Path || iss[i].Code != w.Code || iss[i].Message != w.Message {
			t.Fatalf("issue %d: got %+v want %+v", i, iss[i], w)
		}
		if iss[i].Rule != "TRIANGLE_COUNT" {
			t.Fatalf("rule not recorded: %+v", iss[i])
		}
	}
	if iss[0].Params[assetskema.ParamLimit] != int64(1000) {
		t.Fatalf("params not preserved: %v", iss[0].Params)
	}
	cause, ok := assetskema.AsIssues(iss[0].Cause)
	if !ok || cause[0].Code != assetskema.CodeTooBig {
		t.Fatalf("cause should hold the structural issue, got %v", iss[0].Cause)
	}
}

func TestWrapField_MissPassesThrough(t *testing.T) {
	m := triangleModel(t)
	_, err := m.Parse(context.Background(), map[string]any{"beard": "many"})
	iss := issuesOf(t, err)
	if len(iss) != 1 || iss[0].Code != assetskema.CodeInvalidType || iss[0].Rule != "" {
		t.Fatalf("unmapped issue must stay structural: %v", iss)
	}
}

func TestWrapField_SuccessUntouched(t *testing.T) {
	m := triangleModel(t)
	out, err := m.Parse(context.Background(), map[string]any{"beard": 1000})
	if err != nil || out["beard"] != int64(1000) {
		t.Fatalf("got %v %v", out, err)
	}
}

func TestWrapField_NonIssuesErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	tbl := triangleTable()
	_, err := tbl.WrapField(context.Background(), 1, func(context.Context, any) (any, error) { return nil, boom }, g.FieldInfo{Name: "beard"})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}

func TestWrapField_EachIssueIndependently(t *testing.T) {
	tbl := errmap.New("MESH_ATTRIBUTES").
		On("attributes", assetskema.CodeInvalidEnum, "Invalid attribute {value}. Allowed: {expected}.").
		MustBuild()
	m := g.Object().
		Field("attributes", g.Array[string](g.Enum("NORMAL:f32", "POSITION:f32")).Max(2)).Required().
		Wrap("attributes", tbl).
		MustBuild()
	_, err := m.Parse(context.Background(), map[string]any{"attributes": []any{"NORMAL:f32", "COLOR_0:u8", "TANGENT:f32"}})
	iss := issuesOf(t, err)
	if got := iss.Codes(); !reflect.DeepEqual(got, []string{"MESH_ATTRIBUTES", "MESH_ATTRIBUTES", assetskema.CodeTooLong}) {
		t.Fatalf("codes: %v", got)
	}
	if iss[0].Path != "/attributes/1" || iss[0].Message != "Invalid attribute COLOR_0:u8. Allowed: NORMAL:f32, POSITION:f32." {
		t.Fatalf("unexpected first issue %+v", iss[0])
	}
	if iss[1].Path != "/attributes/2" {
		t.Fatalf("unexpected second issue %+v", iss[1])
	}
}

func TestRuntimePlaceholders(t *testing.T) {
	type tc struct {
		name     string
		schema   g.FieldSchema
		category string
		template string
		input    any
		want     string
	}
	mesh := g.Int().Gt(0).Le(512 * 1024)
	cases := []tc{
		{"limit_kb", mesh, assetskema.CodeTooBig, "Maximum allowed mesh size is {limit_kb} kB.", 600000, "Maximum allowed mesh size is 512 kB."},
		{"limit_mb", g.Int().Le(2 * 1024 * 1024), assetskema.CodeTooBig, "exceeds {limit_mb} MB", 3097152, "exceeds 2 MB"},
		{"expected_max", g.Enum("1x1", "2x2", "1024x1024"), assetskema.CodeInvalidEnum, "Maximum {expected_max}. Found {value} instead.", "2048x1024", "Maximum 1024x1024. Found 2048x1024 instead."},
		{"count of value", g.Array[string](g.String()).Max(1), assetskema.CodeTooLong, "Found {count}: {value}.", []any{"a", "b"}, `Found 2: ["a","b"].`},
		{"literal", g.Literal("TRIANGLES"), assetskema.CodeInvalidLiteral, "Expected {expected}, found {value}.", "LINES", "Expected TRIANGLES, found LINES."},
		{"count unknown", g.Int().Le(1), assetskema.CodeTooBig, "{count} items", 5, "unknown items"},
		{"float value", g.Number().Le(1), assetskema.CodeTooBig, "found {value}", 1500000.5, "found 1500000.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tbl := errmap.New("X").On("f", c.category, c.template).MustBuild()
			m := g.Object().Field("f", c.schema).Required().Wrap("f", tbl).MustBuild()
			_, err := m.Parse(context.Background(), map[string]any{"f": c.input})
			iss := issuesOf(t, err)
			if iss[0].Code != "X" || iss[0].Message != c.want {
				t.Fatalf("got %+v want message %q", iss[0], c.want)
			}
		})
	}
}

func TestRuntimePlaceholders_CountUsesLenHint(t *testing.T) {
	tbl := errmap.New("X").On("f", assetskema.CodeTooShort, "Found {count} items, need {limit}.").MustBuild()
	short := g.WrapperFunc(func(context.Context, any, g.Handler, g.FieldInfo) (any, error) {
		return nil, assetskema.Issues{{
			Path:   "/",
			Code:   assetskema.CodeTooShort,
			Params: map[string]any{assetskema.ParamLen: 7, assetskema.ParamLimit: 10},
		}}
	})
	m := g.Object().Field("f", g.Any()).Required().Wrap("f", tbl).Wrap("f", short).MustBuild()

	_, err := m.Parse(context.Background(), map[string]any{"f": 42})
	iss := issuesOf(t, err)
	if len(iss) != 1 || iss[0].Code != "X" || iss[0].Message != "Found 7 items, need 10." {
		t.Fatalf("got %+v", iss)
	}
}

func TestWrapField_LeavesNestedModelIssues(t *testing.T) {
	inner := g.Object().Name("Inner").
		Field("n", g.Int().Le(1)).Required().
		Field("m", g.String()).Required().
		Wrap("n", errmap.New("INNER").On("n", errmap.AnyCategory, "inner failed").MustBuild()).
		MustBuild()
	outer := g.Object().Name("Outer").
		Field("inner", inner).Required().
		Field("list", g.Array[map[string]any](inner)).Required().
		WrapAll(errmap.New("OUTER").On(errmap.AnyCategory, errmap.AnyCategory, "outer failed").MustBuild()).
		MustBuild()

	_, err := outer.Parse(context.Background(), map[string]any{
		"inner": map[string]any{"n": 2},
		"list":  []any{"x"},
	})
	iss := issuesOf(t, err)
	want := []struct{ path, code string }{
		{"/inner/n", "INNER"},
		{"/inner/m", assetskema.CodeRequired},
		{"/list/0", "OUTER"},
	}
	if len(iss) != len(want) {
		t.Fatalf("got %v", iss)
	}
	for i, w := range want {
		if iss[i].Path != w.path || iss[i].Code != w.code {
			t.Fatalf("issue %d: got %s %s want %s %s", i, iss[i].Path, iss[i].Code, w.path, w.code)
		}
	}

	_, err = outer.Parse(context.Background(), map[string]any{"inner": "x", "list": []any{}})
	iss = issuesOf(t, err)
	if len(iss) != 1 || iss[0].Code != "OUTER" || iss[0].Path != "/inner" {
		t.Fatalf("got %v", iss)
	}
}

func TestLookup_Precedence(t *testing.T) {
	tbl := errmap.New("C").
		On(errmap.AnyCategory, errmap.AnyCategory, "any").
		On("a", errmap.AnyCategory, "a any").
		On("a", assetskema.CodeTooBig, "a big").
		On(errmap.AnyCategory, assetskema.CodeTooBig, "any big").
		MustBuild()
	for _, c := range []struct{ field, cat, want string }{
		{"a", assetskema.CodeTooBig, "a big"},
		{"a", assetskema.CodeTooSmall, "a any"},
		{"b", assetskema.CodeTooBig, "any big"},
		{"b", assetskema.CodeRequired, "any"},
	} {
		e, ok := tbl.Lookup(c.field, c.cat)
		if !ok || e.Template != c.want {
			t.Fatalf("%s/%s: got %+v", c.field, c.cat, e)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	cases := map[string]*errmap.Builder{
		"placeholder": errmap.New("C").On("a", assetskema.CodeTooBig, "bad {nope}"),
		"category":    errmap.New("C").On("a", "greater_than", "x"),
		"duplicate":   errmap.New("C").On("a", assetskema.CodeTooBig, "x").On("a", assetskema.CodeTooBig, "y"),
		"code":        errmap.New(""),
		"field":       errmap.New("C").On("", assetskema.CodeTooBig, "x"),
	}
	cases["code"].On("a", assetskema.CodeTooBig, "x")
	for name, b := range cases {
		if _, err := b.Build(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func schemaOf(t *testing.T, m *g.ObjectSchema) map[string]any {
	t.Helper()
	s, err := m.JSONSchema()
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestAnnotateField_Keywords(t *testing.T) {
	m := triangleModel(t)
	props := schemaOf(t, m)["properties"].(map[string]any)
	got := props["beard"].(map[string]any)["errorMessage"]
	want := map[string]any{
		"exclusiveMinimum": "Mesh must have at least 1 triangle.",
		"maximum":          "Mesh exceeds triangle count budget. Allowed: 1000. Found: ${0}.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}
	for _, v := range got.(map[string]any) {
		if strings.Contains(v.(string), "For further information") {
			t.Fatalf("docs suffix must not reach the schema: %q", v)
		}
	}
}

func TestAnnotateField_StringFormAndItems(t *testing.T) {
	tbl := errmap.New("TextureError").
		On("resolution", errmap.AnyCategory, "Maximum {expected_max}. Found {value} instead.").
		On("slots", assetskema.CodeInvalidEnum, "Slot must be one of {expected}. Found {value}.").
		On("slots", assetskema.CodeTooLong, "At most {limit} slots. Found {count}.").
		MustBuild()
	m := g.Object().
		Field("resolution", g.Enum("1x1", "1024x1024")).Required().
		Field("slots", g.Array[string](g.Enum("baseColorTexture", "normalTexture")).Max(2)).Required().
		WrapAll(tbl).
		MustBuild()
	props := schemaOf(t, m)["properties"].(map[string]any)
	if got := props["resolution"].(map[string]any)["errorMessage"]; got != "Maximum 1024x1024. Found ${0} instead." {
		t.Fatalf("resolution: %v", got)
	}
	slots := props["slots"].(map[string]any)
	if got := slots["errorMessage"]; !reflect.DeepEqual(got, map[string]any{"maxItems": "At most 2 slots. Found ${0/length}."}) {
		t.Fatalf("slots: %v", got)
	}
	items := slots["items"].(map[string]any)
	if got := items["errorMessage"]; !reflect.DeepEqual(got, map[string]any{"enum": "Slot must be one of baseColorTexture, normalTexture. Found ${0}."}) {
		t.Fatalf("items: %v", got)
	}
}

func TestAnnotateField_SkipsMissingKeyword(t *testing.T) {
	tbl := errmap.New("C").On("n", assetskema.CodeTooSmall, "small").MustBuild()
	m := g.Object().Field("n", g.Int().Le(3)).Required().Wrap("n", tbl).MustBuild()
	props := schemaOf(t, m)["properties"].(map[string]any)
	if _, ok := props["n"].(map[string]any)["errorMessage"]; ok {
		t.Fatalf("no minimum keyword, so no message expected")
	}
}
