package avatar_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	jschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/avatar"
	"github.com/reoring/assetskema/dsl"
	"github.com/reoring/assetskema/schemagen"
)

func document(t *testing.T, doc any) map[string]any {
	t.Helper()
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func generate(t *testing.T, rs *avatar.RuleSet, name string) map[string]any {
	t.Helper()
	m, err := rs.Model(name)
	require.NoError(t, err)
	doc, err := schemagen.Generate(m)
	require.NoError(t, err)
	return document(t, doc)
}

func property(t *testing.T, doc map[string]any, path ...string) map[string]any {
	t.Helper()
	node := doc
	for _, p := range path {
		next, ok := node[p].(map[string]any)
		require.True(t, ok, "missing %q in %v", p, node)
		node = next
	}
	return node
}

func TestSchema_TriangleCount(t *testing.T) {
	doc := generate(t, ruleSet(t), "meshTriangleCount")
	assert.Equal(t, "meshTriangleCount.schema.json", doc["$id"])
	assert.Equal(t, "Triangle Count", doc["title"])
	assert.Equal(t, false, doc["additionalProperties"])
	assert.Nil(t, doc["required"])

	beard := property(t, doc, "properties", "beard")
	assert.Equal(t, map[string]any{
		"type":             "integer",
		"exclusiveMinimum": float64(0),
		"maximum":          float64(1000),
		"errorMessage": map[string]any{
			"exclusiveMinimum": "Mesh must have at least 1 triangle.",
			"maximum":          "Mesh exceeds triangle count budget. Allowed: 1000. Found: ${0}.",
		},
	}, beard)

	bottom := property(t, doc, "properties", "outfitBottom")
	assert.Equal(t, "Mesh exceeds triangle count budget. Allowed: 6000. Found: ${0}.",
		bottom["errorMessage"].(map[string]any)["maximum"])
}

func TestSchema_MaterialNames(t *testing.T) {
	doc := generate(t, ruleSet(t), "MaterialNames")
	beard := property(t, doc, "properties", "beard")
	assert.Equal(t, "Wolf3D_Beard", beard["const"])
	assert.Equal(t, "Material name should be Wolf3D_Beard. Found ${0} instead.", beard["errorMessage"])

	outfit := property(t, doc, "properties", "outfit")
	assert.Equal(t, "Material name should be one of Wolf3D_Body, Wolf3D_Outfit_Bottom, Wolf3D_Outfit_Footwear, Wolf3D_Outfit_Top. Found ${0} instead.",
		outfit["errorMessage"])
}

func TestSchema_TextureKeywords(t *testing.T) {
	doc := generate(t, ruleSet(t), "texturePropertiesStandard")
	props := property(t, doc, "properties")

	gpu := props["gpuSize"].(map[string]any)
	assert.Equal(t, map[string]any{"maximum": "Texture map exceeds maximum allowed GPU size of 6 MB when fully decompressed."}, gpu["errorMessage"])

	res := props["resolution"].(map[string]any)
	assert.Equal(t, "Image resolution data used for textures. Power of 2 and square.", res["description"])
	assert.Equal(t, "Image resolution must be a power of 2 and square. Maximum 1024x1024. Found ${0} instead.", res["errorMessage"])

	slots := props["slots"].(map[string]any)
	assert.Equal(t, map[string]any{
		"minItems": "Too few material slots (${0/length}) occupied by this texture! It must be used in at least 1 material slots.",
		"maxItems": "Texture map used for too many slots (${0/length}). Allowed: 5.",
	}, slots["errorMessage"])
	items := slots["items"].(map[string]any)
	assert.Equal(t, map[string]any{
		"enum": "This texture can only be used for slots: normalTexture, baseColorTexture, emissiveTexture, metallicRoughnessTexture, occlusionTexture. Found '${0}' instead.",
	}, items["errorMessage"])

	// Keywords without a declared constraint get no message.
	inst := props["instances"].(map[string]any)
	assert.Equal(t, map[string]any{"minimum": "Texture map is unused."}, inst["errorMessage"])
	size := props["size"].(map[string]any)
	assert.Equal(t, map[string]any{"maximum": "Texture map exceeds maximum allowed storage size of 2 MB."}, size["errorMessage"])
}

func TestSchema_PropertiesComment(t *testing.T) {
	rs := ruleSet(t)
	for _, name := range []string{"mesh", "noAnimation", "textureSchemaStandard", "textureSchemaNormalOcclusion"} {
		doc := generate(t, rs, name)
		node := property(t, doc, "properties", "properties")
		assert.Contains(t, node["$comment"], "inspect()", name)
	}
}

func TestSchema_AssetGlassesSharesDefinitions(t *testing.T) {
	doc := generate(t, ruleSet(t), "assetGlasses")
	assert.Equal(t, "Glasses Asset", doc["title"])
	assert.Equal(t, "Validation schema for asset of type Glasses.", doc["description"])
	assert.ElementsMatch(t, []any{"scenes", "meshes", "materials", "textures"}, doc["required"])

	defs := property(t, doc, "$defs")
	for _, name := range []string{"SceneProperties", "Mesh", "CommonMesh", "MaterialNames", "NoAnimation", "TextureSchemaStandard", "TexturePropertiesStandard"} {
		require.Contains(t, defs, name)
		assert.NotContains(t, defs[name], "title", name)
	}
	assert.Len(t, defs, 7)
	assert.Equal(t, "#/$defs/CommonMesh", property(t, defs, "Mesh", "properties", "properties")["$ref"])
}

func TestSchema_CombinedTextures(t *testing.T) {
	rs := ruleSet(t)
	var models []*dsl.ObjectSchema
	for _, name := range []string{"CommonTextureProperties", "TexturePropertiesStandard", "TexturePropertiesNormalOcclusion"} {
		m, err := rs.Model(name)
		require.NoError(t, err)
		models = append(models, m)
	}
	doc, err := schemagen.Combine(models,
		schemagen.WithID("commonTexture.schema.json"),
		schemagen.WithTitle("Common Texture Map Properties"),
		schemagen.WithDescription("Validation schema for common properties of texture maps."))
	require.NoError(t, err)
	got := document(t, doc)
	assert.Equal(t, "commonTexture.schema.json", got["$id"])
	assert.Equal(t, "Common Texture Map Properties", got["title"])
	assert.Len(t, property(t, got, "$defs"), 3)
	assert.NotContains(t, got, "properties")
}

// Lax integer fields accept numeric strings at runtime while the exported
// "type":"integer" rejects them. Front ends receive JSON numbers from the
// asset extractor, so only the server side sees such input.
func TestSchema_LaxNumericStringsAreRuntimeOnly(t *testing.T) {
	rs := ruleSet(t)
	m, err := rs.Model("meshTriangleCount")
	require.NoError(t, err)
	doc, err := schemagen.Generate(m)
	require.NoError(t, err)
	b, err := schemagen.Marshal(doc)
	require.NoError(t, err)
	sch, err := jschema.CompileString("https://assetskema.test/"+doc.ID, string(b))
	require.NoError(t, err)

	in := decode(t, `{"beard":"500"}`)
	res, err := rs.Validate(context.Background(), "meshTriangleCount", in)
	require.NoError(t, err)
	require.True(t, res.OK(), "%v", res.Issues)
	assert.Equal(t, map[string]any{"beard": int64(500)}, res.Value)
	assert.Error(t, sch.Validate(in))

	// Once coerced, the value satisfies both sides.
	assert.NoError(t, sch.Validate(map[string]any{"beard": json.Number("500")}))
}

// Marshal must encode every model compactly and identically on each call.
func TestSchema_MarshalIsStable(t *testing.T) {
	for _, m := range ruleSet(t).Models() {
		doc, err := schemagen.Generate(m)
		require.NoError(t, err, m.Name())
		first, err := schemagen.Marshal(doc)
		require.NoError(t, err, m.Name())
		second, err := schemagen.Marshal(doc)
		require.NoError(t, err, m.Name())
		assert.Equal(t, len(first), len(second), m.Name())
		assert.Equal(t, string(first), string(second), m.Name())

		std, err := json.Marshal(doc)
		require.NoError(t, err, m.Name())
		var compact bytes.Buffer
		require.NoError(t, json.Compact(&compact, first), m.Name())
		assert.JSONEq(t, string(std), compact.String(), m.Name())
		assert.Less(t, len(first), 16*len(std), "%s: %d bytes", m.Name(), len(first))
	}
}

// The generated documents must accept and reject what the runtime models do.
func TestSchema_AgreesWithRuntime(t *testing.T) {
	rs := ruleSet(t)
	noSlots := `{"name":"n","uri":"u","instances":1,"mimeType":"image/png","compression":"c","resolution":"16x16","size":1,"gpuSize":1,"slots":[]}`
	glasses := func(materials, textures string) string {
		return `{"scenes":{"name":"g","rootName":"Armature","bboxMin":[0,0,0],"bboxMax":[1,1,1]},` +
			`"meshes":{"properties":` + validMesh + `},"materials":` + materials + `,"textures":` + textures + `}`
	}
	fixtures := []struct {
		model, name, src string
	}{
		{"assetGlasses", "valid", validGlasses},
		{"assetGlasses", "wrong material", glasses(`{"glasses":"Glasses"}`, `{"properties":[`+validTexture+`]}`)},
		{"assetGlasses", "no textures", glasses(`{}`, `{"properties":[]}`)},
		{"assetGlasses", "slots empty", glasses(`{}`, `{"properties":[`+noSlots+`]}`)},
		{"assetGlasses", "unknown top level key", `{"extra":1}`},
		{"assetGlasses", "null animations", validGlasses[:len(validGlasses)-1] + `,"animations":null}`},
		{"assetGlasses", "null scenes", `{"scenes":null,"meshes":{"properties":` + validMesh + `},"materials":{},"textures":{"properties":[` + validTexture + `]}}`},
		{"commonMesh", "valid", validMesh},
		{"commonMesh", "extra key stripped", validMesh[:len(validMesh)-1] + `,"extraProp":"ok"}`},
		{"commonMesh", "wrong mode", `{"name":"m","mode":["LINES"],"primitives":1,"glPrimitives":1,"vertices":1,"indices":["u16"],"attributes":[],"instances":1,"size":1}`},
		{"commonMesh", "too big", validMesh[:len(validMesh)-len(`2048}`)] + `600000}`},
		{"meshTriangleCount", "valid", `{"beard":10,"outfitTop":6000}`},
		{"meshTriangleCount", "zero", `{"beard":0}`},
		{"meshTriangleCount", "over", `{"teeth":1001}`},
		{"meshTriangleCount", "null", `{"beard":null}`},
		{"materialNames", "null outfit", `{"outfit":null}`},
		{"materialNames", "null part", `{"beard":null}`},
		{"materialNames", "number part", `{"beard":3}`},
		{"noAnimation", "not empty", `{"properties":[1]}`},
		{"textureSchemaNormalOcclusion", "too many", `{"properties":[` + validTexture + `,` + validTexture + `,` + validTexture + `]}`},
		{"meshAttributes", "short skin", `{"unskinned":[],"skinned":["NORMAL:f32"]}`},
		{"jointHierarchy", "valid", `{"root":"Hips","joints":["Hips","Spine"]}`},
	}
	compiled := map[string]*jschema.Schema{}
	for _, f := range fixtures {
		t.Run(f.model+"/"+f.name, func(t *testing.T) {
			m, err := rs.Model(f.model)
			require.NoError(t, err)
			sch, ok := compiled[f.model]
			if !ok {
				doc, err := schemagen.Generate(m)
				require.NoError(t, err)
				b, err := schemagen.Marshal(doc)
				require.NoError(t, err)
				sch, err = jschema.CompileString("https://assetskema.test/"+doc.ID, string(b))
				require.NoError(t, err)
				compiled[f.model] = sch
			}
			in := decode(t, f.src)
			runtimeOK := assetskema.Is[map[string]any](context.Background(), m, in)
			schemaOK := sch.Validate(in) == nil
			assert.Equal(t, runtimeOK, schemaOK, "runtime=%v schema=%v", runtimeOK, schemaOK)
		})
	}
}
