package avatar

import (
	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/dsl"
	"github.com/reoring/assetskema/errmap"
)

const (
	renderModeTriangles = "TRIANGLES"
	indexTypeU16        = "u16"
)

var meshErrors = errmap.New(CodeMeshSize).
	OnCode("mode", errmap.AnyCategory, CodeRenderMode, "Rendering mode must be "+renderModeTriangles+".").
	OnCode("primitives", errmap.AnyCategory, CodePrimitives, "Number of primitives in the mesh must be 1.").
	OnCode("indices", errmap.AnyCategory, CodeIndices, "Indices must be '"+indexTypeU16+"' single-item array.").
	OnCode("instances", errmap.AnyCategory, CodeInstances, "Only 1 instance per mesh is supported.").
	On("size", assetskema.CodeTooBig, "Maximum allowed mesh size is {limit_kb} kB.").
	On("size", assetskema.CodeTooSmall, "Mesh has 0 bytes, seems to be empty!").
	MustBuild()

var attributeErrors = errmap.New(CodeMeshAttributes).
	On(errmap.AnyCategory, assetskema.CodeInvalidEnum, "Mesh error! Allowed attributes are: {expected}. Found {value}.").
	On("skinned", assetskema.CodeTooShort, "Mesh requires at least 5 vertex attributes: position, normal, 1 UV set, joint influences, and weights. Found {count} attributes: {value}.").
	MustBuild()

// MeshAttribute is a vertex attribute with its component type.
type MeshAttribute string

const (
	AttrJoints    MeshAttribute = "JOINTS_0:u8"
	AttrNormal    MeshAttribute = "NORMAL:f32"
	AttrPosition  MeshAttribute = "POSITION:f32"
	AttrTexcoord0 MeshAttribute = "TEXCOORD_0:f32"
	AttrTangent   MeshAttribute = "TANGENT:f32"
	AttrWeights   MeshAttribute = "WEIGHTS_0:f32"
)

// UnskinnedAttributes are the attributes allowed on a mesh without skin.
var UnskinnedAttributes = []MeshAttribute{AttrNormal, AttrPosition, AttrTexcoord0, AttrTangent}

// SkinnedAttributes are the attributes allowed on a skinned mesh.
var SkinnedAttributes = []MeshAttribute{AttrJoints, AttrNormal, AttrPosition, AttrTexcoord0, AttrTangent, AttrWeights}

// minSkinnedAttributes is position, normal, one UV set, joints and weights.
const minSkinnedAttributes = 5

// CommonMesh declares the properties of a single mesh as reported by the
// asset inspector. Fields the rules do not look at are accepted as they are.
func CommonMesh(l Limits) (*dsl.ObjectSchema, error) {
	return dsl.Object().Name("CommonMesh").
		Config(assetskema.DefaultModelConfig().WithUnknown(assetskema.UnknownStrip)).
		Description("Validation schema for common properties of meshes.").
		Field("name", dsl.Any()).Required().
		Field("mode", dsl.Array[any](dsl.Literal(renderModeTriangles)).Min(1).Max(1)).
		Describe("The rendering mode of the mesh. Only "+renderModeTriangles+" are supported.").Required().
		Field("primitives", dsl.Int().Ge(1).Le(1)).
		Describe("Number of geometry primitives to be rendered with the given material.").Required().
		Field("gl_primitives", dsl.Any()).Required().
		Field("vertices", dsl.Any()).Required().
		Field("indices", dsl.Array[any](dsl.Literal(indexTypeU16)).Min(1).Max(1)).
		Describe("The index of the accessor that contains the vertex indices.").Required().
		Field("attributes", dsl.Any()).Required().
		Field("instances", dsl.Literal(1)).
		Describe("Number of instances to render.").Required().
		Field("size", dsl.Int().Gt(0).Le(l.MeshSizeKB*1024)).
		Describe("Byte size. Buffers stored as GLB binary chunk have an implicit limit of (2^32)-1 bytes.").Required().
		WrapAll(meshErrors).
		Build()
}

// MeshAttributes declares the vertex attribute allow-lists.
func MeshAttributes() (*dsl.ObjectSchema, error) {
	return dsl.Object().Name("MeshAttributes").
		Config(assetskema.DefaultModelConfig().WithTitle("Mesh Attributes")).
		Field("unskinned", dsl.Array[MeshAttribute](dsl.Enum(UnskinnedAttributes...))).Required().
		Field("skinned", dsl.Array[MeshAttribute](dsl.Enum(SkinnedAttributes...)).Min(minSkinnedAttributes)).Required().
		WrapAll(attributeErrors).
		Build()
}

// Mesh wraps the mesh properties reported for an asset.
func Mesh(common *dsl.ObjectSchema) (*dsl.ObjectSchema, error) {
	return dsl.Object().Name("Mesh").
		Config(assetskema.DefaultModelConfig().WithUnknown(assetskema.UnknownStrip)).
		Field("properties", common).Comment(propertiesComment).Required().
		Build()
}
