package avatar

import "github.com/reoring/assetskema/dsl"

func vec(n int) *dsl.ArraySchema[float64] {
	return dsl.Array[float64](dsl.Number()).Min(n).Max(n)
}

// SceneProperties declares a scene with its bounding box.
func SceneProperties() (*dsl.ObjectSchema, error) {
	return dsl.Object().Name("SceneProperties").
		Description("Validation schema for Scenes.").
		Field("name", dsl.String()).Required().
		Field("root_name", dsl.String()).Required().
		Field("bbox_min", vec(3)).Required().
		Field("bbox_max", vec(3)).Required().
		Build()
}

// Transform declares the local transform of a node: translation, rotation
// quaternion and scale.
func Transform() (*dsl.ObjectSchema, error) {
	return dsl.Object().Name("Transform").
		Field("translation", vec(3)).Required().
		Field("rotation", vec(4)).Describe("Unit quaternion as x, y, z, w.").Required().
		Field("scale", vec(3)).Required().
		Build()
}

// JointHierarchy declares the skeleton of a skinned asset.
func JointHierarchy() (*dsl.ObjectSchema, error) {
	return dsl.Object().Name("JointHierarchy").
		Field("root", dsl.String().MinLen(1)).Describe("Name of the root joint.").Required().
		Field("joints", dsl.Array[string](dsl.String().MinLen(1)).Min(1)).Describe("Joint names in depth-first order.").Required().
		Field("max_depth", dsl.Int().Ge(1)).Optional().
		Build()
}
