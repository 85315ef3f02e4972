package avatar

import (
	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/dsl"
)

// Sections are the models an asset description is composed of.
type Sections struct {
	Scene     *dsl.ObjectSchema
	Mesh      *dsl.ObjectSchema
	Materials *dsl.ObjectSchema
	Animation *dsl.ObjectSchema
	Textures  *dsl.ObjectSchema
}

// AssetGlasses declares a complete glasses asset. Animations may be
// omitted or null.
func AssetGlasses(s Sections) (*dsl.ObjectSchema, error) {
	return dsl.Object().Name("AssetGlasses").
		Config(assetskema.DefaultModelConfig().WithTitle("Glasses Asset")).
		Description("Validation schema for asset of type Glasses.").
		Field("scenes", s.Scene).Required().
		Field("meshes", s.Mesh).Required().
		Field("materials", s.Materials).Required().
		Field("animations", dsl.Nullable(s.Animation)).Optional().
		Field("textures", s.Textures).Required().
		Build()
}
