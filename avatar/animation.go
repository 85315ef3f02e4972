package avatar

import (
	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/dsl"
	"github.com/reoring/assetskema/errmap"
)

var animationErrors = errmap.New(CodeAnimation).
	On(errmap.AnyCategory, errmap.AnyCategory, "Animation is currently not supported.").
	MustBuild()

// NoAnimation accepts only an empty animation list.
func NoAnimation() (*dsl.ObjectSchema, error) {
	return dsl.Object().Name("NoAnimation").
		Config(assetskema.DefaultModelConfig().WithTitle("Animation")).
		Description("Empty animation data.").
		Field("properties", dsl.Array[any](dsl.Any()).Max(0)).
		Describe("List of animations.").Comment(propertiesComment).Required().
		WrapAll(animationErrors).
		Build()
}
