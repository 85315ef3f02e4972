package avatar

import (
	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/dsl"
	"github.com/reoring/assetskema/errmap"
)

var triangleErrors = errmap.New(CodeTriangleCount).Docs(DocsTriangleCount).
	On(errmap.AnyCategory, assetskema.CodeTooSmall, "Mesh must have at least 1 triangle.").
	On(errmap.AnyCategory, assetskema.CodeTooBig, "Mesh exceeds triangle count budget. Allowed: {limit}. Found: {value}.").
	MustBuild()

// MeshTriangleCount declares one optional positive triangle count per part,
// bounded by the part's budget.
func MeshTriangleCount(l Limits) (*dsl.ObjectSchema, error) {
	b := dsl.Object().Name("MeshTriangleCount").
		Config(assetskema.DefaultModelConfig().WithTitle("Triangle Count"))
	for _, p := range l.Parts() {
		b.Field(p, dsl.Int().Gt(0).Le(l.Triangles[p])).Optional()
	}
	return b.WrapAll(triangleErrors).Build()
}
