// Package assetskema validates descriptions of 3D avatar assets against
// declared rule sets and exports those rule sets as JSON Schema documents.
//
// The root package holds the shared error model (Issue, Issues), the model
// configuration value (ModelConfig) and the Schema interface implemented by
// everything declared with the dsl package. Rule sets for avatar parts live in
// avatar; error remapping lives in errmap; schema documents are produced by
// schemagen.
//
// Typical usage:
//
//	rs, err := avatar.NewRuleSet(avatar.DefaultLimits())
//	in, err := assetskema.DecodeJSON(data)
//	res, err := rs.Validate(ctx, "meshTriangleCount", in)
//	if !res.OK() {
//		for _, it := range res.Issues { fmt.Println(it.Path, it.Code, it.Message) }
//	}
//
//	m, err := rs.Model("meshTriangleCount")
//	doc, err := schemagen.Generate(m)
//	b, err := schemagen.Marshal(doc)
package assetskema
