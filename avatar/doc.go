// Package avatar declares the validation rule sets for avatar assets:
// triangle budgets, material names, texture maps, meshes, animations and
// complete asset types.
//
// Budgets and size ceilings come from Limits, which may be loaded from a
// YAML file:
//
//	triangles:
//	  beard: 800
//	mesh_size_kb: 256
//
// Parts missing from the file keep their DefaultLimits value. A RuleSet
// builds every model once per Limits value; look models up by name, in
// either "MeshTriangleCount" or "meshTriangleCount" form.
package avatar
