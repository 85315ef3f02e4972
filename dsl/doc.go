// Package dsl declares the constraints of asset description models.
//
// Overview:
//
//   - Field schemas: Int/Number (Gt/Ge/Lt/Le), String (MinLen/MaxLen), Bool,
//     Any, Literal (JSON Schema const), Enum[E] over a closed string type and
//     Array[E] (Min/Max). Nullable(s) additionally accepts null.
//   - Models: Object() builder with Name/Config/Field/Required/Require, built
//     into an immutable *ObjectSchema. A built model is itself a field schema
//     and nests under $defs.
//   - Wrappers: Wrap(field, w) and WrapAll(w) intercept field validation
//     (see errmap for the table-driven error remapper).
//
// File layout (roles):
//
//   - adapter.go: AnyAdapter, the type-erased field schema held by models.
//   - primitives.go, bounds.go, coerce.go: scalar fields and numeric coercion.
//   - enum.go: Enum and Literal.
//   - array.go: ArraySchema.
//   - object_builder.go: ObjectBuilder/fieldStep and Build/MustBuild.
//   - object_core.go: ObjectSchema (Parse/JSONSchema/Definition).
//   - wrap.go: Handler, Wrapper, SchemaAnnotator.
//   - alias.go: wire name derivation.
//
// Declarations are checked once, at Build: conflicting bounds, invalid
// lengths, empty or duplicated enum members, duplicate fields, colliding
// wire names and wrappers for undeclared fields are *DeclarationError
// values. Parse never reports declaration problems.
//
// # Coercion
//
// Numeric fields follow the model's Coercion unless marked Strict. In lax
// mode integer fields accept integral floats and numeric strings; in strict
// mode only JSON numbers and Go numeric kinds. Enum, Literal and String
// never coerce, and a value of the wrong JSON type is invalid_type.
// Booleans are never numbers.
//
// # Example
//
//	counts := g.Object().
//	    Name("MeshTriangleCount").
//	    Field("beard", g.Int().Gt(0).Le(1000)).
//	    Field("body_custom", g.Int().Gt(0).Le(14000)).
//	    MustBuild()
//
//	out, err := counts.Parse(ctx, map[string]any{"bodyCustom": 12000})
//	// out == map[string]any{"bodyCustom": int64(12000)}
//
//	_, err = counts.Parse(ctx, map[string]any{"beard": 1500})
//	// err is assetskema.Issues{{Path: "/beard", Code: "too_big", ...}}
//
//	sch, _ := counts.JSONSchema()
//	// properties.beard == {"title":"Beard","type":"integer","exclusiveMinimum":0,"maximum":1000}
//	// UnknownStrict => additionalProperties=false,
//	// UnknownStrip => additionalProperties=true
package dsl
