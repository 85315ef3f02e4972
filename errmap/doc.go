// Package errmap turns structural validation issues into domain issues.
//
// A Table is declared once per rule family:
//
//	tbl := errmap.New("TRIANGLE_COUNT").Docs(url).
//		On(errmap.AnyCategory, assetskema.CodeTooBig, "Allowed: {limit}. Found: {value}.").
//		MustBuild()
//
// and registered on model fields with dsl Wrap or WrapAll. At parse time the
// table relabels matching issues (WrapField); at schema generation it writes
// the same templates into the ajv-errors errorMessage keyword
// (AnnotateField), where runtime placeholders become ${0} references.
//
// Placeholders: {value}, {limit}, {limit_kb}, {limit_mb}, {expected},
// {expected_max}, {count}, {url}.
package errmap
