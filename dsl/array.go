package dsl

import (
	"context"

	assetskema "github.com/reoring/assetskema"
	js "github.com/reoring/assetskema/jsonschema"
)

// ArraySchema is a list field whose elements are parsed by elem.
type ArraySchema[E any] struct {
	elem   assetskema.Schema[E]
	minLen *int
	maxLen *int
	desc   string
}

var _ assetskema.Schema[[]int64] = (*ArraySchema[int64])(nil)

// Array returns an array schema with the given element schema.
func Array[E any](elem assetskema.Schema[E]) *ArraySchema[E] {
	return &ArraySchema[E]{elem: elem}
}

// Min sets the minimum length.
func (a *ArraySchema[E]) Min(n int) *ArraySchema[E] { a.minLen = &n; return a }

// Max sets the maximum length.
func (a *ArraySchema[E]) Max(n int) *ArraySchema[E] { a.maxLen = &n; return a }

func (a *ArraySchema[E]) Describe(text string) *ArraySchema[E] { a.desc = text; return a }

// Parse accepts []any as decoded from JSON or YAML, and []E as produced by a
// previous Parse. Element issues are reported under their index; length
// issues are reported at the array itself.
func (a *ArraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	var items []any
	switch src := v.(type) {
	case []any:
		items = src
	case []E:
		items = make([]any, len(src))
		for i := range src {
			items[i] = src[i]
		}
	default:
		return nil, invalidType(v, "array")
	}

	res := make([]E, 0, len(items))
	var iss assetskema.Issues
	for i := range items {
		ev, err := a.elem.Parse(ctx, items[i])
		if err != nil {
			iss = assetskema.AppendIssues(iss, assetskema.Rebase(assetskema.Root().Index(i), issuesFromErr("/", err))...)
			if assetskema.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		res = append(res, ev)
	}
	if li := a.lengthIssues(len(items)); len(li) > 0 {
		iss = assetskema.AppendIssues(iss, li...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return res, nil
}

func (a *ArraySchema[E]) lengthIssues(n int) assetskema.Issues {
	if a.minLen != nil && n < *a.minLen {
		return lengthIssue(assetskema.CodeTooShort, assetskema.CodeTooShort, nil, *a.minLen, n)
	}
	if a.maxLen != nil && n > *a.maxLen {
		return lengthIssue(assetskema.CodeTooLong, assetskema.CodeTooLong, nil, *a.maxLen, n)
	}
	return nil
}

func (a *ArraySchema[E]) Validate(ctx context.Context, v any) error {
	_, err := a.Parse(ctx, v)
	return err
}

// JSONSchema renders the array as a standalone document; nested models are
// collected under $defs.
func (a *ArraySchema[E]) JSONSchema() (*js.Schema, error) {
	return a.toAdapter().JSONSchema()
}

func (a *ArraySchema[E]) nodeIn(defs *js.Definitions) (*js.Schema, error) {
	es, err := nodeOf(a.elem, defs)
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Description: a.desc, Items: es, MinItems: a.minLen, MaxItems: a.maxLen}, nil
}

func (a *ArraySchema[E]) check() error {
	if err := checkLengths(a.minLen, a.maxLen); err != nil {
		return err
	}
	return checkOf(a.elem)
}

func (a *ArraySchema[E]) toAdapter() AnyAdapter {
	c := *a
	return adapt[[]E](&c, c.check)
}

// issuesFromErr converts an error into Issues, wrapping non-Issues with CodeParseError.
func issuesFromErr(path string, err error) assetskema.Issues {
	if err == nil {
		return nil
	}
	if i2, ok := assetskema.AsIssues(err); ok {
		return i2
	}
	return assetskema.Issues{assetskema.Issue{Path: path, Code: assetskema.CodeParseError, Message: err.Error(), Cause: err}}
}
