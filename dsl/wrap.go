package dsl

import (
	"context"

	js "github.com/reoring/assetskema/jsonschema"
)

// Handler runs the default validation of one field and returns the coerced
// value or the field's issues, with paths relative to the field.
type Handler func(ctx context.Context, v any) (any, error)

// FieldInfo identifies a declared field.
type FieldInfo struct {
	Name     string // declared identity, e.g. "mime_type"
	Alias    string // wire name, e.g. "mimeType"
	Model    string // name of the declaring model
	Required bool
}

// Wrapper intercepts the validation of a field. An implementation calls next
// at most once and may rewrite the error it returns; the value it returns
// replaces the field's value in the parsed output.
type Wrapper interface {
	WrapField(ctx context.Context, v any, next Handler, info FieldInfo) (any, error)
}

// WrapperFunc adapts a function to Wrapper.
type WrapperFunc func(ctx context.Context, v any, next Handler, info FieldInfo) (any, error)

func (f WrapperFunc) WrapField(ctx context.Context, v any, next Handler, info FieldInfo) (any, error) {
	return f(ctx, v, next, info)
}

// SchemaAnnotator is implemented by wrappers that also contribute keywords
// to the JSON Schema node of the fields they wrap. node is the field's own
// node; it is fresh for every render and may be modified in place.
type SchemaAnnotator interface {
	AnnotateField(info FieldInfo, node *js.Schema)
}

// chain builds the handler for a field: wrappers[0] is outermost.
func chain(base Handler, wrappers []Wrapper, info FieldInfo) Handler {
	h := base
	for i := len(wrappers) - 1; i >= 0; i-- {
		w, next := wrappers[i], h
		h = func(ctx context.Context, v any) (any, error) {
			return w.WrapField(ctx, v, next, info)
		}
	}
	return h
}
