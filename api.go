package assetskema

import (
	"context"

	js "github.com/reoring/assetskema/jsonschema"
)

// Schema is implemented by every declared field type and model.
type Schema[T any] interface {
	// Parse runs the structural checks on an unknown input and returns the
	// value coerced to T. Failures are reported as Issues.
	Parse(ctx context.Context, v any) (T, error)

	// Validate is Parse without the result.
	Validate(ctx context.Context, v any) error

	// JSONSchema projects the declared constraints into JSON Schema form.
	JSONSchema() (*js.Schema, error)
}

// Result is the outcome of one validation call: either the coerced value or the
// issues found.
type Result[T any] struct {
	Value  T      `json:"value,omitempty"`
	Issues Issues `json:"issues,omitempty"`
}

// OK reports whether validation succeeded.
func (r Result[T]) OK() bool { return len(r.Issues) == 0 }

// Err returns the issues as an error, or nil on success.
func (r Result[T]) Err() error {
	if len(r.Issues) == 0 {
		return nil
	}
	return r.Issues
}

// Check parses v and folds the outcome into a Result. Errors that are not
// Issues are reported as a single parse_error issue at the root.
func Check[T any](ctx context.Context, s Schema[T], v any) Result[T] {
	val, err := s.Parse(ctx, v)
	if err == nil {
		return Result[T]{Value: val}
	}
	if iss, ok := AsIssues(err); ok {
		return Result[T]{Issues: iss}
	}
	return Result[T]{Issues: Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}}
}

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is returns true if v conforms to the schema s.
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	return s.Validate(ctx, v) == nil
}

// ---- Parse-time context (exported for subpackages) ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
	_ctxKeyConfig
)

// WithFailFast returns a child context that marks fail-fast parsing behavior.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current parse should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}

// WithConfig returns a child context carrying the configuration of the model
// being parsed. Models set it for their fields; nested models replace it.
func WithConfig(ctx context.Context, cfg ModelConfig) context.Context {
	ctx = context.WithValue(ctx, _ctxKeyConfig, cfg)
	if cfg.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	return ctx
}

// ConfigFrom returns the configuration of the enclosing model, or
// DefaultModelConfig when parsing outside any model.
func ConfigFrom(ctx context.Context) ModelConfig {
	if cfg, ok := ctx.Value(_ctxKeyConfig).(ModelConfig); ok {
		return cfg
	}
	return DefaultModelConfig()
}
