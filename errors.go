package assetskema

import (
	"errors"
	"fmt"
	"strings"
)

// Structural issue codes produced by the generic type/range/enum checks.
const (
	CodeInvalidType    = "invalid_type"
	CodeRequired       = "required"
	CodeUnknownKey     = "unknown_key"
	CodeDuplicateKey   = "duplicate_key"
	CodeTooSmall       = "too_small"
	CodeTooBig         = "too_big"
	CodeTooShort       = "too_short"
	CodeTooLong        = "too_long"
	CodeInvalidEnum    = "invalid_enum"
	CodeInvalidLiteral = "invalid_literal"
	CodeParseError     = "parse_error"
)

// Keys used in Issue.Params by structural checks.
const (
	ParamGot       = "got"       // offending input
	ParamLimit     = "limit"     // declared bound (number or length)
	ParamInclusive = "inclusive" // whether the bound admits equality
	ParamLen       = "len"       // observed length of a sized input
	ParamExpected  = "expected"  // allowed value or set of values
	ParamKey       = "key"       // offending object key
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string `json:"path"` // JSON Pointer over wire names (for example: /textures/0/slots).
	Code    string `json:"code"` // A structural code above or a domain code.
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
	// Params carries the structural context (e.g., {"limit":1000, "got":1500})
	// that message templates are rendered from.
	Params map[string]any `json:"params,omitempty"`
	// Rule optionally records the rule family that relabeled this issue.
	Rule  string `json:"rule,omitempty"`
	Cause error  `json:"-"`
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. TRIANGLE_COUNT at /beard
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Codes lists the issue codes in order.
func (iss Issues) Codes() []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Code)
	}
	return out
}

// At returns the issues reported for an exact path.
func (iss Issues) At(path string) Issues {
	var out Issues
	for _, it := range iss {
		if it.Path == path {
			out = append(out, it)
		}
	}
	return out
}

// Unwrap exposes the per-issue causes to errors.Is/As.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ErrInvalidDeclaration is returned (wrapped in a *DeclarationError) when a
// model or field declaration is inconsistent.
var ErrInvalidDeclaration = errors.New("assetskema: invalid declaration")

// DeclarationError reports a model declaration that cannot be built.
type DeclarationError struct {
	Model  string
	Field  string
	Reason string
}

func (e *DeclarationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(ErrInvalidDeclaration.Error())
	if e.Model != "" {
		fmt.Fprintf(&b, " (model=%s)", e.Model)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " (field=%s)", e.Field)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

func (e *DeclarationError) Unwrap() error { return ErrInvalidDeclaration }
