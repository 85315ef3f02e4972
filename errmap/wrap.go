package errmap

import (
	"context"
	"maps"
	"strings"

	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/dsl"
	"github.com/reoring/assetskema/internal/tmpl"
)

const docsSuffix = "\n    For further information visit {url}."

var (
	_ dsl.Wrapper         = (*Table)(nil)
	_ dsl.SchemaAnnotator = (*Table)(nil)
)

// WrapField runs next and relabels its structural issues. Each issue is
// looked up on its own. Only issues of the field itself or of its array
// elements are relabeled: issues reported by a nested model belong to that
// model's tables. Issues without an entry and errors that are not Issues are
// returned as they are.
func (t *Table) WrapField(ctx context.Context, v any, next dsl.Handler, info dsl.FieldInfo) (any, error) {
	out, err := next(ctx, v)
	if err == nil {
		return out, nil
	}
	iss, ok := assetskema.AsIssues(err)
	if !ok {
		return out, err
	}
	mapped := make(assetskema.Issues, len(iss))
	for i, it := range iss {
		mapped[i] = it
		if it.Rule != "" || !ownPath(it.Path) {
			continue
		}
		if _, ok := structural[it.Code]; !ok {
			continue
		}
		if e, ok := t.Lookup(info.Name, it.Code); ok {
			mapped[i] = t.relabel(it, e, v)
		}
	}
	return out, mapped
}

// ownPath reports whether a field-relative path names the field or one of
// its elements.
func ownPath(p string) bool {
	if p == "" || p == "/" {
		return true
	}
	seg := strings.TrimPrefix(p, "/")
	if seg == "" || strings.Contains(seg, "/") {
		return false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (t *Table) relabel(it assetskema.Issue, e Entry, input any) assetskema.Issue {
	orig := it
	orig.Params = maps.Clone(it.Params)
	it.Code = e.Code
	it.Rule = e.Code
	it.Message = t.Message(e, it, input)
	it.Cause = assetskema.Issues{orig}
	return it
}

// Message renders the runtime message of an entry for a structural issue.
// input is the raw value the field received.
func (t *Table) Message(e Entry, it assetskema.Issue, input any) string {
	template := e.Template
	if t.docs != "" {
		template += docsSuffix
	}
	return tmpl.Render(template, runtimeValues(it, input, t.docs))
}

func runtimeValues(it assetskema.Issue, input any, url string) map[string]string {
	vals := map[string]string{"url": url}
	if got, ok := it.Params[assetskema.ParamGot]; ok {
		vals["value"] = formatValue(got)
	} else {
		vals["value"] = formatValue(input)
	}
	if lim, ok := it.Params[assetskema.ParamLimit]; ok {
		limitValues(vals, lim)
	}
	if exp, ok := it.Params[assetskema.ParamExpected]; ok {
		expectedValues(vals, exp)
	}
	vals["count"] = countOf(input, it.Params)
	return vals
}
