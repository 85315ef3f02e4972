package assetskema

import (
	"bytes"
	"fmt"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeJSON decodes a JSON asset description. Numbers are kept as
// json.Number so integer fields see the literal the producer wrote.
// Duplicate object keys are rejected as duplicate_key issues; syntax errors
// are reported as a single parse_error issue at the root.
func DecodeJSON(data []byte) (any, error) {
	dups, err := DetectJSONDuplicateKeysBytes(data, -1)
	if err != nil {
		return nil, err
	}
	var dupOnly Issues
	for _, it := range dups {
		if it.Code == CodeParseError {
			return nil, Issues{it}
		}
		dupOnly = append(dupOnly, it)
	}
	if len(dupOnly) > 0 {
		return nil, dupOnly
	}

	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return v, nil
}

// DecodeYAML decodes a YAML asset description into the same shape DecodeJSON
// produces: map[string]any objects and []any sequences. yaml.v3 rejects
// duplicate mapping keys itself; that failure surfaces as parse_error.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return normalizeYAML(v)
}

func normalizeYAML(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			n, err := normalizeYAML(e)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, Issues{{Path: "/", Code: CodeParseError, Message: fmt.Sprintf("non-string mapping key %v", k)}}
			}
			n, err := normalizeYAML(e)
			if err != nil {
				return nil, err
			}
			out[ks] = n
		}
		return out, nil
	case []any:
		for i, e := range t {
			n, err := normalizeYAML(e)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	default:
		return v, nil
	}
}
