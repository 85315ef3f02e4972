package engine

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// DuplicateStrictness controls duplicate key handling in detection helpers.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

// dupFrame tracks one open container. For objects, key is the member being
// read; for arrays, index is the element being read.
type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	key          string
	index        int
}

// DetectJSONDuplicateKeysBytes detects duplicate object keys from a JSON byte slice.
// If onDup is DupIgnore, no issues are produced. maxIssues < 0 means unlimited; 0 means disabled; >0 sets limit.
func DetectJSONDuplicateKeysBytes(data []byte, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	if onDup == DupIgnore {
		return nil, nil
	}
	return DetectJSONDuplicateKeysReader(bytes.NewReader(data), onDup, maxIssues)
}

// DetectJSONDuplicateKeysReader detects duplicate object keys from an io.Reader.
// Note: this will consume the reader fully.
func DetectJSONDuplicateKeysReader(r io.Reader, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	if onDup == DupIgnore {
		return nil, nil
	}
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return detectJSONDuplicateKeys(dec, onDup, maxIssues)
}

func detectJSONDuplicateKeys(dec *j.Decoder, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	var issues []SimpleIssue
	var stack []dupFrame
	truncated := false

	appendIssue := func(i SimpleIssue) {
		if maxIssues == 0 || truncated {
			return
		}
		issues = append(issues, i)
		if maxIssues > 0 && len(issues) >= maxIssues {
			issues = append(issues, SimpleIssue{Code: "truncated", Path: "/", Message: "max issues reached"})
			truncated = true
		}
	}
	valueDone := func() {
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			switch top.kind {
			case kindObject:
				top.expectingKey = true
			case kindArray:
				top.index++
			}
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			appendIssue(SimpleIssue{Code: "parse_error", Path: "/", Message: err.Error()})
			break
		}

		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true})
			case '[':
				stack = append(stack, dupFrame{kind: kindArray})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 {
				top := &stack[n-1]
				if top.kind == kindObject && top.expectingKey {
					top.key = v
					top.expectingKey = false
					if _, ok := top.keys[v]; ok {
						appendIssue(SimpleIssue{Code: "duplicate_key", Path: pointerOf(stack), Message: "key '" + v + "' duplicated"})
						if onDup == DupError {
							return issues, nil
						}
					}
					top.keys[v] = struct{}{}
					continue
				}
			}
			valueDone()
		default:
			valueDone()
		}
	}

	return issues, nil
}

// pointerOf renders the JSON Pointer of the value currently being read.
func pointerOf(stack []dupFrame) string {
	if len(stack) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, f := range stack {
		b.WriteByte('/')
		switch f.kind {
		case kindObject:
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(f.key, "~", "~0"), "/", "~1"))
		case kindArray:
			b.WriteString(strconv.Itoa(f.index))
		}
	}
	return b.String()
}
