package assetskema

import (
	"strconv"
	"strings"
)

// PathRef is a JSON Pointer under construction. The zero value is the root.
// Field and Index return extended copies, so a PathRef can be shared.
type PathRef struct {
	segs []string
}

// Root returns the document root ("/").
func Root() PathRef { return PathRef{} }

// Field appends an object member, escaping "~" and "/" per RFC 6901.
func (p PathRef) Field(name string) PathRef {
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return p.with(esc)
}

// Index appends an array element.
func (p PathRef) Index(i int) PathRef { return p.with(strconv.Itoa(i)) }

func (p PathRef) with(seg string) PathRef {
	segs := make([]string, len(p.segs), len(p.segs)+1)
	copy(segs, p.segs)
	return PathRef{segs: append(segs, seg)}
}

// Pointer renders the path. The root is "/".
func (p PathRef) Pointer() string {
	if len(p.segs) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.segs, "/")
}

// JoinPointer rebases a child pointer under a parent pointer.
// JoinPointer("/meshes", "/0/size") == "/meshes/0/size"; a root child maps to
// the parent itself.
func JoinPointer(base, child string) string {
	if base == "" || base == "/" {
		if child == "" {
			return "/"
		}
		return child
	}
	switch {
	case child == "" || child == "/":
		return base
	case child[0] == '/':
		return base + child
	default:
		return base + "/" + child
	}
}
