package mustache

import "strings"

// Invocation is a compiled dotted key path. The empty path, written ".",
// designates the innermost frame.
type Invocation struct {
	keys []string
	path string
}

// ParseInvocation splits a dotted path into its keys. It does not validate
// the keys: an empty key simply never resolves.
func ParseInvocation(path string) Invocation {
	path = strings.TrimSpace(path)
	if path == "" || path == "." {
		return Invocation{path: "."}
	}
	return Invocation{keys: strings.Split(path, "."), path: path}
}

// Keys returns a copy of the key path.
func (inv Invocation) Keys() []string {
	return append([]string(nil), inv.keys...)
}

// IsCurrent reports whether inv designates the innermost frame.
func (inv Invocation) IsCurrent() bool {
	return len(inv.keys) == 0
}

func (inv Invocation) String() string {
	if inv.path == "" {
		return "."
	}
	return inv.path
}

// Resolve applies the invocation to ctx.
func (inv Invocation) Resolve(ctx *Context) (interface{}, bool) {
	return ctx.Resolve(inv)
}
