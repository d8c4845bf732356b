package mustache

import (
	"fmt"
	"reflect"
)

// KeyLookuper lets a frame value answer key lookups itself instead of being
// inspected by reflection.
type KeyLookuper interface {
	LookupKey(key string) (interface{}, bool)
}

// Context is the stack of data frames a template renders against.
//
// Frames are pushed when entering a section and popped when leaving it. Key
// lookups walk the frames from the innermost to the outermost one, so inner
// frames shadow outer ones.
//
// A Context belongs to a single render call and must not be shared between
// goroutines.
type Context struct {
	frames []interface{}
}

// NewContext returns a Context with the given frames pushed in order: the
// last one is the innermost.
func NewContext(frames ...interface{}) *Context {
	c := &Context{frames: make([]interface{}, 0, len(frames)+4)}
	for _, f := range frames {
		c.Push(f)
	}
	return c
}

// Push adds frame as the new innermost frame.
func (c *Context) Push(frame interface{}) {
	c.frames = append(c.frames, frame)
}

// Pop removes the innermost frame. Popping an empty Context panics with
// ErrEmptyStack.
func (c *Context) Pop() {
	if len(c.frames) == 0 {
		panic(ErrEmptyStack)
	}
	c.frames[len(c.frames)-1] = nil
	c.frames = c.frames[:len(c.frames)-1]
}

// Depth returns the number of frames.
func (c *Context) Depth() int {
	return len(c.frames)
}

// Top returns the innermost frame.
func (c *Context) Top() (interface{}, bool) {
	if len(c.frames) == 0 {
		return nil, false
	}
	return c.frames[len(c.frames)-1], true
}

// Frame returns the frame at index i, counting from the outermost frame.
func (c *Context) Frame(i int) (interface{}, bool) {
	if i < 0 || i >= len(c.frames) {
		return nil, false
	}
	return c.frames[i], true
}

// Resolve applies inv to the stack. The first key is searched from the
// innermost frame outwards; the remaining keys are then read from the value
// found, without falling back to outer frames.
func (c *Context) Resolve(inv Invocation) (interface{}, bool) {
	if len(inv.keys) == 0 {
		return c.Top()
	}
	for i := len(c.frames) - 1; i >= 0; i-- {
		v, ok := lookupKey(c.frames[i], inv.keys[0])
		if !ok {
			continue
		}
		return descend(v, inv.keys[1:])
	}
	return nil, false
}

// Lookup resolves a dotted key path such as "user.name".
func (c *Context) Lookup(path string) (interface{}, bool) {
	return c.Resolve(ParseInvocation(path))
}

// unwind drops frames until the stack is depth frames deep.
func (c *Context) unwind(depth int) {
	for len(c.frames) > depth {
		c.Pop()
	}
}

// checkDepth panics with ErrUnbalancedStack when the stack is not want
// frames deep.
func (c *Context) checkDepth(want int, who string) {
	if got := len(c.frames); got != want {
		panic(fmt.Errorf("%w: %s left depth %d, expected %d", ErrUnbalancedStack, who, got, want))
	}
}

func descend(v interface{}, keys []string) (interface{}, bool) {
	for _, key := range keys {
		var ok bool
		if v, ok = lookupKey(v, key); !ok {
			return nil, false
		}
	}
	return v, true
}

// lookupKey reads key from a single value. Maps with string keys, structs and
// KeyLookuper values are traversable; anything else is not.
func lookupKey(frame interface{}, key string) (interface{}, bool) {
	if isNil(frame) {
		return nil, false
	}
	switch f := frame.(type) {
	case KeyLookuper:
		return f.LookupKey(key)
	case map[string]interface{}:
		v, ok := f[key]
		return v, ok
	case map[string]string:
		v, ok := f[key]
		return v, ok
	}

	rv := reflect.ValueOf(frame)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		return structField(rv, key)
	}
	return nil, false
}

// structField matches a `mustache:"name"` tag first, then the exported field
// name.
func structField(rv reflect.Value, key string) (interface{}, bool) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if tag := sf.Tag.Get("mustache"); tag != "" && tag == key {
			return rv.Field(i).Interface(), true
		}
	}
	sf, ok := rt.FieldByName(key)
	if !ok || !sf.IsExported() || sf.Tag.Get("mustache") == "-" {
		return nil, false
	}
	fv, err := rv.FieldByIndexErr(sf.Index)
	if err != nil {
		return nil, false
	}
	return fv.Interface(), true
}
