package mustache

import "reflect"

// Disposition is how a section treats the value its invocation resolved to.
type Disposition int

const (
	// Falsy values render an inverted section only.
	Falsy Disposition = iota
	// Truthy values are pushed as a frame and render the section once.
	Truthy
	// Enumerable values render the section once per item.
	Enumerable
	// Callable values hand the section over to a Helper.
	Callable
)

func (d Disposition) String() string {
	switch d {
	case Falsy:
		return "falsy"
	case Truthy:
		return "truthy"
	case Enumerable:
		return "enumerable"
	case Callable:
		return "callable"
	}
	return "unknown"
}

// Classify maps a resolved value to its Disposition.
//
// Missing keys, nil, false and empty slices or arrays are Falsy. Non-empty
// slices and arrays are Enumerable. Helpers and func(*Section) string values
// are Callable. Everything else is Truthy, including 0, "" and empty maps.
func Classify(v interface{}, found bool) Disposition {
	if !found || isNil(v) {
		return Falsy
	}
	switch t := v.(type) {
	case Helper, func(*Section) string:
		return Callable
	case bool:
		if t {
			return Truthy
		}
		return Falsy
	case []byte:
		// raw bytes are a scalar, not a list of numbers
		if len(t) == 0 {
			return Falsy
		}
		return Truthy
	}

	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return Falsy
	}
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return Truthy
		}
		return Falsy
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return Falsy
		}
		return Enumerable
	}
	return Truthy
}

// isNil reports whether v is nil, a nil pointer or interface, or a nil map,
// func or chan.
func isNil(v interface{}) bool {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return true
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// isOpaque reports whether v has no textual form: funcs, chans and unsafe
// pointers.
func isOpaque(v interface{}) bool {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return false
	}
	switch rv.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// isEmptyCollection reports whether v is a slice or array with no items.
func isEmptyCollection(v interface{}) bool {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return false
	}
	return (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Len() == 0
}

// items returns the elements of an Enumerable value in order.
func items(v interface{}) []interface{} {
	if s, ok := v.([]interface{}); ok {
		return s
	}
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// indirect follows pointers and interfaces. It returns false on a nil.
func indirect(rv reflect.Value) (reflect.Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}
