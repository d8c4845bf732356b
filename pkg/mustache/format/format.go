// Package format provides the value formatting policies used by variable
// tags.
package format

import (
	"reflect"
	"strings"

	"github.com/aymerick/raymond"
	"github.com/microcosm-cc/bluemonday"

	"github.com/aescanero/dago-node-render/pkg/mustache"
)

var (
	// Text stringifies values and never escapes.
	Text mustache.Formatter = mustache.FormatterFunc(text)

	// HTML stringifies values and HTML escapes them in escaped tags.
	HTML mustache.Formatter = mustache.FormatterFunc(html)

	// Sanitized keeps safe markup (links, emphasis, lists...) in escaped
	// tags and strips the rest.
	Sanitized mustache.Formatter = mustache.FormatterFunc(sanitized)
)

var ugcPolicy = bluemonday.UGCPolicy()

// ByName returns the formatter called name: "text", "html" or "sanitized".
func ByName(name string) (mustache.Formatter, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text":
		return Text, true
	case "html", "":
		return HTML, true
	case "sanitized":
		return Sanitized, true
	}
	return nil, false
}

// str renders lists as the concatenation of their items and nil as "", the
// raymond way. Funcs and chans have no text and render "".
func str(v interface{}) (s string) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Invalid, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return ""
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes())
		}
		var buf strings.Builder
		for i := 0; i < rv.Len(); i++ {
			buf.WriteString(str(rv.Index(i).Interface()))
		}
		return buf.String()
	}

	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	return raymond.Str(v)
}

func text(v interface{}, _ bool) string {
	return str(v)
}

func html(v interface{}, escape bool) string {
	s := str(v)
	if !escape {
		return s
	}
	return raymond.Escape(s)
}

func sanitized(v interface{}, escape bool) string {
	s := str(v)
	if !escape {
		return s
	}
	return ugcPolicy.Sanitize(s)
}
