package mustache

import "fmt"

// Template is the root of a compiled template tree. It is immutable once
// built and can be rendered by any number of goroutines at once, each
// render using its own Context.
type Template struct {
	source    string
	elems     []Element
	observer  Observer
	formatter Formatter
}

// Option configures a Template.
type Option func(*Template)

// WithObserver sets the Observer notified around each tag. The Observer is
// shared by concurrent renders of the template.
func WithObserver(o Observer) Option {
	return func(t *Template) {
		t.observer = o
	}
}

// WithFormatter sets the Formatter used by variable tags.
func WithFormatter(f Formatter) Option {
	return func(t *Template) {
		t.formatter = f
	}
}

// NewTemplate returns a Template made of elems, compiled from source.
func NewTemplate(source string, elems []Element, opts ...Option) *Template {
	t := &Template{
		source: source,
		elems:  append([]Element(nil), elems...),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Render renders t against data. It is the package level form of
// Template.Exec.
func Render(t *Template, data interface{}) string {
	return t.Exec(data)
}

// Source returns the template text the tree was compiled from.
func (t *Template) Source() string { return t.source }

// Elements returns a copy of the top level elements.
func (t *Template) Elements() []Element {
	return append([]Element(nil), t.elems...)
}

// Exec renders the template with data as the only frame.
func (t *Template) Exec(data interface{}) string {
	return t.ExecContext(NewContext(data))
}

// ExecObjects renders the template with objs pushed in order, the last one
// being the innermost frame.
func (t *Template) ExecObjects(objs ...interface{}) string {
	return t.ExecContext(NewContext(objs...))
}

// ExecContext renders the template against ctx. It panics with
// ErrUnbalancedStack if a section or helper leaves frames behind.
func (t *Template) ExecContext(ctx *Context) string {
	to, _ := t.observer.(TemplateObserver)
	if to != nil {
		to.WillRenderTemplate(t)
	}

	depth := ctx.Depth()
	out := t.Render(ctx, t)
	ctx.checkDepth(depth, "template")

	if to != nil {
		to.DidRenderTemplate(t, out)
	}
	return out
}

// Render renders the elements of t. root is the template whose observer and
// formatter apply; it is t itself unless t is embedded in another tree.
func (t *Template) Render(ctx *Context, root *Template) string {
	return renderElements(t.elems, ctx, root)
}

func (*Template) element() {}

func (t *Template) format(v interface{}, escape bool) string {
	if t == nil || t.formatter == nil {
		return fmt.Sprint(v)
	}
	return t.formatter.Format(v, escape)
}

func (t *Template) willRenderTag(ev TagEvent) {
	if t != nil && t.observer != nil {
		t.observer.WillRenderTag(t, ev)
	}
}

func (t *Template) didRenderTag(ev TagEvent, output string) {
	if t != nil && t.observer != nil {
		t.observer.DidRenderTag(t, ev, output)
	}
}

// Formatter turns the value of a variable tag into text. escape is false for
// {{{name}}} and {{&name}} tags.
type Formatter interface {
	Format(v interface{}, escape bool) string
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(v interface{}, escape bool) string

// Format calls f(v, escape).
func (f FormatterFunc) Format(v interface{}, escape bool) string {
	return f(v, escape)
}
