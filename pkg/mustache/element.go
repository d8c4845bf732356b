package mustache

// Element is a node of a compiled template tree.
//
// The set of elements is closed: *TextNode, *VariableNode, *SectionNode and
// *Template. Render must leave ctx at the depth it found it.
type Element interface {
	Render(ctx *Context, root *Template) string
	element()
}

// TextNode renders a literal string.
type TextNode struct {
	text string
}

// NewText returns a TextNode rendering text.
func NewText(text string) *TextNode {
	return &TextNode{text: text}
}

// Text returns the literal.
func (n *TextNode) Text() string { return n.text }

func (n *TextNode) Render(*Context, *Template) string { return n.text }

func (*TextNode) element() {}

// VariableNode renders the value its invocation resolves to, through the
// root template's Formatter.
type VariableNode struct {
	inv     Invocation
	escaped bool
}

// NewVariable returns a VariableNode. escaped is passed to the Formatter and
// tells it whether the tag asked for escaping ({{name}}) or not ({{{name}}}).
func NewVariable(inv Invocation, escaped bool) *VariableNode {
	return &VariableNode{inv: inv, escaped: escaped}
}

// Invocation returns the key path of the tag.
func (n *VariableNode) Invocation() Invocation { return n.inv }

// Escaped reports whether the tag asks for escaping.
func (n *VariableNode) Escaped() bool { return n.escaped }

// Render writes nothing for missing values, nil, callables and other funcs
// or chans.
func (n *VariableNode) Render(ctx *Context, root *Template) string {
	v, found := n.inv.Resolve(ctx)
	ev := TagEvent{
		Kind:        VariableTag,
		Invocation:  n.inv,
		Value:       v,
		Found:       found,
		Disposition: Classify(v, found),
	}
	root.willRenderTag(ev)

	var out string
	if ev.Disposition != Callable && found && !isNil(v) && !isOpaque(v) {
		out = root.format(v, n.escaped)
	}

	root.didRenderTag(ev, out)
	return out
}

func (*VariableNode) element() {}
