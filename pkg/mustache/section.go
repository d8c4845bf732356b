package mustache

import (
	"fmt"
	"strings"
)

// SectionNode renders {{#name}}...{{/name}} and {{^name}}...{{/name}}.
//
// It keeps both the compiled children and the byte range of the section's
// inner text in the template source, so that Helpers can read the text
// exactly as it was written.
type SectionNode struct {
	inv      Invocation
	source   string
	start    int
	end      int
	inverted bool
	children []Element
}

// NewSection returns a SectionNode. source[start:end] must be the text
// between the opening and the closing tag.
func NewSection(inv Invocation, source string, start, end int, inverted bool, children []Element) *SectionNode {
	if start < 0 || end < start || end > len(source) {
		panic(fmt.Sprintf("mustache: section range [%d:%d] out of source of length %d", start, end, len(source)))
	}
	return &SectionNode{
		inv:      inv,
		source:   source,
		start:    start,
		end:      end,
		inverted: inverted,
		children: append([]Element(nil), children...),
	}
}

// Invocation returns the key path of the section.
func (n *SectionNode) Invocation() Invocation { return n.inv }

// Inverted reports whether this is a {{^name}} section.
func (n *SectionNode) Inverted() bool { return n.inverted }

// InnerTemplateString returns the unprocessed text between the section tags.
func (n *SectionNode) InnerTemplateString() string {
	return n.source[n.start:n.end]
}

// Children returns a copy of the compiled children.
func (n *SectionNode) Children() []Element {
	return append([]Element(nil), n.children...)
}

// RenderChildren renders the children against ctx, without resolving nor
// interpreting the section value.
func (n *SectionNode) RenderChildren(ctx *Context, root *Template) string {
	return renderElements(n.children, ctx, root)
}

func (n *SectionNode) Render(ctx *Context, root *Template) string {
	v, found := n.inv.Resolve(ctx)
	ev := TagEvent{
		Kind:        SectionTag,
		Invocation:  n.inv,
		Value:       v,
		Found:       found,
		Inverted:    n.inverted,
		Disposition: Classify(v, found),
	}
	root.willRenderTag(ev)

	depth := ctx.Depth()
	out := n.branch(ctx, root, v, ev.Disposition)
	ctx.checkDepth(depth, n.describe())

	root.didRenderTag(ev, out)
	return out
}

func (n *SectionNode) branch(ctx *Context, root *Template, v interface{}, d Disposition) string {
	switch d {
	case Falsy:
		if !n.inverted {
			return ""
		}
		// missing values, nils and empty lists leave the stack untouched
		if isNil(v) || isEmptyCollection(v) {
			return n.RenderChildren(ctx, root)
		}
		return n.renderInFrame(ctx, root, v)

	case Truthy:
		if n.inverted {
			return ""
		}
		return n.renderInFrame(ctx, root, v)

	case Enumerable:
		if n.inverted {
			return ""
		}
		var buf strings.Builder
		for _, item := range items(v) {
			buf.WriteString(n.renderInFrame(ctx, root, item))
		}
		return buf.String()

	case Callable:
		if n.inverted {
			return ""
		}
		return n.renderHelper(ctx, root, asHelper(v))
	}
	return ""
}

// renderInFrame renders the children with frame pushed. The frame is popped
// on every exit path, panics included.
func (n *SectionNode) renderInFrame(ctx *Context, root *Template, frame interface{}) string {
	depth := ctx.Depth()
	defer ctx.unwind(depth)

	ctx.Push(frame)
	out := n.RenderChildren(ctx, root)
	ctx.checkDepth(depth+1, n.describe())
	return out
}

func (n *SectionNode) renderHelper(ctx *Context, root *Template, h Helper) string {
	depth := ctx.Depth()
	s := &Section{node: n, ctx: ctx, root: root}
	defer func() {
		s.release()
		ctx.unwind(depth)
	}()

	out := h.RenderSection(s)
	ctx.checkDepth(depth, "helper of "+n.describe())
	return out
}

func (n *SectionNode) describe() string {
	if n.inverted {
		return "section ^" + n.inv.String()
	}
	return "section #" + n.inv.String()
}

func (*SectionNode) element() {}

func renderElements(elems []Element, ctx *Context, root *Template) string {
	switch len(elems) {
	case 0:
		return ""
	case 1:
		return elems[0].Render(ctx, root)
	}
	var buf strings.Builder
	for _, e := range elems {
		buf.WriteString(e.Render(ctx, root))
	}
	return buf.String()
}
