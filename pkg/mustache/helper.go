package mustache

// Helper customizes the rendering of a section whose value it is.
//
// RenderSection returns the whole output of the section. The engine uses it
// as is: tags it may contain are not expanded. The Section handle is only
// valid during the call.
type Helper interface {
	RenderSection(s *Section) string
}

// HelperFunc adapts a function to the Helper interface.
type HelperFunc func(s *Section) string

// RenderSection calls f(s).
func (f HelperFunc) RenderSection(s *Section) string {
	return f(s)
}

func asHelper(v interface{}) Helper {
	switch h := v.(type) {
	case Helper:
		return h
	case func(*Section) string:
		return HelperFunc(h)
	}
	return nil
}

// Section is the handle a Helper receives. It exposes the raw template text
// of the section, its compiled children and the ambient Context.
type Section struct {
	node     *SectionNode
	ctx      *Context
	root     *Template
	released bool
}

func (s *Section) live() {
	if s.released {
		panic(ErrSectionReleased)
	}
}

func (s *Section) release() {
	s.released = true
	s.ctx = nil
	s.root = nil
}

// Name returns the key path the section was opened with.
func (s *Section) Name() string {
	s.live()
	return s.node.inv.String()
}

// InnerTemplateString returns the literal text between the section tags,
// with its tags unprocessed.
func (s *Section) InnerTemplateString() string {
	s.live()
	return s.node.InnerTemplateString()
}

// Context returns the ambient context stack. A Helper may push frames on it
// but must pop them before returning.
func (s *Section) Context() *Context {
	s.live()
	return s.ctx
}

// Lookup resolves a dotted key path against the ambient context.
func (s *Section) Lookup(path string) (interface{}, bool) {
	s.live()
	return s.ctx.Lookup(path)
}

// Root returns the template being rendered.
func (s *Section) Root() *Template {
	s.live()
	return s.root
}

// Render renders the section's children against the ambient context.
func (s *Section) Render() string {
	s.live()
	return s.node.RenderChildren(s.ctx, s.root)
}

// RenderContext renders the section's children against ctx.
func (s *Section) RenderContext(ctx *Context) string {
	s.live()
	if ctx == nil {
		ctx = NewContext()
	}
	depth := ctx.Depth()
	out := s.node.RenderChildren(ctx, s.root)
	ctx.checkDepth(depth, "section "+s.node.inv.String())
	return out
}

// RenderWith renders the section's children against the ambient context
// extended with frames. The frames are popped before it returns.
func (s *Section) RenderWith(frames ...interface{}) string {
	s.live()
	depth := s.ctx.Depth()
	defer s.ctx.unwind(depth)
	for _, f := range frames {
		s.ctx.Push(f)
	}
	out := s.node.RenderChildren(s.ctx, s.root)
	s.ctx.checkDepth(depth+len(frames), "section "+s.node.inv.String())
	return out
}
