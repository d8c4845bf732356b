package mustache

// TagKind tells variable tags from section tags.
type TagKind int

const (
	VariableTag TagKind = iota
	SectionTag
)

func (k TagKind) String() string {
	if k == SectionTag {
		return "section"
	}
	return "variable"
}

// TagEvent describes a tag being rendered.
type TagEvent struct {
	Kind        TagKind
	Invocation  Invocation
	Value       interface{}
	Found       bool
	Inverted    bool
	Disposition Disposition
}

// Observer is notified around the rendering of every tag.
type Observer interface {
	WillRenderTag(root *Template, ev TagEvent)
	DidRenderTag(root *Template, ev TagEvent, output string)
}

// TemplateObserver is implemented by observers that also want to be notified
// around a whole render.
type TemplateObserver interface {
	WillRenderTemplate(root *Template)
	DidRenderTemplate(root *Template, output string)
}
