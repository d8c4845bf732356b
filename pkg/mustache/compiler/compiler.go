package compiler

import (
	"fmt"
	"strings"

	"github.com/aescanero/dago-node-render/pkg/mustache"
	"github.com/aescanero/dago-node-render/pkg/mustache/format"
)

// ParseError reports malformed template text.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mustache: line %d: %s", e.Line, e.Msg)
}

func errorf(line int, msg string, args ...interface{}) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(msg, args...)}
}

// Compile builds a Template from src. Variable tags are HTML escaped unless
// a WithFormatter option says otherwise.
func Compile(src string, opts ...mustache.Option) (*mustache.Template, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	elems, err := parse(src, toks)
	if err != nil {
		return nil, err
	}
	opts = append([]mustache.Option{mustache.WithFormatter(format.HTML)}, opts...)
	return mustache.NewTemplate(src, elems, opts...), nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string, opts ...mustache.Option) *mustache.Template {
	t, err := Compile(src, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// openSection is a section whose closing tag has not been seen yet.
type openSection struct {
	name     string
	inverted bool
	innerAt  int
	line     int
	elems    []mustache.Element
}

func parse(src string, toks []token) ([]mustache.Element, error) {
	stack := []*openSection{{}}

	for _, tok := range toks {
		top := stack[len(stack)-1]

		switch tok.kind {
		case tokText:
			top.elems = append(top.elems, mustache.NewText(tok.value))

		case tokVariable, tokUnescaped:
			inv, err := invocation(tok)
			if err != nil {
				return nil, err
			}
			top.elems = append(top.elems, mustache.NewVariable(inv, tok.kind == tokVariable))

		case tokSectionOpen, tokInvertedOpen:
			if _, err := invocation(tok); err != nil {
				return nil, err
			}
			stack = append(stack, &openSection{
				name:     tok.value,
				inverted: tok.kind == tokInvertedOpen,
				innerAt:  tok.end,
				line:     tok.line,
			})

		case tokSectionClose:
			if len(stack) == 1 {
				return nil, errorf(tok.line, "unexpected closing tag {{/%s}}", tok.value)
			}
			if tok.value != top.name {
				return nil, errorf(tok.line, "closing tag {{/%s}} does not match {{%s%s}} opened on line %d",
					tok.value, sigil(top.inverted), top.name, top.line)
			}
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			parent.elems = append(parent.elems, mustache.NewSection(
				mustache.ParseInvocation(top.name), src, top.innerAt, tok.start, top.inverted, top.elems,
			))
		}
	}

	if len(stack) > 1 {
		top := stack[len(stack)-1]
		return nil, errorf(top.line, "unclosed section {{%s%s}}", sigil(top.inverted), top.name)
	}
	return stack[0].elems, nil
}

// invocation validates and compiles a tag name. "." is the current frame;
// other names are dot separated non-empty keys.
func invocation(tok token) (mustache.Invocation, error) {
	if tok.value != "." {
		for _, key := range strings.Split(tok.value, ".") {
			if key == "" {
				return mustache.Invocation{}, errorf(tok.line, "invalid key path %q", tok.value)
			}
		}
	}
	return mustache.ParseInvocation(tok.value), nil
}

func sigil(inverted bool) string {
	if inverted {
		return "^"
	}
	return "#"
}
