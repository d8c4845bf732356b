package compiler

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aescanero/dago-node-render/pkg/mustache"
)

func TestLex(t *testing.T) {
	toks, err := lex("a {{b}}\n{{{c}}}{{&d}}{{#e}}{{^f}}{{/f}}{{/e}}{{! x }}")
	if err != nil {
		t.Fatal(err)
	}

	type tk struct {
		Kind  tokenKind
		Value string
		Line  int
	}
	var got []tk
	for _, tok := range toks {
		got = append(got, tk{tok.kind, tok.value, tok.line})
	}
	want := []tk{
		{tokText, "a ", 1},
		{tokVariable, "b", 1},
		{tokText, "\n", 1},
		{tokUnescaped, "c", 2},
		{tokUnescaped, "d", 2},
		{tokSectionOpen, "e", 2},
		{tokInvertedOpen, "f", 2},
		{tokSectionClose, "f", 2},
		{tokSectionClose, "e", 2},
		{tokComment, "x", 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileSectionRange(t *testing.T) {
	src := "x{{#outer}}a{{#inner}}b{{/inner}}c{{/outer}}y"
	tmpl, err := Compile(src)
	if err != nil {
		t.Fatal(err)
	}

	elems := tmpl.Elements()
	if len(elems) != 3 {
		t.Fatalf("got %d top level elements, want 3", len(elems))
	}
	outer, ok := elems[1].(*mustache.SectionNode)
	if !ok {
		t.Fatalf("element 1 is %T, want *mustache.SectionNode", elems[1])
	}
	if got := outer.InnerTemplateString(); got != "a{{#inner}}b{{/inner}}c" {
		t.Fatalf("outer inner text = %q", got)
	}
	inner, ok := outer.Children()[1].(*mustache.SectionNode)
	if !ok {
		t.Fatalf("outer child 1 is %T", outer.Children()[1])
	}
	if got := inner.InnerTemplateString(); got != "b" {
		t.Fatalf("inner inner text = %q", got)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		src  string
		line int
	}{
		{src: "{{a", line: 1},
		{src: "{{}}", line: 1},
		{src: "{{a b}}", line: 1},
		{src: "\n{{#a}}", line: 2},
		{src: "{{/a}}", line: 1},
		{src: "{{#a}}\n\n{{/b}}", line: 3},
		{src: "{{a..b}}", line: 1},
		{src: "{{#.a}}{{/.a}}", line: 1},
		{src: "{{{a}}", line: 1},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Compile(tt.src)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Compile(%q) error = %v, want *ParseError", tt.src, err)
			}
			if perr.Line != tt.line {
				t.Fatalf("line = %d, want %d (%s)", perr.Line, tt.line, perr.Msg)
			}
		})
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	MustCompile("{{#a}}")
}

func TestCompileCurrentFrame(t *testing.T) {
	got := MustCompile("{{#list}}<{{.}}>{{/list}}").Exec(map[string]interface{}{
		"list": []string{"a", "b"},
	})
	if got != "&lt;a&gt;&lt;b&gt;" {
		t.Fatalf("got %q", got)
	}
}
