package mustache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aescanero/dago-node-render/pkg/mustache"
	"github.com/aescanero/dago-node-render/pkg/mustache/compiler"
)

func TestTemplateWithoutSections(t *testing.T) {
	tests := []struct {
		src  string
		data interface{}
		want string
	}{
		{src: "", data: nil, want: ""},
		{src: "plain text", data: nil, want: "plain text"},
		{src: "Hello {{name}}!", data: d{"name": "World"}, want: "Hello World!"},
		{src: "{{a}}{{b}}{{c}}", data: d{"a": 1, "b": "-", "c": 2.5}, want: "1-2.5"},
		{src: "[{{missing}}]", data: d{}, want: "[]"},
		{src: "[{{a.b.c}}]", data: d{"a": "scalar"}, want: "[]"},
		{src: "[{{nothing}}]", data: d{"nothing": nil}, want: "[]"},
		{src: "{{user.name}} <{{user.mail}}>", data: d{"user": d{"name": "Ann", "mail": "a@b"}}, want: "Ann <a@b>"},
		{src: "{{html}}|{{{html}}}|{{&html}}", data: d{"html": "<b>"}, want: "&lt;b&gt;|<b>|<b>"},
		{src: "a{{! ignored }}b", data: nil, want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := compiler.MustCompile(tt.src).Exec(tt.data)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTemplateFuncValuesRenderEmpty(t *testing.T) {
	data := d{
		"f":    func() string { return "x" },
		"c":    make(chan int),
		"h":    mustache.HelperFunc(func(*mustache.Section) string { return "called" }),
		"list": []interface{}{"a", func() {}, "b"},
		"n":    1,
	}
	tests := []struct {
		src  string
		want string
	}{
		{src: "[{{f}}]{{n}}", want: "[]1"},
		{src: "[{{{f}}}]", want: "[]"},
		{src: "[{{c}}]", want: "[]"},
		{src: "[{{h}}]", want: "[]"},
		{src: "[{{list}}]", want: "[ab]"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, compiler.MustCompile(tt.src).Exec(data)); diff != "" {
				t.Fatalf("render mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("no formatter", func(t *testing.T) {
		tmpl := mustache.NewTemplate("", []mustache.Element{
			mustache.NewText("["),
			mustache.NewVariable(mustache.ParseInvocation("f"), true),
			mustache.NewText("]"),
		})
		if got := tmpl.Exec(data); got != "[]" {
			t.Fatalf("got %q, want %q", got, "[]")
		}
	})
}

func TestTemplateHandBuiltTree(t *testing.T) {
	src := "{{#items}}{{.}},{{/items}}"
	tmpl := mustache.NewTemplate(src, []mustache.Element{
		mustache.NewSection(mustache.ParseInvocation("items"), src, 10, 16, false, []mustache.Element{
			mustache.NewVariable(mustache.ParseInvocation("."), true),
			mustache.NewText(","),
		}),
	})

	if got := mustache.Render(tmpl, d{"items": []int{1, 2, 3}}); got != "1,2,3," {
		t.Fatalf("got %q, want %q", got, "1,2,3,")
	}
	if tmpl.Source() != src || len(tmpl.Elements()) != 1 {
		t.Fatal("accessors do not reflect constructor arguments")
	}
}

func TestTemplateDefaultFormatter(t *testing.T) {
	tmpl := mustache.NewTemplate("", []mustache.Element{
		mustache.NewVariable(mustache.ParseInvocation("v"), true),
	})
	if got := tmpl.Exec(d{"v": "<x>"}); got != "<x>" {
		t.Fatalf("got %q, want the value unformatted", got)
	}
}

func TestTemplateFormatterReceivesEscapeFlag(t *testing.T) {
	var flags []bool
	f := mustache.FormatterFunc(func(v interface{}, escape bool) string {
		flags = append(flags, escape)
		return fmt.Sprint(v)
	})
	compiler.MustCompile("{{a}}{{{a}}}{{&a}}", mustache.WithFormatter(f)).Exec(d{"a": 1})

	if diff := cmp.Diff([]bool{true, false, false}, flags); diff != "" {
		t.Fatalf("escape flags mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplateExecObjects(t *testing.T) {
	tmpl := compiler.MustCompile("{{a}}{{b}}")
	got := tmpl.ExecObjects(d{"a": "outer", "b": "outer"}, d{"b": "inner"})
	if got != "outerinner" {
		t.Fatalf("got %q, want outerinner", got)
	}
}

func TestTemplateConcurrentRenders(t *testing.T) {
	tmpl := compiler.MustCompile("{{#items}}{{name}}{{/items}}")

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = tmpl.Exec(d{"items": []d{{"name": fmt.Sprint(i)}, {"name": "x"}}})
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if want := fmt.Sprint(i) + "x"; got != want {
			t.Fatalf("render %d = %q, want %q", i, got, want)
		}
	}
}

type recorder struct {
	events []string
}

func (r *recorder) WillRenderTag(_ *mustache.Template, ev mustache.TagEvent) {
	r.events = append(r.events, fmt.Sprintf("will %s %s %s", ev.Kind, ev.Invocation, ev.Disposition))
}

func (r *recorder) DidRenderTag(_ *mustache.Template, ev mustache.TagEvent, out string) {
	r.events = append(r.events, fmt.Sprintf("did %s %s %q", ev.Kind, ev.Invocation, out))
}

type templateRecorder struct {
	recorder
}

func (r *templateRecorder) WillRenderTemplate(*mustache.Template) {
	r.events = append(r.events, "will template")
}

func (r *templateRecorder) DidRenderTemplate(_ *mustache.Template, out string) {
	r.events = append(r.events, fmt.Sprintf("did template %q", out))
}

func TestTemplateObserver(t *testing.T) {
	rec := &recorder{}
	tmpl := compiler.MustCompile("{{#a}}{{b}}{{/a}}!", mustache.WithObserver(rec))
	tmpl.Exec(d{"a": d{"b": "x"}})

	want := []string{
		"will section a truthy",
		"will variable b truthy",
		`did variable b "x"`,
		`did section a "x"`,
	}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplateObserverOptionalHooks(t *testing.T) {
	rec := &templateRecorder{}
	compiler.MustCompile("{{a}}", mustache.WithObserver(rec)).Exec(d{"a": 1})

	want := []string{
		"will template",
		"will variable a truthy",
		`did variable a "1"`,
		`did template "1"`,
	}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplateWithoutObserver(t *testing.T) {
	if got := compiler.MustCompile("{{a}}").Exec(d{"a": "ok"}); got != "ok" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderExamples(t *testing.T) {
	none := compiler.MustCompile("{{^items}}none{{/items}}")
	if got := none.Exec(d{"items": []int{}}); got != "none" {
		t.Fatalf("empty items: got %q", got)
	}
	if got := none.Exec(d{"items": []int{1}}); got != "" {
		t.Fatalf("one item: got %q", got)
	}

	list := compiler.MustCompile("{{#items}}{{.}},{{/items}}")
	if got := list.Exec(d{"items": []int{1, 2, 3}}); got != "1,2,3," {
		t.Fatalf("list: got %q", got)
	}
}
