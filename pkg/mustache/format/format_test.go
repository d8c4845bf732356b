package format

import "testing"

func TestFormatters(t *testing.T) {
	tests := []struct {
		name   string
		format func(interface{}, bool) string
		v      interface{}
		escape bool
		want   string
	}{
		{name: "text string", format: text, v: "<b>", escape: true, want: "<b>"},
		{name: "text int", format: text, v: 42, escape: true, want: "42"},
		{name: "text bool", format: text, v: true, escape: false, want: "true"},
		{name: "html escaped", format: html, v: "a < b & c", escape: true, want: "a &lt; b &amp; c"},
		{name: "html raw", format: html, v: "<b>", escape: false, want: "<b>"},
		{name: "sanitized keeps safe markup", format: sanitized, v: "<b>bold</b>", escape: true, want: "<b>bold</b>"},
		{name: "sanitized strips scripts", format: sanitized, v: "hi<script>alert(1)</script>", escape: true, want: "hi"},
		{name: "sanitized raw", format: sanitized, v: "<script>", escape: false, want: "<script>"},
		{name: "text nil", format: text, v: nil, escape: false, want: ""},
		{name: "text list", format: text, v: []interface{}{"a", 1, true}, escape: false, want: "a1true"},
		{name: "text func", format: text, v: func() string { return "x" }, escape: false, want: ""},
		{name: "html func", format: html, v: func() string { return "x" }, escape: true, want: ""},
		{name: "html chan", format: html, v: make(chan int), escape: true, want: ""},
		{name: "html list with func", format: html, v: []interface{}{"a", func() {}, "<b>"}, escape: true, want: "a&lt;b&gt;"},
		{name: "sanitized func", format: sanitized, v: func() {}, escape: true, want: ""},
		{name: "text bytes", format: text, v: []byte("hi"), escape: false, want: "hi"},
		{name: "text nil pointer", format: text, v: (*int)(nil), escape: false, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format(tt.v, tt.escape); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"text", "HTML", "", " sanitized "} {
		if _, ok := ByName(name); !ok {
			t.Fatalf("ByName(%q) not found", name)
		}
	}
	if _, ok := ByName("xml"); ok {
		t.Fatal("ByName(xml) should not exist")
	}
}
