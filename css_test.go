package csslex

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

func parseHTML(t *testing.T, s string) *html.Node {
	t.Helper()
	n, err := html.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("parsing html: %v", err)
	}
	return n
}

func TestStyleSheets(t *testing.T) {
	tests := []struct {
		s    string
		want []string
	}{
		{`<p>no styles</p>`, nil},
		{
			`<html><head><style>a { color: red }</style></head>
<body><style>
p { margin: 0 }
</style></body></html>`,
			[]string{"a { color: red }", "\np { margin: 0 }\n"},
		},
		{`<style></style>`, []string{""}},
		{`<svg><style>circle { fill: red }</style></svg><style>b{}</style>`, []string{"b{}"}},
	}
	for _, test := range tests {
		got := StyleSheets(parseHTML(t, test.s))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("StyleSheets(%q) returned diff (-want, +got): %s", test.s, diff)
		}
	}
}

func TestInlineStyles(t *testing.T) {
	n := parseHTML(t, `<div style="color: red; width: 10px !important">
<p style="">a</p>
<span class="x">b</span>
<a style="  ">c</a>
</div>`)
	styles, err := InlineStyles(n)
	if err != nil {
		t.Fatalf("InlineStyles: %v", err)
	}

	type inline struct {
		Element string
		Decls   []decl
	}
	var got []inline
	for _, s := range styles {
		in := inline{Element: s.Node.Data}
		for _, d := range s.Declarations {
			in.Decls = append(in.Decls, decl{d.Pos, d.Name, d.RawValue, d.Important})
		}
		got = append(got, in)
	}
	want := []inline{
		{"div", []decl{{0, "color", "red", false}, {12, "width", "10px", true}}},
		{"p", nil},
		{"a", nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("InlineStyles returned diff (-want, +got): %s", diff)
	}
}

func TestInlineStylesErr(t *testing.T) {
	n := parseHTML(t, `<p style="color: red">a</p><b style="color red">b</b>`)
	_, err := InlineStyles(n)
	if err == nil {
		t.Fatalf("expected error parsing inline styles")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("got err %v, want *Error", err)
	}
	if perr.Pos != 6 {
		t.Errorf("got error at pos %d, want 6", perr.Pos)
	}
	if !strings.Contains(err.Error(), "<b>") {
		t.Errorf("error %q doesn't name the element", err)
	}
}
