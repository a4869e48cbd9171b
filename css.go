// Package csslex implements tokenization of CSS as described by CSS Syntax
// Level 3.
//
// Tokens are produced lazily and reference the input directly. Values are left
// escaped, callers decode them with Unescape and ParseNumber when needed.
//
//	z := csslex.NewTokenizer("a { color: #fff }")
//	for {
//		t, ok := z.Next()
//		if !ok {
//			break
//		}
//		fmt.Println(t)
//	}
package csslex

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidKind is wrapped by errors returned when a token is decoded as a
// kind it isn't.
var ErrInvalidKind = errors.New("invalid token kind")

// Error is returned indicating a decode or parse error with the associated
// position in the string the error occurred.
type Error struct {
	Pos int
	Msg string
	// Err is the underlying error, if any.
	Err error
}

// Error returns a formatted version of the error.
func (e *Error) Error() string {
	return fmt.Sprintf("css: %s at position %d", e.Msg, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StyleSheets returns the text of every <style> element in a parsed HTML
// document, in document order.
func StyleSheets(n *html.Node) []string {
	var sheets []string
	for _, s := range match(n, isStyleElement) {
		var b strings.Builder
		for c := s.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
		sheets = append(sheets, b.String())
	}
	return sheets
}

// InlineStyle is an element's style attribute.
type InlineStyle struct {
	Node         *html.Node
	Declarations []Declaration
}

// InlineStyles parses the style attribute of every element in a parsed HTML
// document. InlineStyles reports the first error hit when parsing.
func InlineStyles(n *html.Node) ([]InlineStyle, error) {
	var styles []InlineStyle
	for _, e := range match(n, hasStyleAttr) {
		decls, err := ParseDeclarations(styleAttr(e))
		if err != nil {
			return nil, fmt.Errorf("parsing style of <%s>: %w", e.Data, err)
		}
		styles = append(styles, InlineStyle{Node: e, Declarations: decls})
	}
	return styles, nil
}

func isStyleElement(n *html.Node) bool {
	return n.Type == html.ElementNode && n.DataAtom == atom.Style && n.Namespace == ""
}

func hasStyleAttr(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "style" {
			return true
		}
	}
	return false
}

func styleAttr(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "style" {
			return a.Val
		}
	}
	return ""
}

// match returns every node under n, including n, for which fn is true.
func match(n *html.Node, fn func(n *html.Node) bool) []*html.Node {
	var m []*html.Node
	if fn(n) {
		m = append(m, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		m = append(m, match(c, fn)...)
	}
	return m
}
