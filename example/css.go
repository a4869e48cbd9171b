package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ericchiang/csslex"
	"golang.org/x/net/html"
)

var data = `
<html>
<head>
<style>
h2#foo { color: rgb(10, 20, 30) }
/* headers */
h2:hover { font-size: 1.5em !important }
</style>
</head>
<body>
  <h2 id="foo" style="margin: 0 auto; background: url(bg.png)">a header</h2>
  <h2 id="bar">another header</h2>
</body>
</html>`

func main() {
	node, err := html.Parse(strings.NewReader(data))
	if err != nil {
		log.Fatal(err)
	}
	for _, sheet := range csslex.StyleSheets(node) {
		for _, t := range csslex.Tokenize(sheet) {
			if t.Kind == csslex.Whitespace {
				continue
			}
			fmt.Println(t)
		}
	}
	styles, err := csslex.InlineStyles(node)
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range styles {
		for _, d := range s.Declarations {
			fmt.Printf("<%s> %s: %s (important=%t)\n", s.Node.Data, d.Name, d.RawValue, d.Important)
		}
	}
}
