package slottable

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type person struct {
	ID   int
	Name string
	Age  int
}

var people = []person{
	{ID: 1, Name: "Alice", Age: 28},
	{ID: 2, Name: "Bob", Age: 34},
}

func nameColumn() *Column[person] {
	return NewColumn[person]().
		HeaderText("Name").
		Cell(func(s CellScope[person]) templ.Component {
			return Text(s.Row.Name)
		})
}

func ageColumn() *Column[person] {
	return NewColumn[person]().
		HeaderText("Age").
		Cell(func(s CellScope[person]) templ.Component {
			return Text(s.Row.Age)
		})
}

// renderDOM renders c and parses the result as the children of a <body>.
func renderDOM(t *testing.T, c templ.Component) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return parseDOM(t, buf.String())
}

func parseDOM(t *testing.T, s string) *html.Node {
	t.Helper()
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), body)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return body
}

// findAll returns every descendant element of n with the given tag, in
// document order.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

func find(n *html.Node, tag string) *html.Node {
	if all := findAll(n, tag); len(all) > 0 {
		return all[0]
	}
	return nil
}

func mustFind(t *testing.T, n *html.Node, tag string) *html.Node {
	t.Helper()
	el := find(n, tag)
	if el == nil {
		t.Fatalf("no <%s> element found", tag)
	}
	return el
}

func attrOf(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrOf(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func texts(nodes []*html.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = textOf(n)
	}
	return out
}

// bodyRows returns the <tr> elements of the table body.
func bodyRows(t *testing.T, doc *html.Node) []*html.Node {
	t.Helper()
	return findAll(mustFind(t, doc, "tbody"), "tr")
}
