package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment is a parsed HTML fragment held under a scratch <div> root.
type Fragment struct {
	root *html.Node
}

func newScratchDiv() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
}

// ParseFragment parses markup as the content of a <div> element.
func ParseFragment(markup string) (*Fragment, error) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), newScratchDiv())
	if err != nil {
		return nil, err
	}
	root := newScratchDiv()
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Fragment{root: root}, nil
}

// FindByClass returns every element carrying class, in document order.
// Matches nested inside other matches are included.
func (f *Fragment) FindByClass(class string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && HasClass(c, class) {
				found = append(found, c)
			}
			walk(c)
		}
	}
	walk(f.root)
	return found
}

// RemoveByClass detaches every element carrying class together with its
// subtree. It returns the number of matched elements.
func (f *Fragment) RemoveByClass(class string) int {
	nodes := f.FindByClass(class)
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
	return len(nodes)
}

// UnwrapByClass replaces every element carrying class with a text node
// holding its text content. It returns the number of matched elements.
func (f *Fragment) UnwrapByClass(class string) int {
	nodes := f.FindByClass(class)
	for _, n := range nodes {
		parent := n.Parent
		if parent == nil {
			continue
		}
		text := &html.Node{Type: html.TextNode, Data: TextContent(n)}
		parent.InsertBefore(text, n)
		parent.RemoveChild(n)
	}
	return len(nodes)
}

// String serializes the children of the scratch root.
func (f *Fragment) String() (string, error) {
	var sb strings.Builder
	for c := f.root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// TextContent concatenates all descendant text nodes of n.
func TextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode:
			sb.WriteString(TextContent(c))
		}
	}
	return sb.String()
}

// HasClass reports whether n's class attribute contains class as one of its
// whitespace separated tokens.
func HasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Namespace != "" || attr.Key != "class" {
			continue
		}
		for _, token := range strings.Fields(attr.Val) {
			if token == class {
				return true
			}
		}
	}
	return false
}
