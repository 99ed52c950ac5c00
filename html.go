package redblack

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML creates an HTML fragment for the structure of a tree: a list
//
//	<ul class="rbtree">…</ul>
//
// with one <li> per node, carrying class "red" or "black" and the node's key as
// text. Children of a node are nested in a <ul> of their own, absent children
// of inner nodes appear as <li class="nil"></li>.
func (t *Tree[K]) HTML() *html.Node {
	ul := element(atom.Ul, "rbtree")
	if t != nil && t.root != nil {
		ul.AppendChild(htmlNode(t.root))
	}
	return ul
}

// RenderHTML writes the HTML fragment created by HTML to w.
func (t *Tree[K]) RenderHTML(w io.Writer) error {
	return html.Render(w, t.HTML())
}

func htmlNode[K any](n *Node[K]) *html.Node {
	if n == nil {
		return element(atom.Li, "nil")
	}
	li := element(atom.Li, colorOf(n).String())
	span := element(atom.Span, "key")
	span.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: keyText(n.key),
	})
	li.AppendChild(span)
	if !n.isLeaf() {
		ul := element(atom.Ul, "")
		ul.AppendChild(htmlNode(n.left))
		ul.AppendChild(htmlNode(n.right))
		li.AppendChild(ul)
	}
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

// keyText formats a key for a text node; html.Render takes care of escaping.
func keyText(key any) string {
	return fmt.Sprintf("%v", key)
}
