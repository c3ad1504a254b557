package render

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Write serializes n as an HTML fragment.
func Write(w io.Writer, n Node) error {
	if err := html.Render(w, toHTML(n)); err != nil {
		return fmt.Errorf("rendering %s: %w", describe(n), err)
	}
	return nil
}

// WriteDocument serializes root as a full HTML5 document with a doctype.
func WriteDocument(w io.Writer, root Node) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(toHTML(root))
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}
	return nil
}

func toHTML(n Node) *html.Node {
	switch {
	case n.Tag == "" && n.Raw != "":
		return &html.Node{Type: html.RawNode, Data: n.Raw}
	case n.Tag == "":
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if len(n.Attrs) > 0 {
		el.Attr = make([]html.Attribute, len(n.Attrs))
		for i, a := range n.Attrs {
			el.Attr[i] = html.Attribute{Key: a.Key, Val: a.Val}
		}
	}
	for _, c := range n.Children {
		el.AppendChild(toHTML(c))
	}
	return el
}

func describe(n Node) string {
	if n.Tag == "" {
		return "text node"
	}
	if id, ok := n.Attr("id"); ok {
		return fmt.Sprintf("<%s id=%q>", n.Tag, id)
	}
	return "<" + n.Tag + ">"
}
