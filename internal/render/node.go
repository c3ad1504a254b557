// Package render builds the page as a tree of plain values. Every function
// here is pure: the same input always yields an equal tree.
package render

import "strings"

// Attr is one element attribute. Attributes keep their declaration order.
type Attr struct {
	Key string
	Val string
}

// Node is a structural description of markup. An element has a Tag. A node
// without a Tag is text, or a trusted HTML fragment when Raw is set.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Raw      string
	Children []Node
}

// El builds an element.
func El(tag string, attrs []Attr, children ...Node) Node {
	return Node{Tag: tag, Attrs: attrs, Children: children}
}

// A builds an attribute list from key/value pairs. A trailing key without
// a value becomes an empty attribute.
func A(kv ...string) []Attr {
	attrs := make([]Attr, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		a := Attr{Key: kv[i]}
		if i+1 < len(kv) {
			a.Val = kv[i+1]
		}
		attrs = append(attrs, a)
	}
	return attrs
}

// Class is shorthand for a single class attribute.
func Class(names ...string) []Attr {
	return []Attr{{Key: "class", Val: strings.Join(names, " ")}}
}

// Text builds a text node.
func Text(s string) Node { return Node{Text: s} }

// Raw builds a node holding an already rendered HTML fragment.
func Raw(html string) Node { return Node{Raw: html} }

// Attr returns the value of the attribute key.
func (n Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether the class attribute contains name.
func (n Node) HasClass(name string) bool {
	v, _ := n.Attr("class")
	for _, c := range strings.Fields(v) {
		if c == name {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of that node.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the descendants of n, n included, that satisfy pred.
func (n Node) Find(pred func(Node) bool) []Node {
	var out []Node
	n.Walk(func(c Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// TextContent concatenates the text of every descendant text node.
func (n Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(c Node) bool {
		if c.Tag == "" {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}

// ByClass matches elements carrying the class name.
func ByClass(name string) func(Node) bool {
	return func(n Node) bool { return n.Tag != "" && n.HasClass(name) }
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(Node) bool {
	return func(n Node) bool { return n.Tag == tag }
}
