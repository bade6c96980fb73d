// Package htmlquote removes quoted regions from HTML message bodies. Four
// structural, client-specific cutters and a checkpoint-based fallback each
// run on an independent copy of the parsed tree; the candidate that renders
// to the least plain text while still rendering to something wins.
package htmlquote

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func parseDocument(markup string) (*html.Node, error) {
	return html.Parse(strings.NewReader(markup))
}

// documentElement returns the root element of a parsed document, normally
// <html>.
func documentElement(doc *html.Node) *html.Node {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// cloneTree deep-copies a node and its subtree. The copy is detached: it
// has no parent or siblings.
func cloneTree(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if n.Attr != nil {
		clone.Attr = append([]html.Attribute(nil), n.Attr...)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneTree(c))
	}
	return clone
}

// render serializes a node to markup. Serialization failures yield "".
func render(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// leadingText returns the text immediately inside n, before its first
// non-text child.
func leadingText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil && c.Type == html.TextNode; c = c.NextSibling {
		b.WriteString(c.Data)
	}
	return b.String()
}

// appendLeadingText appends s to the text inside n before its first child.
func appendLeadingText(n *html.Node, s string) {
	if c := n.FirstChild; c != nil && c.Type == html.TextNode {
		c.Data += s
		return
	}
	n.InsertBefore(&html.Node{Type: html.TextNode, Data: s}, n.FirstChild)
}

// clearLeadingText removes the text nodes at the start of n's children.
func clearLeadingText(n *html.Node) {
	for c := n.FirstChild; c != nil && c.Type == html.TextNode; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

// appendTail appends s to the text that follows n, before its next sibling.
func appendTail(n *html.Node, s string) {
	if sib := n.NextSibling; sib != nil && sib.Type == html.TextNode {
		sib.Data += s
		return
	}
	if n.Parent != nil {
		n.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: s}, n.NextSibling)
	}
}

// clearTail removes the text nodes immediately following n.
func clearTail(n *html.Node) {
	for sib := n.NextSibling; sib != nil && sib.Type == html.TextNode; sib = n.NextSibling {
		n.Parent.RemoveChild(sib)
	}
}

func firstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func nextElementSibling(n *html.Node) *html.Node {
	for c := n.NextSibling; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func prevElementSibling(n *html.Node) *html.Node {
	for c := n.PrevSibling; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// elementChildren returns the direct element children of n with the given
// tag.
func elementChildren(n *html.Node, tag atom.Atom) []*html.Node {
	var out []*html.Node
	for c := firstElementChild(n); c != nil; c = nextElementSibling(c) {
		if c.DataAtom == tag {
			out = append(out, c)
		}
	}
	return out
}

// removeWithPlaceholder detaches n from its parent, leaving the placeholder
// in its place when one is supplied.
func removeWithPlaceholder(n, placeholder *html.Node) {
	if n.Parent == nil {
		return
	}
	if placeholder != nil {
		n.Parent.InsertBefore(placeholder, n)
	}
	n.Parent.RemoveChild(n)
}
