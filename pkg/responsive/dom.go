package responsive

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// walk visits every node in the tree depth-first, document order.
func walk(node *html.Node, visit func(*html.Node)) {
	if node == nil {
		return
	}
	visit(node)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

// elementsByAtom collects elements with the given tag, in document order.
func elementsByAtom(root *html.Node, tag atom.Atom) []*html.Node {
	var out []*html.Node
	walk(root, func(node *html.Node) {
		if node.Type == html.ElementNode && node.DataAtom == tag {
			out = append(out, node)
		}
	})
	return out
}

// elementsByClass collects elements carrying the class, in document order.
func elementsByClass(root *html.Node, class string) []*html.Node {
	var out []*html.Node
	walk(root, func(node *html.Node) {
		if node.Type == html.ElementNode && hasClass(node, class) {
			out = append(out, node)
		}
	})
	return out
}

func hasClass(node *html.Node, class string) bool {
	for _, field := range strings.Fields(attrValue(node, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func attrValue(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func setAttr(node *html.Node, key, value string) {
	for idx, attr := range node.Attr {
		if attr.Key == key {
			node.Attr[idx].Val = value
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: key, Val: value})
}

// textContent concatenates the text nodes beneath node.
func textContent(node *html.Node) string {
	var builder strings.Builder
	walk(node, func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
	})
	return builder.String()
}

// closestAncestor returns the nearest ancestor element satisfying pred, or
// nil.
func closestAncestor(node *html.Node, pred func(*html.Node) bool) *html.Node {
	for parent := node.Parent; parent != nil; parent = parent.Parent {
		if parent.Type == html.ElementNode && pred(parent) {
			return parent
		}
	}
	return nil
}

// styleAttachPoint returns the element new style blocks are appended to:
// head when present, else body, else the root element. Nil when the tree has
// no element at all.
func styleAttachPoint(root *html.Node) *html.Node {
	if head := firstElement(root, atom.Head); head != nil {
		return head
	}
	if body := firstElement(root, atom.Body); body != nil {
		return body
	}
	var first *html.Node
	walk(root, func(node *html.Node) {
		if first == nil && node.Type == html.ElementNode {
			first = node
		}
	})
	return first
}

func firstElement(root *html.Node, tag atom.Atom) *html.Node {
	var found *html.Node
	walk(root, func(node *html.Node) {
		if found == nil && node.Type == html.ElementNode && node.DataAtom == tag {
			found = node
		}
	})
	return found
}

// newStyleElement builds a detached <style> element with the given id and
// rule text.
func newStyleElement(id, cssText string) *html.Node {
	style := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr: []html.Attribute{
			{Key: "id", Val: id},
			{Key: "type", Val: "text/css"},
		},
	}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: cssText})
	return style
}

func detach(node *html.Node) {
	if node != nil && node.Parent != nil {
		node.Parent.RemoveChild(node)
	}
}
