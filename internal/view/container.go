package view

import (
	"strings"

	"golang.org/x/net/html"
)

const hiddenStyle = "display: none;"

// Container is a handle on one element of the page whose children are
// replaced wholesale by the renderer.
type Container struct {
	node *html.Node
}

// NewContainer wraps an element node. It is mostly useful in tests where a
// container is built without a full page.
func NewContainer(node *html.Node) *Container {
	return &Container{node: node}
}

// Node returns the underlying element.
func (c *Container) Node() *html.Node {
	return c.node
}

// Empty removes every child of the container.
func (c *Container) Empty() {
	for child := c.node.FirstChild; child != nil; {
		next := child.NextSibling
		c.node.RemoveChild(child)
		child = next
	}
}

// Append adds node as the last child of the container.
func (c *Container) Append(node *html.Node) {
	c.node.AppendChild(node)
}

// Len counts the element children of the container.
func (c *Container) Len() int {
	n := 0
	for child := c.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			n++
		}
	}
	return n
}

// Hide sets an inline display: none.
func (c *Container) Hide() {
	setAttr(c.node, "style", hiddenStyle)
}

// Show drops the inline style set by Hide.
func (c *Container) Show() {
	removeAttr(c.node, "style")
}

// Hidden reports whether the container carries an inline display: none.
func (c *Container) Hidden() bool {
	style, ok := attr(c.node, "style")
	if !ok {
		return false
	}
	return strings.Contains(strings.ReplaceAll(style, " ", ""), "display:none")
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}
