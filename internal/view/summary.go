package view

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// summaryPolicy keeps formatting elements without attributes. Other elements
// are unwrapped; script-like ones and foreign content go with their content.
var summaryPolicy = bluemonday.NewPolicy().
	AllowElements("p", "b", "i", "em", "strong", "br").
	SkipElementsContent("svg", "math", "template")

// sanitizeSummary reduces catalog-provided summary markup to summaryPolicy and
// returns it as detached nodes ready to append.
func sanitizeSummary(summary string) []*html.Node {
	if summary == "" {
		return nil
	}

	clean := summaryPolicy.Sanitize(summary)
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(clean), context)
	if err != nil {
		return []*html.Node{textNode(clean)}
	}
	return nodes
}
