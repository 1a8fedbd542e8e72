// Package html extracts the textual content of HTML fragments into skiprope
// ropes.
package html

import (
	"io"

	"github.com/npillmayer/skiprope"
	"golang.org/x/net/html"
)

// InnerText creates a rope for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
func InnerText(n *html.Node) (*skiprope.Rope, error) {
	if n == nil {
		return nil, skiprope.ErrIllegalArguments
	}
	rope := skiprope.New()
	collectText(n, rope)
	return rope, nil
}

func collectText(n *html.Node, rope *skiprope.Rope) {
	if n.Type == html.TextNode {
		err := rope.Insert(rope.CharCount(), n.Data)
		assertOK(err)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, rope)
	}
}

// TextFromHTML creates a rope from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*skiprope.Rope, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	rope := skiprope.New()
	for _, n := range nodes {
		collectText(n, rope)
	}
	return rope, nil
}

// assertOK guards appends at CharCount(), which cannot be out of bounds.
func assertOK(err error) {
	if err != nil {
		panic("skiprope/html: " + err.Error())
	}
}
