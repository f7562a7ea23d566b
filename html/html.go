/*
Package html renders the tree structure behind an ordered set as HTML.

The tree is rendered as nested unordered lists. Every tree node becomes a list
item carrying the node's key, the height of its subtree and the cached subtree
maximum:

	<ul class="avltree">
	  <li data-height="2" data-max="3"><span class="key">2</span>
	    <ul>
	      <li data-height="1" data-max="1"><span class="key">1</span></li>
	      <li data-height="1" data-max="3"><span class="key">3</span></li>
	    </ul>
	  </li>
	</ul>

(indentation added for readability). An inner node always has two list items
for its children; an absent child is rendered as an empty item of class
"empty".
*/
package html

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/ordset"
	"github.com/npillmayer/ordset/avltree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'ordset'
func tracer() tracing.Trace {
	return tracing.Select("ordset")
}

// Render writes the tree structure of s to w as an HTML fragment.
func Render[T any](w io.Writer, s *ordset.Set[T]) error {
	if w == nil || s == nil {
		return ordset.ErrIllegalArguments
	}
	if err := html.Render(w, Node(s)); err != nil {
		tracer().Errorf("set HTML: %s", err.Error())
		return err
	}
	return nil
}

// Node creates an HTML element node for the tree structure of s.
// The element is a <ul> of class "avltree", which is empty for an empty set.
func Node[T any](s *ordset.Set[T]) *html.Node {
	ul := element(atom.Ul, html.Attribute{Key: "class", Val: "avltree"})
	if root := s.Root(); root != nil {
		ul.AppendChild(item(root))
	}
	return ul
}

func item[T any](n *avltree.Node[T]) *html.Node {
	li := element(atom.Li,
		html.Attribute{Key: "data-height", Val: strconv.Itoa(n.Height())},
		html.Attribute{Key: "data-max", Val: fmt.Sprint(n.MaxValue())},
	)
	key := element(atom.Span, html.Attribute{Key: "class", Val: "key"})
	key.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(n.Key())})
	li.AppendChild(key)
	if n.Left() == nil && n.Right() == nil {
		return li
	}
	ul := element(atom.Ul)
	for _, child := range []*avltree.Node[T]{n.Left(), n.Right()} {
		if child == nil {
			ul.AppendChild(element(atom.Li, html.Attribute{Key: "class", Val: "empty"}))
			continue
		}
		ul.AppendChild(item(child))
	}
	li.AppendChild(ul)
	return li
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// Keys reads an HTML fragment produced by Render and returns the key labels
// of the tree nodes in ascending (in-order) sequence.
func Keys(input io.Reader) ([]string, error) {
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, n := range nodes {
		if n.Type == html.ElementNode && n.DataAtom == atom.Ul && hasClass(n, "avltree") {
			for li := n.FirstChild; li != nil; li = li.NextSibling {
				collectKeys(li, &keys)
			}
		}
	}
	return keys, nil
}

// collectKeys appends the keys of the subtree rendered as list item li,
// left subtree first.
func collectKeys(li *html.Node, keys *[]string) {
	if li.Type != html.ElementNode || li.DataAtom != atom.Li || hasClass(li, "empty") {
		return
	}
	var key string
	var children *html.Node
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.DataAtom == atom.Span && hasClass(c, "key"):
			key = innerText(c)
		case c.DataAtom == atom.Ul:
			children = c
		}
	}
	var left, right *html.Node
	if children != nil {
		for c := children.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || c.DataAtom != atom.Li {
				continue
			}
			if left == nil {
				left = c
			} else if right == nil {
				right = c
			}
		}
	}
	if left != nil {
		collectKeys(left, keys)
	}
	*keys = append(*keys, key)
	if right != nil {
		collectKeys(right, keys)
	}
}

func innerText(n *html.Node) string {
	var s string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			s += c.Data
		} else {
			s += innerText(c)
		}
	}
	return s
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" && a.Val == class {
			return true
		}
	}
	return false
}
