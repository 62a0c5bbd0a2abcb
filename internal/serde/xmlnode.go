// Package serde implements the bidirectional XML <-> docmodel.Document
// conversion of spec.md §4.A. Consistency, not fidelity, is the contract:
// if both the pristine and the edited tab folder traverse the same
// XML -> Document path, systematic losses cancel out of the reconciler's
// diff (spec.md §4.A "Responsibility").
package serde

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// node is a generic XML tree element. document.xml's content model mixes
// text and inline elements (a paragraph is text interleaved with <b>, <a>,
// chips, ...), which doesn't fit encoding/xml's struct-tag unmarshaling
// cleanly; parsing into this generic tree first, then walking it with a
// semantic pass (decode.go), is the straightforward approach.
type node struct {
	Tag      string
	Attrs    map[string]string
	Children []*node
	// Text holds literal character data that appears as a direct child of
	// this node; its interleaving with Children is recorded in order.
	Text string
	// Line holds the decoder's input byte offset just after the opening tag
	// (see approxLine), not a line count; it is used to point validation
	// errors at an offending element (spec.md §4.A).
	Line int

	// order records the interleaving of text runs and child elements as
	// they appeared in the source, since Children and Text alone lose
	// ordering information for mixed content.
	order []orderedItem
}

type orderedItem struct {
	isText bool
	text   string
	child  *node
}

// parseXML parses r into a tree rooted at the outermost element. Whatever
// encoding the file declares (or fails to declare — an agent's editor may
// save as Latin-1 or UTF-16 without updating the prolog), CharsetReader
// normalizes it to UTF-8 before encoding/xml ever sees a byte of it.
func parseXML(r io.Reader) (*node, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel

	var stack []*node
	var root *node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedXMLError{Line: approxLine(dec), Cause: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{Tag: t.Name.Local, Attrs: map[string]string{}, Line: approxLine(dec)}
			for _, a := range t.Attr {
				n.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
				parent.order = append(parent.order, orderedItem{child: n})
			} else {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, &MalformedXMLError{Line: approxLine(dec), Cause: fmt.Errorf("unexpected end element %q", t.Name.Local)}
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			cur := stack[len(stack)-1]
			// NFC-normalize so a combining-mark variant an agent's editor
			// introduced (e.g. "e" + U+0301 vs. precomposed "é") doesn't
			// register as a spurious reconciler diff (spec.md §4.A).
			text := norm.NFC.String(string(t))
			cur.Text += text
			cur.order = append(cur.order, orderedItem{isText: true, text: text})
		}
	}
	if root == nil {
		return nil, &MalformedXMLError{Cause: fmt.Errorf("empty document")}
	}
	return root, nil
}

// approxLine returns the decoder's current input byte offset, which stands
// in for a line number in error reports; it is not a count of lines.
func approxLine(dec *xml.Decoder) int {
	// encoding/xml doesn't expose a line counter directly; InputOffset is
	// the best available signal and is reported as-is.
	return int(dec.InputOffset())
}

// child returns the first direct child element with the given tag, or nil.
func (n *node) child(tag string) *node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// childrenTag returns every direct child element with the given tag.
func (n *node) childrenTag(tag string) []*node {
	var out []*node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// attr returns an attribute value, or "".
func (n *node) attr(name string) string {
	return n.Attrs[name]
}

// fullText concatenates all CharData within the node recursively, used for
// the content-newline validation check (spec.md §4.A).
func (n *node) fullText() string {
	var b strings.Builder
	for _, item := range n.order {
		if item.isText {
			b.WriteString(item.text)
		} else {
			b.WriteString(item.child.fullText())
		}
	}
	return b.String()
}
