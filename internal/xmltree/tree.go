package xmltree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// Well-known namespace URIs for prefixed attribute lookups.
const (
	NamespaceXML   = "http://www.w3.org/XML/1998/namespace"
	NamespaceXLink = "http://www.w3.org/1999/xlink"
)

var knownPrefixes = map[string]string{
	"xml":   NamespaceXML,
	"xlink": NamespaceXLink,
}

// Parse reads a whole document and returns its root element.
// Any parse failure wraps jatsmeta.ErrMalformedXML.
func Parse(r io.Reader) (jatsmeta.Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", jatsmeta.ErrMalformedXML, err)
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return &Node{n: c}, nil
		}
	}
	return nil, fmt.Errorf("%w: document has no root element", jatsmeta.ErrMalformedXML)
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (jatsmeta.Node, error) {
	return Parse(bytes.NewReader(data))
}

// ParseString is Parse over a string, convenient in tests.
func ParseString(s string) (jatsmeta.Node, error) {
	return Parse(strings.NewReader(s))
}

// Node wraps an xmlquery node.
type Node struct {
	n *xmlquery.Node
}

// Name returns the element name, or "" for text nodes.
func (x *Node) Name() string {
	if x.n.Type != xmlquery.ElementNode {
		return ""
	}
	return x.n.Data
}

// Attr returns the value of an attribute, "" when absent. A "prefix:local"
// name matches by prefix or by the namespace the prefix is known for.
func (x *Node) Attr(name string) string {
	if x.n.Type != xmlquery.ElementNode {
		return ""
	}
	prefix, local, found := strings.Cut(name, ":")
	if !found {
		local, prefix = prefix, ""
	}
	uri := knownPrefixes[prefix]
	for _, a := range x.n.Attr {
		if a.Name.Local != local {
			continue
		}
		if prefix == "" {
			if a.Name.Space == "" {
				return a.Value
			}
			continue
		}
		if a.Name.Space == prefix || (uri != "" && (a.Name.Space == uri || a.NamespaceURI == uri)) {
			return a.Value
		}
	}
	return ""
}

// Text returns the concatenated text of the node and its descendants.
func (x *Node) Text() string {
	var b strings.Builder
	writeText(&b, x.n)
	return b.String()
}

func writeText(b *strings.Builder, n *xmlquery.Node) {
	switch n.Type {
	case xmlquery.TextNode, xmlquery.CharDataNode:
		b.WriteString(n.Data)
		return
	case xmlquery.ElementNode, xmlquery.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeText(b, c)
		}
	}
}

// Query evaluates an XPath expression relative to the node. An invalid
// expression matches nothing.
func (x *Node) Query(expr string) []jatsmeta.Node {
	found, err := xmlquery.QueryAll(x.n, expr)
	if err != nil {
		return nil
	}
	out := make([]jatsmeta.Node, 0, len(found))
	for _, f := range found {
		out = append(out, &Node{n: f})
	}
	return out
}

// Children returns child elements and text nodes in document order.
func (x *Node) Children() []jatsmeta.Node {
	var out []jatsmeta.Node
	for c := x.n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode, xmlquery.TextNode, xmlquery.CharDataNode:
			out = append(out, &Node{n: c})
		}
	}
	return out
}

// Verify Node implements the interface at compile time
var _ jatsmeta.Node = (*Node)(nil)
