// Package scope enumerates the attribution units of an article document:
// the root article followed by every sub-article in document order.
package scope

import (
	"iter"

	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// Scope is the root article or one sub-article.
type Scope struct {
	Lang        string
	ArticleType string
	Tag         string
	ID          string // empty for the root article

	Node jatsmeta.Node
}

// IsRoot reports whether the scope is the main article.
func (s Scope) IsRoot() bool {
	return s.Tag == jatsmeta.TagArticle
}

// metadata container paths, relative to the scope node
const (
	rootMetaPath = "./front/article-meta"
	stubMetaPath = "./front-stub | ./front"
)

// MetadataNodes returns the containers holding the scope's own metadata.
// The root reads article-meta; a sub-article reads its front-stub (or front).
// Neither path descends into nested sub-articles.
func (s Scope) MetadataNodes() []jatsmeta.Node {
	if s.Node == nil {
		return nil
	}
	if s.IsRoot() {
		return s.Node.Query(rootMetaPath)
	}
	return s.Node.Query(stubMetaPath)
}

// Walk yields the root scope first and then each sub-article found anywhere
// below it, in document order.
func Walk(root jatsmeta.Node) iter.Seq[Scope] {
	return func(yield func(Scope) bool) {
		if root == nil {
			return
		}
		if !yield(newScope(root, jatsmeta.TagArticle)) {
			return
		}
		for _, sub := range root.Query(".//sub-article") {
			if !yield(newScope(sub, jatsmeta.TagSubArticle)) {
				return
			}
		}
	}
}

// All collects Walk into a slice.
func All(root jatsmeta.Node) []Scope {
	var out []Scope
	for s := range Walk(root) {
		out = append(out, s)
	}
	return out
}

func newScope(n jatsmeta.Node, tag string) Scope {
	s := Scope{
		Lang:        n.Attr("xml:lang"),
		ArticleType: n.Attr("article-type"),
		Tag:         tag,
		Node:        n,
	}
	if tag == jatsmeta.TagSubArticle {
		s.ID = n.Attr("id")
	}
	return s
}
