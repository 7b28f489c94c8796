// Package related extracts related-article links per scope.
package related

import (
	"strings"

	"github.com/vvka-141/jatsmeta/internal/scope"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// RelatedArticle is one related-article element with its owning scope attached.
type RelatedArticle struct {
	ExtLinkType        string `json:"ext-link-type"`
	RelatedArticleType string `json:"related-article-type"`
	ID                 string `json:"id"`
	Href               string `json:"href"`
	Text               string `json:"text"`

	Parent            string `json:"parent"`
	ParentID          string `json:"parent_id"`
	ParentArticleType string `json:"parent_article_type"`
	ParentLang        string `json:"parent_lang"`
}

// DOI returns the link target when the link type declares a DOI.
func (r RelatedArticle) DOI() string {
	if strings.EqualFold(r.ExtLinkType, "doi") {
		return r.Href
	}
	return ""
}

// Extract returns the related-articles of one scope in document order.
// Repeated elements are reported once per occurrence.
func Extract(s scope.Scope) []RelatedArticle {
	var out []RelatedArticle
	for _, meta := range s.MetadataNodes() {
		for _, n := range meta.Query(".//related-article") {
			out = append(out, RelatedArticle{
				ExtLinkType:        n.Attr("ext-link-type"),
				RelatedArticleType: n.Attr("related-article-type"),
				ID:                 n.Attr("id"),
				Href:               n.Attr("xlink:href"),
				Text:               ResolveText(n),

				Parent:            s.Tag,
				ParentID:          s.ID,
				ParentArticleType: s.ArticleType,
				ParentLang:        s.Lang,
			})
		}
	}
	return out
}

// ExtractAll returns the related-articles of every scope of the document.
func ExtractAll(root jatsmeta.Node) []RelatedArticle {
	var out []RelatedArticle
	for s := range scope.Walk(root) {
		out = append(out, Extract(s)...)
	}
	return out
}

// Types returns the related-article-type of each article, skipping empty ones.
func Types(articles []RelatedArticle) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		if a.RelatedArticleType != "" {
			out = append(out, a.RelatedArticleType)
		}
	}
	return out
}

// HasType reports whether any article carries the given related-article-type.
func HasType(articles []RelatedArticle, t string) bool {
	for _, a := range articles {
		if a.RelatedArticleType == t {
			return true
		}
	}
	return false
}
