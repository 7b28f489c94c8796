package engine

import (
	"github.com/vvka-141/jatsmeta/internal/dates"
	"github.com/vvka-141/jatsmeta/internal/scope"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// ScopedHistory is the history mapping of one scope with its attribution.
type ScopedHistory struct {
	Parent            string                `json:"parent"`
	ParentID          string                `json:"parent_id"`
	ParentArticleType string                `json:"parent_article_type"`
	ParentLang        string                `json:"parent_lang"`
	History           map[string]dates.Date `json:"history"`
}

// HistoryByScope returns one history mapping per scope, in document order.
// Scopes are independent: a sub-article never inherits the root's history.
func (e *Engine) HistoryByScope(root jatsmeta.Node) []ScopedHistory {
	var out []ScopedHistory
	for s := range scope.Walk(root) {
		out = append(out, ScopedHistory{
			Parent:            s.Tag,
			ParentID:          s.ID,
			ParentArticleType: s.ArticleType,
			ParentLang:        s.Lang,
			History:           dates.Extract(s).History(),
		})
	}
	return out
}
