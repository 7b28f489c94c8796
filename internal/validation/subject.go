package validation

import (
	"github.com/vvka-141/jatsmeta/internal/diagnostic"
	"github.com/vvka-141/jatsmeta/internal/scope"
)

// Subject is the attribution attached to every diagnostic of a scope.
type Subject struct {
	Parent            string
	ParentID          string
	ParentArticleType string
	ParentLang        string
}

// SubjectOf derives the attribution of a scope.
func SubjectOf(s scope.Scope) Subject {
	return Subject{
		Parent:            s.Tag,
		ParentID:          s.ID,
		ParentArticleType: s.ArticleType,
		ParentLang:        s.Lang,
	}
}

func (s Subject) params() diagnostic.Params {
	return diagnostic.Params{
		Parent:            s.Parent,
		ParentID:          s.ParentID,
		ParentArticleType: s.ParentArticleType,
		ParentLang:        s.ParentLang,
	}
}

// Rule names a validator for per-rule error level configuration.
type Rule string

const (
	RuleRelatedArticleType Rule = "related-article-type"
	RuleRelatedArticleItem Rule = "related-article-item"
	RuleHistoryEvents      Rule = "history-events"
	RulePreprint           Rule = "preprint"
	RuleDuplicateHistory   Rule = "duplicate-history"
	RuleArticleDate        Rule = "article-date"
	RuleDateCompleteness   Rule = "date-completeness"
)

// Rules lists every rule in evaluation order.
func Rules() []Rule {
	return []Rule{
		RuleRelatedArticleType,
		RuleRelatedArticleItem,
		RuleHistoryEvents,
		RulePreprint,
		RuleDuplicateHistory,
		RuleArticleDate,
		RuleDateCompleteness,
	}
}
