// Package engine wires the walker, extractors and validators over one
// parsed document.
//
// An Engine is configured once through Options and holds no state between
// calls, so the same Engine may validate any number of documents, from any
// number of goroutines.
package engine

import (
	"fmt"
	"iter"

	"github.com/vvka-141/jatsmeta/internal/correspondence"
	"github.com/vvka-141/jatsmeta/internal/dates"
	"github.com/vvka-141/jatsmeta/internal/logging"
	"github.com/vvka-141/jatsmeta/internal/related"
	"github.com/vvka-141/jatsmeta/internal/scope"
	"github.com/vvka-141/jatsmeta/internal/validation"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// Granularity selects which related-article types a scope is checked against.
type Granularity string

const (
	// GranularityScope uses only the references declared inside the scope.
	GranularityScope Granularity = "scope"
	// GranularityDocument uses every reference found in the document.
	GranularityDocument Granularity = "document"
)

// ParseGranularity accepts "scope", "document" or "" (scope).
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "", GranularityScope:
		return GranularityScope, nil
	case GranularityDocument:
		return GranularityDocument, nil
	}
	return "", fmt.Errorf("unknown granularity %q (expected scope or document): %w", s, jatsmeta.ErrInvalidConfig)
}

// Options is the explicit configuration of an Engine.
type Options struct {
	// Table is the correspondence table. An empty table disables every
	// correspondence check but leaves the date checks running.
	Table correspondence.Table

	// Levels overrides the error level of individual rules.
	Levels map[validation.Rule]jatsmeta.Severity

	// Disabled rules yield no diagnostics.
	Disabled []validation.Rule

	Granularity Granularity

	// Logger receives verbose traces of scope enumeration. Nil discards.
	Logger jatsmeta.Logger
}

// DefaultLevels returns the level each rule reports when not overridden.
func DefaultLevels() map[validation.Rule]jatsmeta.Severity {
	levels := make(map[validation.Rule]jatsmeta.Severity, len(validation.Rules()))
	for _, r := range validation.Rules() {
		levels[r] = jatsmeta.SevError
	}
	levels[validation.RuleDuplicateHistory] = jatsmeta.SevWarning
	levels[validation.RuleDateCompleteness] = jatsmeta.SevWarning
	return levels
}

// Engine validates documents. It is safe for concurrent use.
type Engine struct {
	table       correspondence.Table
	levels      map[validation.Rule]jatsmeta.Severity
	disabled    map[validation.Rule]bool
	granularity Granularity
	logger      jatsmeta.Logger
}

// New builds an Engine from opts, filling unset fields with defaults.
func New(opts Options) *Engine {
	levels := DefaultLevels()
	for r, l := range opts.Levels {
		if l != "" {
			levels[r] = l
		}
	}
	disabled := make(map[validation.Rule]bool, len(opts.Disabled))
	for _, r := range opts.Disabled {
		disabled[r] = true
	}
	granularity := opts.Granularity
	if granularity == "" {
		granularity = GranularityScope
	}
	var logger jatsmeta.Logger = logging.NewNullLogger()
	if opts.Logger != nil {
		logger = opts.Logger
	}
	return &Engine{
		table:       opts.Table,
		levels:      levels,
		disabled:    disabled,
		granularity: granularity,
		logger:      logger,
	}
}

// Level returns the effective error level of a rule.
func (e *Engine) Level(r validation.Rule) jatsmeta.Severity {
	return e.levels[r]
}

// Granularity returns the configured granularity.
func (e *Engine) Granularity() Granularity {
	return e.granularity
}

// Validate lazily yields every diagnostic for the document rooted at root,
// scope by scope in document order. The tree is never modified.
func (e *Engine) Validate(root jatsmeta.Node) iter.Seq[jatsmeta.Diagnostic] {
	return func(yield func(jatsmeta.Diagnostic) bool) {
		if root == nil {
			return
		}
		var documentRefs []related.RelatedArticle
		if e.granularity == GranularityDocument {
			documentRefs = related.ExtractAll(root)
		}
		for s := range scope.Walk(root) {
			e.logger.Verbose("scope %s id=%q article-type=%q lang=%q", s.Tag, s.ID, s.ArticleType, s.Lang)
			if !e.validateScope(s, documentRefs, yield) {
				return
			}
		}
	}
}

func (e *Engine) validateScope(s scope.Scope, documentRefs []related.RelatedArticle, yield func(jatsmeta.Diagnostic) bool) bool {
	subj := validation.SubjectOf(s)
	refs := related.Extract(s)
	found := dates.Extract(s)

	typeRefs := refs
	if e.granularity == GranularityDocument {
		typeRefs = documentRefs
	}
	// A scope with typed references of its own is checked item by item,
	// otherwise once against every type it can see.
	typed := len(related.Types(refs)) > 0

	var preprintDate *dates.Date
	if d, ok := found.History()[jatsmeta.DateTypePreprint]; ok {
		preprintDate = &d
	}

	checks := []struct {
		rule validation.Rule
		seq  func(jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic]
	}{
		{validation.RuleRelatedArticleType, func(l jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
			if typed {
				return none
			}
			return validation.ArticleTypeCorrespondence(subj, typeRefs, e.table, l)
		}},
		{validation.RuleRelatedArticleItem, func(l jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
			if !typed {
				return none
			}
			return validation.RelatedArticleTypes(refs, e.table, l)
		}},
		{validation.RuleHistoryEvents, func(l jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
			return validation.HistoryCorrespondence(subj, related.Types(typeRefs), found.History(), e.table, l)
		}},
		{validation.RulePreprint, func(l jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
			return validation.Preprint(subj, related.HasType(refs, jatsmeta.RelatedTypePreprint), preprintDate, l)
		}},
		{validation.RuleDuplicateHistory, func(l jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
			return validation.DuplicateHistory(subj, found.HistoryList(), l)
		}},
		{validation.RuleArticleDate, func(l jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
			if !s.IsRoot() {
				return none
			}
			return validation.ArticleDatePresence(subj, found, l)
		}},
		{validation.RuleDateCompleteness, func(l jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
			return completeness(subj, found, l)
		}},
	}

	for _, c := range checks {
		if e.disabled[c.rule] {
			continue
		}
		for d := range c.seq(e.levels[c.rule]) {
			if !yield(d) {
				return false
			}
		}
	}
	return true
}

func completeness(subj validation.Subject, found dates.Dates, level jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
	return func(yield func(jatsmeta.Diagnostic) bool) {
		if d := found.ArticleDate(); d != nil {
			for diag := range validation.DateCompleteness(subj, "pub-date", *d, level) {
				if !yield(diag) {
					return
				}
			}
		}
		for _, d := range found.HistoryList() {
			for diag := range validation.DateCompleteness(subj, "history", d, level) {
				if !yield(diag) {
					return
				}
			}
		}
	}
}

func none(func(jatsmeta.Diagnostic) bool) {}
