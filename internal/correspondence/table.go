// Package correspondence holds the caller-supplied rule tables relating
// article types, related-article types and history events.
//
// A table is accepted in two equivalent shapes and callers never need to
// pre-merge them:
//
//	# flat records
//	- article-type: correction
//	  related-article-type: corrected-article
//	  date-type: corrected
//
//	# article-type mapping
//	correction: [corrected-article]
//
// Lookups against an empty table expect nothing.
package correspondence

import (
	"sort"

	"github.com/samber/lo"
)

// Entry relates an article type to a related-article type and, optionally,
// to the history event that reference implies. An empty ArticleType applies
// the date rule to any article type without requiring the reference.
type Entry struct {
	ArticleType        string `yaml:"article-type" json:"article-type"`
	RelatedArticleType string `yaml:"related-article-type" json:"related-article-type"`
	DateType           string `yaml:"date-type,omitempty" json:"date-type,omitempty"`
}

// Table is an immutable set of correspondence entries.
type Table struct {
	entries []Entry
}

// FromRecords builds a table from flat records.
func FromRecords(records []Entry) Table {
	return Table{entries: append([]Entry(nil), records...)}
}

// FromMapping builds a table from an article-type to related-article-types
// mapping. Article types are visited in sorted order for stable lookups.
func FromMapping(m map[string][]string) Table {
	keys := lo.Keys(m)
	sort.Strings(keys)

	var entries []Entry
	for _, articleType := range keys {
		for _, relatedType := range m[articleType] {
			entries = append(entries, Entry{ArticleType: articleType, RelatedArticleType: relatedType})
		}
	}
	return Table{entries: entries}
}

// Merge concatenates tables in order.
func Merge(tables ...Table) Table {
	var entries []Entry
	for _, t := range tables {
		entries = append(entries, t.entries...)
	}
	return Table{entries: entries}
}

// Entries returns a copy of the table's entries.
func (t Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Empty reports whether the table has no entries.
func (t Table) Empty() bool {
	return len(t.entries) == 0
}

// ExpectedRelatedTypes lists, without duplicates, the related-article types
// an article type is expected to reference.
func (t Table) ExpectedRelatedTypes(articleType string) []string {
	if articleType == "" {
		return nil
	}
	matching := lo.Filter(t.entries, func(e Entry, _ int) bool {
		return e.ArticleType == articleType && e.RelatedArticleType != ""
	})
	return lo.Uniq(lo.Map(matching, func(e Entry, _ int) string {
		return e.RelatedArticleType
	}))
}

// AllowedRelatedTypes lists the related-article types an article type may
// reference: its expected types followed by the types any article may carry.
func (t Table) AllowedRelatedTypes(articleType string) []string {
	if articleType == "" {
		return nil
	}
	matching := lo.Filter(t.entries, func(e Entry, _ int) bool {
		return (e.ArticleType == articleType || e.ArticleType == "") && e.RelatedArticleType != ""
	})
	return lo.Uniq(lo.Map(matching, func(e Entry, _ int) string {
		return e.RelatedArticleType
	}))
}

// ExpectedDateTypes lists, without duplicates, the history events implied by
// the given related-article types.
func (t Table) ExpectedDateTypes(relatedTypes ...string) []string {
	matching := lo.Filter(t.entries, func(e Entry, _ int) bool {
		return e.DateType != "" && lo.Contains(relatedTypes, e.RelatedArticleType)
	})
	return lo.Uniq(lo.Map(matching, func(e Entry, _ int) string {
		return e.DateType
	}))
}

// ArticleTypes lists the article types that expect at least one reference.
func (t Table) ArticleTypes() []string {
	types := lo.Uniq(lo.FilterMap(t.entries, func(e Entry, _ int) (string, bool) {
		return e.ArticleType, e.ArticleType != "" && e.RelatedArticleType != ""
	}))
	sort.Strings(types)
	return types
}
