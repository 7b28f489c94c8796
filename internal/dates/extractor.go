package dates

import (
	"sort"

	"github.com/vvka-141/jatsmeta/internal/scope"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// Dates holds the dates declared by one scope.
type Dates struct {
	publication []Date
	history     []Date
}

// Extract reads the publication and history dates of a scope. It never
// fails: missing containers simply yield no dates.
func Extract(s scope.Scope) Dates {
	var d Dates
	for _, meta := range s.MetadataNodes() {
		d.publication = append(d.publication, publicationDates(meta)...)
		d.history = append(d.history, historyDates(meta)...)
	}
	d.publication = disambiguate(d.publication)
	return d
}

func publicationDates(meta jatsmeta.Node) []Date {
	var out []Date
	for _, n := range meta.Query("./pub-date") {
		date := readDate(n)
		date.Type = ResolveDateType(n.Attr("date-type"), n.Attr("pub-type"))
		out = append(out, date)
	}
	return out
}

// disambiguate classifies a lone untyped date by the presence of a day:
// a complete date is the article's own, a partial one belongs to the issue.
// Dates left with neither fields nor type are dropped.
func disambiguate(found []Date) []Date {
	if len(found) == 1 && found[0].Type == "" {
		if found[0].Day != "" {
			found[0].Type = jatsmeta.DateTypePub
		} else {
			found[0].Type = jatsmeta.DateTypeCollection
		}
	}
	out := found[:0]
	for _, d := range found {
		if d.HasFields() || d.Type != "" {
			out = append(out, d)
		}
	}
	return out
}

func historyDates(meta jatsmeta.Node) []Date {
	var out []Date
	for _, n := range meta.Query("./history/date") {
		t := n.Attr("date-type")
		if t == "" {
			continue
		}
		date := readDate(n)
		date.Type = t
		out = append(out, date)
	}
	return out
}

// Publication returns the normalized publication dates in document order.
func (d Dates) Publication() []Date {
	return append([]Date(nil), d.publication...)
}

// ArticleDate returns the date of type pub, or nil.
func (d Dates) ArticleDate() *Date {
	return d.byType(jatsmeta.DateTypePub)
}

// CollectionDate returns the date of type collection, or nil.
func (d Dates) CollectionDate() *Date {
	return d.byType(jatsmeta.DateTypeCollection)
}

func (d Dates) byType(t string) *Date {
	for _, date := range d.publication {
		if date.Type == t {
			found := date
			return &found
		}
	}
	return nil
}

// History maps each event type to its date. When an event type repeats,
// the last occurrence wins; see DuplicateHistory.
func (d Dates) History() map[string]Date {
	out := make(map[string]Date, len(d.history))
	for _, date := range d.history {
		out[date.Type] = date
	}
	return out
}

// HistoryList returns history dates in document order, duplicates included.
func (d Dates) HistoryList() []Date {
	return append([]Date(nil), d.history...)
}

// DuplicateHistory returns the sorted event types declared more than once.
func (d Dates) DuplicateHistory() []string {
	seen := make(map[string]int, len(d.history))
	for _, date := range d.history {
		seen[date.Type]++
	}
	var dups []string
	for t, n := range seen {
		if n > 1 {
			dups = append(dups, t)
		}
	}
	sort.Strings(dups)
	return dups
}
