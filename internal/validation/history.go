package validation

import (
	"fmt"
	"iter"
	"strings"

	"github.com/samber/lo"

	"github.com/vvka-141/jatsmeta/internal/correspondence"
	"github.com/vvka-141/jatsmeta/internal/dates"
	"github.com/vvka-141/jatsmeta/internal/diagnostic"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// HistoryCorrespondence checks that the history events implied by the
// related-article types present are all declared. Missing events are
// reported together in a single diagnostic.
func HistoryCorrespondence(subj Subject, relatedTypes []string, history map[string]dates.Date, table correspondence.Table, level jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
	return func(yield func(jatsmeta.Diagnostic) bool) {
		required := table.ExpectedDateTypes(relatedTypes...)
		if len(required) == 0 {
			return
		}
		if history == nil {
			history = map[string]dates.Date{}
		}
		missing := lo.Filter(required, func(t string, _ int) bool {
			_, ok := history[t]
			return !ok
		})

		p := subj.params()
		p.Title = "History dates for related articles"
		p.Item = "history"
		p.SubItem = "date"
		p.ValidationType = jatsmeta.ValidationExist
		p.IsValid = len(missing) == 0
		p.Expected = required
		p.Obtained = history
		p.Data = history
		p.ErrorLevel = level

		hints := lo.Map(missing, func(t string, _ int) string {
			return fmt.Sprintf(`<date date-type="%s">`, t)
		})
		p.Advice = "Provide the missing history dates: " + strings.Join(hints, ", ")
		yield(diagnostic.Format(p))
	}
}

// DuplicateHistory warns about history event types declared more than once.
// Only the last occurrence is kept by extraction, so earlier ones are hidden.
func DuplicateHistory(subj Subject, list []dates.Date, level jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
	return func(yield func(jatsmeta.Diagnostic) bool) {
		groups := lo.GroupBy(list, func(d dates.Date) string { return d.Type })
		for _, t := range lo.Uniq(lo.Map(list, func(d dates.Date, _ int) string { return d.Type })) {
			occurrences := groups[t]
			if len(occurrences) < 2 {
				continue
			}
			p := subj.params()
			p.Title = "Duplicated history date"
			p.Item = "history"
			p.SubItem = t
			p.ValidationType = jatsmeta.ValidationExist
			p.Expected = fmt.Sprintf("one <date date-type=%q>", t)
			p.Obtained = fmt.Sprintf("%d <date date-type=%q>", len(occurrences), t)
			p.Advice = fmt.Sprintf("Keep a single <date date-type=%q> in history", t)
			p.Data = occurrences
			p.ErrorLevel = level
			if !yield(diagnostic.Format(p)) {
				return
			}
		}
	}
}
