package validation

import (
	"fmt"
	"iter"

	"github.com/vvka-141/jatsmeta/internal/dates"
	"github.com/vvka-141/jatsmeta/internal/diagnostic"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// ArticleDatePresence checks that the scope declares its own publication date.
func ArticleDatePresence(subj Subject, d dates.Dates, level jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
	return func(yield func(jatsmeta.Diagnostic) bool) {
		p := subj.params()
		p.Title = "Article publication date"
		p.Item = "pub-date"
		p.SubItem = `pub-date[@date-type="pub"]`
		p.ValidationType = jatsmeta.ValidationExist
		p.Expected = "the article publication date"
		p.ErrorLevel = level

		if date := d.ArticleDate(); date != nil {
			p.IsValid = true
			p.Obtained = date.String()
			p.Expected = date.String()
			p.Data = *date
		} else {
			p.Advice = `Add <pub-date publication-format="electronic" date-type="pub"> with day, month and year`
		}
		yield(diagnostic.Format(p))
	}
}

// DateCompleteness checks that a date has year, month and day and that they
// name a real calendar day.
func DateCompleteness(subj Subject, item string, date dates.Date, level jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
	return func(yield func(jatsmeta.Diagnostic) bool) {
		p := subj.params()
		p.Title = "Date completeness"
		p.Item = item
		p.SubItem = date.Type
		p.ValidationType = jatsmeta.ValidationMatch
		p.Expected = "a complete and valid date (YYYY-MM-DD)"
		p.Obtained = date.String()
		p.Data = date
		p.ErrorLevel = level

		if _, err := date.Time(); err != nil {
			p.Advice = fmt.Sprintf("Fix %s date-type=%q: %v", item, date.Type, err)
		} else {
			p.IsValid = true
			s, _ := date.Format()
			p.Expected = s
			p.Obtained = s
		}
		yield(diagnostic.Format(p))
	}
}
