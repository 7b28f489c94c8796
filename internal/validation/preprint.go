package validation

import (
	"iter"

	"github.com/vvka-141/jatsmeta/internal/dates"
	"github.com/vvka-141/jatsmeta/internal/diagnostic"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

const expectedPreprintDate = "the preprint publication date"

// Preprint checks that a preprint reference and a preprint history date
// appear together. When neither is present there is nothing to check.
//
// Complete dates are compared as YYYY-MM-DD; a partial date is reported as
// the structured date itself.
func Preprint(subj Subject, hasPreprint bool, preprintDate *dates.Date, level jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
	return func(yield func(jatsmeta.Diagnostic) bool) {
		hasDate := preprintDate != nil
		if !hasPreprint && !hasDate {
			return
		}

		p := subj.params()
		p.Title = "Preprint"
		p.Item = "history"
		p.SubItem = `date[@date-type="preprint"]`
		p.ValidationType = jatsmeta.ValidationExist
		p.ErrorLevel = level

		var value any
		if hasDate {
			p.Data = *preprintDate
			if s, ok := preprintDate.Format(); ok {
				value = s
			} else {
				value = *preprintDate
			}
		}

		switch {
		case hasPreprint && hasDate:
			p.IsValid = true
			p.Expected = value
			p.Obtained = value
		case hasPreprint:
			p.Expected = expectedPreprintDate
			p.Obtained = nil
			p.Advice = `Provide the date: add <date date-type="preprint"> to history`
		default:
			p.Expected = nil
			p.Obtained = value
			p.Advice = `The article does not reference the preprint; add a related-article element: <related-article related-article-type="preprint" ext-link-type="doi" xlink:href="..."/>`
		}
		yield(diagnostic.Format(p))
	}
}
