package validation

import (
	"fmt"
	"iter"
	"strings"

	"github.com/samber/lo"

	"github.com/vvka-141/jatsmeta/internal/correspondence"
	"github.com/vvka-141/jatsmeta/internal/diagnostic"
	"github.com/vvka-141/jatsmeta/internal/related"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// ArticleTypeCorrespondence checks that at least one of the related-article
// types expected for the subject's article type is present in articles.
// Article types without expectations yield nothing.
func ArticleTypeCorrespondence(subj Subject, articles []related.RelatedArticle, table correspondence.Table, level jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
	return func(yield func(jatsmeta.Diagnostic) bool) {
		expected := table.ExpectedRelatedTypes(subj.ParentArticleType)
		if len(expected) == 0 {
			return
		}
		obtained := lo.Uniq(related.Types(articles))
		matched := lo.Filter(obtained, func(t string, _ int) bool {
			return lo.Contains(expected, t)
		})

		p := subj.params()
		p.Title = "Related article type"
		p.Item = "related-article"
		p.SubItem = "related-article-type"
		p.ValidationType = jatsmeta.ValidationMatch
		p.Expected = expected
		p.ErrorLevel = level
		p.Data = articles

		if len(matched) > 0 {
			p.IsValid = true
			p.Obtained = matched
			yield(diagnostic.Format(p))
			return
		}

		p.Obtained = obtained
		p.Advice = fmt.Sprintf(
			"The article-type %q requires a related-article of type %s. Add %s",
			subj.ParentArticleType, strings.Join(expected, " or "), relatedArticleHints(expected))
		yield(diagnostic.Format(p))
	}
}

// RelatedArticleTypes compares each related-article's type with the list
// expected for the article type that owns it, one diagnostic per element.
// Types the table allows for any article type also pass.
func RelatedArticleTypes(articles []related.RelatedArticle, table correspondence.Table, level jatsmeta.Severity) iter.Seq[jatsmeta.Diagnostic] {
	return func(yield func(jatsmeta.Diagnostic) bool) {
		for _, a := range articles {
			if a.RelatedArticleType == "" {
				continue
			}
			expected := table.ExpectedRelatedTypes(a.ParentArticleType)
			if len(expected) == 0 {
				continue
			}
			valid := lo.Contains(table.AllowedRelatedTypes(a.ParentArticleType), a.RelatedArticleType)
			d := diagnostic.Format(diagnostic.Params{
				Title:             "Related article type match",
				Parent:            a.Parent,
				ParentID:          a.ParentID,
				ParentArticleType: a.ParentArticleType,
				ParentLang:        a.ParentLang,
				Item:              "related-article",
				SubItem:           "related-article-type",
				ValidationType:    jatsmeta.ValidationMatch,
				IsValid:           valid,
				Expected:          expected,
				Obtained:          a.RelatedArticleType,
				Advice: fmt.Sprintf(
					"The article-type %q does not match the related-article-type %q. Use one of: %s",
					a.ParentArticleType, a.RelatedArticleType, strings.Join(expected, ", ")),
				Data:       a,
				ErrorLevel: level,
			})
			if !yield(d) {
				return
			}
		}
	}
}

func relatedArticleHints(types []string) string {
	hints := lo.Map(types, func(t string, _ int) string {
		return fmt.Sprintf(`<related-article related-article-type="%s" ext-link-type="doi" xlink:href="..."/>`, t)
	})
	return strings.Join(hints, " or ")
}
