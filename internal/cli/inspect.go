package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/jatsmeta/internal/dates"
	"github.com/vvka-141/jatsmeta/internal/related"
	"github.com/vvka-141/jatsmeta/internal/scope"
)

var datesCmd = &cobra.Command{
	Use:   "dates <file>",
	Short: "Show the dates extracted from each scope of an article",
	Long: `Print, per scope (the article and each sub-article), the normalized
article and collection dates and the history events, as JSON.

Legacy pub-type values are normalized: epub becomes pub and epub-ppub
becomes collection. A lone date with any other pub-type is an article
date when it has a day and a collection date otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runDates,
}

var relatedCmd = &cobra.Command{
	Use:   "related <file>",
	Short: "List the related-article references of an article",
	Args:  cobra.ExactArgs(1),
	RunE:  runRelated,
}

func init() {
	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(relatedCmd)
}

type scopeDates struct {
	Parent            string                `json:"parent"`
	ParentID          string                `json:"parent_id"`
	ParentArticleType string                `json:"parent_article_type"`
	ParentLang        string                `json:"parent_lang"`
	ArticleDate       *dates.Date           `json:"article_date"`
	CollectionDate    *dates.Date           `json:"collection_date"`
	History           map[string]dates.Date `json:"history"`
}

func runDates(cmd *cobra.Command, args []string) error {
	root, err := readDocument(args[0])
	if err != nil {
		return err
	}

	out := []scopeDates{}
	for s := range scope.Walk(root) {
		d := dates.Extract(s)
		out = append(out, scopeDates{
			Parent:            s.Tag,
			ParentID:          s.ID,
			ParentArticleType: s.ArticleType,
			ParentLang:        s.Lang,
			ArticleDate:       d.ArticleDate(),
			CollectionDate:    d.CollectionDate(),
			History:           d.History(),
		})
	}
	return writeJSON(cmd.OutOrStdout(), out)
}

func runRelated(cmd *cobra.Command, args []string) error {
	root, err := readDocument(args[0])
	if err != nil {
		return err
	}
	articles := related.ExtractAll(root)
	if articles == nil {
		articles = []related.RelatedArticle{}
	}
	return writeJSON(cmd.OutOrStdout(), articles)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
