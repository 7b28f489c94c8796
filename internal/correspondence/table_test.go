package correspondence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecords_Lookups(t *testing.T) {
	table := FromRecords([]Entry{
		{ArticleType: "correction", RelatedArticleType: "corrected-article", DateType: "corrected"},
		{ArticleType: "correction", RelatedArticleType: "corrected-article", DateType: "received"},
		{ArticleType: "retraction", RelatedArticleType: "retracted-article", DateType: "retracted"},
		{RelatedArticleType: "preprint", DateType: "preprint"},
	})

	assert.Equal(t, []string{"corrected-article"}, table.ExpectedRelatedTypes("correction"))
	assert.Empty(t, table.ExpectedRelatedTypes("research-article"))
	assert.Empty(t, table.ExpectedRelatedTypes(""), "an empty article type never matches the any-type entries")

	assert.Equal(t, []string{"corrected", "received"}, table.ExpectedDateTypes("corrected-article"))
	assert.ElementsMatch(t, []string{"preprint", "retracted"}, table.ExpectedDateTypes("retracted-article", "preprint"))
	assert.Empty(t, table.ExpectedDateTypes())

	assert.Equal(t, []string{"correction", "retraction"}, table.ArticleTypes())
}

func TestAllowedRelatedTypes_IncludesAnyTypeEntries(t *testing.T) {
	table := FromRecords([]Entry{
		{RelatedArticleType: "preprint", DateType: "preprint"},
		{ArticleType: "correction", RelatedArticleType: "corrected-article"},
		{ArticleType: "retraction", RelatedArticleType: "retracted-article"},
	})

	assert.Equal(t, []string{"preprint", "corrected-article"}, table.AllowedRelatedTypes("correction"))
	assert.Equal(t, []string{"preprint"}, table.AllowedRelatedTypes("research-article"))
	assert.Empty(t, table.AllowedRelatedTypes(""))
	assert.Equal(t, []string{"corrected-article"}, table.ExpectedRelatedTypes("correction"))
}

func TestFromMapping(t *testing.T) {
	table := FromMapping(map[string][]string{
		"retraction": {"retracted-article"},
		"correction": {"corrected-article", "commentary-article"},
	})

	assert.Equal(t, []string{"corrected-article", "commentary-article"}, table.ExpectedRelatedTypes("correction"))
	assert.Empty(t, table.ExpectedDateTypes("corrected-article"), "the mapping shape carries no history rules")
	assert.Equal(t, "correction", table.Entries()[0].ArticleType, "mapping keys are visited in sorted order")
}

func TestMerge_BothShapes(t *testing.T) {
	table := Merge(
		FromMapping(map[string][]string{"correction": {"corrected-article"}}),
		FromRecords([]Entry{{ArticleType: "correction", RelatedArticleType: "corrected-article", DateType: "corrected"}}),
	)

	assert.Equal(t, []string{"corrected-article"}, table.ExpectedRelatedTypes("correction"))
	assert.Equal(t, []string{"corrected"}, table.ExpectedDateTypes("corrected-article"))
	assert.Len(t, table.Entries(), 2)
}

func TestEmptyTable(t *testing.T) {
	var table Table
	assert.True(t, table.Empty())
	assert.Empty(t, table.ExpectedRelatedTypes("correction"))
	assert.Empty(t, table.ExpectedDateTypes("corrected-article"))
}

func TestLoad_Records(t *testing.T) {
	table, err := Load(strings.NewReader(`
- article-type: correction
  related-article-type: corrected-article
  date-type: corrected
`))
	require.NoError(t, err)
	assert.Equal(t, []Entry{{ArticleType: "correction", RelatedArticleType: "corrected-article", DateType: "corrected"}}, table.Entries())
}

func TestLoad_Mapping(t *testing.T) {
	table, err := Load(strings.NewReader(`
correction: [corrected-article]
retraction: retracted-article
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"corrected-article"}, table.ExpectedRelatedTypes("correction"))
	assert.Equal(t, []string{"retracted-article"}, table.ExpectedRelatedTypes("retraction"))
}

func TestLoad_Empty(t *testing.T) {
	table, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, table.Empty())
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(strings.NewReader(`"just a string"`))
	assert.Error(t, err)

	_, err = Load(strings.NewReader(`correction: {nested: map}`))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	table := Default()
	require.False(t, table.Empty())
	assert.Equal(t, []string{"corrected-article"}, table.ExpectedRelatedTypes("correction"))
	assert.Equal(t, []string{"preprint"}, table.ExpectedDateTypes("preprint"))
	assert.Empty(t, table.ExpectedRelatedTypes("research-article"))
}
