package validation

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/jatsmeta/internal/dates"
	"github.com/vvka-141/jatsmeta/internal/scope"
	"github.com/vvka-141/jatsmeta/internal/xmltree"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

func rootDates(t *testing.T, meta string) dates.Dates {
	t.Helper()
	root, err := xmltree.ParseString(`<article><front><article-meta>` + meta + `</article-meta></front></article>`)
	require.NoError(t, err)
	return dates.Extract(scope.All(root)[0])
}

func TestArticleDatePresence(t *testing.T) {
	present := rootDates(t, `<pub-date date-type="pub"><day>01</day><month>02</month><year>2024</year></pub-date>`)
	got := slices.Collect(ArticleDatePresence(researchSubject, present, jatsmeta.SevError))
	require.Len(t, got, 1)
	assert.True(t, got[0].IsValid)
	assert.Equal(t, "2024-02-01", got[0].Obtained)

	absent := rootDates(t, `<pub-date date-type="collection"><year>2024</year></pub-date>`)
	got = slices.Collect(ArticleDatePresence(researchSubject, absent, jatsmeta.SevError))
	require.Len(t, got, 1)
	assert.False(t, got[0].IsValid)
	assert.Equal(t, jatsmeta.ValidationExist, got[0].ValidationType)
}

func TestDateCompleteness(t *testing.T) {
	tests := []struct {
		name  string
		date  dates.Date
		valid bool
	}{
		{"complete", dates.Date{Year: "2024", Month: "02", Day: "29", Type: "pub"}, true},
		{"not a calendar day", dates.Date{Year: "2023", Month: "02", Day: "29", Type: "pub"}, false},
		{"partial", dates.Date{Year: "2023", Type: "received"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(DateCompleteness(researchSubject, "history", tt.date, jatsmeta.SevError))
			require.Len(t, got, 1)
			assert.Equal(t, tt.valid, got[0].IsValid)
			assert.Equal(t, tt.date.Type, got[0].SubItem)
		})
	}
}
