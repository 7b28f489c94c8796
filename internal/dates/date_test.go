package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateType(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		legacy   string
		want     string
	}{
		{"explicit pub", "pub", "", "pub"},
		{"explicit wins over legacy", "pub", "epub-ppub", "pub"},
		{"legacy electronic", "", "epub", "pub"},
		{"legacy electronic then print", "", "epub-ppub", "collection"},
		{"legacy print is unresolved", "", "ppub", ""},
		{"legacy collection is unresolved", "", "collection", ""},
		{"unknown legacy", "", "nihms-submitted", ""},
		{"nothing", "", "", ""},
		{"whitespace explicit", "  ", "epub", "pub"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDateType(tt.explicit, tt.legacy))
		})
	}
}

func TestDate_Format(t *testing.T) {
	s, ok := Date{Year: "2024", Month: "03", Day: "07"}.Format()
	require.True(t, ok)
	assert.Equal(t, "2024-03-07", s)

	_, ok = Date{Year: "2024", Month: "03"}.Format()
	assert.False(t, ok, "partial dates are not formatted")
}

func TestDate_Time(t *testing.T) {
	tm, err := Date{Year: "2024", Month: "2", Day: "29"}.Time()
	require.NoError(t, err)
	assert.Equal(t, 2024, tm.Year())

	_, err = Date{Year: "2023", Month: "02", Day: "29"}.Time()
	assert.Error(t, err)

	_, err = Date{Year: "2023", Month: "xx", Day: "01"}.Time()
	assert.Error(t, err)

	_, err = Date{Year: "2023"}.Time()
	assert.Error(t, err)
}

func TestDate_String(t *testing.T) {
	assert.Equal(t, "2024-05", Date{Year: "2024", Month: "05"}.String())
	assert.Equal(t, "2024 Jan-Mar", Date{Year: "2024", Season: "Jan-Mar"}.String())
}
