package diagnostic

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

func sampleDiagnostics() []jatsmeta.Diagnostic {
	return []jatsmeta.Diagnostic{
		Format(Params{Title: "ok check", Parent: "article", IsValid: true, Expected: "a", Obtained: "a"}),
		Format(Params{Title: "bad check", Parent: "sub-article", ParentID: "s1", Expected: "a", Obtained: "b", Advice: "use a"}),
		Format(Params{Title: "soft check", Parent: "article", Expected: "a", ErrorLevel: jatsmeta.SevWarning}),
	}
}

func TestNewReport_Summary(t *testing.T) {
	r := NewReport("id-1", "a.xml", sampleDiagnostics(), jatsmeta.SevError)

	assert.Equal(t, 3, r.Summary.Total)
	assert.Equal(t, 1, r.Summary.OK)
	assert.Equal(t, 1, r.Summary.Failures)
	assert.Equal(t, map[string]int{"ERROR": 1, "WARNING": 1}, r.Summary.ByLevel)

	strict := NewReport("id-1", "a.xml", sampleDiagnostics(), jatsmeta.SevWarning)
	assert.Equal(t, 2, strict.Summary.Failures)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []Report{NewReport("id-1", "a.xml", sampleDiagnostics(), jatsmeta.SevError)}))

	var decoded struct {
		TotalDocuments int `json:"total_documents"`
		Reports        []struct {
			Path        string           `json:"path"`
			Diagnostics []map[string]any `json:"diagnostics"`
		} `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, 1, decoded.TotalDocuments)
	require.Len(t, decoded.Reports[0].Diagnostics, 3)

	bad := decoded.Reports[0].Diagnostics[1]
	assert.Equal(t, "ERROR", bad["response"])
	assert.Equal(t, "b", bad["got_value"])
	assert.Equal(t, "a", bad["expected_value"])
	assert.Equal(t, "s1", bad["parent_id"])
}

func TestWriteText_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, NewReport("id-1", "a.xml", sampleDiagnostics(), jatsmeta.SevError), false, false))

	out := buf.String()
	assert.Contains(t, out, "a.xml")
	assert.Contains(t, out, "bad check [sub-article#s1] Got b, expected a")
	assert.Contains(t, out, "advice: use a")
	assert.NotContains(t, out, "ok check", "passing checks are hidden unless verbose")
	assert.Contains(t, out, "3 checks, 1 ok, 1 ERROR, 1 WARNING")
}

func TestWriteText_Verbose(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, NewReport("id-1", "a.xml", sampleDiagnostics(), jatsmeta.SevError), false, true))
	assert.Contains(t, buf.String(), "ok check")
}
