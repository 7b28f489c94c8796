package diagnostic

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// Report groups the diagnostics of one document.
type Report struct {
	DocumentID  string                `json:"document_id"`
	Path        string                `json:"path"`
	Checksum    string                `json:"checksum,omitempty"`
	Diagnostics []jatsmeta.Diagnostic `json:"diagnostics"`
	Summary     Summary               `json:"summary"`
}

// Summary counts diagnostics by response.
type Summary struct {
	Total    int            `json:"total"`
	OK       int            `json:"ok"`
	ByLevel  map[string]int `json:"by_level"`
	Failures int            `json:"failures"`
}

// NewReport summarizes diagnostics. Failures counts those at or above threshold.
func NewReport(documentID, path string, diagnostics []jatsmeta.Diagnostic, threshold jatsmeta.Severity) Report {
	s := Summary{ByLevel: map[string]int{}}
	for _, d := range diagnostics {
		s.Total++
		if d.IsValid {
			s.OK++
			continue
		}
		s.ByLevel[string(d.ErrorLevel)]++
		if d.Failed(threshold) {
			s.Failures++
		}
	}
	return Report{DocumentID: documentID, Path: path, Diagnostics: diagnostics, Summary: s}
}

// WriteJSON writes reports as an indented JSON document.
func WriteJSON(w io.Writer, reports []Report) error {
	out := map[string]interface{}{
		"total_documents": len(reports),
		"reports":         reports,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
)

// WriteText writes a human-readable report. Passing diagnostics are listed
// only when verbose is set.
func WriteText(w io.Writer, r Report, styled, verbose bool) error {
	paint := func(st lipgloss.Style, s string) string {
		if !styled {
			return s
		}
		return st.Render(s)
	}

	if _, err := fmt.Fprintf(w, "%s\n", paint(titleStyle, r.Path)); err != nil {
		return err
	}
	for _, d := range r.Diagnostics {
		if d.IsValid && !verbose {
			continue
		}
		st := okStyle
		switch {
		case d.IsValid:
		case d.ErrorLevel.AtLeast(jatsmeta.SevError):
			st = errorStyle
		default:
			st = warningStyle
		}
		scope := d.Parent
		if d.ParentID != "" {
			scope += "#" + d.ParentID
		}
		fmt.Fprintf(w, "  %s %s [%s] %s\n", paint(st, fmt.Sprintf("%-8s", d.Response)), d.Title, scope, d.Message)
		if d.Advice != "" {
			fmt.Fprintf(w, "           %s\n", paint(mutedStyle, "advice: "+d.Advice))
		}
	}

	levels := make([]string, 0, len(r.Summary.ByLevel))
	for l := range r.Summary.ByLevel {
		levels = append(levels, l)
	}
	sort.Strings(levels)
	line := fmt.Sprintf("  %d checks, %d ok", r.Summary.Total, r.Summary.OK)
	for _, l := range levels {
		line += fmt.Sprintf(", %d %s", r.Summary.ByLevel[l], l)
	}
	_, err := fmt.Fprintln(w, paint(mutedStyle, line))
	return err
}

// IsTerminal reports whether styled output should be written to f.
// NO_COLOR disables styling regardless of the terminal.
func IsTerminal(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
