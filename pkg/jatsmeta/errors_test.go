package jatsmeta_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, jatsmeta.ExitSuccess},
		{"unknown flag", errors.New("unknown flag --foo"), jatsmeta.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), jatsmeta.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), jatsmeta.ExitUsageError},
		{"general error", errors.New("something went wrong"), jatsmeta.ExitGeneralError},
		{"invalid config", fmt.Errorf("bad level: %w", jatsmeta.ErrInvalidConfig), jatsmeta.ExitConfigError},
		{"malformed xml", fmt.Errorf("article.xml: %w", jatsmeta.ErrMalformedXML), jatsmeta.ExitMalformedXML},
		{"no documents", jatsmeta.ErrNoDocuments, jatsmeta.ExitNoDocuments},
		{"validation failed", jatsmeta.ErrValidationFailed, jatsmeta.ExitValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jatsmeta.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
