package jatsmeta

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	root, err := xmltree.ParseBytes(data)
//	if errors.Is(err, jatsmeta.ErrMalformedXML) {
//	    // Report the document as unreadable
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMalformedXML indicates a document could not be parsed into a tree.
	ErrMalformedXML = errors.New("malformed XML")

	// ErrNoDocuments indicates no XML documents were found to validate.
	ErrNoDocuments = errors.New("no XML documents found")

	// ErrValidationFailed indicates at least one diagnostic reached the failure threshold.
	ErrValidationFailed = errors.New("validation failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMalformedXML):
		return ExitMalformedXML
	case errors.Is(err, ErrNoDocuments):
		return ExitNoDocuments
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range []string{"unknown flag", "unknown shorthand flag", "unknown command", "accepts ", "requires at least", "required flag", "invalid argument"} {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
