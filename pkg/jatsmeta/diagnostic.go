package jatsmeta

import (
	"fmt"
	"strings"
)

// Severity is the error level a failing diagnostic reports.
type Severity string

const (
	SevCritical Severity = "CRITICAL"
	SevError    Severity = "ERROR"
	SevWarning  Severity = "WARNING"
	SevInfo     Severity = "INFO"
)

// DefaultSeverity is used when the caller does not configure a level.
const DefaultSeverity = SevError

// ResponseOK is the Response of a passing diagnostic.
const ResponseOK = "OK"

var severityRank = map[Severity]int{
	SevInfo:     0,
	SevWarning:  1,
	SevError:    2,
	SevCritical: 3,
}

// ParseSeverity accepts a level name in any letter case.
// An empty string yields DefaultSeverity.
func ParseSeverity(s string) (Severity, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultSeverity, nil
	}
	sev := Severity(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := severityRank[sev]; !ok {
		return "", fmt.Errorf("unknown error level %q (expected one of CRITICAL, ERROR, WARNING, INFO): %w", s, ErrInvalidConfig)
	}
	return sev, nil
}

// AtLeast reports whether s is as severe as other.
func (s Severity) AtLeast(other Severity) bool {
	return severityRank[s] >= severityRank[other]
}

// ValidationType tells whether a rule checked for existence or for a match.
type ValidationType string

const (
	ValidationExist ValidationType = "exist"
	ValidationMatch ValidationType = "match"
)

// Diagnostic is one structured validation outcome, pass or fail.
type Diagnostic struct {
	Title             string         `json:"title"`
	Parent            string         `json:"parent"`
	ParentID          string         `json:"parent_id"`
	ParentArticleType string         `json:"parent_article_type"`
	ParentLang        string         `json:"parent_lang"`
	Item              string         `json:"item"`
	SubItem           string         `json:"sub_item"`
	ValidationType    ValidationType `json:"validation_type"`
	IsValid           bool           `json:"is_valid"`
	Response          string         `json:"response"`
	Expected          any            `json:"expected_value"`
	Obtained          any            `json:"got_value"`
	Message           string         `json:"message"`
	Advice            string         `json:"advice,omitempty"`
	Data              any            `json:"data"`
	ErrorLevel        Severity       `json:"error_level"`
}

// Failed reports whether the diagnostic is a failure at or above level.
func (d Diagnostic) Failed(level Severity) bool {
	return !d.IsValid && d.ErrorLevel.AtLeast(level)
}
