package config

import (
	"fmt"

	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// ConfigError is a configuration problem with the offending field and a hint.
// It matches jatsmeta.ErrInvalidConfig under errors.Is.
type ConfigError struct {
	Path    string // config file, "" when built in code
	Field   string // dotted field name, if applicable
	Message string
	Hint    string
}

func (e *ConfigError) Error() string {
	location := e.Path
	if location == "" {
		location = "configuration"
	}
	msg := fmt.Sprintf("config error in %s: %s", location, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("config error in %s [field: %s]: %s", location, e.Field, e.Message)
	}
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return jatsmeta.ErrInvalidConfig
}
