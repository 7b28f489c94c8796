// Package config loads the jatsmeta.yaml project file and turns it into
// engine options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/jatsmeta/internal/correspondence"
	"github.com/vvka-141/jatsmeta/internal/engine"
	"github.com/vvka-141/jatsmeta/internal/validation"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is looked up in the directory passed to Load.
const ConfigFileName = "jatsmeta.yaml"

// Environment variables that override the file.
const (
	EnvErrorLevel  = "JATSMETA_ERROR_LEVEL"
	EnvGranularity = "JATSMETA_GRANULARITY"
	EnvFailLevel   = "JATSMETA_FAIL_LEVEL"
)

// ProjectConfig is the content of jatsmeta.yaml.
type ProjectConfig struct {
	// ErrorLevels maps a rule name to CRITICAL, ERROR, WARNING or INFO.
	// The key "default" applies to every rule not listed.
	ErrorLevels map[string]string `yaml:"error_levels,omitempty"`

	DisabledRules []string `yaml:"disabled_rules,omitempty"`

	// Granularity is "scope" (default) or "document".
	Granularity string `yaml:"granularity,omitempty"`

	// FailLevel is the lowest level that makes a run fail. Defaults to ERROR.
	FailLevel string `yaml:"fail_level,omitempty"`

	// Correspondence is an inline table in either accepted shape.
	Correspondence *correspondence.Table `yaml:"correspondence,omitempty"`

	// CorrespondenceFile is a table file, relative to the config file.
	CorrespondenceFile string `yaml:"correspondence_file,omitempty"`

	// ExtendDefault keeps the built-in table and adds the configured entries to it.
	ExtendDefault bool `yaml:"extend_default,omitempty"`

	// Schemas names schema resources for the external structural validation
	// layer. They are carried through untouched.
	Schemas map[string]string `yaml:"schemas,omitempty"`

	path string
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file at an explicit path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{
			Path:    path,
			Message: err.Error(),
			Hint:    "Check the YAML syntax. The correspondence table accepts a list of records or an article-type mapping.",
		}
	}
	cfg.path = path
	return &cfg, nil
}

// Path returns the file the config was read from, or "" for a config built in code.
func (c *ProjectConfig) Path() string {
	return c.path
}

// ApplyEnv overrides fields from the environment. getenv is usually os.Getenv.
func (c *ProjectConfig) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvErrorLevel); v != "" {
		if c.ErrorLevels == nil {
			c.ErrorLevels = map[string]string{}
		}
		c.ErrorLevels[defaultLevelKey] = v
	}
	if v := getenv(EnvGranularity); v != "" {
		c.Granularity = v
	}
	if v := getenv(EnvFailLevel); v != "" {
		c.FailLevel = v
	}
}

const defaultLevelKey = "default"

// Table resolves the correspondence table: the configured inline entries and
// file, or the built-in table when neither is set.
func (c *ProjectConfig) Table() (correspondence.Table, error) {
	var configured []correspondence.Table
	if c.Correspondence != nil {
		configured = append(configured, *c.Correspondence)
	}
	if c.CorrespondenceFile != "" {
		path := c.CorrespondenceFile
		if !filepath.IsAbs(path) && c.path != "" {
			path = filepath.Join(filepath.Dir(c.path), path)
		}
		t, err := correspondence.LoadFile(path)
		if err != nil {
			return correspondence.Table{}, &ConfigError{
				Path:    c.path,
				Field:   "correspondence_file",
				Message: err.Error(),
				Hint:    "Point correspondence_file at a readable YAML table, relative to " + ConfigFileName + ".",
			}
		}
		configured = append(configured, t)
	}
	if len(configured) == 0 {
		return correspondence.Default(), nil
	}
	if c.ExtendDefault {
		configured = append([]correspondence.Table{correspondence.Default()}, configured...)
	}
	return correspondence.Merge(configured...), nil
}

// Levels parses the configured error levels.
func (c *ProjectConfig) Levels() (map[validation.Rule]jatsmeta.Severity, error) {
	levels := map[validation.Rule]jatsmeta.Severity{}
	known := knownRules()

	if raw, ok := c.ErrorLevels[defaultLevelKey]; ok {
		sev, err := jatsmeta.ParseSeverity(raw)
		if err != nil {
			return nil, c.fieldError("error_levels."+defaultLevelKey, err)
		}
		for _, r := range validation.Rules() {
			levels[r] = sev
		}
	}
	names := lo.Keys(c.ErrorLevels)
	sort.Strings(names)
	for _, name := range names {
		if name == defaultLevelKey {
			continue
		}
		rule := validation.Rule(name)
		if !known[rule] {
			return nil, c.unknownRule("error_levels", name)
		}
		sev, err := jatsmeta.ParseSeverity(c.ErrorLevels[name])
		if err != nil {
			return nil, c.fieldError("error_levels."+name, err)
		}
		levels[rule] = sev
	}
	return levels, nil
}

// Threshold returns the fail level.
func (c *ProjectConfig) Threshold() (jatsmeta.Severity, error) {
	sev, err := jatsmeta.ParseSeverity(c.FailLevel)
	if err != nil {
		return "", c.fieldError("fail_level", err)
	}
	return sev, nil
}

// EngineOptions validates the whole config and builds engine options.
func (c *ProjectConfig) EngineOptions(logger jatsmeta.Logger) (engine.Options, error) {
	table, err := c.Table()
	if err != nil {
		return engine.Options{}, err
	}
	levels, err := c.Levels()
	if err != nil {
		return engine.Options{}, err
	}
	granularity, err := engine.ParseGranularity(c.Granularity)
	if err != nil {
		return engine.Options{}, c.fieldError("granularity", err)
	}

	known := knownRules()
	disabled := make([]validation.Rule, 0, len(c.DisabledRules))
	for _, name := range c.DisabledRules {
		if !known[validation.Rule(name)] {
			return engine.Options{}, c.unknownRule("disabled_rules", name)
		}
		disabled = append(disabled, validation.Rule(name))
	}

	return engine.Options{
		Table:       table,
		Levels:      levels,
		Disabled:    disabled,
		Granularity: granularity,
		Logger:      logger,
	}, nil
}

func (c *ProjectConfig) fieldError(field string, err error) error {
	return &ConfigError{Path: c.path, Field: field, Message: err.Error()}
}

func (c *ProjectConfig) unknownRule(field, name string) error {
	names := lo.Map(validation.Rules(), func(r validation.Rule, _ int) string { return string(r) })
	return &ConfigError{
		Path:    c.path,
		Field:   field,
		Message: fmt.Sprintf("unknown rule %q", name),
		Hint:    "Known rules: " + strings.Join(names, ", "),
	}
}

func knownRules() map[validation.Rule]bool {
	return lo.SliceToMap(validation.Rules(), func(r validation.Rule) (validation.Rule, bool) {
		return r, true
	})
}
