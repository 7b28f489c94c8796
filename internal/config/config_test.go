package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/jatsmeta/internal/correspondence"
	"github.com/vvka-141/jatsmeta/internal/engine"
	"github.com/vvka-141/jatsmeta/internal/validation"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, `error_levels:
  default: warning
  preprint: critical
disabled_rules: [article-date]
granularity: document
fail_level: warning
correspondence:
  correction: [corrected-article]
schemas:
  sps-1.10: schemas/sps-1.10/JATS-journalpublishing1.dtd
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "critical", cfg.ErrorLevels["preprint"])
	assert.Equal(t, []string{"article-date"}, cfg.DisabledRules)
	assert.Equal(t, "document", cfg.Granularity)
	assert.Equal(t, "schemas/sps-1.10/JATS-journalpublishing1.dtd", cfg.Schemas["sps-1.10"])
	assert.Equal(t, filepath.Join(dir, ConfigFileName), cfg.Path())
	require.NotNil(t, cfg.Correspondence)
	assert.Equal(t, []string{"corrected-article"}, cfg.Correspondence.ExpectedRelatedTypes("correction"))

	opts, err := cfg.EngineOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, engine.GranularityDocument, opts.Granularity)
	assert.Equal(t, jatsmeta.SevCritical, opts.Levels[validation.RulePreprint])
	assert.Equal(t, jatsmeta.SevWarning, opts.Levels[validation.RuleHistoryEvents])
	assert.Equal(t, []validation.Rule{validation.RuleArticleDate}, opts.Disabled)
	assert.Empty(t, opts.Table.ExpectedRelatedTypes("retraction"), "inline table replaces the default")

	threshold, err := cfg.Threshold()
	require.NoError(t, err)
	assert.Equal(t, jatsmeta.SevWarning, threshold)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{{invalid"))

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.True(t, errors.Is(err, jatsmeta.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "Hint:")
	assert.Nil(t, cfg)
}

func TestLoad_InvalidCorrespondenceShape(t *testing.T) {
	_, err := Load(writeConfig(t, "correspondence: 42\n"))
	assert.True(t, errors.Is(err, jatsmeta.ErrInvalidConfig))
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	opts, err := cfg.EngineOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, engine.GranularityScope, opts.Granularity)
	assert.Empty(t, opts.Levels)
	assert.Equal(t, correspondence.Default().Entries(), opts.Table.Entries())

	threshold, err := cfg.Threshold()
	require.NoError(t, err)
	assert.Equal(t, jatsmeta.SevError, threshold)
}

func TestTable_FileRelativeToConfig(t *testing.T) {
	dir := writeConfig(t, "correspondence_file: tables/extra.yaml\nextend_default: true\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tables"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tables", "extra.yaml"),
		[]byte("- article-type: editorial\n  related-article-type: commentary-article\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	table, err := cfg.Table()
	require.NoError(t, err)

	assert.Equal(t, []string{"commentary-article"}, table.ExpectedRelatedTypes("editorial"))
	assert.Equal(t, []string{"corrected-article"}, table.ExpectedRelatedTypes("correction"))
}

func TestTable_MissingFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "correspondence_file: nope.yaml\n"))
	require.NoError(t, err)

	_, err = cfg.Table()
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "correspondence_file", cfgErr.Field)
}

func TestEngineOptions_Errors(t *testing.T) {
	tests := []struct {
		name  string
		cfg   ProjectConfig
		field string
	}{
		{"unknown level", ProjectConfig{ErrorLevels: map[string]string{"preprint": "fatal"}}, "error_levels.preprint"},
		{"unknown default level", ProjectConfig{ErrorLevels: map[string]string{"default": "loud"}}, "error_levels.default"},
		{"unknown rule", ProjectConfig{ErrorLevels: map[string]string{"spelling": "error"}}, "error_levels"},
		{"unknown disabled rule", ProjectConfig{DisabledRules: []string{"spelling"}}, "disabled_rules"},
		{"unknown granularity", ProjectConfig{Granularity: "paragraph"}, "granularity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.EngineOptions(nil)
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.True(t, errors.Is(err, jatsmeta.ErrInvalidConfig))
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvErrorLevel:  "info",
		EnvGranularity: "document",
		EnvFailLevel:   "critical",
	}
	cfg := &ProjectConfig{ErrorLevels: map[string]string{"preprint": "error"}}
	cfg.ApplyEnv(func(k string) string { return env[k] })

	levels, err := cfg.Levels()
	require.NoError(t, err)
	assert.Equal(t, jatsmeta.SevInfo, levels[validation.RuleHistoryEvents])
	assert.Equal(t, jatsmeta.SevError, levels[validation.RulePreprint], "explicit rule level wins over default")
	assert.Equal(t, "document", cfg.Granularity)
	assert.Equal(t, "critical", cfg.FailLevel)
}

func TestConfigError_Format(t *testing.T) {
	err := &ConfigError{Path: "jatsmeta.yaml", Field: "granularity", Message: "bad", Hint: "use scope"}
	assert.Equal(t, "config error in jatsmeta.yaml [field: granularity]: bad\n\nHint: use scope", err.Error())

	err = &ConfigError{Message: "bad"}
	assert.Equal(t, "config error in configuration: bad", err.Error())
}
