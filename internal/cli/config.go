package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/jatsmeta/internal/correspondence"
	"github.com/vvka-141/jatsmeta/internal/engine"
	"github.com/vvka-141/jatsmeta/internal/validation"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the effective configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a validate run would use: jatsmeta.yaml (or
--config) with .env and environment overrides applied, every rule's error
level, and the resolved correspondence table.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configShowPath string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configShowCmd.Flags().StringVar(&configShowPath, "config", "", "Path to a config file (default: ./jatsmeta.yaml if present)")
}

type effectiveConfig struct {
	Source         string                 `yaml:"source"`
	Granularity    engine.Granularity     `yaml:"granularity"`
	FailLevel      string                 `yaml:"fail_level"`
	ErrorLevels    map[string]string      `yaml:"error_levels"`
	DisabledRules  []validation.Rule      `yaml:"disabled_rules,omitempty"`
	Schemas        map[string]string      `yaml:"schemas,omitempty"`
	Correspondence []correspondence.Entry `yaml:"correspondence"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(configShowPath, "", "", newLogger(cmd))
	if err != nil {
		return err
	}

	eng := engine.New(s.options)
	levels := make(map[string]string, len(validation.Rules()))
	for _, r := range validation.Rules() {
		levels[string(r)] = string(eng.Level(r))
	}
	source := s.project.Path()
	if source == "" {
		source = "defaults"
	}

	data, err := yaml.Marshal(effectiveConfig{
		Source:         source,
		Granularity:    eng.Granularity(),
		FailLevel:      string(s.threshold),
		ErrorLevels:    levels,
		DisabledRules:  s.options.Disabled,
		Schemas:        s.project.Schemas,
		Correspondence: s.options.Table.Entries(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
