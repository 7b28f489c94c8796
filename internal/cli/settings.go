package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vvka-141/jatsmeta/internal/config"
	"github.com/vvka-141/jatsmeta/internal/engine"
	"github.com/vvka-141/jatsmeta/internal/files/filesystem"
	"github.com/vvka-141/jatsmeta/internal/xmltree"
	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// fileSystem is where commands read documents from.
var fileSystem filesystem.FileSystemProvider = filesystem.NewOSFileSystem()

// settings is the resolved configuration of one run.
type settings struct {
	project   *config.ProjectConfig
	options   engine.Options
	threshold jatsmeta.Severity
}

// loadSettings merges jatsmeta.yaml, .env and the environment, then flags,
// in increasing order of precedence.
func loadSettings(configPath, granularity, failLevel string, logger jatsmeta.Logger) (*settings, error) {
	_ = godotenv.Load()

	project, err := loadProjectConfig(configPath)
	if err != nil {
		return nil, err
	}
	project.ApplyEnv(os.Getenv)
	if granularity != "" {
		project.Granularity = granularity
	}
	if failLevel != "" {
		project.FailLevel = failLevel
	}

	opts, err := project.EngineOptions(logger)
	if err != nil {
		return nil, err
	}
	threshold, err := project.Threshold()
	if err != nil {
		return nil, err
	}
	if project.Path() != "" {
		logger.Verbose("config: %s", project.Path())
	}
	return &settings{project: project, options: opts, threshold: threshold}, nil
}

// loadProjectConfig reads an explicit config file, or jatsmeta.yaml from the
// working directory when present.
func loadProjectConfig(path string) (*config.ProjectConfig, error) {
	if path != "" {
		cfg, err := config.LoadFile(path)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: config file %s does not exist", jatsmeta.ErrInvalidConfig, path)
		}
		return cfg, err
	}

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return &config.ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return cfg, nil
}

func readDocument(path string) (jatsmeta.Node, error) {
	data, err := fileSystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root, err := xmltree.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}
