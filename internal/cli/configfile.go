package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the name of the optional project configuration file,
// searched for from Root upward the same way the examples load a YAML
// config from a fixed path (see aretext's LoadOrCreateConfig).
const configFileName = ".makefwd.yaml"

// fileConfig mirrors the subset of Config a project can set defaults for.
// Flags always take precedence over values loaded from file.
type fileConfig struct {
	MakefilePriority []string `yaml:"makefilePriority"`
	ExcludeDirs      []string `yaml:"excludeDirs"`
	Output           string   `yaml:"output"`
	Format           string   `yaml:"format"`
}

// loadConfigFile resolves the project configuration file and, if found,
// merges its values into config wherever the corresponding flag was left
// at its zero value. Returns nil (no-op) if no file is found. An explicit
// config.ConfigFilePath skips the upward search entirely.
func loadConfigFile(root string, config *Config) error {
	path := config.ConfigFilePath
	if path == "" {
		var err error
		path, err = findConfigFile(root)
		if err != nil {
			return err
		}
		if path == "" {
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(config.MakefilePriority) == 0 && len(fc.MakefilePriority) > 0 {
		config.MakefilePriority = fc.MakefilePriority
	}
	if len(config.ExcludeDirs) == 0 && len(fc.ExcludeDirs) > 0 {
		config.ExcludeDirs = fc.ExcludeDirs
	}
	if config.Output == "" && fc.Output != "" {
		config.Output = fc.Output
	}
	if config.Format == "text" && fc.Format != "" {
		config.Format = fc.Format
	}

	return nil
}

// findConfigFile walks upward from dir looking for configFileName,
// stopping at the filesystem root. Returns "" if none is found.
func findConfigFile(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for {
		candidate := filepath.Join(abs, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to stat %s: %w", candidate, err)
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", nil
		}
		abs = parent
	}
}
