package config

import (
	"os"
	"path/filepath"

	"github.com/lyra-labs/lyra/internal/errors"
	"github.com/lyra-labs/lyra/internal/logger"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default registry file name.
	ConfigFileName = ".lyra.yaml"
	// GlobalConfigDir is the directory for the global registry.
	GlobalConfigDir = ".config/lyra"
	// GlobalConfigFile is the global registry file name.
	GlobalConfigFile = "config.yaml"
)

var log = logger.NewEnvLogger("[config]")

// Load reads the registry from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'lyra env add' to create one, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the registry file using the search order:
// 1. Explicit path (from --config flag)
// 2. .lyra.yaml in current directory
// 3. .lyra.yaml in parent directories (stops at git root or home)
// 4. ~/.config/lyra/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if isGitRoot(dir) {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir || (home != "" && parent == home) {
			break
		}
		dir = parent
	}

	if home != "" {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// DefaultPath is where a new registry is created when none exists yet:
// .lyra.yaml in the current directory.
func DefaultPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(cwd, ConfigFileName)
}

// LoadOrDefault loads the registry found via Find(explicit), or returns
// defaults with an empty path when there is none.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		log.Debug("no registry found, using defaults")
		return DefaultConfig(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	log.Debug("loaded %d environments from %s", len(cfg.Environments), path)
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("version", CurrentConfigVersion)
	v.SetDefault("lang", "en")
	v.SetDefault("output.color", "auto")
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
