package doctor

import (
	stderrors "errors"
	"fmt"

	"github.com/lyra-labs/lyra/internal/config"
	"github.com/lyra-labs/lyra/internal/errors"
)

// ConfigFileCheck verifies that a registry file can be found.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return CategoryConfig }

func (c *ConfigFileCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Registry file not accessible",
			Suggestion: "Check the --config path and its permissions",
		}
	}

	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No registry file found",
			Suggestion: "Run 'lyra env add' to create .lyra.yaml",
		}
	}

	return pass(c.Name(), "Registry: "+path)
}

// ConfigSchemaCheck verifies that the registry loads and validates.
type ConfigSchemaCheck struct {
	ConfigPath string
}

func (c *ConfigSchemaCheck) Name() string     { return "config_schema" }
func (c *ConfigSchemaCheck) Category() string { return CategoryConfig }

func (c *ConfigSchemaCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil || path == "" {
		// ConfigFileCheck reports this
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: "Skipped: no registry file",
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Failed to load registry",
			Suggestion: "Check the YAML syntax in " + path,
		}
	}

	if err := config.Validate(cfg); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Registry is invalid: %s", errorMessage(err)),
			Suggestion: "Fix the reported field in " + path,
		}
	}

	return pass(c.Name(), fmt.Sprintf("Schema valid (%d environments)", len(cfg.Environments)))
}

// NewConfigChecks returns the registry checks.
func NewConfigChecks(configPath string) []Check {
	return []Check{
		&ConfigFileCheck{ConfigPath: configPath},
		&ConfigSchemaCheck{ConfigPath: configPath},
	}
}

// errorMessage flattens a structured error chain into one line.
func errorMessage(err error) string {
	var lyraErr *errors.Error
	if !stderrors.As(err, &lyraErr) {
		return err.Error()
	}
	if lyraErr.Cause != nil {
		return lyraErr.Message + ": " + errorMessage(lyraErr.Cause)
	}
	return lyraErr.Message
}
