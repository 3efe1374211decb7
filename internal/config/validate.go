package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lyra-labs/lyra/internal/errors"
	"github.com/lyra-labs/lyra/internal/guide"
)

// SupportedLangs lists the message languages lyra ships with.
var SupportedLangs = []string{"en", "ko"}

var validColorModes = map[string]bool{
	"auto":   true,
	"always": true,
	"never":  true,
}

// Validate checks the registry for errors and returns structured error
// messages. The guide package trusts its input, so this is where ports and
// IDs get checked.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but lyra only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade lyra to read this registry.")
	}

	if cfg.Lang != "" && !isSupportedLang(cfg.Lang) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unsupported language '%s'", cfg.Lang),
			fmt.Sprintf("Use one of: %s", strings.Join(SupportedLangs, ", ")))
	}

	if cfg.Output.Color != "" && !validColorModes[cfg.Output.Color] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid output.color '%s'", cfg.Output.Color),
			"Use auto, always, or never.")
	}

	seen := make(map[string]bool)
	for i, env := range cfg.Environments {
		if err := ValidateEnvironment(env); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Environment #%d is invalid", i+1),
				"Check the 'environments' section in your .lyra.yaml.")
		}
		if seen[env.ID] {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Environment ID '%s' is used more than once", env.ID),
				"Give every environment a unique id.")
		}
		seen[env.ID] = true
	}

	return nil
}

// ValidateEnvironment checks a single environment descriptor.
func ValidateEnvironment(env guide.Environment) error {
	if strings.TrimSpace(env.ID) == "" {
		return errors.New(errors.ErrConfig,
			"Environment is missing an id",
			"Set 'id' to a stable unique identifier.")
	}
	if env.SSHPort <= 0 || env.SSHPort > guide.MaxPort {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Environment '%s' has ssh_port %d, which is not a valid port", env.ID, env.SSHPort),
			"Use a port between 1 and 65535.")
	}
	if env.ContainerUser != nil && strings.ContainsAny(*env.ContainerUser, " \t\r\n@") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Environment '%s' has container_user %q", env.ID, *env.ContainerUser),
			"Container users can't contain whitespace or '@'.")
	}
	// Without a base URL the worker name becomes a HostName line verbatim.
	if env.WorkerServerName != nil && strings.IndexFunc(*env.WorkerServerName, isSpaceOrControl) >= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Environment '%s' has worker_server_name %q", env.ID, *env.WorkerServerName),
			"Worker names can't contain whitespace or control characters.")
	}
	return nil
}

func isSpaceOrControl(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

func isSupportedLang(lang string) bool {
	for _, l := range SupportedLangs {
		if l == lang {
			return true
		}
	}
	return false
}
