package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/lyra-labs/lyra/internal/config"
	"github.com/lyra-labs/lyra/internal/errors"
	"github.com/lyra-labs/lyra/internal/guide"
	"github.com/lyra-labs/lyra/internal/i18n"
	"github.com/lyra-labs/lyra/internal/logger"
	"github.com/lyra-labs/lyra/internal/ui"
	"github.com/lyra-labs/lyra/internal/util"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile  string
	langFlag string
	noColor  bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "lyra",
	Short: "SSH connection guides for remote environments",
	Long: `lyra prints ready-to-use SSH instructions for development environments
that sit behind a jump host: the one-shot ssh command and an ~/.ssh/config
block with ProxyJump wired up.

Environments are read from a registry file (.lyra.yaml, or
~/.config/lyra/config.yaml).

Examples:
  lyra env add --id e2 --name dev --port 2201 --worker worker-01
  lyra guide dev
  lyra ssh-config >> ~/.ssh/config`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
		if noColor {
			ui.DisableColors()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "registry file (default: .lyra.yaml, then ~/.config/lyra/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "output language (en, ko)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// Execute runs the root command and exits with a non-zero status on failure.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if code, ok := errors.GetExitCode(err); ok {
		os.Exit(code)
	}

	if MachineMode() {
		_ = WriteJSONFromError(os.Stdout, err)
		os.Exit(1)
	}

	if isUnknownCommandError(err) {
		fmt.Fprintln(os.Stderr, unknownCommandMessage(err))
		os.Exit(1)
	}

	fmt.Fprint(os.Stderr, err.Error())
	if !strings.HasSuffix(err.Error(), "\n") {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(1)
}

// isUnknownCommandError checks if the error is cobra's unknown command/flag error.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of
// `unknown command "foo" for "lyra"`.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// unknownCommandMessage renders cobra's error with a "did you mean" hint
// built from the registered command names.
func unknownCommandMessage(err error) string {
	msg := err.Error()
	name := extractUnknownCommand(err)
	if name == "" {
		return msg
	}

	var names []string
	for _, c := range rootCmd.Commands() {
		if !c.Hidden {
			names = append(names, c.Name())
		}
	}
	if similar := util.SuggestSimilar(name, names, 3); len(similar) > 0 {
		msg += "\n\nDid you mean: " + strings.Join(similar, ", ")
	}
	return msg + "\n\nRun 'lyra --help' for usage."
}

// registry is the loaded environment registry plus the translator for the
// selected language.
type registry struct {
	cfg  *config.Config
	path string
	tr   *i18n.Translator
}

// loadRegistry finds, loads and validates the registry. A missing registry
// is not an error: commands see an empty environment list.
func loadRegistry() (*registry, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if !noColor {
		ui.ConfigureColor(cfg.Output.Color, ui.StdoutIsTerminal())
	}

	lang := i18n.Resolve(langFlag, cfg.Lang)
	i18n.SetLang(lang)

	return &registry{cfg: cfg, path: path, tr: i18n.New(lang)}, nil
}

// environment looks up ref by ID or name. Unknown references list the
// closest matches, or every ID when nothing is close.
func (r *registry) environment(ref string) (guide.Environment, error) {
	if env, ok := r.cfg.Lookup(ref); ok {
		return env, nil
	}

	known := r.cfg.IDs()
	candidates := append([]string{}, known...)
	for _, env := range r.cfg.Environments {
		if env.Name != "" {
			candidates = append(candidates, env.Name)
		}
	}
	if similar := util.SuggestSimilar(ref, candidates, 3); len(similar) > 0 {
		known = similar
	}
	return guide.Environment{}, errors.NewUnknownEnvironment(ref, known)
}

// completeEnvironments offers environment IDs for shell completion.
func completeEnvironments(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, _, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var ids []string
	for _, id := range cfg.IDs() {
		if strings.HasPrefix(id, toComplete) {
			ids = append(ids, id)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
