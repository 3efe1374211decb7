package cli

import (
	"fmt"
	"io"

	"github.com/lyra-labs/lyra/internal/errors"
	"github.com/lyra-labs/lyra/internal/guide"
	"github.com/lyra-labs/lyra/internal/ui"
	"github.com/lyra-labs/lyra/pkg/sshutil"
	"github.com/spf13/cobra"
)

// GuideOptions holds options for the guide command.
type GuideOptions struct {
	CommandOnly   bool   // print only the one-shot command
	ConfigOnly    bool   // print only the ssh_config block
	Check         bool   // compare the block against an existing ssh_config
	SSHConfigPath string // ssh_config used by Check; ~/.ssh/config when empty
}

// guideResult is the --json payload of the guide command.
type guideResult struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	guide.Guide
	Conflicts []sshutil.Conflict `json:"conflicts,omitempty"`
}

var guideOpts GuideOptions

var guideCmd = &cobra.Command{
	Use:   "guide <env>",
	Short: "Show how to SSH into an environment",
	Long: `Print the connection guide for one environment: the resolved jump host,
the target user, a one-shot ssh command and a ~/.ssh/config block.

<env> is an environment ID or name from the registry. The jump host user is
printed as <host-ssh-user>; replace it with your own account.

Examples:
  lyra guide dev
  lyra guide dev --command-only
  lyra guide dev --config-only >> ~/.ssh/config
  lyra guide dev --check`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeEnvironments,
	RunE: func(cmd *cobra.Command, args []string) error {
		return guideCommand(cmd.OutOrStdout(), args[0], guideOpts)
	},
}

func init() {
	guideCmd.Flags().BoolVar(&machineMode, "json", false, "output as JSON")
	guideCmd.Flags().BoolVar(&guideOpts.CommandOnly, "command-only", false, "print only the one-shot ssh command")
	guideCmd.Flags().BoolVar(&guideOpts.ConfigOnly, "config-only", false, "print only the ssh_config block")
	guideCmd.Flags().BoolVar(&guideOpts.Check, "check", false, "report aliases that clash with your ssh_config")
	guideCmd.Flags().StringVar(&guideOpts.SSHConfigPath, "ssh-config", "", "ssh_config file used by --check (default: ~/.ssh/config)")
	guideCmd.MarkFlagsMutuallyExclusive("command-only", "config-only", "json")
	rootCmd.AddCommand(guideCmd)
}

// guideCommand builds and prints the guide for ref.
func guideCommand(w io.Writer, ref string, opts GuideOptions) error {
	if opts.CommandOnly && opts.ConfigOnly {
		return errors.New(errors.ErrConfig,
			"--command-only and --config-only cannot be used together",
			"Pick one, or drop both to see the full guide.")
	}

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	env, err := reg.environment(ref)
	if err != nil {
		return err
	}

	g := guide.Build(env)

	var conflicts []sshutil.Conflict
	if opts.Check {
		conflicts, err = checkConflicts(g, opts.SSHConfigPath)
		if err != nil {
			return err
		}
	}

	switch {
	case MachineMode():
		if err := WriteJSONSuccess(w, guideResult{ID: env.ID, Name: env.Name, Guide: g, Conflicts: conflicts}); err != nil {
			return err
		}
	case opts.CommandOnly:
		fmt.Fprintln(w, g.OneShotCommand)
	case opts.ConfigOnly:
		fmt.Fprintln(w, g.SSHConfig)
	default:
		fmt.Fprint(w, ui.RenderGuide(g, env.Label(), reg.tr))
	}

	if opts.Check {
		if !MachineMode() {
			fmt.Fprintln(w)
			fmt.Fprint(w, ui.RenderConflicts(conflicts, sshConfigPath(opts.SSHConfigPath), reg.tr))
		}
		if len(conflicts) > 0 {
			return errors.NewExitError(1)
		}
	}
	return nil
}

// checkConflicts compares the guide's config block with the user's
// ssh_config.
func checkConflicts(g guide.Guide, path string) ([]sshutil.Conflict, error) {
	path = sshConfigPath(path)

	existing, err := sshutil.ParseSSHConfigFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSSH,
			"Couldn't parse "+path,
			"Fix the syntax error, or point --ssh-config at another file.")
	}

	generated, err := sshutil.DecodeHosts([]byte(g.SSHConfig))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrGuide,
			"Generated ssh_config block is not valid",
			"Check the environment's name and worker fields for unusual characters.")
	}

	return sshutil.FindConflicts(existing, generated), nil
}

func sshConfigPath(path string) string {
	if path == "" {
		return sshutil.DefaultConfigPath()
	}
	return path
}
