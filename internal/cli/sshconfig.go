package cli

import (
	"fmt"
	"io"

	"github.com/lyra-labs/lyra/internal/errors"
	"github.com/lyra-labs/lyra/internal/guide"
	"github.com/spf13/cobra"
)

var sshConfigCmd = &cobra.Command{
	Use:   "ssh-config [env...]",
	Short: "Print one ssh_config block for several environments",
	Long: `Print a combined ~/.ssh/config block for every environment in the
registry, or only the ones named. Environments sharing a jump host get a
single jump stanza.

Examples:
  lyra ssh-config
  lyra ssh-config dev gpu >> ~/.ssh/config`,
	ValidArgsFunction: completeEnvironments,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sshConfigCommand(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(sshConfigCmd)
}

// sshConfigCommand prints the merged ssh_config for refs, or for all
// environments when refs is empty.
func sshConfigCommand(w io.Writer, refs []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	envs := reg.cfg.Environments
	if len(refs) > 0 {
		envs = make([]guide.Environment, 0, len(refs))
		for _, ref := range refs {
			env, err := reg.environment(ref)
			if err != nil {
				return err
			}
			envs = append(envs, env)
		}
	}

	if len(envs) == 0 {
		return errors.New(errors.ErrEnv,
			"No environments configured",
			"Add one with 'lyra env add'.")
	}

	fmt.Fprintln(w, guide.MergeConfigs(envs))
	return nil
}
