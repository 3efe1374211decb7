package cli

import (
	"fmt"
	"io"

	"github.com/lyra-labs/lyra/internal/errors"
	"github.com/lyra-labs/lyra/internal/guide"
	"github.com/spf13/cobra"
)

// resolveResult is the --json payload of the resolve command.
type resolveResult struct {
	ID       string `json:"id"`
	JumpHost string `json:"jump_host"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <env>",
	Short: "Print the jump host of an environment",
	Long: `Print only the address lyra uses as the jump host for <env>: the host of
the worker's base URL, else the worker name, else 127.0.0.1.

Examples:
  lyra resolve dev
  ssh "me@$(lyra resolve dev)"`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeEnvironments,
	RunE: func(cmd *cobra.Command, args []string) error {
		return resolveCommand(cmd.OutOrStdout(), args[0])
	},
}

// Flags for the url command
var (
	urlPort string
	urlPath string
)

var urlCmd = &cobra.Command{
	Use:   "url <env>",
	Short: "Print a worker service URL for an environment",
	Long: `Rebuild the worker base URL of <env> with another port, keeping its base
path and appending --path.

Examples:
  lyra url dev --port 31111
  lyra url dev --port 31111 --path "/?token=abc"`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeEnvironments,
	RunE: func(cmd *cobra.Command, args []string) error {
		return urlCommand(cmd.OutOrStdout(), args[0], urlPort, urlPath)
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&machineMode, "json", false, "output as JSON")
	urlCmd.Flags().StringVar(&urlPort, "port", "", "service port on the worker (required)")
	urlCmd.Flags().StringVar(&urlPath, "path", "", "path, query and fragment to append")
	_ = urlCmd.MarkFlagRequired("port")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(urlCmd)
}

func resolveCommand(w io.Writer, ref string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	env, err := reg.environment(ref)
	if err != nil {
		return err
	}

	host := guide.ResolveHost(env)
	if MachineMode() {
		return WriteJSONSuccess(w, resolveResult{ID: env.ID, JumpHost: host})
	}
	fmt.Fprintln(w, host)
	return nil
}

func urlCommand(w io.Writer, ref, port, path string) error {
	p, ok := guide.ParseServicePort(port)
	if !ok {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' is not a valid port", port),
			"Use a number between 1 and 65535.")
	}

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	env, err := reg.environment(ref)
	if err != nil {
		return err
	}
	if env.WorkerServerBaseURL == nil || *env.WorkerServerBaseURL == "" {
		return errors.New(errors.ErrGuide,
			fmt.Sprintf("Environment '%s' has no worker base URL", env.Label()),
			"Set worker_server_base_url for it in "+reg.path)
	}

	u, err := guide.WorkerServiceURL(*env.WorkerServerBaseURL, p, path)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, u)
	return nil
}
