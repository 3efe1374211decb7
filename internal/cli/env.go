package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/lyra-labs/lyra/internal/config"
	"github.com/lyra-labs/lyra/internal/errors"
	"github.com/lyra-labs/lyra/internal/guide"
	"github.com/lyra-labs/lyra/internal/i18n"
	"github.com/lyra-labs/lyra/internal/ui"
	"github.com/lyra-labs/lyra/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// EnvAddOptions holds options for the env add command. Port is a string so
// flag and form input go through the same parsing.
type EnvAddOptions struct {
	ID        string
	Name      string
	Port      string
	User      string
	Worker    string
	WorkerURL string
}

// envListItem is one element of the env list --json payload.
type envListItem struct {
	guide.Environment
	JumpHost string `json:"jump_host"`
	EnvAlias string `json:"env_alias"`
}

var envAddOpts EnvAddOptions

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Manage the environment registry",
	Long: `List registered environments or add new ones.

Examples:
  lyra env list
  lyra env add --id e2 --name dev --port 2201 --worker worker-01
  lyra env add`,
}

var envListCmd = &cobra.Command{
	Use:   "list",
	Short: "List environments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return envListCommand(cmd.OutOrStdout())
	},
}

var envAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an environment to the registry",
	Long: `Add an environment to the registry file. Without --id, and when running
in a terminal, lyra asks for the fields interactively.

The registry is created in the current directory (.lyra.yaml) if none exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := envAddOpts
		if opts.ID == "" {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New(errors.ErrEnv,
					"--id is required when not running in a terminal",
					"Pass the fields as flags, e.g. lyra env add --id e2 --port 2201")
			}
			tr := promptTranslator()
			cancelled, err := promptEnvironment(&opts, tr)
			if err != nil {
				return err
			}
			if cancelled {
				fmt.Fprintln(cmd.OutOrStdout(), tr.T(i18n.MsgCancelled))
				return nil
			}
		}
		return envAddCommand(cmd.OutOrStdout(), opts)
	},
}

func init() {
	envListCmd.Flags().BoolVar(&machineMode, "json", false, "output as JSON")

	envAddCmd.Flags().StringVar(&envAddOpts.ID, "id", "", "environment ID")
	envAddCmd.Flags().StringVar(&envAddOpts.Name, "name", "", "display name")
	envAddCmd.Flags().StringVar(&envAddOpts.Port, "port", "", "sshd port reached through the jump host")
	envAddCmd.Flags().StringVar(&envAddOpts.User, "user", "", "user inside the container (default: root)")
	envAddCmd.Flags().StringVar(&envAddOpts.Worker, "worker", "", "worker server name (empty: same host)")
	envAddCmd.Flags().StringVar(&envAddOpts.WorkerURL, "worker-url", "", "worker base URL")

	envCmd.AddCommand(envListCmd)
	envCmd.AddCommand(envAddCmd)
	rootCmd.AddCommand(envCmd)
}

func envListCommand(w io.Writer) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	if MachineMode() {
		items := make([]envListItem, 0, len(reg.cfg.Environments))
		for _, env := range reg.cfg.Environments {
			items = append(items, envListItem{
				Environment: env,
				JumpHost:    guide.ResolveHost(env),
				EnvAlias:    guide.EnvAlias(env),
			})
		}
		return WriteJSONSuccess(w, items)
	}

	rows := make([]ui.EnvironmentRow, 0, len(reg.cfg.Environments))
	for _, env := range reg.cfg.Environments {
		rows = append(rows, ui.EnvironmentRow{
			ID:       env.ID,
			Name:     env.Name,
			JumpHost: guide.ResolveHost(env),
			Alias:    guide.EnvAlias(env),
			Port:     util.Itoa(env.SSHPort),
		})
	}
	fmt.Fprintln(w, ui.RenderEnvironmentTable(rows, reg.tr))
	return nil
}

// envAddCommand validates opts and appends the environment to the registry.
func envAddCommand(w io.Writer, opts EnvAddOptions) error {
	env, err := opts.environment()
	if err != nil {
		return err
	}

	path, tr, err := writableRegistry()
	if err != nil {
		return err
	}

	if err := config.AddEnvironment(path, env); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %s\n", ui.SymbolSuccess, tr.T(i18n.MsgAddedEnv, env.ID, path))
	return nil
}

// writableRegistry picks the file env add writes to: --config even when it
// does not exist yet, else the registry Find locates, else .lyra.yaml in
// the current directory.
func writableRegistry() (string, *i18n.Translator, error) {
	if cfgFile != "" {
		path := config.ExpandTilde(cfgFile)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, i18n.New(i18n.Resolve(langFlag, "")), nil
		}
	}

	reg, err := loadRegistry()
	if err != nil {
		return "", nil, err
	}
	if reg.path == "" {
		return config.DefaultPath(), reg.tr, nil
	}
	return reg.path, reg.tr, nil
}

// environment converts the options into an Environment. Blank optional
// fields stay nil.
func (o EnvAddOptions) environment() (guide.Environment, error) {
	port, ok := guide.ParseServicePort(o.Port)
	if !ok {
		return guide.Environment{}, errors.New(errors.ErrEnv,
			fmt.Sprintf("'%s' is not a valid ssh port", o.Port),
			"Use a number between 1 and 65535.")
	}

	env := guide.Environment{
		ID:      strings.TrimSpace(o.ID),
		Name:    strings.TrimSpace(o.Name),
		SSHPort: port,
	}
	if v := strings.TrimSpace(o.User); v != "" {
		env.ContainerUser = guide.String(v)
	}
	if v := strings.TrimSpace(o.Worker); v != "" {
		env.WorkerServerName = guide.String(v)
	}
	if v := strings.TrimSpace(o.WorkerURL); v != "" {
		env.WorkerServerBaseURL = guide.String(v)
	}
	return env, nil
}

// envFormText holds the translated labels of the env add form.
type envFormText struct {
	ID          string
	IDRequired  string
	Name        string
	NameHelp    string
	Port        string
	PortHelp    string
	PortInvalid string
	User        string
	Worker      string
	WorkerHelp  string
	WorkerURL   string
}

func newEnvFormText(tr *i18n.Translator) envFormText {
	return envFormText{
		ID:          tr.T(i18n.MsgFormID),
		IDRequired:  tr.T(i18n.MsgFormIDRequired),
		Name:        tr.T(i18n.MsgFormName),
		NameHelp:    tr.T(i18n.MsgFormNameHelp),
		Port:        tr.T(i18n.MsgFormPort),
		PortHelp:    tr.T(i18n.MsgFormPortHelp),
		PortInvalid: tr.T(i18n.MsgFormPortInvalid),
		User:        tr.T(i18n.MsgFormUser),
		Worker:      tr.T(i18n.MsgFormWorker),
		WorkerHelp:  tr.T(i18n.MsgFormWorkerHelp),
		WorkerURL:   tr.T(i18n.MsgFormWorkerURL),
	}
}

// promptTranslator picks the form language before the registry is written.
// A missing or broken registry only loses its lang setting here.
func promptTranslator() *i18n.Translator {
	configured := ""
	if cfg, _, err := config.LoadOrDefault(cfgFile); err == nil {
		configured = cfg.Lang
	}
	return i18n.New(i18n.Resolve(langFlag, configured))
}

// promptEnvironment fills opts from an interactive form. Fields already set
// by flags are used as defaults.
func promptEnvironment(opts *EnvAddOptions, tr *i18n.Translator) (cancelled bool, err error) {
	text := newEnvFormText(tr)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(text.ID).
				Value(&opts.ID).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return stderrors.New(text.IDRequired)
					}
					return nil
				}),
			huh.NewInput().
				Title(text.Name).
				Description(text.NameHelp).
				Value(&opts.Name),
			huh.NewInput().
				Title(text.Port).
				Description(text.PortHelp).
				Value(&opts.Port).
				Validate(func(s string) error {
					if _, ok := guide.ParseServicePort(s); !ok {
						return stderrors.New(text.PortInvalid)
					}
					return nil
				}),
			huh.NewInput().
				Title(text.User).
				Placeholder(guide.DefaultTargetUser).
				Value(&opts.User),
		),
		huh.NewGroup(
			huh.NewInput().
				Title(text.Worker).
				Description(text.WorkerHelp).
				Value(&opts.Worker),
			huh.NewInput().
				Title(text.WorkerURL).
				Placeholder("https://worker-01.example.com").
				Value(&opts.WorkerURL),
		),
	)

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return true, nil
		}
		return false, errors.WrapWithCode(err, errors.ErrEnv,
			"Couldn't get your input",
			"Try again, or pass the fields as flags.")
	}
	return false, nil
}
