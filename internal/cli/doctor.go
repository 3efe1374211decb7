package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lyra-labs/lyra/internal/config"
	"github.com/lyra-labs/lyra/internal/doctor"
	"github.com/lyra-labs/lyra/internal/errors"
	"github.com/lyra-labs/lyra/internal/guide"
	"github.com/lyra-labs/lyra/internal/ui"
	"github.com/spf13/cobra"
)

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

var doctorSSHConfig string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the registry and ssh_config for problems",
	Long: `Diagnose problems that make generated guides misleading:

  - registry file missing or invalid
  - environments whose names produce the same ssh alias
  - one jump alias standing for several worker addresses
  - worker base URLs without a hostname
  - aliases already in ~/.ssh/config with other settings

Exits 1 when a check fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(cmd.OutOrStdout(), doctorSSHConfig)
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&machineMode, "json", false, "output as JSON")
	doctorCmd.Flags().StringVar(&doctorSSHConfig, "ssh-config", "", "ssh_config to compare against (default: ~/.ssh/config)")
	rootCmd.AddCommand(doctorCmd)
}

// doctorCommand runs every check and reports the results.
func doctorCommand(w io.Writer, sshConfig string) error {
	// Load errors are reported by the config checks, so environments
	// are only checked when the registry is usable.
	var envs []guide.Environment
	if cfg, _, err := config.LoadOrDefault(cfgFile); err == nil && config.Validate(cfg) == nil {
		envs = cfg.Environments
	}

	var checks []doctor.Check
	checks = append(checks, doctor.NewConfigChecks(cfgFile)...)
	checks = append(checks, doctor.NewEnvironmentChecks(envs)...)
	checks = append(checks, doctor.NewSSHChecks(sshConfigPath(sshConfig), envs)...)

	results := doctor.RunAllParallel(checks)

	if MachineMode() {
		if err := WriteJSONSuccess(w, buildDoctorOutput(checks, results)); err != nil {
			return err
		}
	} else {
		renderDoctorText(w, checks, results)
	}

	if doctor.HasFailures(results) {
		return errors.NewExitError(1)
	}
	return nil
}

// buildDoctorOutput groups results by category for JSON output.
func buildDoctorOutput(checks []doctor.Check, results []doctor.CheckResult) DoctorOutput {
	grouped := make(map[string][]doctor.CheckResult)
	for i, check := range checks {
		grouped[check.Category()] = append(grouped[check.Category()], results[i])
	}

	output := DoctorOutput{Categories: []CategoryOutput{}}
	for _, cat := range doctor.CategoryOrder {
		if rs, ok := grouped[cat]; ok {
			output.Categories = append(output.Categories, CategoryOutput{Name: cat, Results: rs})
		}
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		AllClear: !doctor.HasIssues(results),
	}
	return output
}

func renderDoctorText(w io.Writer, checks []doctor.Check, results []doctor.CheckResult) {
	headerStyle := lipgloss.NewStyle().Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)

	grouped := make(map[string][]int)
	for i, check := range checks {
		grouped[check.Category()] = append(grouped[check.Category()], i)
	}

	for _, category := range doctor.CategoryOrder {
		indices := grouped[category]
		if len(indices) == 0 {
			continue
		}

		fmt.Fprintln(w, headerStyle.Render(category))
		for _, idx := range indices {
			r := results[idx]
			fmt.Fprintf(w, "  %s %s\n", statusSymbol(r.Status), r.Message)
			if r.Suggestion != "" && r.Status != doctor.StatusPass {
				fmt.Fprintf(w, "    %s\n", mutedStyle.Render(r.Suggestion))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("━", 40))
	summary := doctor.Summary(results)
	if doctor.HasIssues(results) {
		fmt.Fprintf(w, "%s %s\n", errorStyle.Render(ui.SymbolFail), summary)
	} else {
		fmt.Fprintf(w, "%s %s\n", successStyle.Render(ui.SymbolSuccess), summary)
	}
}

func statusSymbol(s doctor.CheckStatus) string {
	switch s {
	case doctor.StatusPass:
		return lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render(ui.SymbolSuccess)
	case doctor.StatusWarn:
		return lipgloss.NewStyle().Foreground(ui.ColorWarning).Render(ui.SymbolWarning)
	default:
		return lipgloss.NewStyle().Foreground(ui.ColorError).Render(ui.SymbolFail)
	}
}
