package doctor

import (
	"fmt"
	"strings"

	"github.com/lyra-labs/lyra/internal/guide"
	"github.com/lyra-labs/lyra/pkg/sshutil"
)

// SSHConfigCheck verifies the user's ssh_config parses.
type SSHConfigCheck struct {
	Path string
}

func (c *SSHConfigCheck) Name() string     { return "ssh_config" }
func (c *SSHConfigCheck) Category() string { return CategorySSH }

func (c *SSHConfigCheck) Run() CheckResult {
	hosts, err := sshutil.ParseSSHConfigFile(c.Path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Can't parse %s: %v", c.Path, err),
			Suggestion: "Fix the syntax error; ssh will reject the file too",
		}
	}
	if hosts == nil {
		return pass(c.Name(), c.Path+" not present")
	}
	return pass(c.Name(), fmt.Sprintf("%s: %d host entries", c.Path, len(hosts)))
}

// SSHConflictCheck warns when aliases lyra generates already exist in the
// user's ssh_config with other settings.
type SSHConflictCheck struct {
	Path         string
	Environments []guide.Environment
}

func (c *SSHConflictCheck) Name() string     { return "ssh_aliases" }
func (c *SSHConflictCheck) Category() string { return CategorySSH }

func (c *SSHConflictCheck) Run() CheckResult {
	if len(c.Environments) == 0 {
		return pass(c.Name(), "No environments to compare")
	}

	existing, err := sshutil.ParseSSHConfigFile(c.Path)
	if err != nil {
		// SSHConfigCheck reports this
		return CheckResult{Name: c.Name(), Status: StatusWarn, Message: "Skipped: ssh_config unreadable"}
	}

	generated, err := sshutil.DecodeHosts([]byte(guide.MergeConfigs(c.Environments)))
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Generated ssh_config doesn't parse: %v", err),
			Suggestion: "Check environment names and worker fields for unusual characters",
		}
	}

	conflicts := sshutil.FindConflicts(existing, generated)
	if len(conflicts) > 0 {
		aliases := make([]string, len(conflicts))
		for i, cf := range conflicts {
			aliases[i] = fmt.Sprintf("%s (%s)", cf.Alias, strings.Join(cf.Fields, ", "))
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Aliases differ from " + c.Path + ": " + strings.Join(aliases, "; "),
			Suggestion: "Replace those Host blocks with the output of 'lyra ssh-config'",
		}
	}
	return pass(c.Name(), "No alias conflicts")
}

// NewSSHChecks returns the ssh_config checks for path.
func NewSSHChecks(path string, envs []guide.Environment) []Check {
	return []Check{
		&SSHConfigCheck{Path: path},
		&SSHConflictCheck{Path: path, Environments: envs},
	}
}
