package doctor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lyra-labs/lyra/internal/guide"
	"github.com/lyra-labs/lyra/internal/util"
	"github.com/samber/lo"
)

// EnvAliasCheck fails when two environments sanitize to the same ssh alias.
// Their config blocks would overwrite each other in ~/.ssh/config.
type EnvAliasCheck struct {
	Environments []guide.Environment
}

func (c *EnvAliasCheck) Name() string     { return "env_aliases" }
func (c *EnvAliasCheck) Category() string { return CategoryEnvironments }

func (c *EnvAliasCheck) Run() CheckResult {
	owners := lo.GroupBy(c.Environments, guide.EnvAlias)

	var clashes []string
	for alias, envs := range owners {
		if len(envs) > 1 {
			ids := lo.Map(envs, func(e guide.Environment, _ int) string { return e.ID })
			clashes = append(clashes, fmt.Sprintf("%s (%s)", alias, strings.Join(ids, ", ")))
		}
	}
	sort.Strings(clashes)

	if len(clashes) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Environments share an ssh alias: " + strings.Join(clashes, "; "),
			Suggestion: "Rename one of them; aliases are built from the lowercased name with symbols replaced by '-'",
		}
	}
	return pass(c.Name(), fmt.Sprintf("%d unique ssh aliases", len(owners)))
}

// JumpHostCheck warns when one jump alias stands for different addresses.
// A merged ssh_config keeps only the first.
type JumpHostCheck struct {
	Environments []guide.Environment
}

func (c *JumpHostCheck) Name() string     { return "jump_hosts" }
func (c *JumpHostCheck) Category() string { return CategoryEnvironments }

func (c *JumpHostCheck) Run() CheckResult {
	byAlias := lo.GroupBy(c.Environments, guide.JumpAlias)
	order := lo.Uniq(lo.Map(c.Environments, func(e guide.Environment, _ int) string { return guide.JumpAlias(e) }))

	var mismatched []string
	for _, alias := range order {
		addrs := lo.Uniq(lo.Map(byAlias[alias], func(e guide.Environment, _ int) string { return guide.ResolveHost(e) }))
		if len(addrs) > 1 {
			sort.Strings(addrs)
			mismatched = append(mismatched, fmt.Sprintf("%s -> %s", alias, strings.Join(addrs, ", ")))
		}
	}

	if len(mismatched) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Jump alias maps to several hosts: " + strings.Join(mismatched, "; "),
			Suggestion: "Give workers with different addresses different worker_server_name values",
		}
	}
	return pass(c.Name(), fmt.Sprintf("%d jump %s", len(order), util.Pluralize(len(order), "host", "hosts")))
}

// BaseURLCheck warns about worker base URLs that have no usable hostname,
// where the jump host silently falls back to the worker name.
type BaseURLCheck struct {
	Environments []guide.Environment
}

func (c *BaseURLCheck) Name() string     { return "worker_base_urls" }
func (c *BaseURLCheck) Category() string { return CategoryEnvironments }

func (c *BaseURLCheck) Run() CheckResult {
	broken := lo.Filter(c.Environments, func(e guide.Environment, _ int) bool {
		return e.HasWorker() && e.WorkerServerBaseURL != nil && *e.WorkerServerBaseURL != "" && !guide.UsesBaseURL(e)
	})
	fallbacks := lo.Map(broken, func(e guide.Environment, _ int) string {
		return fmt.Sprintf("%s (%q)", e.ID, *e.WorkerServerBaseURL)
	})

	if len(fallbacks) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Base URL has no hostname, using worker name: " + strings.Join(fallbacks, ", "),
			Suggestion: "Use an absolute URL such as https://worker-01.example.com",
		}
	}
	return pass(c.Name(), "Worker base URLs resolve")
}

// NewEnvironmentChecks returns the checks over the registry's environments.
func NewEnvironmentChecks(envs []guide.Environment) []Check {
	return []Check{
		&EnvAliasCheck{Environments: envs},
		&JumpHostCheck{Environments: envs},
		&BaseURLCheck{Environments: envs},
	}
}
