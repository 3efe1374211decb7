package guide

import (
	"strings"

	"github.com/lyra-labs/lyra/internal/util"
)

// MergeConfigs renders a single ssh_config for several environments.
// Jump stanzas are emitted once per jump alias, in order of first
// appearance, ahead of the environment stanzas. When two environments map
// to the same jump alias with different addresses, the first one wins.
func MergeConfigs(envs []Environment) string {
	var jumps, hosts [][]string
	seen := make(map[string]bool)

	for _, env := range envs {
		g := Build(env)
		if !seen[g.JumpAlias] {
			seen[g.JumpAlias] = true
			jumps = append(jumps, jumpStanza(g))
		}
		hosts = append(hosts, envStanza(g, util.Itoa(env.SSHPort)))
	}

	stanzas := make([]string, 0, len(jumps)+len(hosts))
	for _, s := range append(jumps, hosts...) {
		stanzas = append(stanzas, strings.Join(s, "\n"))
	}
	return strings.Join(stanzas, "\n\n")
}
