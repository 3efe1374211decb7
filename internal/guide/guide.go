package guide

import (
	"strings"

	"github.com/lyra-labs/lyra/internal/util"
)

const (
	// HostUserPlaceholder stands in for the SSH user on the jump host. The
	// registry does not know it, so the operator replaces it by hand.
	HostUserPlaceholder = "<host-ssh-user>"

	// DefaultTargetUser is used when the environment has no container user.
	DefaultTargetUser = "root"

	// LocalJumpAlias names the jump host of collocated environments.
	LocalJumpAlias = "lyra-host"

	workerAliasPrefix = "lyra-worker-"
	envAliasPrefix    = "lyra-env-"
	jumpPort          = "22"
)

// Build derives the full connection guide for env. It never fails: every
// optional field has a default.
func Build(env Environment) Guide {
	g := Guide{
		JumpHost:   ResolveHost(env),
		TargetUser: TargetUser(env),
		JumpAlias:  JumpAlias(env),
		EnvAlias:   EnvAlias(env),
	}
	port := util.Itoa(env.SSHPort)

	g.OneShotCommand = "ssh -J " + HostUserPlaceholder + "@" + jumpDestination(g.JumpHost) +
		" -p " + port + " " + g.TargetUser + "@" + LoopbackHost

	g.SSHConfig = strings.Join(append(
		append(jumpStanza(g), ""),
		envStanza(g, port)...,
	), "\n")

	return g
}

// jumpDestination formats host for the -J argument, which needs IPv6
// literals bracketed. HostName lines take the bare form.
func jumpDestination(host string) string {
	if strings.Contains(host, ":") {
		return "[" + host + "]"
	}
	return host
}

// TargetUser returns the user for the final hop into the environment.
func TargetUser(env Environment) string {
	if user := value(env.ContainerUser); user != "" {
		return user
	}
	return DefaultTargetUser
}

// JumpAlias returns the ssh_config alias for the environment's jump host.
// Environments on the same worker share the alias.
func JumpAlias(env Environment) string {
	if !env.HasWorker() {
		return LocalJumpAlias
	}
	return workerAliasPrefix + SanitizeAlias(value(env.WorkerServerName))
}

// EnvAlias returns the ssh_config alias for the environment itself.
func EnvAlias(env Environment) string {
	return envAliasPrefix + SanitizeAlias(env.Label())
}

func jumpStanza(g Guide) []string {
	return []string{
		"Host " + g.JumpAlias,
		"  HostName " + g.JumpHost,
		"  User " + HostUserPlaceholder,
		"  Port " + jumpPort,
	}
}

func envStanza(g Guide, port string) []string {
	return []string{
		"Host " + g.EnvAlias,
		"  HostName " + LoopbackHost,
		"  Port " + port,
		"  User " + g.TargetUser,
		"  ProxyJump " + g.JumpAlias,
	}
}
