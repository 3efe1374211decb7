// Package sshutil reads OpenSSH client configuration so generated guides can
// be checked against what a user already has in ~/.ssh/config.
package sshutil

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kevinburke/ssh_config"
)

// SSHHostEntry represents a parsed host entry from SSH config.
type SSHHostEntry struct {
	Alias     string `json:"alias"`                // The Host pattern (alias)
	Hostname  string `json:"hostname,omitempty"`   // The HostName value (actual host to connect to)
	User      string `json:"user,omitempty"`       // The User value
	Port      string `json:"port,omitempty"`       // The Port value
	ProxyJump string `json:"proxy_jump,omitempty"` // The ProxyJump value
}

// Description returns a user-friendly description of the host.
func (h SSHHostEntry) Description() string {
	parts := []string{}

	if h.Hostname != "" && h.Hostname != h.Alias {
		parts = append(parts, h.Hostname)
	}

	if h.User != "" {
		parts = append(parts, "user: "+h.User)
	}

	if h.Port != "" && h.Port != "22" {
		parts = append(parts, "port: "+h.Port)
	}

	if h.ProxyJump != "" {
		parts = append(parts, "via: "+h.ProxyJump)
	}

	if len(parts) == 0 {
		return h.Alias
	}

	return strings.Join(parts, ", ")
}

// DefaultConfigPath returns ~/.ssh/config.
func DefaultConfigPath() string {
	return filepath.Join(homeDir(), ".ssh", "config")
}

// ParseSSHConfig parses ~/.ssh/config and returns all concrete host entries.
func ParseSSHConfig() ([]SSHHostEntry, error) {
	return ParseSSHConfigFile(DefaultConfigPath())
}

// ParseSSHConfigFile parses the specified SSH config file. A missing file
// yields no entries and no error.
func ParseSSHConfigFile(configPath string) ([]SSHHostEntry, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return DecodeHosts(content)
}

// DecodeHosts parses SSH config text and returns one entry per concrete
// alias, sorted by alias. Wildcard patterns are skipped, and parsing stops
// at the first Match block, which ssh_config can't evaluate.
func DecodeHosts(content []byte) ([]SSHHostEntry, error) {
	cfg, err := ssh_config.Decode(bytes.NewReader(stripMatchBlocks(content)))
	if err != nil {
		return nil, err
	}

	var hosts []SSHHostEntry
	seen := make(map[string]bool)

	for _, host := range cfg.Hosts {
		for _, pattern := range host.Patterns {
			alias := pattern.String()

			if strings.ContainsAny(alias, "*?!") {
				continue
			}
			if seen[alias] {
				continue
			}
			seen[alias] = true

			entry := SSHHostEntry{Alias: alias}
			entry.Hostname, _ = cfg.Get(alias, "HostName")
			entry.User, _ = cfg.Get(alias, "User")
			entry.Port, _ = cfg.Get(alias, "Port")
			entry.ProxyJump, _ = cfg.Get(alias, "ProxyJump")

			hosts = append(hosts, entry)
		}
	}

	sort.Slice(hosts, func(i, j int) bool {
		return hosts[i].Alias < hosts[j].Alias
	})

	return hosts, nil
}

// stripMatchBlocks drops everything from the first Match directive on.
func stripMatchBlocks(content []byte) []byte {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "match ") {
			return []byte(strings.Join(lines[:i], "\n"))
		}
	}
	return content
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.Getenv("HOME")
	}
	return home
}
