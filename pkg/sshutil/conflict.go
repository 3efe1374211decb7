package sshutil

import "strings"

// Conflict is an alias defined both in an existing SSH config and in newly
// generated config, with settings that differ.
type Conflict struct {
	Alias     string       `json:"alias"`
	Existing  SSHHostEntry `json:"existing"`
	Generated SSHHostEntry `json:"generated"`
	Fields    []string     `json:"fields"` // names of the settings that differ
}

// FindConflicts compares generated entries against existing ones by alias.
// Aliases whose HostName, User, Port and ProxyJump all agree are not
// conflicts: the block has simply been pasted before. A generated value
// written as a <placeholder> matches anything, and HostName comparison is
// case-insensitive.
func FindConflicts(existing, generated []SSHHostEntry) []Conflict {
	byAlias := make(map[string]SSHHostEntry, len(existing))
	for _, e := range existing {
		byAlias[e.Alias] = e
	}

	var conflicts []Conflict
	for _, g := range generated {
		e, ok := byAlias[g.Alias]
		if !ok {
			continue
		}
		if fields := diffFields(e, g); len(fields) > 0 {
			conflicts = append(conflicts, Conflict{
				Alias:     g.Alias,
				Existing:  e,
				Generated: g,
				Fields:    fields,
			})
		}
	}
	return conflicts
}

func diffFields(a, b SSHHostEntry) []string {
	var fields []string
	if !isPlaceholder(b.Hostname) && !strings.EqualFold(a.Hostname, b.Hostname) {
		fields = append(fields, "HostName")
	}
	if !isPlaceholder(b.User) && a.User != b.User {
		fields = append(fields, "User")
	}
	if normalizePort(a.Port) != normalizePort(b.Port) {
		fields = append(fields, "Port")
	}
	if a.ProxyJump != b.ProxyJump {
		fields = append(fields, "ProxyJump")
	}
	return fields
}

func normalizePort(p string) string {
	if p == "" {
		return "22"
	}
	return p
}

func isPlaceholder(v string) bool {
	return len(v) > 2 && strings.HasPrefix(v, "<") && strings.HasSuffix(v, ">")
}
