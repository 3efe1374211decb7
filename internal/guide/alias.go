package guide

import (
	"regexp"
	"strings"
)

// FallbackAlias is returned by SanitizeAlias when nothing usable is left.
const FallbackAlias = "env"

var (
	aliasInvalidRun = regexp.MustCompile(`[^a-z0-9-]+`)
	aliasHyphenRun  = regexp.MustCompile(`-+`)
)

// SanitizeAlias turns an arbitrary label into a token that is safe as an
// ssh_config Host alias: lower case, only [a-z0-9-], no repeated or
// edge hyphens, never empty.
func SanitizeAlias(raw string) string {
	s := strings.ToLower(raw)
	s = aliasInvalidRun.ReplaceAllString(s, "-")
	s = aliasHyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return FallbackAlias
	}
	return s
}
