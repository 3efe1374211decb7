// Package cli implements the lyra command-line interface.
//
// Each Cobra command is a thin wrapper: it parses flags, then calls a
// function taking an io.Writer (guideCommand, envListCommand, ...) that
// loads the registry and does the work. Tests call those functions
// directly.
//
// # Command Structure
//
//	lyra guide <env>        - Connection guide for one environment
//	lyra ssh-config [env..] - Combined ssh_config for many environments
//	lyra resolve <env>      - Jump host address only
//	lyra url <env>          - Worker service URL with another port
//	lyra env list           - Table of registered environments
//	lyra env add            - Add an environment (flags or interactive form)
//	lyra doctor             - Diagnose registry and ssh_config problems
//	lyra version            - Build information
//	lyra completion <shell> - Shell completion script
//
// # Flag Handling
//
// Global flags (--config, --lang, --no-color, --verbose) are defined on the
// root command. Commands that support --json bind it to the shared
// machineMode flag; output then goes through JSONEnvelope, and Execute
// renders errors as JSON too.
//
// # Registry and Language
//
// loadRegistry finds the registry file, validates it, applies the
// configured color mode and picks the output language from --lang,
// LYRA_LANG, the registry's lang setting and the locale, in that order.
package cli
