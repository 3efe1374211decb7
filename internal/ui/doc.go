// Package ui renders lyra's terminal output using Lip Gloss styles and
// Bubbles tables.
//
// # Components Overview
//
//	RenderGuide            - Connection guide for one environment
//	RenderEnvironmentTable - Environment list (lyra env list)
//	RenderConflicts        - Alias clashes with ~/.ssh/config
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful checks
//	ColorWarning   (yellow) - Conflicts
//	ColorInfo      (cyan)   - Commands and config blocks
//	ColorMuted     (gray)   - Labels and hints
//	ColorSecondary (blue)   - Section headers
//
// ConfigureColor applies the output.color setting; DisableColors switches
// to monochrome output for --no-color.
package ui
