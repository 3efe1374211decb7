package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lyra-labs/lyra/internal/guide"
	"github.com/lyra-labs/lyra/internal/i18n"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	labelStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	codeStyle    = lipgloss.NewStyle().Foreground(ColorInfo).PaddingLeft(2)
	hintStyle    = lipgloss.NewStyle().Foreground(ColorMuted).PaddingLeft(2)
)

// RenderGuide formats a guide for the terminal. title is usually the
// environment label. Code blocks keep their exact text so they can be
// copied, only indented.
func RenderGuide(g guide.Guide, title string, tr *i18n.Translator) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(tr.T(i18n.MsgEnvironment)+": "+title) + "\n")
	b.WriteString(renderField(tr.T(i18n.MsgJumpHost), g.JumpHost, tr) + "\n")
	b.WriteString(renderField(tr.T(i18n.MsgTargetUser), g.TargetUser, tr) + "\n")
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(tr.T(i18n.MsgOneShotCommand)) + "\n")
	b.WriteString(codeStyle.Render(g.OneShotCommand) + "\n")
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(tr.T(i18n.MsgSSHConfig)) + "\n")
	b.WriteString(codeStyle.Render(g.SSHConfig) + "\n")
	b.WriteString("\n")

	b.WriteString(hintStyle.Render(tr.T(i18n.MsgPlaceholderHint, guide.HostUserPlaceholder)) + "\n")
	b.WriteString(hintStyle.Render(tr.T(i18n.MsgConfigHint, g.EnvAlias)) + "\n")

	return b.String()
}

// renderField renders "  label  value" with labels padded to a common width.
func renderField(label, value string, tr *i18n.Translator) string {
	width := max(
		lipgloss.Width(tr.T(i18n.MsgJumpHost)),
		lipgloss.Width(tr.T(i18n.MsgTargetUser)),
	)
	return "  " + labelStyle.Render(padRight(label, width)) + "  " + value
}
