package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/lyra-labs/lyra/internal/i18n"
	"github.com/lyra-labs/lyra/pkg/sshutil"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	// Nothing is focused, so the selected row must look like any other.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	return NewTable(columns, tableRows).View()
}

// EnvironmentRow is one line of the environment list.
type EnvironmentRow struct {
	ID       string
	Name     string
	JumpHost string
	Alias    string
	Port     string
}

// RenderEnvironmentTable renders the environment list. Column widths grow
// to fit the widest value.
func RenderEnvironmentTable(rows []EnvironmentRow, tr *i18n.Translator) string {
	if len(rows) == 0 {
		return tr.T(i18n.MsgNoEnvironments)
	}

	titles := []string{
		tr.T(i18n.MsgColID),
		tr.T(i18n.MsgColName),
		tr.T(i18n.MsgColJumpHost),
		tr.T(i18n.MsgColAlias),
		tr.T(i18n.MsgColPort),
	}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.ID, r.Name, r.JumpHost, r.Alias, r.Port}
	}

	columns := make([]TableColumn, len(titles))
	for i, title := range titles {
		width := lipgloss.Width(title)
		for _, row := range cells {
			width = max(width, lipgloss.Width(row[i]))
		}
		columns[i] = TableColumn{Title: title, Width: width + 2}
	}

	return RenderSimpleTable(columns, cells)
}

// RenderConflicts lists aliases that clash with an existing SSH config.
func RenderConflicts(conflicts []sshutil.Conflict, configPath string, tr *i18n.Translator) string {
	successStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	warnStyle := lipgloss.NewStyle().Foreground(ColorWarning)

	if len(conflicts) == 0 {
		return successStyle.Render(SymbolSuccess) + " " + tr.T(i18n.MsgNoConflicts, configPath) + "\n"
	}

	var b strings.Builder
	for _, c := range conflicts {
		b.WriteString(warnStyle.Render(SymbolWarning) + " " +
			tr.T(i18n.MsgConflict, c.Alias, configPath, strings.Join(c.Fields, ", ")) + "\n")
		b.WriteString("    " + labelStyle.Render(c.Existing.Description()+" "+SymbolArrow+" "+c.Generated.Description()) + "\n")
	}
	return b.String()
}

// padRight pads s with spaces to width, measuring visible width so styled
// strings line up.
func padRight(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}
