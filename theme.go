package main

import (
	"github.com/Rshep3087/qtrs/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Theme contains all the colors used for command output.
type Theme struct {
	Primary       lipgloss.Color
	Error         lipgloss.Color
	Border        lipgloss.Color
	Text          lipgloss.Color
	SecondaryText lipgloss.Color
}

// newTheme creates a Theme from config.Colors.
func newTheme(colors config.Colors) Theme {
	return Theme{
		Primary:       parseColor(colors.Primary, "#ffd644"),
		Error:         parseColor(colors.Error, "#ff0000"),
		Border:        parseColor(colors.Border, "99"),
		Text:          parseColor(colors.Text, "245"),
		SecondaryText: parseColor(colors.SecondaryText, "241"),
	}
}

// parseColor parses a color string (hex or ANSI) and returns a lipgloss.Color
// Falls back to defaultColor if parsing fails or input is empty.
func parseColor(colorStr, defaultColor string) lipgloss.Color {
	if colorStr == "" {
		return lipgloss.Color(defaultColor)
	}
	// lipgloss.Color accepts both hex colors ("#ff0000") and ANSI codes ("21")
	return lipgloss.Color(colorStr)
}

// titleStyle renders the heading printed above a table.
func (th Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(th.Primary).Bold(true)
}

// createStyledTable returns a bordered table with alternating row colors.
func (th Theme) createStyledTable(headers ...string) *table.Table {
	var (
		headerStyle  = lipgloss.NewStyle().Foreground(th.Border).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(th.Text)
		evenRowStyle = cellStyle.Foreground(th.SecondaryText)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(th.Border)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
