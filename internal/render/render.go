// Package render holds the lipgloss styles used when printing extracted
// records to the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	valueStyle = lipgloss.NewStyle()

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	spoilerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Header renders a section heading
func Header(text string) string {
	return headerStyle.Render(text)
}

// KeyValue renders a "Label: value" line
func KeyValue(label, value string) string {
	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

// Muted renders secondary information (URLs, counts)
func Muted(text string) string {
	return mutedStyle.Render(text)
}

// SpoilerWarning renders the spoiler marker line
func SpoilerWarning() string {
	return spoilerStyle.Render("Contains Spoilers")
}

// Divider renders a horizontal separator line
func Divider() string {
	return dividerStyle.Render(strings.Repeat("─", 50))
}

// Bullet renders a list entry
func Bullet(text string) string {
	return valueStyle.Render("• " + text)
}
