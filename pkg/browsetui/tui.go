// Package browsetui implements an interactive terminal directory browser
// over the fmkit library packages.
package browsetui

import (
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/filemanpro/fmkit/pkg/classify"
)

var (
	pathStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
	dirStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	sizeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0, 0, 0)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 2)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

// categoryStyles colors entry names by their classification.
var categoryStyles = map[classify.Category]lipgloss.Style{
	classify.Source:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	classify.Script:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	classify.Document:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	classify.Data:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	classify.Image:      lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	classify.Archive:    lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
	classify.Executable: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	classify.Unknown:    lipgloss.NewStyle(),
}

func keyExits(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return true
	}

	return false
}
