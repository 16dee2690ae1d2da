package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Six colour pairs, one per kind of row. Plain ANSI colours so the screen
// looks the same on a bare console as in a terminal emulator.
var (
	// Path of the current directory
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Background(lipgloss.Color("3"))

	FileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Background(lipgloss.Color("0"))

	DirectoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Background(lipgloss.Color("0"))

	// Cursor row
	CursorFileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Background(lipgloss.Color("4"))

	CursorDirectoryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("2")).
				Background(lipgloss.Color("4"))

	// Position counter
	FooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Background(lipgloss.Color("6"))
)

func entryStyle(isDir, cursor bool) lipgloss.Style {
	switch {
	case cursor && isDir:
		return CursorDirectoryStyle
	case cursor:
		return CursorFileStyle
	case isDir:
		return DirectoryStyle
	default:
		return FileStyle
	}
}
