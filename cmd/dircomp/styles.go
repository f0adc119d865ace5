package main

import (
	"dircomp/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7B61FF"))

	dirStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5A9"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73F59F"))

	invalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F25D94"))

	mimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F25D94")).
			Bold(true)
)

// renderEntry formats one classified entry for terminal output.
func renderEntry(e types.Entry) string {
	switch k := e.Kind.(type) {
	case types.KindDirectory:
		return dirStyle.Render(e.Name+"/") + " " + mimeStyle.Render(e.Mime())
	case types.KindSymLink:
		return linkStyle.Render(e.Name+" -> "+k.Target) + " " + mimeStyle.Render(e.Mime())
	case types.KindInvalid:
		return invalidStyle.Render(e.Name + " (unreadable)")
	default:
		return e.Name + " " + mimeStyle.Render(e.Mime())
	}
}
