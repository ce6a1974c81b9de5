package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(`12`))

// heading styles s if stdout is a terminal.
func heading(s string) string {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return s
	}
	return headingStyle.Render(s)
}
