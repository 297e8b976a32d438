package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(storyCount int, mode string, hints string, width int, th theme) string {
	left := fmt.Sprintf(" %d stories", storyCount)
	if mode != "default" {
		left += " · display: " + mode
	}

	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return th.statusBar.Width(width).Render(bar)
}
