package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(shown, total int, width int, m mode, notice string) string {
	left := fmt.Sprintf(" %d stories", total)
	if shown != total {
		left = fmt.Sprintf(" %d of %d stories", shown, total)
	}
	if notice != "" {
		left += " · " + notice
	}

	var right string
	switch m {
	case modeSearch:
		right = " ↑/↓ move  enter/esc done "
	default:
		right = " / search  d dismiss  o open  ? help  q quit "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
