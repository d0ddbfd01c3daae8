package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

func newSearchInput(initial string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "filter stories by title"
	ti.Prompt = ""
	ti.CharLimit = 100
	ti.SetValue(initial)
	ti.Focus()
	return ti
}

// renderSearchBar draws the labelled search box.
func renderSearchBar(input textinput.Model, width int, active bool) string {
	label := searchLabelStyle.Render("Search:")
	if active {
		label = searchLabelActiveStyle.Render("Search:")
	}
	row := label + " " + input.View()
	return lipgloss.NewStyle().Width(width).MaxHeight(1).Render(row)
}
