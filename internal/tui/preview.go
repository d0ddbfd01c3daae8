package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xanthek/hackerstories/internal/story"
)

func renderPreview(s *story.Story, width, height int) string {
	if s == nil {
		return lipglossCenter("Nothing selected", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := s.Title
	if title == "" {
		title = "(untitled)"
	}

	link := s.URL
	if link == "" {
		link = "(no link)"
	}

	row := func(label, value string) string {
		return previewLabelStyle.Render(label) + previewValueStyle.Render(value)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		previewTitleStyle.Width(contentWidth).Render(title),
		previewLinkStyle.Render(truncateStr(link, contentWidth)),
		"",
		row("Author", s.Author),
		row("Comments", strconv.Itoa(s.NumComments)),
		row("Points", strconv.Itoa(s.Points)),
		row("ID", string(s.ObjectID)),
		"",
		helpDimStyle.Render("o open · d dismiss"),
	)

	lines := strings.Split(content, "\n")
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
