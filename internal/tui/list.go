package tui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/xanthek/hackerstories/internal/story"
)

func hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func renderListItem(s story.Story, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	title := s.Title
	if title == "" {
		title = "(untitled)"
	}
	title = truncateStr(title, width-4)

	var line string
	if selected {
		line = itemSelectedStyle.Render("> " + title)
	} else {
		line = itemTitleStyle.Render("  " + title)
	}
	if host := hostname(s.URL); host != "" && len([]rune(title))+len(host)+3 <= width-2 {
		line += " " + itemHostStyle.Render("("+host+")")
	}

	meta := "  " + itemAuthorStyle.Render(s.Author) + itemMetaStyle.Render(
		fmt.Sprintf(" · %s · %s", plural(s.NumComments, "comment"), plural(s.Points, "point")),
	)

	return line + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderList(stories []story.Story, cursor int, height int, width int) string {
	if len(stories) == 0 {
		return lipglossCenter("No stories found", width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(stories) {
		end = len(stories)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(stories[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
