package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xanthek/hackerstories/internal/browser"
	"github.com/xanthek/hackerstories/internal/config"
	"github.com/xanthek/hackerstories/internal/feed"
	"github.com/xanthek/hackerstories/internal/kv"
	"github.com/xanthek/hackerstories/internal/story"
)

const (
	appTitle       = "My Hacker Stories"
	errorMessage   = "Something went wrong ..."
	loadingMessage = "Loading..."
)

type mode int

const (
	modeSearch mode = iota
	modeNormal
	modeHelp
)

type App struct {
	cfg     *config.Config
	fetcher feed.Fetcher
	term    *kv.Value
	logger  *slog.Logger

	state  story.State
	cursor int
	mode   mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model

	// Sticky until the next keypress
	err    error
	notice string
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg     *config.Config
	Fetcher feed.Fetcher
	Term    *kv.Value
	Logger  *slog.Logger
}

func NewApp(opts RunOpts) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cfg := opts.Cfg
	if cfg == nil {
		cfg = &config.Config{}
	}
	term := opts.Term
	if term == nil {
		term = kv.Load(nil, cfg.Key(), cfg.DefaultSearch, logger)
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		cfg:         cfg,
		fetcher:     opts.Fetcher,
		term:        term,
		logger:      logger,
		searchInput: newSearchInput(term.Get()),
		spinner:     sp,
		mode:        modeSearch,
	}
}

// Init starts the one fetch of the app's lifetime.
func (a *App) Init() tea.Cmd {
	a.dispatch(story.Action{Kind: story.FetchInit})
	return tea.Batch(a.fetchStoriesCmd(), a.spinner.Tick, textinput.Blink)
}

func (a *App) dispatch(act story.Action) {
	a.logger.Debug("dispatch", "action", act.Kind.String(), "stories", len(act.Stories))
	a.state = story.Reduce(a.state, act)
	a.clampCursor()
}

// fetchStoriesCmd captures the fetcher and deadline into the closure so the
// command never touches App from its goroutine.
func (a *App) fetchStoriesCmd() tea.Cmd {
	f := a.fetcher
	timeout := a.cfg.TimeoutDuration()
	return func() tea.Msg {
		if f == nil {
			return storiesFetchedMsg{err: fmt.Errorf("no story source configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		stories, err := f.Fetch(ctx)
		return storiesFetchedMsg{stories: stories, err: err}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

// visible is the filtered view, derived from the collection and the
// current search term on every call.
func (a *App) visible() []story.Story {
	return story.Filter(a.state.Stories, a.searchInput.Value())
}

func (a *App) selected() *story.Story {
	v := a.visible()
	if a.cursor < 0 || a.cursor >= len(v) {
		return nil
	}
	return &v[a.cursor]
}

func (a *App) clampCursor() {
	n := len(a.visible())
	if a.cursor >= n {
		a.cursor = max(0, n-1)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		a.err = nil
		a.notice = ""
		return a.handleKey(msg)

	case storiesFetchedMsg:
		if msg.err != nil {
			a.logger.Warn("fetching stories", "source", a.cfg.Source.Name, "error", msg.err)
		} else {
			a.logger.Info("fetched stories", "source", a.cfg.Source.Name, "count", len(msg.stories))
		}
		a.dispatch(feed.ResultAction(msg.stories, msg.err))
		return a, nil

	case openErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.state.IsLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeNormal
		}
		return a, nil
	}

	// Normal mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "g", "home":
		a.cursor = 0
	case "G", "end":
		a.cursor = max(0, len(a.visible())-1)
	case "d", "x", "delete":
		a.dismissSelected()
	case "o", "enter":
		if s := a.selected(); s != nil && s.URL != "" {
			return a, openBrowserCmd(s.URL)
		}
	case "/":
		a.mode = modeSearch
		return a, a.searchInput.Focus()
	case "?":
		a.mode = modeHelp
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	case "up":
		a.moveCursor(-1)
		return a, nil
	case "down":
		a.moveCursor(1)
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)

	// Only persist on actual value changes, not cursor moves etc.
	if after := a.searchInput.Value(); after != before {
		a.term.Set(after)
		a.cursor = 0
	}
	return a, cmd
}

func (a *App) moveCursor(delta int) {
	n := len(a.visible())
	next := a.cursor + delta
	if next < 0 || next >= n {
		return
	}
	a.cursor = next
}

func (a *App) dismissSelected() {
	s := a.selected()
	if s == nil {
		return
	}
	target := *s
	a.dispatch(story.Action{Kind: story.Remove, Story: target})
	a.notice = "dismissed " + truncateStr(target.Title, 30)
}

func (a *App) View() string {
	if a.width == 0 {
		return headerStyle.Render(appTitle)
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	headerLeft := headerStyle.Render(appTitle)
	headerRight := headerSourceStyle.Render(a.cfg.Source.Name + " ")
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	search := renderSearchBar(a.searchInput, a.width, a.mode == modeSearch)
	rule := ruleStyle.Render(strings.Repeat("─", a.width))

	sections := []string{header, search, rule}
	used := len(sections) + 1 // + status bar

	// Error and loading lines are independent of each other
	if a.state.IsError {
		sections = append(sections, errorStyle.Render(errorMessage))
		used++
	}

	shown := a.visible()

	if a.state.IsLoading {
		sections = append(sections, loadingStyle.Render(a.spinner.View()+" "+loadingMessage))
	} else {
		contentHeight := a.height - used - 2 // borders
		if contentHeight < 3 {
			contentHeight = 3
		}

		listWidth := int(float64(a.width) * 0.6)
		previewWidth := a.width - listWidth - 1

		listStyle := listPaneStyle
		if a.mode == modeNormal {
			listStyle = listPaneActiveStyle
		}
		listPane := listStyle.Width(listWidth - 2).Height(contentHeight).
			Render(renderList(shown, a.cursor, contentHeight, listWidth-4))

		previewPane := previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).
			Render(renderPreview(a.selected(), previewWidth-4, contentHeight))

		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, listPane, " ", previewPane))
	}

	status := renderStatusBar(len(shown), len(a.state.Stories), a.width, a.mode, a.notice)
	if a.err != nil {
		status = lipgloss.NewStyle().Foreground(colorAccent).Render(a.err.Error())
	}
	sections = append(sections, status)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderHelp() string {
	title := headerStyle.Render(appTitle)
	dim := helpDimStyle

	help := title + dim.Render("  keyboard shortcuts") + "\n\n" +
		dim.Render("Search") + "\n" +
		"  /             Edit the search term\n" +
		"  ↑/↓           Move while typing\n" +
		"  enter, esc    Back to the list\n\n" +
		dim.Render("List") + "\n" +
		"  j/k, ↑/↓      Navigate stories\n" +
		"  g/G           First / last story\n" +
		"  d, x          Dismiss story\n" +
		"  o, enter      Open story in browser\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c     Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
