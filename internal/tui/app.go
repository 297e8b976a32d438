// Package tui renders the calm reading view: a single ranked list with a
// loading state, an error state, and a display-mode toggle.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/githubnext/calmhn/internal/browser"
	"github.com/githubnext/calmhn/internal/hn"
	"github.com/githubnext/calmhn/internal/prefs"
	"github.com/githubnext/calmhn/internal/story"
)

type state int

const (
	stateLoading state = iota
	stateError
	stateLoaded
)

// App is the Bubble Tea model. It starts loading, fetches exactly once,
// and ends in either the loaded list or the error view. There is no
// refresh key; a new run is a new fetch.
type App struct {
	fetcher hn.Fetcher
	store   *prefs.Store

	state   state
	stories []story.Story
	err     error
	cursor  int

	mode prefs.Mode
	th   theme

	width    int
	height   int
	spinner  spinner.Model
	showHelp bool
	openErr  error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Fetcher hn.Fetcher
	Store   *prefs.Store
	Mode    prefs.Mode
}

func NewApp(opts RunOpts) *App {
	th := newTheme(opts.Mode)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = th.spinner

	return &App{
		fetcher: opts.Fetcher,
		store:   opts.Store,
		state:   stateLoading,
		mode:    opts.Mode,
		th:      th,
		spinner: sp,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.fetchCmd(), a.spinner.Tick)
}

func (a *App) fetchCmd() tea.Cmd {
	f := a.fetcher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		hits, err := f.TopStories(ctx)
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return storiesLoadedMsg{stories: story.FromRemote(hits)}
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

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky open-failure notice on any keypress
		a.openErr = nil
		return a.handleKey(msg)

	case storiesLoadedMsg:
		a.state = stateLoaded
		a.stories = msg.stories
		if a.cursor >= len(a.stories) {
			a.cursor = max(0, len(a.stories)-1)
		}
		return a, nil

	case fetchErrMsg:
		a.state = stateError
		a.err = msg.err
		return a, nil

	case openErrMsg:
		a.openErr = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.state == stateLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			a.showHelp = false
		}
		return a, nil
	}

	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit
	case "?":
		a.showHelp = true
		return a, nil
	case "v":
		a.cycleMode()
		return a, nil
	}

	if a.state != stateLoaded {
		return a, nil
	}

	switch msg.String() {
	case "j", "down":
		if a.cursor < len(a.stories)-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "g":
		a.cursor = 0
	case "G":
		a.cursor = max(0, len(a.stories)-1)
	case "o", "enter":
		if a.cursor < len(a.stories) {
			return a, openBrowserCmd(a.stories[a.cursor].Link())
		}
	case "c":
		if a.cursor < len(a.stories) {
			return a, openBrowserCmd(a.stories[a.cursor].Permalink())
		}
	}
	return a, nil
}

// cycleMode steps Default → protanopia → deuteranopia → Default, restyles
// the view and persists the choice. Persistence failures are silent: the
// in-session mode still applies.
func (a *App) cycleMode() {
	switch a.mode {
	case prefs.ModeUnset:
		a.mode = prefs.ModeProtanopia
	case prefs.ModeProtanopia:
		a.mode = prefs.ModeDeuteranopia
	default:
		a.mode = prefs.ModeUnset
	}
	a.th = newTheme(a.mode)
	a.spinner.Style = a.th.spinner
	if a.store != nil {
		_ = a.store.Set(a.mode)
	}
}

func (a *App) View() string {
	// Too small to lay anything out; also covers the pre-WindowSizeMsg call.
	if a.width == 0 || a.height < 2 {
		return a.th.header.Render("calmhn")
	}

	if a.showHelp {
		return a.renderHelp()
	}

	switch a.state {
	case stateLoading:
		return a.renderLoading()
	case stateError:
		return a.renderError()
	}

	// Header
	headerLeft := a.th.header.Render("calmhn")
	headerRight := a.th.headerDate.Render(time.Now().Format("Jan 2"))
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight) - 1
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + strings.Repeat(" ", headerGap) + headerRight

	listHeight := a.height - 3 // header, blank, status bar
	if listHeight < 3 {
		listHeight = 3
	}
	list := renderStories(a.stories, a.cursor, listHeight, a.width, time.Now(), a.th)

	status := renderStatusBar(
		len(a.stories),
		a.mode.String(),
		"j/k move  enter open  c comments  v display  ? help  q quit",
		a.width,
		a.th,
	)
	if a.openErr != nil {
		status = a.th.statusAlert.Render(" " + a.openErr.Error())
	}

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", list)
	return a.placeAboveBar(body, status)
}

// placeAboveBar pads or trims content so the status bar sits on the last
// terminal row.
func (a *App) placeAboveBar(content, bar string) string {
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) renderLoading() string {
	// The spinner line doubles as the busy announcement.
	msg := a.spinner.View() + " " + a.th.meta.Render("Loading stories…")
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, msg)
}

func (a *App) renderError() string {
	errMsg := a.err.Error()
	if errMsg == "" {
		errMsg = "something went wrong loading stories"
	}
	body := a.th.errorText.Render("Could not load stories") + "\n\n" +
		a.th.meta.Render(errMsg) + "\n\n" +
		a.th.helpDim.Render("q quit")
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body)
}

func (a *App) renderHelp() string {
	title := a.th.selected.Render("calmhn")
	dim := a.th.helpDim

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move through the list\n" +
		"  g / G         Jump to top / bottom\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter      Open story in browser\n" +
		"  c             Open discussion page\n" +
		"  v             Cycle display mode (default/protanopia/deuteranopia)\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := a.th.helpCard.Render(help)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
