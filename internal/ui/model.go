// Package ui implements the Bubble Tea terminal interface. The Update loop
// is the single logical thread of the application: every state transition of
// the fetch machine happens here.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"hnsearch/internal/config"
	"hnsearch/internal/domain"
	"hnsearch/internal/eventbus"
	"hnsearch/internal/fetch"
	"hnsearch/internal/history"
	"hnsearch/internal/ui/logic"
	"hnsearch/internal/ui/views"
)

const fetchTimeout = 15 * time.Second

// Searcher fetches stories for a committed query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.Story, error)
}

// Model represents the UI state
type Model struct {
	bus        eventbus.EventBus
	controller *fetch.Controller
	searcher   Searcher
	history    history.Manager

	// persistTerm saves the live search term; it must never block.
	persistTerm func(string)

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    KeyMap

	styles      *views.Styles
	storyRender *views.StoryRenderer

	width          int
	height         int
	selectedIndex  int
	viewportOffset int
	sortMode       domain.SortMode
	statusMessage  string
	historyPos     int
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, searcher Searcher, hist history.Manager, persistTerm func(string)) *Model {
	ti := textinput.New()
	ti.Placeholder = "search Hacker News"
	ti.CharLimit = 100
	ti.SetValue(cfg.SearchTerm)
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	styles := views.NewStyles()

	return &Model{
		bus:         bus,
		controller:  fetch.NewController(bus),
		searcher:    searcher,
		history:     hist,
		persistTerm: persistTerm,
		input:       ti,
		spinner:     sp,
		help:        help.New(),
		keys:        DefaultKeyMap(),
		styles:      styles,
		storyRender: views.NewStoryRenderer(styles, cfg.UISettings.ShowPoints),
		historyPos:  -1,
	}
}

// Controller exposes the fetch controller for wiring and tests.
func (m *Model) Controller() *fetch.Controller {
	return m.controller
}

// Init submits the persisted search term so the list is populated on start.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := m.submit(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 12
		m.ensureSelectedVisible()
		return m, nil

	case spinner.TickMsg:
		if !m.controller.State().IsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case storiesFetchedMsg:
		m.controller.Resolve(msg.seq, msg.stories, msg.err)
		state := m.controller.State()
		if state.IsError {
			m.statusMessage = "search failed, press enter to retry"
		} else if !state.IsLoading {
			m.statusMessage = ""
		}
		m.clampSelection()
		return m, nil

	case EventMsg:
		// Nothing to mutate; the wrapped event already changed the world.
		// Returning is enough to repaint with the new history or status.
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateSearchInput(msg)
		}
		return m.handleListKey(msg)
	}

	return m, nil
}

// updateSearchInput handles keys while the search input has focus
func (m *Model) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.input.Blur()
		return m, nil

	case "enter":
		cmd := m.submit()
		if cmd == nil {
			m.statusMessage = "type a search term first"
			return m, nil
		}
		m.input.Blur()
		return m, cmd

	case "tab":
		m.cycleHistory()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.historyPos = -1
		m.selectedIndex = 0
		m.viewportOffset = 0
		if m.persistTerm != nil {
			m.persistTerm(v)
		}
	}
	return m, cmd
}

// handleListKey handles keys while the story list has focus
func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.FocusSearch):
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Up):
		if m.selectedIndex > 0 {
			m.selectedIndex--
			m.ensureSelectedVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIndex < len(m.visibleStories())-1 {
			m.selectedIndex++
			m.ensureSelectedVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selectedIndex = 0
		m.ensureSelectedVisible()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if n := len(m.visibleStories()); n > 0 {
			m.selectedIndex = n - 1
		}
		m.ensureSelectedVisible()
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		visible := m.visibleStories()
		if m.selectedIndex < len(visible) {
			m.controller.Remove(visible[m.selectedIndex].ID)
			m.clampSelection()
		}
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.sortMode = m.sortMode.Next()
		m.statusMessage = "sorted by " + m.sortMode.String()
		return m, nil

	case key.Matches(msg, m.keys.History):
		m.cycleHistory()
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// submit commits the live term as the new query and starts a fetch cycle.
// Returns nil when the term is blank: a vacuous remote call is never made.
func (m *Model) submit() tea.Cmd {
	seq, ok := m.controller.Submit(m.input.Value())
	if !ok {
		return nil
	}

	m.statusMessage = ""
	m.selectedIndex = 0
	m.viewportOffset = 0
	m.historyPos = -1
	if m.persistTerm != nil {
		m.persistTerm(m.controller.Query())
	}

	return tea.Batch(m.fetchCmd(seq, m.controller.Query()), m.spinner.Tick)
}

// fetchCmd runs one fetch cycle off the update loop. The seq tag lets the
// controller discard results that arrive after a newer submission.
func (m *Model) fetchCmd(seq uint64, query string) tea.Cmd {
	searcher := m.searcher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		stories, err := searcher.Search(ctx, query)
		return storiesFetchedMsg{seq: seq, stories: stories, err: err}
	}
}

// cycleHistory steps through recent searches, filling the input.
func (m *Model) cycleHistory() {
	recent := m.history.Recent()
	if len(recent) == 0 {
		return
	}
	m.historyPos = (m.historyPos + 1) % len(recent)
	m.input.SetValue(recent[m.historyPos])
	m.input.CursorEnd()
}

// visibleStories derives the displayed list: the fetched set filtered by the
// live search term, then reordered by the sort mode. Pure derivation; the
// fetch state itself is never touched.
func (m *Model) visibleStories() []domain.Story {
	filtered := logic.Filter(m.controller.State().Stories, strings.TrimSpace(m.input.Value()))
	return logic.SortStories(filtered, m.sortMode)
}

func (m *Model) clampSelection() {
	if n := len(m.visibleStories()); m.selectedIndex >= n {
		m.selectedIndex = n - 1
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
	m.ensureSelectedVisible()
}

// listHeight is the number of story rows that fit the terminal.
func (m *Model) listHeight() int {
	h := m.height - 9 // title, input, status, footer chrome
	if h < 1 {
		h = 10
	}
	return h
}

func (m *Model) ensureSelectedVisible() {
	height := m.listHeight()
	if m.selectedIndex < m.viewportOffset {
		m.viewportOffset = m.selectedIndex
	}
	if m.selectedIndex >= m.viewportOffset+height {
		m.viewportOffset = m.selectedIndex - height + 1
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
}

// View renders the UI
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("hnsearch"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Prompt.Render("Search: "))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	b.WriteString(m.storyList())

	b.WriteString("\n")
	b.WriteString(m.footer())

	return m.styles.Main.Render(b.String())
}

// statusLine reports fetch status, result counts and the active sort.
func (m *Model) statusLine() string {
	state := m.controller.State()

	if state.IsLoading {
		return m.styles.Loading.Render(m.spinner.View() + " searching \"" + m.controller.Query() + "\"…")
	}
	if state.IsError {
		return m.styles.Error.Render("something went wrong: " + m.statusMessage)
	}

	if m.controller.Query() == "" {
		return m.styles.Dim.Render("press enter to search")
	}

	visible := m.visibleStories()
	status := fmt.Sprintf("%d stories for \"%s\"", len(visible), m.controller.Query())
	if len(visible) != len(state.Stories) {
		status += fmt.Sprintf(" (%d fetched, filtered by \"%s\")", len(state.Stories), strings.TrimSpace(m.input.Value()))
	}
	if m.sortMode != domain.SortNone {
		status += ", sorted by " + m.sortMode.String()
	}
	if m.statusMessage != "" {
		status += " · " + m.statusMessage
	}
	return m.styles.Status.Render(status)
}

// storyList renders the visible viewport of the story rows.
func (m *Model) storyList() string {
	visible := m.visibleStories()
	if len(visible) == 0 {
		if m.controller.Query() != "" && !m.controller.State().IsLoading {
			return m.styles.Dim.Render("  no matching stories")
		}
		return ""
	}

	height := m.listHeight()
	end := m.viewportOffset + height
	if end > len(visible) {
		end = len(visible)
	}

	filterTerm := strings.TrimSpace(m.input.Value())
	var rows []string
	for i := m.viewportOffset; i < end; i++ {
		rows = append(rows, m.storyRender.RenderStory(visible[i], i == m.selectedIndex, filterTerm, m.width-4))
	}

	out := strings.Join(rows, "\n")
	if end < len(visible) {
		out += "\n" + m.styles.Dim.Render(fmt.Sprintf("  … %d more", len(visible)-end))
	}

	// Selected story URL, since stories are never opened from the TUI
	if m.selectedIndex < len(visible) && visible[m.selectedIndex].URL != "" {
		out += "\n\n" + m.styles.URL.Render(visible[m.selectedIndex].URL)
	}

	return out
}

// footer renders recent searches and the help line.
func (m *Model) footer() string {
	var b strings.Builder

	if recent := m.history.Recent(); len(recent) > 0 {
		b.WriteString(m.styles.Dim.Render("recent: " + strings.Join(recent, "  ")))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}
