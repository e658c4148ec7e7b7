package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hnsearch/internal/config"
	"hnsearch/internal/domain"
)

type stubSearcher struct {
	stories []domain.Story
	err     error
	calls   int
}

func (s *stubSearcher) Search(ctx context.Context, query string) ([]domain.Story, error) {
	s.calls++
	return s.stories, s.err
}

type stubHistory struct {
	recent []string
}

func (s *stubHistory) Recent() []string     { return s.recent }
func (s *stubHistory) Remember(term string) {}

func fetched() []domain.Story {
	return []domain.Story{
		{ID: "0", Title: "React", Author: "dan", Points: 10},
		{ID: "1", Title: "Redux", Author: "mark", Points: 20},
	}
}

func newTestModel(term string) (*Model, *stubSearcher) {
	cfg := config.DefaultConfig()
	cfg.SearchTerm = term
	searcher := &stubSearcher{stories: fetched()}
	m := NewModel(nil, cfg, searcher, &stubHistory{}, nil)
	return m, searcher
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEnterSubmitsAndStartsLoading(t *testing.T) {
	m, _ := newTestModel("re")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	state := m.Controller().State()
	assert.True(t, state.IsLoading)
	assert.Equal(t, "re", m.Controller().Query())
	assert.False(t, m.input.Focused(), "submit moves focus to the list")
}

func TestFetchedStoriesAreShown(t *testing.T) {
	m, _ := newTestModel("re")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Update(storiesFetchedMsg{seq: 1, stories: fetched()})

	state := m.Controller().State()
	assert.False(t, state.IsLoading)
	assert.Len(t, state.Stories, 2)

	view := m.View()
	assert.Contains(t, view, "React")
	assert.Contains(t, view, "Redux")
}

func TestFetchFailureShowsNoticeAndKeepsStories(t *testing.T) {
	m, _ := newTestModel("re")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(storiesFetchedMsg{seq: 1, stories: fetched()})

	// Retry fails: prior stories are retained, an error notice is shown
	m.input.Focus()
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(storiesFetchedMsg{seq: 2, err: errors.New("boom")})

	state := m.Controller().State()
	assert.True(t, state.IsError)
	assert.Len(t, state.Stories, 2)
	assert.Contains(t, m.View(), "something went wrong")
}

func TestStaleResponseDoesNotOverwrite(t *testing.T) {
	m, _ := newTestModel("re")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // seq 1
	m.input.Focus()
	m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // seq 2

	newer := []domain.Story{{ID: "9", Title: "Remix"}}
	m.Update(storiesFetchedMsg{seq: 2, stories: newer})
	m.Update(storiesFetchedMsg{seq: 1, stories: fetched()})

	state := m.Controller().State()
	require.Len(t, state.Stories, 1)
	assert.Equal(t, "9", state.Stories[0].ID)
}

func TestBlankSubmitDoesNotFetch(t *testing.T) {
	m, _ := newTestModel("")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.Controller().State().IsLoading)
	assert.True(t, m.input.Focused(), "focus stays on the empty input")
}

func TestTypingFiltersClientSide(t *testing.T) {
	m, searcher := newTestModel("re")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(storiesFetchedMsg{seq: 1, stories: fetched()})
	callsAfterFetch := searcher.calls

	m.Update(keyRunes("/")) // focus search
	m.Update(keyRunes("d"))
	m.Update(keyRunes("u"))
	m.Update(keyRunes("x"))

	visible := m.visibleStories()
	require.Len(t, visible, 1)
	assert.Equal(t, "Redux", visible[0].Title)
	assert.Equal(t, callsAfterFetch, searcher.calls, "keystroke filtering never fetches")
}

func TestRemoveKeyDismissesSelectedStory(t *testing.T) {
	m, _ := newTestModel("re")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(storiesFetchedMsg{seq: 1, stories: fetched()})

	m.Update(keyRunes("d"))

	state := m.Controller().State()
	require.Len(t, state.Stories, 1)
	assert.Equal(t, "1", state.Stories[0].ID)

	// Removing the last remaining story leaves an empty, consistent list
	m.Update(keyRunes("d"))
	assert.Empty(t, m.Controller().State().Stories)
	assert.Equal(t, 0, m.selectedIndex)
}

func TestNavigationClampsToList(t *testing.T) {
	m, _ := newTestModel("re")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(storiesFetchedMsg{seq: 1, stories: fetched()})

	m.Update(keyRunes("j"))
	assert.Equal(t, 1, m.selectedIndex)
	m.Update(keyRunes("j"))
	assert.Equal(t, 1, m.selectedIndex, "selection stops at the last story")
	m.Update(keyRunes("k"))
	assert.Equal(t, 0, m.selectedIndex)
}

func TestSortKeyCyclesOrdering(t *testing.T) {
	m, _ := newTestModel("re")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(storiesFetchedMsg{seq: 1, stories: fetched()})

	m.Update(keyRunes("s")) // points, descending

	visible := m.visibleStories()
	require.Len(t, visible, 2)
	assert.Equal(t, "Redux", visible[0].Title)
	assert.Equal(t, domain.SortByPoints, m.sortMode)
}

func TestSlashRefocusesSearch(t *testing.T) {
	m, _ := newTestModel("re")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.input.Focused())

	m.Update(keyRunes("/"))
	assert.True(t, m.input.Focused())
}

func TestTabCyclesRecentSearches(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SearchTerm = "re"
	m := NewModel(nil, cfg, &stubSearcher{}, &stubHistory{recent: []string{"go", "zig"}}, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "go", m.input.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "zig", m.input.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "go", m.input.Value())
}

func TestPersistTermCalledOnKeystroke(t *testing.T) {
	var persisted []string
	cfg := config.DefaultConfig()
	cfg.SearchTerm = ""
	m := NewModel(nil, cfg, &stubSearcher{}, &stubHistory{}, func(term string) {
		persisted = append(persisted, term)
	})

	m.Update(keyRunes("g"))
	m.Update(keyRunes("o"))

	assert.Equal(t, []string{"g", "go"}, persisted)
}
