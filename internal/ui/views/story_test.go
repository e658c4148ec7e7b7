package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hnsearch/internal/domain"
)

func TestHostOf(t *testing.T) {
	assert.Equal(t, "go.dev", hostOf("https://go.dev/blog/"))
	assert.Equal(t, "example.com", hostOf("https://www.example.com/a?b=c"))
	assert.Equal(t, "", hostOf(""))
	assert.Equal(t, "", hostOf("not a url"))
}

func TestRenderStoryContainsFields(t *testing.T) {
	r := NewStoryRenderer(NewStyles(), true)
	story := domain.Story{
		ID:           "1",
		Title:        "Go 1.25 released",
		URL:          "https://go.dev/blog",
		Author:       "rsc",
		Points:       512,
		CommentCount: 301,
	}

	line := r.RenderStory(story, false, "", 0)

	assert.Contains(t, line, "Go 1.25 released")
	assert.Contains(t, line, "go.dev")
	assert.Contains(t, line, "512")
	assert.Contains(t, line, "301c")
	assert.Contains(t, line, "by rsc")
}

func TestRenderStorySelectedCursor(t *testing.T) {
	r := NewStoryRenderer(NewStyles(), false)
	story := domain.Story{ID: "1", Title: "A story"}

	assert.Contains(t, r.RenderStory(story, true, "", 0), "> ")
	assert.NotContains(t, r.RenderStory(story, false, "", 0), "> ")
}

func TestHighlightMatchKeepsOriginalCasing(t *testing.T) {
	r := NewStoryRenderer(NewStyles(), false)

	out := r.highlightMatch("Reducing Redux boilerplate", "redu")
	assert.Contains(t, out, "Redu")
	assert.Contains(t, out, "cing Redux boilerplate")
}

func TestHighlightMatchUnicodeWidthChange(t *testing.T) {
	r := NewStoryRenderer(NewStyles(), false)

	// Ⱥ (2 bytes) lowercases to ⱥ (3 bytes), shifting byte offsets
	// between the lowered title and the original.
	assert.NotPanics(t, func() {
		out := r.highlightMatch("Ⱥx", "x")
		assert.Contains(t, out, "Ⱥ")
		assert.Contains(t, out, "x")
	})
	assert.NotPanics(t, func() {
		r.RenderStory(domain.Story{ID: "1", Title: "Ⱥx"}, false, "x", 0)
	})
	assert.NotPanics(t, func() {
		out := r.highlightMatch("ȺȺ match here", "match")
		assert.Contains(t, out, "match")
	})
}

func TestRenderStoryWithoutPoints(t *testing.T) {
	r := NewStoryRenderer(NewStyles(), false)
	story := domain.Story{ID: "1", Title: "A story", Points: 99}

	assert.NotContains(t, r.RenderStory(story, false, "", 0), "99")
}
