package fetch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hnsearch/internal/domain"
)

func TestSubmitBlankTermDoesNotFetch(t *testing.T) {
	c := NewController(nil)

	_, ok := c.Submit("")
	assert.False(t, ok)
	_, ok = c.Submit("   ")
	assert.False(t, ok)

	assert.False(t, c.State().IsLoading)
	assert.Empty(t, c.Query())
}

func TestSubmitStartsFetchCycle(t *testing.T) {
	c := NewController(nil)

	seq, ok := c.Submit("go")
	require.True(t, ok)
	assert.Equal(t, uint64(1), seq)
	assert.Equal(t, "go", c.Query())
	assert.True(t, c.State().IsLoading)
	assert.False(t, c.State().IsError)
}

func TestResubmitUnchangedTermStartsNewCycle(t *testing.T) {
	c := NewController(nil)

	first, _ := c.Submit("go")
	c.Resolve(first, sampleStories(), nil)

	second, ok := c.Submit("go")
	require.True(t, ok)
	assert.Greater(t, second, first, "no dedup: same term still fetches")
	assert.True(t, c.State().IsLoading)
}

func TestResolveSuccess(t *testing.T) {
	c := NewController(nil)
	seq, _ := c.Submit("react")

	c.Resolve(seq, sampleStories(), nil)

	state := c.State()
	assert.False(t, state.IsLoading)
	assert.False(t, state.IsError)
	assert.Equal(t, sampleStories(), state.Stories)
}

func TestResolveFailureKeepsPriorStories(t *testing.T) {
	c := NewController(nil)
	seq, _ := c.Submit("react")
	c.Resolve(seq, sampleStories(), nil)

	seq, _ = c.Submit("redux")
	c.Resolve(seq, nil, errors.New("boom"))

	state := c.State()
	assert.True(t, state.IsError)
	assert.False(t, state.IsLoading)
	assert.Equal(t, sampleStories(), state.Stories)
}

func TestStaleResolveIsDropped(t *testing.T) {
	c := NewController(nil)

	slow, _ := c.Submit("first")
	fast, _ := c.Submit("second")

	newer := []domain.Story{{ID: "2", Title: "Second"}}
	c.Resolve(fast, newer, nil)
	// The slow first request lands after the newer result; it must not win.
	c.Resolve(slow, []domain.Story{{ID: "1", Title: "First"}}, nil)

	assert.Equal(t, newer, c.State().Stories)
	assert.False(t, c.State().IsLoading)
}

func TestStaleFailureIsDropped(t *testing.T) {
	c := NewController(nil)

	slow, _ := c.Submit("first")
	fast, _ := c.Submit("second")

	c.Resolve(fast, sampleStories(), nil)
	c.Resolve(slow, nil, errors.New("timeout"))

	assert.False(t, c.State().IsError)
	assert.Equal(t, sampleStories(), c.State().Stories)
}

func TestRemove(t *testing.T) {
	c := NewController(nil)
	seq, _ := c.Submit("react")
	c.Resolve(seq, sampleStories(), nil)

	c.Remove("0")
	require.Len(t, c.State().Stories, 1)

	// Removing again is a no-op
	c.Remove("0")
	assert.Len(t, c.State().Stories, 1)
}
