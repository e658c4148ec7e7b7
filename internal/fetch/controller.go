package fetch

import (
	"strings"

	"hnsearch/internal/domain"
	"hnsearch/internal/eventbus"
)

// Controller owns the FetchState and the committed query. It decouples the
// term the user is typing from the term that drives network requests: a
// fetch cycle starts only on Submit. Every cycle is tagged with a sequence
// number; results from a superseded cycle are discarded so a slow earlier
// request can never overwrite a newer one.
//
// The controller is not goroutine-safe. It is owned by the UI's update loop
// and all calls happen there.
type Controller struct {
	state          domain.FetchState
	committedQuery string
	seq            uint64
	bus            eventbus.EventBus
}

// NewController creates a controller with empty state. A nil bus disables
// event publication.
func NewController(bus eventbus.EventBus) *Controller {
	return &Controller{bus: bus}
}

// State returns the current fetch state. Callers must treat it as read-only.
func (c *Controller) State() domain.FetchState {
	return c.state
}

// Query returns the committed query.
func (c *Controller) Query() string {
	return c.committedQuery
}

// Submit commits term as the new active query and begins a fetch cycle,
// returning its sequence number. A blank term does not trigger a fetch and
// returns ok=false. Re-submitting an unchanged term still starts a new cycle.
func (c *Controller) Submit(term string) (seq uint64, ok bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return 0, false
	}

	c.committedQuery = term
	c.seq++
	c.state = Apply(c.state, InitEvent{})

	if c.bus != nil {
		c.bus.Publish(eventbus.SearchSubmittedEvent{Query: term})
		c.bus.Publish(eventbus.FetchStartedEvent{Query: term, Seq: c.seq})
	}

	return c.seq, true
}

// Resolve completes the fetch cycle tagged seq. Results from any cycle but
// the latest are stale and dropped without touching state. Exactly one of
// success or failure fires per accepted cycle.
func (c *Controller) Resolve(seq uint64, stories []domain.Story, err error) {
	if seq != c.seq {
		return
	}

	if err != nil {
		c.state = Apply(c.state, FailureEvent{})
		if c.bus != nil {
			c.bus.Publish(eventbus.FetchFailedEvent{Query: c.committedQuery, Err: err})
		}
		return
	}

	c.state = Apply(c.state, SuccessEvent{Stories: stories})
	if c.bus != nil {
		c.bus.Publish(eventbus.FetchSucceededEvent{Query: c.committedQuery, Count: len(stories)})
	}
}

// Remove excludes the story with the given ID from the fetched set.
// Removing an absent ID is a no-op.
func (c *Controller) Remove(id string) {
	before := len(c.state.Stories)
	c.state = Apply(c.state, RemoveEvent{ID: id})

	if c.bus != nil && len(c.state.Stories) != before {
		c.bus.Publish(eventbus.StoryRemovedEvent{StoryID: id})
	}
}
