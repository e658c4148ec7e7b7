// Package fetch holds the fetch-status state machine and the controller
// that drives it from committed search queries.
package fetch

import (
	"fmt"

	"hnsearch/internal/domain"
)

// Event is the closed set of state machine transitions. The unexported
// marker method keeps the set sealed inside this package, so the reducer's
// unreachable default can only be hit by an in-package programming error.
type Event interface {
	fetchEvent()
}

// InitEvent marks the start of a fetch cycle.
type InitEvent struct{}

// SuccessEvent carries the fetched stories, replacing the previous set.
type SuccessEvent struct {
	Stories []domain.Story
}

// FailureEvent marks a failed fetch; previously fetched stories are kept.
type FailureEvent struct{}

// RemoveEvent excludes the story with the given ID from the current set.
// Removing an absent ID is a no-op.
type RemoveEvent struct {
	ID string
}

func (InitEvent) fetchEvent()    {}
func (SuccessEvent) fetchEvent() {}
func (FailureEvent) fetchEvent() {}
func (RemoveEvent) fetchEvent()  {}

// Apply is the reducer. Every transition produces a full new state value;
// the input state is never mutated. IsLoading and IsError cannot both be
// true in any reachable state.
func Apply(state domain.FetchState, event Event) domain.FetchState {
	switch ev := event.(type) {
	case InitEvent:
		return domain.FetchState{
			Stories:   state.Stories,
			IsLoading: true,
			IsError:   false,
		}
	case SuccessEvent:
		return domain.FetchState{
			Stories:   ev.Stories,
			IsLoading: false,
			IsError:   false,
		}
	case FailureEvent:
		return domain.FetchState{
			Stories:   state.Stories,
			IsLoading: false,
			IsError:   true,
		}
	case RemoveEvent:
		return domain.FetchState{
			Stories:   removeStory(state.Stories, ev.ID),
			IsLoading: state.IsLoading,
			IsError:   state.IsError,
		}
	default:
		panic(fmt.Sprintf("fetch: unhandled event %T", event))
	}
}

// removeStory returns stories without the entry whose ID matches id,
// preserving order. The input slice is not modified.
func removeStory(stories []domain.Story, id string) []domain.Story {
	out := make([]domain.Story, 0, len(stories))
	for _, s := range stories {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}
