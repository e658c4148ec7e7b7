package ui

import "hnsearch/internal/domain"

// storiesFetchedMsg carries the outcome of one fetch cycle back into the
// update loop. seq identifies the cycle; the controller drops stale ones.
type storiesFetchedMsg struct {
	seq     uint64
	stories []domain.Story
	err     error
}

// EventMsg wraps a domain event forwarded from the bus so out-of-loop
// changes (history updates, config saves) trigger a re-render.
type EventMsg struct {
	Event domain.DomainEvent
}
