// Package history tracks the most recent committed searches.
package history

import (
	"sync"

	"hnsearch/internal/eventbus"
)

// Manager maintains the recent-search list
type Manager interface {
	Recent() []string
	Remember(term string)
}

// manager is the concrete implementation
type manager struct {
	bus    eventbus.EventBus
	mu     sync.RWMutex
	recent []string
	limit  int
}

// NewManager creates a history manager seeded from the persisted recent
// list. It subscribes to search submissions and publishes HistoryChanged
// whenever the list moves.
func NewManager(bus eventbus.EventBus, initial []string, limit int) Manager {
	m := &manager{
		bus:    bus,
		recent: append([]string(nil), initial...),
		limit:  limit,
	}

	bus.Subscribe(eventbus.EventSearchSubmitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchSubmittedEvent); ok {
			m.Remember(event.Query)
		}
	})

	return m
}

// Recent returns the recent searches, newest first.
func (m *manager) Recent() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.recent...)
}

// Remember moves term to the front of the list, dropping duplicates and
// clamping to the limit. An unchanged list publishes nothing.
func (m *manager) Remember(term string) {
	if term == "" {
		return
	}

	m.mu.Lock()
	if len(m.recent) > 0 && m.recent[0] == term {
		m.mu.Unlock()
		return
	}

	recent := []string{term}
	for _, t := range m.recent {
		if t != term {
			recent = append(recent, t)
		}
	}
	if m.limit > 0 && len(recent) > m.limit {
		recent = recent[:m.limit]
	}
	m.recent = recent
	snapshot := append([]string(nil), recent...)
	m.mu.Unlock()

	if m.bus != nil {
		m.bus.Publish(eventbus.HistoryChangedEvent{Recent: snapshot})
	}
}
