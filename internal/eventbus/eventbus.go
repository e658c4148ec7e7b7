package eventbus

import (
	"sync"

	"go.uber.org/zap"

	"hnsearch/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchSubmitted = domain.EventSearchSubmitted
	EventFetchStarted    = domain.EventFetchStarted
	EventFetchSucceeded  = domain.EventFetchSucceeded
	EventFetchFailed     = domain.EventFetchFailed
	EventStoryRemoved    = domain.EventStoryRemoved
	EventHistoryChanged  = domain.EventHistoryChanged
	EventConfigLoaded    = domain.EventConfigLoaded
	EventConfigSaved     = domain.EventConfigSaved
	EventError           = domain.EventError
)

// Re-export domain event types
type SearchSubmittedEvent = domain.SearchSubmittedEvent
type FetchStartedEvent = domain.FetchStartedEvent
type FetchSucceededEvent = domain.FetchSucceededEvent
type FetchFailedEvent = domain.FetchFailedEvent
type StoryRemovedEvent = domain.StoryRemovedEvent
type HistoryChangedEvent = domain.HistoryChangedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// subscription wraps a handler so it can be removed by identity
type subscription struct {
	handler EventHandler
}

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]*subscription
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// New creates a new event bus. A nil logger disables bus logging.
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &bus{
		handlers:  make(map[EventType][]*subscription),
		eventChan: make(chan DomainEvent, 100),
		quit:      make(chan struct{}),
		logger:    logger,
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	b.logger.Debug("publishing event", zap.String("type", string(event.Type())))

	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		b.logger.Warn("event bus channel full, dropping event",
			zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscription{handler: handler}
	b.handlers[eventType] = append(b.handlers[eventType], sub)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		handlers := b.handlers[eventType]
		for i, s := range handlers {
			if s == sub {
				b.handlers[eventType] = append(handlers[:i], handlers[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and drains pending events.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			handlers := b.handlers[event.Type()]
			// Copy to avoid holding the lock during handler execution
			handlersCopy := make([]*subscription, len(handlers))
			copy(handlersCopy, handlers)
			b.mu.RUnlock()

			for _, sub := range handlersCopy {
				func(h EventHandler) {
					defer func() {
						if r := recover(); r != nil {
							b.logger.Error("event handler panic",
								zap.String("type", string(event.Type())),
								zap.Any("panic", r))
						}
					}()
					h(event)
				}(sub.handler)
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
