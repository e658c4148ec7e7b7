package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchSubmitted EventType = "SearchSubmitted"
	EventFetchStarted    EventType = "FetchStarted"
	EventFetchSucceeded  EventType = "FetchSucceeded"
	EventFetchFailed     EventType = "FetchFailed"
	EventStoryRemoved    EventType = "StoryRemoved"
	EventHistoryChanged  EventType = "HistoryChanged"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchSubmittedEvent is emitted when the user commits a new query
type SearchSubmittedEvent struct {
	Query string
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// FetchStartedEvent is emitted when a fetch cycle begins
type FetchStartedEvent struct {
	Query string
	Seq   uint64
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// FetchSucceededEvent is emitted when a fetch completes with results
type FetchSucceededEvent struct {
	Query string
	Count int
}

func (e FetchSucceededEvent) Type() EventType { return EventFetchSucceeded }

// FetchFailedEvent is emitted when a fetch ends in a transport or decode error
type FetchFailedEvent struct {
	Query string
	Err   error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// StoryRemovedEvent is emitted when a story is dismissed from the result set
type StoryRemovedEvent struct {
	StoryID string
}

func (e StoryRemovedEvent) Type() EventType { return EventStoryRemoved }

// HistoryChangedEvent is emitted when the recent-search list changes
type HistoryChangedEvent struct {
	Recent []string
}

func (e HistoryChangedEvent) Type() EventType { return EventHistoryChanged }

// ConfigLoadedEvent is emitted after the configuration has been read
type ConfigLoadedEvent struct {
	SearchTerm string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after the configuration has been written
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when a non-fatal error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
