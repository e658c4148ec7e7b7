package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan DomainEvent) DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishReachesSubscriber(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventSearchSubmitted, func(e DomainEvent) {
		got <- e
	})

	b.Publish(SearchSubmittedEvent{Query: "go"})

	e := waitFor(t, got)
	event, ok := e.(SearchSubmittedEvent)
	require.True(t, ok)
	assert.Equal(t, "go", event.Query)
}

func TestSubscriberOnlySeesItsEventType(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan DomainEvent, 2)
	b.Subscribe(EventFetchFailed, func(e DomainEvent) {
		got <- e
	})

	b.Publish(SearchSubmittedEvent{Query: "go"})
	b.Publish(FetchFailedEvent{Query: "go"})

	e := waitFor(t, got)
	_, ok := e.(FetchFailedEvent)
	assert.True(t, ok)

	select {
	case e := <-got:
		t.Fatalf("unexpected extra event: %#v", e)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan DomainEvent, 1)
	unsub := b.Subscribe(EventConfigSaved, func(e DomainEvent) {
		got <- e
	})
	unsub()

	b.Publish(ConfigSavedEvent{})

	select {
	case <-got:
		t.Fatal("handler called after unsubscribe")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPanickingHandlerDoesNotStopDispatch(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventStoryRemoved, func(e DomainEvent) {
		panic("handler bug")
	})
	b.Subscribe(EventStoryRemoved, func(e DomainEvent) {
		got <- e
	})

	b.Publish(StoryRemovedEvent{StoryID: "1"})

	e := waitFor(t, got)
	event, ok := e.(StoryRemovedEvent)
	require.True(t, ok)
	assert.Equal(t, "1", event.StoryID)
}
