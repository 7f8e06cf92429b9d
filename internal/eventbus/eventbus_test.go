package eventbus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscriber(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventSettingsSaved, func(e DomainEvent) { got <- e })

	b.Publish(SettingsSavedEvent{Path: "/tmp/settings.json"})

	select {
	case e := <-got:
		saved, ok := e.(SettingsSavedEvent)
		require.True(t, ok)
		assert.Equal(t, "/tmp/settings.json", saved.Path)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	first := make(chan struct{}, 4)
	second := make(chan struct{}, 4)
	unsub := b.Subscribe(EventError, func(DomainEvent) { first <- struct{}{} })
	b.Subscribe(EventError, func(DomainEvent) { second <- struct{}{} })

	unsub()
	b.Publish(ErrorEvent{Message: "boom", Err: errors.New("boom")})

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber not called")
	}
	select {
	case <-first:
		t.Fatal("unsubscribed handler was called")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotKillBus(t *testing.T) {
	b := New()
	defer b.Close()

	ok := make(chan struct{}, 1)
	b.Subscribe(EventSearchStarted, func(DomainEvent) { panic("handler bug") })
	b.Subscribe(EventSearchCompleted, func(DomainEvent) { ok <- struct{}{} })

	b.Publish(SearchStartedEvent{})
	b.Publish(SearchCompletedEvent{Count: 1})

	select {
	case <-ok:
	case <-time.After(time.Second):
		t.Fatal("bus stopped dispatching after a panic")
	}
}

func TestPublishAfterCloseIsNoop(t *testing.T) {
	b := New()
	b.Close()
	assert.NotPanics(t, func() {
		b.Publish(SettingsChangedEvent{Reason: "late"})
	})
}
