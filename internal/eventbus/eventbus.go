package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"searchconf/internal/domain"
)

type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchStarted     = domain.EventSearchStarted
	EventSearchCompleted   = domain.EventSearchCompleted
	EventSettingsChanged   = domain.EventSettingsChanged
	EventSettingsSaved     = domain.EventSettingsSaved
	EventVisibilityToggled = domain.EventVisibilityToggled
	EventError             = domain.EventError
)

// Re-export domain event types
type SearchStartedEvent = domain.SearchStartedEvent
type SearchCompletedEvent = domain.SearchCompletedEvent
type SettingsChangedEvent = domain.SettingsChangedEvent
type SettingsSavedEvent = domain.SettingsSavedEvent
type VisibilityToggledEvent = domain.VisibilityToggledEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus.
// Delivery is asynchronous and unordered across handlers; ordered data
// such as search results must not travel over it.
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

// queueSize bounds the pending notifications; Publish drops beyond it.
const queueSize = 256

type subscriber struct {
	id uint64
	fn EventHandler
}

type bus struct {
	mu      sync.RWMutex
	subs    map[EventType][]subscriber
	lastID  uint64
	pending chan DomainEvent
	done    chan struct{}
	stopped sync.WaitGroup
	once    sync.Once
}

// New starts a bus with its dispatcher goroutine
func New() EventBus {
	b := &bus{
		subs:    make(map[EventType][]subscriber),
		pending: make(chan DomainEvent, queueSize),
		done:    make(chan struct{}),
	}
	b.stopped.Add(1)
	go b.run()
	return b
}

// Publish never blocks. Events published after Close are ignored.
func (b *bus) Publish(event DomainEvent) {
	select {
	case <-b.done:
		return
	default:
	}

	select {
	case b.pending <- event:
	default:
		log.Printf("eventbus: queue full, dropping %s", event.Type())
	}
}

// Subscribe registers fn for one event type and returns its unsubscribe func
func (b *bus) Subscribe(eventType EventType, fn EventHandler) func() {
	b.mu.Lock()
	b.lastID++
	id := b.lastID
	b.subs[eventType] = append(b.subs[eventType], subscriber{id: id, fn: fn})
	b.mu.Unlock()

	return func() { b.unsubscribe(eventType, id) }
}

func (b *bus) unsubscribe(eventType EventType, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.subs[eventType]
	kept := make([]subscriber, 0, len(current))
	for _, s := range current {
		if s.id != id {
			kept = append(kept, s)
		}
	}
	b.subs[eventType] = kept
}

// Close stops the dispatcher. Pending events are discarded.
func (b *bus) Close() {
	b.once.Do(func() { close(b.done) })
	b.stopped.Wait()
}

func (b *bus) run() {
	defer b.stopped.Done()

	for {
		select {
		case event := <-b.pending:
			b.deliver(event)
		case <-b.done:
			return
		}
	}
}

// deliver fans one event out, one goroutine per handler.
func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	targets := append([]subscriber(nil), b.subs[event.Type()]...)
	b.mu.RUnlock()

	for _, s := range targets {
		go safeHandle(s.fn, event)
	}
}

func safeHandle(fn EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("eventbus: handler for %s panicked: %v\n%s", event.Type(), r, debug.Stack())
		}
	}()
	fn(event)
}
