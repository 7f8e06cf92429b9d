package coordinator

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"searchconf/internal/domain"
	"searchconf/internal/eventbus"
	"searchconf/internal/queue"
	"searchconf/internal/search"
)

// Validation and lifecycle errors returned by Start.
var (
	ErrInvalidFolder    = errors.New("select a valid folder")
	ErrEmptyQuery       = errors.New("enter a search term")
	ErrSearchInProgress = errors.New("a search is already running, stop it first")
)

// Coordinator runs one search at a time on a background goroutine and hands
// its results to a foreground consumer through a queue.
//
// The worker only ever pushes to the queue; the consumer calls Drain on its
// own schedule (or waits on Ready) and never blocks on the worker.
type Coordinator struct {
	bus   eventbus.EventBus
	queue *queue.Queue[domain.Message]

	mu      sync.Mutex
	state   domain.SearchState
	current domain.SearchID
	token   *search.Token
	wg      sync.WaitGroup
}

// New creates an idle coordinator. bus may be nil.
func New(bus eventbus.EventBus) *Coordinator {
	return &Coordinator{
		bus:   bus,
		queue: queue.New[domain.Message](),
	}
}

// Validate normalizes user input into a search request without starting it.
func Validate(p domain.SearchParams) (search.Request, error) {
	folder := strings.TrimSpace(p.Folder)
	if folder == "" {
		return search.Request{}, ErrInvalidFolder
	}
	fi, err := os.Stat(folder)
	if err != nil || !fi.IsDir() {
		return search.Request{}, fmt.Errorf("%w: %s", ErrInvalidFolder, folder)
	}
	if p.Query == "" {
		return search.Request{}, ErrEmptyQuery
	}
	if abs, err := filepath.Abs(folder); err == nil {
		folder = abs
	}

	return search.Request{
		Root:          folder,
		Pattern:       search.NormalizePattern(p.Extension),
		Recursive:     p.Recursive,
		Query:         p.Query,
		CaseSensitive: p.CaseSensitive,
		Strict:        p.Strict,
	}, nil
}

// Start validates the parameters and, if no search is active, launches a
// worker for them. Validation happens before any background work exists.
func (c *Coordinator) Start(p domain.SearchParams) (domain.SearchID, error) {
	c.mu.Lock()
	if c.state != domain.StateIdle {
		c.mu.Unlock()
		return "", ErrSearchInProgress
	}
	c.mu.Unlock()

	req, err := Validate(p)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	if c.state != domain.StateIdle {
		c.mu.Unlock()
		return "", ErrSearchInProgress
	}
	id := domain.NewSearchID()
	tok := search.NewToken()
	c.state = domain.StateRunning
	c.current = id
	c.token = tok
	c.wg.Add(1)
	c.mu.Unlock()

	log.Printf("Search %s started: root=%s pattern=%s recursive=%v", id, req.Root, req.Pattern, req.Recursive)
	c.publish(eventbus.SearchStartedEvent{
		Search:  id,
		Root:    req.Root,
		Pattern: req.Pattern,
		Query:   req.Query,
	})

	go c.run(id, req, tok)

	return id, nil
}

// run is the worker. Exactly one completion marker is pushed per search,
// whatever way the walk ends.
func (c *Coordinator) run(id domain.SearchID, req search.Request, tok *search.Token) {
	defer c.wg.Done()

	count := 0
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Search %s worker panic: %v\nStack: %s", id, r, debug.Stack())
		}
		cancelled := tok.Cancelled()
		c.queue.Push(domain.Message{
			Search:    id,
			Kind:      domain.MessageDone,
			Count:     count,
			Cancelled: cancelled,
		})
		log.Printf("Search %s finished: %d matches, cancelled=%v", id, count, cancelled)
		c.publish(eventbus.SearchCompletedEvent{Search: id, Count: count, Cancelled: cancelled})
	}()

	for path := range search.Search(req, tok) {
		c.queue.Push(domain.Message{Search: id, Kind: domain.MessageMatch, Path: path})
		count++
	}
}

// Stop requests cancellation of the running search. It returns false when
// nothing is running. The completion marker still arrives through Drain.
func (c *Coordinator) Stop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != domain.StateRunning {
		return c.state == domain.StateCancelling
	}
	c.token.Cancel()
	c.state = domain.StateCancelling
	log.Printf("Search %s stop requested", c.current)
	return true
}

// Drain returns every message currently queued, in the order the worker
// produced them. Observing the completion marker returns the coordinator
// to idle.
func (c *Coordinator) Drain() []domain.Message {
	msgs := c.queue.Drain()
	for _, m := range msgs {
		if !m.IsDone() {
			continue
		}
		c.mu.Lock()
		if m.Search == c.current {
			c.state = domain.StateIdle
			c.token = nil
		}
		c.mu.Unlock()
	}
	return msgs
}

// Ready signals that messages are waiting; see queue.Queue.Ready.
func (c *Coordinator) Ready() <-chan struct{} {
	return c.queue.Ready()
}

// State returns the lifecycle state as seen by the foreground.
func (c *Coordinator) State() domain.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Shutdown cancels any running search and waits up to timeout for the
// worker to exit. It reports whether the worker finished in time.
func (c *Coordinator) Shutdown(timeout time.Duration) bool {
	c.mu.Lock()
	if c.token != nil {
		c.token.Cancel()
	}
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		log.Printf("Search worker did not stop within %s", timeout)
		return false
	}
}

func (c *Coordinator) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
