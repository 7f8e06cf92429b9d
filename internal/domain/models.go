package domain

import "github.com/google/uuid"

// SearchID identifies one search run
type SearchID string

// NewSearchID returns a fresh search identifier
func NewSearchID() SearchID {
	return SearchID(uuid.NewString())
}

// MessageKind distinguishes result messages from the completion marker
type MessageKind int

const (
	MessageMatch MessageKind = iota
	MessageDone
)

// Message is one item on the result channel between the worker and the UI
type Message struct {
	Search SearchID
	Kind   MessageKind
	Path   string // set for MessageMatch
	Count  int    // matches emitted, set for MessageDone
	// Cancelled reports whether the run ended because a stop was requested
	Cancelled bool
}

// IsDone reports whether the message is the completion marker
func (m Message) IsDone() bool {
	return m.Kind == MessageDone
}

// SearchState is the coordinator lifecycle state
type SearchState int

const (
	StateIdle SearchState = iota
	StateRunning
	StateCancelling // stop requested, waiting for the completion marker
)

func (s SearchState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCancelling:
		return "cancelling"
	default:
		return "unknown"
	}
}

// SearchParams are the user-facing inputs of a search before normalization
type SearchParams struct {
	Folder        string
	Extension     string
	Query         string
	Recursive     bool
	CaseSensitive bool
	Strict        bool // strict encoding fallback
}
