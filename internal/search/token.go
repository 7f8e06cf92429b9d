package search

import "sync/atomic"

// Token is a one-shot cancellation flag shared between the goroutine that
// owns a search and the goroutine running it.
type Token struct {
	cancelled atomic.Bool
}

// NewToken returns a token that has not been cancelled.
func NewToken() *Token {
	return &Token{}
}

// Cancel marks the token as cancelled. Calling it more than once is harmless.
func (t *Token) Cancel() {
	if t != nil {
		t.cancelled.Store(true)
	}
}

// Cancelled reports whether Cancel has been called. A nil token is never cancelled.
func (t *Token) Cancelled() bool {
	return t != nil && t.cancelled.Load()
}
