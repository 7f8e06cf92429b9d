package state

import (
	"searchconf/internal/domain"
)

// Notice levels for popups
const (
	NoticeInfo    = "info"
	NoticeWarning = "warning"
	NoticeError   = "error"
)

// Notice is a modal message shown over the main view
type Notice struct {
	Level string
	Title string
	Body  string
}

// AppState contains all the application state
type AppState struct {
	// Result data
	Results  []string        // matched paths in arrival order
	Selected map[string]bool // selected result paths

	// Cursor and viewport
	Cursor         int
	ViewportOffset int
	ViewportHeight int

	// Search lifecycle as seen by the UI
	ActiveSearch            domain.SearchID
	Searching               bool
	Stopping                bool
	FocusResultsAfterSearch bool

	// UI state
	StatusMessage string
	Notices       []Notice // queued popups, first one is shown
	Hidden        bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Selected:       make(map[string]bool),
		ViewportHeight: 10, // Default
	}
}

// Result operations

// AppendResult adds a matched path at the end of the list.
func (s *AppState) AppendResult(path string) {
	s.Results = append(s.Results, path)
}

// ClearResults empties the list, the selection and the viewport.
func (s *AppState) ClearResults() {
	s.Results = nil
	s.Selected = make(map[string]bool)
	s.Cursor = 0
	s.ViewportOffset = 0
}

// CurrentPath returns the path under the cursor, or "" for an empty list.
func (s *AppState) CurrentPath() string {
	if s.Cursor < 0 || s.Cursor >= len(s.Results) {
		return ""
	}
	return s.Results[s.Cursor]
}

// Search lifecycle

// BeginSearch records a started search.
func (s *AppState) BeginSearch(id domain.SearchID, focusResults bool) {
	s.ActiveSearch = id
	s.Searching = true
	s.Stopping = false
	s.FocusResultsAfterSearch = focusResults
}

// EndSearch records the completion marker of the active search.
func (s *AppState) EndSearch() {
	s.Searching = false
	s.Stopping = false
}

// Notices

// PushNotice queues a popup.
func (s *AppState) PushNotice(n Notice) {
	s.Notices = append(s.Notices, n)
}

// CurrentNotice returns the popup being shown.
func (s *AppState) CurrentNotice() (Notice, bool) {
	if len(s.Notices) == 0 {
		return Notice{}, false
	}
	return s.Notices[0], true
}

// DismissNotice drops the shown popup and reports whether more are queued.
func (s *AppState) DismissNotice() bool {
	if len(s.Notices) > 0 {
		s.Notices = s.Notices[1:]
	}
	return len(s.Notices) > 0
}
