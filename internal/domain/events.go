package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted     EventType = "SearchStarted"
	EventSearchCompleted   EventType = "SearchCompleted"
	EventSettingsChanged   EventType = "SettingsChanged"
	EventSettingsSaved     EventType = "SettingsSaved"
	EventVisibilityToggled EventType = "VisibilityToggled"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a background search begins
type SearchStartedEvent struct {
	Search  SearchID
	Root    string
	Pattern string
	Query   string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when the worker has pushed its completion marker
type SearchCompletedEvent struct {
	Search    SearchID
	Count     int
	Cancelled bool
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SettingsChangedEvent asks for the settings to be persisted
type SettingsChangedEvent struct {
	Reason string
}

func (e SettingsChangedEvent) Type() EventType { return EventSettingsChanged }

// SettingsSavedEvent is emitted after settings were written
type SettingsSavedEvent struct {
	Path string
}

func (e SettingsSavedEvent) Type() EventType { return EventSettingsSaved }

// VisibilityToggledEvent is emitted when the hotkey or tray toggles the window
type VisibilityToggledEvent struct {
	Source string
}

func (e VisibilityToggledEvent) Type() EventType { return EventVisibilityToggled }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
