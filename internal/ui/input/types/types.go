package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeForm Mode = iota
	ModeResults
	ModeSettings
	ModeMessage
	ModeHidden
)

func (m Mode) String() string {
	switch m {
	case ModeForm:
		return "form"
	case ModeResults:
		return "results"
	case ModeSettings:
		return "settings"
	case ModeMessage:
		return "message"
	case ModeHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Field is a focusable control of the search form
type Field int

const (
	FieldFolder Field = iota
	FieldQuery
	FieldExtension
	FieldRecursive
	FieldCaseSensitive
	fieldCount
)

// IsText reports whether the field takes typed input
func (f Field) IsText() bool {
	return f == FieldFolder || f == FieldQuery || f == FieldExtension
}

// Next returns the field after f, wrapping around. reverse walks backwards.
func (f Field) Next(reverse bool) Field {
	if reverse {
		return (f + fieldCount - 1) % fieldCount
	}
	return (f + 1) % fieldCount
}

// SettingsField is a focusable control of the settings popup
type SettingsField int

const (
	SettingsProgramName SettingsField = iota
	SettingsDefaultFolder
	SettingsAutorun
	SettingsHotkey
	SettingsStrict
	settingsFieldCount
)

func (f SettingsField) IsText() bool {
	return f == SettingsProgramName || f == SettingsDefaultFolder
}

func (f SettingsField) Next(reverse bool) SettingsField {
	if reverse {
		return (f + settingsFieldCount - 1) % settingsFieldCount
	}
	return (f + 1) % settingsFieldCount
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	FocusedField() Field
	SettingsField() SettingsField
	ResultCount() int
	SelectedCount() int
	Searching() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
