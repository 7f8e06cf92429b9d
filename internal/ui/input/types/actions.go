package types

// Search lifecycle actions
type StartSearchAction struct {
	FocusResults bool // move focus to the results once the search completes
}

func (a StartSearchAction) Type() string { return "start_search" }

type StopSearchAction struct{}

func (a StopSearchAction) Type() string { return "stop_search" }

type ClearResultsAction struct{}

func (a ClearResultsAction) Type() string { return "clear_results" }

// Focus actions
type FocusFieldAction struct {
	Field Field
}

func (a FocusFieldAction) Type() string { return "focus_field" }

type FocusNextAction struct {
	Reverse bool
}

func (a FocusNextAction) Type() string { return "focus_next" }

type FocusResultsAction struct{}

func (a FocusResultsAction) Type() string { return "focus_results" }

type ToggleOptionAction struct {
	Field Field
}

func (a ToggleOptionAction) Type() string { return "toggle_option" }

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type SelectAction struct{}

func (a SelectAction) Type() string { return "select" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// Result actions
type OpenAction struct{}

func (a OpenAction) Type() string { return "open" }

type RevealAction struct{}

func (a RevealAction) Type() string { return "reveal" }

type CopyAction struct{}

func (a CopyAction) Type() string { return "copy" }

type PreviewAction struct{}

func (a PreviewAction) Type() string { return "preview" }

// Settings popup actions
type OpenSettingsAction struct{}

func (a OpenSettingsAction) Type() string { return "open_settings" }

type SettingsFocusAction struct {
	Reverse bool
}

func (a SettingsFocusAction) Type() string { return "settings_focus" }

type SettingsToggleAction struct {
	Field SettingsField
}

func (a SettingsToggleAction) Type() string { return "settings_toggle" }

type ApplySettingsAction struct{}

func (a ApplySettingsAction) Type() string { return "apply_settings" }

type CloseSettingsAction struct{}

func (a CloseSettingsAction) Type() string { return "close_settings" }

// Window actions
type DismissAction struct{}

func (a DismissAction) Type() string { return "dismiss" }

type ToggleVisibilityAction struct{}

func (a ToggleVisibilityAction) Type() string { return "toggle_visibility" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
