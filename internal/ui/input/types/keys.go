package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every key binding of the finder. The bindings double as the
// source of the help footer and the help pager.
type KeyMap struct {
	Search     key.Binding
	Stop       key.Binding
	Clear      key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Toggle     key.Binding
	ToResults  key.Binding
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Select     key.Binding
	SelectAll  key.Binding
	Deselect   key.Binding
	Open       key.Binding
	Reveal     key.Binding
	Copy       key.Binding
	Preview    key.Binding
	ToForm     key.Binding
	ToQuery    key.Binding
	Settings   key.Binding
	Apply      key.Binding
	Close      key.Binding
	Visibility key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// Keys is the binding set used by all modes.
var Keys = DefaultKeyMap()

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Stop:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "stop")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		ToResults:  key.NewBinding(key.WithKeys("esc", "down"), key.WithHelp("esc", "results")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Select:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Deselect:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "deselect all")),
		Open:       key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter/o", "open")),
		Reveal:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "reveal folder")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy paths")),
		Preview:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "preview")),
		ToForm:     key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "form")),
		ToQuery:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "edit query")),
		Settings:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "settings")),
		Apply:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Visibility: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "hide/show")),
		Help:       key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// FormHelp is the footer shown while the search form has focus.
func (k KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextField, k.Stop, k.Clear, k.Settings, k.ToResults, k.ForceQuit}
}

// ResultsHelp is the footer shown while the result list has focus.
func (k KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Open, k.Reveal, k.Copy, k.Preview, k.Select, k.ToForm, k.Help, k.Quit}
}

// SettingsHelp is the footer of the settings popup.
func (k KeyMap) SettingsHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Toggle, k.Apply, k.Close}
}

// Sections groups the bindings for the help pager.
func (k KeyMap) Sections() []HelpSection {
	return []HelpSection{
		{Title: "Search form", Bindings: []key.Binding{k.Search, k.NextField, k.PrevField, k.Toggle, k.ToResults}},
		{Title: "Search control", Bindings: []key.Binding{k.Stop, k.Clear}},
		{Title: "Navigation", Bindings: []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.ToForm, k.ToQuery}},
		{Title: "Selection", Bindings: []key.Binding{k.Select, k.SelectAll, k.Deselect}},
		{Title: "Results", Bindings: []key.Binding{k.Open, k.Reveal, k.Copy, k.Preview}},
		{Title: "Other", Bindings: []key.Binding{k.Settings, k.Visibility, k.Help, k.Quit, k.ForceQuit}},
	}
}

// HelpSection is one titled block of the help pager.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}
