package ui

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchconf/internal/config"
	"searchconf/internal/coordinator"
	"searchconf/internal/domain"
	"searchconf/internal/eventbus"
	"searchconf/internal/platform"
	"searchconf/internal/ui/commands"
	"searchconf/internal/ui/input"
	"searchconf/internal/ui/input/types"
	"searchconf/internal/ui/logic"
	"searchconf/internal/ui/state"
	"searchconf/internal/ui/views"
)

// Status lines
const (
	statusIdle      = "Enter a folder and a search term."
	statusSearching = "Searching..."
	statusStopping  = "Stop requested..."
	statusCleared   = "Results cleared."
	msgBusy         = "A search is already running. Stop it first."
)

// Searcher is the part of the coordinator the model drives.
type Searcher interface {
	Start(p domain.SearchParams) (domain.SearchID, error)
	Stop() bool
	Drain() []domain.Message
}

// Deps are the collaborators of the model. Nil platform entries are
// replaced by the OS implementations.
type Deps struct {
	Bus       eventbus.EventBus
	Config    config.ConfigService
	Settings  *config.Settings
	Searcher  Searcher
	Autorun   platform.Autorun
	Hotkey    platform.Hotkey
	Opener    platform.Opener
	Clipboard platform.Clipboard
}

// settingsForm is the editable copy shown in the settings popup
type settingsForm struct {
	name    textinput.Model
	folder  textinput.Model
	autorun bool
	hotkey  bool
	strict  bool
	focus   types.SettingsField
}

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	cfg      config.ConfigService
	settings *config.Settings
	searcher Searcher
	autorun  platform.Autorun
	hotkey   platform.Hotkey
	state    *state.AppState

	width  int
	height int
	help   help.Model

	folderInput   textinput.Model
	queryInput    textinput.Model
	extInput      textinput.Model
	recursive     bool
	caseSensitive bool
	focus         types.Field
	form          *settingsForm

	navigator    *logic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	cmdCtx       *commands.CommandContext
	pager        *Pager

	// toggle is handed to the global hotkey; it must be safe to call from
	// any goroutine.
	toggle           func()
	hotkeyRegistered bool

	quitting bool
}

// NewModel creates a new UI model
func NewModel(d Deps) *Model {
	if d.Settings == nil {
		d.Settings = config.DefaultSettings()
	}
	if d.Autorun == nil {
		d.Autorun = platform.NewAutorun()
	}
	if d.Hotkey == nil {
		d.Hotkey = platform.NewHotkey()
	}
	if d.Opener == nil {
		d.Opener = platform.NewOpener()
	}
	if d.Clipboard == nil {
		d.Clipboard = platform.NewClipboard()
	}
	if d.Searcher == nil {
		d.Searcher = coordinator.New(d.Bus)
	}

	m := &Model{
		bus:          d.Bus,
		cfg:          d.Config,
		settings:     d.Settings,
		searcher:     d.Searcher,
		autorun:      d.Autorun,
		hotkey:       d.Hotkey,
		state:        state.NewAppState(),
		help:         help.New(),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		cmdCtx: &commands.CommandContext{
			Opener:    d.Opener,
			Clipboard: d.Clipboard,
			Bus:       d.Bus,
		},
	}

	m.folderInput = newInput("folder to search")
	m.queryInput = newInput("text to find")
	m.extInput = newInput(".conf")

	m.folderInput.SetValue(m.settings.InitialFolder())
	m.queryInput.SetValue(m.settings.LastQuery)
	m.extInput.SetValue(m.settings.InitialExtension())
	m.recursive = m.settings.Recursive
	m.caseSensitive = m.settings.CaseSensitive

	m.state.StatusMessage = statusIdle
	m.focusField(types.FieldQuery)

	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.Width = 60
	return ti
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPager(p)
}

// SetToggle sets the callback the global hotkey invokes.
func (m *Model) SetToggle(fn func()) {
	m.toggle = fn
}

// State exposes the application state, mostly for tests.
func (m *Model) State() *state.AppState {
	return m.state
}

// Startup reconciles the OS integrations with the stored settings. It runs
// before the program starts, so it may touch state directly.
func (m *Model) Startup() {
	desired := m.settings.Autorun
	if err := m.autorun.Set(desired); err != nil {
		log.Printf("Autorun reconcile failed: %v", err)
		if desired {
			m.settings.Autorun = false
		}
	}

	if m.settings.GlobalHotkeyEnabled {
		if err := m.registerHotkey(); err != nil && !errors.Is(err, platform.ErrUnsupported) {
			m.state.StatusMessage = fmt.Sprintf("Global hotkey unavailable: %v", err)
		}
	}
}

func (m *Model) registerHotkey() error {
	if m.hotkeyRegistered {
		return nil
	}
	toggle := m.toggle
	if toggle == nil {
		toggle = func() {}
	}
	if err := m.hotkey.Register(toggle); err != nil {
		log.Printf("Global hotkey registration failed: %v", err)
		return err
	}
	m.hotkeyRegistered = true
	return nil
}

func (m *Model) unregisterHotkey() {
	if !m.hotkeyRegistered {
		return
	}
	m.hotkey.Unregister()
	m.hotkeyRegistered = false
}

// Shutdown releases what Startup acquired.
func (m *Model) Shutdown() {
	m.unregisterHotkey()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tick(), textinput.Blink, tea.SetWindowTitle(m.title()))
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) title() string {
	if name := strings.TrimSpace(m.settings.ProgramName); name != "" {
		return name
	}
	return config.AppNameDefault
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		inputWidth := msg.Width - 20
		if inputWidth < 10 {
			inputWidth = 10
		}
		m.folderInput.Width = inputWidth
		m.queryInput.Width = inputWidth
		m.extInput.Width = inputWidth
		return m, nil

	case tea.KeyMsg:
		actions, consumed := m.inputHandler.HandleKey(msg, modelContext{m})

		cmds := []tea.Cmd{}
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		if !consumed {
			if cmd := m.updateFocusedInput(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tickMsg:
		m.drainResults()
		return m, tick()

	case toggleVisibilityMsg:
		return m, m.setHidden(!m.state.Hidden, msg.source)

	case setVisibilityMsg:
		return m, m.setHidden(!msg.visible, msg.source)

	case quitRequestMsg:
		return m, m.quit()

	case commands.ResultMsg:
		m.handleCommandResult(msg)
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			if msg.path != "" {
				m.showNotice(state.NoticeError, "Preview failed", fmt.Sprintf("%s\n\n%v", msg.path, msg.err))
			}
		}
		return m, nil

	default:
		// Cursor blink and other input internals
		return m, m.updateFocusedInput(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 && !m.state.Hidden {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	mode := m.inputHandler.BaseMode()
	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Title:          m.title(),
		Folder:         m.folderInput.View(),
		Query:          m.queryInput.View(),
		Extension:      m.extInput.View(),
		Recursive:      m.recursive,
		CaseSensitive:  m.caseSensitive,
		Focus:          m.focus,
		FormFocused:    mode == types.ModeForm,
		Results:        m.state.Results,
		Selected:       m.state.Selected,
		Cursor:         m.state.Cursor,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		Searching:      m.state.Searching,
		Stopping:       m.state.Stopping,
		Status:         m.state.StatusMessage,
		Hidden:         m.state.Hidden,
	}
	if mode == types.ModeForm {
		vs.HelpLine = m.help.ShortHelpView(types.Keys.FormHelp())
	} else {
		vs.HelpLine = m.help.ShortHelpView(types.Keys.ResultsHelp())
	}

	if n, ok := m.state.CurrentNotice(); ok && m.inputHandler.CurrentMode() == types.ModeMessage {
		vs.Notice = &n
	} else if m.form != nil {
		vs.Settings = &views.SettingsView{
			ProgramName:   m.form.name.View(),
			DefaultFolder: m.form.folder.View(),
			Autorun:       m.form.autorun,
			Hotkey:        m.form.hotkey,
			Strict:        m.form.strict,
			Focus:         m.form.focus,
			HelpLine:      m.help.ShortHelpView(types.Keys.SettingsHelp()),
		}
	}
	return vs
}

func (m *Model) updateViewportHeight() {
	h := m.height - views.ChromeLines
	if h < 3 {
		h = 3
	}
	m.state.ViewportHeight = h
	m.navigate("")
}

// processAction processes an action from the input handler
func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.StartSearchAction:
		return m.startSearch(a.FocusResults)

	case types.StopSearchAction:
		if m.state.Searching && m.searcher.Stop() {
			m.state.Stopping = true
			m.state.StatusMessage = statusStopping
		}
		return nil

	case types.ClearResultsAction:
		m.state.ClearResults()
		m.state.StatusMessage = statusCleared
		if m.inputHandler.BaseMode() == types.ModeResults {
			return m.focusField(types.FieldQuery)
		}
		return nil

	case types.FocusFieldAction:
		return m.focusField(a.Field)

	case types.FocusNextAction:
		return m.focusField(m.focus.Next(a.Reverse))

	case types.FocusResultsAction:
		m.focusResults()
		return nil

	case types.ToggleOptionAction:
		switch a.Field {
		case types.FieldRecursive:
			m.recursive = !m.recursive
		case types.FieldCaseSensitive:
			m.caseSensitive = !m.caseSensitive
		}
		return nil

	case types.NavigateAction:
		m.navigate(a.Direction)
		return nil

	case types.SelectAction:
		logic.ToggleSelected(m.state.Selected, m.state.CurrentPath())
		return nil

	case types.SelectAllAction:
		logic.SelectAll(m.state.Selected, m.state.Results)
		return nil

	case types.DeselectAllAction:
		m.state.Selected = make(map[string]bool)
		return nil

	case types.OpenAction:
		return commands.NewOpenCommand(m.cmdCtx, m.targetPaths()).Execute()

	case types.RevealAction:
		return commands.NewRevealCommand(m.cmdCtx, m.state.CurrentPath()).Execute()

	case types.CopyAction:
		return commands.NewCopyCommand(m.cmdCtx, m.targetPaths()).Execute()

	case types.PreviewAction:
		return m.previewCmd(m.state.CurrentPath())

	case types.ShowHelpAction:
		return m.helpCmd()

	case types.OpenSettingsAction:
		return m.openSettings()

	case types.SettingsFocusAction:
		if m.form != nil {
			return m.focusSettings(m.form.focus.Next(a.Reverse))
		}
		return nil

	case types.SettingsToggleAction:
		if m.form != nil {
			switch a.Field {
			case types.SettingsAutorun:
				m.form.autorun = !m.form.autorun
			case types.SettingsHotkey:
				m.form.hotkey = !m.form.hotkey
			case types.SettingsStrict:
				m.form.strict = !m.form.strict
			}
		}
		return nil

	case types.ApplySettingsAction:
		return m.applySettings()

	case types.CloseSettingsAction:
		m.closeSettings()
		return nil

	case types.DismissAction:
		if !m.state.DismissNotice() {
			m.inputHandler.Pop()
		}
		return nil

	case types.ToggleVisibilityAction:
		return m.setHidden(!m.state.Hidden, "keyboard")

	case types.QuitAction:
		return m.quit()
	}
	return nil
}

// modelContext implements the Context interface for the input handler
type modelContext struct {
	m *Model
}

func (c modelContext) FocusedField() types.Field { return c.m.focus }

func (c modelContext) SettingsField() types.SettingsField {
	if c.m.form == nil {
		return types.SettingsProgramName
	}
	return c.m.form.focus
}

func (c modelContext) ResultCount() int   { return len(c.m.state.Results) }
func (c modelContext) SelectedCount() int { return len(c.m.state.Selected) }
func (c modelContext) Searching() bool    { return c.m.state.Searching }

// updateFocusedInput forwards msg to whichever text field has focus.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.inputHandler.CurrentMode() {
	case types.ModeForm:
		switch m.focus {
		case types.FieldFolder:
			m.folderInput, cmd = m.folderInput.Update(msg)
		case types.FieldQuery:
			m.queryInput, cmd = m.queryInput.Update(msg)
		case types.FieldExtension:
			m.extInput, cmd = m.extInput.Update(msg)
		}
	case types.ModeSettings:
		if m.form == nil {
			return nil
		}
		switch m.form.focus {
		case types.SettingsProgramName:
			m.form.name, cmd = m.form.name.Update(msg)
		case types.SettingsDefaultFolder:
			m.form.folder, cmd = m.form.folder.Update(msg)
		}
	}
	return cmd
}

// focusField moves focus into the search form.
func (m *Model) focusField(f types.Field) tea.Cmd {
	m.inputHandler.SetMode(types.ModeForm)
	m.focus = f
	m.folderInput.Blur()
	m.queryInput.Blur()
	m.extInput.Blur()

	var cmd tea.Cmd
	switch f {
	case types.FieldFolder:
		cmd = m.folderInput.Focus()
	case types.FieldQuery:
		cmd = m.queryInput.Focus()
		m.queryInput.CursorEnd()
	case types.FieldExtension:
		cmd = m.extInput.Focus()
	}
	return cmd
}

// focusResults moves focus to the result list.
func (m *Model) focusResults() {
	m.folderInput.Blur()
	m.queryInput.Blur()
	m.extInput.Blur()
	m.inputHandler.SetMode(types.ModeResults)
	m.navigate("")
}

func (m *Model) navigate(direction string) {
	m.navigator.UpdateState(m.state.Cursor, m.state.ViewportOffset, m.state.ViewportHeight, len(m.state.Results))
	if direction == "" {
		m.state.Cursor, m.state.ViewportOffset = m.navigator.SetCursor(m.state.Cursor)
		return
	}
	m.state.Cursor, m.state.ViewportOffset = m.navigator.Move(direction)
}

func (m *Model) targetPaths() []string {
	return logic.TargetPaths(m.state.Results, m.state.Selected, m.state.Cursor)
}

// startSearch validates the form and hands it to the searcher.
func (m *Model) startSearch(focusResults bool) tea.Cmd {
	if m.state.Searching {
		m.showNotice(state.NoticeInfo, "Notice", msgBusy)
		return nil
	}

	folder := strings.TrimSpace(m.folderInput.Value())
	query := m.queryInput.Value()
	ext := strings.TrimSpace(m.extInput.Value())
	if ext == "" {
		ext = ".conf"
	}

	id, err := m.searcher.Start(domain.SearchParams{
		Folder:        folder,
		Extension:     ext,
		Query:         query,
		Recursive:     m.recursive,
		CaseSensitive: m.caseSensitive,
		Strict:        m.settings.StrictEncoding,
	})
	switch {
	case errors.Is(err, coordinator.ErrSearchInProgress):
		m.showNotice(state.NoticeInfo, "Notice", msgBusy)
		return nil
	case errors.Is(err, coordinator.ErrInvalidFolder):
		m.showNotice(state.NoticeError, "Error", "Select a valid folder.")
		return nil
	case errors.Is(err, coordinator.ErrEmptyQuery):
		m.showNotice(state.NoticeError, "Error", "Enter a search term.")
		return nil
	case err != nil:
		m.showNotice(state.NoticeError, "Error", err.Error())
		return nil
	}

	if m.extInput.Value() != ext {
		m.extInput.SetValue(ext)
	}
	m.state.ClearResults()
	m.state.BeginSearch(id, focusResults)
	m.state.StatusMessage = statusSearching

	m.settings.PushFolder(folder)
	m.settings.LastFolder = folder
	m.settings.LastQuery = query
	m.settings.LastExtension = ext
	m.settings.Recursive = m.recursive
	m.settings.CaseSensitive = m.caseSensitive
	return nil
}

// drainResults moves every queued message into the list. It runs on each
// tick whether or not a search is active.
func (m *Model) drainResults() {
	updated := false
	for _, msg := range m.searcher.Drain() {
		if msg.Search != m.state.ActiveSearch {
			continue
		}
		if msg.IsDone() {
			m.finishSearch(msg)
			continue
		}
		m.state.AppendResult(msg.Path)
		updated = true
	}

	if updated && m.state.Searching {
		m.state.StatusMessage = fmt.Sprintf("Searching... %d found so far", len(m.state.Results))
	}
	if updated {
		m.navigate("")
	}
}

func (m *Model) finishSearch(msg domain.Message) {
	m.state.EndSearch()

	status := "Search complete: no matching files."
	if n := len(m.state.Results); n > 0 {
		status = fmt.Sprintf("Search complete: %d files", n)
	}
	if msg.Cancelled {
		status = "Stopped: " + status
	}
	m.state.StatusMessage = status

	if m.state.FocusResultsAfterSearch {
		m.state.FocusResultsAfterSearch = false
		if len(m.state.Results) > 0 && m.inputHandler.BaseMode() == types.ModeForm {
			m.state.Cursor = 0
			m.state.ViewportOffset = 0
			if m.inputHandler.CurrentMode() == types.ModeForm {
				m.focusResults()
			} else {
				// A popup is open; switch underneath it.
				m.swapBaseMode(types.ModeResults)
			}
		}
	}
}

// swapBaseMode changes the bottom mode while keeping popups open.
func (m *Model) swapBaseMode(mode types.Mode) {
	popups := []types.Mode{}
	for _, p := range []types.Mode{types.ModeSettings, types.ModeMessage, types.ModeHidden} {
		if m.inputHandler.Has(p) {
			popups = append(popups, p)
		}
	}
	m.folderInput.Blur()
	m.queryInput.Blur()
	m.extInput.Blur()
	m.inputHandler.SetMode(mode)
	for _, p := range popups {
		m.inputHandler.Push(p)
	}
}

func (m *Model) showNotice(level, title, body string) {
	m.state.PushNotice(state.Notice{Level: level, Title: title, Body: body})
	m.inputHandler.Push(types.ModeMessage)
}

func (m *Model) handleCommandResult(msg commands.ResultMsg) {
	if err := msg.Err(); err != nil {
		switch msg.Op {
		case commands.OpOpen:
			m.showNotice(state.NoticeError, "Error", fmt.Sprintf("Failed to open file:\n\n%v", err))
		case commands.OpReveal:
			m.showNotice(state.NoticeError, "Error", fmt.Sprintf("Failed to open folder:\n\n%v", err))
		case commands.OpCopy:
			m.showNotice(state.NoticeError, "Error", fmt.Sprintf("Failed to copy paths:\n\n%v", err))
		}
		return
	}
	if msg.Op == commands.OpCopy {
		m.state.StatusMessage = fmt.Sprintf("Copied %d paths", len(msg.Paths))
	}
}

func (m *Model) previewCmd(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	strict := m.settings.StrictEncoding
	pager := m.pager
	return func() tea.Msg {
		content, err := PreviewContent(path, strict)
		if err == nil {
			err = pager.Show(content)
		}
		return pagerDoneMsg{path: path, err: err}
	}
}

func (m *Model) helpCmd() tea.Cmd {
	content := HelpContent(m.title())
	pager := m.pager
	return func() tea.Msg {
		return pagerDoneMsg{err: pager.Show(content)}
	}
}

// Settings popup

func (m *Model) openSettings() tea.Cmd {
	name := newInput(config.AppNameDefault)
	name.SetValue(m.title())
	folder := newInput("home folder")
	defaultFolder := m.settings.DefaultFolder
	if defaultFolder == "" {
		defaultFolder, _ = os.UserHomeDir()
	}
	folder.SetValue(defaultFolder)

	m.form = &settingsForm{
		name:    name,
		folder:  folder,
		autorun: m.settings.Autorun,
		hotkey:  m.settings.GlobalHotkeyEnabled,
		strict:  m.settings.StrictEncoding,
	}
	m.inputHandler.Push(types.ModeSettings)
	return m.focusSettings(types.SettingsProgramName)
}

func (m *Model) focusSettings(f types.SettingsField) tea.Cmd {
	m.form.focus = f
	m.form.name.Blur()
	m.form.folder.Blur()
	switch f {
	case types.SettingsProgramName:
		return m.form.name.Focus()
	case types.SettingsDefaultFolder:
		return m.form.folder.Focus()
	}
	return nil
}

func (m *Model) closeSettings() {
	m.form = nil
	m.inputHandler.Remove(types.ModeSettings)
}

// applySettings stores the popup values and reconciles autorun and the
// hotkey. Failures leave the previous value and are reported as warnings
// after the popup closes.
func (m *Model) applySettings() tea.Cmd {
	form := m.form
	if form == nil {
		return nil
	}

	name := strings.TrimSpace(form.name.Value())
	if name == "" {
		name = config.AppNameDefault
	}
	m.settings.ProgramName = name

	defaultFolder := strings.TrimSpace(form.folder.Value())
	if defaultFolder == "" {
		if home, err := os.UserHomeDir(); err == nil {
			defaultFolder = home
		}
	}
	m.settings.DefaultFolder = defaultFolder
	if strings.TrimSpace(m.folderInput.Value()) == "" {
		m.folderInput.SetValue(defaultFolder)
	}

	m.settings.StrictEncoding = form.strict

	var warnings []string
	if form.autorun != m.settings.Autorun {
		if err := m.autorun.Set(form.autorun); err != nil {
			log.Printf("Autorun change failed: %v", err)
			warnings = append(warnings, "Could not change launch at login. It may need elevated rights.")
		} else {
			m.settings.Autorun = form.autorun
		}
	}

	if form.hotkey != m.settings.GlobalHotkeyEnabled {
		m.settings.GlobalHotkeyEnabled = form.hotkey
		if form.hotkey {
			if err := m.registerHotkey(); err != nil {
				warnings = append(warnings, "Could not register the global hotkey. It may need elevated rights or clash with another program.")
				m.settings.GlobalHotkeyEnabled = false
			}
		} else {
			m.unregisterHotkey()
		}
	}

	m.persist("settings applied")
	m.closeSettings()
	for _, w := range warnings {
		m.showNotice(state.NoticeWarning, "Notice", w)
	}
	return tea.SetWindowTitle(name)
}

// persist copies the form into the settings and writes them.
func (m *Model) persist(reason string) {
	if m.settings.ProgramName == "" {
		m.settings.ProgramName = config.AppNameDefault
	}
	if m.settings.DefaultFolder == "" {
		m.settings.DefaultFolder = strings.TrimSpace(m.folderInput.Value())
	}
	m.settings.LastFolder = m.folderInput.Value()
	m.settings.LastQuery = m.queryInput.Value()
	m.settings.LastExtension = m.extInput.Value()
	m.settings.Recursive = m.recursive
	m.settings.CaseSensitive = m.caseSensitive
	if m.width > 0 && m.height > 0 {
		m.settings.WindowGeometry = fmt.Sprintf("%dx%d", m.width, m.height)
	}

	if m.bus != nil {
		m.bus.Publish(eventbus.SettingsChangedEvent{Reason: reason})
	}
	if m.cfg == nil {
		return
	}
	if err := m.cfg.Save(m.settings); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}
}

// Visibility

func (m *Model) setHidden(hidden bool, source string) tea.Cmd {
	if hidden == m.state.Hidden {
		return nil
	}
	m.state.Hidden = hidden
	if m.bus != nil {
		m.bus.Publish(eventbus.VisibilityToggledEvent{Source: source})
	}

	if hidden {
		if m.width > 0 && m.height > 0 {
			m.settings.WindowGeometry = fmt.Sprintf("%dx%d", m.width, m.height)
		}
		m.inputHandler.Push(types.ModeHidden)
		return tea.ExitAltScreen
	}

	m.inputHandler.Remove(types.ModeHidden)
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.inputHandler.CurrentMode() == types.ModeForm {
		cmds = append(cmds, m.focusField(types.FieldQuery))
	}
	return tea.Batch(cmds...)
}

func (m *Model) quit() tea.Cmd {
	if m.quitting {
		return tea.Quit
	}
	m.searcher.Stop()
	m.persist("quit")
	m.quitting = true
	return tea.Quit
}
