package ui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"searchconf/internal/platform"
)

// ShutdownTimeout bounds how long quitting waits for a running search.
const ShutdownTimeout = 500 * time.Millisecond

type shutdowner interface {
	Shutdown(timeout time.Duration) bool
}

// App owns the program and the integrations that outlive a single update:
// the hotkey listener, the tray host and the search worker.
type App struct {
	model   *Model
	program *tea.Program
	tray    platform.Tray
	worker  shutdowner
}

// NewApp builds the model and its program. tray may be nil.
func NewApp(d Deps, tray platform.Tray, opts ...tea.ProgramOption) *App {
	m := NewModel(d)
	if tray == nil {
		tray = platform.NewTray()
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(m, opts...)
	m.SetProgram(p)

	a := &App{model: m, program: p, tray: tray}
	if s, ok := m.searcher.(shutdowner); ok {
		a.worker = s
	}
	m.SetToggle(a.ToggleVisibility)
	return a
}

// ToggleVisibility hides or shows the finder. Safe from any goroutine.
func (a *App) ToggleVisibility() {
	a.program.Send(toggleVisibilityMsg{source: "hotkey"})
}

// Run blocks until the user quits.
func (a *App) Run() error {
	a.model.Startup()

	err := a.tray.Start(a.model.title(), platform.TrayActions{
		Show: func() { a.program.Send(setVisibilityMsg{visible: true, source: "tray"}) },
		Hide: func() { a.program.Send(setVisibilityMsg{visible: false, source: "tray"}) },
		Quit: func() { a.program.Send(quitRequestMsg{}) },
	})
	if err != nil {
		log.Printf("Tray unavailable: %v", err)
	}

	_, runErr := a.program.Run()

	if a.worker != nil {
		a.worker.Shutdown(ShutdownTimeout)
	}
	a.model.Shutdown()
	a.tray.Stop()

	if runErr != nil {
		return fmt.Errorf("error running program: %w", runErr)
	}
	return nil
}
