// Package platform wraps the OS integrations around the search core:
// launch at login, a global show/hide hotkey, a tray host, opening results
// with the default handler and the clipboard.
//
// Every capability can be missing. Callers treat errors as non-fatal.
package platform

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// ErrUnsupported is returned by capabilities that do not exist on this OS.
var ErrUnsupported = errors.New("not supported on this platform")

// AppID names the autorun entry and similar OS registrations.
const AppID = "SearchConfFinder"

// Autorun enables or disables launching the program at user login.
type Autorun interface {
	Set(enabled bool) error
}

// Hotkey listens for a system-wide key combination and calls toggle from
// its own goroutine whenever it is pressed.
type Hotkey interface {
	Register(toggle func()) error
	Unregister()
}

// NewAutorun returns the registrar for the current OS.
func NewAutorun() Autorun {
	return newAutorun()
}

// NewHotkey returns the global hotkey listener for the current OS.
func NewHotkey() Hotkey {
	return newHotkey()
}

func executablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return exe, nil
}

// safeCall runs fn, logging instead of propagating a panic. Callbacks run on
// listener goroutines where a panic would take the process down.
func safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("platform callback panic: %v", r)
		}
	}()
	fn()
}
