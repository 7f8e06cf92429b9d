package ui

import (
	"time"
)

// tickMsg drives the result polling loop
type tickMsg time.Time

// toggleVisibilityMsg is sent by the hotkey listener and the tray
type toggleVisibilityMsg struct {
	source string
}

// setVisibilityMsg shows or hides the finder from the tray menu
type setVisibilityMsg struct {
	visible bool
	source  string
}

// quitRequestMsg asks the model to quit as if the user pressed ctrl+c
type quitRequestMsg struct{}

// pagerDoneMsg contains the result of a pager command
type pagerDoneMsg struct {
	path string // empty for the help pager
	err  error
}
