//go:build windows || linux

package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"fyne.io/systray"
)

// trayWait bounds how long Start and Stop wait for the tray loop.
const trayWait = 2 * time.Second

var errTrayTimeout = errors.New("tray did not come up")

type systrayHost struct {
	mu      sync.Mutex
	started bool
	done    chan struct{}
	exited  chan struct{}
}

func newTray() Tray {
	return &systrayHost{}
}

// Start runs the systray loop on its own locked OS thread. It returns once
// the menu is built.
func (h *systrayHost) Start(tooltip string, actions TrayActions) error {
	if !sessionBusAvailable() {
		return ErrUnsupported
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.started {
		return nil
	}
	h.started = true
	h.done = make(chan struct{})
	h.exited = make(chan struct{})

	ready := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		defer close(h.exited)
		systray.Run(func() {
			if runtime.GOOS == "windows" {
				systray.SetIcon(trayIconICO())
			} else {
				systray.SetIcon(trayIconPNG())
			}
			systray.SetTitle(tooltip)
			systray.SetTooltip(tooltip)

			show := systray.AddMenuItem("Show", "Show the finder")
			hide := systray.AddMenuItem("Hide", "Hide the finder")
			systray.AddSeparator()
			quit := systray.AddMenuItem("Quit", "Quit "+tooltip)

			go dispatchClicks(trayClicks{
				show: show.ClickedCh,
				hide: hide.ClickedCh,
				quit: quit.ClickedCh,
			}, actions, h.done)
			close(ready)
		}, nil)
	}()

	select {
	case <-ready:
		return nil
	case <-h.exited:
		return nil
	case <-time.After(trayWait):
		return errTrayTimeout
	}
}

// Stop removes the icon and waits, bounded, for the loop to exit.
func (h *systrayHost) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.started {
		return
	}
	h.started = false
	close(h.done)
	systray.Quit()
	select {
	case <-h.exited:
	case <-time.After(trayWait):
	}
}

// sessionBusAvailable reports whether a StatusNotifier host may be reached.
// Linux trays go through the D-Bus session bus; Windows always has one.
func sessionBusAvailable() bool {
	if runtime.GOOS != "linux" {
		return true
	}
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") != "" {
		return true
	}
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		if _, err := os.Stat(filepath.Join(dir, "bus")); err == nil {
			return true
		}
	}
	return false
}
