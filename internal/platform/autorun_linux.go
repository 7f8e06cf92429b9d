//go:build linux

package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// xdgAutorun manages a desktop entry in the XDG autostart directory.
type xdgAutorun struct {
	dir  string
	exec func() (string, error)
}

func newAutorun() Autorun {
	return &xdgAutorun{dir: autostartDir(), exec: executablePath}
}

func autostartDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "autostart")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "autostart")
}

func (a *xdgAutorun) entryPath() string {
	return filepath.Join(a.dir, AppID+".desktop")
}

func (a *xdgAutorun) Set(enabled bool) error {
	if a.dir == "" {
		return ErrUnsupported
	}
	if !enabled {
		if err := os.Remove(a.entryPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove autostart entry: %w", err)
		}
		return nil
	}

	exe, err := a.exec()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create autostart directory: %w", err)
	}
	entry := fmt.Sprintf("[Desktop Entry]\nType=Application\nName=%s\nExec=%q\nTerminal=true\nX-GNOME-Autostart-enabled=true\n", AppID, exe)
	if err := os.WriteFile(a.entryPath(), []byte(entry), 0o644); err != nil {
		return fmt.Errorf("failed to write autostart entry: %w", err)
	}
	return nil
}
