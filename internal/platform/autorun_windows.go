//go:build windows

package platform

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

// registryAutorun manages a value under the per-user Run key.
type registryAutorun struct{}

func newAutorun() Autorun {
	return registryAutorun{}
}

func (registryAutorun) Set(enabled bool) error {
	// CreateKey opens the key when it already exists.
	key, _, err := registry.CreateKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open run key: %w", err)
	}
	defer key.Close()

	if !enabled {
		if err := key.DeleteValue(AppID); err != nil && !errors.Is(err, registry.ErrNotExist) {
			return fmt.Errorf("failed to remove run entry: %w", err)
		}
		return nil
	}

	exe, err := executablePath()
	if err != nil {
		return err
	}
	if err := key.SetStringValue(AppID, `"`+exe+`"`); err != nil {
		return fmt.Errorf("failed to write run entry: %w", err)
	}
	return nil
}
