//go:build !windows && !linux

package platform

func newTray() Tray {
	return noTray{}
}
