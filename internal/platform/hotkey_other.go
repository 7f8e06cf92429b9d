//go:build !windows

package platform

type unsupportedHotkey struct{}

func newHotkey() Hotkey {
	return unsupportedHotkey{}
}

func (unsupportedHotkey) Register(func()) error {
	return ErrUnsupported
}

func (unsupportedHotkey) Unregister() {}
