//go:build !linux && !windows

package platform

type unsupportedAutorun struct{}

func newAutorun() Autorun {
	return unsupportedAutorun{}
}

func (unsupportedAutorun) Set(bool) error {
	return ErrUnsupported
}
