package platform

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenerRevealUsesFolder(t *testing.T) {
	var opened []string
	o := desktopOpener{open: func(p string) error {
		opened = append(opened, p)
		return nil
	}}

	path := filepath.Join("srv", "app", "nginx.conf")
	require.NoError(t, o.Open(path))
	require.NoError(t, o.Reveal(path))

	assert.Equal(t, []string{path, filepath.Join("srv", "app")}, opened)
}

func TestOpenerErrorNamesPath(t *testing.T) {
	cause := errors.New("no handler")
	o := desktopOpener{open: func(string) error { return cause }}

	err := o.Open("/etc/x.conf")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/etc/x.conf")

	err = o.Reveal("/etc/x.conf")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), filepath.Dir("/etc/x.conf"))
}

func TestSafeCallRecovers(t *testing.T) {
	assert.NotPanics(t, func() { safeCall(func() { panic("boom") }) })
}
