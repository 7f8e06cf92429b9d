package platform

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

func init() {
	// the handlers' own output would corrupt the terminal UI
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Opener hands result paths to the desktop.
type Opener interface {
	Open(path string) error
	Reveal(path string) error
}

// Clipboard copies text for pasting elsewhere.
type Clipboard interface {
	Copy(paths []string) error
}

// NewOpener returns an opener backed by the OS default handlers.
func NewOpener() Opener {
	return desktopOpener{open: browser.OpenFile}
}

// NewClipboard returns the system clipboard.
func NewClipboard() Clipboard {
	return systemClipboard{}
}

type desktopOpener struct {
	open func(path string) error
}

// Open opens path with its default application.
func (o desktopOpener) Open(path string) error {
	if err := o.open(path); err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	return nil
}

// Reveal opens the folder containing path in the file manager.
func (o desktopOpener) Reveal(path string) error {
	folder := filepath.Dir(path)
	if err := o.open(folder); err != nil {
		return fmt.Errorf("failed to open folder %s: %w", folder, err)
	}
	return nil
}

type systemClipboard struct{}

// Copy places the paths on the clipboard, one per line.
func (systemClipboard) Copy(paths []string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(strings.Join(paths, "\n")); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
