package platform

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// TrayActions are the tray menu entries.
type TrayActions struct {
	Show func()
	Hide func()
	Quit func()
}

// Tray is an optional notification-area icon.
type Tray interface {
	Start(tooltip string, actions TrayActions) error
	Stop()
}

// NewTray returns the tray host for the current OS. Start reports
// ErrUnsupported when no notification area is reachable and the caller
// runs without one.
func NewTray() Tray {
	return newTray()
}

type noTray struct{}

func (noTray) Start(string, TrayActions) error {
	return ErrUnsupported
}

func (noTray) Stop() {}

// trayClicks carries the click channels of the three menu entries.
type trayClicks struct {
	show, hide, quit <-chan struct{}
}

// dispatchClicks calls the matching action for every click until done is
// closed. Quit also ends the loop.
func dispatchClicks(clicks trayClicks, actions TrayActions, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-clicks.show:
			runAction(actions.Show)
		case <-clicks.hide:
			runAction(actions.Hide)
		case <-clicks.quit:
			runAction(actions.Quit)
			return
		}
	}
}

func runAction(fn func()) {
	if fn != nil {
		safeCall(fn)
	}
}

// trayIconPNG draws the 32x32 icon: a magnifier ring on a transparent
// background.
func trayIconPNG() []byte {
	const size = 32
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	ring := color.NRGBA{R: 0x5f, G: 0x87, B: 0xff, A: 0xff}

	cx, cy := 13, 13
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-cx, y-cy
			d := dx*dx + dy*dy
			switch {
			case d >= 64 && d <= 110:
				img.Set(x, y, ring)
			case x >= 19 && y >= 19 && x-y >= -2 && x-y <= 2 && x < 30 && y < 30:
				img.Set(x, y, ring)
			}
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// trayIconICO wraps the PNG icon in a single-image ICO container, the
// format the Windows notification area expects.
func trayIconICO() []byte {
	data := trayIconPNG()

	var buf bytes.Buffer
	buf.Write([]byte{0, 0, 1, 0, 1, 0}) // reserved, type icon, one image
	buf.Write([]byte{32, 32, 0, 0, 1, 0, 32, 0})
	size := uint32(len(data))
	buf.Write([]byte{byte(size), byte(size >> 8), byte(size >> 16), byte(size >> 24)})
	buf.Write([]byte{22, 0, 0, 0}) // image data follows the 6+16 byte header
	buf.Write(data)
	return buf.Bytes()
}
