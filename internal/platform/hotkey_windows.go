//go:build windows

package platform

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	wmHotkey    = 0x0312
	wmQuit      = 0x0012
	modControl  = 0x0002
	modShift    = 0x0004
	modNoRepeat = 0x4000
	vk8         = 0x38
	vkMultiply  = 0x6A

	hotkeyBaseID       = 0xA000
	hotkeyReadyTimeout = 1500 * time.Millisecond
)

// ErrHotkeyInUse means another program already owns the key combination.
var ErrHotkeyInUse = errors.New("hotkey is registered by another program")

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procRegisterHotKey     = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey   = user32.NewProc("UnregisterHotKey")
	procGetMessageW        = user32.NewProc("GetMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")
)

type point struct {
	X, Y int32
}

// winMsg mirrors the Win32 MSG structure.
type winMsg struct {
	HWnd     uintptr
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       point
	LPrivate uint32
}

type hotkeyReady struct {
	threadID uint32
	err      error
}

// winHotkey owns an OS thread running a message loop. RegisterHotKey with
// no window posts WM_HOTKEY to the registering thread, so registration and
// the loop must share that thread.
type winHotkey struct {
	mu       sync.Mutex
	threadID uint32
	done     chan struct{}
}

func newHotkey() Hotkey {
	return &winHotkey{}
}

// Register binds Ctrl+Shift+8 and Ctrl+Numpad* to toggle.
func (h *winHotkey) Register(toggle func()) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.done != nil {
		return nil
	}

	ready := make(chan hotkeyReady, 1)
	done := make(chan struct{})
	go hotkeyLoop(toggle, ready, done)

	select {
	case r := <-ready:
		if r.err != nil {
			<-done
			return r.err
		}
		h.threadID = r.threadID
		h.done = done
		return nil
	case <-time.After(hotkeyReadyTimeout):
		go func() {
			if r := <-ready; r.err == nil {
				postQuit(r.threadID)
			}
		}()
		return fmt.Errorf("hotkey listener did not start within %s", hotkeyReadyTimeout)
	}
}

// Unregister stops the listener and releases the key combinations.
func (h *winHotkey) Unregister() {
	h.mu.Lock()
	done, tid := h.done, h.threadID
	h.done = nil
	h.mu.Unlock()

	if done == nil {
		return
	}
	postQuit(tid)
	select {
	case <-done:
	case <-time.After(time.Second):
		log.Printf("hotkey listener did not exit")
	}
}

func hotkeyLoop(toggle func(), ready chan<- hotkeyReady, done chan<- struct{}) {
	defer close(done)
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	combos := []struct{ mods, vk uintptr }{
		{modControl | modShift | modNoRepeat, vk8},
		{modControl | modNoRepeat, vkMultiply},
	}

	var ids []uintptr
	for i, c := range combos {
		id := uintptr(hotkeyBaseID + i)
		r, _, callErr := procRegisterHotKey.Call(0, id, c.mods, c.vk)
		if r == 0 {
			unregisterHotkeys(ids)
			ready <- hotkeyReady{err: fmt.Errorf("%w: %v", ErrHotkeyInUse, callErr)}
			return
		}
		ids = append(ids, id)
	}
	defer unregisterHotkeys(ids)

	ready <- hotkeyReady{threadID: windows.GetCurrentThreadId()}

	var m winMsg
	for {
		r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		// 0 is WM_QUIT, -1 is an error
		if int32(r) <= 0 {
			return
		}
		if m.Message == wmHotkey {
			safeCall(toggle)
		}
	}
}

func unregisterHotkeys(ids []uintptr) {
	for _, id := range ids {
		procUnregisterHotKey.Call(0, id)
	}
}

func postQuit(threadID uint32) {
	procPostThreadMessageW.Call(uintptr(threadID), wmQuit, 0, 0)
}
