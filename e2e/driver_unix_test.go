//go:build e2e && unix

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

var binPath = "searchconf_e2e"

const (
	KeyEnter = "\r"
	KeyTab   = "\t"
	KeyCtrlC = "\x03"
	KeyCtrlS = "\x13"
	KeyCtrlL = "\x0c"
	KeyEsc   = "\x1b"
)

const idleStatus = "Enter a folder and a search term."

var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// Finder drives one searchconf process attached to a PTY.
type Finder struct {
	t        *testing.T
	pty      *os.File
	cmd      *exec.Cmd
	home     string
	settings string
	logFile  string

	mu     sync.Mutex
	out    bytes.Buffer
	exited chan error
}

// NewFinder prepares an isolated home directory and settings file.
func NewFinder(t *testing.T) *Finder {
	t.Helper()
	home := t.TempDir()
	return &Finder{
		t:        t,
		home:     home,
		settings: filepath.Join(home, "settings.json"),
		logFile:  filepath.Join(home, "searchconf.log"),
		exited:   make(chan error, 1),
	}
}

// WriteSettings seeds the settings file before launch.
func (f *Finder) WriteSettings(values map[string]any) {
	f.t.Helper()
	data, err := json.Marshal(values)
	require.NoError(f.t, err)
	require.NoError(f.t, os.WriteFile(f.settings, data, 0o644))
}

// ReadSettings returns the decoded settings file.
func (f *Finder) ReadSettings() map[string]any {
	f.t.Helper()
	data, err := os.ReadFile(f.settings)
	require.NoError(f.t, err)
	var values map[string]any
	require.NoError(f.t, json.Unmarshal(data, &values))
	return values
}

// Start launches the finder with the isolated settings and log file.
func (f *Finder) Start(args ...string) {
	f.t.Helper()
	args = append([]string{"--settings", f.settings, "--log-file", f.logFile}, args...)
	f.cmd = exec.Command(binPath, args...)
	f.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+f.home,
		"XDG_CONFIG_HOME="+filepath.Join(f.home, ".config"),
	)

	ptmx, err := pty.StartWithSize(f.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	require.NoError(f.t, err, "failed to start finder")
	f.pty = ptmx

	go f.read()
	go func() { f.exited <- f.cmd.Wait() }()
	f.t.Cleanup(f.Close)
}

func (f *Finder) read() {
	buf := make([]byte, 8192)
	for {
		n, err := f.pty.Read(buf)
		if n > 0 {
			f.mu.Lock()
			f.out.Write(buf[:n])
			f.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Send writes raw keystrokes to the terminal.
func (f *Finder) Send(keys string) {
	f.t.Helper()
	_, err := f.pty.Write([]byte(keys))
	require.NoError(f.t, err)
}

// Type sends text one rune at a time so each arrives as its own key.
func (f *Finder) Type(text string) {
	f.t.Helper()
	for _, r := range text {
		f.Send(string(r))
		time.Sleep(5 * time.Millisecond)
	}
}

// Plain returns everything printed so far with escape sequences removed.
func (f *Finder) Plain() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return ansiRe.ReplaceAllString(f.out.String(), "")
}

// Reset forgets the output captured so far.
func (f *Finder) Reset() {
	f.mu.Lock()
	f.out.Reset()
	f.mu.Unlock()
}

// WaitFor fails the test when text does not show up before the timeout.
func (f *Finder) WaitFor(text string, timeout time.Duration) {
	f.t.Helper()
	deadline := time.Now().Add(timeout)
	for !strings.Contains(f.Plain(), text) {
		if time.Now().After(deadline) {
			tail := f.Plain()
			if len(tail) > 4096 {
				tail = tail[len(tail)-4096:]
			}
			f.t.Fatalf("timed out waiting for %q\n--- tail ---\n%s", text, tail)
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// Ready waits for the idle status line of a fresh finder.
func (f *Finder) Ready() {
	f.t.Helper()
	f.WaitFor(idleStatus, 5*time.Second)
}

// WaitExit waits for the process to terminate and returns its exit error.
func (f *Finder) WaitExit(timeout time.Duration) error {
	f.t.Helper()
	select {
	case err := <-f.exited:
		f.exited <- err
		return err
	case <-time.After(timeout):
		f.t.Fatalf("finder did not exit within %s", timeout)
		return nil
	}
}

// Close kills the process if it is still running.
func (f *Finder) Close() {
	if f.pty != nil {
		_ = f.pty.Close()
		f.pty = nil
	}
	if f.cmd != nil && f.cmd.Process != nil {
		select {
		case err := <-f.exited:
			f.exited <- err
		default:
			_ = f.cmd.Process.Kill()
		}
	}
}

// writeTree creates files relative to root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644), fmt.Sprintf("write %s", name))
	}
}
