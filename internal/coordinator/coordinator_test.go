package coordinator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchconf/internal/domain"
	"searchconf/internal/eventbus"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// drainUntilDone polls like the UI does until the completion marker shows up.
func drainUntilDone(t *testing.T, c *Coordinator) []domain.Message {
	t.Helper()
	var out []domain.Message
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		msgs := c.Drain()
		out = append(out, msgs...)
		for _, m := range msgs {
			if m.IsDone() {
				return out
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("completion marker never arrived")
	return nil
}

func matches(msgs []domain.Message) []string {
	var paths []string
	for _, m := range msgs {
		if !m.IsDone() {
			paths = append(paths, m.Path)
		}
	}
	return paths
}

func TestStartValidation(t *testing.T) {
	c := New(nil)
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	writeFile(t, file, "x")

	_, err := c.Start(domain.SearchParams{Folder: "", Query: "x"})
	assert.ErrorIs(t, err, ErrInvalidFolder)

	_, err = c.Start(domain.SearchParams{Folder: filepath.Join(dir, "missing"), Query: "x"})
	assert.ErrorIs(t, err, ErrInvalidFolder)

	_, err = c.Start(domain.SearchParams{Folder: file, Query: "x"})
	assert.ErrorIs(t, err, ErrInvalidFolder)

	_, err = c.Start(domain.SearchParams{Folder: dir, Query: ""})
	assert.ErrorIs(t, err, ErrEmptyQuery)

	assert.Equal(t, domain.StateIdle, c.State())
	assert.Empty(t, c.Drain(), "no worker may run for invalid input")
}

func TestValidateDefaultsExtension(t *testing.T) {
	req, err := Validate(domain.SearchParams{Folder: t.TempDir(), Query: "q", Extension: " "})
	require.NoError(t, err)
	assert.Equal(t, "*.conf", req.Pattern)
	assert.True(t, filepath.IsAbs(req.Root))
}

func TestSearchLifecycle(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a")
	writeFile(t, filepath.Join(root, "x.conf"), "port=1\n")
	writeFile(t, filepath.Join(root, "b", "y.conf"), "host=none\n")
	writeFile(t, filepath.Join(root, "z.txt"), "port=1\n")

	bus := eventbus.New()
	defer bus.Close()
	completed := make(chan eventbus.SearchCompletedEvent, 1)
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		completed <- e.(eventbus.SearchCompletedEvent)
	})

	c := New(bus)
	id, err := c.Start(domain.SearchParams{Folder: root, Extension: "conf", Query: "port", Recursive: true})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	msgs := drainUntilDone(t, c)
	assert.Equal(t, []string{filepath.Join(root, "x.conf")}, matches(msgs))

	last := msgs[len(msgs)-1]
	assert.True(t, last.IsDone())
	assert.Equal(t, id, last.Search)
	assert.Equal(t, 1, last.Count)
	assert.False(t, last.Cancelled)
	assert.Equal(t, domain.StateIdle, c.State())

	select {
	case e := <-completed:
		assert.Equal(t, id, e.Search)
		assert.Equal(t, 1, e.Count)
	case <-time.After(time.Second):
		t.Fatal("completion event not published")
	}
}

func TestExactlyOneSentinel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.conf"), "k\n")

	c := New(nil)
	_, err := c.Start(domain.SearchParams{Folder: root, Query: "k", Recursive: true})
	require.NoError(t, err)
	msgs := drainUntilDone(t, c)

	time.Sleep(50 * time.Millisecond)
	msgs = append(msgs, c.Drain()...)

	done := 0
	for _, m := range msgs {
		if m.IsDone() {
			done++
		}
	}
	assert.Equal(t, 1, done)
	assert.True(t, msgs[len(msgs)-1].IsDone(), "sentinel is the last message")
}

func TestSecondStartRejectedWhileRunning(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 300; i++ {
		writeFile(t, filepath.Join(root, fmt.Sprintf("d%02d", i%20), fmt.Sprintf("f%03d.conf", i)), "needle\n")
	}

	c := New(nil)
	_, err := c.Start(domain.SearchParams{Folder: root, Query: "needle", Recursive: true})
	require.NoError(t, err)

	// the state stays non-idle until the foreground drains the marker
	_, err = c.Start(domain.SearchParams{Folder: root, Query: "needle", Recursive: true})
	assert.ErrorIs(t, err, ErrSearchInProgress)

	drainUntilDone(t, c)
	_, err = c.Start(domain.SearchParams{Folder: root, Query: "needle", Recursive: true})
	assert.NoError(t, err)
	drainUntilDone(t, c)
}

func TestStopDeliversSentinel(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 500; i++ {
		writeFile(t, filepath.Join(root, fmt.Sprintf("d%02d", i%25), fmt.Sprintf("f%03d.conf", i)), "needle\n")
	}

	c := New(nil)
	_, err := c.Start(domain.SearchParams{Folder: root, Query: "needle", Recursive: true})
	require.NoError(t, err)
	assert.True(t, c.Stop())
	assert.Equal(t, domain.StateCancelling, c.State())

	msgs := drainUntilDone(t, c)
	last := msgs[len(msgs)-1]
	assert.True(t, last.Cancelled)
	assert.Equal(t, len(msgs)-1, last.Count)
	assert.Less(t, last.Count, 500)
	assert.Equal(t, domain.StateIdle, c.State())

	assert.False(t, c.Stop(), "nothing left to stop")
}

func TestRepeatedSearchSameResults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "one.conf"), "Port\n")
	writeFile(t, filepath.Join(root, "sub", "two.conf"), "port\n")
	writeFile(t, filepath.Join(root, "sub", "three.conf"), "nothing\n")

	run := func() []string {
		c := New(nil)
		_, err := c.Start(domain.SearchParams{Folder: root, Query: "port", Recursive: true})
		require.NoError(t, err)
		got := matches(drainUntilDone(t, c))
		sort.Strings(got)
		return got
	}

	first := run()
	assert.Equal(t, first, run())
	assert.Len(t, first, 2)
}

func TestShutdownWaitsForWorker(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.conf"), "k\n")

	c := New(nil)
	_, err := c.Start(domain.SearchParams{Folder: root, Query: "k"})
	require.NoError(t, err)
	assert.True(t, c.Shutdown(2*time.Second))
	assert.True(t, New(nil).Shutdown(10*time.Millisecond), "idle shutdown returns at once")
}

func TestReadySignalsMessages(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.conf"), "k\n")

	c := New(nil)
	_, err := c.Start(domain.SearchParams{Folder: root, Query: "k"})
	require.NoError(t, err)

	var got []domain.Message
	timeout := time.After(5 * time.Second)
	for len(got) == 0 || !got[len(got)-1].IsDone() {
		select {
		case <-c.Ready():
			got = append(got, c.Drain()...)
		case <-timeout:
			t.Fatal("reader loop never woke")
		}
	}
	assert.Equal(t, []string{filepath.Join(root, "a.conf")}, matches(got))
}
