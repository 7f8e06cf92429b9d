package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorScrollsWithCursor(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 3, 10)

	cursor, offset := n.Move("down")
	assert.Equal(t, 1, cursor)
	assert.Equal(t, 0, offset)

	n.Move("down")
	cursor, offset = n.Move("down")
	assert.Equal(t, 3, cursor)
	assert.Equal(t, 1, offset)

	cursor, offset = n.Move("end")
	assert.Equal(t, 9, cursor)
	assert.Equal(t, 7, offset)

	cursor, offset = n.Move("home")
	assert.Equal(t, 0, cursor)
	assert.Equal(t, 0, offset)
}

func TestNavigatorClamps(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 4, 5)

	cursor, _ := n.Move("up")
	assert.Equal(t, 0, cursor)

	cursor, offset := n.Move("pagedown")
	assert.Equal(t, 3, cursor)
	assert.Equal(t, 0, offset)

	cursor, offset = n.Move("pagedown")
	assert.Equal(t, 4, cursor)
	assert.Equal(t, 1, offset)

	cursor, _ = n.Move("pageup")
	assert.Equal(t, 1, cursor)
}

func TestNavigatorEmptyList(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(5, 3, 4, 0)
	cursor, offset := n.Move("down")
	assert.Equal(t, 0, cursor)
	assert.Equal(t, 0, offset)
}

func TestNavigatorPullsOffsetBackWhenViewportGrows(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(9, 7, 8, 10)
	cursor, offset := n.SetCursor(9)
	assert.Equal(t, 9, cursor)
	assert.Equal(t, 2, offset)
}

func TestTargetPaths(t *testing.T) {
	paths := []string{"/a", "/b", "/c"}

	assert.Equal(t, []string{"/b"}, TargetPaths(paths, map[string]bool{}, 1))
	assert.Equal(t, []string{"/a", "/c"}, TargetPaths(paths, map[string]bool{"/c": true, "/a": true}, 1))
	assert.Nil(t, TargetPaths(nil, map[string]bool{}, 0))

	selected := map[string]bool{}
	ToggleSelected(selected, "/a")
	ToggleSelected(selected, "/b")
	ToggleSelected(selected, "/a")
	assert.Equal(t, map[string]bool{"/b": true}, selected)

	SelectAll(selected, paths)
	assert.Len(t, selected, 3)
}
