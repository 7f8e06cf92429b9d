package logic

// Navigator moves the cursor of a flat list and keeps it inside the viewport.
type Navigator struct {
	cursor         int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(cursor, viewportOffset, viewportHeight, total int) {
	n.cursor = cursor
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	if n.viewportHeight < 1 {
		n.viewportHeight = 1
	}
	n.total = total
}

// Cursor returns the current cursor and viewport offset.
func (n *Navigator) Cursor() (int, int) {
	return n.cursor, n.viewportOffset
}

// Move applies a named movement: "up", "down", "pageup", "pagedown",
// "home" or "end". It returns the new cursor and viewport offset.
func (n *Navigator) Move(direction string) (int, int) {
	pageSize := n.viewportHeight - 1 // Leave some overlap
	if pageSize < 1 {
		pageSize = 1
	}

	switch direction {
	case "up":
		n.cursor--
	case "down":
		n.cursor++
	case "pageup":
		n.cursor -= pageSize
	case "pagedown":
		n.cursor += pageSize
	case "home":
		n.cursor = 0
	case "end":
		n.cursor = n.total - 1
	}
	return n.SetCursor(n.cursor)
}

// SetCursor clamps index into the list and scrolls it into view.
func (n *Navigator) SetCursor(index int) (int, int) {
	n.cursor = index
	n.ensureCursorVisible()
	return n.cursor, n.viewportOffset
}

func (n *Navigator) ensureCursorVisible() {
	if n.total == 0 {
		n.cursor = 0
		n.viewportOffset = 0
		return
	}
	if n.cursor < 0 {
		n.cursor = 0
	}
	if n.cursor >= n.total {
		n.cursor = n.total - 1
	}

	// If cursor is above viewport, scroll up
	if n.cursor < n.viewportOffset {
		n.viewportOffset = n.cursor
	}
	// If cursor is below viewport, scroll down
	if n.cursor >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.cursor - n.viewportHeight + 1
	}

	// Don't leave empty rows at the bottom when the list shrinks or the
	// viewport grows.
	maxOffset := n.total - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
