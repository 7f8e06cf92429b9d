package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"searchconf/internal/ui/input/modes"
	"searchconf/internal/ui/input/types"
)

// Handler routes key messages to the handler of the active mode.
//
// Modes form a stack: the form and the result list sit at the bottom and
// are swapped with SetMode, popups and the hidden state are pushed on top
// and popped when they close.
type Handler struct {
	stack []types.Mode
	modes map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		stack: []types.Mode{types.ModeForm},
		modes: make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeForm] = modes.NewFormMode()
	h.modes[types.ModeResults] = modes.NewResultsMode()
	h.modes[types.ModeSettings] = modes.NewSettingsMode()
	h.modes[types.ModeMessage] = modes.NewMessageMode()
	h.modes[types.ModeHidden] = modes.NewHiddenMode()

	return h
}

// HandleKey returns the actions for msg and whether the mode consumed it.
// Unconsumed keys belong to the focused text field.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	handler := h.modes[h.CurrentMode()]
	if handler == nil {
		return nil, true
	}
	return handler.HandleKey(msg, ctx)
}

// CurrentMode returns the mode on top of the stack.
func (h *Handler) CurrentMode() types.Mode {
	if h == nil || len(h.stack) == 0 {
		return types.ModeForm
	}
	return h.stack[len(h.stack)-1]
}

// BaseMode returns the mode under every popup.
func (h *Handler) BaseMode() types.Mode {
	if len(h.stack) == 0 {
		return types.ModeForm
	}
	return h.stack[0]
}

// SetMode switches the bottom mode and closes every popup.
func (h *Handler) SetMode(mode types.Mode) {
	h.stack = []types.Mode{mode}
}

// Push opens mode on top of the current one.
func (h *Handler) Push(mode types.Mode) {
	if h.CurrentMode() == mode {
		return
	}
	h.stack = append(h.stack, mode)
}

// Pop closes the top mode. The bottom mode is never popped.
func (h *Handler) Pop() types.Mode {
	if len(h.stack) > 1 {
		h.stack = h.stack[:len(h.stack)-1]
	}
	return h.CurrentMode()
}

// Remove drops mode wherever it is in the stack.
func (h *Handler) Remove(mode types.Mode) {
	kept := h.stack[:1]
	for _, m := range h.stack[1:] {
		if m != mode {
			kept = append(kept, m)
		}
	}
	h.stack = kept
}

// Has reports whether mode is anywhere in the stack.
func (h *Handler) Has(mode types.Mode) bool {
	for _, m := range h.stack {
		if m == mode {
			return true
		}
	}
	return false
}
