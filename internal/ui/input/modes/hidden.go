package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"searchconf/internal/ui/input/types"
)

// HiddenMode swallows everything but the show and quit keys while the
// finder is hidden.
type HiddenMode struct{}

func NewHiddenMode() *HiddenMode {
	return &HiddenMode{}
}

func (m *HiddenMode) Name() string {
	return "hidden"
}

func (m *HiddenMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, types.Keys.Visibility):
		return []types.Action{types.ToggleVisibilityAction{}}, true
	case key.Matches(msg, types.Keys.ForceQuit):
		return []types.Action{types.QuitAction{}}, true
	}
	return nil, true
}
