package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"searchconf/internal/ui/input/types"
)

// MessageMode is active while an error or notice popup is shown.
type MessageMode struct{}

func NewMessageMode() *MessageMode {
	return &MessageMode{}
}

func (m *MessageMode) Name() string {
	return "message"
}

func (m *MessageMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "enter", "esc", "q", " ":
		return []types.Action{types.DismissAction{}}, true
	}
	return nil, true
}
