package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"searchconf/internal/ui/input/types"
)

// SettingsMode handles the settings popup. Text fields receive the keys it
// does not consume.
type SettingsMode struct{}

func NewSettingsMode() *SettingsMode {
	return &SettingsMode{}
}

func (m *SettingsMode) Name() string {
	return "settings"
}

func (m *SettingsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := types.Keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Close):
		return []types.Action{types.CloseSettingsAction{}}, true
	case key.Matches(msg, k.Apply):
		return []types.Action{types.ApplySettingsAction{}}, true
	case key.Matches(msg, k.NextField), msg.Type == tea.KeyDown:
		return []types.Action{types.SettingsFocusAction{}}, true
	case key.Matches(msg, k.PrevField), msg.Type == tea.KeyUp:
		return []types.Action{types.SettingsFocusAction{Reverse: true}}, true
	}

	field := ctx.SettingsField()
	if field.IsText() {
		return nil, false
	}
	if key.Matches(msg, k.Toggle) {
		return []types.Action{types.SettingsToggleAction{Field: field}}, true
	}
	return nil, true
}
