package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"searchconf/internal/ui/input/types"
)

// ResultsMode handles keys while the result list has focus.
type ResultsMode struct{}

func NewResultsMode() *ResultsMode {
	return &ResultsMode{}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := types.Keys
	if actions, ok := globalKeys(msg); ok {
		return actions, true
	}

	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	case key.Matches(msg, k.ToQuery):
		return []types.Action{types.FocusFieldAction{Field: types.FieldQuery}}, true
	case key.Matches(msg, k.ToForm):
		return []types.Action{types.FocusFieldAction{Field: types.FieldFolder}}, true
	}

	if ctx.ResultCount() == 0 {
		return nil, true
	}

	switch {
	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, k.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case key.Matches(msg, k.Select):
		return []types.Action{types.SelectAction{}}, true
	case key.Matches(msg, k.SelectAll):
		return []types.Action{types.SelectAllAction{}}, true
	case key.Matches(msg, k.Deselect):
		if ctx.SelectedCount() > 0 {
			return []types.Action{types.DeselectAllAction{}}, true
		}
	case key.Matches(msg, k.Open):
		return []types.Action{types.OpenAction{}}, true
	case key.Matches(msg, k.Reveal):
		return []types.Action{types.RevealAction{}}, true
	case key.Matches(msg, k.Copy):
		return []types.Action{types.CopyAction{}}, true
	case key.Matches(msg, k.Preview):
		return []types.Action{types.PreviewAction{}}, true
	}

	return nil, true
}
