package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"searchconf/internal/ui/input/types"
)

// FormMode handles keys while one of the search form controls has focus.
// Keys it does not consume are typed into the focused text field.
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := types.Keys
	if actions, ok := globalKeys(msg); ok {
		return actions, true
	}

	field := ctx.FocusedField()
	switch {
	case key.Matches(msg, k.NextField):
		return []types.Action{types.FocusNextAction{}}, true
	case key.Matches(msg, k.PrevField):
		return []types.Action{types.FocusNextAction{Reverse: true}}, true
	case key.Matches(msg, k.Search):
		switch field {
		case types.FieldFolder:
			return []types.Action{types.FocusFieldAction{Field: types.FieldQuery}}, true
		case types.FieldQuery:
			return []types.Action{types.StartSearchAction{FocusResults: true}}, true
		default:
			return []types.Action{types.StartSearchAction{}}, true
		}
	case key.Matches(msg, k.ToResults):
		if ctx.ResultCount() > 0 {
			return []types.Action{types.FocusResultsAction{}}, true
		}
		return nil, true
	}

	if field.IsText() {
		if msg.String() == "f1" {
			return []types.Action{types.ShowHelpAction{}}, true
		}
		return nil, false
	}

	// Toggle controls accept only their toggle and the help key.
	switch {
	case key.Matches(msg, k.Toggle):
		return []types.Action{types.ToggleOptionAction{Field: field}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	}
	return nil, true
}

// globalKeys are the shortcuts available in both the form and the result list.
func globalKeys(msg tea.KeyMsg) ([]types.Action, bool) {
	k := types.Keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Stop):
		return []types.Action{types.StopSearchAction{}}, true
	case key.Matches(msg, k.Clear):
		return []types.Action{types.ClearResultsAction{}}, true
	case key.Matches(msg, k.Settings):
		return []types.Action{types.OpenSettingsAction{}}, true
	case key.Matches(msg, k.Visibility):
		return []types.Action{types.ToggleVisibilityAction{}}, true
	}
	return nil, false
}
