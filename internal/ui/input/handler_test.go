package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchconf/internal/ui/input/types"
)

type fakeContext struct {
	field    types.Field
	settings types.SettingsField
	results  int
	selected int
}

func (c fakeContext) FocusedField() types.Field          { return c.field }
func (c fakeContext) SettingsField() types.SettingsField { return c.settings }
func (c fakeContext) ResultCount() int                   { return c.results }
func (c fakeContext) SelectedCount() int                 { return c.selected }
func (c fakeContext) Searching() bool                    { return false }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFormEnterDependsOnField(t *testing.T) {
	h := New()

	actions, consumed := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{field: types.FieldFolder})
	require.True(t, consumed)
	assert.Equal(t, []types.Action{types.FocusFieldAction{Field: types.FieldQuery}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{field: types.FieldQuery})
	assert.Equal(t, []types.Action{types.StartSearchAction{FocusResults: true}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{field: types.FieldExtension})
	assert.Equal(t, []types.Action{types.StartSearchAction{}}, actions)
}

func TestFormTextFieldsReceiveRunes(t *testing.T) {
	h := New()

	actions, consumed := h.HandleKey(runes("q"), fakeContext{field: types.FieldQuery})
	assert.False(t, consumed)
	assert.Empty(t, actions)

	// On a toggle the same key does nothing.
	actions, consumed = h.HandleKey(runes("q"), fakeContext{field: types.FieldRecursive})
	assert.True(t, consumed)
	assert.Empty(t, actions)
}

func TestFormToggleAndGlobalKeys(t *testing.T) {
	h := New()
	ctx := fakeContext{field: types.FieldCaseSensitive}

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ctx)
	assert.Equal(t, []types.Action{types.ToggleOptionAction{Field: types.FieldCaseSensitive}}, actions)

	cases := map[tea.KeyType]types.Action{
		tea.KeyCtrlS: types.StopSearchAction{},
		tea.KeyCtrlL: types.ClearResultsAction{},
		tea.KeyCtrlO: types.OpenSettingsAction{},
		tea.KeyCtrlT: types.ToggleVisibilityAction{},
		tea.KeyCtrlC: types.QuitAction{},
	}
	for keyType, want := range cases {
		actions, consumed := h.HandleKey(tea.KeyMsg{Type: keyType}, ctx)
		assert.True(t, consumed)
		assert.Equal(t, []types.Action{want}, actions, keyType.String())
	}
}

func TestFormEscFocusesResultsOnlyWhenPresent(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{field: types.FieldQuery})
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{field: types.FieldQuery, results: 2})
	assert.Equal(t, []types.Action{types.FocusResultsAction{}}, actions)
}

func TestResultsKeys(t *testing.T) {
	h := New()
	h.SetMode(types.ModeResults)
	ctx := fakeContext{results: 3}

	cases := []struct {
		msg  tea.KeyMsg
		want types.Action
	}{
		{runes("j"), types.NavigateAction{Direction: "down"}},
		{tea.KeyMsg{Type: tea.KeyUp}, types.NavigateAction{Direction: "up"}},
		{runes("G"), types.NavigateAction{Direction: "end"}},
		{tea.KeyMsg{Type: tea.KeyEnter}, types.OpenAction{}},
		{runes("o"), types.OpenAction{}},
		{runes("e"), types.RevealAction{}},
		{runes("y"), types.CopyAction{}},
		{runes("v"), types.PreviewAction{}},
		{runes("a"), types.SelectAllAction{}},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, types.SelectAction{}},
		{runes("?"), types.ShowHelpAction{}},
		{runes("q"), types.QuitAction{}},
		{runes("/"), types.FocusFieldAction{Field: types.FieldQuery}},
		{tea.KeyMsg{Type: tea.KeyTab}, types.FocusFieldAction{Field: types.FieldFolder}},
	}
	for _, tc := range cases {
		actions, consumed := h.HandleKey(tc.msg, ctx)
		assert.True(t, consumed, tc.msg.String())
		assert.Equal(t, []types.Action{tc.want}, actions, tc.msg.String())
	}
}

func TestResultsIgnoreListKeysWhenEmpty(t *testing.T) {
	h := New()
	h.SetMode(types.ModeResults)

	actions, consumed := h.HandleKey(runes("o"), fakeContext{})
	assert.True(t, consumed)
	assert.Empty(t, actions)
}

func TestSettingsMode(t *testing.T) {
	h := New()
	h.Push(types.ModeSettings)

	_, consumed := h.HandleKey(runes("x"), fakeContext{settings: types.SettingsProgramName})
	assert.False(t, consumed)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, fakeContext{settings: types.SettingsAutorun})
	assert.Equal(t, []types.Action{types.SettingsToggleAction{Field: types.SettingsAutorun}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{})
	assert.Equal(t, []types.Action{types.ApplySettingsAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{})
	assert.Equal(t, []types.Action{types.CloseSettingsAction{}}, actions)
}

func TestModeStack(t *testing.T) {
	h := New()
	assert.Equal(t, types.ModeForm, h.CurrentMode())

	h.Push(types.ModeSettings)
	h.Push(types.ModeMessage)
	assert.Equal(t, types.ModeMessage, h.CurrentMode())
	assert.True(t, h.Has(types.ModeSettings))

	assert.Equal(t, types.ModeSettings, h.Pop())
	h.Remove(types.ModeSettings)
	assert.Equal(t, types.ModeForm, h.CurrentMode())
	assert.Equal(t, types.ModeForm, h.Pop())

	h.Push(types.ModeHidden)
	h.SetMode(types.ModeResults)
	assert.Equal(t, types.ModeResults, h.CurrentMode())
	assert.False(t, h.Has(types.ModeHidden))
}

func TestHiddenModeOnlyShowsOrQuits(t *testing.T) {
	h := New()
	h.Push(types.ModeHidden)

	actions, consumed := h.HandleKey(runes("q"), fakeContext{})
	assert.True(t, consumed)
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlT}, fakeContext{})
	assert.Equal(t, []types.Action{types.ToggleVisibilityAction{}}, actions)
}

func TestFieldCycling(t *testing.T) {
	assert.Equal(t, types.FieldQuery, types.FieldFolder.Next(false))
	assert.Equal(t, types.FieldCaseSensitive, types.FieldFolder.Next(true))
	assert.Equal(t, types.FieldFolder, types.FieldCaseSensitive.Next(false))
	assert.Equal(t, types.SettingsStrict, types.SettingsProgramName.Next(true))
}
