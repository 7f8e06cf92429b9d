package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"searchconf/internal/ui/input/types"
	"searchconf/internal/ui/state"
)

// ChromeLines is the number of rows the view uses around the result list.
const ChromeLines = 13

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Title  string

	// Search form, text inputs already rendered
	Folder        string
	Query         string
	Extension     string
	Recursive     bool
	CaseSensitive bool
	Focus         types.Field
	FormFocused   bool

	Results        []string
	Selected       map[string]bool
	Cursor         int
	ViewportOffset int
	ViewportHeight int

	Searching bool
	Stopping  bool
	Status    string
	HelpLine  string

	Notice   *state.Notice
	Settings *SettingsView
	Hidden   bool
}

// SettingsView is the content of the settings popup
type SettingsView struct {
	ProgramName   string
	DefaultFolder string
	Autorun       bool
	Hotkey        bool
	Strict        bool
	Focus         types.SettingsField
	HelpLine      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Hidden {
		return r.renderHidden(state)
	}

	content := &strings.Builder{}
	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderTextRow("Folder", state.Folder, state.FormFocused && state.Focus == types.FieldFolder))
	content.WriteString("\n")
	content.WriteString(r.renderTextRow("Query", state.Query, state.FormFocused && state.Focus == types.FieldQuery))
	content.WriteString("\n")
	content.WriteString(r.renderTextRow("Extension", state.Extension, state.FormFocused && state.Focus == types.FieldExtension))
	content.WriteString("\n")
	content.WriteString(r.renderOptions(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderResults(state))
	content.WriteString("\n\n")
	content.WriteString(r.renderStatus(state))

	// Pad so the help line sits at the bottom
	if state.HelpLine != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2 // container padding
		if availableLines <= 0 {
			availableLines = 22
		}
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(state.HelpLine)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.Notice != nil {
		style := r.styles.InfoBox
		if state.Notice.Level == "error" {
			style = r.styles.ErrorBox
		}
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderNotice(*state.Notice), state.Height, state.Width, style)
	}
	if state.Settings != nil {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderSettings(*state.Settings), state.Height, state.Width, r.styles.SettingsBox)
	}
	return finalContent
}

func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render(state.Title)

	indicator := ""
	switch {
	case state.Stopping:
		indicator = fmt.Sprintf("■ Stopping (%d)", len(state.Results))
	case state.Searching:
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/100) % len(spinner)
		indicator = fmt.Sprintf("%s Searching (%d)", spinner[frame], len(state.Results))
	}
	if indicator == "" {
		return logo
	}

	rightContent := r.styles.Scan.Render(indicator)
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + rightContent
}

func (r *Renderer) label(name string, focused bool) string {
	if focused {
		return r.styles.FocusedLabel.Render(name)
	}
	return r.styles.Label.Render(name)
}

func (r *Renderer) renderTextRow(name, input string, focused bool) string {
	return r.label(name, focused) + " " + input
}

func (r *Renderer) checkbox(label string, checked, focused bool) string {
	box := "[ ]"
	if checked {
		box = r.styles.Checked.Render("[x]")
	}
	text := label
	if focused {
		text = r.styles.Highlight.Render(label)
	}
	return box + " " + text
}

func (r *Renderer) renderOptions(state ViewState) string {
	focused := state.FormFocused && (state.Focus == types.FieldRecursive || state.Focus == types.FieldCaseSensitive)
	return r.label("Options", focused) + " " +
		r.checkbox("Recursive", state.Recursive, state.FormFocused && state.Focus == types.FieldRecursive) + "   " +
		r.checkbox("Case sensitive", state.CaseSensitive, state.FormFocused && state.Focus == types.FieldCaseSensitive)
}

func (r *Renderer) renderResults(state ViewState) string {
	var b strings.Builder

	header := fmt.Sprintf("Results (%d)", len(state.Results))
	if n := len(state.Selected); n > 0 {
		header += fmt.Sprintf(", %d selected", n)
	}
	if state.FormFocused {
		b.WriteString(r.styles.Label.UnsetWidth().Render(header))
	} else {
		b.WriteString(r.styles.FocusedLabel.UnsetWidth().Render(header))
	}

	height := state.ViewportHeight
	if height < 1 {
		height = 1
	}

	if len(state.Results) == 0 {
		b.WriteString("\n")
		if state.Searching {
			b.WriteString(r.styles.Dim.Render("  Looking for matching files..."))
		} else {
			b.WriteString(r.styles.Dim.Render("  No results."))
		}
		b.WriteString(strings.Repeat("\n", height-1))
		return b.String()
	}

	end := state.ViewportOffset + height
	if end > len(state.Results) {
		end = len(state.Results)
	}
	rows := 0
	for i := state.ViewportOffset; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(r.renderResultRow(state, i))
		rows++
	}

	if end < len(state.Results) || state.ViewportOffset > 0 {
		b.WriteString("  ")
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("%d-%d of %d", state.ViewportOffset+1, end, len(state.Results))))
	}
	if rows < height {
		b.WriteString(strings.Repeat("\n", height-rows))
	}
	return b.String()
}

func (r *Renderer) renderResultRow(state ViewState, index int) string {
	path := state.Results[index]
	isCursor := index == state.Cursor && !state.FormFocused

	marker := "  "
	if isCursor {
		marker = "> "
	}
	sel := "  "
	if state.Selected[path] {
		sel = r.styles.Checked.Render("● ")
	}

	line := path
	maxWidth := state.Width - 10
	if maxWidth > 10 && lipgloss.Width(line) > maxWidth {
		runes := []rune(line)
		if len(runes) > maxWidth-1 {
			line = "…" + string(runes[len(runes)-(maxWidth-1):])
		}
	}
	if isCursor {
		line = r.styles.SelectionBg.Render(r.styles.Highlight.Render(line))
	}
	return marker + sel + line
}

func (r *Renderer) renderStatus(state ViewState) string {
	status := state.Status
	switch {
	case strings.HasPrefix(status, "Stopped"):
		return r.styles.StatusWarning.Render(status)
	case strings.HasPrefix(status, "Search complete"):
		return r.styles.StatusSuccess.Render(status)
	}
	return r.styles.Status.Render(status)
}

func (r *Renderer) renderNotice(n state.Notice) string {
	title := n.Title
	switch n.Level {
	case "error":
		title = r.styles.StatusError.Bold(true).Render(title)
	case "warning":
		title = r.styles.StatusWarning.Bold(true).Render(title)
	default:
		title = r.styles.Title.Render(title)
	}
	return title + "\n\n" + n.Body + "\n\n" + r.styles.Help.Render("enter/esc to close")
}

func (r *Renderer) renderSettings(s SettingsView) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(r.renderTextRow("Name", s.ProgramName, s.Focus == types.SettingsProgramName))
	b.WriteString("\n")
	b.WriteString(r.renderTextRow("Folder", s.DefaultFolder, s.Focus == types.SettingsDefaultFolder))
	b.WriteString("\n\n")
	b.WriteString(r.checkbox("Launch at login", s.Autorun, s.Focus == types.SettingsAutorun))
	b.WriteString("\n")
	b.WriteString(r.checkbox("Global hotkey (Ctrl+*)", s.Hotkey, s.Focus == types.SettingsHotkey))
	b.WriteString("\n")
	b.WriteString(r.checkbox("Strict encoding detection", s.Strict, s.Focus == types.SettingsStrict))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("The global hotkey may need elevated rights or clash with other programs."))
	if s.HelpLine != "" {
		b.WriteString("\n\n")
		b.WriteString(s.HelpLine)
	}
	return b.String()
}

func (r *Renderer) renderHidden(state ViewState) string {
	line := fmt.Sprintf("%s is hidden. Press ctrl+t to show it, ctrl+c to quit.", state.Title)
	if state.Searching {
		line += fmt.Sprintf(" Searching: %d found.", len(state.Results))
	}
	return r.styles.Dim.Render(line)
}
