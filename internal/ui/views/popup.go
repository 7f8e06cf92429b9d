package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers a popup over the main content. The rows the
// popup covers are replaced, the rest of the main content stays visible but
// greyed out.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	if width <= 0 {
		width = 80
	}
	styledPopup := popupStyle.Render(popupContent)
	popupLines := strings.Split(styledPopup, "\n")

	baseLines := strings.Split(desaturateANSI(mainContent), "\n")
	if height < len(baseLines) {
		height = len(baseLines)
	}
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	y := (height - len(popupLines)) / 2
	if y < 0 {
		y = 0
	}
	for i, line := range popupLines {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		baseLines[row] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
	}
	return strings.Join(baseLines, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	plain := ansiRE.ReplaceAllString(s, "")
	lines := strings.Split(plain, "\n")
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, l := range lines {
		lines[i] = gray.Render(l)
	}
	return strings.Join(lines, "\n")
}
