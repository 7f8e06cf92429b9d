package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"searchconf/internal/search"
	"searchconf/internal/ui/input/types"
)

var errNoProgram = errors.New("program not set")

// Pager shows long text in the ov pager, handing it the terminal.
type Pager struct {
	program *tea.Program
}

// NewPager creates a new pager
func NewPager(program *tea.Program) *Pager {
	return &Pager{program: program}
}

// Show blocks until the user leaves the pager.
func (p *Pager) Show(content string) error {
	if p == nil || p.program == nil {
		return errNoProgram
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("release terminal: %w", err)
	}
	defer func() {
		// ov needs a moment to leave its screen before bubbletea takes over.
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}

// HelpContent renders the key reference shown by the help pager.
func HelpContent(title string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render(title + " Help"))
	help.WriteString("\n")

	for _, section := range types.Keys.Sections() {
		help.WriteString(sectionStyle.Render(section.Title))
		help.WriteString("\n")
		for _, b := range section.Bindings {
			h := b.Help()
			fmt.Fprintf(&help, "  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render(
		"  Extension examples: conf, .ini, *.y?ml, app-*.cfg"))
	help.WriteString("\n")
	return help.String()
}

// PreviewContent decodes path for the preview pager with the same encoding
// policy the search uses.
func PreviewContent(path string, strict bool) (string, error) {
	text, enc, err := search.Decode(path, strict)
	if err != nil {
		return "", err
	}
	header := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("%s (%s)", path, enc.Name))
	return header + "\n\n" + text, nil
}
