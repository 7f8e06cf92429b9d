package commands

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"searchconf/internal/eventbus"
	"searchconf/internal/platform"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Opener    platform.Opener
	Clipboard platform.Clipboard
	Bus       eventbus.EventBus
}

// Operation names carried on ResultMsg
const (
	OpOpen   = "open"
	OpReveal = "reveal"
	OpCopy   = "copy"
)

// ResultMsg reports the outcome of a command back to the model
type ResultMsg struct {
	Op    string
	Paths []string
	Errs  []error
}

// Err joins every failure of the command, nil when all succeeded.
func (m ResultMsg) Err() error {
	return errors.Join(m.Errs...)
}

func (ctx *CommandContext) report(op string, err error) {
	log.Printf("%s failed: %v", op, err)
	if ctx.Bus != nil {
		ctx.Bus.Publish(eventbus.ErrorEvent{Message: op + " failed", Err: err})
	}
}

// OpenCommand opens every path with its default application
type OpenCommand struct {
	ctx   *CommandContext
	paths []string
}

// NewOpenCommand creates a new open command
func NewOpenCommand(ctx *CommandContext, paths []string) *OpenCommand {
	return &OpenCommand{ctx: ctx, paths: paths}
}

// Execute opens the files one by one; a failure does not stop the rest.
func (c *OpenCommand) Execute() tea.Cmd {
	if len(c.paths) == 0 {
		return nil
	}
	paths := c.paths
	return func() tea.Msg {
		msg := ResultMsg{Op: OpOpen, Paths: paths}
		for _, p := range paths {
			if err := c.ctx.Opener.Open(p); err != nil {
				c.ctx.report(OpOpen, err)
				msg.Errs = append(msg.Errs, err)
			}
		}
		return msg
	}
}

// RevealCommand shows the folder containing a file
type RevealCommand struct {
	ctx  *CommandContext
	path string
}

// NewRevealCommand creates a new reveal command
func NewRevealCommand(ctx *CommandContext, path string) *RevealCommand {
	return &RevealCommand{ctx: ctx, path: path}
}

// Execute performs the reveal operation
func (c *RevealCommand) Execute() tea.Cmd {
	if c.path == "" {
		return nil
	}
	path := c.path
	return func() tea.Msg {
		msg := ResultMsg{Op: OpReveal, Paths: []string{path}}
		if err := c.ctx.Opener.Reveal(path); err != nil {
			c.ctx.report(OpReveal, err)
			msg.Errs = append(msg.Errs, err)
		}
		return msg
	}
}

// CopyCommand puts paths on the clipboard, one per line
type CopyCommand struct {
	ctx   *CommandContext
	paths []string
}

// NewCopyCommand creates a new copy command
func NewCopyCommand(ctx *CommandContext, paths []string) *CopyCommand {
	return &CopyCommand{ctx: ctx, paths: paths}
}

// Execute performs the copy operation
func (c *CopyCommand) Execute() tea.Cmd {
	if len(c.paths) == 0 {
		return nil
	}
	paths := c.paths
	return func() tea.Msg {
		msg := ResultMsg{Op: OpCopy, Paths: paths}
		if err := c.ctx.Clipboard.Copy(paths); err != nil {
			err = fmt.Errorf("copy %d paths: %w", len(paths), err)
			c.ctx.report(OpCopy, err)
			msg.Errs = append(msg.Errs, err)
		}
		return msg
	}
}
