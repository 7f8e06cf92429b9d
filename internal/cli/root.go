package cli

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"searchconf/internal/config"
	"searchconf/internal/coordinator"
	"searchconf/internal/eventbus"
	"searchconf/internal/platform"
	"searchconf/internal/ui"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ErrNotTerminal is returned when the interactive finder is started without
// a terminal attached.
var ErrNotTerminal = errors.New("the finder needs a terminal; use 'searchconf search' for scripted use")

type rootOptions struct {
	settingsPath string
	logPath      string
}

// NewRootCommand creates and returns the root cobra command
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "searchconf",
		Short: "Find configuration files by name and content",
		Long: `searchconf scans a folder for files whose name matches an extension
pattern and whose content contains a piece of text.

Without a subcommand it opens the interactive finder. Matches stream into a
list from which they can be opened, revealed, previewed or copied.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFinder(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.settingsPath, "settings", "", "settings file (.json or .toml; default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&opts.logPath, "log-file", "", "log file (default searchconf.log next to the settings)")

	cmd.AddCommand(NewSearchCommand())

	return cmd
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// setupLogging sends the standard logger to the log file. Nothing may be
// logged to the terminal while the finder owns it.
func setupLogging(opts *rootOptions) io.Closer {
	path := opts.logPath
	if path == "" {
		dir := config.DefaultDir()
		if opts.settingsPath != "" {
			dir = filepath.Dir(opts.settingsPath)
		}
		path = filepath.Join(dir, "searchconf.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err == nil {
			log.SetOutput(logFile)
			return logFile
		}
	}
	log.SetOutput(io.Discard)
	return nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func runFinder(opts *rootOptions) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ErrNotTerminal
	}

	logFile := setupLogging(opts)
	defer logFile.Close()

	bus := eventbus.New()
	defer bus.Close()
	subscribeLogger(bus)

	configSvc := config.NewConfigService(opts.settingsPath, bus)
	settings := configSvc.Load()
	log.Printf("Settings loaded from %s", configSvc.Path())

	app := ui.NewApp(ui.Deps{
		Bus:       bus,
		Config:    configSvc,
		Settings:  settings,
		Searcher:  coordinator.New(bus),
		Autorun:   platform.NewAutorun(),
		Hotkey:    platform.NewHotkey(),
		Opener:    platform.NewOpener(),
		Clipboard: platform.NewClipboard(),
	}, platform.NewTray())

	if err := app.Run(); err != nil {
		log.Printf("Finder exited with error: %v", err)
		return err
	}
	return nil
}

// subscribeLogger records app-level events in the log file.
func subscribeLogger(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventSettingsChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SettingsChangedEvent); ok {
			log.Printf("Settings changed: %s", event.Reason)
		}
	})
	bus.Subscribe(eventbus.EventSettingsSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SettingsSavedEvent); ok {
			log.Printf("Settings saved to %s", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventVisibilityToggled, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.VisibilityToggledEvent); ok {
			log.Printf("Visibility toggled by %s", event.Source)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})
}
