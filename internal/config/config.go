package config

import (
	"os"
	"path/filepath"

	"searchconf/internal/eventbus"
)

// AppNameDefault is the window title used when none is configured.
const AppNameDefault = "SearchConf Finder"

// MaxFolderHistory bounds the folder history list.
const MaxFolderHistory = 15

// Settings is the persisted application state. Keys match the settings
// file written by earlier releases so existing files keep loading.
type Settings struct {
	ProgramName         string   `json:"program_name" toml:"program_name"`
	DefaultFolder       string   `json:"default_folder" toml:"default_folder"`
	FolderHistory       []string `json:"folder_history" toml:"folder_history"`
	LastFolder          string   `json:"last_folder" toml:"last_folder"`
	LastQuery           string   `json:"last_query" toml:"last_query"`
	LastExtension       string   `json:"last_extension" toml:"last_extension"`
	Recursive           bool     `json:"recursive" toml:"recursive"`
	CaseSensitive       bool     `json:"case_sensitive" toml:"case_sensitive"`
	Autorun             bool     `json:"autorun" toml:"autorun"`
	GlobalHotkeyEnabled bool     `json:"global_hotkey_enabled" toml:"global_hotkey_enabled"`
	WindowGeometry      string   `json:"window_geometry" toml:"window_geometry"`
	StrictEncoding      bool     `json:"strict_encoding" toml:"strict_encoding"`
}

// ConfigService loads and saves settings
type ConfigService interface {
	Load() *Settings
	Save(s *Settings) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultDir returns the per-user settings directory.
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
	}
	return filepath.Join(configDir, "SearchConfFinder")
}

// DefaultPath returns the settings file used when none is given.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "settings.json")
}

// NewConfigService creates a settings service for path. An empty path
// selects DefaultPath. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// DefaultSettings returns the settings used when nothing is stored.
func DefaultSettings() *Settings {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Settings{
		ProgramName:         AppNameDefault,
		DefaultFolder:       homeDir,
		FolderHistory:       []string{},
		LastExtension:       ".conf",
		Recursive:           true,
		CaseSensitive:       false,
		Autorun:             false,
		GlobalHotkeyEnabled: true,
		WindowGeometry:      "500x420",
	}
}

// PushFolder moves folder to the front of the history, dropping duplicates
// and anything past MaxFolderHistory.
func (s *Settings) PushFolder(folder string) {
	if folder == "" {
		return
	}
	history := make([]string, 0, len(s.FolderHistory)+1)
	history = append(history, folder)
	for _, f := range s.FolderHistory {
		if f != folder {
			history = append(history, f)
		}
	}
	if len(history) > MaxFolderHistory {
		history = history[:MaxFolderHistory]
	}
	s.FolderHistory = history
}

// InitialFolder returns the folder shown at startup: the last used folder,
// falling back to the default folder. The result is recorded in the history.
func (s *Settings) InitialFolder() string {
	folder := s.LastFolder
	if folder == "" {
		folder = s.DefaultFolder
	}
	if folder == "" {
		if home, err := os.UserHomeDir(); err == nil {
			folder = home
		}
	}
	s.PushFolder(folder)
	return folder
}

// InitialExtension returns the stored extension or the default one.
func (s *Settings) InitialExtension() string {
	if s.LastExtension == "" {
		return ".conf"
	}
	return s.LastExtension
}
