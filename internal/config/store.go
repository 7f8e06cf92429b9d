package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"searchconf/internal/eventbus"
)

// Load reads the settings file. It never fails: a missing, unreadable or
// corrupt file yields the defaults, unknown keys are ignored and a key whose
// value has the wrong type keeps its default.
func (cs *configService) Load() *Settings {
	cfg := DefaultSettings()

	data, err := os.ReadFile(cs.filePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Failed to read settings %s: %v", cs.filePath, err)
		}
		return cfg
	}

	fields, err := decodeFields(cs.filePath, data)
	if err != nil {
		log.Printf("Failed to parse settings %s, using defaults: %v", cs.filePath, err)
		return DefaultSettings()
	}

	merge(cfg, fields)
	if cfg.FolderHistory == nil {
		cfg.FolderHistory = []string{}
	}
	return cfg
}

// Save writes the settings atomically while holding a lock next to the file.
func (cs *configService) Save(cfg *Settings) error {
	dir := filepath.Dir(cs.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := encode(cs.filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	lock := flock.New(cs.filePath + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock settings: %w", err)
	}
	defer lock.Unlock()

	if err := atomicWrite(cs.filePath, data); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.SettingsSavedEvent{Path: cs.filePath})
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// decodeFields splits a settings document into raw JSON values per key so
// each key can be merged independently.
func decodeFields(path string, data []byte) (map[string]json.RawMessage, error) {
	if !isTOML(path) {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, err
		}
		return fields, nil
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	fields := make(map[string]json.RawMessage, len(doc))
	for k, v := range doc {
		raw, err := json.Marshal(v)
		if err != nil {
			continue
		}
		fields[k] = raw
	}
	return fields, nil
}

// merge applies each known key onto cfg, keyed by the json tag.
func merge(cfg *Settings, fields map[string]json.RawMessage) {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		key, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		raw, ok := fields[key]
		if !ok {
			continue
		}
		target := reflect.New(t.Field(i).Type)
		if err := json.Unmarshal(raw, target.Interface()); err != nil {
			log.Printf("Ignoring settings key %q: %v", key, err)
			continue
		}
		v.Field(i).Set(target.Elem())
	}
}

func encode(path string, cfg *Settings) ([]byte, error) {
	if isTOML(path) {
		return toml.Marshal(cfg)
	}
	return json.MarshalIndent(cfg, "", "  ")
}

// atomicWrite replaces path through a temp file in the same directory so
// readers never observe a partial file.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".settings-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close settings: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
