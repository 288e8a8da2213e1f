package patterns

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
)

// Settings is a key/value registry meant to be constructed once and handed
// to every consumer.
type Settings struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewSettings creates an empty registry.
func NewSettings() *Settings {
	return &Settings{values: make(map[string]string)}
}

// Set stores value under key.
func (s *Settings) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get returns the value stored under key.
func (s *Settings) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the registered keys, sorted.
func (s *Settings) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type settingsConsumer struct {
	name     string
	settings *Settings
}

// RunSingleton shares one registry between two consumers.
func RunSingleton(ctx context.Context, w io.Writer, logger *slog.Logger) error {
	header(w, "Singleton: shared settings")

	settings := NewSettings()
	ui := settingsConsumer{name: "ui", settings: settings}
	audio := settingsConsumer{name: "audio", settings: settings}

	ui.settings.Set("theme", "dark")
	audio.settings.Set("volume", "7")

	theme, _ := audio.settings.Get("theme")
	fmt.Fprintf(w, "  %s sees theme=%s set by %s\n", audio.name, theme, ui.name)
	fmt.Fprintf(w, "  same instance: %t, keys: %v\n", ui.settings == audio.settings, settings.Keys())
	logger.Debug("settings shared", "keys", len(settings.Keys()))
	return nil
}
