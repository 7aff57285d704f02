// Package config locates the Shokz Connect log tree and loads optional tool
// settings from ~/.config/shokz-battery/config.toml.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings shokz-battery needs.
type Config struct {
	LogDir        string // root containing the app's dated session directories
	WatchInterval int    // seconds between watch-mode rescans
	TalkTimeHours int    // rated talk time used for the remaining estimate
}

const (
	defaultConfigPath    = "~/.config/shokz-battery/config.toml"
	defaultLogDir        = "~/Library/Logs/Shokz/LOG"
	defaultWatchInterval = 30
	defaultTalkTime      = 16
)

// Load locates and parses the config file, falling back to defaults when it
// is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LogDir:        mustExpand(defaultLogDir),
		WatchInterval: defaultWatchInterval,
		TalkTimeHours: defaultTalkTime,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	raw, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var parsed struct {
		LogDir        string `toml:"log_dir"`
		WatchInterval int    `toml:"watch_interval_seconds"`
		TalkTimeHours int    `toml:"talk_time_hours"`
	}
	if err := toml.Unmarshal(raw, &parsed); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(parsed.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if parsed.WatchInterval > 0 {
		cfg.WatchInterval = parsed.WatchInterval
	}
	if parsed.TalkTimeHours > 0 {
		cfg.TalkTimeHours = parsed.TalkTimeHours
	}

	return cfg, nil
}

// LatestSessionDir returns the newest dated session directory under LogDir.
// The app names session directories by date, so reverse lexical order over
// the "20"-prefixed entries is newest-first. ok is false when LogDir is
// missing or holds no session directories.
func (c Config) LatestSessionDir() (string, bool) {
	entries, err := os.ReadDir(c.LogDir)
	if err != nil {
		return "", false
	}

	var sessions []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), "20") {
			sessions = append(sessions, entry.Name())
		}
	}
	if len(sessions) == 0 {
		return "", false
	}
	sort.Sort(sort.Reverse(sort.StringSlice(sessions)))
	return filepath.Join(c.LogDir, sessions[0]), true
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
