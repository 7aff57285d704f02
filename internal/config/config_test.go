package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
	if cfg.WatchInterval != defaultWatchInterval {
		t.Fatalf("WatchInterval = %d, want %d", cfg.WatchInterval, defaultWatchInterval)
	}
	if cfg.TalkTimeHours != defaultTalkTime {
		t.Fatalf("TalkTimeHours = %d, want %d", cfg.TalkTimeHours, defaultTalkTime)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_dir = "  ~/shokz-logs  "
watch_interval_seconds = 10
talk_time_hours = 8
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogDir != filepath.Join(home, "shokz-logs") {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
	if cfg.WatchInterval != 10 {
		t.Fatalf("WatchInterval = %d, want 10", cfg.WatchInterval)
	}
	if cfg.TalkTimeHours != 8 {
		t.Fatalf("TalkTimeHours = %d, want 8", cfg.TalkTimeHours)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("log_dir = [broken"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted invalid TOML")
	}
}

func TestLatestSessionDir(t *testing.T) {
	logDir := t.TempDir()
	for _, name := range []string{"20240101", "20240301", "20231224", "tmp", "notadate"} {
		if err := os.Mkdir(filepath.Join(logDir, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	// Files must not be considered sessions even with a matching prefix.
	if err := os.WriteFile(filepath.Join(logDir, "20250101"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Config{LogDir: logDir}
	dir, ok := cfg.LatestSessionDir()
	if !ok {
		t.Fatal("LatestSessionDir reported no sessions")
	}
	if dir != filepath.Join(logDir, "20240301") {
		t.Errorf("LatestSessionDir = %q, want newest dated dir", dir)
	}
}

func TestLatestSessionDir_Missing(t *testing.T) {
	cfg := Config{LogDir: filepath.Join(t.TempDir(), "nope")}
	if _, ok := cfg.LatestSessionDir(); ok {
		t.Error("LatestSessionDir reported ok for missing root")
	}

	cfg = Config{LogDir: t.TempDir()} // exists but empty
	if _, ok := cfg.LatestSessionDir(); ok {
		t.Error("LatestSessionDir reported ok for empty root")
	}
}
