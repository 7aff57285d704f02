package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/roelvangils/shokz-battery/internal/config"
	"github.com/roelvangils/shokz-battery/internal/telemetry"
)

func TestResolveRoot(t *testing.T) {
	logDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(logDir, "20240301"), 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{LogDir: logDir}

	root, err := resolveRoot(cfg, "")
	if err != nil {
		t.Fatalf("resolveRoot returned error: %v", err)
	}
	if root != filepath.Join(logDir, "20240301") {
		t.Errorf("root = %q, want latest session dir", root)
	}

	override := t.TempDir()
	root, err = resolveRoot(cfg, override)
	if err != nil {
		t.Fatalf("resolveRoot with override returned error: %v", err)
	}
	if root != override {
		t.Errorf("root = %q, want override %q", root, override)
	}

	cfg = config.Config{LogDir: filepath.Join(t.TempDir(), "missing")}
	if _, err := resolveRoot(cfg, ""); !errors.Is(err, telemetry.ErrNoLogSource) {
		t.Errorf("error = %v, want ErrNoLogSource", err)
	}
}

func TestRunDecode(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{name: "battery", arg: "battery:0005FF00", want: "60% (Medium)"},
		{name: "mac", arg: "dongle_mac:AABBCCDDEEFF", want: "AA:BB:CC:DD:EE:FF"},
		{name: "tolerates spaces", arg: "connection: 01", want: "connected"},
		{name: "missing separator", arg: "battery", wantErr: true},
		{name: "unknown kind", arg: "volume:00", wantErr: true},
		{name: "bad payload", arg: "battery:XY", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			err := runDecode(&out, tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("runDecode(%q) = %q, want error", tt.arg, out.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("runDecode(%q) error: %v", tt.arg, err)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("runDecode(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestRunOnceOutputs(t *testing.T) {
	root := t.TempDir()
	log := `[2024-03-01 09:20:02:481] getDeviceBatteryLevel tag2:8003 value:0007FF00
[2024-03-01 09:20:02:530] getConnectedHeadsetType tag2:800C value:5338313000
`
	if err := os.WriteFile(filepath.Join(root, "session.log"), []byte(log), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{TalkTimeHours: 16}

	t.Run("raw", func(t *testing.T) {
		var out strings.Builder
		if err := runOnce(t.Context(), &out, cfg, root, Options{Raw: true}); err != nil {
			t.Fatalf("runOnce returned error: %v", err)
		}
		if got := strings.TrimSpace(out.String()); got != "0007FF00" {
			t.Errorf("raw output = %q, want latest battery hex", got)
		}
	})

	t.Run("json", func(t *testing.T) {
		var out strings.Builder
		if err := runOnce(t.Context(), &out, cfg, root, Options{JSON: true}); err != nil {
			t.Fatalf("runOnce returned error: %v", err)
		}
		for _, want := range []string{`"success": true`, `"percentage": 80`, `"model_name": "OpenRun Pro"`} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("json output missing %s:\n%s", want, out.String())
			}
		}
	})

	t.Run("no battery", func(t *testing.T) {
		var out strings.Builder
		err := runOnce(t.Context(), &out, cfg, t.TempDir(), Options{})
		if !errors.Is(err, ErrNoData) {
			t.Fatalf("error = %v, want ErrNoData", err)
		}
		if !strings.Contains(out.String(), "No battery data found") {
			t.Errorf("output = %q, want no-data explanation", out.String())
		}
	})
}

func TestCalculateBackoff(t *testing.T) {
	base := 30 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 30 * time.Second},
		{"negative failures", -1, 30 * time.Second},
		{"one failure", 1, time.Minute},
		{"two failures", 2, 2 * time.Minute},
		{"three failures", 3, 4 * time.Minute},
		{"four failures capped", 4, maxBackoff},
		{"many failures capped", 10, maxBackoff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateBackoff(tt.failures, base); got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, base, got, tt.want)
			}
		})
	}
}
