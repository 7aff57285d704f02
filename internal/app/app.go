package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/roelvangils/shokz-battery/internal/audio"
	"github.com/roelvangils/shokz-battery/internal/config"
	"github.com/roelvangils/shokz-battery/internal/logscan"
	"github.com/roelvangils/shokz-battery/internal/render"
	"github.com/roelvangils/shokz-battery/internal/telemetry"
)

// Options configure a shokz-battery invocation.
type Options struct {
	ConfigPath    string
	LogDir        string // scan this directory instead of the discovered session dir
	JSON          bool
	Raw           bool
	Verbose       bool
	Watch         bool
	WatchInterval int    // seconds; zero uses the configured default
	Decode        string // "kind:hexpayload" inspection mode, bypasses scanning
}

// ErrNoData signals a run that produced no battery reading. The output
// already explains the situation, so callers exit nonzero without printing
// anything further.
var ErrNoData = errors.New("no battery data found")

// Run executes the tool until done or, in watch mode, until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Decode != "" {
		return runDecode(os.Stdout, opts.Decode)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.WatchInterval > 0 {
		cfg.WatchInterval = opts.WatchInterval
	}

	root, err := resolveRoot(cfg, opts.LogDir)
	if err != nil {
		printRemediation(os.Stderr)
		return ErrNoData
	}

	if opts.Watch {
		return runWatch(ctx, cfg, root, opts.Verbose)
	}
	return runOnce(ctx, os.Stdout, cfg, root, opts)
}

// resolveRoot picks the directory to scan: an explicit override, or the
// newest session directory the Shokz Connect app has written.
func resolveRoot(cfg config.Config, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	dir, ok := cfg.LatestSessionDir()
	if !ok {
		return "", telemetry.ErrNoLogSource
	}
	return dir, nil
}

func runOnce(ctx context.Context, w io.Writer, cfg config.Config, root string, opts Options) error {
	snap, err := telemetry.BuildSnapshot(root)
	switch {
	case errors.Is(err, telemetry.ErrNoLogSource):
		printRemediation(os.Stderr)
		return ErrNoData
	case err != nil && !errors.Is(err, telemetry.ErrNoBattery):
		return err
	}
	noBattery := errors.Is(err, telemetry.ErrNoBattery)

	if opts.Raw {
		if noBattery {
			fmt.Fprintln(os.Stderr, "ERROR")
			return ErrNoData
		}
		fmt.Fprintln(w, snap.BatteryRaw)
		return nil
	}

	if noBattery {
		if opts.JSON {
			fmt.Fprintln(w, render.NoDataJSON())
		} else {
			fmt.Fprintln(w, render.NoDataText())
		}
		return ErrNoData
	}

	view := render.View{
		Snapshot: snap,
		Audio:    audio.Detect(ctx),
	}
	if snap.Battery != nil {
		view.EstimateMinutes = telemetry.EstimateRemainingMinutes(snap.Battery.Percentage, cfg.TalkTimeHours)
	}

	if opts.JSON {
		out, err := render.JSON(view)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
		return nil
	}
	fmt.Fprintln(w, render.Text(view, opts.Verbose))
	return nil
}

// runDecode decodes a single payload for one attribute kind, independent of
// any log files.
func runDecode(w io.Writer, arg string) error {
	kindStr, payload, ok := strings.Cut(arg, ":")
	if !ok {
		return fmt.Errorf("decode: expected kind:hexpayload, got %q", arg)
	}
	kind := logscan.Kind(strings.TrimSpace(kindStr))
	if !slices.Contains(logscan.Kinds(), kind) {
		return fmt.Errorf("decode: unknown kind %q (known: %s)", kindStr, kindList())
	}
	value, err := telemetry.Decode(kind, strings.TrimSpace(payload))
	if err != nil {
		return fmt.Errorf("decode %s: %w", kind, err)
	}
	fmt.Fprintln(w, value)
	return nil
}

func kindList() string {
	kinds := logscan.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func printRemediation(w io.Writer) {
	fmt.Fprintln(w, "Error: Shokz Connect logs not found.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To use this utility, make sure the Shokz Connect app is installed.")
	fmt.Fprintln(w, "You can get it here: https://pro.shokz.com/pages/shokz-connect")
}
