package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/roelvangils/shokz-battery/internal/app"
)

const version = "1.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	logDir := flag.String("log-dir", "", "scan this log directory instead of auto-discovery")
	jsonOut := flag.Bool("json", false, "output as JSON")
	rawOut := flag.Bool("raw", false, "output raw battery hex value only")
	verbose := flag.Bool("v", false, "show detailed device info")
	flag.BoolVar(verbose, "verbose", false, "show detailed device info")
	watch := flag.Bool("watch", false, "continuously monitor")
	watchInterval := flag.Int("watch-interval", 0, "watch interval in seconds (default 30)")
	decode := flag.String("decode", "", "decode one payload, e.g. battery:0005FF00")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("shokz-battery %s\n", version)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:    *configPath,
		LogDir:        *logDir,
		JSON:          *jsonOut,
		Raw:           *rawOut,
		Verbose:       *verbose,
		Watch:         *watch,
		WatchInterval: *watchInterval,
		Decode:        *decode,
	}

	if err := app.Run(ctx, opts); err != nil {
		if !errors.Is(err, app.ErrNoData) {
			fmt.Fprintf(os.Stderr, "shokz-battery: %v\n", err)
		}
		return 1
	}
	return 0
}
