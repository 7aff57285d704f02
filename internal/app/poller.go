package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/roelvangils/shokz-battery/internal/audio"
	"github.com/roelvangils/shokz-battery/internal/state"
	"github.com/roelvangils/shokz-battery/internal/telemetry"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
)

// StartPoller launches a background goroutine that rescans the log tree at a
// fixed cadence and publishes the result to the store. It returns
// immediately. Each scan rebuilds the snapshot from scratch; no state is
// carried between rounds, so the store always reflects one consistent scan.
func StartPoller(ctx context.Context, store *state.Store, root string, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			refresh(ctx, store, root)

			wait := calculateBackoff(store.Result().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, root string) {
	snap, err := telemetry.BuildSnapshot(root)
	if err != nil && !errors.Is(err, telemetry.ErrNoBattery) {
		store.Update(nil, false, audio.Mode{}, err)
		log.Printf("log scan failed: %v", err)
		return
	}
	store.Update(&snap, err == nil, audio.Detect(ctx), nil)
}

// calculateBackoff doubles the rescan interval per consecutive failure,
// capped at maxBackoff. Failures here mean the log root itself went away,
// so hammering the filesystem buys nothing.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
