// Package state holds the latest scan result for watch mode, coordinating
// the background rescanner and the UI.
package state

import (
	"sync"
	"time"

	"github.com/roelvangils/shokz-battery/internal/audio"
	"github.com/roelvangils/shokz-battery/internal/telemetry"
)

// Result is the latest data available to the watch UI.
type Result struct {
	Device              telemetry.Snapshot
	HasBattery          bool
	Audio               audio.Mode
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // scans in a row that failed outright
}

// IsStale reports whether scanning has been failing for multiple rounds.
func (r Result) IsStale() bool {
	return r.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the result.
type Store struct {
	mu     sync.RWMutex
	result Result
}

// Update replaces the stored result. When err is non-nil the previous data
// is kept and the error recorded for visibility.
func (s *Store) Update(device *telemetry.Snapshot, hasBattery bool, mode audio.Mode, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.result.LastError = err
		s.result.LastUpdated = time.Now()
		s.result.ConsecutiveFailures++
		return
	}

	if device != nil {
		s.result.Device = *device
	}
	s.result.HasBattery = hasBattery
	s.result.Audio = mode
	s.result.LastError = nil
	s.result.LastUpdated = time.Now()
	s.result.ConsecutiveFailures = 0
}

// Result returns a copy of the current result. Snapshot internals are
// immutable after reconciliation, so a shallow copy is safe to share.
func (s *Store) Result() Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}
