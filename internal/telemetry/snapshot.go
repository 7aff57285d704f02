package telemetry

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/roelvangils/shokz-battery/internal/logscan"
)

// ErrNoLogSource reports that the log root does not exist at all. The Shokz
// Connect app has presumably never run; no snapshot can be built.
var ErrNoLogSource = errors.New("shokz connect logs not found")

// ErrNoBattery reports that the logs were readable but contained no battery
// record. The snapshot returned alongside it may still carry other fields,
// which are valid for diagnostics.
var ErrNoBattery = errors.New("no battery data found")

// AdvertisedTalkTimeHours is the rated talk time from the Shokz spec sheet,
// used for the remaining-time estimate.
const AdvertisedTalkTimeHours = 16

// BuildSnapshot scans the log tree under root and reconciles every record
// found into a single snapshot. The returned error is ErrNoLogSource when
// root is missing and ErrNoBattery when no battery record was observed; the
// latter still returns the partial snapshot.
func BuildSnapshot(root string) (Snapshot, error) {
	records, err := logscan.ScanDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, fmt.Errorf("%w: %s", ErrNoLogSource, root)
		}
		return Snapshot{}, fmt.Errorf("scan logs: %w", err)
	}

	snap := Reconcile(records)
	if snap.BatteryRaw == "" {
		return snap, ErrNoBattery
	}
	return snap, nil
}

// Reconcile folds extracted records into one snapshot.
//
// Battery readings carry timestamps and are reconciled latest-timestamp-wins,
// with ties keeping the first occurrence seen. Every other attribute has no
// ordering signal and is reconciled last-occurrence-wins in scan order. The
// two policies are intentionally different and match the vendor app's own
// logging behavior.
func Reconcile(records []logscan.Record) Snapshot {
	var snap Snapshot

	var battery *logscan.Record
	for i := range records {
		rec := records[i]
		if rec.Kind == logscan.KindBattery {
			if battery == nil || rec.Timestamp.After(battery.Timestamp) {
				battery = &records[i]
			}
			continue
		}
		snap.apply(rec)
	}

	if battery != nil {
		snap.BatteryRaw = battery.PayloadHex
		if decoded, err := DecodeBattery(battery.PayloadHex); err == nil {
			decoded.Timestamp = battery.Timestamp
			snap.Battery = &decoded
		}
	}

	// EQ display name resolves against whatever headset type won the fold,
	// once, after all records are in.
	if snap.EQModeID != nil {
		snap.EQMode = EQModeName(*snap.EQModeID, snap.HeadsetType)
	}

	return snap
}

// EstimateRemainingMinutes converts a battery percentage into a conservative
// talk-time estimate: scale the advertised capacity, subtract a one hour
// safety margin, and round to the nearest half hour. Zero means no estimate.
func EstimateRemainingMinutes(percentage, talkTimeHours int) int {
	if percentage <= 0 {
		return 0
	}
	raw := float64(percentage) / 100 * float64(talkTimeHours) * 60
	conservative := raw - 60
	if conservative <= 0 {
		return 0
	}
	return int(math.Round(conservative/30)) * 30
}
