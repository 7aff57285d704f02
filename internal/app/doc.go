// Package app is the composition root for shokz-battery.
//
// # Overview
//
// Run wires the pipeline together: load tool settings, locate the newest
// Shokz Connect session directory, scan it into a device snapshot, and hand
// the snapshot to the renderer. The pipeline itself lives in logscan and
// telemetry; this package only decides which mode drives it:
//
//   - one-shot (default): scan once, print text or JSON, exit
//   - raw: print the latest battery payload hex and nothing else
//   - decode: decode one supplied payload for one attribute kind, no files
//   - watch: full-screen Bubble Tea monitor that rescans on an interval
//
// # Watch mode
//
// Watch mode reuses the one-shot pipeline unchanged. A background poller
// goroutine rescans the whole log tree on the configured interval and
// publishes each result to a state.Store; the Bubble Tea model reads the
// store on a one second UI tick and rerenders. No scan state survives
// between rounds, so every displayed snapshot is internally consistent.
// When scans start failing outright (the log root disappeared), the poller
// backs off exponentially up to five minutes.
//
// Interrupt handling comes from the signal context created in main: between
// scans the poller observes ctx and stops, and the Bubble Tea program shuts
// down cleanly.
//
// # Exit status
//
// Run returns ErrNoData for the two "no battery reading" conditions (log
// source missing, logs present but silent). The user-facing explanation has
// already been printed by then; main maps ErrNoData to exit code 1 without
// further output.
package app
