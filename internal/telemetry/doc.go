// Package telemetry decodes extracted log records into typed device state
// and reconciles them into a single snapshot.
//
// # Decoding
//
// Each attribute kind has its own byte-layout rule: the battery level is a
// 0-9 indicator in byte 1 expanded to a 10% increment percentage, firmware
// versions are null-terminated ASCII (the headset variant skips a leading
// length byte), the dongle address is a 6-byte MAC, multipoint and EQ state
// are single-byte fields, and the voice prompt language is an id into a
// fixed seven entry table. Static catalogs map headset type codes to
// friendly model names and per-family EQ mode tables; all catalogs are
// immutable package data built at init.
//
// A payload that fails its rule is skipped and the field stays unset.
// Missing data is normal here, never an error: the app only logs what it was
// asked for, so snapshots are routinely partial.
//
// # Reconciliation
//
// Many records reduce to one Snapshot. Battery records are ordered by their
// embedded timestamps (latest wins, first seen breaks ties); all other kinds
// keep the last occurrence in scan order. The EQ mode display name is
// resolved once after folding, against the headset type that won the fold.
//
// Two source-level failures exist: ErrNoLogSource (the log root does not
// exist) and ErrNoBattery (logs exist but no battery record was matched).
// Everything below that granularity is recovered locally.
package telemetry
