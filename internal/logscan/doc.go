// Package logscan locates telemetry records in Shokz Connect log files.
//
// # Overview
//
// The Shokz Connect desktop app talks to the headset through the Loop120 USB
// dongle using a proprietary TLV protocol and logs every exchange as free-form
// text, with the raw response payload embedded as a hex string. This package
// finds those records among arbitrary unrelated log noise and yields
// (kind, payload, timestamp) tuples for the decoder.
//
// # Matching
//
// Each of the nine attribute kinds is identified by three markers that must
// all appear on the same log line:
//
//   - the request method name (e.g. getDeviceBatteryLevel)
//   - the response tag (e.g. tag2:8003)
//   - a value: marker followed by a run of hex digits (the payload)
//
// Battery lines must additionally start with a [YYYY-MM-DD HH:MM:SS:mmm]
// timestamp; battery occurrences without a parseable timestamp are discarded
// individually, because reconciliation orders battery readings by time.
// Every other kind is unordered and simply reconciled last-wins.
//
// Matchers are deliberately permissive about surrounding text and strict only
// about the marker tokens, so minor vendor log-format drift does not break
// extraction. Every occurrence in a file is matched, not just the first: the
// app polls the device repeatedly and one session log contains many readings.
//
// # Scanning
//
// ScanDir walks the whole directory tree in lexical order, treating every
// regular file as a candidate regardless of extension. Unreadable files and
// binary junk are skipped, never fatal; invalid byte sequences are dropped
// rather than aborting a file. Rotated logs compressed with gzip (*.gz) are
// decompressed transparently. Walk order is deterministic, so repeated scans
// of an unchanged tree produce identical record streams.
package logscan
