package logscan

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
)

// Kind identifies one of the telemetry attributes the Shokz Connect app
// queries the headset for.
type Kind string

const (
	KindBattery         Kind = "battery"
	KindDongleFirmware  Kind = "dongle_firmware"
	KindDongleMAC       Kind = "dongle_mac"
	KindHeadsetType     Kind = "headset_type"
	KindHeadsetFirmware Kind = "headset_firmware"
	KindMultipoint      Kind = "multipoint"
	KindEQMode          Kind = "eq_mode"
	KindVoiceLanguage   Kind = "voice_language"
	KindConnection      Kind = "connection"
)

// Kinds returns every known attribute kind in scan order.
func Kinds() []Kind {
	out := make([]Kind, len(scanOrder))
	copy(out, scanOrder)
	return out
}

// Record is one matched telemetry occurrence in the log stream.
// Timestamp is zero for kinds whose log lines carry no timestamp anchor;
// only battery records are timestamped.
type Record struct {
	Kind       Kind
	PayloadHex string
	Timestamp  time.Time
}

// Each attribute's response line carries the request method name, the
// response tag, and a trailing "value:" hex run. The patterns are permissive
// about everything in between so vendor log-format drift around the markers
// does not break matching. Battery lines are additionally anchored on the
// bracketed timestamp prefix, which reconciliation orders by.
var patterns = map[Kind]*regexp.Regexp{
	KindBattery:         regexp.MustCompile(`\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}:\d{3})\].*getDeviceBatteryLevel.*tag2:8003.*value:([0-9A-Fa-f]+)`),
	KindDongleFirmware:  regexp.MustCompile(`getVersionInfo.*tag2:800A.*value:([0-9A-Fa-f]+)`),
	KindDongleMAC:       regexp.MustCompile(`getBluetoothAddress.*tag2:8001.*value:([0-9A-Fa-f]+)`),
	KindHeadsetType:     regexp.MustCompile(`getConnectedHeadsetType.*tag2:800C.*value:([0-9A-Fa-f]+)`),
	KindHeadsetFirmware: regexp.MustCompile(`getDeviceVersionName.*tag2:8002.*value:([0-9A-Fa-f]+)`),
	KindMultipoint:      regexp.MustCompile(`getDeviceMutConn.*tag2:8010.*value:([0-9A-Fa-f]+)`),
	KindEQMode:          regexp.MustCompile(`getHeadsetEQ.*tag2:8008.*value:([0-9A-Fa-f]+)`),
	KindVoiceLanguage:   regexp.MustCompile(`getDeviceLanguage.*tag2:8006.*value:([0-9A-Fa-f]+)`),
	KindConnection:      regexp.MustCompile(`getBluetoothConnectionStatus.*tag2:8009.*value:([0-9A-Fa-f]+)`),
}

var scanOrder = []Kind{
	KindBattery,
	KindDongleFirmware,
	KindDongleMAC,
	KindHeadsetType,
	KindHeadsetFirmware,
	KindMultipoint,
	KindEQMode,
	KindVoiceLanguage,
	KindConnection,
}

// ScanDir walks root and returns every telemetry record found in every
// regular file beneath it, in deterministic (lexical walk) order. Files that
// cannot be read are skipped. A missing root is the caller's problem and is
// returned as-is.
func ScanDir(root string) ([]Record, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	var records []Record
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entry, keep walking
		}
		if !d.Type().IsRegular() {
			return nil
		}
		content, err := readLossy(path)
		if err != nil {
			return nil
		}
		records = append(records, ScanText(content)...)
		return nil
	})
	return records, nil
}

// ScanText applies every attribute matcher to raw log text and returns all
// occurrences, grouped by kind in scan order.
func ScanText(content string) []Record {
	var records []Record
	for _, kind := range scanOrder {
		for _, m := range patterns[kind].FindAllStringSubmatch(content, -1) {
			if kind == KindBattery {
				ts, err := parseLogTime(m[1])
				if err != nil {
					// No ordering signal; this occurrence is unusable.
					continue
				}
				records = append(records, Record{Kind: kind, PayloadHex: m[2], Timestamp: ts})
				continue
			}
			records = append(records, Record{Kind: kind, PayloadHex: m[1]})
		}
	}
	return records
}

// readLossy reads a file as text, dropping invalid UTF-8 sequences instead of
// failing. Rotated logs compressed with gzip are decompressed in-stream.
func readLossy(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return "", err
		}
		defer func() { _ = gz.Close() }()
		reader = gz
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

const timestampBaseLayout = "2006-01-02 15:04:05"

// parseLogTime parses the "2006-01-02 15:04:05:000" stamps the vendor app
// writes. The millisecond field sits behind a colon, which the time package
// cannot express, so it is split off and added separately.
func parseLogTime(s string) (time.Time, error) {
	base := s
	var millis int
	if idx := strings.LastIndexByte(s, ':'); idx == len(timestampBaseLayout) {
		ms, err := strconv.Atoi(s[idx+1:])
		if err != nil {
			return time.Time{}, err
		}
		base = s[:idx]
		millis = ms
	}
	t, err := time.ParseInLocation(timestampBaseLayout, base, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(time.Duration(millis) * time.Millisecond), nil
}
