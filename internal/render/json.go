package render

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/roelvangils/shokz-battery/internal/telemetry"
)

// jsonOutput mirrors the shape consumers of the original tool scripted
// against, so field names and nesting are part of the contract.
type jsonOutput struct {
	Success   bool        `json:"success"`
	Timestamp *string     `json:"timestamp"`
	Battery   jsonBattery `json:"battery"`
	Headset   jsonHeadset `json:"headset"`
	Dongle    jsonDongle  `json:"dongle"`
	Audio     jsonAudio   `json:"audio"`
	Connected *bool       `json:"connected"`
}

type jsonBattery struct {
	Percentage       *int    `json:"percentage"`
	LevelText        *string `json:"level_text"`
	LevelIndicator   *int    `json:"level_indicator"`
	RawValue         string  `json:"raw_value"`
	RemainingMinutes *int    `json:"estimated_remaining_minutes"`
	RemainingText    *string `json:"estimated_remaining_text"`
}

type jsonHeadset struct {
	Type                  *string `json:"type"`
	ModelName             *string `json:"model_name"`
	Firmware              *string `json:"firmware"`
	EQMode                *string `json:"eq_mode"`
	VoiceLanguage         *string `json:"voice_language"`
	MultipointEnabled     *bool   `json:"multipoint_enabled"`
	MultipointConnections *int    `json:"multipoint_connections"`
}

type jsonDongle struct {
	Firmware   *string `json:"firmware"`
	MACAddress *string `json:"mac_address"`
}

type jsonAudio struct {
	OutputDevice      *string `json:"output_device"`
	InputDevice       *string `json:"input_device"`
	UsingDongle       bool    `json:"using_dongle"`
	UsingBluetoothMic bool    `json:"using_bluetooth_mic"`
	Quality           *string `json:"quality"`
}

// JSON renders the snapshot as indented JSON.
func JSON(v View) (string, error) {
	snap := v.Snapshot
	out := jsonOutput{
		Success: true,
		Battery: jsonBattery{RawValue: snap.BatteryRaw},
		Headset: jsonHeadset{
			Type:                  optString(snap.HeadsetType),
			Firmware:              optString(snap.HeadsetFirmware),
			EQMode:                optString(snap.EQMode),
			VoiceLanguage:         optString(snap.VoiceLanguage),
			MultipointEnabled:     snap.MultipointEnabled,
			MultipointConnections: snap.MultipointConnections,
		},
		Dongle: jsonDongle{
			Firmware:   optString(snap.DongleFirmware),
			MACAddress: optString(snap.DongleMAC),
		},
		Audio: jsonAudio{
			OutputDevice:      optString(v.Audio.OutputDevice),
			InputDevice:       optString(v.Audio.InputDevice),
			UsingDongle:       v.Audio.UsingDongle,
			UsingBluetoothMic: v.Audio.UsingBluetoothMic,
			Quality:           optString(v.Audio.Quality),
		},
		Connected: snap.Connected,
	}

	if snap.HeadsetType != "" {
		out.Headset.ModelName = optString(telemetry.ModelName(snap.HeadsetType))
	}

	if b := snap.Battery; b != nil {
		out.Battery.Percentage = &b.Percentage
		out.Battery.LevelText = &b.Tier
		out.Battery.LevelIndicator = &b.Indicator
		if !b.Timestamp.IsZero() {
			ts := b.Timestamp.Format(time.RFC3339)
			out.Timestamp = &ts
		}
		if v.EstimateMinutes > 0 {
			est := v.EstimateMinutes
			text := FormatDuration(est)
			out.Battery.RemainingMinutes = &est
			out.Battery.RemainingText = &text
		}
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(encoded), nil
}

// NoDataJSON is the JSON output when no battery record exists.
func NoDataJSON() string {
	encoded, _ := json.MarshalIndent(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{Success: false, Error: "No data found"}, "", "  ")
	return string(encoded)
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
