// Package audio detects which audio devices macOS is currently routed to,
// using the SwitchAudioSource binary (brew install switchaudio-osx). The
// check is best-effort: a missing binary or a slow call degrades to an empty
// result, never an error.
package audio

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

const commandTimeout = 5 * time.Second

// Quality values for the current audio path.
const (
	QualityHigh = "high" // USB 48kHz or A2DP 44.1kHz
	QualityLow  = "low"  // HFP 16kHz mono, active when the Bluetooth mic is in use
)

// Mode describes the current audio routing as far as it concerns the headset.
type Mode struct {
	OutputDevice      string
	InputDevice       string
	UsingDongle       bool // output goes through the Loop120 USB dongle
	UsingBluetoothMic bool // the headset's Bluetooth mic is the active input
	Quality           string
	MissingTool       bool // SwitchAudioSource is not installed
}

// Detect queries the current output and input devices and classifies the
// audio path quality.
func Detect(ctx context.Context) Mode {
	var mode Mode

	output, err := currentDevice(ctx, "output")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			mode.MissingTool = true
		}
		return mode
	}
	mode.OutputDevice = output
	mode.UsingDongle = strings.Contains(strings.ToLower(output), "loop120")

	if input, err := currentDevice(ctx, "input"); err == nil {
		mode.InputDevice = input
		mode.UsingBluetoothMic = strings.ToLower(input) == "bones"
	}

	switch {
	case mode.UsingDongle:
		mode.Quality = QualityHigh
	case strings.Contains(strings.ToLower(mode.OutputDevice), "bones"):
		if mode.UsingBluetoothMic {
			mode.Quality = QualityLow
		} else {
			mode.Quality = QualityHigh
		}
	}

	return mode
}

func currentDevice(ctx context.Context, kind string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "SwitchAudioSource", "-c", "-t", kind).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
