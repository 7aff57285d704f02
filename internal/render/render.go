// Package render turns a reconciled device snapshot into terminal or JSON
// output. The terminal form mirrors what the vendor app shows: a segmented
// battery bar colored by charge tier, a compact model/EQ/audio line, and
// optional verbose headset and dongle sections.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roelvangils/shokz-battery/internal/audio"
	"github.com/roelvangils/shokz-battery/internal/telemetry"
)

// View bundles everything one rendering pass needs.
type View struct {
	Snapshot        telemetry.Snapshot
	Audio           audio.Mode
	EstimateMinutes int
}

var (
	greenText  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowText = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	redText    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	cyanText   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimText    = lipgloss.NewStyle().Faint(true)
)

const barSegments = 10

// NoDataText is the plain-text output when no battery record exists.
func NoDataText() string {
	return "Error: No battery data found. Is Shokz Connect running?"
}

// Text renders the snapshot for the terminal.
func Text(v View, verbose bool) string {
	snap := v.Snapshot
	var lines []string

	if snap.Battery != nil {
		lines = append(lines, batteryLine(*snap.Battery, v.EstimateMinutes))
	} else {
		lines = append(lines, fmt.Sprintf("Battery: Unknown (raw: %s)", snap.BatteryRaw))
	}

	if info := infoLine(v); info != "" {
		lines = append(lines, info)
	}

	if v.Audio.MissingTool {
		lines = append(lines, dimText.Render("Tip: brew install switchaudio-osx for audio mode detection"))
	}

	if snap.Battery != nil && !snap.Battery.Timestamp.IsZero() {
		lines = append(lines, dimText.Render("Updated: "+snap.Battery.Timestamp.Format("15:04:05")))
	}

	if verbose {
		lines = append(lines, verboseSections(snap)...)
	}

	return strings.Join(lines, "\n")
}

func batteryLine(b telemetry.Battery, estimate int) string {
	filled := b.Percentage / barSegments
	barStyle := redText
	switch {
	case b.Percentage >= 70:
		barStyle = greenText
	case b.Percentage >= 40:
		barStyle = yellowText
	}
	bar := barStyle.Render(strings.Repeat("■", filled)) +
		dimText.Render(strings.Repeat("□", barSegments-filled))

	if estimate > 0 {
		remaining := dimText.Render(fmt.Sprintf("(~%s remaining)", FormatDuration(estimate)))
		return fmt.Sprintf("Battery: %s %d%% %s", bar, b.Percentage, remaining)
	}
	return fmt.Sprintf("Battery: %s %d%%", bar, b.Percentage)
}

// infoLine builds the compact "model · EQ · audio" summary.
func infoLine(v View) string {
	var parts []string
	if v.Snapshot.HeadsetType != "" {
		parts = append(parts, cyanText.Render(telemetry.ModelName(v.Snapshot.HeadsetType)))
	}
	if v.Snapshot.EQMode != "" {
		parts = append(parts, "EQ: "+v.Snapshot.EQMode)
	}
	if v.Audio.OutputDevice != "" {
		switch {
		case v.Audio.UsingDongle:
			parts = append(parts, greenText.Render("USB 48kHz"))
		case v.Audio.UsingBluetoothMic:
			parts = append(parts, redText.Render("HFP 16kHz")+" (mic on)")
		case strings.Contains(strings.ToLower(v.Audio.OutputDevice), "bones"):
			parts = append(parts, yellowText.Render("BT 44kHz"))
		default:
			parts = append(parts, dimText.Render("Audio: inactive"))
		}
	}
	return strings.Join(parts, " · ")
}

func verboseSections(snap telemetry.Snapshot) []string {
	lines := []string{"", "Headset:"}
	if snap.HeadsetType != "" {
		model := telemetry.ModelName(snap.HeadsetType)
		if model != snap.HeadsetType {
			lines = append(lines, fmt.Sprintf("  Model: %s (%s)", model, snap.HeadsetType))
		} else {
			lines = append(lines, "  Model: "+snap.HeadsetType)
		}
	}
	if snap.HeadsetFirmware != "" {
		lines = append(lines, "  Firmware: "+snap.HeadsetFirmware)
	}
	if snap.EQMode != "" {
		lines = append(lines, "  EQ Mode: "+snap.EQMode)
	}
	if snap.VoiceLanguage != "" {
		lines = append(lines, "  Voice: "+snap.VoiceLanguage)
	}
	if snap.MultipointEnabled != nil {
		status := "Disabled"
		if *snap.MultipointEnabled {
			status = "Enabled"
		}
		if snap.MultipointConnections != nil && *snap.MultipointConnections > 0 {
			status += fmt.Sprintf(" (%d connected)", *snap.MultipointConnections)
		}
		lines = append(lines, "  Multipoint: "+status)
	}

	lines = append(lines, "", "Dongle:")
	if snap.DongleFirmware != "" {
		lines = append(lines, "  Firmware: "+snap.DongleFirmware)
	}
	if snap.DongleMAC != "" {
		lines = append(lines, "  MAC: "+snap.DongleMAC)
	}
	return lines
}

// FormatDuration formats minutes as "45m", "2h", or "2h 30m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
