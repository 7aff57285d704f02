package telemetry

import "fmt"

// EQ mode tables per model family, keyed by the headset type code reported
// through getConnectedHeadsetType. Mode availability differs per family:
// OpenComm is a two-mode toggle, OpenRun Pro 2 exposes six modes, and so on.
var eqModesByModel = map[string]map[int]string{
	// OpenComm series
	"C102": {0: "Standard", 2: "Vocal Booster"},
	"C110": {0: "Standard", 2: "Vocal Booster"},
	"C120": {0: "Standard", 2: "Vocal Booster"},

	// OpenMove
	"S661": {0: "Standard", 1: "Vocal Booster", 2: "Earplug"},

	// OpenRun (simple toggle)
	"S803": {0: "Standard", 1: "Vocal Booster"},
	"S804": {0: "Standard", 1: "Vocal Booster"},

	// OpenRun Pro
	"S810": {0: "Standard", 1: "Vocal", 2: "Bass Boost", 3: "Treble Boost"},
	"S811": {0: "Standard", 1: "Vocal", 2: "Bass Boost", 3: "Treble Boost"},

	// OpenRun Pro 2 (4 fixed + 2 custom)
	"S812": {0: "Standard", 1: "Vocal", 2: "Bass Boost", 3: "Treble Boost", 4: "Classic", 5: "Volume Boost"},

	// OpenFit Pro
	"T910": {0: "Standard", 1: "Vocal", 2: "Bass Boost", 3: "Treble Boost", 4: "Private"},
}

var defaultEQModes = map[int]string{0: "Standard", 1: "Vocal", 2: "Bass Boost", 3: "Treble Boost"}

var modelNames = map[string]string{
	"C102": "OpenComm",
	"C110": "OpenComm2 UC",
	"C120": "OpenComm2",
	"S661": "OpenMove",
	"S700": "OpenSwim",
	"S710": "OpenSwim Pro",
	"S803": "OpenRun",
	"S804": "OpenRun",
	"S810": "OpenRun Pro",
	"S811": "OpenRun Pro Mini",
	"S812": "OpenRun Pro 2",
	"T110": "OpenFit",
	"T310": "OpenFit 2",
	"T910": "OpenFit Pro",
}

var languages = map[int]string{
	0: "English",
	1: "Chinese",
	2: "Japanese",
	3: "Korean",
	4: "Spanish",
	5: "French",
	6: "German",
}

// EQModeName resolves an EQ mode id against the table for headsetType,
// falling back to the four standard modes when the model is unknown.
func EQModeName(modeID int, headsetType string) string {
	modes, ok := eqModesByModel[headsetType]
	if !ok {
		modes = defaultEQModes
	}
	if name, ok := modes[modeID]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", modeID)
}

// ModelName returns the friendly model name for a headset type code, or the
// code itself when unrecognized.
func ModelName(headsetType string) string {
	if name, ok := modelNames[headsetType]; ok {
		return name
	}
	return headsetType
}

// LanguageName maps a voice prompt language id to its display name.
func LanguageName(id int) string {
	if name, ok := languages[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", id)
}
