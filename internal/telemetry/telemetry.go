package telemetry

import (
	"fmt"
	"time"

	"github.com/roelvangils/shokz-battery/internal/hexcodec"
	"github.com/roelvangils/shokz-battery/internal/logscan"
)

// The all-null headset type the dongle reports before a headset has
// identified itself. Treated as unset.
const unsetHeadsetType = "\x00\x00\x00\x00"

// Battery is a decoded battery reading.
type Battery struct {
	Indicator  int       // raw 0-9 level byte from the response
	Percentage int       // (indicator+1)*10, capped at 100
	Tier       string    // High / Medium / Low / Critical
	Timestamp  time.Time // when the app logged the reading
}

// Snapshot is the reconciled device-wide state built from every record in a
// log tree. Fields are optional: nil pointers and empty strings mean the
// attribute was never observed, which is normal, not an error.
type Snapshot struct {
	Battery    *Battery
	BatteryRaw string // raw hex of the reading Battery was decoded from

	DongleFirmware string
	DongleMAC      string

	HeadsetType           string
	HeadsetFirmware       string
	MultipointEnabled     *bool
	MultipointConnections *int
	EQModeID              *int
	EQMode                string // resolved display name, set after folding
	VoiceLanguage         string
	Connected             *bool
}

// DecodeBattery decodes a getDeviceBatteryLevel payload. Byte 1 carries a
// 0-9 level indicator; the app displays battery in 10% increments.
func DecodeBattery(payloadHex string) (Battery, error) {
	data, err := hexcodec.Bytes(payloadHex)
	if err != nil {
		return Battery{}, err
	}
	if len(data) < 2 {
		return Battery{}, fmt.Errorf("%w: battery payload needs 2 bytes, have %d", hexcodec.ErrMalformedPayload, len(data))
	}

	indicator := int(data[1])
	percentage := (indicator + 1) * 10
	if percentage > 100 {
		percentage = 100
	}

	var tier string
	switch {
	case percentage >= 70:
		tier = "High"
	case percentage >= 40:
		tier = "Medium"
	case percentage >= 20:
		tier = "Low"
	default:
		tier = "Critical"
	}

	return Battery{Indicator: indicator, Percentage: percentage, Tier: tier}, nil
}

// Decode decodes a single payload for the given attribute kind and renders
// the result as a display string. It is independent of file scanning and
// backs the --decode inspection mode.
func Decode(kind logscan.Kind, payloadHex string) (string, error) {
	data, err := hexcodec.Bytes(payloadHex)
	if err != nil {
		return "", err
	}

	switch kind {
	case logscan.KindBattery:
		b, err := DecodeBattery(payloadHex)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d%% (%s)", b.Percentage, b.Tier), nil
	case logscan.KindDongleFirmware:
		return hexcodec.ASCIITrimmed(data, 0), nil
	case logscan.KindDongleMAC:
		return hexcodec.MAC(data)
	case logscan.KindHeadsetType:
		decoded := hexcodec.ASCIITrimmed(data, 0)
		if decoded == unsetHeadsetType {
			return "", nil
		}
		return decoded, nil
	case logscan.KindHeadsetFirmware:
		return hexcodec.ASCIITrimmed(data, 1), nil
	case logscan.KindMultipoint:
		if len(data) < 3 {
			return "", fmt.Errorf("%w: multipoint payload needs 3 bytes, have %d", hexcodec.ErrMalformedPayload, len(data))
		}
		state := "disabled"
		if data[1] != 0 {
			state = "enabled"
		}
		return fmt.Sprintf("%s (%d connected)", state, data[2]), nil
	case logscan.KindEQMode:
		if len(data) < 2 {
			return "", fmt.Errorf("%w: eq mode payload needs 2 bytes, have %d", hexcodec.ErrMalformedPayload, len(data))
		}
		return EQModeName(int(data[1]), ""), nil
	case logscan.KindVoiceLanguage:
		if len(data) < 1 {
			return "", fmt.Errorf("%w: language payload is empty", hexcodec.ErrMalformedPayload)
		}
		return LanguageName(int(data[0])), nil
	case logscan.KindConnection:
		if len(data) < 1 {
			return "", fmt.Errorf("%w: connection payload is empty", hexcodec.ErrMalformedPayload)
		}
		if data[0] == 1 {
			return "connected", nil
		}
		return "disconnected", nil
	}
	return "", fmt.Errorf("unknown attribute kind %q", kind)
}

// apply folds one non-battery record into the snapshot. A payload that fails
// its kind's decode rule is skipped and the previous value, if any, stays.
func (s *Snapshot) apply(rec logscan.Record) {
	data, err := hexcodec.Bytes(rec.PayloadHex)
	if err != nil {
		return
	}

	switch rec.Kind {
	case logscan.KindDongleFirmware:
		s.DongleFirmware = hexcodec.ASCIITrimmed(data, 0)
	case logscan.KindDongleMAC:
		if mac, err := hexcodec.MAC(data); err == nil {
			s.DongleMAC = mac
		}
	case logscan.KindHeadsetType:
		if decoded := hexcodec.ASCIITrimmed(data, 0); decoded != "" && decoded != unsetHeadsetType {
			s.HeadsetType = decoded
		}
	case logscan.KindHeadsetFirmware:
		s.HeadsetFirmware = hexcodec.ASCIITrimmed(data, 1)
	case logscan.KindMultipoint:
		if len(data) >= 3 {
			enabled := data[1] != 0
			conns := int(data[2])
			s.MultipointEnabled = &enabled
			s.MultipointConnections = &conns
		}
	case logscan.KindEQMode:
		if len(data) >= 2 {
			id := int(data[1])
			s.EQModeID = &id
		}
	case logscan.KindVoiceLanguage:
		if len(data) >= 1 {
			s.VoiceLanguage = LanguageName(int(data[0]))
		}
	case logscan.KindConnection:
		if len(data) >= 1 {
			connected := data[0] == 1
			s.Connected = &connected
		}
	}
}
