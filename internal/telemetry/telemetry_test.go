package telemetry

import (
	"errors"
	"testing"

	"github.com/roelvangils/shokz-battery/internal/hexcodec"
	"github.com/roelvangils/shokz-battery/internal/logscan"
)

func TestDecodeBattery(t *testing.T) {
	b, err := DecodeBattery("0005FF00")
	if err != nil {
		t.Fatalf("DecodeBattery returned error: %v", err)
	}
	if b.Indicator != 5 {
		t.Errorf("Indicator = %d, want 5", b.Indicator)
	}
	if b.Percentage != 60 {
		t.Errorf("Percentage = %d, want 60", b.Percentage)
	}
	if b.Tier != "Medium" {
		t.Errorf("Tier = %q, want Medium", b.Tier)
	}
}

func TestDecodeBatteryTiers(t *testing.T) {
	tests := []struct {
		payload string
		pct     int
		tier    string
	}{
		{"0000", 10, "Critical"},
		{"0001", 20, "Low"},
		{"0003", 40, "Medium"},
		{"0006", 70, "High"},
		{"0009", 100, "High"},
		{"00FF", 100, "High"}, // indicator past the 0-9 range caps at 100
	}
	for _, tt := range tests {
		b, err := DecodeBattery(tt.payload)
		if err != nil {
			t.Fatalf("DecodeBattery(%q) error: %v", tt.payload, err)
		}
		if b.Percentage != tt.pct || b.Tier != tt.tier {
			t.Errorf("DecodeBattery(%q) = %d%% %s, want %d%% %s",
				tt.payload, b.Percentage, b.Tier, tt.pct, tt.tier)
		}
	}
}

// Every valid 2+ byte payload must decode to a percentage in [10,100] that
// is a multiple of 10.
func TestDecodeBatteryPercentageRange(t *testing.T) {
	for indicator := 0; indicator <= 255; indicator++ {
		payload := []byte{0x00, byte(indicator)}
		b, err := DecodeBattery(hexString(payload))
		if err != nil {
			t.Fatalf("indicator %d: %v", indicator, err)
		}
		if b.Percentage < 10 || b.Percentage > 100 || b.Percentage%10 != 0 {
			t.Fatalf("indicator %d: percentage %d out of contract", indicator, b.Percentage)
		}
	}
}

func TestDecodeBatteryMalformed(t *testing.T) {
	for _, payload := range []string{"00", "", "XYZ1", "0"} {
		if _, err := DecodeBattery(payload); !errors.Is(err, hexcodec.ErrMalformedPayload) {
			t.Errorf("DecodeBattery(%q) error = %v, want ErrMalformedPayload", payload, err)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		kind    logscan.Kind
		payload string
		want    string
		wantErr bool
	}{
		{name: "battery", kind: logscan.KindBattery, payload: "0005FF00", want: "60% (Medium)"},
		{name: "dongle firmware", kind: logscan.KindDongleFirmware, payload: "56312E342E3200FF", want: "V1.4.2"},
		{name: "dongle mac", kind: logscan.KindDongleMAC, payload: "AABBCCDDEEFF", want: "AA:BB:CC:DD:EE:FF"},
		{name: "short mac", kind: logscan.KindDongleMAC, payload: "AABBCCDDEE", wantErr: true},
		{name: "headset type", kind: logscan.KindHeadsetType, payload: "5338313000", want: "S810"},
		{name: "unset headset type", kind: logscan.KindHeadsetType, payload: "00000000", want: ""},
		{name: "headset firmware skips length byte", kind: logscan.KindHeadsetFirmware, payload: "0456322E3100", want: "V2.1"},
		{name: "multipoint", kind: logscan.KindMultipoint, payload: "000102", want: "enabled (2 connected)"},
		{name: "multipoint off", kind: logscan.KindMultipoint, payload: "000000", want: "disabled (0 connected)"},
		{name: "multipoint short", kind: logscan.KindMultipoint, payload: "0001", wantErr: true},
		{name: "eq mode", kind: logscan.KindEQMode, payload: "0002", want: "Bass Boost"},
		{name: "language", kind: logscan.KindVoiceLanguage, payload: "03", want: "Korean"},
		{name: "unknown language", kind: logscan.KindVoiceLanguage, payload: "09", want: "Unknown (9)"},
		{name: "connected", kind: logscan.KindConnection, payload: "01", want: "connected"},
		{name: "disconnected", kind: logscan.KindConnection, payload: "00", want: "disconnected"},
		{name: "bad hex", kind: logscan.KindConnection, payload: "0Z", wantErr: true},
		{name: "unknown kind", kind: logscan.Kind("bogus"), payload: "00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.kind, tt.payload)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Decode(%q, %q) = %q, want error", tt.kind, tt.payload, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(%q, %q) error: %v", tt.kind, tt.payload, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q, %q) = %q, want %q", tt.kind, tt.payload, got, tt.want)
			}
		})
	}
}

func TestEQModeName(t *testing.T) {
	tests := []struct {
		modeID      int
		headsetType string
		want        string
	}{
		{2, "S810", "Bass Boost"},
		{1, "UNKNOWN", "Vocal"}, // default table
		{1, "", "Vocal"},
		{2, "C102", "Vocal Booster"},
		{1, "C102", "Unknown (1)"}, // OpenComm has no mode 1
		{9, "S812", "Unknown (9)"},
	}
	for _, tt := range tests {
		if got := EQModeName(tt.modeID, tt.headsetType); got != tt.want {
			t.Errorf("EQModeName(%d, %q) = %q, want %q", tt.modeID, tt.headsetType, got, tt.want)
		}
	}
}

func TestModelName(t *testing.T) {
	if got := ModelName("S811"); got != "OpenRun Pro Mini" {
		t.Errorf("ModelName(S811) = %q", got)
	}
	if got := ModelName("Z999"); got != "Z999" {
		t.Errorf("ModelName falls back to the code, got %q", got)
	}
}

func hexString(data []byte) string {
	const digits = "0123456789ABCDEF"
	out := make([]byte, 0, len(data)*2)
	for _, b := range data {
		out = append(out, digits[b>>4], digits[b&0x0F])
	}
	return string(out)
}
