package audio

import (
	"strings"
	"testing"
)

func TestPickerRows(t *testing.T) {
	devices := []DeviceInfo{
		{ID: "1", Name: "HDA Intel PCH ALC295 Analog"},
		{ID: "2", Name: "AirPods Pro"},
	}
	rows := pickerRows(devices)

	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0].device != nil || rows[0].label != "system default" {
		t.Errorf("first row = %+v, want system default with nil device", rows[0])
	}
	if rows[1].device == nil || rows[1].device.ID != "1" {
		t.Errorf("second row device = %+v, want device 1", rows[1].device)
	}
	if !strings.Contains(rows[2].label, "Lower audio quality") {
		t.Errorf("bluetooth row label %q missing quality warning", rows[2].label)
	}
}

func TestIsBluetooth(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"AirPods Pro", true},
		{"Sony WH-1000XM4", true},
		{"Jabra Elite 65t", true},
		{"Headset (Bluetooth)", true},
		{"HDA Intel PCH ALC295 Analog", false},
		{"USB Condenser Microphone", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsBluetooth(tt.name); got != tt.want {
			t.Errorf("IsBluetooth(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
