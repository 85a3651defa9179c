package vexlcrypto

import (
	"testing"
)

const dummyPhoneNumber = "+420733333333"

func TestHMACSign_LegacyVector(t *testing.T) {
	got := HMACSign(dummyPhoneNumber, "VexlVexl")
	want := "skiHM9nxMU+g0eBvyYfxeq60Cg0v22wQYk0uPfR+fyM="
	if got != want {
		t.Errorf("HMACSign() = %q, want %q", got, want)
	}
}

func TestHMACSign_Deterministic(t *testing.T) {
	if HMACSign("data", "key") != HMACSign("data", "key") {
		t.Error("HMACSign is not deterministic")
	}
	if HMACSign("data", "key") == HMACSign("data", "other") {
		t.Error("different passwords produced the same MAC")
	}
	if HMACSign("data", "key") == HMACSign("datb", "key") {
		t.Error("different data produced the same MAC")
	}
}

func TestHMACVerify(t *testing.T) {
	mac := HMACSign(dummyPhoneNumber, "VexlVexl")

	tests := []struct {
		name     string
		data     string
		password string
		mac      string
		want     bool
	}{
		{"valid", dummyPhoneNumber, "VexlVexl", mac, true},
		{"wrong password", dummyPhoneNumber, "vexlvexl", mac, false},
		{"wrong data", "+420733333334", "VexlVexl", mac, false},
		{"not base64", dummyPhoneNumber, "VexlVexl", "!!!", false},
		{"truncated", dummyPhoneNumber, "VexlVexl", mac[:20], false},
		{"empty", dummyPhoneNumber, "VexlVexl", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HMACVerify(tt.data, tt.password, tt.mac); got != tt.want {
				t.Errorf("HMACVerify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkHMACSign(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = HMACSign(dummyPhoneNumber, "VexlVexl")
	}
}
