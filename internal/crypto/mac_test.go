package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestEnvelopeMAC_Vector(t *testing.T) {
	got := hex.EncodeToString(EnvelopeMAC([]byte("bar"), "YWJj"))
	want := "ffd2ec9886d18566f9f6d0ae43482d266ff303a2cff7a5ed74adb44cc639b927"
	if got != want {
		t.Errorf("EnvelopeMAC() = %s, want %s", got, want)
	}
}

func TestEnvelopeMAC_LegacyP224Envelope(t *testing.T) {
	secret := mustHex(t, "fdb8fa80af6cfcfb3b2f1cc73f980de6016de2e68149942db467b289")
	ciphertext := "r+8ScAMaOn02z6bkOcUtorl6DtxHpXbWsBETrqYvhejx4090WFpLkuhoyzTypfq0woiNm/crqBU9Gw54w2h3qD1BhFwI0TwqUg9grhRd2X/mos4R6V1FtL9O7KAkg4cT72NX3KzWJ74mEjYDPMq8UUtL8ea5bHJgeS88SKivNEY="

	got := EnvelopeMAC(secret, ciphertext)
	want := mustBase64(t, "oDQx3spJHWDcfV5iIwT+aU7AAgNMcGCDg9iiS+NNQbU=")
	if !bytes.Equal(got, want) {
		t.Errorf("EnvelopeMAC() = %x, want %x", got, want)
	}
}

func TestEnvelopeMAC_DependsOnInputs(t *testing.T) {
	base := EnvelopeMAC([]byte("bar"), "YWJj")

	tests := []struct {
		name       string
		secret     []byte
		ciphertext string
	}{
		{"secret", []byte("baz"), "YWJj"},
		{"ciphertext", []byte("bar"), "YWJk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnvelopeMAC(tt.secret, tt.ciphertext)
			if len(got) != 32 {
				t.Errorf("len(EnvelopeMAC()) = %d, want 32", len(got))
			}
			if bytes.Equal(got, base) {
				t.Errorf("changing the %s did not change the MAC", tt.name)
			}
		})
	}
}
