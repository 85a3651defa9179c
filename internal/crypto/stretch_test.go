package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestStretchPassword_LegacyVectors(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		stretched string
	}{
		{"VexlVexl", "VexlVexl", "1c35abccf8a807e872ca3d982a721ca0e351c58585c80ab4242dc33c14d25d4565f3b573640811d8fa8a8895"},
		{"empty", "", "c39fb972e54eba7a25a1ba0e0eb65689d88d3e53f974f5fe5f01f0a4c0fafc5013e37362b0098cfccf65ea02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, iv := StretchPassword([]byte(tt.password))

			if len(key) != AESKeySize {
				t.Fatalf("key length = %d, want %d", len(key), AESKeySize)
			}
			if len(iv) != IVSize {
				t.Fatalf("iv length = %d, want %d", len(iv), IVSize)
			}

			if got := hex.EncodeToString(key); got != tt.stretched[:64] {
				t.Errorf("key = %s, want %s", got, tt.stretched[:64])
			}
			if got := hex.EncodeToString(iv); got != tt.stretched[64:]+"00000002" {
				t.Errorf("iv = %s, want %s00000002", got, tt.stretched[64:])
			}
		})
	}
}

func TestStretchPassword_Deterministic(t *testing.T) {
	k1, iv1 := StretchPassword([]byte("password"))
	k2, iv2 := StretchPassword([]byte("password"))
	if !bytes.Equal(k1, k2) || !bytes.Equal(iv1, iv2) {
		t.Error("StretchPassword is not deterministic")
	}

	k3, _ := StretchPassword([]byte("Password"))
	if bytes.Equal(k1, k3) {
		t.Error("different passwords produced the same key")
	}
}

func BenchmarkStretchPassword(b *testing.B) {
	password := []byte("MEEe3tRp7bx+hRA7osU/x+hhMVy6PiAfBR3Gu2r+RG0=")
	for i := 0; i < b.N; i++ {
		_, _ = StretchPassword(password)
	}
}
