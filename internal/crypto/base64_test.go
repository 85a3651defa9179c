package crypto

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestToBase64_StandardEncoding(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"empty", []byte{}, ""},
		{"hello", []byte("hello"), "aGVsbG8="},
		{"hello world", []byte("hello world"), "aGVsbG8gd29ybGQ="},
		{"std alphabet", []byte{0xfb, 0xff, 0xbf}, "+/+/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToBase64(tt.data); got != tt.expected {
				t.Errorf("ToBase64() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBase64StandardRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello")},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large", make([]byte, 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := ToBase64(tt.data)
			decoded, err := DecodeBase64(encoded)
			if err != nil {
				t.Fatalf("DecodeBase64() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip failed: got %v, want %v", decoded, tt.data)
			}
		})
	}
}

func TestToBase64_WithPadding(t *testing.T) {
	for _, data := range [][]byte{[]byte("a"), []byte("ab")} {
		if encoded := ToBase64(data); !strings.HasSuffix(encoded, "=") {
			t.Errorf("encoded string should contain padding: %s", encoded)
		}
	}
}

func TestDecodeBase64_MultipleFormats(t *testing.T) {
	want := []byte{0xfb, 0xff, 0xbf, 0x61}

	tests := []struct {
		name    string
		encoded string
	}{
		{"standard padded", "+/+/YQ=="},
		{"standard raw", "+/+/YQ"},
		{"url padded", "-_-_YQ=="},
		{"url raw", "-_-_YQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase64(tt.encoded)
			if err != nil {
				t.Fatalf("DecodeBase64() error = %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("DecodeBase64() = %x, want %x", got, want)
			}
		})
	}

	if _, err := DecodeBase64("!!!"); err == nil {
		t.Error("DecodeBase64() should reject invalid input")
	}
}

func BenchmarkToBase64(b *testing.B) {
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i % 256)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToBase64(data)
	}
}

// Example_base64Encoding shows the encoding used for every wire value.
func Example_base64Encoding() {
	fmt.Println(ToBase64([]byte("Hello, World!")))
	// Output: SGVsbG8sIFdvcmxkIQ==
}
