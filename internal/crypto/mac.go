package crypto

import (
	"crypto/hmac"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// EnvelopeMAC computes the MAC carried in the envelope trailer. The key is
// bytes 44..108 of PBKDF2-HMAC-SHA256 over the shared secret with the fixed
// salt and iteration count. The MAC covers the base64 text of the
// ciphertext, not the raw bytes. Receivers do not check it.
func EnvelopeMAC(sharedSecret []byte, ciphertextB64 string) []byte {
	stretched := pbkdf2.Key(sharedSecret, []byte(PBKDF2Salt), PBKDF2Iterations, MACStretchedSize, sha256.New)

	mac := hmac.New(sha256.New, stretched[StretchedSize:MACStretchedSize])
	mac.Write([]byte(ciphertextB64))
	return mac.Sum(nil)
}
