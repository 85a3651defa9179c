package vexlcrypto

import (
	"github.com/vexl-it/vexl-crypto-go/internal/crypto"
)

// AESGCMIgnoreTagEncrypt encrypts data with a key and IV stretched from
// password and returns the base64 of the raw AES-256-CTR output.
//
// The output has the same length as data and carries no tag. It is
// deterministic: the same data and password always give the same result.
func AESGCMIgnoreTagEncrypt(data, password string) (string, error) {
	ciphertext, err := crypto.SealWithPassword([]byte(password), []byte(data))
	if err != nil {
		return "", &CipherError{Op: "encrypt", Err: err}
	}
	return crypto.ToBase64(ciphertext), nil
}

// AESGCMIgnoreTagDecrypt reverses AESGCMIgnoreTagEncrypt and strips trailing
// zero bytes from the result. Plaintexts that end in NUL therefore do not
// round-trip. A wrong password yields garbage, not an error.
func AESGCMIgnoreTagDecrypt(ciphertext, password string) (string, error) {
	raw, err := crypto.DecodeBase64(ciphertext)
	if err != nil {
		return "", &CipherError{Op: "decrypt", Err: err}
	}

	plaintext, err := crypto.OpenWithPassword([]byte(password), raw)
	if err != nil {
		return "", &CipherError{Op: "decrypt", Err: err}
	}
	return string(plaintext), nil
}
