package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// xorKeyStreamCTR runs AES-256 in counter mode over src. Encryption and
// decryption are the same operation.
func xorKeyStreamCTR(key, iv, src []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}

	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidIVSize, len(iv), IVSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	dst := make([]byte, len(src))
	cipher.NewCTR(block, iv).XORKeyStream(dst, src)
	return dst, nil
}

// EncryptCTR encrypts plaintext with AES-256-CTR. No padding is applied and
// no tag is produced: len(ciphertext) == len(plaintext).
func EncryptCTR(key, iv, plaintext []byte) ([]byte, error) {
	return xorKeyStreamCTR(key, iv, plaintext)
}

// DecryptCTR decrypts AES-256-CTR ciphertext. It cannot detect tampering or
// a wrong key; both produce garbage plaintext without an error.
func DecryptCTR(key, iv, ciphertext []byte) ([]byte, error) {
	return xorKeyStreamCTR(key, iv, ciphertext)
}

// SealWithPassword stretches password and encrypts plaintext with the result.
func SealWithPassword(password, plaintext []byte) ([]byte, error) {
	key, iv := StretchPassword(password)
	return EncryptCTR(key, iv, plaintext)
}

// OpenWithPassword stretches password, decrypts ciphertext and strips the
// trailing zero padding left by legacy producers.
func OpenWithPassword(password, ciphertext []byte) ([]byte, error) {
	key, iv := StretchPassword(password)
	plaintext, err := DecryptCTR(key, iv, ciphertext)
	if err != nil {
		return nil, err
	}
	return TrimTrailingZeros(plaintext), nil
}
