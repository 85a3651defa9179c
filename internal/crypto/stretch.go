package crypto

import (
	"crypto/sha1"

	"golang.org/x/crypto/pbkdf2"
)

// StretchPassword derives the AES key and CTR IV from password using
// PBKDF2-HMAC-SHA1 with the fixed salt and iteration count.
//
// The first 32 bytes form the key, the next 12 the nonce base; the IV is the
// nonce base followed by 00 00 00 02. The result is fully deterministic, so
// the same password always yields the same keystream.
func StretchPassword(password []byte) (key, iv []byte) {
	stretched := pbkdf2.Key(password, []byte(PBKDF2Salt), PBKDF2Iterations, StretchedSize, sha1.New)

	key = stretched[:AESKeySize]
	iv = make([]byte, 0, IVSize)
	iv = append(iv, stretched[AESKeySize:StretchedSize]...)
	iv = append(iv, counterSuffix[:]...)
	return key, iv
}
