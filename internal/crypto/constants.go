package crypto

const (
	// PBKDF2Salt is the fixed salt used when stretching passwords and
	// ECDH shared secrets into AES key material.
	PBKDF2Salt = "vexlvexl"
	// PBKDF2Iterations is the fixed PBKDF2-HMAC-SHA1 iteration count.
	PBKDF2Iterations = 2000

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// NonceBaseSize is the size of the derived part of the CTR IV in bytes.
	NonceBaseSize = 12
	// StretchedSize is the number of bytes taken from PBKDF2: key followed by nonce base.
	StretchedSize = AESKeySize + NonceBaseSize
	// IVSize is the size of the full AES-CTR IV (nonce base plus counter suffix).
	IVSize = 16

	// MACKeySize is the size of the HMAC-SHA256 key for the envelope MAC.
	MACKeySize = 64
	// MACStretchedSize is the PBKDF2-HMAC-SHA256 output length; the MAC key
	// is the tail that follows the first StretchedSize bytes.
	MACStretchedSize = StretchedSize + MACKeySize

	// EnvelopeBlockSize is the block that hybrid-encrypted plaintext is zero
	// padded to before encryption.
	EnvelopeBlockSize = 128

	// maxScalarAttempts bounds rejection sampling during key generation.
	maxScalarAttempts = 64
)

// counterSuffix is appended to the nonce base. It matches the initial
// counter value GCM would use for the first block of ciphertext.
var counterSuffix = [4]byte{0x00, 0x00, 0x00, 0x02}
