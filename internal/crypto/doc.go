// Package crypto provides the low-level primitives behind the legacy Vexl
// crypto format: curve arithmetic for secp256k1 and secp224r1, PEM/DER key
// codecs, ECDSA signature parsing, password stretching and the AES-256-CTR
// keystream cipher.
//
// # Algorithm Suite
//
//   - secp256k1 via github.com/decred/dcrd/dcrec/secp256k1/v4 (ECDH, RFC 6979 ECDSA).
//
//   - secp224r1 (NIST P-224) via crypto/elliptic and crypto/ecdsa.
//
//   - PBKDF2-HMAC-SHA1 with a fixed salt and 2000 iterations, producing a
//     32-byte AES key and a 12-byte nonce base.
//
//   - AES-256-CTR with IV = nonce base || 00 00 00 02. This reproduces the
//     keystream AES-GCM would use, without computing or checking the tag.
//
//   - PBKDF2-HMAC-SHA256 and HMAC-SHA256 for the envelope trailer MAC.
//
// # Security Model
//
// The symmetric layer is unauthenticated and deterministic: the same
// password and plaintext always produce the same ciphertext, and tampered
// ciphertext decrypts to garbage instead of failing. Both properties are
// required for compatibility with existing producers and must not be
// changed here.
//
// # Key Encoding
//
// Private keys are PKCS#8 "PRIVATE KEY" blocks wrapping a SEC1 structure;
// SEC1 "EC PRIVATE KEY" blocks are accepted on input. Public keys are
// SubjectPublicKeyInfo "PUBLIC KEY" blocks with an uncompressed point.
package crypto
