// Package envelope encodes and decodes the legacy hybrid-cipher envelope.
//
// # Wire Format
//
// An envelope is three fields concatenated without separators between
// them. Each field is the decimal length of its base64 text, the letter
// 'A', then the base64 text itself:
//
//	<len>A<ciphertext b64><len>A<mac b64><len>A<ephemeral public key b64>
//
// For example a P-224 envelope starts "172A…" for a 128-byte ciphertext,
// continues "44A…" for a 32-byte MAC and ends "40A…" for a 29-byte
// compressed point.
//
// Field contents are opaque to this package; callers decide what the MAC
// means and whether the point is valid.
package envelope
