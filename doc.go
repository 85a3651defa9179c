// Package vexlcrypto is the cryptographic core of the Vexl clients. It is
// wire-compatible with the legacy Vexl crypto library.
//
// It provides:
//
//   - Key pairs on secp256k1 (default) and secp224r1, exchanged as base64 of
//     PEM text
//   - ECIES-style hybrid encryption for a recipient's public key
//   - A deterministic password-stretched AES-256-CTR cipher framed like GCM
//     but without a tag
//   - ECDSA signatures over SHA-256 and HMAC-SHA256
//   - A swappable ECDH provider for benchmarking alternative backends
//
// Basic usage:
//
//	keys, err := vexlcrypto.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	envelope, err := vexlcrypto.EciesEncrypt(ctx, keys.PublicKey, "hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := vexlcrypto.EciesDecrypt(ctx, keys.PrivateKey, envelope)
//
// # No Integrity Protection
//
// Neither cipher authenticates its output. Decrypting with the wrong key or
// decrypting a modified ciphertext returns wrong plaintext and a nil error.
// Decryption also strips trailing zero bytes, so plaintexts ending in NUL do
// not round-trip. Both properties are required by the legacy format.
//
// # ECDH Providers
//
// Every hybrid encryption and decryption computes its shared secret through
// an [ECDHProvider]. The process-wide provider is [NativeProvider] until
// [SetECDHProvider] replaces it:
//
//	vexlcrypto.SetECDHProvider(vexlcrypto.SimulatedProvider{Delay: time.Millisecond})
//	defer vexlcrypto.ResetECDHProvider()
//
// A computation that has already started keeps the provider it started
// with. Use [WithProvider] or [WithProviderSlot] to give a [HybridCipher] a
// provider that is not process-wide.
//
// # Error Handling
//
// All errors can be matched with errors.Is against the sentinel errors:
//
//	plaintext, err := vexlcrypto.EciesDecrypt(ctx, priv, data)
//	if errors.Is(err, vexlcrypto.ErrMalformedEnvelope) {
//	    // not an envelope
//	}
//
// Or with errors.As for details:
//
//	var envErr *vexlcrypto.EnvelopeError
//	if errors.As(err, &envErr) {
//	    fmt.Println("bad field:", envErr.Field)
//	}
package vexlcrypto
