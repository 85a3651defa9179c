package vexlcrypto

import (
	"errors"
	"fmt"

	"github.com/vexl-it/vexl-crypto-go/internal/crypto"
	"github.com/vexl-it/vexl-crypto-go/internal/envelope"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrUnsupportedCurve is returned when a curve name matches no known alias.
	ErrUnsupportedCurve = errors.New("unsupported curve")

	// ErrInvalidKeyEncoding is returned when a private or public key cannot
	// be decoded, names an unknown curve or holds an out-of-range value.
	ErrInvalidKeyEncoding = errors.New("invalid key encoding")

	// ErrMalformedEnvelope is returned when a hybrid-cipher envelope cannot
	// be split into its fields.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrDecryptionFailed is returned when key agreement or the cipher step
	// fails during decryption.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrCipher is returned when password stretching or the cipher primitive fails.
	ErrCipher = errors.New("cipher error")

	// ErrInvalidSignatureEncoding is returned when a signature cannot be parsed.
	ErrInvalidSignatureEncoding = errors.New("invalid signature encoding")
)

var errEmptySecret = errors.New("provider returned an empty secret")

// VexlCryptoError is implemented by all errors returned from this package.
type VexlCryptoError interface {
	error
	VexlCryptoError() // marker method
}

// CurveError reports a curve name that is not in the alias table.
type CurveError struct {
	Name string
}

func (e *CurveError) Error() string {
	return fmt.Sprintf("unsupported curve %q", e.Name)
}

// Is implements errors.Is for sentinel error matching.
func (e *CurveError) Is(target error) bool {
	return target == ErrUnsupportedCurve
}

// VexlCryptoError implements the VexlCryptoError interface.
func (e *CurveError) VexlCryptoError() {}

// KeyError reports a key that could not be decoded.
type KeyError struct {
	Kind string // "private", "public"
	Err  error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("invalid %s key encoding: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyError) Is(target error) bool {
	return target == ErrInvalidKeyEncoding
}

// VexlCryptoError implements the VexlCryptoError interface.
func (e *KeyError) VexlCryptoError() {}

// EnvelopeError reports an envelope that could not be parsed.
type EnvelopeError struct {
	Field string // empty when the framing itself is broken
	Err   error
}

func (e *EnvelopeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed envelope: field %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("malformed envelope: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *EnvelopeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EnvelopeError) Is(target error) bool {
	return target == ErrMalformedEnvelope
}

// VexlCryptoError implements the VexlCryptoError interface.
func (e *EnvelopeError) VexlCryptoError() {}

// DecryptionError represents a failure to decrypt a hybrid-cipher envelope.
// A wrong key is not a failure; it yields wrong plaintext.
type DecryptionError struct {
	Stage string // "ecdh", "cipher"
	Err   error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("decryption failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptionFailed
}

// VexlCryptoError implements the VexlCryptoError interface.
func (e *DecryptionError) VexlCryptoError() {}

// CipherError represents a failure of the symmetric layer or, during
// encryption, of key agreement.
type CipherError struct {
	Op  string // "encrypt", "decrypt", "ecdh", "random", "sign"
	Err error
}

func (e *CipherError) Error() string {
	return fmt.Sprintf("cipher error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *CipherError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *CipherError) Is(target error) bool {
	return target == ErrCipher
}

// VexlCryptoError implements the VexlCryptoError interface.
func (e *CipherError) VexlCryptoError() {}

// SignatureError reports a signature that is not base64 DER.
type SignatureError struct {
	Err error
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("invalid signature encoding: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *SignatureError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *SignatureError) Is(target error) bool {
	return target == ErrInvalidSignatureEncoding
}

// VexlCryptoError implements the VexlCryptoError interface.
func (e *SignatureError) VexlCryptoError() {}

// wrapEnvelopeError converts internal envelope errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapEnvelopeError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErr *envelope.FieldError
	if errors.As(err, &fieldErr) {
		return &EnvelopeError{Field: fieldErr.Field, Err: fieldErr.Err}
	}

	return &EnvelopeError{Err: err}
}

// wrapKeyError converts internal key decoding errors to public errors.
func wrapKeyError(kind string, err error) error {
	if err == nil {
		return nil
	}
	return &KeyError{Kind: kind, Err: err}
}

// wrapECDHError classifies a provider failure during decryption. An
// ephemeral point that is not on the curve means the envelope itself is bad.
func wrapECDHError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, crypto.ErrInvalidPoint) {
		return &EnvelopeError{Field: envelope.FieldEphemeralPublicKey, Err: err}
	}

	return &DecryptionError{Stage: "ecdh", Err: err}
}
