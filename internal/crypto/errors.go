package crypto

import "errors"

var (
	// ErrUnknownCurve is returned when a curve name or OID is not registered.
	ErrUnknownCurve = errors.New("unknown curve")

	// ErrInvalidScalar is returned when a private scalar has the wrong size
	// or lies outside [1, n-1].
	ErrInvalidScalar = errors.New("invalid private scalar")

	// ErrInvalidPoint is returned when a public point cannot be decoded or
	// is not on the curve.
	ErrInvalidPoint = errors.New("invalid public point")

	// ErrInvalidPEM is returned when PEM text cannot be decoded or has an
	// unexpected block type.
	ErrInvalidPEM = errors.New("invalid PEM block")

	// ErrInvalidDER is returned when an ASN.1 key structure is malformed.
	ErrInvalidDER = errors.New("invalid DER structure")

	// ErrInvalidSignature is returned when a signature is not a DER
	// SEQUENCE of two INTEGERs.
	ErrInvalidSignature = errors.New("invalid signature encoding")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when the CTR IV size is invalid.
	ErrInvalidIVSize = errors.New("invalid IV size")

	// ErrRandomSource is returned when the random source fails to produce a
	// valid scalar.
	ErrRandomSource = errors.New("random source failure")
)
