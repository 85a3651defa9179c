package crypto

import (
	"encoding/asn1"
	"fmt"
)

// Curve is the arithmetic backend for one named elliptic curve. Scalars are
// big-endian and exactly ScalarSize bytes long; points use SEC1 encoding.
type Curve interface {
	// Name returns the canonical curve name, e.g. "secp256k1".
	Name() string

	// OID returns the named-curve object identifier used in key encodings.
	OID() asn1.ObjectIdentifier

	// ScalarSize returns the private scalar size in bytes.
	ScalarSize() int

	// ValidateScalar checks that scalar is ScalarSize bytes and in [1, n-1].
	ValidateScalar(scalar []byte) error

	// PublicPoint computes scalar*G, SEC1 encoded.
	PublicPoint(scalar []byte, compressed bool) ([]byte, error)

	// ValidatePoint checks that point decodes (compressed or uncompressed)
	// to a point on the curve.
	ValidatePoint(point []byte) error

	// UncompressedPoint re-encodes point in uncompressed form.
	UncompressedPoint(point []byte) ([]byte, error)

	// SharedSecret returns the x-coordinate of scalar*point, padded to the
	// field size.
	SharedSecret(scalar, point []byte) ([]byte, error)

	// Sign returns a DER ECDSA signature over digest.
	Sign(scalar, digest []byte) ([]byte, error)

	// Verify reports whether sig is a valid DER ECDSA signature over digest.
	// It returns ErrInvalidSignature only when sig cannot be parsed.
	Verify(point, digest, sig []byte) (bool, error)
}

var (
	// oidPublicKeyEC is id-ecPublicKey from RFC 5480.
	oidPublicKeyEC = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}

	oidSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
	oidSecp224r1 = asn1.ObjectIdentifier{1, 3, 132, 0, 33}
)

var curves = []Curve{
	secp256k1Curve{},
	p224Curve{},
}

// CurveByName returns the backend registered under a canonical name.
func CurveByName(name string) (Curve, error) {
	for _, c := range curves {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// CurveByOID returns the backend for a named-curve OID.
func CurveByOID(oid asn1.ObjectIdentifier) (Curve, error) {
	for _, c := range curves {
		if c.OID().Equal(oid) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: OID %s", ErrUnknownCurve, oid)
}

// ZeroPad left-pads b with zeros to length. Longer inputs are returned
// unchanged so callers can reject them.
func ZeroPad(b []byte, length int) []byte {
	if len(b) >= length {
		return b
	}

	result := make([]byte, length)
	copy(result[length-len(b):], b)
	return result
}
