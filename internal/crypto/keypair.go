package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// randReader is the random source used for key generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// Keypair is a raw elliptic-curve key pair.
type Keypair struct {
	// Curve is the curve backend the key belongs to.
	Curve Curve
	// Scalar is the private scalar, big-endian, Curve.ScalarSize() bytes.
	Scalar []byte
	// Point is the uncompressed SEC1 public point.
	Point []byte
}

// GenerateKeypair draws a random scalar on curve from r (crypto/rand when
// nil) using rejection sampling and computes its public point.
func GenerateKeypair(curve Curve, r io.Reader) (*Keypair, error) {
	if r == nil {
		r = randReader
	}
	if r == nil {
		r = rand.Reader
	}

	scalar := make([]byte, curve.ScalarSize())
	for i := 0; i < maxScalarAttempts; i++ {
		if _, err := io.ReadFull(r, scalar); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
		}

		err := curve.ValidateScalar(scalar)
		if errors.Is(err, ErrInvalidScalar) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return KeypairFromScalar(curve, scalar)
	}

	return nil, fmt.Errorf("%w: no valid scalar after %d attempts", ErrRandomSource, maxScalarAttempts)
}

// KeypairFromScalar rebuilds a key pair from a private scalar. The public
// point is recomputed, never taken from the encoding.
func KeypairFromScalar(curve Curve, scalar []byte) (*Keypair, error) {
	point, err := curve.PublicPoint(scalar, false)
	if err != nil {
		return nil, err
	}

	s := make([]byte, len(scalar))
	copy(s, scalar)

	return &Keypair{
		Curve:  curve,
		Scalar: s,
		Point:  point,
	}, nil
}

// CompressedPoint returns the SEC1 compressed form of the public point.
func (k *Keypair) CompressedPoint() ([]byte, error) {
	return k.Curve.PublicPoint(k.Scalar, true)
}
