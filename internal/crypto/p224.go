package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/asn1"
	"fmt"
	"math/big"
)

// p224Curve is NIST P-224 (secp224r1) from crypto/elliptic.
type p224Curve struct{}

func (p224Curve) Name() string { return "secp224r1" }

func (p224Curve) OID() asn1.ObjectIdentifier { return oidSecp224r1 }

func (p224Curve) ScalarSize() int { return (elliptic.P224().Params().BitSize + 7) / 8 }

func (c p224Curve) ValidateScalar(scalar []byte) error {
	if len(scalar) != c.ScalarSize() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidScalar, len(scalar), c.ScalarSize())
	}

	k := new(big.Int).SetBytes(scalar)
	if k.Sign() == 0 || k.Cmp(elliptic.P224().Params().N) >= 0 {
		return fmt.Errorf("%w: out of range", ErrInvalidScalar)
	}
	return nil
}

func (c p224Curve) PublicPoint(scalar []byte, compressed bool) ([]byte, error) {
	if err := c.ValidateScalar(scalar); err != nil {
		return nil, err
	}

	x, y := elliptic.P224().ScalarBaseMult(scalar)
	return c.encode(x, y, compressed), nil
}

func (c p224Curve) encode(x, y *big.Int, compressed bool) []byte {
	if compressed {
		return elliptic.MarshalCompressed(elliptic.P224(), x, y)
	}

	size := c.ScalarSize()
	out := make([]byte, 1+2*size)
	out[0] = 0x04
	x.FillBytes(out[1 : 1+size])
	y.FillBytes(out[1+size:])
	return out
}

// parsePoint decodes a compressed or uncompressed SEC1 point and checks
// that it lies on the curve.
func (c p224Curve) parsePoint(point []byte) (x, y *big.Int, err error) {
	curve := elliptic.P224()
	size := c.ScalarSize()

	switch {
	case len(point) == 1+size && (point[0] == 0x02 || point[0] == 0x03):
		x, y = elliptic.UnmarshalCompressed(curve, point)
	case len(point) == 1+2*size && point[0] == 0x04:
		x = new(big.Int).SetBytes(point[1 : 1+size])
		y = new(big.Int).SetBytes(point[1+size:])
		if !curve.IsOnCurve(x, y) {
			x, y = nil, nil
		}
	}

	if x == nil {
		return nil, nil, fmt.Errorf("%w: not a P-224 point", ErrInvalidPoint)
	}
	return x, y, nil
}

func (c p224Curve) ValidatePoint(point []byte) error {
	_, _, err := c.parsePoint(point)
	return err
}

func (c p224Curve) UncompressedPoint(point []byte) ([]byte, error) {
	x, y, err := c.parsePoint(point)
	if err != nil {
		return nil, err
	}
	return c.encode(x, y, false), nil
}

func (c p224Curve) SharedSecret(scalar, point []byte) ([]byte, error) {
	if err := c.ValidateScalar(scalar); err != nil {
		return nil, err
	}

	x, y, err := c.parsePoint(point)
	if err != nil {
		return nil, err
	}

	sx, _ := elliptic.P224().ScalarMult(x, y, scalar)
	return sx.FillBytes(make([]byte, c.ScalarSize())), nil
}

func (c p224Curve) privateKey(scalar []byte) (*ecdsa.PrivateKey, error) {
	if err := c.ValidateScalar(scalar); err != nil {
		return nil, err
	}

	x, y := elliptic.P224().ScalarBaseMult(scalar)
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: elliptic.P224(), X: x, Y: y},
		D:         new(big.Int).SetBytes(scalar),
	}, nil
}

func (c p224Curve) Sign(scalar, digest []byte) ([]byte, error) {
	priv, err := c.privateKey(scalar)
	if err != nil {
		return nil, err
	}

	r, sv, err := ecdsa.Sign(rand.Reader, priv, digest)
	if err != nil {
		return nil, err
	}
	return MarshalSignature(r, sv)
}

func (c p224Curve) Verify(point, digest, sig []byte) (bool, error) {
	if _, _, err := ParseSignature(sig); err != nil {
		return false, err
	}

	x, y, err := c.parsePoint(point)
	if err != nil {
		return false, err
	}

	pub := &ecdsa.PublicKey{Curve: elliptic.P224(), X: x, Y: y}
	return ecdsa.VerifyASN1(pub, digest, sig), nil
}
