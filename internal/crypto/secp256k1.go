package crypto

import (
	"encoding/asn1"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// secp256k1Curve is backed by the decred secp256k1 implementation.
type secp256k1Curve struct{}

func (secp256k1Curve) Name() string { return "secp256k1" }

func (secp256k1Curve) OID() asn1.ObjectIdentifier { return oidSecp256k1 }

func (secp256k1Curve) ScalarSize() int { return secp256k1.PrivKeyBytesLen }

func (c secp256k1Curve) ValidateScalar(scalar []byte) error {
	if len(scalar) != c.ScalarSize() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidScalar, len(scalar), c.ScalarSize())
	}

	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(scalar); overflow || k.IsZero() {
		return fmt.Errorf("%w: out of range", ErrInvalidScalar)
	}
	return nil
}

func (c secp256k1Curve) PublicPoint(scalar []byte, compressed bool) ([]byte, error) {
	if err := c.ValidateScalar(scalar); err != nil {
		return nil, err
	}

	pub := secp256k1.PrivKeyFromBytes(scalar).PubKey()
	if compressed {
		return pub.SerializeCompressed(), nil
	}
	return pub.SerializeUncompressed(), nil
}

func (secp256k1Curve) parsePoint(point []byte) (*secp256k1.PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(point)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return pub, nil
}

func (c secp256k1Curve) ValidatePoint(point []byte) error {
	_, err := c.parsePoint(point)
	return err
}

func (c secp256k1Curve) UncompressedPoint(point []byte) ([]byte, error) {
	pub, err := c.parsePoint(point)
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed(), nil
}

func (c secp256k1Curve) SharedSecret(scalar, point []byte) ([]byte, error) {
	if err := c.ValidateScalar(scalar); err != nil {
		return nil, err
	}

	pub, err := c.parsePoint(point)
	if err != nil {
		return nil, err
	}

	return secp256k1.GenerateSharedSecret(secp256k1.PrivKeyFromBytes(scalar), pub), nil
}

func (c secp256k1Curve) Sign(scalar, digest []byte) ([]byte, error) {
	if err := c.ValidateScalar(scalar); err != nil {
		return nil, err
	}

	// RFC 6979 deterministic nonce.
	sig := ecdsa.Sign(secp256k1.PrivKeyFromBytes(scalar), digest)
	return sig.Serialize(), nil
}

func (c secp256k1Curve) Verify(point, digest, sig []byte) (bool, error) {
	r, s, err := ParseSignature(sig)
	if err != nil {
		return false, err
	}

	pub, err := c.parsePoint(point)
	if err != nil {
		return false, err
	}

	rs, ok := toModNScalar(r)
	if !ok {
		return false, nil
	}
	ss, ok := toModNScalar(s)
	if !ok {
		return false, nil
	}

	return ecdsa.NewSignature(rs, ss).Verify(digest, pub), nil
}

// toModNScalar converts v to a scalar mod n, rejecting zero, negative and
// out-of-range values.
func toModNScalar(v *big.Int) (*secp256k1.ModNScalar, bool) {
	if v.Sign() <= 0 || v.BitLen() > 256 {
		return nil, false
	}

	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(v.Bytes()); overflow || k.IsZero() {
		return nil, false
	}
	return &k, true
}
