package vexlcrypto

import (
	"io"

	"github.com/vexl-it/vexl-crypto-go/internal/crypto"
)

// PrivateKeyPemBase64 is a private key as base64 of PKCS#8 PEM text.
type PrivateKeyPemBase64 string

// PublicKeyPemBase64 is a public key as base64 of SubjectPublicKeyInfo PEM text.
type PublicKeyPemBase64 string

// KeyPair is an elliptic-curve key pair in its portable encoded form.
// PublicKey is always the key derived from PrivateKey.
type KeyPair struct {
	PrivateKey PrivateKeyPemBase64
	PublicKey  PublicKeyPemBase64
	Curve      Curve
}

// GenerateKeyPair generates a key pair on DefaultCurve.
func GenerateKeyPair() (KeyPair, error) {
	return GenerateKeyPairOnCurve(DefaultCurve)
}

// GenerateKeyPairOnCurve generates a key pair on c from a fresh random scalar.
func GenerateKeyPairOnCurve(c Curve) (KeyPair, error) {
	return generateKeyPair(c, nil)
}

// generateKeyPair draws the scalar from r, or crypto/rand when r is nil.
func generateKeyPair(c Curve, r io.Reader) (KeyPair, error) {
	kp, err := generateRawKeypair(c, r)
	if err != nil {
		return KeyPair{}, err
	}

	privPEM, err := crypto.MarshalPrivateKeyPEM(kp)
	if err != nil {
		return KeyPair{}, wrapKeyError("private", err)
	}

	pub, err := encodePublicKey(kp.Curve, kp.Point)
	if err != nil {
		return KeyPair{}, err
	}

	return KeyPair{
		PrivateKey: PrivateKeyPemBase64(crypto.ToBase64(privPEM)),
		PublicKey:  pub,
		Curve:      c,
	}, nil
}

func generateRawKeypair(c Curve, r io.Reader) (*crypto.Keypair, error) {
	backend, err := c.backend()
	if err != nil {
		return nil, err
	}

	kp, err := crypto.GenerateKeypair(backend, r)
	if err != nil {
		return nil, &CipherError{Op: "random", Err: err}
	}
	return kp, nil
}

// ImportPrivateKey decodes an encoded private key, infers its curve and
// recomputes the public key. PrivateKey in the result is the input unchanged.
func ImportPrivateKey(priv PrivateKeyPemBase64) (KeyPair, error) {
	kp, err := decodePrivateKey(priv)
	if err != nil {
		return KeyPair{}, err
	}

	pub, err := encodePublicKey(kp.Curve, kp.Point)
	if err != nil {
		return KeyPair{}, err
	}

	return KeyPair{
		PrivateKey: priv,
		PublicKey:  pub,
		Curve:      curveOf(kp.Curve),
	}, nil
}

// DerivePublicKey returns the public key for an encoded private key. The
// output is identical to the PublicKey produced when the pair was generated.
func DerivePublicKey(priv PrivateKeyPemBase64) (PublicKeyPemBase64, error) {
	kp, err := decodePrivateKey(priv)
	if err != nil {
		return "", err
	}
	return encodePublicKey(kp.Curve, kp.Point)
}

// ParsePublicKey validates an encoded public key and reports its curve.
func ParsePublicKey(pub PublicKeyPemBase64) (Curve, error) {
	backend, _, err := decodePublicKey(pub)
	if err != nil {
		return "", err
	}
	return curveOf(backend), nil
}

func decodePrivateKey(priv PrivateKeyPemBase64) (*crypto.Keypair, error) {
	pemBytes, err := crypto.DecodeBase64(string(priv))
	if err != nil {
		return nil, wrapKeyError("private", err)
	}

	backend, scalar, err := crypto.ParsePrivateKeyPEM(pemBytes)
	if err != nil {
		return nil, wrapKeyError("private", err)
	}

	if err := backend.ValidateScalar(scalar); err != nil {
		return nil, wrapKeyError("private", err)
	}

	kp, err := crypto.KeypairFromScalar(backend, scalar)
	if err != nil {
		return nil, wrapKeyError("private", err)
	}
	return kp, nil
}

func decodePublicKey(pub PublicKeyPemBase64) (crypto.Curve, []byte, error) {
	pemBytes, err := crypto.DecodeBase64(string(pub))
	if err != nil {
		return nil, nil, wrapKeyError("public", err)
	}

	backend, point, err := crypto.ParsePublicKeyPEM(pemBytes)
	if err != nil {
		return nil, nil, wrapKeyError("public", err)
	}
	return backend, point, nil
}

func encodePublicKey(backend crypto.Curve, point []byte) (PublicKeyPemBase64, error) {
	uncompressed, err := backend.UncompressedPoint(point)
	if err != nil {
		return "", wrapKeyError("public", err)
	}

	pubPEM, err := crypto.MarshalPublicKeyPEM(backend, uncompressed)
	if err != nil {
		return "", wrapKeyError("public", err)
	}
	return PublicKeyPemBase64(crypto.ToBase64(pubPEM)), nil
}
