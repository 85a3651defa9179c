package vexlcrypto

import (
	"crypto/sha256"

	"github.com/vexl-it/vexl-crypto-go/internal/crypto"
)

// ECDSASign signs the SHA-256 digest of challenge with key's private key and
// returns the base64 DER signature.
func ECDSASign(key KeyPair, challenge string) (string, error) {
	kp, err := decodePrivateKey(key.PrivateKey)
	if err != nil {
		return "", err
	}

	if key.Curve != "" && key.Curve != curveOf(kp.Curve) {
		return "", &KeyError{Kind: "private", Err: &CurveError{Name: string(key.Curve)}}
	}

	digest := sha256.Sum256([]byte(challenge))
	sig, err := kp.Curve.Sign(kp.Scalar, digest[:])
	if err != nil {
		return "", &CipherError{Op: "sign", Err: err}
	}

	return crypto.ToBase64(sig), nil
}

// ECDSAVerify reports whether signature is a valid signature of challenge
// under pub. A well-formed signature that does not match returns false and
// no error; only an unparseable signature or key is an error.
func ECDSAVerify(pub PublicKeyPemBase64, challenge, signature string) (bool, error) {
	backend, point, err := decodePublicKey(pub)
	if err != nil {
		return false, err
	}

	sig, err := crypto.DecodeBase64(signature)
	if err != nil {
		return false, &SignatureError{Err: err}
	}

	digest := sha256.Sum256([]byte(challenge))
	ok, err := backend.Verify(point, digest[:], sig)
	if err != nil {
		return false, &SignatureError{Err: err}
	}
	return ok, nil
}
