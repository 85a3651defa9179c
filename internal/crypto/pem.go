package crypto

import (
	encoding_asn1 "encoding/asn1"
	"encoding/pem"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// PEM block types.
const (
	PrivateKeyPEMType   = "PRIVATE KEY"
	ECPrivateKeyPEMType = "EC PRIVATE KEY"
	PublicKeyPEMType    = "PUBLIC KEY"
)

const ecPrivKeyVersion = 1

var (
	tagECParams    = asn1.Tag(0).ContextSpecific().Constructed()
	tagECPublicKey = asn1.Tag(1).ContextSpecific().Constructed()
)

// MarshalPrivateKeyPEM encodes a private key as a PKCS#8 "PRIVATE KEY" PEM
// block. The inner SEC1 structure omits the curve parameters (they live in
// the PKCS#8 algorithm identifier) and carries the uncompressed public point.
func MarshalPrivateKeyPEM(kp *Keypair) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		addAlgorithmIdentifier(b, kp.Curve)
		b.AddASN1(asn1.OCTET_STRING, func(b *cryptobyte.Builder) {
			b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1Int64(ecPrivKeyVersion)
				b.AddASN1OctetString(kp.Scalar)
				b.AddASN1(tagECPublicKey, func(b *cryptobyte.Builder) {
					b.AddASN1BitString(kp.Point)
				})
			})
		})
	})

	der, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("marshal private key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: PrivateKeyPEMType, Bytes: der}), nil
}

// MarshalPublicKeyPEM encodes an uncompressed point as a SubjectPublicKeyInfo
// "PUBLIC KEY" PEM block.
func MarshalPublicKeyPEM(curve Curve, point []byte) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addAlgorithmIdentifier(b, curve)
		b.AddASN1BitString(point)
	})

	der, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: PublicKeyPEMType, Bytes: der}), nil
}

func addAlgorithmIdentifier(b *cryptobyte.Builder, curve Curve) {
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oidPublicKeyEC)
		b.AddASN1ObjectIdentifier(curve.OID())
	})
}

// ParsePrivateKeyPEM decodes a PKCS#8 "PRIVATE KEY" or SEC1 "EC PRIVATE KEY"
// block and returns the curve and the raw scalar. The scalar is not range
// checked here.
func ParsePrivateKeyPEM(data []byte) (Curve, []byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, nil, ErrInvalidPEM
	}

	switch block.Type {
	case PrivateKeyPEMType:
		return parsePKCS8(block.Bytes)
	case ECPrivateKeyPEMType:
		return parseSEC1(block.Bytes, nil)
	default:
		return nil, nil, fmt.Errorf("%w: unexpected type %q", ErrInvalidPEM, block.Type)
	}
}

func parsePKCS8(der []byte) (Curve, []byte, error) {
	var (
		seq, sec1 cryptobyte.String
		version   int64
	)

	input := cryptobyte.String(der)
	if !input.ReadASN1(&seq, asn1.SEQUENCE) || !input.Empty() ||
		!seq.ReadASN1Integer(&version) || version != 0 {
		return nil, nil, fmt.Errorf("%w: PKCS#8 header", ErrInvalidDER)
	}

	curve, err := readAlgorithmIdentifier(&seq)
	if err != nil {
		return nil, nil, err
	}

	if !seq.ReadASN1(&sec1, asn1.OCTET_STRING) {
		return nil, nil, fmt.Errorf("%w: PKCS#8 private key", ErrInvalidDER)
	}

	return parseSEC1(sec1, curve)
}

// parseSEC1 reads an ECPrivateKey structure (RFC 5915). outer is the curve
// from an enclosing PKCS#8 wrapper, or nil when the block stands alone.
func parseSEC1(der []byte, outer Curve) (Curve, []byte, error) {
	var (
		seq, scalar, params cryptobyte.String
		version             int64
		hasParams           bool
	)

	input := cryptobyte.String(der)
	if !input.ReadASN1(&seq, asn1.SEQUENCE) || !input.Empty() ||
		!seq.ReadASN1Integer(&version) || version != ecPrivKeyVersion ||
		!seq.ReadASN1(&scalar, asn1.OCTET_STRING) ||
		!seq.ReadOptionalASN1(&params, &hasParams, tagECParams) {
		return nil, nil, fmt.Errorf("%w: EC private key", ErrInvalidDER)
	}

	curve := outer
	if hasParams {
		var oid encoding_asn1.ObjectIdentifier
		if !params.ReadASN1ObjectIdentifier(&oid) {
			return nil, nil, fmt.Errorf("%w: EC parameters", ErrInvalidDER)
		}
		c, err := CurveByOID(oid)
		if err != nil {
			return nil, nil, err
		}
		if outer != nil && outer.Name() != c.Name() {
			return nil, nil, fmt.Errorf("%w: curve mismatch", ErrInvalidDER)
		}
		curve = c
	}

	if curve == nil {
		return nil, nil, fmt.Errorf("%w: missing curve", ErrInvalidDER)
	}

	if len(scalar) > curve.ScalarSize() {
		return nil, nil, fmt.Errorf("%w: scalar too long", ErrInvalidScalar)
	}

	return curve, ZeroPad([]byte(scalar), curve.ScalarSize()), nil
}

// ParsePublicKeyPEM decodes a "PUBLIC KEY" block and returns the curve and
// the SEC1 point, validated against the curve.
func ParsePublicKeyPEM(data []byte) (Curve, []byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, nil, ErrInvalidPEM
	}
	if block.Type != PublicKeyPEMType {
		return nil, nil, fmt.Errorf("%w: unexpected type %q", ErrInvalidPEM, block.Type)
	}

	var seq cryptobyte.String
	input := cryptobyte.String(block.Bytes)
	if !input.ReadASN1(&seq, asn1.SEQUENCE) || !input.Empty() {
		return nil, nil, fmt.Errorf("%w: SubjectPublicKeyInfo", ErrInvalidDER)
	}

	curve, err := readAlgorithmIdentifier(&seq)
	if err != nil {
		return nil, nil, err
	}

	var point []byte
	if !seq.ReadASN1BitStringAsBytes(&point) || !seq.Empty() {
		return nil, nil, fmt.Errorf("%w: public key bit string", ErrInvalidDER)
	}

	if err := curve.ValidatePoint(point); err != nil {
		return nil, nil, err
	}

	return curve, point, nil
}

func readAlgorithmIdentifier(s *cryptobyte.String) (Curve, error) {
	var (
		algo          cryptobyte.String
		algOID, crOID encoding_asn1.ObjectIdentifier
	)

	if !s.ReadASN1(&algo, asn1.SEQUENCE) ||
		!algo.ReadASN1ObjectIdentifier(&algOID) ||
		!algo.ReadASN1ObjectIdentifier(&crOID) {
		return nil, fmt.Errorf("%w: algorithm identifier", ErrInvalidDER)
	}

	if !algOID.Equal(oidPublicKeyEC) {
		return nil, fmt.Errorf("%w: not an EC key (%s)", ErrInvalidDER, algOID)
	}

	return CurveByOID(crOID)
}
