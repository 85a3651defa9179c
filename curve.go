package vexlcrypto

import (
	"github.com/vexl-it/vexl-crypto-go/internal/crypto"
)

// Curve identifies one of the supported elliptic curves.
type Curve string

const (
	// CurveSecp256k1 is the Koblitz curve used by default.
	CurveSecp256k1 Curve = "secp256k1"
	// CurveSecp224r1 is the NIST P-224 curve.
	CurveSecp224r1 Curve = "secp224r1"
)

// DefaultCurve is used when no curve is specified.
const DefaultCurve = CurveSecp256k1

// curveAliases maps every accepted spelling to its canonical curve.
var curveAliases = map[string]Curve{
	"secp256k1": CurveSecp256k1,
	"P-256K":    CurveSecp256k1,
	"secp224r1": CurveSecp224r1,
	"P-224":     CurveSecp224r1,
}

// NormalizeCurve maps a curve name or legacy alias to its canonical Curve.
// Matching is exact; unknown names fail with a *CurveError and are never
// replaced by DefaultCurve.
func NormalizeCurve(raw string) (Curve, error) {
	c, ok := curveAliases[raw]
	if !ok {
		return "", &CurveError{Name: raw}
	}
	return c, nil
}

// Curves returns the supported curves, default first.
func Curves() []Curve {
	return []Curve{CurveSecp256k1, CurveSecp224r1}
}

// String returns the canonical curve name.
func (c Curve) String() string {
	return string(c)
}

// backend returns the arithmetic implementation for c.
func (c Curve) backend() (crypto.Curve, error) {
	b, err := crypto.CurveByName(string(c))
	if err != nil {
		return nil, &CurveError{Name: string(c)}
	}
	return b, nil
}

func curveOf(b crypto.Curve) Curve {
	return Curve(b.Name())
}
