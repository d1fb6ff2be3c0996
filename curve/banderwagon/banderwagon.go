// Package banderwagon implements the Bandersnatch twisted-Edwards curve
// and its Banderwagon prime-order quotient, per spec.md §4.E. Bandersnatch
// is defined over field/fr (the BLS12-381 scalar field); its own scalar
// field is field/frbw. Banderwagon collapses the two-torsion quotient
// {(x,y), (-x,-y)} into one representative via a canonical sign rule, so
// equal Banderwagon elements always produce equal serializations
// regardless of which of the two affine representatives a caller holds.
package banderwagon

import (
	"math/big"

	"github.com/ethpairing/curvekit/curveparams"
	"github.com/ethpairing/curvekit/estatus"
	"github.com/ethpairing/curvekit/field/fr"
	"github.com/ethpairing/curvekit/field/frbw"
)

// Element is an affine point on the Bandersnatch twisted-Edwards curve
// a*x^2+y^2 = 1+d*x^2*y^2. The identity is (0, 1).
type Element struct {
	X, Y fr.Element
}

var (
	curveA, curveD fr.Element
	genPoint       Element
)

func init() {
	curveA = fr.FromBigInt(curveparams.BandersnatchA)
	curveD = fr.FromBigInt(curveparams.BandersnatchD)
	genPoint = Element{
		X: fr.FromBigInt(curveparams.BandersnatchGenX),
		Y: fr.FromBigInt(curveparams.BandersnatchGenY),
	}
}

// Identity returns the twisted-Edwards identity element (0,1).
func Identity() Element { return Element{X: fr.Zero(), Y: fr.One()} }

// Generator returns a fixed base point on the curve. GeneratorsFromSeed
// does not use it: that function hashes a label to find its points.
func Generator() Element { return genPoint }

// IsOnCurve checks a*x^2+y^2 = 1+d*x^2*y^2.
func (e Element) IsOnCurve() bool {
	x2 := fr.Square(e.X)
	y2 := fr.Square(e.Y)
	lhs := fr.Add(fr.Mul(curveA, x2), y2)
	rhs := fr.Add(fr.One(), fr.Mul(curveD, fr.Mul(x2, y2)))
	return fr.Equal(lhs, rhs)
}

// Add implements the complete (exception-free) Hisil-Wong-Carter-Dawson
// unified addition formula for twisted-Edwards curves with the 'a'
// coefficient, valid for both doubling and distinct-point addition and
// for any pair of curve points including the identity.
func Add(p, q Element) Element {
	x1y2 := fr.Mul(p.X, q.Y)
	y1x2 := fr.Mul(p.Y, q.X)
	y1y2 := fr.Mul(p.Y, q.Y)
	x1x2 := fr.Mul(p.X, q.X)
	dxy := fr.Mul(curveD, fr.Mul(fr.Mul(p.X, q.X), fr.Mul(p.Y, q.Y)))

	x3Num := fr.Add(x1y2, y1x2)
	x3Den := fr.Add(fr.One(), dxy)
	y3Num := fr.Sub(y1y2, fr.Mul(curveA, x1x2))
	y3Den := fr.Sub(fr.One(), dxy)

	return Element{
		X: fr.Mul(x3Num, fr.Inv(x3Den)),
		Y: fr.Mul(y3Num, fr.Inv(y3Den)),
	}
}

func Double(p Element) Element { return Add(p, p) }

func Neg(p Element) Element { return Element{X: fr.Neg(p.X), Y: p.Y} }

// ScalarMul computes [k]p by double-and-add over a fixed 253-bit loop (the
// Banderwagon/frbw scalar field's bit length); bits of k above bit 252 are
// ignored. The addition is performed only for set bits of k, so the running
// time depends on those bits: this routine is not constant-time.
func ScalarMul(p Element, k *big.Int) Element {
	acc := Identity()
	const bits = 253
	for i := bits - 1; i >= 0; i-- {
		acc = Double(acc)
		if k.Bit(i) == 1 {
			acc = Add(acc, p)
		}
	}
	return acc
}

func ScalarMulFrbw(p Element, k frbw.Element) Element {
	return ScalarMul(p, k.ToBigInt())
}

func Equal(p, q Element) bool {
	// Two affine points represent the same Banderwagon element iff they
	// are equal as points or are each other's two-torsion twin (-x,-y).
	if fr.Equal(p.X, q.X) && fr.Equal(p.Y, q.Y) {
		return true
	}
	return fr.Equal(p.X, fr.Neg(q.X)) && fr.Equal(p.Y, fr.Neg(q.Y))
}

// Compress encodes the Banderwagon equivalence class of p into 32 bytes:
// the field/fr encoding of x, canonicalized so that y is the
// lexicographically smaller of {y, -y} (collapsing the (x,y)/(-x,-y)
// ambiguity into one encoding regardless of which representative p is).
func Compress(p Element) [32]byte {
	x, y := p.X, p.Y
	yBig := y.ToBigInt()
	negYBig := fr.Neg(y).ToBigInt()
	if yBig.Cmp(negYBig) > 0 {
		x = fr.Neg(x)
	}
	return x.ToBytesBE()
}

// Decompress recovers the canonical Banderwagon representative from its
// 32-byte encoding, reconstructing y from x via the curve equation and
// selecting the canonical (lexicographically smaller) sign.
func Decompress(b [32]byte) (Element, error) {
	x, ok := fr.FromBytesBE(b[:])
	if !ok {
		return Element{}, estatus.ErrCoordinateOutOfRange
	}
	// y^2 = (1 - a*x^2) / (1 - d*x^2)
	x2 := fr.Square(x)
	num := fr.Sub(fr.One(), fr.Mul(curveA, x2))
	den := fr.Sub(fr.One(), fr.Mul(curveD, x2))
	if fr.IsZero(den) {
		return Element{}, estatus.ErrPointNotOnCurve
	}
	y2 := fr.Mul(num, fr.Inv(den))
	y, ok := frSqrt(y2)
	if !ok {
		return Element{}, estatus.ErrPointNotOnCurve
	}
	negY := fr.Neg(y)
	if y.ToBigInt().Cmp(negY.ToBigInt()) > 0 {
		y = negY
	}
	p := Element{X: x, Y: y}
	if !p.IsOnCurve() {
		return Element{}, estatus.ErrPointNotOnCurve
	}
	return p, nil
}

// frSqrt computes a square root in field/fr when one exists. r ≡ 1 mod 4
// for BLS12-381's scalar field, so the p≡3-mod-4 shortcut fp.SqrtIfSquare
// uses does not apply here; this uses Tonelli-Shanks directly.
func frSqrt(a fr.Element) (fr.Element, bool) {
	if fr.IsZero(a) {
		return fr.Zero(), true
	}
	p := fr.Modulus()
	legendre := fr.Pow(a, new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1))
	if !fr.Equal(legendre, fr.One()) {
		return fr.Element{}, false
	}

	// Factor p-1 = q * 2^s with q odd.
	q := new(big.Int).Sub(p, big.NewInt(1))
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// Find a quadratic non-residue z.
	z := big.NewInt(2)
	for {
		zElem := fr.FromBigInt(z)
		leg := fr.Pow(zElem, new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1))
		if !fr.Equal(leg, fr.One()) {
			break
		}
		z.Add(z, big.NewInt(1))
	}

	m := s
	c := fr.Pow(fr.FromBigInt(z), q)
	t := fr.Pow(a, q)
	rVal := fr.Pow(a, new(big.Int).Rsh(new(big.Int).Add(q, big.NewInt(1)), 1))

	for !fr.Equal(t, fr.One()) {
		// find least i, 0<i<m, such that t^(2^i) == 1
		i := 0
		tt := t
		for !fr.Equal(tt, fr.One()) {
			tt = fr.Square(tt)
			i++
			if i == m {
				return fr.Element{}, false
			}
		}
		bExp := new(big.Int).Lsh(big.NewInt(1), uint(m-i-1))
		b := fr.Pow(c, bExp)
		m = i
		c = fr.Square(b)
		t = fr.Mul(t, c)
		rVal = fr.Mul(rVal, b)
	}
	return rVal, true
}
