package bls12381

import (
	"math/big"

	"github.com/ethpairing/curvekit/curveparams"
	"github.com/ethpairing/curvekit/estatus"
	"github.com/ethpairing/curvekit/field/fp"
	"github.com/ethpairing/curvekit/field/fr"
	"github.com/ethpairing/curvekit/tower"
)

// G2Affine is a point on BLS12-381's twisted curve (the D-twist over
// Fp2), the group that blob proofs and KZG verification keys live in.
type G2Affine struct {
	X, Y     tower.Fp2
	Infinity bool
}

type G2Jacobian struct {
	X, Y, Z tower.Fp2
}

var g2B tower.Fp2

func init() {
	g2B = tower.Fp2{
		C0: fp.FromBigInt(curveparams.BLS12381B2C0),
		C1: fp.FromBigInt(curveparams.BLS12381B2C1),
	}
}

func G2Generator() G2Affine {
	return G2Affine{
		X: tower.Fp2{C0: fp.FromBigInt(curveparams.BLS12381G2XC0), C1: fp.FromBigInt(curveparams.BLS12381G2XC1)},
		Y: tower.Fp2{C0: fp.FromBigInt(curveparams.BLS12381G2YC0), C1: fp.FromBigInt(curveparams.BLS12381G2YC1)},
	}
}

func G2Identity() G2Affine { return G2Affine{Infinity: true} }

func (p G2Affine) IsIdentity() bool { return p.Infinity }

func (p G2Affine) ToJacobian() G2Jacobian {
	if p.Infinity {
		return G2Jacobian{X: tower.Fp2One(), Y: tower.Fp2One(), Z: tower.Fp2Zero()}
	}
	return G2Jacobian{X: p.X, Y: p.Y, Z: tower.Fp2One()}
}

func (p G2Jacobian) ToAffine() G2Affine {
	if tower.Fp2IsZero(p.Z) {
		return G2Identity()
	}
	zInv := tower.Fp2Inv(p.Z)
	zInv2 := tower.Fp2Square(zInv)
	zInv3 := tower.Fp2Mul(zInv2, zInv)
	return G2Affine{X: tower.Fp2Mul(p.X, zInv2), Y: tower.Fp2Mul(p.Y, zInv3)}
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + b' (b' the twist coefficient).
func (p G2Affine) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	lhs := tower.Fp2Square(p.Y)
	rhs := tower.Fp2Add(tower.Fp2Mul(tower.Fp2Square(p.X), p.X), g2B)
	return tower.Fp2Equal(lhs, rhs)
}

// IsInSubgroup checks membership via the direct method [r]P == O.
func (p G2Affine) IsInSubgroup() bool {
	r := curveparams.BLS12381R
	res := p.ToJacobian().ScalarMul(r)
	return res.ToAffine().IsIdentity()
}

func (p G2Jacobian) Double() G2Jacobian {
	if tower.Fp2IsZero(p.Z) {
		return p
	}
	a := tower.Fp2Square(p.X)
	b := tower.Fp2Square(p.Y)
	c := tower.Fp2Square(b)
	d := tower.Fp2Double(tower.Fp2Sub(tower.Fp2Square(tower.Fp2Add(p.X, b)), tower.Fp2Add(a, c)))
	e := tower.Fp2Add(tower.Fp2Double(a), a)
	f := tower.Fp2Square(e)
	x3 := tower.Fp2Sub(f, tower.Fp2Double(d))
	y3 := tower.Fp2Sub(tower.Fp2Mul(e, tower.Fp2Sub(d, x3)), tower.Fp2Double(tower.Fp2Double(tower.Fp2Double(c))))
	z3 := tower.Fp2Double(tower.Fp2Mul(p.Y, p.Z))
	return G2Jacobian{x3, y3, z3}
}

func (p G2Jacobian) Add(q G2Jacobian) G2Jacobian {
	if tower.Fp2IsZero(p.Z) {
		return q
	}
	if tower.Fp2IsZero(q.Z) {
		return p
	}
	z1z1 := tower.Fp2Square(p.Z)
	z2z2 := tower.Fp2Square(q.Z)
	u1 := tower.Fp2Mul(p.X, z2z2)
	u2 := tower.Fp2Mul(q.X, z1z1)
	s1 := tower.Fp2Mul(tower.Fp2Mul(p.Y, q.Z), z2z2)
	s2 := tower.Fp2Mul(tower.Fp2Mul(q.Y, p.Z), z1z1)

	if tower.Fp2Equal(u1, u2) {
		if !tower.Fp2Equal(s1, s2) {
			return G2Jacobian{X: tower.Fp2One(), Y: tower.Fp2One(), Z: tower.Fp2Zero()}
		}
		return p.Double()
	}

	h := tower.Fp2Sub(u2, u1)
	i := tower.Fp2Square(tower.Fp2Double(h))
	j := tower.Fp2Mul(h, i)
	r := tower.Fp2Double(tower.Fp2Sub(s2, s1))
	v := tower.Fp2Mul(u1, i)
	x3 := tower.Fp2Sub(tower.Fp2Sub(tower.Fp2Square(r), j), tower.Fp2Double(v))
	y3 := tower.Fp2Sub(tower.Fp2Mul(r, tower.Fp2Sub(v, x3)), tower.Fp2Double(tower.Fp2Mul(s1, j)))
	z3 := tower.Fp2Mul(tower.Fp2Double(tower.Fp2Mul(p.Z, q.Z)), h)
	return G2Jacobian{x3, y3, z3}
}

func (p G2Jacobian) AddMixed(q G2Affine) G2Jacobian {
	if q.Infinity {
		return p
	}
	if tower.Fp2IsZero(p.Z) {
		return q.ToJacobian()
	}
	z1z1 := tower.Fp2Square(p.Z)
	u2 := tower.Fp2Mul(q.X, z1z1)
	s2 := tower.Fp2Mul(tower.Fp2Mul(q.Y, p.Z), z1z1)

	if tower.Fp2Equal(p.X, u2) {
		if !tower.Fp2Equal(p.Y, s2) {
			return G2Jacobian{X: tower.Fp2One(), Y: tower.Fp2One(), Z: tower.Fp2Zero()}
		}
		return p.Double()
	}

	h := tower.Fp2Sub(u2, p.X)
	hh := tower.Fp2Square(h)
	i := tower.Fp2Double(tower.Fp2Double(hh))
	j := tower.Fp2Mul(h, i)
	r := tower.Fp2Double(tower.Fp2Sub(s2, p.Y))
	v := tower.Fp2Mul(p.X, i)
	x3 := tower.Fp2Sub(tower.Fp2Sub(tower.Fp2Square(r), j), tower.Fp2Double(v))
	y3 := tower.Fp2Sub(tower.Fp2Mul(r, tower.Fp2Sub(v, x3)), tower.Fp2Double(tower.Fp2Mul(p.Y, j)))
	z3 := tower.Fp2Square(tower.Fp2Add(p.Z, h))
	z3 = tower.Fp2Sub(tower.Fp2Sub(z3, z1z1), hh)
	return G2Jacobian{x3, y3, z3}
}

func (p G2Jacobian) Neg() G2Jacobian {
	return G2Jacobian{p.X, tower.Fp2Neg(p.Y), p.Z}
}

func (p G2Jacobian) ScalarMul(k *big.Int) G2Jacobian {
	acc := G2Jacobian{X: tower.Fp2One(), Y: tower.Fp2One(), Z: tower.Fp2Zero()}
	const bits = 256
	for i := bits - 1; i >= 0; i-- {
		acc = acc.Double()
		if k.Bit(i) == 1 {
			acc = acc.Add(p)
		}
	}
	return acc
}

func (p G2Jacobian) ScalarMulVartime(k *big.Int) G2Jacobian {
	acc := G2Jacobian{X: tower.Fp2One(), Y: tower.Fp2One(), Z: tower.Fp2Zero()}
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = acc.Double()
		if k.Bit(i) == 1 {
			acc = acc.Add(p)
		}
	}
	return acc
}

func (p G2Jacobian) ScalarMulFr(k fr.Element) G2Jacobian {
	return p.ScalarMul(k.ToBigInt())
}

// CompressG2 encodes p into the 96-byte compressed form: X as (c1 || c0)
// big-endian limbs with the compression/infinity/sign flags packed into
// the top bits of the first byte, matching the G1 convention extended to
// two Fp limbs.
func CompressG2(p G2Affine) [96]byte {
	var out [96]byte
	if p.Infinity {
		out[0] = 0xc0
		return out
	}
	c0Bytes := p.X.C0.ToBytesBE()
	c1Bytes := p.X.C1.ToBytesBE()
	copy(out[0:48], c1Bytes[:])
	copy(out[48:96], c0Bytes[:])
	out[0] |= 0x80
	yNeg := tower.Fp2Neg(p.Y)
	if fp2Greater(p.Y, yNeg) {
		out[0] |= 0x20
	}
	return out
}

// fp2Greater orders Fp2 elements lexicographically by (c1, c0), the
// standard convention for Fp2 sign comparisons in this tower.
func fp2Greater(a, b tower.Fp2) bool {
	aC1, bC1 := a.C1.ToBigInt(), b.C1.ToBigInt()
	if c := aC1.Cmp(bC1); c != 0 {
		return c > 0
	}
	aC0, bC0 := a.C0.ToBigInt(), b.C0.ToBigInt()
	return aC0.Cmp(bC0) > 0
}

func DecompressG2(b [96]byte) (G2Affine, error) {
	if b[0]&0x80 == 0 {
		return G2Affine{}, estatus.ErrInvalidEncoding
	}
	if b[0]&0xc0 == 0xc0 {
		if b[0] != 0xc0 {
			return G2Affine{}, estatus.ErrInvalidEncoding
		}
		for _, v := range b[1:] {
			if v != 0 {
				return G2Affine{}, estatus.ErrInvalidEncoding
			}
		}
		return G2Identity(), nil
	}
	ySign := b[0]&0x20 != 0
	var c1Bytes, c0Bytes [48]byte
	copy(c1Bytes[:], b[0:48])
	copy(c0Bytes[:], b[48:96])
	c1Bytes[0] &= 0x1f
	c1, ok := fp.FromBytesBE(c1Bytes[:])
	if !ok {
		return G2Affine{}, estatus.ErrCoordinateOutOfRange
	}
	c0, ok := fp.FromBytesBE(c0Bytes[:])
	if !ok {
		return G2Affine{}, estatus.ErrCoordinateOutOfRange
	}
	x := tower.Fp2{C0: c0, C1: c1}
	rhs := tower.Fp2Add(tower.Fp2Mul(tower.Fp2Square(x), x), g2B)
	y, ok := fp2Sqrt(rhs)
	if !ok {
		return G2Affine{}, estatus.ErrPointNotOnCurve
	}
	yNeg := tower.Fp2Neg(y)
	if fp2Greater(y, yNeg) != ySign {
		y = yNeg
	}
	p := G2Affine{X: x, Y: y}
	if !p.IsInSubgroup() {
		return G2Affine{}, estatus.ErrPointNotInSubgroup
	}
	return p, nil
}

// fp2Sqrt computes a square root in Fp2 when one exists, via the standard
// norm-reduction technique: writing a = a0+a1 u, a root exists iff
// norm(a) = a0^2+a1^2 is a QR in Fp; the real root is reconstructed from
// sqrt(norm) using the complex square-root formula.
func fp2Sqrt(a tower.Fp2) (tower.Fp2, bool) {
	if tower.Fp2IsZero(a) {
		return tower.Fp2Zero(), true
	}
	norm := fp.Add(fp.Square(a.C0), fp.Square(a.C1))
	normRoot, ok := fp.SqrtIfSquare(norm)
	if !ok {
		return tower.Fp2{}, false
	}
	two := fp.FromBigInt(big.NewInt(2))
	twoInv := fp.Inv(two)
	alpha := fp.Mul(fp.Add(a.C0, normRoot), twoInv)
	if !fp.IsSquare(alpha) {
		alpha = fp.Mul(fp.Sub(a.C0, normRoot), twoInv)
	}
	x0, ok := fp.SqrtIfSquare(alpha)
	if !ok {
		return tower.Fp2{}, false
	}
	x0Inv := fp.Inv(x0)
	x1 := fp.Mul(fp.Mul(a.C1, twoInv), x0Inv)
	root := tower.Fp2{C0: x0, C1: x1}
	check := tower.Fp2Square(root)
	if !tower.Fp2Equal(check, a) {
		return tower.Fp2{}, false
	}
	return root, true
}
