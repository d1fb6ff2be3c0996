// Package bls12381 implements the BLS12-381 G1 and G2 groups: point
// representations, group law, scalar multiplication, subgroup checks, and
// the Zcash-style compressed serialization used throughout the corpus
// (EIP-2537 precompiles, EIP-4844 KZG commitments/proofs). One
// hand-specialized package per curve, in the gnark-crypto/kilic
// convention noted in SPEC_FULL.md, rather than a Go-generic Params type:
// Go generics cannot parametrize over a field's associated constant table
// cheaply enough to keep the constant-time discipline of field/fp and
// field/fr intact.
package bls12381

import (
	"math/big"

	"github.com/ethpairing/curvekit/curveparams"
	"github.com/ethpairing/curvekit/estatus"
	"github.com/ethpairing/curvekit/field/fp"
	"github.com/ethpairing/curvekit/field/fr"
)

// G1Affine is a point on BLS12-381's base curve in affine coordinates.
// Infinity is represented by Infinity=true (X, Y are then ignored).
type G1Affine struct {
	X, Y     fp.Element
	Infinity bool
}

// G1Jacobian is a point in Jacobian projective coordinates (X, Y, Z), the
// affine point being (X/Z^2, Y/Z^3). Z=0 represents infinity.
type G1Jacobian struct {
	X, Y, Z fp.Element
}

var g1B fp.Element

func init() {
	g1B = fp.FromBigInt(curveparams.BLS12381B)
}

// G1Generator returns the canonical BLS12-381 G1 generator.
func G1Generator() G1Affine {
	return G1Affine{
		X: fp.FromBigInt(curveparams.BLS12381G1X),
		Y: fp.FromBigInt(curveparams.BLS12381G1Y),
	}
}

func G1Identity() G1Affine { return G1Affine{Infinity: true} }

func (p G1Affine) IsIdentity() bool { return p.Infinity }

// ToJacobian lifts an affine point into Jacobian coordinates.
func (p G1Affine) ToJacobian() G1Jacobian {
	if p.Infinity {
		return G1Jacobian{X: fp.One(), Y: fp.One(), Z: fp.Zero()}
	}
	return G1Jacobian{X: p.X, Y: p.Y, Z: fp.One()}
}

// ToAffine converts back to affine form via a single inversion.
func (p G1Jacobian) ToAffine() G1Affine {
	if fp.IsZero(p.Z) {
		return G1Identity()
	}
	zInv := fp.Inv(p.Z)
	zInv2 := fp.Square(zInv)
	zInv3 := fp.Mul(zInv2, zInv)
	return G1Affine{X: fp.Mul(p.X, zInv2), Y: fp.Mul(p.Y, zInv3)}
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + b.
func (p G1Affine) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	lhs := fp.Square(p.Y)
	rhs := fp.Add(fp.Mul(fp.Square(p.X), p.X), g1B)
	return fp.Equal(lhs, rhs)
}

// IsInSubgroup reports whether p is in the prime-order subgroup, checked
// by the direct (non-endomorphism) method: [r]P == O. This module favors
// correctness and clarity over the GLV-accelerated subgroup test; the GLV
// constants in curveparams are not used by this package.
func (p G1Affine) IsInSubgroup() bool {
	r := curveparams.BLS12381R
	res := p.ToJacobian().ScalarMul(r)
	return res.ToAffine().IsIdentity()
}

// Double doubles a Jacobian point using the standard a=0
// short-Weierstrass doubling formula (2M+5S; BLS12-381 has a=0). The
// identity (Z=0) is returned unchanged.
func (p G1Jacobian) Double() G1Jacobian {
	if fp.IsZero(p.Z) {
		return p
	}
	a := fp.Square(p.X)
	b := fp.Square(p.Y)
	c := fp.Square(b)
	d := fp.Double(fp.Sub(fp.Square(fp.Add(p.X, b)), fp.Add(a, c)))
	e := fp.Add(fp.Double(a), a)
	f := fp.Square(e)
	x3 := fp.Sub(f, fp.Double(d))
	y3 := fp.Sub(fp.Mul(e, fp.Sub(d, x3)), fp.Double(fp.Double(fp.Double(c))))
	z3 := fp.Double(fp.Mul(p.Y, p.Z))
	return G1Jacobian{x3, y3, z3}
}

// Add implements Jacobian point addition, with explicit branches for the
// exceptional cases: an identity operand returns the other operand, P+P is
// handed to Double, and P+(-P) returns the identity.
func (p G1Jacobian) Add(q G1Jacobian) G1Jacobian {
	if fp.IsZero(p.Z) {
		return q
	}
	if fp.IsZero(q.Z) {
		return p
	}
	z1z1 := fp.Square(p.Z)
	z2z2 := fp.Square(q.Z)
	u1 := fp.Mul(p.X, z2z2)
	u2 := fp.Mul(q.X, z1z1)
	s1 := fp.Mul(fp.Mul(p.Y, q.Z), z2z2)
	s2 := fp.Mul(fp.Mul(q.Y, p.Z), z1z1)

	if fp.Equal(u1, u2) {
		if !fp.Equal(s1, s2) {
			return G1Jacobian{X: fp.One(), Y: fp.One(), Z: fp.Zero()}
		}
		return p.Double()
	}

	h := fp.Sub(u2, u1)
	i := fp.Square(fp.Double(h))
	j := fp.Mul(h, i)
	r := fp.Double(fp.Sub(s2, s1))
	v := fp.Mul(u1, i)
	x3 := fp.Sub(fp.Sub(fp.Square(r), j), fp.Double(v))
	y3 := fp.Sub(fp.Mul(r, fp.Sub(v, x3)), fp.Double(fp.Mul(s1, j)))
	z3 := fp.Mul(fp.Double(fp.Mul(p.Z, q.Z)), h)
	return G1Jacobian{x3, y3, z3}
}

// AddMixed adds an affine point to a Jacobian point (Z2=1 specialization,
// cheaper than full Add — used heavily by MSM's bucket accumulation).
func (p G1Jacobian) AddMixed(q G1Affine) G1Jacobian {
	if q.Infinity {
		return p
	}
	if fp.IsZero(p.Z) {
		return q.ToJacobian()
	}
	z1z1 := fp.Square(p.Z)
	u2 := fp.Mul(q.X, z1z1)
	s2 := fp.Mul(fp.Mul(q.Y, p.Z), z1z1)

	if fp.Equal(p.X, u2) {
		if !fp.Equal(p.Y, s2) {
			return G1Jacobian{X: fp.One(), Y: fp.One(), Z: fp.Zero()}
		}
		return p.Double()
	}

	h := fp.Sub(u2, p.X)
	hh := fp.Square(h)
	i := fp.Double(fp.Double(hh))
	j := fp.Mul(h, i)
	r := fp.Double(fp.Sub(s2, p.Y))
	v := fp.Mul(p.X, i)
	x3 := fp.Sub(fp.Sub(fp.Square(r), j), fp.Double(v))
	y3 := fp.Sub(fp.Mul(r, fp.Sub(v, x3)), fp.Double(fp.Mul(p.Y, j)))
	z3 := fp.Square(fp.Add(p.Z, h))
	z3 = fp.Sub(fp.Sub(z3, z1z1), hh)
	return G1Jacobian{x3, y3, z3}
}

func (p G1Jacobian) Neg() G1Jacobian {
	return G1Jacobian{p.X, fp.Neg(p.Y), p.Z}
}

// ScalarMul computes [k]P by double-and-add over a fixed 256-bit loop, so
// the number of doublings does not depend on k's bit length; bits of k
// above bit 255 are ignored. The addition is performed only for set bits of
// k and Add itself branches on its inputs, so the running time depends on
// the bits of k: this routine is not constant-time.
func (p G1Jacobian) ScalarMul(k *big.Int) G1Jacobian {
	acc := G1Jacobian{X: fp.One(), Y: fp.One(), Z: fp.Zero()}
	const bits = 256
	for i := bits - 1; i >= 0; i-- {
		acc = acc.Double()
		if k.Bit(i) == 1 {
			acc = acc.Add(p)
		}
	}
	return acc
}

// ScalarMulVartime computes [k]P without the constant-length padding,
// for public (non-secret) scalars such as verification-time recombination.
func (p G1Jacobian) ScalarMulVartime(k *big.Int) G1Jacobian {
	acc := G1Jacobian{X: fp.One(), Y: fp.One(), Z: fp.Zero()}
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = acc.Double()
		if k.Bit(i) == 1 {
			acc = acc.Add(p)
		}
	}
	return acc
}

// ScalarMulFr is the field/fr-scalar convenience wrapper used by kzg and msm.
func (p G1Jacobian) ScalarMulFr(k fr.Element) G1Jacobian {
	return p.ScalarMul(k.ToBigInt())
}

// BatchToAffine converts many Jacobian points to affine using a single
// shared inversion (Montgomery's trick), the standard MSM/KZG-commit
// epilogue.
func BatchToAffine(points []G1Jacobian) []G1Affine {
	n := len(points)
	out := make([]G1Affine, n)
	zs := make([]fp.Element, n)
	for i, p := range points {
		if fp.IsZero(p.Z) {
			zs[i] = fp.One()
		} else {
			zs[i] = p.Z
		}
	}
	inv := make([]fp.Element, n)
	copy(inv, zs)
	// Montgomery batch inversion over fp directly (fp has no exported
	// BatchInvert like fr does; this performs the same prefix-product trick).
	prefix := make([]fp.Element, n)
	acc := fp.One()
	for i, z := range inv {
		prefix[i] = acc
		acc = fp.Mul(acc, z)
	}
	accInv := fp.InvVartime(acc)
	for i := n - 1; i >= 0; i-- {
		orig := inv[i]
		inv[i] = fp.Mul(accInv, prefix[i])
		accInv = fp.Mul(accInv, orig)
	}
	for i, p := range points {
		if fp.IsZero(p.Z) {
			out[i] = G1Identity()
			continue
		}
		zInv := inv[i]
		zInv2 := fp.Square(zInv)
		zInv3 := fp.Mul(zInv2, zInv)
		out[i] = G1Affine{X: fp.Mul(p.X, zInv2), Y: fp.Mul(p.Y, zInv3)}
	}
	return out
}

// CompressG1 encodes p into the 48-byte Zcash-style compressed form: the
// top bit of byte 0 is the compression flag (always set here), the next
// bit is the infinity flag, the third is the y-sign flag (set when y is
// the lexicographically larger root).
func CompressG1(p G1Affine) [48]byte {
	var out [48]byte
	if p.Infinity {
		out[0] = 0xc0
		return out
	}
	out = p.X.ToBytesBE()
	out[0] |= 0x80
	yBig := p.Y.ToBigInt()
	negYBig := fp.Neg(p.Y).ToBigInt()
	if yBig.Cmp(negYBig) > 0 {
		out[0] |= 0x20
	}
	return out
}

// DecompressG1 parses the 48-byte compressed form, checking the curve
// equation and rejecting encodings with inconsistent sign/infinity flags.
func DecompressG1(b [48]byte) (G1Affine, error) {
	if b[0]&0x80 == 0 {
		return G1Affine{}, estatus.ErrInvalidEncoding
	}
	if b[0]&0xc0 == 0xc0 {
		if b[0] != 0xc0 {
			return G1Affine{}, estatus.ErrInvalidEncoding
		}
		for _, v := range b[1:] {
			if v != 0 {
				return G1Affine{}, estatus.ErrInvalidEncoding
			}
		}
		return G1Identity(), nil
	}
	ySign := b[0]&0x20 != 0
	var xBytes [48]byte
	copy(xBytes[:], b[:])
	xBytes[0] &= 0x1f
	x, ok := fp.FromBytesBE(xBytes[:])
	if !ok {
		return G1Affine{}, estatus.ErrCoordinateOutOfRange
	}
	rhs := fp.Add(fp.Mul(fp.Square(x), x), g1B)
	y, ok := fp.SqrtIfSquare(rhs)
	if !ok {
		return G1Affine{}, estatus.ErrPointNotOnCurve
	}
	yBig := y.ToBigInt()
	negYBig := fp.Neg(y).ToBigInt()
	isLarger := yBig.Cmp(negYBig) > 0
	if isLarger != ySign {
		y = fp.Neg(y)
	}
	p := G1Affine{X: x, Y: y}
	if !p.IsInSubgroup() {
		return G1Affine{}, estatus.ErrPointNotInSubgroup
	}
	return p, nil
}
