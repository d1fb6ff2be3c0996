// Package bn254 implements the BN254 base-field G1 group law, as a
// second pairing-friendly curve instantiation alongside curve/bls12381
// (spec.md SPEC_FULL.md §3). This module's scope fully specializes the
// BLS12-381 tower/pairing stack; BN254 here is deliberately a lighter
// extension point carrying the group law (affine/Jacobian arithmetic,
// scalar multiplication, compressed serialization) with its own 254-bit
// base field, but leaving the BN-specific Miller loop (which needs a
// sextic twist and final exponentiation shaped differently from a BLS
// curve's, since BN curves have non-trivial trace and a different
// optimal-ate loop count) unimplemented. A second full extension tower
// and pairing would roughly double this module's field/tower/pairing
// surface for a curve family the spec's KZG/EIP-4844/Verkle components
// do not target, so it was scoped out; DESIGN.md records this decision.
package bn254

import (
	"math/big"

	"github.com/ethpairing/curvekit/bigint"
	"github.com/ethpairing/curvekit/curveparams"
	"github.com/ethpairing/curvekit/estatus"
)

const Limbs = 4

// Element is a BN254 base-field element in Montgomery form.
type Element [Limbs]uint64

var (
	modulus Element
	r2      Element
	m0inv   uint64
	oneMont Element
	curveB  Element
	sqrtExp *big.Int
)

func bigToLimbs(b *big.Int) [Limbs]uint64 {
	var out [Limbs]uint64
	words := b.Bits()
	for i := 0; i < len(words) && i < Limbs; i++ {
		out[i] = uint64(words[i])
	}
	return out
}

func invWord(x uint64) uint64 {
	y := x
	for i := 0; i < 5; i++ {
		y = y * (2 - x*y)
	}
	return -y
}

func init() {
	p := curveparams.BN254P
	modulus = bigToLimbs(p)
	r := new(big.Int).Lsh(big.NewInt(1), Limbs*64)
	rSq := new(big.Int).Mod(new(big.Int).Mul(r, r), p)
	r2 = bigToLimbs(rSq)
	m0inv = invWord(uint64(p.Bits()[0]))
	one := new(big.Int).Mod(r, p)
	oneMont = bigToLimbs(one)
	curveB = fromBigInt(curveparams.BN254B)
	// BN254's base field modulus is 3 mod 4, so sqrt(a) = a^((p+1)/4)
	// whenever a is a square; no Tonelli-Shanks needed.
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(p, big.NewInt(1)), 2)
}

func fromBigInt(v *big.Int) Element {
	reduced := new(big.Int).Mod(v, curveparams.BN254P)
	plain := bigToLimbs(reduced)
	var out Element
	bigint.MulMont(out[:], plain[:], r2[:], modulus[:], m0inv)
	return out
}

func (a Element) toBigInt() *big.Int {
	var plain Element
	one := Element{1}
	bigint.MulMont(plain[:], a[:], one[:], modulus[:], m0inv)
	words := make([]big.Word, Limbs)
	for i, x := range plain {
		words[i] = big.Word(x)
	}
	return new(big.Int).SetBits(words)
}

func add(a, b Element) Element {
	var z Element
	c := bigint.Add(z[:], a[:], b[:])
	if c != 0 || bigint.Cmp(z[:], modulus[:]) >= 0 {
		bigint.Sub(z[:], z[:], modulus[:])
	}
	return z
}

func sub(a, b Element) Element {
	var z Element
	borrow := bigint.Sub(z[:], a[:], b[:])
	if borrow != 0 {
		bigint.Add(z[:], z[:], modulus[:])
	}
	return z
}

func mul(a, b Element) Element {
	var z Element
	bigint.MulMont(z[:], a[:], b[:], modulus[:], m0inv)
	return z
}

func square(a Element) Element { return mul(a, a) }

func isZero(a Element) bool { return bigint.IsZero(a[:]) }

func inv(a Element) Element {
	var plain, invPlain Element
	one := Element{1}
	bigint.MulMont(plain[:], a[:], one[:], modulus[:], m0inv)
	bigint.InvMod(invPlain[:], plain[:], modulus[:])
	var z Element
	bigint.MulMont(z[:], invPlain[:], r2[:], modulus[:], m0inv)
	return z
}

func pow(a Element, e *big.Int) Element {
	result := oneMont
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = square(result)
		if e.Bit(i) == 1 {
			result = mul(result, a)
		}
	}
	return result
}

// sqrtIfSquare returns (sqrt(a), true) if a is a quadratic residue, using
// the p=3-mod-4 shortcut, or the zero element and false otherwise.
func sqrtIfSquare(a Element) (Element, bool) {
	root := pow(a, sqrtExp)
	if square(root) != a {
		return Element{}, false
	}
	return root, true
}

// G1Affine is a point on BN254's base curve y^2 = x^3 + 3.
type G1Affine struct {
	X, Y     Element
	Infinity bool
}

func G1Generator() G1Affine {
	return G1Affine{X: fromBigInt(curveparams.BN254G1X), Y: fromBigInt(curveparams.BN254G1Y)}
}

func G1Identity() G1Affine { return G1Affine{Infinity: true} }

func (p G1Affine) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	lhs := square(p.Y)
	rhs := add(mul(square(p.X), p.X), curveB)
	return lhs == rhs
}

// G1Jacobian is a Jacobian-coordinate BN254 G1 point.
type G1Jacobian struct{ X, Y, Z Element }

func (p G1Affine) ToJacobian() G1Jacobian {
	if p.Infinity {
		return G1Jacobian{X: oneMont, Y: oneMont, Z: Element{}}
	}
	return G1Jacobian{X: p.X, Y: p.Y, Z: oneMont}
}

func (p G1Jacobian) ToAffine() G1Affine {
	if isZero(p.Z) {
		return G1Identity()
	}
	zInv := inv(p.Z)
	zInv2 := square(zInv)
	zInv3 := mul(zInv2, zInv)
	return G1Affine{X: mul(p.X, zInv2), Y: mul(p.Y, zInv3)}
}

// Double implements the standard a=0 Jacobian doubling formula (2M+5S),
// the same shape as curve/bls12381.G1Jacobian.Double but over BN254's
// own base field.
func (p G1Jacobian) Double() G1Jacobian {
	if isZero(p.Z) {
		return p
	}
	a := square(p.X)
	b := square(p.Y)
	c := square(b)
	dInner := sub(square(add(p.X, b)), add(a, c))
	d := add(dInner, dInner)
	e := add(add(a, a), a)
	f := square(e)
	x3 := sub(f, add(d, d))
	cDouble := add(c, c)
	cQuad := add(cDouble, cDouble)
	y3 := sub(mul(e, sub(d, x3)), add(cQuad, cQuad))
	z3 := add(mul(p.Y, p.Z), mul(p.Y, p.Z))
	return G1Jacobian{x3, y3, z3}
}

func (p G1Jacobian) Add(q G1Jacobian) G1Jacobian {
	if isZero(p.Z) {
		return q
	}
	if isZero(q.Z) {
		return p
	}
	z1z1 := square(p.Z)
	z2z2 := square(q.Z)
	u1 := mul(p.X, z2z2)
	u2 := mul(q.X, z1z1)
	s1 := mul(mul(p.Y, q.Z), z2z2)
	s2 := mul(mul(q.Y, p.Z), z1z1)

	if u1 == u2 {
		if s1 != s2 {
			return G1Jacobian{X: oneMont, Y: oneMont, Z: Element{}}
		}
		return p.Double()
	}

	h := sub(u2, u1)
	i := square(add(h, h))
	j := mul(h, i)
	r := add(sub(s2, s1), sub(s2, s1))
	v := mul(u1, i)
	x3 := sub(sub(square(r), j), add(v, v))
	y3 := sub(mul(r, sub(v, x3)), add(mul(s1, j), mul(s1, j)))
	z3 := mul(add(mul(p.Z, q.Z), mul(p.Z, q.Z)), h)
	return G1Jacobian{x3, y3, z3}
}

// ScalarMul computes [k]P over BN254's G1 by double-and-add over a fixed
// 256-bit loop. The addition is performed only for set bits of k, so the
// running time depends on those bits: this routine is not constant-time.
func (p G1Jacobian) ScalarMul(k *big.Int) G1Jacobian {
	acc := G1Jacobian{X: oneMont, Y: oneMont, Z: Element{}}
	for i := 255; i >= 0; i-- {
		acc = acc.Double()
		if k.Bit(i) == 1 {
			acc = acc.Add(p)
		}
	}
	return acc
}

// Compress encodes p into a 32-byte form: the top two bits of byte 0 are
// the compression and infinity flags (mirroring curve/bls12381's Zcash-
// style layout, scaled down to BN254's 254-bit field), the next bit is
// the y-sign flag.
func (p G1Affine) Compress() [32]byte {
	var out [32]byte
	if p.Infinity {
		out[0] = 0xc0
		return out
	}
	xBig := p.X.toBigInt()
	xBig.FillBytes(out[:])
	out[0] |= 0x80
	yBig := p.Y.toBigInt()
	negYBig := new(big.Int).Sub(curveparams.BN254P, yBig)
	if yBig.Cmp(negYBig) > 0 {
		out[0] |= 0x20
	}
	return out
}

// DecompressG1 parses a 32-byte compressed BN254 G1 point.
func DecompressG1(b [32]byte) (G1Affine, error) {
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
	var xBytes [32]byte
	copy(xBytes[:], b[:])
	xBytes[0] &= 0x1f
	xBig := new(big.Int).SetBytes(xBytes[:])
	if xBig.Cmp(curveparams.BN254P) >= 0 {
		return G1Affine{}, estatus.ErrCoordinateOutOfRange
	}
	x := fromBigInt(xBig)
	rhs := add(mul(square(x), x), curveB)
	y, ok := sqrtIfSquare(rhs)
	if !ok {
		return G1Affine{}, estatus.ErrPointNotOnCurve
	}
	yBig := y.toBigInt()
	negYBig := new(big.Int).Sub(curveparams.BN254P, yBig)
	isLarger := yBig.Cmp(negYBig) > 0
	if isLarger != ySign {
		y = sub(Element{}, y)
	}
	return G1Affine{X: x, Y: y}, nil
}
