// Package tower implements the BLS12-381 extension tower 𝔽p -> 𝔽p2 -> 𝔽p6 ->
// 𝔽p12 described in spec.md §4.C:
//
//	Fp2  = Fp[u]/(u^2 + 1)            (β = -1)
//	Fp6  = Fp2[v]/(v^3 - (1+u))       (ξ = 1+u)
//	Fp12 = Fp6[w]/(w^2 - v)
//
// Fp12 is built quadratic-over-cubic per spec.md's §9 canonical-layout
// decision.
package tower

import "github.com/ethpairing/curvekit/field/fp"

// Fp2 represents c0 + c1*u.
type Fp2 struct {
	C0, C1 fp.Element
}

func Fp2Zero() Fp2 { return Fp2{} }
func Fp2One() Fp2  { return Fp2{C0: fp.One()} }

func Fp2Add(a, b Fp2) Fp2 {
	return Fp2{C0: fp.Add(a.C0, b.C0), C1: fp.Add(a.C1, b.C1)}
}

func Fp2Sub(a, b Fp2) Fp2 {
	return Fp2{C0: fp.Sub(a.C0, b.C0), C1: fp.Sub(a.C1, b.C1)}
}

func Fp2Neg(a Fp2) Fp2 {
	return Fp2{C0: fp.Neg(a.C0), C1: fp.Neg(a.C1)}
}

func Fp2Double(a Fp2) Fp2 {
	return Fp2{C0: fp.Double(a.C0), C1: fp.Double(a.C1)}
}

func Fp2Halve(a Fp2) Fp2 {
	return Fp2{C0: fp.Halve(a.C0), C1: fp.Halve(a.C1)}
}

// Fp2Mul uses Karatsuba: with β=-1,
//
//	c0 = a0*b0 - a1*b1
//	c1 = (a0+a1)(b0+b1) - a0*b0 - a1*b1
func Fp2Mul(a, b Fp2) Fp2 {
	t0 := fp.Mul(a.C0, b.C0)
	t1 := fp.Mul(a.C1, b.C1)
	c0 := fp.Sub(t0, t1)
	t2 := fp.Mul(fp.Add(a.C0, a.C1), fp.Add(b.C0, b.C1))
	c1 := fp.Sub(fp.Sub(t2, t0), t1)
	return Fp2{C0: c0, C1: c1}
}

// Fp2Square uses the complex-squaring shortcut valid when β=-1:
//
//	c0 = (a0+a1)(a0-a1)
//	c1 = 2*a0*a1
func Fp2Square(a Fp2) Fp2 {
	c0 := fp.Mul(fp.Add(a.C0, a.C1), fp.Sub(a.C0, a.C1))
	c1 := fp.Double(fp.Mul(a.C0, a.C1))
	return Fp2{C0: c0, C1: c1}
}

// Fp2Conj returns the Frobenius conjugate (c0, -c1), i.e. a^p.
func Fp2Conj(a Fp2) Fp2 {
	return Fp2{C0: a.C0, C1: fp.Neg(a.C1)}
}

// Fp2MulByNonResidue multiplies by ξ = 1+u (the Fp6 cubic non-residue),
// used when lifting an Fp2 element into Fp6 arithmetic:
// (1+u)(a0+a1*u) = (a0-a1) + (a0+a1)*u.
func Fp2MulByNonResidue(a Fp2) Fp2 {
	return Fp2{C0: fp.Sub(a.C0, a.C1), C1: fp.Add(a.C0, a.C1)}
}

func Fp2Inv(a Fp2) Fp2 {
	// 1/(c0+c1 u) = (c0-c1 u) / (c0^2+c1^2)
	norm := fp.Add(fp.Square(a.C0), fp.Square(a.C1))
	normInv := fp.Inv(norm)
	return Fp2{C0: fp.Mul(a.C0, normInv), C1: fp.Mul(fp.Neg(a.C1), normInv)}
}

func Fp2IsZero(a Fp2) bool { return fp.IsZero(a.C0) && fp.IsZero(a.C1) }

func Fp2Equal(a, b Fp2) bool { return fp.Equal(a.C0, b.C0) && fp.Equal(a.C1, b.C1) }

// Fp2MulByFp scales an Fp2 element by a base-field scalar.
func Fp2MulByFp(a Fp2, s fp.Element) Fp2 {
	return Fp2{C0: fp.Mul(a.C0, s), C1: fp.Mul(a.C1, s)}
}
