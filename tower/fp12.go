package tower

import "math/big"

// Fp12 represents c0 + c1*w, w^2 = v, a quadratic extension of Fp6 built
// "quadratic-over-cubic" per spec.md §9: it is NOT Fp2[w']/(w'^6-ξ) laid
// out as six Fp2 limbs directly, but Fp6[w]/(w^2-v) with two Fp6 limbs.
// This is the layout gnark-crypto and most modern pairing libraries use
// since it keeps the Fp6 multiplication/squaring code (tower/fp6.go)
// reusable unmodified as the inner loop.
type Fp12 struct {
	C0, C1 Fp6
}

func Fp12Zero() Fp12 { return Fp12{} }
func Fp12One() Fp12  { return Fp12{C0: Fp6One()} }

func Fp12Add(a, b Fp12) Fp12 { return Fp12{Fp6Add(a.C0, b.C0), Fp6Add(a.C1, b.C1)} }
func Fp12Sub(a, b Fp12) Fp12 { return Fp12{Fp6Sub(a.C0, b.C0), Fp6Sub(a.C1, b.C1)} }
func Fp12Neg(a Fp12) Fp12    { return Fp12{Fp6Neg(a.C0), Fp6Neg(a.C1)} }

// Fp12Mul: (a0+a1 w)(b0+b1 w) = (a0 b0 + v a1 b1) + (a0 b1 + a1 b0) w,
// since w^2 = v.
func Fp12Mul(a, b Fp12) Fp12 {
	t0 := Fp6Mul(a.C0, b.C0)
	t1 := Fp6Mul(a.C1, b.C1)
	c0 := Fp6Add(t0, Fp6MulByV(t1))
	c1 := Fp6Sub(Fp6Mul(Fp6Add(a.C0, a.C1), Fp6Add(b.C0, b.C1)), Fp6Add(t0, t1))
	return Fp12{c0, c1}
}

func Fp12Square(a Fp12) Fp12 {
	t0 := Fp6Sub(a.C0, a.C1)
	t1 := Fp6Sub(a.C0, Fp6MulByV(a.C1))
	t2 := Fp6Mul(a.C0, a.C1)
	c0 := Fp6Add(Fp6Mul(t0, t1), t2)
	c0 = Fp6Add(c0, Fp6MulByV(t2))
	c1 := Fp6Double(t2)
	return Fp12{c0, c1}
}

func Fp12Inv(a Fp12) Fp12 {
	// 1/(c0+c1 w) = (c0 - c1 w) / (c0^2 - v c1^2)
	t0 := Fp6Square(a.C0)
	t1 := Fp6Square(a.C1)
	norm := Fp6Sub(t0, Fp6MulByV(t1))
	normInv := Fp6Inv(norm)
	return Fp12{Fp6Mul(a.C0, normInv), Fp6Neg(Fp6Mul(a.C1, normInv))}
}

func Fp12IsZero(a Fp12) bool  { return Fp6IsZero(a.C0) && Fp6IsZero(a.C1) }
func Fp12Equal(a, b Fp12) bool { return Fp6Equal(a.C0, b.C0) && Fp6Equal(a.C1, b.C1) }

// Fp12Pow computes a^e by square-and-multiply, left to right over the bits
// of e. Used by the pairing package for the full (p^12-1)/r final
// exponentiation.
func Fp12Pow(a Fp12, e *big.Int) Fp12 {
	result := Fp12One()
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = Fp12Square(result)
		if e.Bit(i) == 1 {
			result = Fp12Mul(result, a)
		}
	}
	return result
}
