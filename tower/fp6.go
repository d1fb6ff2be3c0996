package tower

// Fp6 represents c0 + c1*v + c2*v^2, v^3 = ξ = 1+u.
type Fp6 struct {
	C0, C1, C2 Fp2
}

func Fp6Zero() Fp6 { return Fp6{} }
func Fp6One() Fp6  { return Fp6{C0: Fp2One()} }

func Fp6Add(a, b Fp6) Fp6 {
	return Fp6{Fp2Add(a.C0, b.C0), Fp2Add(a.C1, b.C1), Fp2Add(a.C2, b.C2)}
}

func Fp6Sub(a, b Fp6) Fp6 {
	return Fp6{Fp2Sub(a.C0, b.C0), Fp2Sub(a.C1, b.C1), Fp2Sub(a.C2, b.C2)}
}

func Fp6Neg(a Fp6) Fp6 {
	return Fp6{Fp2Neg(a.C0), Fp2Neg(a.C1), Fp2Neg(a.C2)}
}

func Fp6Double(a Fp6) Fp6 {
	return Fp6{Fp2Double(a.C0), Fp2Double(a.C1), Fp2Double(a.C2)}
}

// Fp6Mul implements the Toom/Karatsuba-style cubic multiplication with
// lazy-reduction-free accumulation (each Fp2 op already reduces mod p, so
// this follows the direct Karatsuba-over-Fp2 shape from spec.md §4.C).
func Fp6Mul(a, b Fp6) Fp6 {
	t0 := Fp2Mul(a.C0, b.C0)
	t1 := Fp2Mul(a.C1, b.C1)
	t2 := Fp2Mul(a.C2, b.C2)

	c0 := Fp2Add(t0, Fp2MulByNonResidue(Fp2Sub(Fp2Mul(Fp2Add(a.C1, a.C2), Fp2Add(b.C1, b.C2)), Fp2Add(t1, t2))))
	c1 := Fp2Add(Fp2Sub(Fp2Mul(Fp2Add(a.C0, a.C1), Fp2Add(b.C0, b.C1)), Fp2Add(t0, t1)), Fp2MulByNonResidue(t2))
	c2 := Fp2Add(Fp2Sub(Fp2Mul(Fp2Add(a.C0, a.C2), Fp2Add(b.C0, b.C2)), Fp2Add(t0, t2)), t1)

	return Fp6{c0, c1, c2}
}

func Fp6Square(a Fp6) Fp6 {
	s0 := Fp2Square(a.C0)
	ab := Fp2Mul(a.C0, a.C1)
	s1 := Fp2Double(ab)
	s2 := Fp2Square(Fp2Sub(Fp2Add(a.C0, a.C2), a.C1))
	bc := Fp2Mul(a.C1, a.C2)
	s3 := Fp2Double(bc)
	s4 := Fp2Square(a.C2)

	c0 := Fp2Add(s0, Fp2MulByNonResidue(s3))
	c1 := Fp2Add(s1, Fp2MulByNonResidue(s4))
	c2 := Fp2Add(Fp2Add(Fp2Add(s1, s2), s3), Fp2Sub(Fp2Neg(s0), s4))

	return Fp6{c0, c1, c2}
}

func Fp6Inv(a Fp6) Fp6 {
	t0 := Fp2Square(a.C0)
	t1 := Fp2Square(a.C1)
	t2 := Fp2Square(a.C2)
	t3 := Fp2Mul(a.C0, a.C1)
	t4 := Fp2Mul(a.C0, a.C2)
	t5 := Fp2Mul(a.C1, a.C2)

	c0 := Fp2Sub(t0, Fp2MulByNonResidue(t5))
	c1 := Fp2Sub(Fp2MulByNonResidue(t2), t3)
	c2 := Fp2Sub(t1, t4)

	t6 := Fp2Mul(a.C0, c0)
	t6 = Fp2Add(t6, Fp2MulByNonResidue(Fp2Add(Fp2Mul(a.C2, c1), Fp2Mul(a.C1, c2))))
	t6 = Fp2Inv(t6)

	return Fp6{Fp2Mul(c0, t6), Fp2Mul(c1, t6), Fp2Mul(c2, t6)}
}

// Fp6MulByV multiplies by the tower variable v:
// v*(c0+c1 v+c2 v^2) = c2*ξ + c0*v + c1*v^2.
func Fp6MulByV(a Fp6) Fp6 {
	return Fp6{Fp2MulByNonResidue(a.C2), a.C0, a.C1}
}

func Fp6IsZero(a Fp6) bool { return Fp2IsZero(a.C0) && Fp2IsZero(a.C1) && Fp2IsZero(a.C2) }

func Fp6Equal(a, b Fp6) bool {
	return Fp2Equal(a.C0, b.C0) && Fp2Equal(a.C1, b.C1) && Fp2Equal(a.C2, b.C2)
}
