package ipa

import (
	"github.com/ethpairing/curvekit/curve/banderwagon"
	"github.com/ethpairing/curvekit/estatus"
	"github.com/ethpairing/curvekit/field/frbw"
	"github.com/ethpairing/curvekit/poly"
)

// DomainSize is the Verkle branching factor: each internal node commits
// to a 256-element vector, one per child.
const DomainSize = 256

// CRS holds the Pedersen generator basis (one point per domain index)
// plus the extra generator Q the opening-value binding step uses.
type CRS struct {
	Generators []banderwagon.Element
	Q          banderwagon.Element
	Domain     *poly.LagrangeDomain[frbw.Element]
}

// NewCRS derives a CRS deterministically from a label (see
// banderwagon.GeneratorsFromSeed) — any fixed basis serves identically;
// this module does not depend on matching an externally published one.
func NewCRS(label string) *CRS {
	gens := banderwagon.GeneratorsFromSeed(label, DomainSize)
	q := banderwagon.GeneratorsFromSeed(label+"/Q", 1)[0]
	return &CRS{Generators: gens, Q: q, Domain: poly.NewFrbwLagrangeDomain(DomainSize)}
}

// Commit computes the Pedersen vector commitment sum_i values[i]*G_i.
func Commit(crs *CRS, values []frbw.Element) (banderwagon.Element, error) {
	if len(values) != DomainSize {
		return banderwagon.Element{}, estatus.ErrInputsLengthMismatch
	}
	acc := banderwagon.Identity()
	for i, v := range values {
		if frbw.IsZero(v) {
			continue
		}
		acc = banderwagon.Add(acc, banderwagon.ScalarMulFrbw(crs.Generators[i], v))
	}
	return acc, nil
}

// Proof is an IPA opening proof: the log2(DomainSize) rounds of (L, R)
// commitments plus the final folded scalar.
type Proof struct {
	L []banderwagon.Element
	R []banderwagon.Element
	A frbw.Element
}

func numRounds(n int) int {
	r := 0
	for n > 1 {
		n >>= 1
		r++
	}
	return r
}

// evalVector returns b_i = L_i(z), the Lagrange basis evaluated at z,
// for i in 0..DomainSize-1: the standard "delta function at node i,
// interpolated across the whole domain" vector IPA commits against.
func evalVector(d *poly.LagrangeDomain[frbw.Element], z frbw.Element) []frbw.Element {
	b := make([]frbw.Element, d.Size)
	if idx, ok := d.IndexOf(z); ok {
		for i := range b {
			b[i] = frbw.Zero()
		}
		b[idx] = frbw.One()
		return b
	}
	// b_i = w_i * A(z) / (z - x_i), A(z) = prod_j (z - x_j); this is
	// exactly the per-term weight the BarycentricEval sum uses, before
	// multiplying by the evaluation values, so each b_i is the i-th
	// Lagrange basis polynomial's value at z.
	a := frbw.One()
	dens := make([]frbw.Element, d.Size)
	for i := 0; i < d.Size; i++ {
		diff := frbw.Sub(z, d.Points[i])
		dens[i] = diff
		a = frbw.Mul(a, diff)
	}
	for i := 0; i < d.Size; i++ {
		b[i] = frbw.Mul(frbw.Mul(d.Weights[i], a), frbw.Inv(dens[i]))
	}
	return b
}

// Prove constructs an IPA opening proof that the committed vector
// (values, in evaluation form over crs.Domain) evaluates to y at z.
func Prove(crs *CRS, values []frbw.Element, commitment banderwagon.Element, z frbw.Element) (*Proof, frbw.Element, error) {
	if len(values) != DomainSize {
		return nil, frbw.Element{}, estatus.ErrInputsLengthMismatch
	}
	y := crs.Domain.BarycentricEval(values, z)

	tr := NewTranscript("ipa")
	tr.AppendPoint("C", commitment)
	tr.AppendScalar("input point", z)
	tr.AppendScalar("output point", y)
	w := tr.ChallengeScalar("w")

	a := make([]frbw.Element, DomainSize)
	copy(a, values)
	b := evalVector(crs.Domain, z)
	g := make([]banderwagon.Element, DomainSize)
	copy(g, crs.Generators)

	rounds := numRounds(DomainSize)
	proof := &Proof{L: make([]banderwagon.Element, rounds), R: make([]banderwagon.Element, rounds)}

	n := DomainSize
	for round := 0; round < rounds; round++ {
		half := n / 2
		aLo, aHi := a[:half], a[half:]
		bLo, bHi := b[:half], b[half:]
		gLo, gHi := g[:half], g[half:]

		l := vecCommit(gHi, aLo)
		lCross := innerProduct(aLo, bHi)
		l = banderwagon.Add(l, banderwagon.ScalarMulFrbw(crs.Q, frbw.Mul(w, lCross)))

		r := vecCommit(gLo, aHi)
		rCross := innerProduct(aHi, bLo)
		r = banderwagon.Add(r, banderwagon.ScalarMulFrbw(crs.Q, frbw.Mul(w, rCross)))

		proof.L[round], proof.R[round] = l, r
		tr.AppendPoint("L", l)
		tr.AppendPoint("R", r)
		x := tr.ChallengeScalar("x")
		xInv := frbw.InvVartime(x)

		newA := make([]frbw.Element, half)
		newB := make([]frbw.Element, half)
		newG := make([]banderwagon.Element, half)
		for i := 0; i < half; i++ {
			newA[i] = frbw.Add(aLo[i], frbw.Mul(x, aHi[i]))
			newB[i] = frbw.Add(bLo[i], frbw.Mul(xInv, bHi[i]))
			newG[i] = banderwagon.Add(gLo[i], banderwagon.ScalarMulFrbw(gHi[i], xInv))
		}
		a, b, g = newA, newB, newG
		n = half
	}

	proof.A = a[0]
	return proof, y, nil
}

func vecCommit(g []banderwagon.Element, s []frbw.Element) banderwagon.Element {
	acc := banderwagon.Identity()
	for i := range g {
		if frbw.IsZero(s[i]) {
			continue
		}
		acc = banderwagon.Add(acc, banderwagon.ScalarMulFrbw(g[i], s[i]))
	}
	return acc
}

func innerProduct(a, b []frbw.Element) frbw.Element {
	acc := frbw.Zero()
	for i := range a {
		acc = frbw.Add(acc, frbw.Mul(a[i], b[i]))
	}
	return acc
}

// Verify checks an IPA opening proof against a commitment and claimed
// evaluation, by re-deriving the Fiat-Shamir challenges, folding the
// generator and evaluation vectors exactly as the prover did, and
// checking the final commitment equation.
func Verify(crs *CRS, commitment banderwagon.Element, z, y frbw.Element, proof *Proof) (bool, error) {
	rounds := numRounds(DomainSize)
	if len(proof.L) != rounds || len(proof.R) != rounds {
		return false, estatus.ErrInvalidEncoding
	}

	tr := NewTranscript("ipa")
	tr.AppendPoint("C", commitment)
	tr.AppendScalar("input point", z)
	tr.AppendScalar("output point", y)
	w := tr.ChallengeScalar("w")

	challenges := make([]frbw.Element, rounds)
	for i := 0; i < rounds; i++ {
		tr.AppendPoint("L", proof.L[i])
		tr.AppendPoint("R", proof.R[i])
		challenges[i] = tr.ChallengeScalar("x")
	}

	b := evalVector(crs.Domain, z)
	g := make([]banderwagon.Element, DomainSize)
	copy(g, crs.Generators)

	n := DomainSize
	for round := 0; round < rounds; round++ {
		half := n / 2
		x := challenges[round]
		xInv := frbw.InvVartime(x)
		newB := make([]frbw.Element, half)
		newG := make([]banderwagon.Element, half)
		for i := 0; i < half; i++ {
			newB[i] = frbw.Add(b[i], frbw.Mul(xInv, b[half+i]))
			newG[i] = banderwagon.Add(g[i], banderwagon.ScalarMulFrbw(g[half+i], xInv))
		}
		b, g = newB, newG
		n = half
	}

	cPrime := banderwagon.Add(commitment, banderwagon.ScalarMulFrbw(crs.Q, frbw.Mul(w, y)))
	for i := 0; i < rounds; i++ {
		x := challenges[i]
		xInv := frbw.InvVartime(x)
		cPrime = banderwagon.Add(cPrime, banderwagon.ScalarMulFrbw(proof.L[i], xInv))
		cPrime = banderwagon.Add(cPrime, banderwagon.ScalarMulFrbw(proof.R[i], x))
	}

	expected := banderwagon.ScalarMulFrbw(banderwagon.Add(g[0], banderwagon.ScalarMulFrbw(crs.Q, frbw.Mul(w, b[0]))), proof.A)
	return banderwagon.Equal(cPrime, expected), nil
}
