// Package kzg implements the KZG polynomial commitment scheme over
// BLS12-381 (component 4.I): commit, prove, verify, and batch-verify
// against a trusted-setup SRS, generalized over any domain size so
// kzg4844 (the 4096-element EIP-4844 blob domain) can build on it
// directly. Grounded on the teacher's crypto/kzg/kzg_new.go
// (VerifyKZGProof/VerifyKZGProofFromPoints) and util.go (barycentric
// evaluation, domain construction), generalized from the teacher's
// protolambda/go-kzg/bls wrapper calls to this module's own
// curve/bls12381 and pairing packages.
package kzg

import (
	"github.com/ethpairing/curvekit/curve/bls12381"
	"github.com/ethpairing/curvekit/estatus"
	"github.com/ethpairing/curvekit/field/fr"
	"github.com/ethpairing/curvekit/pairing"
	"github.com/ethpairing/curvekit/poly"
)

// SRS is the trusted-setup structured reference string for a secret tau.
// LagrangeG1[i] holds L_i(tau)*G1, where L_i is the i-th Lagrange basis
// polynomial over Domain; G2Gen and TauG2 hold G2 and tau*G2 for the
// verification pairing check. This matches how EIP-4844's published setup
// and this module's Commit both operate in evaluation form rather than
// monomial/coefficient form.
type SRS struct {
	Domain   *poly.Domain[fr.Element]
	LagrangeG1 []bls12381.G1Affine // L_i(tau) * G1, i.e. the Lagrange SRS
	G2Gen      bls12381.G2Affine
	TauG2      bls12381.G2Affine // tau * G2
}

// Commitment is a KZG commitment: a single G1 point.
type Commitment = bls12381.G1Affine

// Proof is a KZG opening proof: a single G1 point.
type Proof = bls12381.G1Affine

// Commit computes the commitment to a polynomial given in evaluation
// form over srs.Domain, as the inner product of the evaluations with the
// Lagrange SRS points.
func Commit(srs *SRS, evals []fr.Element) (Commitment, error) {
	if len(evals) != srs.Domain.Size {
		return Commitment{}, estatus.ErrInputsLengthMismatch
	}
	acc := bls12381.G1Jacobian{}
	for i, e := range evals {
		if fr.IsZero(e) {
			continue
		}
		term := srs.LagrangeG1[i].ToJacobian().ScalarMulFr(e)
		acc = acc.Add(term)
	}
	return acc.ToAffine(), nil
}

// Prove constructs an opening proof that the polynomial (given in
// evaluation form) evaluates to y at point z: proof = Commit(q), where
// q(X) = (p(X) - y) / (X - z), handling both the in-domain and
// off-domain cases via the poly package's two quotient constructions.
func Prove(srs *SRS, evals []fr.Element, z fr.Element) (Proof, fr.Element, error) {
	if len(evals) != srs.Domain.Size {
		return Proof{}, fr.Element{}, estatus.ErrInputsLengthMismatch
	}
	y := poly.BarycentricEval(srs.Domain, evals, z)

	var q []fr.Element
	if idx, ok := srs.Domain.IndexOf(z); ok {
		q = poly.DifferenceQuotientInDomain(srs.Domain, evals, idx)
	} else {
		q = poly.DifferenceQuotientOffDomain(srs.Domain, evals, z, y)
	}

	proof, err := Commit(srs, q)
	return proof, y, err
}

// Verify checks a KZG opening proof via the pairing equation
// e(commitment - y*G1, G2) == e(proof, tau*G2 - z*G2), collapsed into a
// single multi-pairing product check.
func Verify(srs *SRS, commitment Commitment, z, y fr.Element, proof Proof) bool {
	g1 := bls12381.G1Generator()
	yG1 := g1.ToJacobian().ScalarMulFr(y)
	commMinusY := commitment.ToJacobian().Add(yG1.Neg()).ToAffine()

	zG2 := srs.G2Gen.ToJacobian().ScalarMulFr(z)
	tauMinusZ := srs.TauG2.ToJacobian().Add(zG2.Neg()).ToAffine()

	return pairing.PairingsEqual(commMinusY, srs.G2Gen, proof, tauMinusZ)
}

// VerifyBatch checks many (commitment, z, y, proof) tuples at once using
// a single random-linear-combination multi-pairing, the standard
// batch-verification trick: instead of n individual pairing checks, fold
// the n equations with random coefficients r_i into one combined check,
// e(sum r_i*(C_i - y_i*G1), G2) * e(sum r_i*proof_i*z_i, G2) ==
// e(sum r_i*proof_i, tauG2), using two independent pairings rather than
// 2n.
func VerifyBatch(srs *SRS, commitments []Commitment, zs, ys []fr.Element, proofs []Proof, randomness []fr.Element) bool {
	n := len(commitments)
	if len(zs) != n || len(ys) != n || len(proofs) != n || len(randomness) != n {
		return false
	}

	g1 := bls12381.G1Generator()
	lhsAcc := bls12381.G1Jacobian{}
	rhsAcc := bls12381.G1Jacobian{} // sum r_i * proof_i, the TauG2 side
	shiftAcc := bls12381.G1Jacobian{} // sum r_i * z_i * proof_i, folded into the G2Gen side

	for i := 0; i < n; i++ {
		r := randomness[i]
		cMinusY := commitments[i].ToJacobian().Add(g1.ToJacobian().ScalarMulFr(ys[i]).Neg())
		lhsAcc = lhsAcc.Add(cMinusY.ScalarMulFr(r))

		riProof := proofs[i].ToJacobian().ScalarMulFr(r)
		rhsAcc = rhsAcc.Add(riProof)

		riZiProof := riProof.ScalarMulFr(zs[i])
		shiftAcc = shiftAcc.Add(riZiProof)
	}

	lhsPoint := lhsAcc.Add(shiftAcc).ToAffine()
	rhsPoint := rhsAcc.ToAffine()

	return pairing.PairingsEqual(lhsPoint, srs.G2Gen, rhsPoint, srs.TauG2)
}
