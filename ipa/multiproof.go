package ipa

import (
	"github.com/ethpairing/curvekit/curve/banderwagon"
	"github.com/ethpairing/curvekit/estatus"
	"github.com/ethpairing/curvekit/field/frbw"
)

// Opening describes one polynomial opening to be folded into a
// multiproof: the vector commitment, the full evaluation vector (prover
// side only — Values is nil for a verifier-side Opening), the domain
// index being opened (Verkle openings are always at one of the 256 child
// positions), and the claimed value there.
type Opening struct {
	Commitment banderwagon.Element
	Values     []frbw.Element // prover only
	ZIndex     int
	Y          frbw.Element
}

// MultiproofProof aggregates many single-point openings (each against its
// own commitment, at its own domain index) into one IPA proof, per
// spec.md §4.K and the EIP-6800 execution-witness multiproof format.
// Grounded on MultipointProof/VerifyMultipointProof in
// _examples/other_examples/035a1e10_wyf-ACCEPT-eth2030__pkg-verkle-ipa_proof.go.go,
// generalized from that file's single shared evaluation point to one
// domain index per opening (the real Verkle multiproof shape) via the
// standard g/h telescoping construction.
type MultiproofProof struct {
	D        banderwagon.Element
	IPAProof *Proof
}

// ProveMultiproof builds an aggregated opening proof for openings, each
// of which must carry its prover-side Values vector.
func ProveMultiproof(crs *CRS, openings []Opening) (*MultiproofProof, error) {
	if len(openings) == 0 {
		return nil, estatus.ErrInputsLengthMismatch
	}

	tr := NewTranscript("multiproof")
	for _, o := range openings {
		tr.AppendPoint("C", o.Commitment)
		tr.AppendScalar("z", frbw.FromUint64(uint64(o.ZIndex)))
		tr.AppendScalar("y", o.Y)
	}
	r := tr.ChallengeScalar("r")

	g := make([]frbw.Element, DomainSize)
	rPow := frbw.One()
	for _, o := range openings {
		qi := crs.Domain.DifferenceQuotientInDomain(o.Values, o.ZIndex)
		for i := 0; i < DomainSize; i++ {
			g[i] = frbw.Add(g[i], frbw.Mul(rPow, qi[i]))
		}
		rPow = frbw.Mul(rPow, r)
	}

	d, err := Commit(crs, g)
	if err != nil {
		return nil, err
	}
	tr.AppendPoint("D", d)
	t := tr.ChallengeScalar("t")

	h := make([]frbw.Element, DomainSize)
	rPow = frbw.One()
	for _, o := range openings {
		denom := frbw.Sub(t, crs.Domain.Points[o.ZIndex])
		coeff := frbw.Mul(rPow, frbw.InvVartime(denom))
		for i := 0; i < DomainSize; i++ {
			h[i] = frbw.Add(h[i], frbw.Mul(coeff, o.Values[i]))
		}
		rPow = frbw.Mul(rPow, r)
	}

	e, err := Commit(crs, h)
	if err != nil {
		return nil, err
	}

	hMinusG := make([]frbw.Element, DomainSize)
	for i := range hMinusG {
		hMinusG[i] = frbw.Sub(h[i], g[i])
	}
	eMinusD := banderwagon.Add(e, banderwagon.Neg(d))

	tr.AppendScalar("t", t) // absorbed as VerifyMultiproof does; Prove below starts its own "ipa" transcript and does not read tr (spec §6.4's "t" label)
	ipaProof, _, err := Prove(crs, hMinusG, eMinusD, t)
	if err != nil {
		return nil, err
	}

	return &MultiproofProof{D: d, IPAProof: ipaProof}, nil
}

// VerifyMultiproof checks an aggregated multiproof against the public
// per-opening data (commitment, domain index, claimed value — no prover-
// side Values needed).
func VerifyMultiproof(crs *CRS, openings []Opening, proof *MultiproofProof) (bool, error) {
	if len(openings) == 0 {
		return false, estatus.ErrInputsLengthMismatch
	}

	tr := NewTranscript("multiproof")
	for _, o := range openings {
		tr.AppendPoint("C", o.Commitment)
		tr.AppendScalar("z", frbw.FromUint64(uint64(o.ZIndex)))
		tr.AppendScalar("y", o.Y)
	}
	r := tr.ChallengeScalar("r")

	tr.AppendPoint("D", proof.D)
	t := tr.ChallengeScalar("t")
	tr.AppendScalar("t", t)

	e := banderwagon.Identity()
	y := frbw.Zero()
	rPow := frbw.One()
	for _, o := range openings {
		denom := frbw.Sub(t, crs.Domain.Points[o.ZIndex])
		invDenom := frbw.InvVartime(denom)
		coeff := frbw.Mul(rPow, invDenom)
		e = banderwagon.Add(e, banderwagon.ScalarMulFrbw(o.Commitment, coeff))
		y = frbw.Add(y, frbw.Mul(coeff, o.Y))
		rPow = frbw.Mul(rPow, r)
	}

	eMinusD := banderwagon.Add(e, banderwagon.Neg(proof.D))
	return Verify(crs, eMinusD, t, y, proof.IPAProof)
}
