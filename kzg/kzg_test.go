package kzg

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethpairing/curvekit/curve/bls12381"
	"github.com/ethpairing/curvekit/field/fr"
	"github.com/ethpairing/curvekit/poly"
)

// toySRS builds a trusted setup for the given domain size from a known
// (never-in-production) secret tau, the same shape a real setup ceremony
// produces but computed directly for test purposes.
func toySRS(size int, tau int64) *SRS {
	domain := poly.NewFrDomain(size)
	tauElem := fr.FromBigInt(big.NewInt(tau))
	g1 := bls12381.G1Generator()

	lagrangeG1 := make([]bls12381.G1Affine, size)
	for i := 0; i < size; i++ {
		unit := make([]fr.Element, size)
		unit[i] = fr.One()
		li := poly.BarycentricEval(domain, unit, tauElem)
		lagrangeG1[i] = g1.ToJacobian().ScalarMulFr(li).ToAffine()
	}

	g2 := bls12381.G2Generator()
	tauG2 := g2.ToJacobian().ScalarMulFr(tauElem).ToAffine()

	return &SRS{Domain: domain, LagrangeG1: lagrangeG1, G2Gen: g2, TauG2: tauG2}
}

func sampleEvals(size int) []fr.Element {
	out := make([]fr.Element, size)
	for i := range out {
		out[i] = fr.FromBigInt(big.NewInt(int64(3*i*i + 7*i + 1)))
	}
	return out
}

func TestCommitProveVerifyOffDomainPoint(t *testing.T) {
	srs := toySRS(4, 1234567)
	evals := sampleEvals(4)

	commitment, err := Commit(srs, evals)
	require.NoError(t, err)

	z := fr.FromBigInt(big.NewInt(99))
	proof, y, err := Prove(srs, evals, z)
	require.NoError(t, err)

	require.True(t, Verify(srs, commitment, z, y, proof))
}

func TestCommitProveVerifyInDomainPoint(t *testing.T) {
	srs := toySRS(4, 1234567)
	evals := sampleEvals(4)

	commitment, err := Commit(srs, evals)
	require.NoError(t, err)

	z := srs.Domain.Elements[2]
	proof, y, err := Prove(srs, evals, z)
	require.NoError(t, err)
	require.True(t, fr.Equal(evals[2], y))

	require.True(t, Verify(srs, commitment, z, y, proof))
}

func TestVerifyRejectsWrongValue(t *testing.T) {
	srs := toySRS(4, 1234567)
	evals := sampleEvals(4)

	commitment, err := Commit(srs, evals)
	require.NoError(t, err)

	z := fr.FromBigInt(big.NewInt(99))
	proof, y, err := Prove(srs, evals, z)
	require.NoError(t, err)

	wrongY := fr.Add(y, fr.One())
	require.False(t, Verify(srs, commitment, z, wrongY, proof))
}

func TestCommitRejectsLengthMismatch(t *testing.T) {
	srs := toySRS(4, 1234567)
	_, err := Commit(srs, sampleEvals(3))
	require.Error(t, err)
}

func TestVerifyBatch(t *testing.T) {
	srs := toySRS(4, 1234567)

	const n = 3
	commitments := make([]Commitment, n)
	zs := make([]fr.Element, n)
	ys := make([]fr.Element, n)
	proofs := make([]Proof, n)
	randomness := make([]fr.Element, n)

	for i := 0; i < n; i++ {
		evals := sampleEvals(4)
		for j := range evals {
			evals[j] = fr.Add(evals[j], fr.FromBigInt(big.NewInt(int64(i))))
		}
		commitment, err := Commit(srs, evals)
		require.NoError(t, err)

		z := fr.FromBigInt(big.NewInt(int64(50 + i)))
		proof, y, err := Prove(srs, evals, z)
		require.NoError(t, err)

		commitments[i] = commitment
		zs[i] = z
		ys[i] = y
		proofs[i] = proof
		randomness[i] = fr.FromBigInt(big.NewInt(int64(11 + i*i)))
	}

	require.True(t, VerifyBatch(srs, commitments, zs, ys, proofs, randomness))
}

func TestVerifyBatchRejectsLengthMismatch(t *testing.T) {
	srs := toySRS(4, 1234567)
	require.False(t, VerifyBatch(srs, nil, []fr.Element{fr.Zero()}, nil, nil, nil))
}
