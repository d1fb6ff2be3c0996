package kzg4844

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethpairing/curvekit/curve/bls12381"
	"github.com/ethpairing/curvekit/field/fr"
)

// toyContext builds a full FieldElementsPerBlob-width Lagrange-basis SRS
// from a known (never-in-production) secret tau, using the closed-form
// single-term barycentric weight L_i(tau) = (tau^n-1)/n * omega_i/(tau-omega_i)
// rather than poly.BarycentricEval's per-unit-vector path, so building
// the full 4096-element setup for a test stays linear in n.
func toyContext(tau int64) *Context {
	n := FieldElementsPerBlob
	tauElem := fr.FromBigInt(big.NewInt(tau))

	tauPow := fr.Pow(tauElem, big.NewInt(int64(n)))
	coeff := fr.Mul(fr.Sub(tauPow, fr.One()), domain.NInv)

	invDenoms := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		invDenoms[i] = fr.Sub(tauElem, domain.Elements[i])
	}
	fr.BatchInvert(invDenoms)

	g1 := bls12381.G1Generator()
	lagrangeG1 := make([]bls12381.G1Affine, n)
	for i := 0; i < n; i++ {
		li := fr.Mul(coeff, fr.Mul(domain.Elements[i], invDenoms[i]))
		lagrangeG1[i] = g1.ToJacobian().ScalarMulFr(li).ToAffine()
	}

	g2 := bls12381.G2Generator()
	tauG2 := g2.ToJacobian().ScalarMulFr(tauElem).ToAffine()

	return &Context{LagrangeG1: lagrangeG1, G2Gen: g2, TauG2: tauG2}
}

func sampleBlob(seed int64) *Blob {
	var b Blob
	for i := 0; i < FieldElementsPerBlob; i++ {
		e := fr.FromBigInt(big.NewInt(seed*int64(i) + 1))
		chunk := e.ToBytesBE()
		copy(b[i*32:(i+1)*32], chunk[:])
	}
	return &b
}

func TestBlobToCommitmentAndVersionedHash(t *testing.T) {
	ctx := toyContext(777)
	blob := sampleBlob(3)

	commitment, err := BlobToCommitment(ctx, blob)
	require.NoError(t, err)

	vh := ComputeVersionedHash(commitment)
	require.Equal(t, byte(BlobCommitmentVersionKZG), vh[0])
	require.NotZero(t, vh.Big().Uint64())
}

func TestComputeAndVerifyKZGProof(t *testing.T) {
	ctx := toyContext(777)
	blob := sampleBlob(3)

	commitment, err := BlobToCommitment(ctx, blob)
	require.NoError(t, err)

	var z [32]byte
	z[31] = 42
	proof, y, err := ComputeKZGProof(ctx, blob, z)
	require.NoError(t, err)

	ok, err := VerifyKZGProof(ctx, commitment, z, y, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestComputeAndVerifyBlobKZGProof(t *testing.T) {
	ctx := toyContext(777)
	blob := sampleBlob(3)

	commitment, err := BlobToCommitment(ctx, blob)
	require.NoError(t, err)

	proof, err := ComputeBlobKZGProof(ctx, blob, commitment)
	require.NoError(t, err)

	ok, err := VerifyBlobKZGProof(ctx, blob, commitment, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyBlobKZGProofRejectsWrongCommitment(t *testing.T) {
	ctx := toyContext(777)
	blob := sampleBlob(3)
	otherBlob := sampleBlob(5)

	commitment, err := BlobToCommitment(ctx, blob)
	require.NoError(t, err)
	otherCommitment, err := BlobToCommitment(ctx, otherBlob)
	require.NoError(t, err)

	proof, err := ComputeBlobKZGProof(ctx, blob, commitment)
	require.NoError(t, err)

	ok, err := VerifyBlobKZGProof(ctx, blob, otherCommitment, proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyBlobKZGProofBatch(t *testing.T) {
	ctx := toyContext(777)
	const n = 3
	blobs := make([]*Blob, n)
	commitments := make([]Commitment, n)
	proofs := make([]Proof, n)

	for i := 0; i < n; i++ {
		blobs[i] = sampleBlob(int64(i + 1))
		c, err := BlobToCommitment(ctx, blobs[i])
		require.NoError(t, err)
		p, err := ComputeBlobKZGProof(ctx, blobs[i], c)
		require.NoError(t, err)
		commitments[i] = c
		proofs[i] = p
	}

	ok, err := VerifyBlobKZGProofBatch(ctx, blobs, commitments, proofs, [32]byte{})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyBlobKZGProofBatchWithRandomBytes(t *testing.T) {
	ctx := toyContext(777)
	const n = 3
	blobs := make([]*Blob, n)
	commitments := make([]Commitment, n)
	proofs := make([]Proof, n)

	for i := 0; i < n; i++ {
		blobs[i] = sampleBlob(int64(i + 1))
		c, err := BlobToCommitment(ctx, blobs[i])
		require.NoError(t, err)
		p, err := ComputeBlobKZGProof(ctx, blobs[i], c)
		require.NoError(t, err)
		commitments[i] = c
		proofs[i] = p
	}

	var randomBytes [32]byte
	randomBytes[31] = 1
	ok, err := VerifyBlobKZGProofBatch(ctx, blobs, commitments, proofs, randomBytes)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyBlobKZGProofBatchRejectsFlippedCommitment(t *testing.T) {
	ctx := toyContext(777)
	const n = 3
	blobs := make([]*Blob, n)
	commitments := make([]Commitment, n)
	proofs := make([]Proof, n)

	for i := 0; i < n; i++ {
		blobs[i] = sampleBlob(int64(i + 1))
		c, err := BlobToCommitment(ctx, blobs[i])
		require.NoError(t, err)
		p, err := ComputeBlobKZGProof(ctx, blobs[i], c)
		require.NoError(t, err)
		commitments[i] = c
		proofs[i] = p
	}

	commitments[1][47] ^= 0x01

	// A flipped commitment byte either fails to decompress to a valid
	// subgroup point (an error) or decompresses to an unrelated point that
	// the combined pairing check rejects (ok == false); either outcome is
	// a verification failure.
	ok, err := VerifyBlobKZGProofBatch(ctx, blobs, commitments, proofs, [32]byte{})
	require.False(t, err == nil && ok)
}

func TestVerifyBlobKZGProofBatchEmpty(t *testing.T) {
	ctx := toyContext(777)
	ok, err := VerifyBlobKZGProofBatch(ctx, nil, nil, nil, [32]byte{})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyBlobKZGProofBatchRejectsLengthMismatch(t *testing.T) {
	ctx := toyContext(777)
	blob := sampleBlob(1)
	_, err := VerifyBlobKZGProofBatch(ctx, []*Blob{blob}, nil, nil, [32]byte{})
	require.Error(t, err)
}

func TestBlobToCommitmentRejectsNonCanonicalFieldElement(t *testing.T) {
	ctx := toyContext(777)
	var b Blob
	for i := range b {
		b[i] = 0xff
	}
	_, err := BlobToCommitment(ctx, &b)
	require.Error(t, err)
}
