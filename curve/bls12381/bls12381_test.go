package bls12381

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestG1GeneratorOnCurveAndInSubgroup(t *testing.T) {
	g := G1Generator()
	require.True(t, g.IsOnCurve())
	require.True(t, g.IsInSubgroup())
}

func TestG1DoubleEqualsAdd(t *testing.T) {
	g := G1Generator().ToJacobian()
	doubled := g.Double()
	added := g.Add(g)
	require.Equal(t, doubled.ToAffine(), added.ToAffine())
}

func TestG1ScalarMulMatchesRepeatedAdd(t *testing.T) {
	g := G1Generator().ToJacobian()
	acc := G1Jacobian{}
	for i := 0; i < 5; i++ {
		acc = acc.Add(g)
	}
	got := g.ScalarMul(big.NewInt(5))
	require.Equal(t, acc.ToAffine(), got.ToAffine())
}

func TestG1ScalarMulZeroIsIdentity(t *testing.T) {
	g := G1Generator().ToJacobian()
	got := g.ScalarMul(big.NewInt(0))
	require.True(t, got.ToAffine().IsIdentity())
}

func TestG1NegAddIsIdentity(t *testing.T) {
	g := G1Generator().ToJacobian()
	sum := g.Add(g.Neg())
	require.True(t, sum.ToAffine().IsIdentity())
}

func TestG1CompressDecompressRoundTrip(t *testing.T) {
	g := G1Generator().ToJacobian().ScalarMul(big.NewInt(12345)).ToAffine()
	enc := CompressG1(g)
	got, err := DecompressG1(enc)
	require.NoError(t, err)
	require.Equal(t, g, got)
}

func TestG1CompressDecompressIdentity(t *testing.T) {
	enc := CompressG1(G1Identity())
	got, err := DecompressG1(enc)
	require.NoError(t, err)
	require.True(t, got.IsIdentity())
}

func TestBatchToAffine(t *testing.T) {
	g := G1Generator().ToJacobian()
	pts := []G1Jacobian{g, g.Double(), g.Add(g.Double())}
	affines := BatchToAffine(pts)
	for i, p := range pts {
		require.Equal(t, p.ToAffine(), affines[i])
	}
}

func TestG2GeneratorOnCurveAndInSubgroup(t *testing.T) {
	g := G2Generator()
	require.True(t, g.IsOnCurve())
	require.True(t, g.IsInSubgroup())
}

func TestG2DoubleEqualsAdd(t *testing.T) {
	g := G2Generator().ToJacobian()
	require.Equal(t, g.Double().ToAffine(), g.Add(g).ToAffine())
}

func TestG2ScalarMulMatchesRepeatedAdd(t *testing.T) {
	g := G2Generator().ToJacobian()
	acc := G2Jacobian{}
	for i := 0; i < 4; i++ {
		acc = acc.Add(g)
	}
	got := g.ScalarMul(big.NewInt(4))
	require.Equal(t, acc.ToAffine(), got.ToAffine())
}

func TestG2CompressDecompressRoundTrip(t *testing.T) {
	g := G2Generator().ToJacobian().ScalarMul(big.NewInt(777)).ToAffine()
	enc := CompressG2(g)
	got, err := DecompressG2(enc)
	require.NoError(t, err)
	require.Equal(t, g, got)
}

func TestG2CompressDecompressIdentity(t *testing.T) {
	enc := CompressG2(G2Identity())
	got, err := DecompressG2(enc)
	require.NoError(t, err)
	require.True(t, got.IsIdentity())
}

func TestDecompressG1RejectsBadEncoding(t *testing.T) {
	var b [48]byte // compression flag bit unset
	_, err := DecompressG1(b)
	require.Error(t, err)
}
