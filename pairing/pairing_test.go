package pairing

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethpairing/curvekit/curve/bls12381"
	"github.com/ethpairing/curvekit/tower"
)

func TestPairIdentityIsGTIdentity(t *testing.T) {
	g1 := bls12381.G1Generator()
	g2 := bls12381.G2Generator()
	require.True(t, tower.Fp12Equal(GTIdentity(), Pair(bls12381.G1Identity(), g2)))
	require.True(t, tower.Fp12Equal(GTIdentity(), Pair(g1, bls12381.G2Identity())))
}

func TestPairingBilinearInFirstArgument(t *testing.T) {
	g1 := bls12381.G1Generator()
	g2 := bls12381.G2Generator()
	a := big.NewInt(7)

	lhs := Pair(g1.ToJacobian().ScalarMul(a).ToAffine(), g2)
	base := Pair(g1, g2)
	rhs := tower.Fp12Pow(base, a)
	require.True(t, tower.Fp12Equal(lhs, rhs))
}

func TestPairingBilinearInSecondArgument(t *testing.T) {
	g1 := bls12381.G1Generator()
	g2 := bls12381.G2Generator()
	b := big.NewInt(11)

	lhs := Pair(g1, g2.ToJacobian().ScalarMul(b).ToAffine())
	base := Pair(g1, g2)
	rhs := tower.Fp12Pow(base, b)
	require.True(t, tower.Fp12Equal(lhs, rhs))
}

func TestPairingBilinearBothArguments(t *testing.T) {
	g1 := bls12381.G1Generator()
	g2 := bls12381.G2Generator()
	a, b := big.NewInt(3), big.NewInt(5)
	ab := new(big.Int).Mul(a, b)

	lhs := Pair(g1.ToJacobian().ScalarMul(a).ToAffine(), g2.ToJacobian().ScalarMul(b).ToAffine())
	base := Pair(g1, g2)
	rhs := tower.Fp12Pow(base, ab)
	require.True(t, tower.Fp12Equal(lhs, rhs))
}

func TestMultiPairMatchesProductOfPairs(t *testing.T) {
	g1 := bls12381.G1Generator()
	g2 := bls12381.G2Generator()
	p2 := g1.ToJacobian().ScalarMul(big.NewInt(2)).ToAffine()

	got, ok := MultiPair([]bls12381.G1Affine{g1, p2}, []bls12381.G2Affine{g2, g2})
	require.True(t, ok)

	want := tower.Fp12Mul(Pair(g1, g2), Pair(p2, g2))
	require.True(t, tower.Fp12Equal(got, want))
}

func TestMultiPairRejectsLengthMismatch(t *testing.T) {
	g1 := bls12381.G1Generator()
	g2 := bls12381.G2Generator()
	_, ok := MultiPair([]bls12381.G1Affine{g1}, []bls12381.G2Affine{g2, g2})
	require.False(t, ok)
}

func TestPairingsEqualHoldsForSameScalarOnBothSides(t *testing.T) {
	g1 := bls12381.G1Generator()
	g2 := bls12381.G2Generator()
	k := big.NewInt(42)
	p := g1.ToJacobian().ScalarMul(k).ToAffine()
	require.True(t, PairingsEqual(p, g2, g1, g2.ToJacobian().ScalarMul(k).ToAffine()))
}

func TestPairingsEqualFailsForDifferentScalars(t *testing.T) {
	g1 := bls12381.G1Generator()
	g2 := bls12381.G2Generator()
	p := g1.ToJacobian().ScalarMul(big.NewInt(3)).ToAffine()
	q := g1.ToJacobian().ScalarMul(big.NewInt(4)).ToAffine()
	require.False(t, PairingsEqual(p, g2, q, g2))
}
