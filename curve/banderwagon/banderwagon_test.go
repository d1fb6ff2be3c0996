package banderwagon

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethpairing/curvekit/field/fr"
)

func TestGeneratorOnCurve(t *testing.T) {
	require.True(t, Generator().IsOnCurve())
}

func TestIdentityOnCurve(t *testing.T) {
	require.True(t, Identity().IsOnCurve())
}

func TestAddIdentity(t *testing.T) {
	g := Generator()
	require.True(t, Equal(g, Add(g, Identity())))
}

func TestDoubleEqualsAdd(t *testing.T) {
	g := Generator()
	require.True(t, Equal(Double(g), Add(g, g)))
}

func TestNegAddIsIdentity(t *testing.T) {
	g := Generator()
	require.True(t, Equal(Identity(), Add(g, Neg(g))))
}

func TestScalarMulMatchesRepeatedAdd(t *testing.T) {
	g := Generator()
	acc := Identity()
	for i := 0; i < 7; i++ {
		acc = Add(acc, g)
	}
	got := ScalarMul(g, big.NewInt(7))
	require.True(t, Equal(acc, got))
}

func TestScalarMulZeroIsIdentity(t *testing.T) {
	g := Generator()
	got := ScalarMul(g, big.NewInt(0))
	require.True(t, Equal(Identity(), got))
}

func TestEqualCollapsesTwoTorsionTwin(t *testing.T) {
	g := Generator()
	twin := Element{X: fr.Neg(g.X), Y: fr.Neg(g.Y)}
	require.True(t, twin.IsOnCurve())
	require.True(t, Equal(g, twin))
}

func TestCompressCanonicalizesTwin(t *testing.T) {
	g := Generator()
	twin := Element{X: fr.Neg(g.X), Y: fr.Neg(g.Y)}
	require.Equal(t, Compress(g), Compress(twin))
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	g := ScalarMul(Generator(), big.NewInt(999))
	enc := Compress(g)
	got, err := Decompress(enc)
	require.NoError(t, err)
	require.True(t, Equal(g, got))
}

func TestCompressDecompressIdentity(t *testing.T) {
	enc := Compress(Identity())
	got, err := Decompress(enc)
	require.NoError(t, err)
	require.True(t, Equal(Identity(), got))
}

func TestGeneratorsFromSeedAreOnCurveAndDistinct(t *testing.T) {
	gens := GeneratorsFromSeed("test-basis", 8)
	require.Len(t, gens, 8)
	seen := make(map[[32]byte]bool)
	for _, g := range gens {
		require.True(t, g.IsOnCurve())
		enc := Compress(g)
		require.False(t, seen[enc], "duplicate generator")
		seen[enc] = true
	}
}

func TestGeneratorsFromSeedDeterministic(t *testing.T) {
	a := GeneratorsFromSeed("fixed-label", 4)
	b := GeneratorsFromSeed("fixed-label", 4)
	for i := range a {
		require.True(t, Equal(a[i], b[i]))
	}
}
