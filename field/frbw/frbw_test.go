package frbw

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSubNeg(t *testing.T) {
	a := FromBigInt(big.NewInt(11))
	b := FromBigInt(big.NewInt(4))
	require.Equal(t, big.NewInt(15), Add(a, b).ToBigInt())
	require.Equal(t, big.NewInt(7), Sub(a, b).ToBigInt())
	require.True(t, IsZero(Add(b, Neg(b))))
}

func TestMulInv(t *testing.T) {
	a := FromBigInt(big.NewInt(2468))
	inv := Inv(a)
	require.True(t, Equal(One(), Mul(a, inv)))
}

func TestFromUint64(t *testing.T) {
	require.Equal(t, big.NewInt(99), FromUint64(99).ToBigInt())
}

func TestBytesRoundTrip(t *testing.T) {
	a := FromBigInt(big.NewInt(314159))
	b := a.ToBytesBE()
	got, ok := FromBytesBE(b[:])
	require.True(t, ok)
	require.True(t, Equal(a, got))
}

func Test2AdicityIsFive(t *testing.T) {
	// The Bandersnatch subgroup order minus one has 2-adicity 5, not 8:
	// the reason curve/banderwagon's IPA domain is an arbitrary-point
	// poly.LagrangeDomain rather than a 256th-root-of-unity poly.Domain.
	m := new(big.Int).Sub(Modulus(), big.NewInt(1))
	count := 0
	for m.Bit(count) == 0 {
		count++
	}
	require.Equal(t, 5, count)
}
