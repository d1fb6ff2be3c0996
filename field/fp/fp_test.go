package fp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroOneRoundTrip(t *testing.T) {
	require.True(t, IsZero(Zero()))
	require.False(t, IsZero(One()))
	require.Equal(t, 0, big.NewInt(0).Cmp(Zero().ToBigInt()))
	require.Equal(t, big.NewInt(1), One().ToBigInt())
}

func TestAddSubNeg(t *testing.T) {
	a := FromBigInt(big.NewInt(5))
	b := FromBigInt(big.NewInt(3))
	sum := Add(a, b)
	require.Equal(t, big.NewInt(8), sum.ToBigInt())

	diff := Sub(a, b)
	require.Equal(t, big.NewInt(2), diff.ToBigInt())

	negB := Neg(b)
	require.True(t, IsZero(Add(b, negB)))
}

func TestMulSquareConsistency(t *testing.T) {
	a := FromBigInt(big.NewInt(7))
	require.True(t, Equal(Square(a), Mul(a, a)))
}

func TestInv(t *testing.T) {
	a := FromBigInt(big.NewInt(12345))
	inv := Inv(a)
	require.True(t, Equal(One(), Mul(a, inv)))
	vInv := InvVartime(a)
	require.True(t, Equal(inv, vInv))
}

func TestPow(t *testing.T) {
	a := FromBigInt(big.NewInt(2))
	got := Pow(a, big.NewInt(10))
	require.Equal(t, big.NewInt(1024), got.ToBigInt())
}

func TestSqrtIfSquare(t *testing.T) {
	a := FromBigInt(big.NewInt(4))
	sq := Square(a)
	root, ok := SqrtIfSquare(sq)
	require.True(t, ok)
	require.True(t, Equal(Square(root), sq))
}

func TestBytesRoundTrip(t *testing.T) {
	a := FromBigInt(big.NewInt(424242))
	b := a.ToBytesBE()
	got, ok := FromBytesBE(b[:])
	require.True(t, ok)
	require.True(t, Equal(a, got))
}

func TestFromBytesBERejectsOutOfRange(t *testing.T) {
	var raw [48]byte
	for i := range raw {
		raw[i] = 0xff
	}
	_, ok := FromBytesBE(raw[:])
	require.False(t, ok)
}

func TestHalveDouble(t *testing.T) {
	a := FromBigInt(big.NewInt(17))
	half := Halve(a)
	require.True(t, Equal(a, Double(half)))
}

func TestCmov(t *testing.T) {
	a := FromBigInt(big.NewInt(1))
	b := FromBigInt(big.NewInt(2))
	x := a
	Cmov(&x, b, false)
	require.True(t, Equal(a, x))
	Cmov(&x, b, true)
	require.True(t, Equal(b, x))
}
