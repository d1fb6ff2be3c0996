package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	x := []Word{1, 0}
	y := []Word{2, 0}
	z := make([]Word, 2)
	c := Add(z, x, y)
	require.Equal(t, Word(0), c)
	require.Equal(t, []Word{3, 0}, z)

	b := Sub(z, x, y)
	require.Equal(t, Word(1), b)
}

func TestCmov(t *testing.T) {
	dst := []Word{1, 1}
	src := []Word{2, 2}
	Cmov(dst, src, false)
	require.Equal(t, []Word{1, 1}, dst)
	Cmov(dst, src, true)
	require.Equal(t, []Word{2, 2}, dst)
}

func TestIsZero(t *testing.T) {
	require.True(t, IsZero([]Word{0, 0, 0}))
	require.False(t, IsZero([]Word{0, 1, 0}))
}

func TestCmp(t *testing.T) {
	require.Equal(t, 0, Cmp([]Word{1, 2}, []Word{1, 2}))
	require.Equal(t, 1, Cmp([]Word{1, 3}, []Word{1, 2}))
	require.Equal(t, -1, Cmp([]Word{1, 1}, []Word{1, 2}))
}

func TestMulMontAgreesWithBigInt(t *testing.T) {
	// A small 2-limb modulus, 2^127 - 1 (prime, though MulMont doesn't
	// require primality, only m[0] odd).
	m := []Word{0xFFFFFFFFFFFFFFFF, 0x7FFFFFFFFFFFFFFF}
	mBig := limbsToBig(m)
	r := new(big.Int).Lsh(big.NewInt(1), 128)
	rInv := new(big.Int).ModInverse(r, mBig)
	require.NotNil(t, rInv)

	m0inv := montM0Inv(m[0])

	xBig := big.NewInt(123456789)
	yBig := big.NewInt(987654321)
	xMont := toMont(xBig, mBig, r)
	yMont := toMont(yBig, mBig, r)

	x := bigToLimbs(xMont, 2)
	y := bigToLimbs(yMont, 2)
	z := make([]Word, 2)
	MulMont(z, x, y, m, m0inv)

	// MulMont(xR, yR) = xR * yR * R^-1 = x*y*R mod m, the Montgomery form
	// of the product.
	want := new(big.Int).Mul(xMont, yMont)
	want.Mod(want, mBig)
	want.Mul(want, rInv)
	want.Mod(want, mBig)

	got := limbsToBig(z)
	require.Equal(t, 0, want.Cmp(got), "MulMont(%v,%v) = %v, want %v", xBig, yBig, got, want)
}

func TestInvMod(t *testing.T) {
	m := []Word{11, 0}
	x := []Word{4, 0} // 4^-1 mod 11 == 3
	z := make([]Word, 2)
	InvMod(z, x, m)
	require.Equal(t, Word(3), z[0])
}

func TestFromBytesBEToBytesBERoundTrip(t *testing.T) {
	b := make([]byte, 16)
	for i := range b {
		b[i] = byte(i + 1)
	}
	z := make([]Word, 2)
	FromBytesBE(z, b)
	out := ToBytesBE(z)
	require.Equal(t, b, out)
}

func montM0Inv(x Word) Word {
	y := x
	for i := 0; i < 5; i++ {
		y = y * (2 - x*y)
	}
	return -y
}

func toMont(v, m, r *big.Int) *big.Int {
	out := new(big.Int).Mul(v, r)
	out.Mod(out, m)
	return out
}

func bigToLimbs(v *big.Int, n int) []Word {
	out := make([]Word, n)
	words := v.Bits()
	for i := 0; i < len(words) && i < n; i++ {
		out[i] = Word(words[i])
	}
	return out
}

func limbsToBig(z []Word) *big.Int {
	words := make([]big.Word, len(z))
	for i, w := range z {
		words[i] = big.Word(w)
	}
	return new(big.Int).SetBits(words)
}
