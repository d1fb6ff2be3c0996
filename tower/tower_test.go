package tower

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethpairing/curvekit/field/fp"
)

func elemFp2(a, b int64) Fp2 {
	return Fp2{C0: fp.FromBigInt(big.NewInt(a)), C1: fp.FromBigInt(big.NewInt(b))}
}

func TestFp2MulSquareConsistency(t *testing.T) {
	a := elemFp2(3, 5)
	require.True(t, Fp2Equal(Fp2Square(a), Fp2Mul(a, a)))
}

func TestFp2Inv(t *testing.T) {
	a := elemFp2(7, 2)
	inv := Fp2Inv(a)
	require.True(t, Fp2Equal(Fp2One(), Fp2Mul(a, inv)))
}

func TestFp2AddSubNeg(t *testing.T) {
	a := elemFp2(4, 9)
	b := elemFp2(1, 2)
	require.True(t, Fp2Equal(a, Fp2Add(Fp2Sub(a, b), b)))
	require.True(t, Fp2IsZero(Fp2Add(b, Fp2Neg(b))))
}

func elemFp6(c0, c1, c2 Fp2) Fp6 {
	return Fp6{C0: c0, C1: c1, C2: c2}
}

func TestFp6MulSquareConsistency(t *testing.T) {
	a := elemFp6(elemFp2(1, 2), elemFp2(3, 4), elemFp2(5, 6))
	require.True(t, Fp6Equal(Fp6Square(a), Fp6Mul(a, a)))
}

func TestFp6Inv(t *testing.T) {
	a := elemFp6(elemFp2(2, 1), elemFp2(0, 3), elemFp2(1, 1))
	inv := Fp6Inv(a)
	require.True(t, Fp6Equal(Fp6One(), Fp6Mul(a, inv)))
}

func TestFp6MulByV(t *testing.T) {
	a := elemFp6(elemFp2(1, 0), elemFp2(2, 0), elemFp2(3, 0))
	v := Fp6{C1: Fp2One()}
	require.True(t, Fp6Equal(Fp6MulByV(a), Fp6Mul(a, v)))
}

func TestFp12MulSquareConsistency(t *testing.T) {
	c0 := elemFp6(elemFp2(1, 1), elemFp2(2, 2), elemFp2(3, 3))
	c1 := elemFp6(elemFp2(4, 4), elemFp2(5, 5), elemFp2(6, 6))
	a := Fp12{C0: c0, C1: c1}
	require.True(t, Fp12Equal(Fp12Square(a), Fp12Mul(a, a)))
}

func TestFp12Inv(t *testing.T) {
	c0 := elemFp6(elemFp2(3, 1), elemFp2(0, 2), elemFp2(1, 0))
	c1 := elemFp6(elemFp2(1, 1), elemFp2(1, 0), elemFp2(0, 1))
	a := Fp12{C0: c0, C1: c1}
	inv := Fp12Inv(a)
	require.True(t, Fp12Equal(Fp12One(), Fp12Mul(a, inv)))
}

func TestFp12Pow(t *testing.T) {
	c0 := elemFp6(elemFp2(2, 0), elemFp2(0, 0), elemFp2(0, 0))
	a := Fp12{C0: c0}
	sq := Fp12Mul(a, a)
	require.True(t, Fp12Equal(sq, Fp12Pow(a, big.NewInt(2))))
}
