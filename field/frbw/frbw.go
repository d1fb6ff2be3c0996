// Package frbw implements Banderwagon's own scalar field: the order of the
// Bandersnatch prime-order subgroup, distinct from field/fr (the BLS12-381
// scalar field Bandersnatch is defined *over*). IPA exponents (component K)
// live in this field.
package frbw

import (
	"math/big"

	"github.com/ethpairing/curvekit/bigint"
	"github.com/ethpairing/curvekit/curveparams"
)

const Limbs = 4

type Element [Limbs]uint64

var (
	modulus Element
	r2      Element
	m0inv   uint64
	oneMont Element
)

func bigToLimbs(b *big.Int) [Limbs]uint64 {
	var out [Limbs]uint64
	words := b.Bits()
	for i := 0; i < len(words) && i < Limbs; i++ {
		out[i] = uint64(words[i])
	}
	return out
}

func invWord(x uint64) uint64 {
	y := x
	for i := 0; i < 5; i++ {
		y = y * (2 - x*y)
	}
	return -y
}

func init() {
	m := curveparams.BandersnatchSubgroupOrder
	modulus = bigToLimbs(m)
	rr := new(big.Int).Lsh(big.NewInt(1), Limbs*64)
	rSq := new(big.Int).Mod(new(big.Int).Mul(rr, rr), m)
	r2 = bigToLimbs(rSq)
	m0inv = invWord(uint64(m.Bits()[0]))
	one := new(big.Int).Mod(rr, m)
	oneMont = bigToLimbs(one)
}

func Zero() Element { return Element{} }
func One() Element  { return oneMont }

func Modulus() *big.Int { return new(big.Int).Set(curveparams.BandersnatchSubgroupOrder) }

func FromBigInt(v *big.Int) Element {
	reduced := new(big.Int).Mod(v, curveparams.BandersnatchSubgroupOrder)
	plain := bigToLimbs(reduced)
	var out Element
	bigint.MulMont(out[:], plain[:], r2[:], modulus[:], m0inv)
	return out
}

func (a Element) ToBigInt() *big.Int {
	var plain Element
	one := Element{1}
	bigint.MulMont(plain[:], a[:], one[:], modulus[:], m0inv)
	words := make([]big.Word, Limbs)
	for i, x := range plain {
		words[i] = big.Word(x)
	}
	return new(big.Int).SetBits(words)
}

func Add(a, b Element) Element {
	var z Element
	c := bigint.Add(z[:], a[:], b[:])
	if c != 0 || bigint.Cmp(z[:], modulus[:]) >= 0 {
		bigint.Sub(z[:], z[:], modulus[:])
	}
	return z
}

func Sub(a, b Element) Element {
	var z Element
	borrow := bigint.Sub(z[:], a[:], b[:])
	if borrow != 0 {
		bigint.Add(z[:], z[:], modulus[:])
	}
	return z
}

func Neg(a Element) Element {
	if bigint.IsZero(a[:]) {
		return a
	}
	var z Element
	bigint.Sub(z[:], modulus[:], a[:])
	return z
}

func Mul(a, b Element) Element {
	var z Element
	bigint.MulMont(z[:], a[:], b[:], modulus[:], m0inv)
	return z
}

func Square(a Element) Element { return Mul(a, a) }

func Equal(a, b Element) bool { return a == b }

func IsZero(a Element) bool { return bigint.IsZero(a[:]) }

func Pow(a Element, e *big.Int) Element {
	result := One()
	base := a
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			result = Mul(result, base)
		}
		base = Square(base)
	}
	return result
}

func Inv(a Element) Element {
	mMinus2 := new(big.Int).Sub(curveparams.BandersnatchSubgroupOrder, big.NewInt(2))
	return Pow(a, mMinus2)
}

func InvVartime(a Element) Element {
	var plain, inv Element
	one := Element{1}
	bigint.MulMont(plain[:], a[:], one[:], modulus[:], m0inv)
	bigint.InvMod(inv[:], plain[:], modulus[:])
	var z Element
	bigint.MulMont(z[:], inv[:], r2[:], modulus[:], m0inv)
	return z
}

func FromBytesBE(b []byte) (Element, bool) {
	if len(b) != 32 {
		return Element{}, false
	}
	var plain Element
	bigint.FromBytesBE(plain[:], b)
	if bigint.Cmp(plain[:], modulus[:]) >= 0 {
		return Element{}, false
	}
	var z Element
	bigint.MulMont(z[:], plain[:], r2[:], modulus[:], m0inv)
	return z, true
}

func (a Element) ToBytesBE() [32]byte {
	var plain Element
	one := Element{1}
	bigint.MulMont(plain[:], a[:], one[:], modulus[:], m0inv)
	var out [32]byte
	copy(out[:], bigint.ToBytesBE(plain[:]))
	return out
}

// FromUint64 lifts a small integer into the field.
func FromUint64(v uint64) Element { return FromBigInt(new(big.Int).SetUint64(v)) }

// FromBytesModOrder reduces an arbitrary-length big-endian digest modulo
// the subgroup order, for Fiat-Shamir squeeze steps that must accept a
// 32-byte SHA-256 digest that may exceed the modulus.
func FromBytesModOrder(b []byte) Element {
	v := new(big.Int).SetBytes(b)
	return FromBigInt(v)
}

// BatchInvert inverts every element of xs in place using Montgomery's trick.
func BatchInvert(xs []Element) {
	n := len(xs)
	if n == 0 {
		return
	}
	prefix := make([]Element, n)
	acc := One()
	for i, x := range xs {
		prefix[i] = acc
		acc = Mul(acc, x)
	}
	accInv := InvVartime(acc)
	for i := n - 1; i >= 0; i-- {
		orig := xs[i]
		xs[i] = Mul(accInv, prefix[i])
		accInv = Mul(accInv, orig)
	}
}
