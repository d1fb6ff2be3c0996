// Package fr implements the BLS12-381 scalar field 𝔽r (the prime subgroup
// order of G1/G2), in Montgomery form over a 4-limb (256-bit) backing
// array. This is also the base field Banderwagon (curve/banderwagon) is
// defined over, per spec.md's Glossary entry for Banderwagon.
package fr

import (
	"math/big"

	"github.com/holiman/uint256"

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
	r := curveparams.BLS12381R
	modulus = bigToLimbs(r)
	rr := new(big.Int).Lsh(big.NewInt(1), Limbs*64)
	rSq := new(big.Int).Mod(new(big.Int).Mul(rr, rr), r)
	r2 = bigToLimbs(rSq)
	m0inv = invWord(uint64(r.Bits()[0]))
	one := new(big.Int).Mod(rr, r)
	oneMont = bigToLimbs(one)
}

func Zero() Element { return Element{} }
func One() Element  { return oneMont }

// Modulus returns the BLS12-381 scalar field order r.
func Modulus() *big.Int { return new(big.Int).Set(curveparams.BLS12381R) }

func FromBigInt(v *big.Int) Element {
	reduced := new(big.Int).Mod(v, curveparams.BLS12381R)
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

func Double(a Element) Element { return Add(a, a) }

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
	rMinus2 := new(big.Int).Sub(curveparams.BLS12381R, big.NewInt(2))
	return Pow(a, rMinus2)
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

// FromBytesBE decodes a 32-byte big-endian encoding, rejecting values >= r
// (the EIP-4844 "ScalarOutOfRange" contract).
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
func FromUint64(v uint64) Element {
	return FromBigInt(new(big.Int).SetUint64(v))
}

// FromBytesModOrder reduces an arbitrary-length big-endian digest modulo r,
// for Fiat-Shamir squeeze steps (the EIP-4844 challenge, the batch-verify
// randomness base) that must accept a 32-byte SHA-256 digest that may
// exceed the modulus. A digest of exactly 32 bytes — the common case,
// every caller in this module — is parsed through uint256.Int, the scratch
// type the wider corpus uses at this exact digest-to-scalar boundary,
// rather than the more general but heavier math/big path.
func FromBytesModOrder(b []byte) Element {
	if len(b) == 32 {
		v := new(uint256.Int).SetBytes(b)
		return FromBigInt(v.ToBig())
	}
	v := new(big.Int).SetBytes(b)
	return FromBigInt(v)
}

// BatchInvert inverts every element of xs in place using Montgomery's
// trick: one inversion amortized over len(xs) via a running-product chain.
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
