// Package fp implements the BLS12-381 base field 𝔽p in
// Montgomery form over a 6-limb (384-bit) little-endian backing array. A
// Element stores a·R mod p where R = 2^384; FromBigInt/ToBigInt convert to
// and from the logical value. All arithmetic methods are constant-time:
// they touch the same limbs and perform the same operations regardless of
// the values involved. Inputs are asserted to already be < p; that is a
// precondition, not a checked error (§7.2 — domain errors on trusted values
// are programmer errors).
package fp

import (
	"math/big"

	"github.com/ethpairing/curvekit/bigint"
	"github.com/ethpairing/curvekit/curveparams"
)

const Limbs = 6

// Element is a field element in Montgomery form, little-endian limbs.
type Element [Limbs]uint64

var (
	modulus Element
	r2      Element // R^2 mod p
	m0inv   uint64   // -p^-1 mod 2^64
	oneMont Element  // R mod p, i.e. Montgomery form of 1
	halfP   [Limbs]uint64 // (p-1)/2 as a plain (non-Montgomery) integer, for sqrt sign canonicalization
)

func bigToLimbs(b *big.Int) [Limbs]uint64 {
	var out [Limbs]uint64
	words := b.Bits()
	for i := 0; i < len(words) && i < Limbs; i++ {
		out[i] = uint64(words[i])
	}
	return out
}

func init() {
	p := curveparams.BLS12381P
	modulus = bigToLimbs(p)

	r := new(big.Int).Lsh(big.NewInt(1), Limbs*64)
	rSq := new(big.Int).Mod(new(big.Int).Mul(r, r), p)
	r2 = bigToLimbs(rSq)

	// m0inv = -p^-1 mod 2^64, via Newton's method on 2-adic inverses.
	m0inv = invWord(uint64(p.Bits()[0]))

	one := new(big.Int).Mod(r, p)
	oneMont = bigToLimbs(one)

	half := new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)
	halfP = bigToLimbs(half)
}

// invWord computes -x^-1 mod 2^64 for odd x, by Newton-Raphson iteration
// on the 2-adic inverse (doubling precision each step).
func invWord(x uint64) uint64 {
	y := x
	for i := 0; i < 5; i++ {
		y = y * (2 - x*y)
	}
	return -y
}

// Zero returns the additive identity.
func Zero() Element { return Element{} }

// One returns the multiplicative identity.
func One() Element { return oneMont }

// FromBigInt converts a logical value (0 <= v < p) into Montgomery form.
func FromBigInt(v *big.Int) Element {
	reduced := new(big.Int).Mod(v, curveparams.BLS12381P)
	plain := bigToLimbs(reduced)
	var out Element
	bigint.MulMont(out[:], plain[:], r2[:], modulus[:], m0inv)
	return out
}

// ToBigInt converts a field element back to its logical value.
func (a Element) ToBigInt() *big.Int {
	var plain Element
	one := Element{1}
	bigint.MulMont(plain[:], a[:], one[:], modulus[:], m0inv)
	return new(big.Int).SetBits(wordsToBits(plain[:]))
}

func wordsToBits(w []uint64) []big.Word {
	out := make([]big.Word, len(w))
	for i, x := range w {
		out[i] = big.Word(x)
	}
	return out
}

// Modulus returns the field modulus p.
func Modulus() *big.Int { return new(big.Int).Set(curveparams.BLS12381P) }

// Add returns a+b mod p.
func Add(a, b Element) Element {
	var z Element
	c := bigint.Add(z[:], a[:], b[:])
	if c != 0 || bigint.Cmp(z[:], modulus[:]) >= 0 {
		bigint.Sub(z[:], z[:], modulus[:])
	}
	return z
}

// Sub returns a-b mod p.
func Sub(a, b Element) Element {
	var z Element
	borrow := bigint.Sub(z[:], a[:], b[:])
	if borrow != 0 {
		bigint.Add(z[:], z[:], modulus[:])
	}
	return z
}

// Neg returns -a mod p.
func Neg(a Element) Element {
	if bigint.IsZero(a[:]) {
		return a
	}
	var z Element
	bigint.Sub(z[:], modulus[:], a[:])
	return z
}

// Double returns 2a mod p.
func Double(a Element) Element { return Add(a, a) }

// Halve returns a/2 mod p: adds p if a is odd, then shifts right one bit.
func Halve(a Element) Element {
	var z Element
	if a[0]&1 == 1 {
		bigint.Add(z[:], a[:], modulus[:])
	} else {
		z = a
	}
	var carry uint64
	for i := Limbs - 1; i >= 0; i-- {
		nc := z[i] & 1
		z[i] = (z[i] >> 1) | (carry << 63)
		carry = nc
	}
	return z
}

// Mul returns a*b mod p.
func Mul(a, b Element) Element {
	var z Element
	bigint.MulMont(z[:], a[:], b[:], modulus[:], m0inv)
	return z
}

// Square returns a^2 mod p.
func Square(a Element) Element { return Mul(a, a) }

// Equal reports whether a == b.
func Equal(a, b Element) bool { return a == b }

// IsZero reports whether a is the additive identity.
func IsZero(a Element) bool { return bigint.IsZero(a[:]) }

// Pow returns a^e mod p via square-and-multiply over the bits of e (a
// plain, non-secret big.Int exponent — used for Frobenius powers and the
// public final-exponentiation hard part, not secret scalars).
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

// Inv returns a^-1 mod p via Fermat's little theorem (a^(p-2)), constant
// time in the exponent's fixed bit length since p is public.
func Inv(a Element) Element {
	pMinus2 := new(big.Int).Sub(curveparams.BLS12381P, big.NewInt(2))
	return Pow(a, pMinus2)
}

// InvVartime returns a^-1 mod p via the binary extended Euclidean
// algorithm. Only safe to call on public (non-secret) field elements.
func InvVartime(a Element) Element {
	var plain, inv Element
	one := Element{1}
	bigint.MulMont(plain[:], a[:], one[:], modulus[:], m0inv)
	bigint.InvMod(inv[:], plain[:], modulus[:])
	var z Element
	bigint.MulMont(z[:], inv[:], r2[:], modulus[:], m0inv)
	return z
}

// IsSquare reports whether a is a quadratic residue mod p, via Euler's
// criterion a^((p-1)/2) == 1.
func IsSquare(a Element) bool {
	if IsZero(a) {
		return true
	}
	halfExp := new(big.Int).Rsh(new(big.Int).Sub(curveparams.BLS12381P, big.NewInt(1)), 1)
	return Equal(Pow(a, halfExp), One())
}

// SqrtIfSquare returns (root, true) if a is a quadratic residue (p ≡ 3 mod
// 4 for BLS12-381, so root = a^((p+1)/4)); the returned root is undefined
// if a is not square, hence the boolean the caller must check. The
// returned root is canonicalized to the lexicographically smaller
// representative (root <= (p-1)/2).
func SqrtIfSquare(a Element) (Element, bool) {
	if !IsSquare(a) {
		return Element{}, false
	}
	if IsZero(a) {
		return Element{}, true
	}
	exp := new(big.Int).Rsh(new(big.Int).Add(curveparams.BLS12381P, big.NewInt(1)), 2)
	root := Pow(a, exp)
	rootPlain := root.ToBigInt()
	if rootPlain.Cmp(new(big.Int).SetBits(wordsToBits(halfP[:]))) > 0 {
		root = Neg(root)
	}
	return root, true
}

// FromBytesBE decodes a 48-byte big-endian encoding into a field element,
// rejecting encodings >= p.
func FromBytesBE(b []byte) (Element, bool) {
	if len(b) != 48 {
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

// ToBytesBE encodes a into a 48-byte big-endian string.
func (a Element) ToBytesBE() [48]byte {
	var plain Element
	one := Element{1}
	bigint.MulMont(plain[:], a[:], one[:], modulus[:], m0inv)
	var out [48]byte
	copy(out[:], bigint.ToBytesBE(plain[:]))
	return out
}

// Cmov sets z to x if ctl, else leaves z unchanged (branchless select).
func Cmov(z *Element, x Element, ctl bool) {
	bigint.Cmov(z[:], x[:], ctl)
}
