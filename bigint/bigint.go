// Package bigint implements fixed-width unsigned integer arithmetic over
// little-endian limb slices. Every routine operates on equal-length slices
// of Word. Add, Sub, Cmov, IsZero and Cmp perform the same sequence of
// memory accesses regardless of the values involved; ShlAddMod, Reduce and
// InvMod loop or branch on the values and are variable-time.
//
// Callers own all storage: every function takes distinct destination and
// source slices except where a name says otherwise (Cmov writes its first
// argument in place). Aliasing destination and source is only supported
// where explicitly documented.
package bigint

import "math/bits"

// Word is the limb type used throughout the package.
type Word = uint64

const WordBits = 64

// Add computes z = x + y and returns the carry out. len(z) == len(x) == len(y).
func Add(z, x, y []Word) Word {
	var c Word
	for i := range z {
		zi, c1 := bits.Add64(x[i], y[i], c)
		z[i] = zi
		c = c1
	}
	return c
}

// Sub computes z = x - y and returns the borrow out.
func Sub(z, x, y []Word) Word {
	var b Word
	for i := range z {
		zi, b1 := bits.Sub64(x[i], y[i], b)
		z[i] = zi
		b = b1
	}
	return b
}

// CondAdd computes z = x + y if ctl else z = x, touching the same memory
// either way (the add is always performed; the result is conditionally
// selected). Returns the carry that would have resulted had ctl been true
// (the caller combines it with a reduction step; an unused carry is safe to
// discard).
func CondAdd(z, x, y []Word, ctl bool) Word {
	tmp := make([]Word, len(z))
	c := Add(tmp, x, y)
	Cmov(tmp, x, !ctl)
	copy(z, tmp)
	return c
}

// Cmov sets dst = src if ctl, else leaves dst unchanged. Every limb is
// written on every call regardless of ctl, using a branchless mask so the
// instruction trace does not depend on the secret condition.
func Cmov(dst, src []Word, ctl bool) {
	var mask Word
	if ctl {
		mask = ^Word(0)
	}
	for i := range dst {
		dst[i] = dst[i] ^ ((dst[i] ^ src[i]) & mask)
	}
}

// IsZero reports whether x is the all-zero limb vector, via an OR-reduction
// so the check has no early exit.
func IsZero(x []Word) bool {
	var acc Word
	for _, w := range x {
		acc |= w
	}
	return acc == 0
}

// Cmp returns -1, 0 or +1 as x is less than, equal to, or greater than y.
// The comparison touches every limb (no early return) so it is safe to use
// on secret-dependent but not fully-secret values (e.g. comparing a field
// element against the modulus during reduction); for fully secret-vs-secret
// comparisons prefer the borrow output of Sub.
func Cmp(x, y []Word) int {
	gt, lt := Word(0), Word(0)
	for i := len(x) - 1; i >= 0; i-- {
		g := boolToWord(x[i] > y[i]) &^ (gt | lt)
		l := boolToWord(x[i] < y[i]) &^ (gt | lt)
		gt |= g
		lt |= l
	}
	switch {
	case gt != 0:
		return 1
	case lt != 0:
		return -1
	default:
		return 0
	}
}

func boolToWord(b bool) Word {
	if b {
		return 1
	}
	return 0
}

// ShlAddMod computes a <- a*2^WordBits + word (mod m); a and m share the
// same length and a must already be < m. The shifted value, overflow limb
// included, is reduced with Reduce, so this routine is not constant-time.
func ShlAddMod(a []Word, word Word, m []Word) {
	n := len(a)
	lo := make([]Word, n)
	hi := make([]Word, n)
	lo[0] = word
	copy(lo[1:], a[:n-1])
	hi[0] = a[n-1]
	Reduce(a, lo, hi, m)
}

// Reduce reduces the double-width value (lo, hi) modulo m into z (length
// len(m)), using plain binary long division via repeated shift-subtract.
// This is used only for bounded, non-secret-size reductions (decoding raw
// byte strings into field elements); it is not constant-time and must not
// be used on secret data mid-computation (see MulMont for that path).
func Reduce(z []Word, lo, hi []Word, m []Word) {
	n := len(m)
	full := make([]Word, 2*n)
	copy(full[:n], lo)
	copy(full[n:], hi)
	rem := make([]Word, n)
	for bit := 2*n*WordBits - 1; bit >= 0; bit-- {
		// rem <<= 1, bringing in the next bit of full from the top.
		carry := (full[bit/WordBits] >> (uint(bit) % WordBits)) & 1
		topBitSet := rem[n-1]>>(WordBits-1) != 0
		for i := n - 1; i > 0; i-- {
			rem[i] = (rem[i] << 1) | (rem[i-1] >> (WordBits - 1))
		}
		rem[0] = (rem[0] << 1) | carry
		if topBitSet || Cmp(rem, m) >= 0 {
			Sub(rem, rem, m)
		}
	}
	copy(z, rem)
}

// MulMont computes z = x*y*R^-1 mod m (Montgomery multiplication) using
// coarsely-integrated operand scanning (CIOS). m0inv is -m[0]^-1 mod 2^64.
// Inputs must satisfy x, y < m; the output satisfies 0 <= z < m. The final
// conditional subtraction is always performed; there is no spare-bit
// parameter for skipping it.
func MulMont(z, x, y, m []Word, m0inv Word) {
	n := len(m)
	t := make([]Word, n+2)
	for i := 0; i < n; i++ {
		// t += x*y[i]
		var c Word
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(x[j], y[i])
			lo, c1 := bits.Add64(lo, t[j], 0)
			hi, c2 := bits.Add64(hi, 0, c1)
			lo, c3 := bits.Add64(lo, c, 0)
			hi, c4 := bits.Add64(hi, 0, c3)
			t[j] = lo
			c = hi + c2 + c4
		}
		lo, c1 := bits.Add64(t[n], c, 0)
		t[n] = lo
		t[n+1] += c1

		// m-reduction: u = t[0]*m0inv mod 2^64; t += u*m, then shift right one limb.
		u := t[0] * m0inv
		var c2 Word
		hi0, lo0 := bits.Mul64(u, m[0])
		lo0, cc := bits.Add64(lo0, t[0], 0)
		c2 = hi0 + cc
		for j := 1; j < n; j++ {
			hi, lo := bits.Mul64(u, m[j])
			lo, cc1 := bits.Add64(lo, t[j], 0)
			hi, cc2 := bits.Add64(hi, 0, cc1)
			lo, cc3 := bits.Add64(lo, c2, 0)
			hi, cc4 := bits.Add64(hi, 0, cc3)
			t[j-1] = lo
			c2 = hi + cc2 + cc4
		}
		lo, cc = bits.Add64(t[n], c2, 0)
		t[n-1] = lo
		t[n] = t[n+1] + cc
		t[n+1] = 0
	}
	copy(z, t[:n])
	if Cmp(z, m) >= 0 || t[n] != 0 {
		Sub(z, z, m)
	}
}

// RedcWide reduces a 2n-limb Montgomery-domain product down to n limbs,
// i.e. computes z = wide * R^-1 mod m where wide = (lo || hi). It applies
// the same word-by-word Montgomery reduction step MulMont interleaves with
// its multiplication, to a finished double-width value. Nothing in this
// module calls it: the tower reduces after every Fp2 operation.
func RedcWide(z, lo, hi []Word, m []Word, m0inv Word) {
	n := len(m)
	t := make([]Word, 2*n+1)
	copy(t[:n], lo)
	copy(t[n:2*n], hi)
	for i := 0; i < n; i++ {
		u := t[i] * m0inv
		var c Word
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(u, m[j])
			lo, c1 := bits.Add64(lo, t[i+j], 0)
			hi, c2 := bits.Add64(hi, 0, c1)
			lo, c3 := bits.Add64(lo, c, 0)
			hi, c4 := bits.Add64(hi, 0, c3)
			t[i+j] = lo
			c = hi + c2 + c4
		}
		// propagate carry beyond the window
		k := i + n
		for c != 0 {
			s, cc := bits.Add64(t[k], c, 0)
			t[k] = s
			c = cc
			k++
		}
	}
	copy(z, t[n:2*n])
	if Cmp(z, m) >= 0 {
		Sub(z, z, m)
	}
}

// InvMod computes the modular inverse of x modulo m using the binary
// extended Euclidean algorithm (Kaliski's almost-inverse method) followed by
// k halvings modulo m. x must be non-zero and coprime to m. The loop is
// capped at 2*n*WordBits iterations but stops as soon as u reaches zero,
// and the branch taken depends on the values, so this routine is
// variable-time.
func InvMod(z, x, m []Word) {
	n := len(m)
	u := append([]Word(nil), x...)
	v := append([]Word(nil), m...)
	r := make([]Word, n)
	s := make([]Word, n)
	r[0] = 1
	k := 0
	limit := 2 * n * WordBits
	for i := 0; i < limit; i++ {
		if IsZero(u) {
			break
		}
		switch {
		case u[0]&1 == 0:
			shr1(u)
			shl1(s)
			k++
		case v[0]&1 == 0:
			shr1(v)
			shl1(r)
			k++
		case Cmp(u, v) >= 0:
			Sub(u, u, v)
			shr1(u)
			Add(r, r, s)
			shl1(s)
			k++
		default:
			Sub(v, v, u)
			shr1(v)
			Add(s, s, r)
			shl1(r)
			k++
		}
	}
	// m - s is x^-1 * 2^k mod m; divide by 2^k via repeated halving modulo m.
	for Cmp(s, m) >= 0 {
		Sub(s, s, m)
	}
	Sub(r, m, s)
	for i := 0; i < k; i++ {
		if r[0]&1 == 1 {
			Add(r, r, m)
		}
		shr1(r)
	}
	copy(z, r)
}

func shr1(x []Word) {
	var carry Word
	for i := len(x) - 1; i >= 0; i-- {
		nc := x[i] & 1
		x[i] = (x[i] >> 1) | (carry << (WordBits - 1))
		carry = nc
	}
}

func shl1(x []Word) {
	var carry Word
	for i := range x {
		nc := x[i] >> (WordBits - 1)
		x[i] = (x[i] << 1) | carry
		carry = nc
	}
}

// FromBytesBE decodes a big-endian byte string into a limb slice,
// rejecting nothing itself (range checks against a modulus are the
// caller's responsibility, per field.FromBytes's contract).
func FromBytesBE(z []Word, b []byte) {
	n := len(z)
	for i := 0; i < n; i++ {
		z[i] = 0
	}
	for i, by := range b {
		// position from the end of b
		pos := len(b) - 1 - i
		limb := pos / 8
		shift := uint(pos%8) * 8
		if limb < n {
			z[limb] |= Word(by) << shift
		}
	}
}

// ToBytesBE encodes z (length n limbs) into a big-endian byte string of
// length 8*n.
func ToBytesBE(z []Word) []byte {
	n := len(z)
	out := make([]byte, 8*n)
	for i := 0; i < n; i++ {
		w := z[i]
		base := len(out) - (i+1)*8
		for j := 7; j >= 0; j-- {
			out[base+j] = byte(w)
			w >>= 8
		}
	}
	return out
}
