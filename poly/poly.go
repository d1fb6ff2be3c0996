// Package poly implements evaluation-form polynomial arithmetic over a
// multiplicative roots-of-unity domain, per spec.md §4.H: domain
// construction, barycentric evaluation, and the in-domain/off-domain
// difference-quotient operators KZG's prove step and Verkle's inner
// quotients both reduce to. Grounded on the domain/quotient helpers in
// _examples/other_examples/70e2daa5_ethereum-go-verkle__config.go.go
// (innerQuotients/outerQuotients/evalPoly), generalized here to work over
// either field/fr (the KZG/EIP-4844 4096-element blob domain) or
// field/frbw (the IPA/Verkle 256-element domain) via a small Field
// interface rather than one hardcoded field, since both domains in this
// module's scope need the identical barycentric machinery.
package poly

import "math/big"

// Field is the minimal scalar-field surface this package needs. Both
// field/fr and field/frbw satisfy it via the adapter types in domain.go.
type Field[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Inv(a T) T
	IsZero(a T) bool
	Equal(a, b T) bool
	Zero() T
	One() T
	FromBigInt(v *big.Int) T
	ToBigInt(a T) *big.Int
}

// Domain is a multiplicative subgroup {omega^0, ..., omega^(n-1)} of a
// scalar field, generated from a primitive n-th root of unity, plus the
// precomputed data barycentric evaluation and quotient construction need.
type Domain[T any] struct {
	F        Field[T]
	Size     int
	Elements []T // omega^0 .. omega^(n-1)
	NInv     T   // 1/n
}

// NewDomain builds the Domain {root^0, ..., root^(size-1)}; root must be a
// primitive size-th root of unity. The caller computes it: NewFrDomain
// uses generator^((r-1)/size).
func NewDomain[T any](f Field[T], size int, root T) *Domain[T] {
	elements := make([]T, size)
	cur := f.One()
	for i := 0; i < size; i++ {
		elements[i] = cur
		cur = f.Mul(cur, root)
	}
	return &Domain[T]{
		F:        f,
		Size:     size,
		Elements: elements,
		NInv:     f.Inv(f.FromBigInt(big.NewInt(int64(size)))),
	}
}

// EvalAtDomainPoint returns the i-th domain element's evaluation, i.e.
// just Elements[i] — exposed for callers that index the domain directly.
func (d *Domain[T]) EvalAtDomainPoint(i int) T { return d.Elements[i] }

// IndexOf returns (index, true) if z equals a domain element, else
// (0, false). Used to distinguish the in-domain (§4.H "division by
// zero avoided via L'Hopital-style quotient") and off-domain evaluation
// cases.
func (d *Domain[T]) IndexOf(z T) (int, bool) {
	for i, e := range d.Elements {
		if d.F.Equal(e, z) {
			return i, true
		}
	}
	return 0, false
}

// BarycentricEval evaluates the polynomial given in evaluation form
// (evals[i] = p(omega^i)) at an arbitrary point z, using the barycentric
// formula with precomputed weights:
//
//	p(z) = (z^n - 1)/n * sum_i evals[i] * omega^i / (z - omega^i)
//
// If z is itself a domain point, the direct evaluation is returned
// instead (the barycentric formula has a removable singularity there).
func BarycentricEval[T any](d *Domain[T], evals []T, z T) T {
	f := d.F
	if idx, ok := d.IndexOf(z); ok {
		return evals[idx]
	}

	numTerms := make([]T, d.Size)
	denTerms := make([]T, d.Size)
	for i := 0; i < d.Size; i++ {
		denTerms[i] = f.Sub(z, d.Elements[i])
	}
	invDen := batchInvert(f, denTerms)

	acc := f.Zero()
	for i := 0; i < d.Size; i++ {
		numTerms[i] = f.Mul(evals[i], d.Elements[i])
		term := f.Mul(numTerms[i], invDen[i])
		acc = f.Add(acc, term)
	}

	zn := f.One()
	for i := 0; i < d.Size; i++ {
		zn = f.Mul(zn, z)
	}
	// zn currently holds z^Size via repeated multiplication above is O(n);
	// cheaper to use z^Size computed by repeated squaring, but Size is
	// small (<=4096) and this runs once per evaluation, not per domain point.
	coeff := f.Mul(f.Sub(zn, f.One()), d.NInv)
	return f.Mul(coeff, acc)
}

// DifferenceQuotientOffDomain computes q(X) in evaluation form for
// q(X) = (p(X) - y) / (X - z) where z is NOT a domain point and y =
// BarycentricEval(d, evals, z) — the "compute a function in eval form at
// a point outside of the domain" case per the outerQuotients grounding.
func DifferenceQuotientOffDomain[T any](d *Domain[T], evals []T, z, y T) []T {
	f := d.F
	q := make([]T, d.Size)
	dens := make([]T, d.Size)
	for i := 0; i < d.Size; i++ {
		dens[i] = f.Sub(d.Elements[i], z)
	}
	invDens := batchInvert(f, dens)
	for i := 0; i < d.Size; i++ {
		num := f.Sub(evals[i], y)
		q[i] = f.Mul(num, invDens[i])
	}
	return q
}

// DifferenceQuotientInDomain computes q(X) = (p(X) - p(omega^index)) /
// (X - omega^index) in evaluation form when the opening point IS the
// index-th domain element, per the innerQuotients grounding: q[index]
// itself is the sum of all other entries' contributions (there is no
// direct formula at i==index since X-omega^index vanishes there).
func DifferenceQuotientInDomain[T any](d *Domain[T], evals []T, index int) []T {
	f := d.F
	n := d.Size
	q := make([]T, n)
	y := evals[index]

	dens := make([]T, n)
	for i := 0; i < n; i++ {
		if i == index {
			continue
		}
		dens[i] = f.Sub(d.Elements[i], d.Elements[index])
	}

	for i := 0; i < n; i++ {
		if i == index {
			continue
		}
		invDen := f.Inv(dens[i])
		num := f.Sub(evals[i], y)
		q[i] = f.Mul(num, invDen)

		// q[index] -= q[i] * omega^i / omega^index, the standard
		// "contribution of each off-index term to the index term"
		// identity (derived from L'Hopital's rule on the vanishing
		// denominator at i==index).
		ratio := f.Mul(d.Elements[i], f.Inv(d.Elements[index]))
		contribution := f.Mul(q[i], ratio)
		q[index] = f.Sub(q[index], contribution)
	}
	return q
}

func batchInvert[T any](f Field[T], xs []T) []T {
	n := len(xs)
	out := make([]T, n)
	if n == 0 {
		return out
	}
	prefix := make([]T, n)
	acc := f.One()
	for i, x := range xs {
		prefix[i] = acc
		acc = f.Mul(acc, x)
	}
	accInv := f.Inv(acc)
	for i := n - 1; i >= 0; i-- {
		orig := xs[i]
		out[i] = f.Mul(accInv, prefix[i])
		accInv = f.Mul(accInv, orig)
	}
	return out
}
