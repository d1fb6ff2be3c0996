package poly

import "math/big"

// LagrangeDomain is a Lagrange-interpolation domain over arbitrary
// (not-necessarily-roots-of-unity) field points, with precomputed
// barycentric weights w_i = 1/prod_{j!=i}(x_i-x_j). This is what the
// Verkle/IPA domain (component 4.K) actually needs: Bandersnatch's
// scalar field (field/frbw) has only 2-adicity 5, far short of the
// 256-element domain size the IPA multiproof scheme requires, so the
// 256 "evaluation points" 0..255 cannot be a multiplicative subgroup the
// way poly.Domain's roots-of-unity construction assumes — they are just
// the integers 0..255 embedded in the field. Grounded on the same
// inner/outer-quotient shape as
// _examples/other_examples/70e2daa5_ethereum-go-verkle__config.go.go,
// generalized from that file's root-of-unity-specific shortcuts
// (MulModFr by omega powers) to the weight-ratio form valid for any
// domain.
type LagrangeDomain[T any] struct {
	F       Field[T]
	Size    int
	Points  []T
	Weights []T // w_i = 1 / prod_{j != i} (x_i - x_j)
}

// NewLagrangeDomain builds the domain {0, 1, ..., n-1} embedded in the
// field, with its barycentric weights computed once (O(n^2), run at
// setup time only).
func NewLagrangeDomain[T any](f Field[T], n int) *LagrangeDomain[T] {
	points := make([]T, n)
	for i := 0; i < n; i++ {
		points[i] = f.FromBigInt(big.NewInt(int64(i)))
	}
	weights := make([]T, n)
	for i := 0; i < n; i++ {
		acc := f.One()
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			acc = f.Mul(acc, f.Sub(points[i], points[j]))
		}
		weights[i] = f.Inv(acc)
	}
	return &LagrangeDomain[T]{F: f, Size: n, Points: points, Weights: weights}
}

func (d *LagrangeDomain[T]) IndexOf(z T) (int, bool) {
	for i, p := range d.Points {
		if d.F.Equal(p, z) {
			return i, true
		}
	}
	return 0, false
}

// BarycentricEval evaluates the polynomial (given by its values on
// d.Points) at z via the first barycentric form:
//
//	p(z) = A(z) * sum_i w_i * evals[i] / (z - x_i),  A(z) = prod_i (z - x_i)
func (d *LagrangeDomain[T]) BarycentricEval(evals []T, z T) T {
	f := d.F
	if idx, ok := d.IndexOf(z); ok {
		return evals[idx]
	}
	dens := make([]T, d.Size)
	a := f.One()
	for i := 0; i < d.Size; i++ {
		diff := f.Sub(z, d.Points[i])
		dens[i] = diff
		a = f.Mul(a, diff)
	}
	invDens := batchInvert(f, dens)

	acc := f.Zero()
	for i := 0; i < d.Size; i++ {
		term := f.Mul(f.Mul(d.Weights[i], evals[i]), invDens[i])
		acc = f.Add(acc, term)
	}
	return f.Mul(a, acc)
}

// DifferenceQuotientOffDomain computes q(X) = (p(X)-y)/(X-z) in
// evaluation form for z outside the domain.
func (d *LagrangeDomain[T]) DifferenceQuotientOffDomain(evals []T, z, y T) []T {
	f := d.F
	q := make([]T, d.Size)
	dens := make([]T, d.Size)
	for i := 0; i < d.Size; i++ {
		dens[i] = f.Sub(d.Points[i], z)
	}
	invDens := batchInvert(f, dens)
	for i := 0; i < d.Size; i++ {
		q[i] = f.Mul(f.Sub(evals[i], y), invDens[i])
	}
	return q
}

// DifferenceQuotientInDomain computes q(X) = (p(X)-p(x_index)) /
// (X-x_index) in evaluation form, via the weight-ratio generalization of
// the root-of-unity shortcut: for i != index,
//
//	q_i = (f_i - f_index) / (x_i - x_index)
//
// and the index entry is reconstructed from the others via
//
//	q_index = - sum_{i != index} q_i * w_i / w_index
//
// (the standard identity for the derivative of a Lagrange interpolant at
// one of its own nodes, expressed through the barycentric weights).
func (d *LagrangeDomain[T]) DifferenceQuotientInDomain(evals []T, index int) []T {
	f := d.F
	n := d.Size
	q := make([]T, n)
	y := evals[index]
	wIndexInv := f.Inv(d.Weights[index])

	acc := f.Zero()
	for i := 0; i < n; i++ {
		if i == index {
			continue
		}
		denom := f.Sub(d.Points[i], d.Points[index])
		qi := f.Mul(f.Sub(evals[i], y), f.Inv(denom))
		q[i] = qi
		ratio := f.Mul(d.Weights[i], wIndexInv)
		acc = f.Add(acc, f.Mul(qi, ratio))
	}
	q[index] = f.Sub(f.Zero(), acc)
	return q
}
