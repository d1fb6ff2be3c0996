package msm

import (
	"math/big"

	"github.com/ethpairing/curvekit/curve/banderwagon"
	"github.com/ethpairing/curvekit/curve/bls12381"
	"github.com/ethpairing/curvekit/field/fr"
	"github.com/ethpairing/curvekit/field/frbw"
)

// G1 computes sum_i scalars[i]*points[i] over BLS12-381's G1.
func G1(points []bls12381.G1Affine, scalars []fr.Element) bls12381.G1Affine {
	jac := make([]bls12381.G1Jacobian, len(points))
	for i, p := range points {
		jac[i] = p.ToJacobian()
	}
	ks := make([]*big.Int, len(scalars))
	for i, s := range scalars {
		ks[i] = s.ToBigInt()
	}
	identity := bls12381.G1Jacobian{}
	add := func(a, b bls12381.G1Jacobian) bls12381.G1Jacobian { return a.Add(b) }
	scalarMul := func(p bls12381.G1Jacobian, k *big.Int) bls12381.G1Jacobian { return p.ScalarMulVartime(k) }
	result := MSM(jac, ks, identity, add, scalarMul, 256)
	return result.ToAffine()
}

// G2 computes sum_i scalars[i]*points[i] over BLS12-381's G2.
func G2(points []bls12381.G2Affine, scalars []fr.Element) bls12381.G2Affine {
	jac := make([]bls12381.G2Jacobian, len(points))
	for i, p := range points {
		jac[i] = p.ToJacobian()
	}
	ks := make([]*big.Int, len(scalars))
	for i, s := range scalars {
		ks[i] = s.ToBigInt()
	}
	identity := bls12381.G2Jacobian{}
	add := func(a, b bls12381.G2Jacobian) bls12381.G2Jacobian { return a.Add(b) }
	scalarMul := func(p bls12381.G2Jacobian, k *big.Int) bls12381.G2Jacobian { return p.ScalarMulVartime(k) }
	result := MSM(jac, ks, identity, add, scalarMul, 256)
	return result.ToAffine()
}

// Banderwagon computes sum_i scalars[i]*points[i] over the Banderwagon
// group, the operation IPA's Commit degenerates into for sparse/batched
// vectors.
func Banderwagon(points []banderwagon.Element, scalars []frbw.Element) banderwagon.Element {
	ks := make([]*big.Int, len(scalars))
	for i, s := range scalars {
		ks[i] = s.ToBigInt()
	}
	identity := banderwagon.Identity()
	add := func(a, b banderwagon.Element) banderwagon.Element { return banderwagon.Add(a, b) }
	scalarMul := func(p banderwagon.Element, k *big.Int) banderwagon.Element { return banderwagon.ScalarMul(p, k) }
	return MSM(points, ks, identity, add, scalarMul, 253)
}
