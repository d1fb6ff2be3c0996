package curveparams

import "math/big"

// BN254 constants. BN254 is carried as a second pairing-friendly curve
// instantiation of components D/G (group law, MSM); its pairing wiring is
// documented as a follow-on extension point in DESIGN.md rather than fully
// specialized, since spec.md's Miller-loop/final-exponentiation narrative
// (§4.F) is written specifically for BLS12-381.
var (
	BN254P, _ = new(big.Int).SetString("30644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd47", 16)
	BN254R, _ = new(big.Int).SetString("30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001", 16)

	// BN254 curve equation: y^2 = x^3 + 3.
	BN254B = big.NewInt(3)

	BN254G1X = big.NewInt(1)
	BN254G1Y = big.NewInt(2)
)
