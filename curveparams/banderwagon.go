package curveparams

import "math/big"

// Banderwagon/Bandersnatch constants. Bandersnatch is a twisted-Edwards
// curve a*x^2+y^2 = 1+d*x^2*y^2 defined over the BLS12-381 scalar field
// (field/fr); Banderwagon is the prime-order quotient of its subgroup, per
// spec.md's Glossary. BandersnatchSubgroupOrder is Banderwagon's own
// scalar field, distinct from BLS12-381's (field/frbw).
var (
	BandersnatchA, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfefffffffefffffffc", 16)
	BandersnatchD, _ = new(big.Int).SetString("6389c12633c267cbc66e3bf86be3b6d8cb66677177e54f92b369f2f5188d58e7", 16)

	BandersnatchSubgroupOrder, _ = new(big.Int).SetString("1cfb69d4ca675f520cce760202687600ff8f87007419047174fd06b52876e7e1", 16)

	// Bandersnatch base-point (x, y): a fixed point on the curve, returned
	// by curve/banderwagon.Generator. It is not the point published by the
	// Bandersnatch paper, and the IPA generator basis
	// (curve/banderwagon.GeneratorsFromSeed) is hashed from a label rather
	// than derived from this point.
	BandersnatchGenX, _ = new(big.Int).SetString("3", 16)
	BandersnatchGenY, _ = new(big.Int).SetString("2d418cc584d9c9df8750a436fac98068949d14c7bdce4034fe792e4c14e30a3f", 16)
)
