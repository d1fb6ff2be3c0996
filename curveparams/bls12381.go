// Package curveparams holds the compile-time constant tables each
// pairing-friendly curve instantiation needs: the base and scalar field
// moduli, generators, cofactors, and the
// pairing loop parameter. One file per curve, following the per-curve
// constant-table convention used throughout the gnark-crypto-style corpus.
package curveparams

import "math/big"

// BLS12381 constants, big.Int-valued. Field packages convert these once at
// init time into their fixed-width limb representation; nothing on a hot
// path touches math/big.
var (
	// BLS12381P is the base field modulus (381 bits).
	BLS12381P, _ = new(big.Int).SetString("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)

	// BLS12381R is the prime subgroup order (scalar field modulus, 255 bits).
	BLS12381R, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

	// BLS12381XAbs and BLS12381XNeg give the curve seed x (|x| and its sign;
	// x < 0 for BLS12-381; its absolute value
	// drives both the Miller loop and cofactor formulas).
	BLS12381XAbs, _ = new(big.Int).SetString("d201000000010000", 16)
	BLS12381XNeg    = true

	// BLS12381B is the G1 curve coefficient (y^2 = x^3 + 4).
	BLS12381B = big.NewInt(4)

	// BLS12381B2C0 and BLS12381B2C1 give the twist coefficient for G2
	// (y^2 = x^3 + 4*(1+u), a
	// D-twist).
	BLS12381B2C0 = big.NewInt(4)
	BLS12381B2C1 = big.NewInt(4)

	// G1 generator.
	BLS12381G1X, _ = new(big.Int).SetString("17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb", 16)
	BLS12381G1Y, _ = new(big.Int).SetString("08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1", 16)

	// G2 generator, Fp2 coordinates (c0, c1).
	BLS12381G2XC0, _ = new(big.Int).SetString("024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8", 16)
	BLS12381G2XC1, _ = new(big.Int).SetString("13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e", 16)
	BLS12381G2YC0, _ = new(big.Int).SetString("0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801", 16)
	BLS12381G2YC1, _ = new(big.Int).SetString("0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be", 16)

	// Cofactors.
	BLS12381G1Cofactor, _ = new(big.Int).SetString("396c8c005555e1568c00aaab0000aaab", 16)
	BLS12381G2Cofactor, _ = new(big.Int).SetString("5d543a95414e7f1091d50792876a202cd91de4547085abaa68a205b2e5a7ddfa628f1cb4d9e82ef21537e293a6691ae1616ec6e786f0c70cf1c38e31c7238e5", 16)

	// GLV endomorphism: beta is a primitive cube root of unity in Fp such
	// that (x,y) -> (beta*x, y) acts as multiplication by lambda on the
	// group, lambda a primitive cube root of unity mod r.
	BLS12381GLVBeta, _ = new(big.Int).SetString("1a0111ea397fe699ec02408663d4de85aa0d857d89759ad4897d29650fb85f9b409427eb4f49fffd8bfd00000000aaac", 16)
	BLS12381GLVLambda, _ = new(big.Int).SetString("ac45a4010001a40200000000ffffffff", 16)
)

// BLS12381FieldElementsPerBlob is the EIP-4844 blob width.
const BLS12381FieldElementsPerBlob = 4096
