package banderwagon

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/ethpairing/curvekit/field/fr"
)

// GeneratorsFromSeed deterministically derives n independent Banderwagon
// basis points for Pedersen/IPA commitments, via try-and-increment hashing:
// for each index, repeatedly hash a counter into a candidate x-coordinate
// until one gives a curve point with 1 - a*x^2 a square (a point of the
// prime-order Banderwagon subgroup), then canonicalizes the sign the same way
// Compress does. Any fixed, reproducible derivation serves identically as
// an IPA generator basis; this module does not depend on matching an
// external reference implementation's exact generator points.
func GeneratorsFromSeed(label string, n int) []Element {
	out := make([]Element, n)
	for i := 0; i < n; i++ {
		out[i] = hashToCurve(label, uint64(i))
	}
	return out
}

func hashToCurve(label string, index uint64) Element {
	var counter uint64
	for {
		h := sha256.New()
		h.Write([]byte(label))
		var idxBuf, ctrBuf [8]byte
		binary.BigEndian.PutUint64(idxBuf[:], index)
		binary.BigEndian.PutUint64(ctrBuf[:], counter)
		h.Write(idxBuf[:])
		h.Write(ctrBuf[:])
		digest := h.Sum(nil)

		x := fr.FromBigInt(new(big.Int).SetBytes(digest))
		x2 := fr.Square(x)
		num := fr.Sub(fr.One(), fr.Mul(curveA, x2))
		den := fr.Sub(fr.One(), fr.Mul(curveD, x2))
		// 1 - a*x^2 must be a square for the point to lie in the
		// prime-order subgroup rather than carry a torsion component.
		_, inSubgroup := frSqrt(num)
		if !fr.IsZero(den) && inSubgroup {
			y2 := fr.Mul(num, fr.Inv(den))
			if y, ok := frSqrt(y2); ok {
				negY := fr.Neg(y)
				if y.ToBigInt().Cmp(negY.ToBigInt()) > 0 {
					y = negY
				}
				return Element{X: x, Y: y}
			}
		}
		counter++
	}
}
