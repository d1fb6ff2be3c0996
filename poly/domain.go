package poly

import (
	"math/big"

	"github.com/ethpairing/curvekit/field/fr"
	"github.com/ethpairing/curvekit/field/frbw"
)

// FrField adapts field/fr to the generic Field interface, used by the
// 4096-element EIP-4844 blob domain (kzg4844).
type FrField struct{}

func (FrField) Add(a, b fr.Element) fr.Element  { return fr.Add(a, b) }
func (FrField) Sub(a, b fr.Element) fr.Element  { return fr.Sub(a, b) }
func (FrField) Mul(a, b fr.Element) fr.Element  { return fr.Mul(a, b) }
func (FrField) Inv(a fr.Element) fr.Element     { return fr.InvVartime(a) }
func (FrField) IsZero(a fr.Element) bool        { return fr.IsZero(a) }
func (FrField) Equal(a, b fr.Element) bool      { return fr.Equal(a, b) }
func (FrField) Zero() fr.Element                { return fr.Zero() }
func (FrField) One() fr.Element                 { return fr.One() }
func (FrField) FromBigInt(v *big.Int) fr.Element { return fr.FromBigInt(v) }
func (FrField) ToBigInt(a fr.Element) *big.Int  { return a.ToBigInt() }

// FrbwField adapts field/frbw to the generic Field interface, used by the
// 256-element Verkle/IPA domain.
type FrbwField struct{}

func (FrbwField) Add(a, b frbw.Element) frbw.Element  { return frbw.Add(a, b) }
func (FrbwField) Sub(a, b frbw.Element) frbw.Element  { return frbw.Sub(a, b) }
func (FrbwField) Mul(a, b frbw.Element) frbw.Element  { return frbw.Mul(a, b) }
func (FrbwField) Inv(a frbw.Element) frbw.Element     { return frbw.InvVartime(a) }
func (FrbwField) IsZero(a frbw.Element) bool          { return frbw.IsZero(a) }
func (FrbwField) Equal(a, b frbw.Element) bool        { return frbw.Equal(a, b) }
func (FrbwField) Zero() frbw.Element                  { return frbw.Zero() }
func (FrbwField) One() frbw.Element                   { return frbw.One() }
func (FrbwField) FromBigInt(v *big.Int) frbw.Element  { return frbw.FromBigInt(v) }
func (FrbwField) ToBigInt(a frbw.Element) *big.Int    { return a.ToBigInt() }

// primitiveRootExponent returns the exponent (modulus-1)/size; raising any
// generator of the field's full multiplicative group to it gives a
// primitive size-th root of unity.
func primitiveRootExponent(modulus *big.Int, size int) *big.Int {
	exp := new(big.Int).Sub(modulus, big.NewInt(1))
	exp.Div(exp, big.NewInt(int64(size)))
	return exp
}

// NewFrDomain builds the EIP-4844 evaluation domain of the given size
// (must divide r-1) using generator=7, the same primitiveRoot value the
// teacher's crypto/kzg/util.go initDomain used for the BLS12-381 scalar
// field.
func NewFrDomain(size int) *Domain[fr.Element] {
	generator := fr.FromBigInt(big.NewInt(7))
	exp := primitiveRootExponent(fr.Modulus(), size)
	root := fr.Pow(generator, exp)
	return NewDomain[fr.Element](FrField{}, size, root)
}

// NewFrbwLagrangeDomain builds the Verkle/IPA evaluation domain
// {0, ..., size-1} over field/frbw. Bandersnatch's scalar field has only
// 2-adicity 5, too small to host a 256-element multiplicative subgroup,
// so (unlike the EIP-4844 domain above) this is a LagrangeDomain over
// arbitrary integer points rather than a roots-of-unity Domain.
func NewFrbwLagrangeDomain(size int) *LagrangeDomain[frbw.Element] {
	return NewLagrangeDomain[frbw.Element](FrbwField{}, size)
}
