package group

import "github.com/f3rmion/ecgroup/ct"

// PrimeGroup is implemented by groups whose full order is prime, i.e.
// whose cofactor is one. Declaring a group prime is a security claim:
// it asserts that every decodable element already lies in the
// cryptographic subgroup, so no cofactor handling is needed.
//
// Protocol code written against [CofactorGroup] runs unmodified and at
// no added cost on a prime-order group by wrapping it in [PrimeOrder].
type PrimeGroup interface {
	Group

	// ScalarBaseMult returns k*G for the group generator G.
	ScalarBaseMult(k Scalar) Element
}

// AffinePoint is the canonical two-dimensional representative of a
// curve element's equivalence class, exposed by [PrimeCurve]
// implementations. On a prime-order curve every affine point lies in
// the cryptographic subgroup.
type AffinePoint interface {
	// Bytes returns the canonical encoding of the point. It matches the
	// encoding of the corresponding curve element.
	Bytes() []byte
	// ScalarMult returns k times this point as a curve element.
	ScalarMult(k Scalar) Element
	// IsIdentity reports in constant time whether this is the identity.
	IsIdentity() ct.Choice
}

// PrimeCurve extends [PrimeGroup] with an affine representation. The
// affine type round-trips with the curve's element type through
// FromAffine and ToAffine.
type PrimeCurve interface {
	PrimeGroup

	// AffineGenerator returns the curve generator in affine form.
	AffineGenerator() AffinePoint
	// FromAffine lifts an affine point into the curve's element type.
	FromAffine(a AffinePoint) Element
	// ToAffine returns the affine representative of p. Implementations
	// define a conventional affine value for the identity when the
	// curve model has no finite one.
	ToAffine(p Element) AffinePoint
}

// PrimeOrder adapts a [PrimeGroup] to the [CofactorGroup] interface.
// Clearing the cofactor is the identity transform, every element is
// torsion free, and [IntoSubgroup] always succeeds with the input
// itself. The specialization is resolved by the type system, not by a
// runtime order check: wrapping a group whose order is not actually
// prime voids the [Subgroup] guarantee.
type PrimeOrder struct {
	PrimeGroup
}

// Cofactor returns 1.
func (PrimeOrder) Cofactor() uint64 { return 1 }

// ClearCofactor returns a copy of p unchanged.
func (a PrimeOrder) ClearCofactor(p Element) Element {
	return a.NewElement().Set(p)
}

// IsTorsionFree always reports true on a prime-order group.
func (PrimeOrder) IsTorsionFree(Element) ct.Choice { return ct.True }
