package group

import "github.com/f3rmion/ecgroup/ct"

// MontgomeryCurve is implemented by groups whose affine points lie on a
// Montgomery curve
//
//	B*v^2 = u^3 + A*u^2 + u
//
// over a base field with element type F.
//
// The parameters must satisfy B*(A^2 - 4) != 0, which implies A != ±2
// and B != 0. This is a static precondition on the constants supplied
// at curve-definition time: implementations must reject degenerate
// parameters before any instance is constructed (a panic in the
// implementation's initializer is appropriate), because the contract's
// behaviour is undefined once a degenerate instance exists. It is never
// a per-call check.
type MontgomeryCurve[F ct.Selectable[F]] interface {
	Group

	// MontgomeryParams returns the curve equation parameters (A, B).
	MontgomeryParams() (a, b F)

	// FromBareCoordinates validates the raw pair (u, v) against the
	// curve equation and returns the corresponding element, or an empty
	// option if the pair is not on the curve.
	FromBareCoordinates(u, v F) ct.Option[Element]

	// Coordinates returns the affine coordinates of p, or an empty
	// option if p is the identity, which has no finite affine
	// representative on a Montgomery curve.
	Coordinates(p Element) ct.Option[MontgomeryCoordinates[F]]
}

// MontgomeryCoordinates is a validated affine coordinate pair on a
// Montgomery curve. Values exist only for pairs satisfying the curve
// equation and are immutable once constructed.
type MontgomeryCoordinates[F ct.Selectable[F]] struct {
	u, v F
}

// NewMontgomeryCoordinates validates (u, v) against c's curve equation
// and returns the coordinate pair, or an empty option if the pair is
// not on the curve.
func NewMontgomeryCoordinates[F ct.Selectable[F]](c MontgomeryCurve[F], u, v F) ct.Option[MontgomeryCoordinates[F]] {
	p := c.FromBareCoordinates(u, v)
	return ct.OptionFrom(MontgomeryCoordinates[F]{u: u, v: v}, p.IsSome())
}

// U returns the u-coordinate.
func (c MontgomeryCoordinates[F]) U() F { return c.u }

// V returns the v-coordinate.
func (c MontgomeryCoordinates[F]) V() F { return c.v }

// Select returns c when v is False and other when v is True, selecting
// each component branchlessly.
func (c MontgomeryCoordinates[F]) Select(other MontgomeryCoordinates[F], v ct.Choice) MontgomeryCoordinates[F] {
	return MontgomeryCoordinates[F]{
		u: c.u.Select(other.u, v),
		v: c.v.Select(other.v, v),
	}
}
