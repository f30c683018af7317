package group

import "github.com/f3rmion/ecgroup/ct"

// ShortWeierstrassCurve is implemented by groups whose affine points
// lie on a short Weierstrass curve
//
//	y^2 = x^3 + a*x + b
//
// over a base field with element type F.
type ShortWeierstrassCurve[F ct.Selectable[F]] interface {
	Group

	// WeierstrassParams returns the curve equation parameters (a, b).
	WeierstrassParams() (a, b F)

	// FromBareCoordinates validates the raw pair (x, y) against the
	// curve equation and returns the corresponding element, or an empty
	// option if the pair is not on the curve.
	FromBareCoordinates(x, y F) ct.Option[Element]

	// Coordinates returns the affine coordinates of p, or an empty
	// option if p is the identity: the point at infinity has no finite
	// affine representative on a short Weierstrass curve.
	Coordinates(p Element) ct.Option[WeierstrassCoordinates[F]]
}

// WeierstrassCoordinates is a validated affine coordinate pair on a
// short Weierstrass curve. Values exist only for pairs satisfying the
// curve equation and are immutable once constructed.
type WeierstrassCoordinates[F ct.Selectable[F]] struct {
	x, y F
}

// NewWeierstrassCoordinates validates (x, y) against c's curve equation
// and returns the coordinate pair, or an empty option if the pair is
// not on the curve.
func NewWeierstrassCoordinates[F ct.Selectable[F]](c ShortWeierstrassCurve[F], x, y F) ct.Option[WeierstrassCoordinates[F]] {
	p := c.FromBareCoordinates(x, y)
	return ct.OptionFrom(WeierstrassCoordinates[F]{x: x, y: y}, p.IsSome())
}

// X returns the x-coordinate.
func (c WeierstrassCoordinates[F]) X() F { return c.x }

// Y returns the y-coordinate.
func (c WeierstrassCoordinates[F]) Y() F { return c.y }

// Select returns c when v is False and other when v is True, selecting
// each component branchlessly.
func (c WeierstrassCoordinates[F]) Select(other WeierstrassCoordinates[F], v ct.Choice) WeierstrassCoordinates[F] {
	return WeierstrassCoordinates[F]{
		x: c.x.Select(other.x, v),
		y: c.y.Select(other.y, v),
	}
}
