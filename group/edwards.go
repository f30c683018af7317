package group

import "github.com/f3rmion/ecgroup/ct"

// TwistedEdwardsCurve is implemented by groups whose affine points lie
// on a twisted Edwards curve
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// over a base field with element type B. When a = 1 this reduces to an
// ordinary Edwards curve.
//
// Coordinates are meaningless detached from the curve equation that
// constrains them, so all raw-coordinate ingestion funnels through
// FromBareCoordinates; no coordinate pair violating the equation can
// reach downstream arithmetic.
type TwistedEdwardsCurve[B ct.Selectable[B]] interface {
	Group

	// EdwardsParams returns the curve equation parameters (a, d).
	EdwardsParams() (a, d B)

	// FromBareCoordinates validates the raw pair (x, y) against the
	// curve equation and returns the corresponding element, or an empty
	// option if the pair is not on the curve.
	FromBareCoordinates(x, y B) ct.Option[Element]

	// Coordinates returns the affine coordinates of p. The identity of
	// a twisted Edwards curve has finite coordinates (conventionally
	// (0, 1)), so this is total.
	Coordinates(p Element) EdwardsCoordinates[B]
}

// EdwardsCoordinates is a validated affine coordinate pair on a twisted
// Edwards curve. Values exist only for pairs satisfying the curve
// equation and are immutable once constructed.
type EdwardsCoordinates[B ct.Selectable[B]] struct {
	x, y B
}

// NewEdwardsCoordinates validates (x, y) against c's curve equation and
// returns the coordinate pair, or an empty option if the pair is not on
// the curve.
func NewEdwardsCoordinates[B ct.Selectable[B]](c TwistedEdwardsCurve[B], x, y B) ct.Option[EdwardsCoordinates[B]] {
	p := c.FromBareCoordinates(x, y)
	return ct.OptionFrom(EdwardsCoordinates[B]{x: x, y: y}, p.IsSome())
}

// X returns the x-coordinate.
func (c EdwardsCoordinates[B]) X() B { return c.x }

// Y returns the y-coordinate.
func (c EdwardsCoordinates[B]) Y() B { return c.y }

// Select returns c when v is False and other when v is True, selecting
// each component branchlessly. This supports table-driven point
// selection during scalar multiplication.
func (c EdwardsCoordinates[B]) Select(other EdwardsCoordinates[B], v ct.Choice) EdwardsCoordinates[B] {
	return EdwardsCoordinates[B]{
		x: c.x.Select(other.x, v),
		y: c.y.Select(other.y, v),
	}
}
