package edwards25519

import (
	"filippo.io/edwards25519/field"

	"github.com/f3rmion/ecgroup/ct"
	"github.com/f3rmion/ecgroup/group"
)

// montgomeryA is the Curve25519 parameter A = 486662 (B = 1).
var montgomeryA *field.Element

// sqrtMinus486664 scales between Montgomery v and Edwards x in the
// birational map from RFC 7748.
var sqrtMinus486664 *field.Element

func init() {
	one := new(field.Element).One()
	montgomeryA = new(field.Element).Mult32(one, 486662)

	// The map constant sqrt(-486664) = sqrt(-(A+2)).
	neg := new(field.Element).Negate(new(field.Element).Mult32(one, 486664))
	var wasSquare int
	sqrtMinus486664, wasSquare = new(field.Element).SqrtRatio(neg, one)
	if wasSquare != 1 {
		panic("edwards25519: -(A+2) is not a square")
	}

	// Montgomery non-degeneracy precondition: B*(A^2 - 4) != 0. This is
	// a property of the curve constants, checked once here; a failure
	// is a defect in the curve definition, not a runtime condition.
	four := new(field.Element).Mult32(one, 4)
	var a2 field.Element
	a2.Square(montgomeryA)
	a2.Subtract(&a2, four)
	if a2.Equal(new(field.Element).Zero()) == 1 {
		panic("edwards25519: degenerate Montgomery parameters")
	}
}

// MontgomeryView exposes the edwards25519 group under the Montgomery
// model v^2 = u^3 + A*u^2 + u (Curve25519). It is the same group with
// the same elements, scalars, and encoding; only the affine coordinate
// model differs. Obtain one with [Curve.Montgomery].
type MontgomeryView struct {
	*Curve
}

// Montgomery returns the Curve25519 view of the group.
func (c *Curve) Montgomery() *MontgomeryView {
	return &MontgomeryView{Curve: c}
}

// MontgomeryParams returns the curve parameters (A, B) = (486662, 1).
func (m *MontgomeryView) MontgomeryParams() (a, b Base) {
	a.inner.Set(montgomeryA)
	b.inner.One()
	return a, b
}

// FromBareCoordinates validates (u, v) against the Montgomery equation
// and returns the corresponding group element, or an empty option if
// the pair is not on the curve. The element is carried internally in
// Edwards form via the birational map
//
//	x = sqrt(-486664)*u/v,  y = (u-1)/(u+1)
//
// under which (0, 0), the point of order two, maps to (0, -1).
func (m *MontgomeryView) FromBareCoordinates(u, v Base) ct.Option[group.Element] {
	// v^2 == u^3 + A*u^2 + u, with B = 1.
	var u2, u3, rhs, v2 field.Element
	u2.Square(&u.inner)
	u3.Multiply(&u2, &u.inner)
	rhs.Multiply(montgomeryA, &u2)
	rhs.Add(&rhs, &u3)
	rhs.Add(&rhs, &u.inner)
	v2.Square(&v.inner)
	onCurve := ct.ChoiceFrom(v2.Equal(&rhs))

	// Map to Edwards form. Invert maps zero to zero, which makes the
	// u = 0 special case come out right without branching: (0, 0)
	// yields x = 0, y = -1.
	one := new(field.Element).One()
	var x, y, t field.Element
	t.Invert(&v.inner)
	x.Multiply(sqrtMinus486664, &u.inner)
	x.Multiply(&x, &t)
	var num, den field.Element
	num.Subtract(&u.inner, one)
	den.Add(&u.inner, one)
	t.Invert(&den)
	y.Multiply(&num, &t)

	var bx, by Base
	bx.inner.Set(&x)
	by.inner.Set(&y)
	p := m.Curve.FromBareCoordinates(bx, by)
	elem, _ := p.Reveal()
	return ct.OptionFrom(elem, onCurve.And(p.IsSome()))
}

// Coordinates returns the Curve25519 coordinates of p, or an empty
// option if p is the identity, which corresponds to the Montgomery
// point at infinity.
func (m *MontgomeryView) Coordinates(p group.Element) ct.Option[group.MontgomeryCoordinates[Base]] {
	x, y := affine(&p.(*Point).inner)

	// u = (1+y)/(1-y), v = sqrt(-486664)*u/x. Invert maps zero to
	// zero, so the order-two point (0, -1) comes out as (0, 0).
	one := new(field.Element).One()
	var num, den, t, u, v field.Element
	num.Add(one, &y.inner)
	den.Subtract(one, &y.inner)
	t.Invert(&den)
	u.Multiply(&num, &t)
	t.Invert(&x.inner)
	v.Multiply(sqrtMinus486664, &u)
	v.Multiply(&v, &t)

	var bu, bv Base
	bu.inner.Set(&u)
	bv.inner.Set(&v)
	coords, _ := group.NewMontgomeryCoordinates[Base](m, bu, bv).Reveal()
	return ct.OptionFrom(coords, p.IsIdentity().Not())
}
