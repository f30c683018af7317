// Package edwards25519 provides an edwards25519 implementation of the
// [group.Group], [group.CofactorGroup], and
// [group.TwistedEdwardsCurve] contracts, plus a Montgomery-form view of
// the same group implementing [group.MontgomeryCurve].
//
// The curve is the twisted Edwards curve used by Ed25519:
//
//	-x^2 + y^2 = 1 + d*x^2*y^2
//
// over GF(2^255 - 19), birationally equivalent to the Montgomery curve
// Curve25519:
//
//	v^2 = u^3 + 486662*u^2 + u
//
// The full group has order 8*l for the prime l used by Ed25519, so the
// cofactor is 8 and decoded points may carry torsion. Points received
// from untrusted sources must be passed through [group.IntoSubgroup] or
// [group.ClearCofactor] before being combined with secret scalars.
//
// [Curve.Montgomery] returns a view of the group under the Montgomery
// model. Moving a point between the two models goes through validated
// coordinate pairs:
//
//	m := c.Montgomery()
//	coords, _ := m.Coordinates(p).Reveal()   // (u, v) on Curve25519
//	q, _ := m.FromBareCoordinates(coords.U(), coords.V()).Reveal()
//
// This package wraps filippo.io/edwards25519 for all point arithmetic.
package edwards25519
