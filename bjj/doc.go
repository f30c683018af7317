// Package bjj provides a Baby Jubjub elliptic curve implementation of
// the [group.Group], [group.CofactorGroup], and
// [group.TwistedEdwardsCurve] contracts.
//
// Baby Jubjub is a twisted Edwards curve defined over the scalar field
// of BN254 (also known as alt_bn128). It is commonly used in
// zero-knowledge proof systems and privacy-preserving applications.
//
// This package wraps the Baby Jubjub implementation from gnark-crypto,
// providing a clean interface that satisfies the group contracts.
//
// # Curve Parameters
//
// Baby Jubjub is defined by the equation:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// where a = 168700 and d = 168696 over the BN254 scalar field.
//
// The full group has order 8*r for a prime r, so the curve carries an
// 8-torsion component and the cofactor is 8. Points received from
// untrusted sources must be passed through [group.IntoSubgroup] or
// [group.ClearCofactor] before being combined with secret scalars;
// decoding alone does not guarantee subgroup membership.
//
// ClearCofactor multiplies by 8*(8^-1 mod r), which is a fixed multiple
// of the cofactor chosen so that clearing acts as the identity on the
// prime-order subgroup: it annihilates the torsion component and leaves
// the subgroup component untouched.
//
// # Security
//
// This implementation relies on gnark-crypto for the underlying curve
// arithmetic. All scalar operations are performed modulo the curve's
// subgroup order to ensure correctness.
package bjj
