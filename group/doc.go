// Package group defines the algebraic contracts a cryptographic group
// implementation must satisfy to be usable generically by protocol code,
// independent of the concrete curve, field, or coordinate representation.
//
// The package serves two audiences. Curve-arithmetic authors implement
// the contracts once per curve; protocol authors write signature, key
// agreement, or commitment code once against the contracts and get it
// working over any conforming curve.
//
//   - [Scalar] and [Element]: the minimal group axioms (identity,
//     addition, negation, scalar multiplication, constant-time equality)
//   - [Encoding]: canonical fixed-size byte representation with a
//     round-trip guarantee
//   - [Group]: factory and utility methods for creating scalars and
//     elements
//   - [CofactorGroup] and [Subgroup]: safe operation on the prime-order
//     subgroup of a curve whose full group contains small-order torsion
//   - [PrimeGroup] and [PrimeCurve]: the zero-overhead special case for
//     curves whose order is already prime
//   - [TwistedEdwardsCurve], [MontgomeryCurve], [ShortWeierstrassCurve]:
//     validated construction and extraction of affine coordinates tied
//     to a specific curve equation shape
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency.
// Operations like Add, Negate, and ScalarMult set the receiver to the
// result and return it, allowing method chaining while minimizing
// allocations:
//
//	// Compute p + k*q
//	r := g.NewElement().ScalarMult(k, q)
//	r = g.NewElement().Add(p, r)
//
// Operations that can fail on untrusted input return an empty result
// (an error, or an empty [ct.Option]) rather than panicking. Predicates
// that are routinely evaluated on secret-derived values return a
// [ct.Choice] rather than a native bool, so that callers cannot
// accidentally branch on a secret.
//
// # Subgroup Safety
//
// Protocol code should depend on [CofactorGroup] (or [PrimeGroup]
// through the [PrimeOrder] adapter) plus [Encoding], and confine all
// arithmetic to [Subgroup] values before combining received points with
// secret scalars. A received point that is not validated through
// [IntoSubgroup] or mapped through [ClearCofactor] may carry a torsion
// component, which is the raw material of small-subgroup confinement
// attacks.
//
// The coordinate-model contracts are consumed only by curve
// implementations and by code converting a point between two affine
// models of the same group; protocol code never touches them.
//
// # Implementing a Group
//
// To implement these interfaces for a new elliptic curve:
//
//  1. Create a Scalar type that wraps your field element and implements [Scalar]
//  2. Create an Element type that wraps your curve point and implements [Element]
//  3. Create a Group type that implements [Group] as a factory, plus
//     [CofactorGroup] or [PrimeGroup] depending on the curve's cofactor,
//     plus the coordinate-model contract matching the curve equation
//
// See the bjj, edwards25519, and secp256k1 packages for complete
// implementations.
package group
