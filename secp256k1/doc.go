// Package secp256k1 implements the group interfaces over the secp256k1
// curve, the short Weierstrass curve y^2 = x^3 + 7 used by Bitcoin and
// Ethereum.
//
// secp256k1 has prime order, so the package exposes the group as a
// [group.PrimeCurve]: there is no torsion to clear, and every decodable
// point already lies in the cryptographic subgroup. Protocol code
// written against [group.CofactorGroup] runs on it unmodified through
// the [group.PrimeOrder] adapter.
//
// Points encode in 33-byte compressed SEC form; the identity, which has
// no affine representation, encodes as 33 zero bytes. The affine
// coordinate model is exposed through [group.ShortWeierstrassCurve]
// with parameters a = 0, b = 7.
//
// The underlying arithmetic comes from the decred secp256k1 package,
// whose point operations are variable time (the library names them
// NonConst). Results that the interfaces type as [ct.Choice] are still
// produced without data-dependent branches in this package, but callers
// needing full side-channel resistance should prefer a constant-time
// backend.
package secp256k1
