package group

import (
	"io"

	"github.com/f3rmion/ecgroup/ct"
)

// Scalar represents an element of the scalar field associated with a
// cryptographic group. Scalars are integers modulo the group's prime
// subgroup order and are used as exponents in scalar multiplication.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. This allows for
// efficient method chaining while minimizing memory allocations.
//
// Implementations must ensure all operations produce results in the
// valid range [0, order).
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Negate sets the receiver to -a and returns it.
	Negate(a Scalar) Scalar
	// Invert sets the receiver to a^{-1} and returns it.
	// Returns an error if a is zero.
	Invert(a Scalar) (Scalar, error)
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// Bytes returns the canonical byte representation of the scalar.
	Bytes() []byte
	// SetBytes sets the receiver from a byte slice and returns it.
	// Returns an error if the data is invalid or out of range.
	SetBytes(data []byte) (Scalar, error)
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
}

// Element represents an element of a cryptographic group, typically a
// point on an elliptic curve. It may lie anywhere in the curve's full
// group, including its small-order torsion component; see [Subgroup]
// for values guaranteed to lie in the prime-order subgroup.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern
// for efficiency. Equality and the identity check are evaluated on
// secret-derived points in protocol code, so both run in constant time
// and return a [ct.Choice].
type Element interface {
	Encoding

	// Add sets the receiver to a+b and returns it.
	Add(a, b Element) Element
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Element) Element
	// Negate sets the receiver to -a and returns it.
	Negate(a Element) Element
	// ScalarMult sets the receiver to k*p and returns it.
	ScalarMult(k Scalar, p Element) Element
	// Set sets the receiver to a and returns it.
	Set(a Element) Element
	// Equal reports in constant time whether the receiver equals b.
	Equal(b Element) ct.Choice
	// IsIdentity reports in constant time whether the receiver is the
	// identity element.
	IsIdentity() ct.Choice
}

// Group defines a cryptographic group. It provides factory methods for
// creating scalars and elements, access to the group's generator, and
// utility functions for random scalar generation and hashing.
//
// A Group implementation encapsulates all curve-specific details,
// allowing protocol code to be generic over different elliptic curves.
//
// Example usage:
//
//	g := edwards25519.New() // or any other Group implementation
//	k, _ := g.RandomScalar(rand.Reader)
//	p := g.NewElement().ScalarMult(k, g.Generator())
type Group interface {
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewElement returns a new identity element.
	NewElement() Element
	// Generator returns the group's base point. It always lies in the
	// prime-order subgroup.
	Generator() Element
	// RandomScalar returns a cryptographically random scalar.
	RandomScalar(r io.Reader) (Scalar, error)
	// HashToScalar hashes the input data to a scalar.
	HashToScalar(data ...[]byte) (Scalar, error)
	// Order returns the prime order of the cryptographic subgroup as a
	// big-endian byte slice.
	Order() []byte
}
