package ct

import "crypto/subtle"

// Choice is a constant-time boolean. Its value is always 0 (false) or
// 1 (true), and all combinators are branchless. Code handling secrets
// must combine Choices with And/Or/Xor/Not rather than converting to a
// native bool.
type Choice uint8

// False and True are the two Choice values.
const (
	False Choice = 0
	True  Choice = 1
)

// ChoiceFrom converts an int in the style of crypto/subtle and
// filippo.io/edwards25519 (0 or 1) into a Choice. Any nonzero input
// maps to True without branching.
func ChoiceFrom(v int) Choice {
	// Collapse all nonzero values to 1.
	u := uint64(v)
	return Choice((u | -u) >> 63)
}

// And returns c AND d.
func (c Choice) And(d Choice) Choice { return c & d }

// Or returns c OR d.
func (c Choice) Or(d Choice) Choice { return c | d }

// Xor returns c XOR d.
func (c Choice) Xor(d Choice) Choice { return c ^ d }

// Not returns the negation of c.
func (c Choice) Not() Choice { return c ^ 1 }

// Reveal converts c to a native bool. This is the single sanctioned
// exit from the constant-time domain; call it only where the result is
// allowed to influence control flow, e.g. a final accept/reject.
func (c Choice) Reveal() bool { return c == 1 }

// Int returns c as an int (0 or 1) for use with crypto/subtle and
// other APIs that take selection conditions as ints.
func (c Choice) Int() int { return int(c) }

// BytesEqual compares x and y in constant time. It returns False if
// the slices have different lengths.
func BytesEqual(x, y []byte) Choice {
	return ChoiceFrom(subtle.ConstantTimeCompare(x, y))
}

// Selectable constrains types that support branchless two-way
// selection between the receiver and another value.
type Selectable[T any] interface {
	// Select returns the receiver when v is False and other when v is
	// True, without branching on v.
	Select(other T, v Choice) T
}

// Select returns a when v is False and b when v is True.
func Select[T Selectable[T]](a, b T, v Choice) T {
	return a.Select(b, v)
}

// Option pairs a value with a Choice recording whether the value is
// meaningful. The value is materialized regardless of the flag, so
// producing an Option does not branch on success.
type Option[T any] struct {
	value T
	some  Choice
}

// OptionFrom returns an Option holding v, populated iff some is True.
func OptionFrom[T any](v T, some Choice) Option[T] {
	return Option[T]{value: v, some: some}
}

// Some returns a populated Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: True}
}

// IsSome reports in constant time whether the Option is populated.
func (o Option[T]) IsSome() Choice { return o.some }

// IsNone reports in constant time whether the Option is empty.
func (o Option[T]) IsNone() Choice { return o.some.Not() }

// Reveal returns the held value and whether it is meaningful. Like
// [Choice.Reveal], this exits the constant-time domain and belongs at
// an audited decision boundary.
func (o Option[T]) Reveal() (T, bool) {
	return o.value, o.some.Reveal()
}
