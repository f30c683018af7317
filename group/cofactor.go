package group

import "github.com/f3rmion/ecgroup/ct"

// CofactorGroup is implemented by groups with a large prime-order
// subgroup and a comparatively small cofactor. It extends [Group] with
// the raw per-curve operations from which the safe subgroup API
// ([ClearCofactor], [IntoSubgroup], [IsSmallOrder]) is built.
//
// Implementations whose group order is already prime should implement
// [PrimeGroup] instead and rely on the [PrimeOrder] adapter.
type CofactorGroup interface {
	Group

	// Cofactor returns the curve's mathematical cofactor h, the ratio
	// between the full group order and the prime subgroup order.
	Cofactor() uint64

	// ClearCofactor returns p multiplied by a fixed positive multiple
	// of the cofactor that is congruent to 1 modulo the subgroup order.
	// The multiplier does not vary between inputs for a given
	// implementation, but may vary between implementations. The result
	// always lies in the prime-order subgroup, whether or not p did,
	// and elements already in the subgroup are returned unchanged in
	// value, which makes clearing idempotent.
	//
	// The returned element is freshly allocated and does not alias p.
	ClearCofactor(p Element) Element

	// IsTorsionFree reports in constant time whether p lies in the
	// prime-order subgroup, i.e. has zero torsion component. Each
	// implementation provides this directly rather than deriving it,
	// since many curves have membership tests faster than a full
	// subgroup projection.
	IsTorsionFree(p Element) ct.Choice
}

// Subgroup is a group element guaranteed, by construction, to lie in
// the prime-order subgroup. Values are obtained only through
// [ClearCofactor], [IntoSubgroup], or arithmetic on existing Subgroup
// values, so holding one is proof that the torsion component is zero.
//
// Subgroup values are immutable: every operation returns a new value
// and [Subgroup.Element] returns an independent copy, so the guarantee
// cannot be invalidated through aliasing.
type Subgroup struct {
	g Group
	p Element
}

// Element widens s to a plain [Element]. The returned element is an
// independent copy; mutating it does not affect s. The reverse
// conversion requires validation through [IntoSubgroup].
func (s Subgroup) Element() Element {
	return s.g.NewElement().Set(s.p)
}

// Add returns s + t.
func (s Subgroup) Add(t Subgroup) Subgroup {
	return Subgroup{s.g, s.g.NewElement().Add(s.p, t.p)}
}

// Negate returns -s.
func (s Subgroup) Negate() Subgroup {
	return Subgroup{s.g, s.g.NewElement().Negate(s.p)}
}

// ScalarMult returns k*s.
func (s Subgroup) ScalarMult(k Scalar) Subgroup {
	return Subgroup{s.g, s.g.NewElement().ScalarMult(k, s.p)}
}

// Equal reports in constant time whether s equals t.
func (s Subgroup) Equal(t Subgroup) ct.Choice {
	return s.p.Equal(t.p)
}

// IsIdentity reports in constant time whether s is the identity.
func (s Subgroup) IsIdentity() ct.Choice {
	return s.p.IsIdentity()
}

// Bytes returns the canonical encoding of the underlying element.
func (s Subgroup) Bytes() []byte {
	return s.p.Bytes()
}

// ClearCofactor maps p into the prime-order subgroup of g by
// multiplying it by a fixed multiple of the cofactor. It is total and
// deterministic: equal inputs always produce equal outputs, and the
// result is in the subgroup regardless of the torsion component of p.
//
// Clearing projects p onto its subgroup component: the torsion part is
// annihilated and the subgroup part is preserved exactly, so clearing
// an already-cleared element is a no-op.
func ClearCofactor(g CofactorGroup, p Element) Subgroup {
	return Subgroup{g, g.ClearCofactor(p)}
}

// IntoSubgroup returns p reinterpreted at the [Subgroup] type iff p
// already lies in the prime-order subgroup; otherwise it returns an
// empty option.
//
// The check runs in data-independent time: the candidate value is
// materialized and the membership predicate evaluated whichever way the
// decision goes, because the predicate is routinely applied to
// secret-derived points such as received public keys.
func IntoSubgroup(g CofactorGroup, p Element) ct.Option[Subgroup] {
	member := g.IsTorsionFree(p)
	candidate := Subgroup{g, g.NewElement().Set(p)}
	return ct.OptionFrom(candidate, member)
}

// IsSmallOrder reports in constant time whether the order of p divides
// the cofactor, i.e. whether clearing the cofactor annihilates p.
func IsSmallOrder(g CofactorGroup, p Element) ct.Choice {
	return g.ClearCofactor(p).IsIdentity()
}
