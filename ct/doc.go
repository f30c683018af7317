// Package ct provides constant-time boolean and optional wrapper types
// for cryptographic code that must not branch on secret data.
//
// The central type is [Choice], a boolean carried in a uint8 that only
// supports branchless logical combinators. Predicates that may be
// evaluated on secret-derived values (subgroup membership, identity
// checks, point equality) return a Choice instead of a native bool so
// that callers cannot accidentally introduce a secret-dependent branch.
// Converting a Choice back to a bool is an explicit, auditable step via
// [Choice.Reveal], intended only for protocol-decision boundaries such
// as a final signature accept/reject.
//
// [Option] pairs a value with a Choice that records whether the value
// is meaningful. Both the value and the flag are always present, so
// constructing and passing an Option never branches on whether the
// operation that produced it succeeded.
//
// [Selectable] constrains types that support branchless two-way
// selection and is used by coordinate types during table-driven point
// selection.
package ct
