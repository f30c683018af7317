package bjj

import (
	"crypto/sha256"
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"

	"github.com/f3rmion/ecgroup/ct"
	"github.com/f3rmion/ecgroup/group"
)

// cofactor is the index of the prime-order subgroup in the full Baby
// Jubjub group.
const cofactor = 8

// curveOrder is the Baby Jubjub subgroup order.
// This is distinct from the BN254 scalar field order (Fr).
var curveOrder *big.Int

// clearMultiplier is 8^-1 mod curveOrder. Multiplying a cleared point
// by it makes the overall cofactor-clearing multiplier congruent to 1
// mod the subgroup order, so clearing fixes subgroup elements.
var clearMultiplier *big.Int

// identityBytes is the canonical encoding of the identity point (0, 1).
var identityBytes []byte

func init() {
	curve := twistededwards.GetEdwardsCurve()
	curveOrder = new(big.Int).Set(&curve.Order)
	clearMultiplier = new(big.Int).ModInverse(big.NewInt(cofactor), curveOrder)

	var id twistededwards.PointAffine
	id.X.SetZero()
	id.Y.SetOne()
	enc := id.Bytes()
	identityBytes = enc[:]
}

// Scalar represents an element of the Baby Jubjub scalar field.
// It implements [group.Scalar] using big.Int with modular arithmetic
// over the curve's subgroup order.
//
// All arithmetic operations automatically reduce results modulo the
// curve order to maintain valid scalar values.
type Scalar struct {
	inner *big.Int
}

// newScalar creates a new scalar initialized to zero.
func newScalar() *Scalar {
	return &Scalar{inner: new(big.Int)}
}

// reduce ensures the scalar is in the range [0, curveOrder).
func (s *Scalar) reduce() {
	s.inner.Mod(s.inner, curveOrder)
}

// Add sets s to a + b (mod curveOrder) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Add(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Sub sets s to a - b (mod curveOrder) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Sub(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Mul sets s to a * b (mod curveOrder) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Mul(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Negate sets s to -a (mod curveOrder) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Neg(aScalar.inner)
	s.reduce()
	return s
}

// Invert sets s to a^(-1) (mod curveOrder) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.ModInverse(aScalar.inner, curveOrder)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(a.(*Scalar).inner)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	bytes := s.inner.Bytes()
	if len(bytes) >= 32 {
		return bytes[:32]
	}
	// Pad with leading zeros
	padded := make([]byte, 32)
	copy(padded[32-len(bytes):], bytes)
	return padded
}

// SetBytes sets s from a big-endian byte slice and returns s.
// The value is reduced modulo the curve order.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	s.inner.SetBytes(data)
	s.reduce()
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Cmp(b.(*Scalar).inner) == 0
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Sign() == 0
}

// Base is a Baby Jubjub base-field element, used for affine
// coordinates. It wraps gnark-crypto's fr.Element and supports the
// branchless selection required by [group.EdwardsCoordinates].
type Base struct {
	inner fr.Element
}

// NewBase returns the base-field element congruent to v.
func NewBase(v *big.Int) Base {
	var b Base
	b.inner.SetBigInt(v)
	return b
}

// Select returns b when v is False and other when v is True.
func (b Base) Select(other Base, v ct.Choice) Base {
	var r Base
	r.inner.Select(v.Int(), &b.inner, &other.inner)
	return r
}

// Bytes returns the canonical 32-byte big-endian encoding.
func (b Base) Bytes() []byte {
	enc := b.inner.Bytes()
	return enc[:]
}

// Equal reports in constant time whether b equals other.
func (b Base) Equal(other Base) ct.Choice {
	return ct.BytesEqual(b.Bytes(), other.Bytes())
}

// Point represents a point in the full Baby Jubjub group, torsion
// included. It implements [group.Element] by wrapping gnark-crypto's
// PointAffine.
//
// Points are represented in affine coordinates (x, y) on the twisted
// Edwards curve. The identity element is (0, 1).
type Point struct {
	inner twistededwards.PointAffine
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Element) group.Element {
	p.inner.Add(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Element) group.Element {
	var negB twistededwards.PointAffine
	negB.Neg(&b.(*Point).inner)
	p.inner.Add(&a.(*Point).inner, &negB)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Element) group.Element {
	p.inner.Neg(&a.(*Point).inner)
	return p
}

// ScalarMult sets p to k * q and returns p.
func (p *Point) ScalarMult(k group.Scalar, q group.Element) group.Element {
	p.inner.ScalarMultiplication(&q.(*Point).inner, k.(*Scalar).inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Element) group.Element {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the compressed point encoding as a byte slice.
func (p *Point) Bytes() []byte {
	bytes := p.inner.Bytes()
	return bytes[:]
}

// SetBytes sets p from a compressed point encoding and returns p.
// Returns an error if the data does not represent a valid curve point.
// A decoded point may still carry torsion; validate with
// [group.IntoSubgroup] before trusting it.
func (p *Point) SetBytes(data []byte) (group.Element, error) {
	if err := p.inner.Unmarshal(data); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodedLen returns the length of the compressed encoding.
func (p *Point) EncodedLen() int {
	return len(identityBytes)
}

// Equal reports in constant time whether p and b represent the same
// curve point, comparing canonical encodings.
func (p *Point) Equal(b group.Element) ct.Choice {
	return ct.BytesEqual(p.Bytes(), b.(*Point).Bytes())
}

// IsIdentity reports in constant time whether p is the identity (0, 1).
func (p *Point) IsIdentity() ct.Choice {
	return ct.BytesEqual(p.Bytes(), identityBytes)
}

// BJJ implements the group contracts for the Baby Jubjub curve:
// [group.Group], [group.CofactorGroup], and
// [group.TwistedEdwardsCurve].
//
// BJJ is a zero-sized type. Create an instance with New, &BJJ{}, or
// new(BJJ).
type BJJ struct{}

// New returns a Baby Jubjub group instance.
func New() *BJJ {
	return &BJJ{}
}

// NewScalar returns a new scalar initialized to zero.
func (g *BJJ) NewScalar() group.Scalar {
	return newScalar()
}

// NewElement returns a new point initialized to the identity (0, 1).
func (g *BJJ) NewElement() group.Element {
	var p Point
	p.inner.X.SetZero()
	p.inner.Y.SetOne()
	return &p
}

// Generator returns the standard base point for the Baby Jubjub curve.
// It generates the prime-order subgroup.
func (g *BJJ) Generator() group.Element {
	var p Point
	p.inner = twistededwards.GetEdwardsCurve().Base
	return &p
}

// RandomScalar generates a cryptographically random scalar using the
// provided random source. The result is uniformly distributed in
// [0, curveOrder).
func (g *BJJ) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := newScalar()
	s.inner.SetBytes(buf[:])
	s.reduce()
	return s, nil
}

// HashToScalar hashes the provided data to a scalar using SHA-256.
// Multiple byte slices are concatenated before hashing.
func (g *BJJ) HashToScalar(data ...[]byte) (group.Scalar, error) {
	h := sha256.New()
	for _, d := range data {
		h.Write(d)
	}
	hash := h.Sum(nil)

	s := newScalar()
	s.inner.SetBytes(hash)
	s.reduce()
	return s, nil
}

// Order returns the order of the Baby Jubjub curve's prime-order
// subgroup as a big-endian byte slice.
func (g *BJJ) Order() []byte {
	return curveOrder.Bytes()
}

// Cofactor returns 8.
func (g *BJJ) Cofactor() uint64 {
	return cofactor
}

// ClearCofactor returns p multiplied by 8*(8^-1 mod r): the torsion
// component is annihilated and the prime-order subgroup component is
// preserved exactly.
func (g *BJJ) ClearCofactor(p group.Element) group.Element {
	var r Point
	// Three doublings multiply by the cofactor.
	r.inner.Double(&p.(*Point).inner)
	r.inner.Double(&r.inner)
	r.inner.Double(&r.inner)
	// The result is in the subgroup, where multiplication by
	// clearMultiplier undoes the factor of eight.
	var eightP twistededwards.PointAffine
	eightP.Set(&r.inner)
	r.inner.ScalarMultiplication(&eightP, clearMultiplier)
	return &r
}

// IsTorsionFree reports in constant time whether p lies in the
// prime-order subgroup, by multiplying by the subgroup order and
// comparing against the identity.
func (g *BJJ) IsTorsionFree(p group.Element) ct.Choice {
	var r Point
	r.inner.ScalarMultiplication(&p.(*Point).inner, curveOrder)
	return r.IsIdentity()
}

// EdwardsParams returns the twisted Edwards parameters (a, d).
func (g *BJJ) EdwardsParams() (a, d Base) {
	curve := twistededwards.GetEdwardsCurve()
	return Base{inner: curve.A}, Base{inner: curve.D}
}

// FromBareCoordinates validates (x, y) against the curve equation
// a*x^2 + y^2 = 1 + d*x^2*y^2 and returns the corresponding point, or
// an empty option if the pair is not on the curve.
func (g *BJJ) FromBareCoordinates(x, y Base) ct.Option[group.Element] {
	a, d := g.EdwardsParams()

	var x2, y2, lhs, rhs, dxy fr.Element
	x2.Square(&x.inner)
	y2.Square(&y.inner)
	lhs.Mul(&a.inner, &x2)
	lhs.Add(&lhs, &y2)
	dxy.Mul(&d.inner, &x2)
	dxy.Mul(&dxy, &y2)
	rhs.SetOne()
	rhs.Add(&rhs, &dxy)

	onCurve := Base{inner: lhs}.Equal(Base{inner: rhs})

	var p Point
	p.inner.X.Set(&x.inner)
	p.inner.Y.Set(&y.inner)
	return ct.OptionFrom[group.Element](&p, onCurve)
}

// Coordinates returns the affine coordinates of p. The twisted Edwards
// identity has finite coordinates (0, 1), so this is total.
func (g *BJJ) Coordinates(p group.Element) group.EdwardsCoordinates[Base] {
	pt := p.(*Point)
	coords, _ := group.NewEdwardsCoordinates[Base](g,
		Base{inner: pt.inner.X}, Base{inner: pt.inner.Y}).Reveal()
	return coords
}
