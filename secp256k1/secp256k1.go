package secp256k1

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"io"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/f3rmion/ecgroup/ct"
	"github.com/f3rmion/ecgroup/group"
)

// encodedLen is the length of the compressed SEC point encoding.
const encodedLen = 33

// identityBytes is the reserved encoding of the identity. The point at
// infinity has no SEC form, so the all-zero string stands in for it.
var identityBytes = make([]byte, encodedLen)

// generator is the curve base point in Jacobian form.
var generator secp.JacobianPoint

// groupOrder is the curve order n as 32 big-endian bytes.
var groupOrder [32]byte

func init() {
	params := secp.S256().Params()
	generator.X.SetByteSlice(params.Gx.Bytes())
	generator.Y.SetByteSlice(params.Gy.Bytes())
	generator.Z.SetInt(1)
	params.N.FillBytes(groupOrder[:])
}

// Scalar represents an element of the secp256k1 scalar field, the
// integers modulo the curve order n. It implements [group.Scalar] by
// wrapping decred's ModNScalar.
type Scalar struct {
	inner secp.ModNScalar
}

func newScalar() *Scalar {
	return &Scalar{}
}

// Add sets s to a + b (mod n) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add2(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b (mod n) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	var negB secp.ModNScalar
	negB.Set(&b.(*Scalar).inner)
	negB.Negate()
	s.inner.Add2(&a.(*Scalar).inner, &negB)
	return s
}

// Mul sets s to a * b (mod n) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul2(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate sets s to -a (mod n) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	s.inner.Negate()
	return s
}

// Invert sets s to a^(-1) (mod n) and returns s.
// Returns an error if a is zero.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	if a.(*Scalar).IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.Set(&a.(*Scalar).inner)
	s.inner.InverseNonConst()
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// Bytes returns the canonical 32-byte big-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	enc := s.inner.Bytes()
	return enc[:]
}

// SetBytes sets s from a 32-byte big-endian encoding and returns s.
// Returns an error if the value is not reduced mod n.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != 32 {
		return nil, errors.New("invalid scalar length")
	}
	if overflow := s.inner.SetByteSlice(data); overflow {
		return nil, errors.New("scalar not reduced mod curve order")
	}
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equals(&b.(*Scalar).inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Base is an element of the secp256k1 base field GF(p), used for
// affine point coordinates. It wraps decred's FieldVal.
type Base struct {
	inner secp.FieldVal
}

// NewBase constructs a base field element from big-endian bytes.
// Returns an error if the value is not reduced mod the field prime.
func NewBase(data []byte) (Base, error) {
	var b Base
	if overflow := b.inner.SetByteSlice(data); overflow {
		return Base{}, errors.New("field element not reduced mod field prime")
	}
	return b, nil
}

func baseFromUint32(v uint32) Base {
	var b Base
	var enc [4]byte
	binary.BigEndian.PutUint32(enc[:], v)
	b.inner.SetByteSlice(enc[:])
	return b
}

// Bytes returns the 32-byte big-endian encoding of b.
func (b Base) Bytes() []byte {
	norm := new(secp.FieldVal).Set(&b.inner)
	norm.Normalize()
	enc := make([]byte, 32)
	norm.PutBytesUnchecked(enc)
	return enc
}

// Select returns b when v is False and other when v is True. The
// selection is branchless over the byte encodings.
func (b Base) Select(other Base, v ct.Choice) Base {
	bb := b.Bytes()
	ob := other.Bytes()
	mask := byte(0) - byte(v)
	out := make([]byte, 32)
	for i := range out {
		out[i] = bb[i] ^ (mask & (bb[i] ^ ob[i]))
	}
	var r Base
	r.inner.SetByteSlice(out)
	return r
}

// Equal reports in constant time whether b and other represent the
// same field element.
func (b Base) Equal(other Base) ct.Choice {
	return ct.BytesEqual(b.Bytes(), other.Bytes())
}

// Point is a point on the secp256k1 curve in Jacobian form. It
// implements [group.Element]. The zero value is the identity.
type Point struct {
	inner secp.JacobianPoint
}

func newPoint() *Point {
	return &Point{}
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Element) group.Element {
	var r secp.JacobianPoint
	secp.AddNonConst(&a.(*Point).inner, &b.(*Point).inner, &r)
	p.inner.Set(&r)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Element) group.Element {
	negB := new(Point).Negate(b)
	return p.Add(a, negB)
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Element) group.Element {
	p.inner.Set(&a.(*Point).inner)
	p.inner.Y.Normalize()
	p.inner.Y.Negate(1).Normalize()
	return p
}

// ScalarMult sets p to k*q and returns p.
func (p *Point) ScalarMult(k group.Scalar, q group.Element) group.Element {
	var r secp.JacobianPoint
	secp.ScalarMultNonConst(&k.(*Scalar).inner, &q.(*Point).inner, &r)
	p.inner.Set(&r)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Element) group.Element {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Equal reports in constant time whether p and b represent the same
// point, comparing canonical encodings so that distinct Jacobian
// representatives of one point compare equal.
func (p *Point) Equal(b group.Element) ct.Choice {
	return ct.BytesEqual(p.Bytes(), b.(*Point).Bytes())
}

// IsIdentity reports whether p is the point at infinity. Points are
// kept normalized by the underlying library, so the zero checks are
// direct.
func (p *Point) IsIdentity() ct.Choice {
	if (p.inner.X.IsZero() && p.inner.Y.IsZero()) || p.inner.Z.IsZero() {
		return ct.True
	}
	return ct.False
}

// Bytes returns the 33-byte compressed encoding of p. The identity
// encodes as 33 zero bytes.
func (p *Point) Bytes() []byte {
	if p.IsIdentity() == ct.True {
		out := make([]byte, encodedLen)
		copy(out, identityBytes)
		return out
	}

	var affine secp.JacobianPoint
	affine.Set(&p.inner)
	affine.ToAffine()

	out := make([]byte, encodedLen)
	out[0] = 0x02
	if affine.Y.IsOdd() {
		out[0] = 0x03
	}
	affine.X.PutBytesUnchecked(out[1:])
	return out
}

// SetBytes sets p from a 33-byte compressed encoding and returns p.
// The all-zero encoding decodes to the identity.
func (p *Point) SetBytes(data []byte) (group.Element, error) {
	if len(data) != encodedLen {
		return nil, errors.New("invalid point encoding length")
	}
	if ct.BytesEqual(data, identityBytes) == ct.True {
		p.inner = secp.JacobianPoint{}
		return p, nil
	}
	if data[0] != 0x02 && data[0] != 0x03 {
		return nil, errors.New("invalid point encoding prefix")
	}

	var x secp.FieldVal
	if overflow := x.SetByteSlice(data[1:]); overflow {
		return nil, errors.New("point x-coordinate not reduced mod field prime")
	}
	var y secp.FieldVal
	if !secp.DecompressY(&x, data[0] == 0x03, &y) {
		return nil, errors.New("point is not on the curve")
	}
	y.Normalize()

	p.inner.X.Set(&x)
	p.inner.Y.Set(&y)
	p.inner.Z.SetInt(1)
	return p, nil
}

// EncodedLen returns the length of the encoding produced by Bytes.
func (p *Point) EncodedLen() int {
	return encodedLen
}

// Affine is a point in affine coordinates, implementing
// [group.AffinePoint]. The identity is carried as an explicit flag
// since the point at infinity has no affine form.
type Affine struct {
	x, y     secp.FieldVal
	infinity bool
}

// Bytes returns the same compressed encoding as the corresponding
// curve element.
func (a *Affine) Bytes() []byte {
	return a.element().Bytes()
}

// ScalarMult returns k*a as a curve element.
func (a *Affine) ScalarMult(k group.Scalar) group.Element {
	return newPoint().ScalarMult(k, a.element())
}

// IsIdentity reports whether a is the identity.
func (a *Affine) IsIdentity() ct.Choice {
	if a.infinity {
		return ct.True
	}
	return ct.False
}

// X returns the affine x-coordinate. It is zero for the identity.
func (a *Affine) X() Base {
	var b Base
	b.inner.Set(&a.x)
	return b
}

// Y returns the affine y-coordinate. It is zero for the identity.
func (a *Affine) Y() Base {
	var b Base
	b.inner.Set(&a.y)
	return b
}

func (a *Affine) element() *Point {
	p := newPoint()
	if a.infinity {
		return p
	}
	p.inner.X.Set(&a.x)
	p.inner.Y.Set(&a.y)
	p.inner.Z.SetInt(1)
	return p
}

// Curve implements [group.PrimeCurve] and
// [group.ShortWeierstrassCurve] for secp256k1.
type Curve struct{}

// New creates a new secp256k1 group instance.
func New() *Curve {
	return &Curve{}
}

// NewScalar returns a new zero scalar.
func (c *Curve) NewScalar() group.Scalar {
	return newScalar()
}

// NewElement returns a new identity element.
func (c *Curve) NewElement() group.Element {
	return newPoint()
}

// Generator returns the curve base point G.
func (c *Curve) Generator() group.Element {
	p := newPoint()
	p.inner.Set(&generator)
	return p
}

// ScalarBaseMult returns k*G using the fixed-base multiplication of
// the underlying library.
func (c *Curve) ScalarBaseMult(k group.Scalar) group.Element {
	p := newPoint()
	secp.ScalarBaseMultNonConst(&k.(*Scalar).inner, &p.inner)
	return p
}

// RandomScalar returns a uniformly random non-zero scalar read from r.
func (c *Curve) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [32]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		s := newScalar()
		if overflow := s.inner.SetByteSlice(buf[:]); overflow {
			continue
		}
		if s.inner.IsZero() {
			continue
		}
		return s, nil
	}
}

// HashToScalar hashes the input data to a scalar using SHA-256 with
// modular reduction.
func (c *Curve) HashToScalar(data ...[]byte) (group.Scalar, error) {
	h := sha256.New()
	for _, d := range data {
		h.Write(d)
	}
	s := newScalar()
	s.inner.SetByteSlice(h.Sum(nil))
	return s, nil
}

// Order returns the curve order n as a big-endian byte slice.
func (c *Curve) Order() []byte {
	out := make([]byte, len(groupOrder))
	copy(out, groupOrder[:])
	return out
}

// AffineGenerator returns G in affine form.
func (c *Curve) AffineGenerator() group.AffinePoint {
	return c.ToAffine(c.Generator())
}

// FromAffine lifts an affine point into the element type.
func (c *Curve) FromAffine(a group.AffinePoint) group.Element {
	return a.(*Affine).element()
}

// ToAffine returns the affine representative of p. The identity maps
// to the affine value with the infinity flag set and zero coordinates.
func (c *Curve) ToAffine(p group.Element) group.AffinePoint {
	a := &Affine{}
	if p.IsIdentity() == ct.True {
		a.infinity = true
		return a
	}
	var affine secp.JacobianPoint
	affine.Set(&p.(*Point).inner)
	affine.ToAffine()
	a.x.Set(&affine.X)
	a.y.Set(&affine.Y)
	return a
}

// WeierstrassParams returns the curve equation parameters
// (a, b) = (0, 7).
func (c *Curve) WeierstrassParams() (a, b Base) {
	return baseFromUint32(0), baseFromUint32(7)
}

// FromBareCoordinates validates (x, y) against y^2 = x^3 + 7 and
// returns the corresponding element, or an empty option if the pair is
// not on the curve.
func (c *Curve) FromBareCoordinates(x, y Base) ct.Option[group.Element] {
	var lhs, rhs secp.FieldVal
	lhs.SquareVal(&y.inner).Normalize()
	rhs.SquareVal(&x.inner).Mul(&x.inner).AddInt(7).Normalize()
	onCurve := ct.BytesEqual(fieldBytes(&lhs), fieldBytes(&rhs))

	p := newPoint()
	p.inner.X.Set(&x.inner)
	p.inner.Y.Set(&y.inner)
	p.inner.Y.Normalize()
	p.inner.Z.SetInt(1)
	return ct.OptionFrom[group.Element](p, onCurve)
}

// Coordinates returns the affine coordinates of p, or an empty option
// if p is the identity.
func (c *Curve) Coordinates(p group.Element) ct.Option[group.WeierstrassCoordinates[Base]] {
	a := c.ToAffine(p).(*Affine)
	coords, _ := group.NewWeierstrassCoordinates[Base](c, a.X(), a.Y()).Reveal()
	return ct.OptionFrom(coords, p.IsIdentity().Not())
}

func fieldBytes(f *secp.FieldVal) []byte {
	out := make([]byte, 32)
	f.PutBytesUnchecked(out)
	return out
}
