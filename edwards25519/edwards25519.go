package edwards25519

import (
	"crypto/sha512"
	"errors"
	"io"

	ed "filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/f3rmion/ecgroup/ct"
	"github.com/f3rmion/ecgroup/group"
)

// cofactor is the index of the prime-order subgroup in the full
// edwards25519 group.
const cofactor = 8

// groupOrder is l = 2^252 + 27742317777372353535851937790883648493 in
// big-endian form, the order of the prime subgroup.
var groupOrder = [32]byte{
	0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x14, 0xde, 0xf9, 0xde, 0xa2, 0xf7, 0x9c, 0xd6,
	0x58, 0x12, 0x63, 0x1a, 0x5c, 0xf5, 0xd3, 0xed,
}

// invEight is 8^-1 mod l in the 32-byte little-endian form used by
// filippo.io scalars. Multiplying a cleared point by it makes the
// overall cofactor-clearing multiplier congruent to 1 mod l.
var invEight *ed.Scalar

// feD is the Edwards curve parameter d in little-endian form.
var feD *field.Element

// feA is the Edwards curve parameter a = -1.
var feA *field.Element

func init() {
	// d = 37095705934669439343138083508754565189542113879843219016388785533085940283555
	var err error
	feD, err = new(field.Element).SetBytes([]byte{
		0xa3, 0x78, 0x59, 0x13, 0xca, 0x4d, 0xeb, 0x75,
		0xab, 0xd8, 0x41, 0x41, 0x4d, 0x0a, 0x70, 0x00,
		0x98, 0xe8, 0x79, 0x77, 0x79, 0x40, 0xc7, 0x8c,
		0x73, 0xfe, 0x6f, 0x2b, 0xee, 0x6c, 0x03, 0x52,
	})
	if err != nil {
		panic("edwards25519: invalid d constant")
	}
	feA = new(field.Element).Negate(new(field.Element).One())

	// 8^-1 mod l, little endian.
	invEight, err = new(ed.Scalar).SetCanonicalBytes([]byte{
		0x79, 0x2f, 0xdc, 0xe2, 0x29, 0xe5, 0x06, 0x61,
		0xd0, 0xda, 0x1c, 0x7d, 0xb3, 0x9d, 0xd3, 0x07,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x06,
	})
	if err != nil {
		panic("edwards25519: invalid 8^-1 constant")
	}

	// Sanity check: 8 * 8^-1 == 1 mod l.
	eight := scalarFromUint64(8)
	check := new(ed.Scalar).Multiply(eight, invEight)
	if check.Equal(scalarFromUint64(1)) != 1 {
		panic("edwards25519: 8^-1 constant does not invert 8")
	}
}

func scalarFromUint64(v uint64) *ed.Scalar {
	var buf [32]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	s, err := new(ed.Scalar).SetCanonicalBytes(buf[:])
	if err != nil {
		panic("edwards25519: out-of-range scalar literal")
	}
	return s
}

// Scalar represents an element of the edwards25519 scalar field, the
// integers modulo l. It implements [group.Scalar] by wrapping
// filippo.io's Scalar.
type Scalar struct {
	inner ed.Scalar
}

func newScalar() *Scalar {
	return &Scalar{}
}

// Add sets s to a + b (mod l) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b (mod l) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Subtract(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b (mod l) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Multiply(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate sets s to -a (mod l) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Negate(&a.(*Scalar).inner)
	return s
}

// Invert sets s to a^(-1) (mod l) and returns s.
// Returns an error if a is zero.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	if a.(*Scalar).IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.Invert(&a.(*Scalar).inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	return s.inner.Bytes()
}

// SetBytes sets s from a canonical 32-byte little-endian encoding and
// returns s. Returns an error if the value is not reduced mod l.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if _, err := s.inner.SetCanonicalBytes(data); err != nil {
		return nil, err
	}
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(&b.(*Scalar).inner) == 1
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Equal(ed.NewScalar()) == 1
}

// Base is an element of GF(2^255 - 19), used for affine coordinates in
// both the Edwards and Montgomery models. It wraps filippo.io's
// field.Element and supports branchless selection.
type Base struct {
	inner field.Element
}

// NewBase decodes a 32-byte little-endian field element.
func NewBase(data []byte) (Base, error) {
	var b Base
	if _, err := b.inner.SetBytes(data); err != nil {
		return Base{}, err
	}
	return b, nil
}

func baseFromUint32(v uint32) Base {
	var b Base
	b.inner.Mult32(new(field.Element).One(), v)
	return b
}

// Select returns b when v is False and other when v is True.
func (b Base) Select(other Base, v ct.Choice) Base {
	var r Base
	r.inner.Select(&other.inner, &b.inner, v.Int())
	return r
}

// Bytes returns the canonical 32-byte little-endian encoding.
func (b Base) Bytes() []byte {
	return b.inner.Bytes()
}

// Equal reports in constant time whether b equals other.
func (b Base) Equal(other Base) ct.Choice {
	return ct.ChoiceFrom(b.inner.Equal(&other.inner))
}

// Point represents a point in the full edwards25519 group, torsion
// included. It implements [group.Element] by wrapping filippo.io's
// Point.
type Point struct {
	inner ed.Point
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Element) group.Element {
	p.inner.Add(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Element) group.Element {
	p.inner.Subtract(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Element) group.Element {
	p.inner.Negate(&a.(*Point).inner)
	return p
}

// ScalarMult sets p to k * q and returns p.
func (p *Point) ScalarMult(k group.Scalar, q group.Element) group.Element {
	p.inner.ScalarMult(&k.(*Scalar).inner, &q.(*Point).inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Element) group.Element {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the canonical 32-byte compressed Edwards encoding.
func (p *Point) Bytes() []byte {
	return p.inner.Bytes()
}

// SetBytes sets p from a compressed Edwards encoding and returns p.
// Returns an error if the data does not represent a curve point. A
// decoded point may still carry torsion; validate with
// [group.IntoSubgroup] before trusting it.
func (p *Point) SetBytes(data []byte) (group.Element, error) {
	if _, err := p.inner.SetBytes(data); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodedLen returns 32.
func (p *Point) EncodedLen() int {
	return 32
}

// Equal reports in constant time whether p and b represent the same
// curve point.
func (p *Point) Equal(b group.Element) ct.Choice {
	return ct.ChoiceFrom(p.inner.Equal(&b.(*Point).inner))
}

// IsIdentity reports in constant time whether p is the identity.
func (p *Point) IsIdentity() ct.Choice {
	return ct.ChoiceFrom(p.inner.Equal(ed.NewIdentityPoint()))
}

// Curve implements the group contracts for edwards25519: [group.Group],
// [group.CofactorGroup], and [group.TwistedEdwardsCurve]. Use
// [Curve.Montgomery] for the [group.MontgomeryCurve] view of the same
// group.
//
// Curve is a zero-sized type. Create an instance with New, &Curve{},
// or new(Curve).
type Curve struct{}

// New returns an edwards25519 group instance.
func New() *Curve {
	return &Curve{}
}

// NewScalar returns a new scalar initialized to zero.
func (c *Curve) NewScalar() group.Scalar {
	return newScalar()
}

// NewElement returns a new point initialized to the identity.
func (c *Curve) NewElement() group.Element {
	var p Point
	p.inner.Set(ed.NewIdentityPoint())
	return &p
}

// Generator returns the Ed25519 base point. It generates the
// prime-order subgroup.
func (c *Curve) Generator() group.Element {
	var p Point
	p.inner.Set(ed.NewGeneratorPoint())
	return &p
}

// RandomScalar generates a cryptographically random scalar using the
// provided random source. The result is uniformly distributed mod l.
func (c *Curve) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := newScalar()
	if _, err := s.inner.SetUniformBytes(buf[:]); err != nil {
		return nil, err
	}
	return s, nil
}

// HashToScalar hashes the provided data to a scalar using SHA-512 with
// uniform reduction mod l. Multiple byte slices are concatenated
// before hashing.
func (c *Curve) HashToScalar(data ...[]byte) (group.Scalar, error) {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	s := newScalar()
	if _, err := s.inner.SetUniformBytes(h.Sum(nil)); err != nil {
		return nil, err
	}
	return s, nil
}

// Order returns l as a big-endian byte slice.
func (c *Curve) Order() []byte {
	out := make([]byte, len(groupOrder))
	copy(out, groupOrder[:])
	return out
}

// Cofactor returns 8.
func (c *Curve) Cofactor() uint64 {
	return cofactor
}

// ClearCofactor returns p multiplied by 8*(8^-1 mod l): the torsion
// component is annihilated and the prime-order subgroup component is
// preserved exactly.
func (c *Curve) ClearCofactor(p group.Element) group.Element {
	var r Point
	r.inner.MultByCofactor(&p.(*Point).inner)
	// The result is in the subgroup, where multiplying by 8^-1 undoes
	// the factor of eight.
	r.inner.ScalarMult(invEight, &r.inner)
	return &r
}

// IsTorsionFree reports in constant time whether p lies in the
// prime-order subgroup, by multiplying p by l with a fixed double-and-
// add chain and comparing against the identity. The chain depends only
// on the public constant l, never on p.
func (c *Curve) IsTorsionFree(p group.Element) ct.Choice {
	acc := ed.NewIdentityPoint()
	pt := &p.(*Point).inner
	for _, b := range groupOrder {
		for bit := 7; bit >= 0; bit-- {
			acc.Add(acc, acc)
			if b>>uint(bit)&1 == 1 {
				acc.Add(acc, pt)
			}
		}
	}
	return ct.ChoiceFrom(acc.Equal(ed.NewIdentityPoint()))
}

// EdwardsParams returns the twisted Edwards parameters (a, d) with
// a = -1.
func (c *Curve) EdwardsParams() (a, d Base) {
	a.inner.Set(feA)
	d.inner.Set(feD)
	return a, d
}

// FromBareCoordinates validates (x, y) against the curve equation
// -x^2 + y^2 = 1 + d*x^2*y^2 and returns the corresponding point, or
// an empty option if the pair is not on the curve.
func (c *Curve) FromBareCoordinates(x, y Base) ct.Option[group.Element] {
	var t field.Element
	t.Multiply(&x.inner, &y.inner)

	var p Point
	_, err := p.inner.SetExtendedCoordinates(&x.inner, &y.inner, new(field.Element).One(), &t)
	if err != nil {
		return ct.OptionFrom(c.NewElement(), ct.False)
	}
	return ct.Some[group.Element](&p)
}

// Coordinates returns the affine coordinates of p. The identity has
// finite coordinates (0, 1), so this is total.
func (c *Curve) Coordinates(p group.Element) group.EdwardsCoordinates[Base] {
	x, y := affine(&p.(*Point).inner)
	coords, _ := group.NewEdwardsCoordinates[Base](c, x, y).Reveal()
	return coords
}

// affine reduces a point's extended coordinates to affine (x, y).
func affine(p *ed.Point) (Base, Base) {
	bigX, bigY, bigZ, _ := p.ExtendedCoordinates()
	var zInv field.Element
	zInv.Invert(bigZ)

	var x, y Base
	x.inner.Multiply(bigX, &zInv)
	y.inner.Multiply(bigY, &zInv)
	return x, y
}
