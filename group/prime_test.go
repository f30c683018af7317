package group

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"io"
	"testing"

	"github.com/f3rmion/ecgroup/ct"
)

// toyPrimeGroup is the additive group Z_7: prime order, cofactor one.
// It reuses toyScalar both as scalar and, wrapped, as element value.

type toyPrimeElement struct{ v uint64 }

func (e *toyPrimeElement) Add(a, b Element) Element {
	e.v = (a.(*toyPrimeElement).v + b.(*toyPrimeElement).v) % toySubOrder
	return e
}

func (e *toyPrimeElement) Sub(a, b Element) Element {
	e.v = (a.(*toyPrimeElement).v + toySubOrder - b.(*toyPrimeElement).v) % toySubOrder
	return e
}

func (e *toyPrimeElement) Negate(a Element) Element {
	e.v = (toySubOrder - a.(*toyPrimeElement).v) % toySubOrder
	return e
}

func (e *toyPrimeElement) ScalarMult(k Scalar, p Element) Element {
	e.v = (k.(*toyScalar).v * p.(*toyPrimeElement).v) % toySubOrder
	return e
}

func (e *toyPrimeElement) Set(a Element) Element {
	e.v = a.(*toyPrimeElement).v
	return e
}

func (e *toyPrimeElement) Equal(b Element) ct.Choice {
	return ct.ChoiceFrom(subtle.ConstantTimeEq(int32(e.v), int32(b.(*toyPrimeElement).v)))
}

func (e *toyPrimeElement) IsIdentity() ct.Choice {
	return ct.ChoiceFrom(subtle.ConstantTimeEq(int32(e.v), 0))
}

func (e *toyPrimeElement) Bytes() []byte { return []byte{byte(e.v)} }

func (e *toyPrimeElement) SetBytes(data []byte) (Element, error) {
	if len(data) != 1 || data[0] >= toySubOrder {
		return nil, errors.New("invalid element encoding")
	}
	e.v = uint64(data[0])
	return e, nil
}

func (e *toyPrimeElement) EncodedLen() int { return 1 }

type toyPrimeGroup struct{}

func (toyPrimeGroup) NewScalar() Scalar { return &toyScalar{} }

func (toyPrimeGroup) NewElement() Element { return &toyPrimeElement{} }

func (toyPrimeGroup) Generator() Element { return &toyPrimeElement{v: 1} }

func (toyPrimeGroup) RandomScalar(r io.Reader) (Scalar, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	return &toyScalar{v: uint64(buf[0]) % toySubOrder}, nil
}

func (toyPrimeGroup) HashToScalar(data ...[]byte) (Scalar, error) {
	h := sha256.New()
	for _, d := range data {
		h.Write(d)
	}
	return &toyScalar{v: uint64(h.Sum(nil)[0]) % toySubOrder}, nil
}

func (toyPrimeGroup) Order() []byte { return []byte{toySubOrder} }

func (g toyPrimeGroup) ScalarBaseMult(k Scalar) Element {
	return g.NewElement().ScalarMult(k, g.Generator())
}

func TestPrimeOrderAdapter(t *testing.T) {
	var g CofactorGroup = PrimeOrder{toyPrimeGroup{}}

	t.Run("Cofactor", func(t *testing.T) {
		if g.Cofactor() != 1 {
			t.Errorf("cofactor = %d, want 1", g.Cofactor())
		}
	})

	t.Run("ClearCofactorIsIdentityTransform", func(t *testing.T) {
		for i := uint64(0); i < toySubOrder; i++ {
			p := &toyPrimeElement{v: i}
			s := ClearCofactor(g, p)
			if s.Element().Equal(p) != ct.True {
				t.Errorf("clearing changed element %d", i)
			}
		}
	})

	t.Run("IntoSubgroupAlwaysPopulated", func(t *testing.T) {
		for i := uint64(0); i < toySubOrder; i++ {
			p := &toyPrimeElement{v: i}
			s, ok := IntoSubgroup(g, p).Reveal()
			if !ok {
				t.Fatalf("IntoSubgroup empty for element %d", i)
			}
			if s.Element().Equal(p) != ct.True {
				t.Errorf("IntoSubgroup changed element %d", i)
			}
		}
	})

	t.Run("AlwaysTorsionFree", func(t *testing.T) {
		for i := uint64(0); i < toySubOrder; i++ {
			if g.IsTorsionFree(&toyPrimeElement{v: i}) != ct.True {
				t.Errorf("element %d reported torsion", i)
			}
		}
	})

	t.Run("SmallOrderOnlyIdentity", func(t *testing.T) {
		for i := uint64(0); i < toySubOrder; i++ {
			want := i == 0
			if IsSmallOrder(g, &toyPrimeElement{v: i}).Reveal() != want {
				t.Errorf("IsSmallOrder(%d) = %v, want %v", i, !want, want)
			}
		}
	})

	t.Run("ClearCofactorCopies", func(t *testing.T) {
		p := &toyPrimeElement{v: 3}
		s := ClearCofactor(g, p)
		p.Set(&toyPrimeElement{v: 5})
		if s.Bytes()[0] != 3 {
			t.Error("ClearCofactor aliased its input")
		}
	})
}
