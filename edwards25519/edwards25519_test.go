package edwards25519

import (
	"crypto/rand"
	"testing"

	"github.com/f3rmion/ecgroup/ct"
	"github.com/f3rmion/ecgroup/group"
)

func TestScalar(t *testing.T) {
	g := New()

	t.Run("AddSub", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)

		sum := g.NewScalar().Add(a, b)
		diff := g.NewScalar().Sub(sum, b)

		if !diff.Equal(a) {
			t.Error("(a+b)-b != a")
		}
	})

	t.Run("MulInvert", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		aInv, err := g.NewScalar().Invert(a)
		if err != nil {
			t.Fatal(err)
		}

		product := g.NewScalar().Mul(a, aInv)
		b, _ := g.RandomScalar(rand.Reader)
		if !g.NewScalar().Mul(product, b).Equal(b) {
			t.Error("a*a^-1 != 1")
		}
	})

	t.Run("InvertZeroFails", func(t *testing.T) {
		if _, err := g.NewScalar().Invert(g.NewScalar()); err == nil {
			t.Error("expected error inverting zero")
		}
	})

	t.Run("BytesRoundTrip", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, err := g.NewScalar().SetBytes(a.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !b.Equal(a) {
			t.Error("scalar bytes did not round trip")
		}
	})

	t.Run("RejectsUnreduced", func(t *testing.T) {
		data := make([]byte, 32)
		for i := range data {
			data[i] = 0xff
		}
		if _, err := g.NewScalar().SetBytes(data); err == nil {
			t.Error("expected error for unreduced scalar")
		}
	})
}

func TestElement(t *testing.T) {
	g := New()

	t.Run("AddSub", func(t *testing.T) {
		k, _ := g.RandomScalar(rand.Reader)
		l, _ := g.RandomScalar(rand.Reader)
		p := g.NewElement().ScalarMult(k, g.Generator())
		q := g.NewElement().ScalarMult(l, g.Generator())

		sum := g.NewElement().Add(p, q)
		if g.NewElement().Sub(sum, q).Equal(p) != ct.True {
			t.Error("(p+q)-q != p")
		}
	})

	t.Run("EncodingRoundTrip", func(t *testing.T) {
		k, _ := g.RandomScalar(rand.Reader)
		p := g.NewElement().ScalarMult(k, g.Generator())

		enc := p.Bytes()
		if len(enc) != p.EncodedLen() {
			t.Errorf("encoding is %d bytes, want %d", len(enc), p.EncodedLen())
		}
		q, err := g.NewElement().SetBytes(enc)
		if err != nil {
			t.Fatal(err)
		}
		if q.Equal(p) != ct.True {
			t.Error("decode(encode(p)) != p")
		}
	})

	t.Run("RejectsGarbage", func(t *testing.T) {
		if _, err := g.NewElement().SetBytes(make([]byte, 16)); err == nil {
			t.Error("expected error for short encoding")
		}

		// y = 2 is not the y-coordinate of any curve point.
		data := make([]byte, 32)
		data[0] = 0x02
		if _, err := g.NewElement().SetBytes(data); err == nil {
			t.Error("expected error for y with no square root")
		}
	})
}

// torsionPoint returns the order-two point (0, -1).
func torsionPoint(t *testing.T, g *Curve) group.Element {
	t.Helper()
	zero, err := NewBase(make([]byte, 32))
	if err != nil {
		t.Fatal(err)
	}
	// -1 mod 2^255-19, little endian.
	minusOneBytes := make([]byte, 32)
	minusOneBytes[0] = 0xec
	for i := 1; i < 31; i++ {
		minusOneBytes[i] = 0xff
	}
	minusOneBytes[31] = 0x7f
	minusOne, err := NewBase(minusOneBytes)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := g.FromBareCoordinates(zero, minusOne).Reveal()
	if !ok {
		t.Fatal("(0, -1) rejected; it satisfies the curve equation")
	}
	return p
}

func TestCofactorGroup(t *testing.T) {
	g := New()

	t.Run("GeneratorTorsionFree", func(t *testing.T) {
		if g.IsTorsionFree(g.Generator()) != ct.True {
			t.Error("generator reported torsion")
		}
	})

	t.Run("TorsionPointDetected", func(t *testing.T) {
		tp := torsionPoint(t, g)
		if g.IsTorsionFree(tp) != ct.False {
			t.Error("(0, -1) reported torsion free")
		}
		if group.IsSmallOrder(g, tp) != ct.True {
			t.Error("(0, -1) not reported small order")
		}
	})

	t.Run("ClearPreservesSubgroupComponent", func(t *testing.T) {
		k, _ := g.RandomScalar(rand.Reader)
		p := g.NewElement().ScalarMult(k, g.Generator())
		mixed := g.NewElement().Add(p, torsionPoint(t, g))

		if group.ClearCofactor(g, mixed).Element().Equal(p) != ct.True {
			t.Error("clearing did not recover the subgroup component")
		}
	})

	t.Run("ClearIdempotentAfterFirstClearing", func(t *testing.T) {
		mixed := g.NewElement().Add(g.Generator(), torsionPoint(t, g))
		once := group.ClearCofactor(g, mixed)
		twice := group.ClearCofactor(g, once.Element())
		if once.Equal(twice) != ct.True {
			t.Error("re-clearing a cleared element changed it")
		}
	})

	t.Run("IntoSubgroup", func(t *testing.T) {
		k, _ := g.RandomScalar(rand.Reader)
		p := g.NewElement().ScalarMult(k, g.Generator())

		s, ok := group.IntoSubgroup(g, p).Reveal()
		if !ok {
			t.Fatal("subgroup element rejected")
		}
		if s.Element().Equal(p) != ct.True {
			t.Error("IntoSubgroup changed the element")
		}

		mixed := g.NewElement().Add(p, torsionPoint(t, g))
		if _, ok := group.IntoSubgroup(g, mixed).Reveal(); ok {
			t.Error("element with torsion accepted")
		}
	})
}

func TestEdwardsModel(t *testing.T) {
	g := New()

	t.Run("IdentityCoordinates", func(t *testing.T) {
		coords := g.Coordinates(g.NewElement())
		zero, _ := NewBase(make([]byte, 32))
		oneBytes := make([]byte, 32)
		oneBytes[0] = 1
		one, _ := NewBase(oneBytes)
		if coords.X().Equal(zero) != ct.True || coords.Y().Equal(one) != ct.True {
			t.Error("identity coordinates != (0, 1)")
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		k, _ := g.RandomScalar(rand.Reader)
		p := g.NewElement().ScalarMult(k, g.Generator())

		coords := g.Coordinates(p)
		q, ok := g.FromBareCoordinates(coords.X(), coords.Y()).Reveal()
		if !ok {
			t.Fatal("extracted coordinates rejected")
		}
		if q.Equal(p) != ct.True {
			t.Error("from_bare(coordinates(p)) != p")
		}
	})

	t.Run("RejectsOffCurve", func(t *testing.T) {
		zero, _ := NewBase(make([]byte, 32))
		twoBytes := make([]byte, 32)
		twoBytes[0] = 2
		two, _ := NewBase(twoBytes)
		if _, ok := g.FromBareCoordinates(zero, two).Reveal(); ok {
			t.Error("off-curve pair (0, 2) accepted")
		}
	})
}
