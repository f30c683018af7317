package bjj

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

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
		result := g.NewScalar().Mul(product, b)

		if !result.Equal(b) {
			t.Error("a*a^-1 != 1")
		}
	})

	t.Run("InvertZeroFails", func(t *testing.T) {
		zero := g.NewScalar()
		if _, err := g.NewScalar().Invert(zero); err == nil {
			t.Error("expected error inverting zero")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		zero := g.NewScalar()
		a, _ := g.RandomScalar(rand.Reader)
		negA := g.NewScalar().Negate(a)

		if !g.NewScalar().Add(a, negA).Equal(zero) {
			t.Error("a + (-a) != 0")
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
		diff := g.NewElement().Sub(sum, q)

		if diff.Equal(p) != ct.True {
			t.Error("(p+q)-q != p")
		}
	})

	t.Run("IdentityIsNeutral", func(t *testing.T) {
		k, _ := g.RandomScalar(rand.Reader)
		p := g.NewElement().ScalarMult(k, g.Generator())
		sum := g.NewElement().Add(p, g.NewElement())
		if sum.Equal(p) != ct.True {
			t.Error("p + identity != p")
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
		data := make([]byte, 32)
		for i := range data {
			data[i] = 0xff
		}
		if _, err := g.NewElement().SetBytes(data); err == nil {
			t.Error("expected error decoding invalid bytes")
		}
	})
}

// torsionPoint returns (0, -1), a point of order two. It lies on the
// curve but outside the prime-order subgroup.
func torsionPoint(t *testing.T, g *BJJ) group.Element {
	t.Helper()
	minusOne := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	p, ok := g.FromBareCoordinates(NewBase(big.NewInt(0)), NewBase(minusOne)).Reveal()
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
		if group.ClearCofactor(g, tp).IsIdentity() != ct.True {
			t.Error("clearing a torsion point did not yield the identity")
		}
	})

	t.Run("ClearPreservesSubgroupComponent", func(t *testing.T) {
		k, _ := g.RandomScalar(rand.Reader)
		p := g.NewElement().ScalarMult(k, g.Generator())
		mixed := g.NewElement().Add(p, torsionPoint(t, g))

		cleared := group.ClearCofactor(g, mixed)
		if cleared.Element().Equal(p) != ct.True {
			t.Error("clearing did not recover the subgroup component")
		}
	})

	t.Run("ClearIdempotentAfterFirstClearing", func(t *testing.T) {
		k, _ := g.RandomScalar(rand.Reader)
		p := g.NewElement().ScalarMult(k, g.Generator())
		mixed := g.NewElement().Add(p, torsionPoint(t, g))

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

	t.Run("IdentityIsSmallOrder", func(t *testing.T) {
		if group.IsSmallOrder(g, g.NewElement()) != ct.True {
			t.Error("identity not reported small order")
		}
		if group.IsSmallOrder(g, g.Generator()) != ct.False {
			t.Error("generator reported small order")
		}
	})
}

func TestEdwardsModel(t *testing.T) {
	g := New()

	t.Run("IdentityCoordinates", func(t *testing.T) {
		coords := g.Coordinates(g.NewElement())
		zero := NewBase(big.NewInt(0))
		one := NewBase(big.NewInt(1))
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

		// The validated pair returns exactly the ingested components.
		validated, ok := group.NewEdwardsCoordinates[Base](g, coords.X(), coords.Y()).Reveal()
		if !ok {
			t.Fatal("validated constructor rejected on-curve pair")
		}
		if validated.X().Equal(coords.X()) != ct.True || validated.Y().Equal(coords.Y()) != ct.True {
			t.Error("coordinate round trip altered components")
		}
	})

	t.Run("RejectsOffCurve", func(t *testing.T) {
		x := NewBase(big.NewInt(0))
		y := NewBase(big.NewInt(2))
		if _, ok := g.FromBareCoordinates(x, y).Reveal(); ok {
			t.Error("off-curve pair (0, 2) accepted")
		}
		if _, ok := group.NewEdwardsCoordinates[Base](g, x, y).Reveal(); ok {
			t.Error("off-curve pair accepted by coordinate constructor")
		}
	})

	t.Run("ConditionalSelect", func(t *testing.T) {
		k, _ := g.RandomScalar(rand.Reader)
		l, _ := g.RandomScalar(rand.Reader)
		a := g.Coordinates(g.NewElement().ScalarMult(k, g.Generator()))
		b := g.Coordinates(g.NewElement().ScalarMult(l, g.Generator()))

		sel := a.Select(b, ct.False)
		if sel.X().Equal(a.X()) != ct.True || sel.Y().Equal(a.Y()) != ct.True {
			t.Error("Select(false) != first operand")
		}
		sel = a.Select(b, ct.True)
		if sel.X().Equal(b.X()) != ct.True || sel.Y().Equal(b.Y()) != ct.True {
			t.Error("Select(true) != second operand")
		}
	})
}
