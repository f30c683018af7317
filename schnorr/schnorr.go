package schnorr

import (
	"errors"
	"io"

	"github.com/f3rmion/ecgroup/group"
)

// Schnorr holds the group and hash configuration for a signature
// scheme instance.
type Schnorr struct {
	group  group.Group
	hasher Hasher
}

// KeyPair holds a signing key and its public counterpart.
type KeyPair struct {
	Secret group.Scalar
	Public group.Element
}

// Signature is a Schnorr signature in (R, z) form.
type Signature struct {
	R group.Element
	Z group.Scalar
}

// New creates a Schnorr instance over g using [SHA256Hasher].
func New(g group.Group) (*Schnorr, error) {
	return NewWithHasher(g, &SHA256Hasher{})
}

// NewWithHasher creates a Schnorr instance over g with a custom hasher.
func NewWithHasher(g group.Group, h Hasher) (*Schnorr, error) {
	if g == nil {
		return nil, errors.New("nil group")
	}
	if h == nil {
		return nil, errors.New("nil hasher")
	}
	return &Schnorr{group: g, hasher: h}, nil
}

// KeyGen generates a fresh key pair from the given randomness source.
func (s *Schnorr) KeyGen(r io.Reader) (*KeyPair, error) {
	secret, err := s.group.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	if secret.IsZero() {
		return nil, errors.New("generated zero secret key")
	}
	return &KeyPair{
		Secret: secret,
		Public: s.group.NewElement().ScalarMult(secret, s.group.Generator()),
	}, nil
}

// PublicKey derives the public key for a secret scalar.
func (s *Schnorr) PublicKey(secret group.Scalar) group.Element {
	return s.group.NewElement().ScalarMult(secret, s.group.Generator())
}

// Sign produces a signature over message.
//
// The nonce is derived from the secret key, the message, and fresh
// randomness read from r, so a broken randomness source degrades to
// deterministic signing rather than to nonce reuse across messages.
func (s *Schnorr) Sign(r io.Reader, key *KeyPair, message []byte) (*Signature, error) {
	if key == nil || key.Secret == nil || key.Public == nil {
		return nil, errors.New("incomplete key pair")
	}

	var seed [32]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, err
	}
	k, err := s.hasher.Nonce(s.group, key.Secret.Bytes(), seed[:], message)
	if err != nil {
		return nil, err
	}
	if k.IsZero() {
		return nil, errors.New("derived zero nonce")
	}

	R := s.group.NewElement().ScalarMult(k, s.group.Generator())

	c, err := s.hasher.Challenge(s.group, R.Bytes(), key.Public.Bytes(), message)
	if err != nil {
		return nil, err
	}

	// z = k + c*secret
	cs := s.group.NewScalar().Mul(c, key.Secret)
	z := s.group.NewScalar().Add(k, cs)

	return &Signature{R: R, Z: z}, nil
}

// Verify checks a signature against message and pub.
//
// Returns nil if the signature is valid, or an error describing why it
// is invalid. On groups with a cofactor both pub and the nonce
// commitment must lie in the prime-order subgroup; elements with a
// torsion component are rejected before the verification equation runs.
func (s *Schnorr) Verify(message []byte, sig *Signature, pub group.Element) error {
	if sig == nil || sig.R == nil || sig.Z == nil {
		return errors.New("incomplete signature")
	}
	if pub == nil {
		return errors.New("nil public key")
	}
	if pub.IsIdentity().Reveal() {
		return errors.New("identity public key")
	}
	if err := s.checkSubgroup(pub); err != nil {
		return err
	}
	if err := s.checkSubgroup(sig.R); err != nil {
		return err
	}

	c, err := s.hasher.Challenge(s.group, sig.R.Bytes(), pub.Bytes(), message)
	if err != nil {
		return err
	}

	// Check: z*G == R + c*Y
	lhs := s.group.NewElement().ScalarMult(sig.Z, s.group.Generator())
	cY := s.group.NewElement().ScalarMult(c, pub)
	rhs := s.group.NewElement().Add(sig.R, cY)

	if !lhs.Equal(rhs).Reveal() {
		return errors.New("signature verification failed")
	}
	return nil
}

// BatchVerify checks several signatures at once using a random linear
// combination, which costs roughly one verification equation instead of
// one per signature. A nil return means every signature is valid; on
// failure at least one signature in the batch is invalid, but the batch
// check does not identify which.
//
// The randomness source supplies the blinding weights and must be
// cryptographically secure; predictable weights let an attacker craft
// invalid signatures that cancel in the combination.
func (s *Schnorr) BatchVerify(r io.Reader, messages [][]byte, sigs []*Signature, pubs []group.Element) error {
	if len(messages) != len(sigs) || len(sigs) != len(pubs) {
		return errors.New("mismatched batch lengths")
	}
	if len(sigs) == 0 {
		return errors.New("empty batch")
	}

	// sum(w_i*z_i)*G == sum(w_i*R_i) + sum(w_i*c_i*Y_i)
	zSum := s.group.NewScalar()
	rhs := s.group.NewElement()
	for i := range sigs {
		sig := sigs[i]
		if sig == nil || sig.R == nil || sig.Z == nil {
			return errors.New("incomplete signature in batch")
		}
		if pubs[i].IsIdentity().Reveal() {
			return errors.New("identity public key in batch")
		}
		if err := s.checkSubgroup(pubs[i]); err != nil {
			return err
		}
		if err := s.checkSubgroup(sig.R); err != nil {
			return err
		}

		w, err := s.group.RandomScalar(r)
		if err != nil {
			return err
		}
		c, err := s.hasher.Challenge(s.group, sig.R.Bytes(), pubs[i].Bytes(), messages[i])
		if err != nil {
			return err
		}

		wz := s.group.NewScalar().Mul(w, sig.Z)
		zSum = s.group.NewScalar().Add(zSum, wz)

		wR := s.group.NewElement().ScalarMult(w, sig.R)
		wc := s.group.NewScalar().Mul(w, c)
		wcY := s.group.NewElement().ScalarMult(wc, pubs[i])
		term := s.group.NewElement().Add(wR, wcY)
		rhs = s.group.NewElement().Add(rhs, term)
	}

	lhs := s.group.NewElement().ScalarMult(zSum, s.group.Generator())
	if !lhs.Equal(rhs).Reveal() {
		return errors.New("batch verification failed")
	}
	return nil
}

// SignatureBytes encodes sig as R || z.
func (s *Schnorr) SignatureBytes(sig *Signature) []byte {
	return append(sig.R.Bytes(), sig.Z.Bytes()...)
}

// ParseSignature decodes a signature produced by SignatureBytes.
func (s *Schnorr) ParseSignature(data []byte) (*Signature, error) {
	n := s.group.NewElement().EncodedLen()
	if len(data) <= n {
		return nil, errors.New("signature too short")
	}
	R, err := s.group.NewElement().SetBytes(data[:n])
	if err != nil {
		return nil, err
	}
	z, err := s.group.NewScalar().SetBytes(data[n:])
	if err != nil {
		return nil, err
	}
	return &Signature{R: R, Z: z}, nil
}

// checkSubgroup rejects elements outside the prime-order subgroup on
// groups that carry a cofactor. Prime-order groups pass trivially.
func (s *Schnorr) checkSubgroup(p group.Element) error {
	cg, ok := s.group.(group.CofactorGroup)
	if !ok {
		return nil
	}
	if _, member := group.IntoSubgroup(cg, p).Reveal(); !member {
		return errors.New("element outside the prime-order subgroup")
	}
	return nil
}
