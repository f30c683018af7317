package schnorr

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"

	"github.com/f3rmion/ecgroup/group"
)

// Hasher defines the hash operations required for Schnorr signing.
// Different implementations can provide different hash functions and
// domain separation schemes. The digest is converted to a scalar by the
// group's own reduction, so a Hasher works unchanged across groups.
type Hasher interface {
	// Challenge computes the Schnorr challenge scalar.
	// Inputs: encoded nonce commitment R, encoded public key, message.
	Challenge(g group.Group, R, pub, msg []byte) (group.Scalar, error)

	// Nonce derives the signing nonce scalar.
	// Inputs: secret key encoding, fresh randomness, message.
	Nonce(g group.Group, secret, random, msg []byte) (group.Scalar, error)
}

// SHA256Hasher implements Hasher using SHA-256 with tag prefixes.
// This is the default hasher for general use.
type SHA256Hasher struct{}

func (h *SHA256Hasher) hash(tag string, data ...[]byte) []byte {
	hasher := sha256.New()
	hasher.Write([]byte(tag))
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

// Challenge implements Hasher.Challenge.
func (h *SHA256Hasher) Challenge(g group.Group, R, pub, msg []byte) (group.Scalar, error) {
	return g.HashToScalar(h.hash("chal", R, pub, msg))
}

// Nonce implements Hasher.Nonce.
func (h *SHA256Hasher) Nonce(g group.Group, secret, random, msg []byte) (group.Scalar, error) {
	return g.HashToScalar(h.hash("nonce", secret, random, msg))
}

// Blake2bHasher implements Hasher using Blake2b-512 with domain
// separation.
//
// Domain separation format: prefix + tag + input.
type Blake2bHasher struct {
	// Prefix is the domain separation prefix.
	Prefix string
}

// NewBlake2bHasher creates a Blake2bHasher with the default prefix.
func NewBlake2bHasher() *Blake2bHasher {
	return &Blake2bHasher{
		Prefix: "SCHNORR-BLAKE512-v1",
	}
}

func (h *Blake2bHasher) hash(tag string, data ...[]byte) []byte {
	hasher, _ := blake2b.New512(nil)
	hasher.Write([]byte(h.Prefix))
	hasher.Write([]byte(tag))
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

// Challenge implements Hasher.Challenge.
func (h *Blake2bHasher) Challenge(g group.Group, R, pub, msg []byte) (group.Scalar, error) {
	return g.HashToScalar(h.hash("chal", R, pub, msg))
}

// Nonce implements Hasher.Nonce.
func (h *Blake2bHasher) Nonce(g group.Group, secret, random, msg []byte) (group.Scalar, error) {
	return g.HashToScalar(h.hash("nonce", secret, random, msg))
}
