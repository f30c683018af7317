package schnorr

import (
	"errors"
	"io"
	"sync"

	"github.com/f3rmion/ecgroup/group"
)

// Session manages a single signing operation whose nonce commitment is
// published before the signature is produced, as in identification
// protocols and commit-then-sign flows. Each session can be used only
// once; attempting to sign twice returns an error.
//
// Create sessions using [Schnorr.NewSession].
type Session struct {
	mu       sync.Mutex
	scheme   *Schnorr
	key      *KeyPair
	message  []byte
	nonce    group.Scalar
	R        group.Element
	consumed bool
}

// NewSession creates a signing session for the given message.
//
// This generates a fresh nonce internally. The session must be used
// exactly once; calling Sign a second time returns an error.
func (s *Schnorr) NewSession(r io.Reader, key *KeyPair, message []byte) (*Session, error) {
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

	// Copy message to prevent external modification
	msgCopy := make([]byte, len(message))
	copy(msgCopy, message)

	return &Session{
		scheme:  s,
		key:     key,
		message: msgCopy,
		nonce:   k,
		R:       s.group.NewElement().ScalarMult(k, s.group.Generator()),
	}, nil
}

// Commitment returns the public nonce commitment R to broadcast before
// signing.
func (s *Session) Commitment() group.Element {
	return s.scheme.group.NewElement().Set(s.R)
}

// Message returns the message being signed.
func (s *Session) Message() []byte {
	return s.message
}

// Sign completes the session and produces the signature.
//
// This method consumes the session. Calling Sign a second time returns
// an error to prevent nonce reuse, which would leak the secret key.
// After Sign returns, the internal nonce is discarded regardless of
// success.
func (s *Session) Sign() (*Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.consumed {
		return nil, errors.New("session already consumed: nonce reuse prevented")
	}

	// Mark as consumed immediately, before any operation that might fail
	s.consumed = true
	defer s.dropNonce()

	g := s.scheme.group
	c, err := s.scheme.hasher.Challenge(g, s.R.Bytes(), s.key.Public.Bytes(), s.message)
	if err != nil {
		return nil, err
	}

	cs := g.NewScalar().Mul(c, s.key.Secret)
	z := g.NewScalar().Add(s.nonce, cs)

	return &Signature{R: g.NewElement().Set(s.R), Z: z}, nil
}

// dropNonce discards the secret nonce to prevent accidental reuse.
// This is best-effort cleanup; Go does not guarantee memory zeroing.
func (s *Session) dropNonce() {
	s.nonce = nil
}

// IsConsumed reports whether this session has already been used.
func (s *Session) IsConsumed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consumed
}
