// Package schnorr implements single-signer Schnorr signatures over any
// [group.Group]. The same protocol code runs unchanged on Baby Jubjub,
// edwards25519, and secp256k1, because everything curve-specific lives
// behind the group interfaces.
//
// # Signing
//
//	g := edwards25519.New()
//	signer, err := schnorr.New(g)
//	if err != nil {
//		return err
//	}
//
//	key, err := signer.KeyGen(rand.Reader)
//	if err != nil {
//		return err
//	}
//
//	sig, err := signer.Sign(rand.Reader, key, message)
//	if err != nil {
//		return err
//	}
//
//	if err := signer.Verify(message, sig, key.Public); err != nil {
//		// invalid signature
//	}
//
// # Cofactor safety
//
// On groups with a cofactor, a public key or nonce commitment supplied
// by a remote party may carry a small-order component. Verify rejects
// such inputs by checking subgroup membership before running the
// verification equation, so a signature accepted here identifies a
// unique signer in the prime-order subgroup. On prime-order groups the
// checks are free.
//
// # Sessions
//
// For interactive protocols where the nonce commitment is broadcast
// before the challenge is known, [Schnorr.NewSession] wraps a single
// nonce in a one-shot session. A session signs exactly once; a second
// call returns an error, preventing nonce reuse which would leak the
// secret key.
package schnorr
