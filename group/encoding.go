package group

// Encoding is the canonical byte representation contract for group
// elements. Every element has exactly one encoding, the encoding has a
// fixed size for a given group, and decoding an encoding always yields
// an element equal to the one encoded (the round-trip law):
//
//	q, err := g.NewElement().SetBytes(p.Bytes())
//	// err == nil && q.Equal(p) == ct.True
//
// SetBytes must reject any byte string that is not the canonical
// encoding of some element, including non-canonical representations of
// otherwise valid points. It must never panic on untrusted input.
type Encoding interface {
	// Bytes returns the canonical encoding. The result is always
	// EncodedLen bytes long.
	Bytes() []byte
	// SetBytes sets the receiver from a canonical encoding and returns
	// it. Returns an error if data is not the canonical encoding of a
	// group element.
	SetBytes(data []byte) (Element, error)
	// EncodedLen returns the length in bytes of the canonical encoding.
	EncodedLen() int
}
