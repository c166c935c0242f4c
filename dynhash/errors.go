package dynhash

import "errors"

var (
	// ErrNilKey is returned by Add for a key that cannot be hashed.
	ErrNilKey = errors.New("dynhash: nil key")

	// ErrExhausted is returned when a bit is consumed from an empty
	// sequence. It cannot surface through the index operations as long as
	// the hasher returns fixed-width, non-empty digests.
	ErrExhausted = errors.New("dynhash: bit sequence exhausted")
)
