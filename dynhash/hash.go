package dynhash

import sha256 "github.com/minio/sha256-simd"

// Hasher turns a key into a digest. The trie routes entries by the
// digest's bits; the key itself is only compared inside buckets. Digests
// must share a fixed width - the width bounds the trie depth.
type Hasher interface {
	Sum(key []byte) []byte
}

// SHA256 is the default Hasher: a 256-bit digest of the key.
var SHA256 Hasher = sha256Hasher{}

type sha256Hasher struct{}

func (sha256Hasher) Sum(key []byte) []byte {
	sum := sha256.Sum256(key)
	return sum[:]
}
