package dynhash

import (
	"bytes"
	"sort"
)

// Item is a key-value pair as reported by Iter and Items.
type Item struct {
	Key []byte
	Val interface{}
}

// entry is an Item plus the suffix of the key's digest that has not been
// consumed yet. Carrying the suffix lets a split route the entry one level
// deeper without rehashing the key.
type entry struct {
	key  []byte
	val  interface{}
	bits BitSeq
}

// bucket is an ascending-key multiset of entries. Duplicate keys are
// allowed and stay adjacent, in arrival order.
type bucket []entry

// insert places e keeping the key order, after any entries with an equal key.
func (b *bucket) insert(e entry) {
	s := *b
	i := sort.Search(len(s), func(i int) bool {
		return bytes.Compare(s[i].key, e.key) > 0
	})
	s = append(s, entry{})
	copy(s[i+1:], s[i:])
	s[i] = e
	*b = s
}

// search returns the index of the first entry with the given key, or -1.
func (b bucket) search(key []byte) int {
	i := sort.Search(len(b), func(i int) bool {
		return bytes.Compare(b[i].key, key) >= 0
	})
	if i < len(b) && bytes.Equal(b[i].key, key) {
		return i
	}
	return -1
}

// firstMatch returns the value of the first entry with the given key.
func (b bucket) firstMatch(key []byte) (interface{}, bool) {
	if i := b.search(key); i >= 0 {
		return b[i].val, true
	}
	return nil, false
}

// removeFirst removes the first entry with the given key.
func (b *bucket) removeFirst(key []byte) bool {
	s := *b
	i := s.search(key)
	if i < 0 {
		return false
	}
	copy(s[i:], s[i+1:])
	s[len(s)-1] = entry{} // release the moved-out tail
	*b = s[:len(s)-1]
	return true
}

// overfull reports whether the bucket violates its fill threshold.
func (b bucket) overfull(n int, ff float64) bool {
	return float64(len(b)) > float64(n)*ff
}
