package dynhash

// Floors for the constructor parameters. Out-of-range values are clamped,
// never rejected.
const (
	MinCapacity   = 3
	MinFillFactor = 0.25
)

// Trie is a dynamic hashing index over []byte keys. See the package
// documentation for the structure; the zero value is not usable, construct
// with New or NewWithHasher.
type Trie struct {
	n    int
	ff   float64
	dir  Direction
	hash Hasher
	size int
	root node
}

// New returns an empty index keyed by SHA-256 digests. The capacity is
// clamped to MinCapacity, the fill factor to MinFillFactor, and an unknown
// direction falls back to LeftToRight.
func New(n int, ff float64, dir Direction) *Trie {
	return NewWithHasher(n, ff, dir, SHA256)
}

// NewWithHasher is New with an injected key hasher.
func NewWithHasher(n int, ff float64, dir Direction, h Hasher) *Trie {
	if n < MinCapacity {
		n = MinCapacity
	}
	if ff < MinFillFactor {
		ff = MinFillFactor
	}
	if dir != LeftToRight && dir != RightToLeft {
		dir = LeftToRight
	}
	return &Trie{n: n, ff: ff, dir: dir, hash: h}
}

// Len returns the number of entries in the index.
func (t *Trie) Len() int {
	return t.size
}

// Height returns the number of levels in the trie. An empty index has
// height 1 and Height never decreases across insertions.
func (t *Trie) Height() int {
	return t.root.height()
}

func (t *Trie) hashKey(key []byte) BitSeq {
	return NewBitSeq(t.hash.Sum(key))
}

// Add inserts a key-value pair. The key is hashed once per call; an
// existing equal key is kept, the new entry lands next to it in arrival
// order. Adding fails only for a key the hasher cannot digest.
func (t *Trie) Add(key []byte, val interface{}) error {
	if key == nil {
		return ErrNilKey
	}

	seq := t.hashKey(key)
	cur := &t.root

	for {
		bit, rest, err := seq.Consume(t.dir)
		if err != nil {
			return err
		}
		seq = rest

		br := &cur.child[bit]
		if br.node != nil {
			cur = br.node
			continue
		}

		br.bucket.insert(entry{key: key, val: val, bits: seq})

		// A bucket whose entries have run out of digest bits is terminal:
		// it absorbs full-depth collisions without splitting.
		if br.bucket.overfull(t.n, t.ff) && seq.Len() > 0 {
			t.split(br, cur.depth+1)
		}

		t.size++
		return nil
	}
}

// split promotes the bucket in br to a node at the given depth and deals
// the entries one level down by their next digest bit. The redistribution
// never re-checks the fill threshold, so an overflow grows the trie by
// exactly one level; a child bucket left over the threshold splits on the
// next insertion that lands in it.
func (t *Trie) split(br *branch, depth int) {
	child := &node{depth: depth}

	for _, e := range br.bucket {
		// cannot fail: split is skipped once the residual bits run out
		bit, rest, _ := e.bits.Consume(t.dir)
		e.bits = rest
		child.child[bit].bucket.insert(e)
	}

	br.bucket = nil
	br.node = child
}

// Get returns the value of the first entry matching the key.
func (t *Trie) Get(key []byte) (interface{}, bool) {
	if key == nil {
		return nil, false
	}

	seq := t.hashKey(key)
	cur := &t.root

	for {
		bit, rest, err := seq.Consume(t.dir)
		if err != nil {
			return nil, false
		}
		seq = rest

		br := &cur.child[bit]
		if br.node == nil {
			return br.bucket.firstMatch(key)
		}
		cur = br.node
	}
}

// Contains reports whether at least one entry has the given key.
func (t *Trie) Contains(key []byte) bool {
	_, ok := t.Get(key)
	return ok
}

// Delete removes the first entry matching the key and reports whether a
// removal happened. Deleting an absent key is a no-op.
//
// A removal that leaves a node with two empty buckets collapses the node
// into a single empty bucket in its parent, cascading up the deletion
// path. The root is exempt: it persists with two empty buckets.
func (t *Trie) Delete(key []byte) bool {
	if key == nil {
		return false
	}

	seq := t.hashKey(key)

	// The visited branch slots, deepest last. The digest width bounds the
	// depth, so one allocation covers the worst case.
	path := make([]*branch, 0, seq.Len())

	cur := &t.root
	removed := false

	for {
		bit, rest, err := seq.Consume(t.dir)
		if err != nil {
			return false
		}
		seq = rest

		br := &cur.child[bit]
		if br.node == nil {
			removed = br.bucket.removeFirst(key)
			break
		}
		path = append(path, br)
		cur = br.node
	}

	if !removed {
		return false
	}
	t.size--

	for i := len(path) - 1; i >= 0; i-- {
		br := path[i]
		if !br.node.empty() {
			break
		}
		br.node = nil
		br.bucket = nil
	}

	return true
}

// Iter calls the handler for every entry: depth-first by digest bit, each
// bucket in ascending key order. The global order follows the digests, not
// the keys. Every call restarts from the beginning; the handler aborts the
// walk by returning false. Iter reports whether the walk completed.
func (t *Trie) Iter(handler func(Item) bool) bool {
	return t.root.walk(handler)
}

// Items returns all key-value pairs in Iter order.
func (t *Trie) Items() []Item {
	return t.root.items(make([]Item, 0, t.size))
}

// Keys returns all keys in Iter order.
func (t *Trie) Keys() [][]byte {
	keys := make([][]byte, 0, t.size)
	t.root.walk(func(it Item) bool {
		keys = append(keys, it.Key)
		return true
	})
	return keys
}
