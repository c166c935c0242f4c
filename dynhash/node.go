package dynhash

// branch is one of the two slots of a node. It holds either a leaf bucket
// or a child node: the slot is a bucket iff node == nil. The two slots of
// one node vary independently.
type branch struct {
	node   *node
	bucket bucket
}

type node struct {
	depth int
	child [2]branch
}

// empty reports whether both slots are buckets holding nothing.
func (n *node) empty() bool {
	return n.child[0].node == nil && len(n.child[0].bucket) == 0 &&
		n.child[1].node == nil && len(n.child[1].bucket) == 0
}

// height is 1 for a node whose slots are both buckets; a node slot adds
// one level per descent.
func (n *node) height() int {
	h := 1
	for i := range n.child {
		if child := n.child[i].node; child != nil {
			if ch := 1 + child.height(); ch > h {
				h = ch
			}
		}
	}
	return h
}

// walk visits every entry depth-first, slot 0 before slot 1, each bucket in
// ascending key order. It stops early and returns false when the handler
// aborts. The recursion depth is bounded by the digest width.
func (n *node) walk(handler func(Item) bool) bool {
	for i := range n.child {
		br := &n.child[i]
		if br.node != nil {
			if !br.node.walk(handler) {
				return false
			}
			continue
		}
		for _, e := range br.bucket {
			if !handler(Item{Key: e.key, Val: e.val}) {
				return false
			}
		}
	}
	return true
}

// items appends every entry to out in walk order, without function
// recursion.
func (n *node) items(out []Item) []Item {
	toVisit := make([]*branch, 0, 16)
	toVisit = append(toVisit, &n.child[1], &n.child[0])

	for l := len(toVisit); l > 0; l = len(toVisit) {
		br := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if br.node != nil {
			// unshift the children and continue
			toVisit = append(toVisit, &br.node.child[1], &br.node.child[0])
			continue
		}
		for _, e := range br.bucket {
			out = append(out, Item{Key: e.key, Val: e.val})
		}
	}

	return out
}
