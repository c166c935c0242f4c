// Package dynhash implements a dynamic hashing index: a size-bounded
// binary trie over the bits of each key's digest.
//
// Every key is hashed once per operation into a fixed-width bit sequence.
// Descent consumes one bit per level and ends in a bucket: an ascending-key
// multiset bounded by a capacity and a fill factor. A bucket that outgrows
// its threshold is promoted to a subtree one level deeper, dealing its
// entries out by their next digest bit. A deletion that leaves a node with
// two empty buckets collapses the node back into a single empty bucket of
// its parent, cascading upward along the deletion path. The root never
// collapses: an empty index is a root with two empty buckets and height 1.
//
// Each entry carries the suffix of its digest that has not been consumed
// yet, so a split can route it one level deeper without rehashing the key.
//
// The index is a multimap. Duplicate keys are kept, adjacent and in arrival
// order, and Get/Delete operate on the first match.
//
// Example trie (capacity 3, fill factor 1.0, left-to-right consumption):
//
//	         ,-- 0: [bucket "ab" "fg"]
//	[root] --+
//	         `-- 1: [node] --+-- 0: [bucket "cd"]
//	                         `-- 1: [bucket "de" "ef"]
//
// The traversal order follows the digest bits, not the keys: entries are
// sorted within a bucket but not globally.
package dynhash
