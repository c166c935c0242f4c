package dynhash

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the trie shape: one line per node, buckets with their keys
// and leftover digest bits.
func (t *Trie) Dump() string {
	root := treeprint.NewWithRoot(fmt.Sprintf("root n=%d ff=%g len=%d", t.n, t.ff, t.size))
	dumpBranch(root, 0, &t.root.child[0])
	dumpBranch(root, 1, &t.root.child[1])
	return root.String()
}

func (t *Trie) String() string {
	return t.Dump()
}

func dumpBranch(tree treeprint.Tree, bit int, br *branch) {
	if br.node != nil {
		sub := tree.AddBranch(fmt.Sprintf("%d: node depth=%d", bit, br.node.depth))
		dumpBranch(sub, 0, &br.node.child[0])
		dumpBranch(sub, 1, &br.node.child[1])
		return
	}

	sub := tree.AddBranch(fmt.Sprintf("%d: bucket len=%d", bit, len(br.bucket)))
	for _, e := range br.bucket {
		sub.AddNode(fmt.Sprintf("%q rest=%s", e.key, e.bits))
	}
}
