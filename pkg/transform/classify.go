// Package transform implements spec §4.6's type classification and
// the ordered §4.7 transformation pipeline that turns a freshly built
// Y-forest into a printable Y-tree.
package transform

import (
	"github.com/cesnet/augyang/pkg/lens"
	"github.com/cesnet/augyang/pkg/ynode"
)

// ClassifyKinds assigns every forest Y-node (everything but the
// synthetic ROOT) its kind, per spec §4.6's label/children/STAR table.
func ClassifyKinds(t *ynode.Tree) {
	t.Walk(func(i int) {
		if i == 0 {
			return // ROOT keeps its kind
		}
		n := &t.Nodes[i]
		if n.Kind == ynode.Rec {
			return // recursion-resolution (step 9) retypes these explicitly
		}
		hasLabel := n.Label != ynode.NoIndex
		hasChildren := n.FirstChild != ynode.NoIndex
		switch {
		case !hasLabel && n.Value == ynode.NoIndex:
			n.Kind = ynode.Unknown
		case hasLabel && hasChildren && underStar(t, n.SNode):
			n.Kind = ynode.List
		case hasLabel && hasChildren:
			n.Kind = ynode.Container
		case hasLabel && !hasChildren && underStar(t, n.SNode):
			n.Kind = ynode.LeafList
		case hasLabel && !hasChildren:
			n.Kind = ynode.Leaf
		default:
			n.Kind = ynode.Unknown
		}
	})
}

// underStar walks the L-tree upward from snode, stopping as soon as
// it finds a STAR (repetition: true) or reaches the enclosing
// SUBTREE/REC boundary (no repetition: false), per spec §4.6's "has
// repetition" rule.
func underStar(t *ynode.Tree, snode int) bool {
	if snode == ynode.NoIndex {
		return false
	}
	lt := t.LTree
	found := false
	lt.AncestorsOf(snode, -1, func(anc int) bool {
		switch lt.Nodes[anc].L.Kind {
		case lens.Star:
			found = true
			return false
		case lens.Subtree, lens.Rec:
			return false
		}
		return true
	})
	return found
}
