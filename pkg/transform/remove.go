package transform

import "github.com/cesnet/augyang/pkg/ynode"

// removeMatching repeatedly scans the tree (excluding ROOT) for the
// first node satisfying pred and deletes it, until no match remains.
// Re-scanning from the top after every delete is deliberate: deleting
// a node can make its former parent newly eligible (e.g. step 1's
// "any childless UNKNOWN", which can cascade upward).
func removeMatching(t *ynode.Tree, pred func(*ynode.Tree, int) bool) {
	for {
		found := -1
		t.Walk(func(i int) {
			if found != -1 || i == 0 {
				return
			}
			if pred(t, i) {
				found = i
			}
		})
		if found == -1 {
			return
		}
		t.DeleteAt(found)
	}
}

// RemoveUnknownLeaves is pipeline step 1: any childless UNKNOWN node
// is deleted.
func RemoveUnknownLeaves(t *ynode.Tree) {
	removeMatching(t, func(t *ynode.Tree, i int) bool {
		n := t.Nodes[i]
		return n.Kind == ynode.Unknown && n.FirstChild == ynode.NoIndex
	})
}

// RemoveComments is pipeline step 2: any node whose label lens is the
// literal string "#comment" is deleted.
func RemoveComments(t *ynode.Tree) {
	removeMatching(t, func(t *ynode.Tree, i int) bool {
		n := t.Nodes[i]
		if n.Label == ynode.NoIndex {
			return false
		}
		return t.LTree.Nodes[n.Label].L.Literal == "#comment"
	})
}

// RemoveUselessLeaves is pipeline step 3: if a LEAF's snode also
// appears, under the same parent, as a LEAFLIST, the LEAF is
// redundant and is dropped.
func RemoveUselessLeaves(t *ynode.Tree) {
	removeMatching(t, func(t *ynode.Tree, i int) bool {
		n := t.Nodes[i]
		if n.Kind != ynode.Leaf || n.Parent == ynode.NoIndex {
			return false
		}
		for _, sib := range t.Children(n.Parent) {
			if sib != i && t.Nodes[sib].Kind == ynode.LeafList && t.Nodes[sib].SNode == n.SNode {
				return true
			}
		}
		return false
	})
}

// RemoveTopLevelChoice is pipeline step 4: if every top-level subtree
// is a LIST belonging to the same UNION, the choice is redundant
// (list repetition already distinguishes the branches) and is
// stripped.
func RemoveTopLevelChoice(t *ynode.Tree) {
	children := t.Children(0)
	if len(children) == 0 {
		return
	}
	choice := t.Nodes[children[0]].Choice
	if choice == ynode.NoIndex {
		return
	}
	for _, c := range children {
		if t.Nodes[c].Kind != ynode.List || t.Nodes[c].Choice != choice {
			return
		}
	}
	for _, c := range children {
		t.Nodes[c].Choice = ynode.NoIndex
	}
}
