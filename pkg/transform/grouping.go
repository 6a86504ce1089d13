package transform

import (
	"github.com/cesnet/augyang/pkg/lens"
	"github.com/cesnet/augyang/pkg/ynode"
)

// ExtractGroupings is pipeline step 8: Y-subtrees whose SNode L-node
// shares the very same underlying lens (the Augeas source reuses one
// sub-lens from more than one place in the grammar, e.g. a helper
// lens referenced from two UNION branches) are structurally
// identical, so only the first occurrence is kept in place - promoted
// to a top-level GROUPING - and every other occurrence is collapsed
// to a USES node pointing at it (spec §8.1 property 5).
func ExtractGroupings(t *ynode.Tree) {
	// IDs, not array indices: deleteSubtreeContents below calls DeleteAt,
	// which compacts the array and would otherwise invalidate every
	// occurrence captured after the one just deleted.
	byLens := map[*lens.Lens][]int{}
	t.Walk(func(i int) {
		if i == 0 {
			return
		}
		n := t.Nodes[i]
		if n.SNode == ynode.NoIndex || n.Descendants == 0 {
			return // leaves aren't worth factoring out
		}
		l := t.LTree.Nodes[n.SNode].L
		byLens[l] = append(byLens[l], n.ID)
	})

	for _, occurrenceIDs := range byLens {
		if len(occurrenceIDs) < 2 {
			continue
		}
		first := t.ByID(occurrenceIDs[0])
		groupingID := t.Nodes[first].ID
		moveSubtree(t, first, topLevelContainer(t))
		t.Nodes[first].Kind = ynode.Grouping

		for _, otherID := range occurrenceIDs[1:] {
			other := t.ByID(otherID)
			deleteSubtreeContents(t, other)
			t.Nodes[other].Kind = ynode.Uses
			t.Nodes[other].Ref = groupingID
			t.Nodes[other].SNode = ynode.NoIndex
		}
	}
}

// topLevelContainer returns the root data container inserted by step
// 5, or the housekeeping ROOT itself if step 5 has not run.
func topLevelContainer(t *ynode.Tree) int {
	if t.Nodes[0].FirstChild != ynode.NoIndex {
		return t.Nodes[0].FirstChild
	}
	return 0
}

// moveSubtree relinks the subtree rooted at i to be the new last
// child of newParent, by pointer surgery on Parent/FirstChild/
// NextSibling rather than composing the five array primitives of
// pkg/ynode - there is no primitive for "relocate an already-built
// subtree while keeping its internal array positions intact", and
// expressing that as a sequence of DeleteAt/InsertChild calls would
// tear the subtree down to individual nodes and rebuild it, losing
// its internal structure in the process. This leaves the array in a
// non-pre-order layout after step 8 runs (i's subtree no longer sits
// contiguously after newParent); every later step still works because
// all of them walk via Parent/FirstChild/NextSibling, never by
// scanning a contiguous array range.
func moveSubtree(t *ynode.Tree, i, newParent int) {
	oldParent := t.Nodes[i].Parent
	removed := 1 + t.Nodes[i].Descendants

	if oldParent != ynode.NoIndex {
		if t.Nodes[oldParent].FirstChild == i {
			t.Nodes[oldParent].FirstChild = t.Nodes[i].NextSibling
		} else {
			prev := t.Nodes[oldParent].FirstChild
			for t.Nodes[prev].NextSibling != i {
				prev = t.Nodes[prev].NextSibling
			}
			t.Nodes[prev].NextSibling = t.Nodes[i].NextSibling
		}
		for a := oldParent; a != ynode.NoIndex; a = t.Nodes[a].Parent {
			t.Nodes[a].Descendants -= removed
		}
	}

	t.Nodes[i].Parent = newParent
	t.Nodes[i].NextSibling = ynode.NoIndex
	if t.Nodes[newParent].FirstChild == ynode.NoIndex {
		t.Nodes[newParent].FirstChild = i
	} else {
		c := t.Nodes[newParent].FirstChild
		for t.Nodes[c].NextSibling != ynode.NoIndex {
			c = t.Nodes[c].NextSibling
		}
		t.Nodes[c].NextSibling = i
	}
	for a := newParent; a != ynode.NoIndex; a = t.Nodes[a].Parent {
		t.Nodes[a].Descendants += removed
	}
}

// deleteSubtreeContents deletes every descendant of root (but not
// root itself), deepest-first so DeleteAt never has children left to
// reparent.
func deleteSubtreeContents(t *ynode.Tree, root int) {
	for t.Nodes[root].FirstChild != ynode.NoIndex {
		i := t.Nodes[root].FirstChild
		for t.Nodes[i].FirstChild != ynode.NoIndex {
			i = t.Nodes[i].FirstChild
		}
		t.DeleteAt(i)
	}
}
