package transform

import (
	"github.com/cesnet/augyang/pkg/lens"
	"github.com/cesnet/augyang/pkg/ynode"
)

// InsertListKeys implements pipeline steps 6-7: every LIST that
// cannot already identify its instances from its own label gets a
// synthetic KEY child inserted as its new first child - "_seq" (u64)
// when the list's label comes from a SEQ counter lens, "_id" (u64)
// otherwise. (Recursive lists get "_r-id" from ResolveRecursion,
// step 9, which runs after this and creates those lists itself.)
func InsertListKeys(t *ynode.Tree) {
	// IDs, not array indices: each insertSyntheticKey below shifts the
	// array positions of every node after the list it keys.
	var lists []int
	t.Walk(func(i int) {
		if t.Nodes[i].Kind == ynode.List {
			lists = append(lists, t.Nodes[i].ID)
		}
	})
	for _, id := range lists {
		i := t.ByID(id)
		if hasUsableKey(t, i) {
			continue
		}
		ident := "_id"
		if label := t.Nodes[i].Label; label != ynode.NoIndex && t.LTree.Nodes[label].L.Kind == lens.Seq {
			ident = "_seq"
		}
		insertSyntheticKey(t, i, ident)
	}
}

// hasUsableKey reports whether list i's own Augeas label is already
// guaranteed unique among sibling instances: a KEY lens whose pattern
// makes it act as a literal, distinguishing name (spec §3.7
// KEY_IS_LABEL) rather than a repeated counter or free-form value.
func hasUsableKey(t *ynode.Tree, i int) bool {
	label := t.Nodes[i].Label
	if label == ynode.NoIndex {
		return false
	}
	ln := t.LTree.Nodes[label]
	return ln.L.Kind == lens.Key && ln.Flags&lens.KeyIsLabel != 0
}

// insertSyntheticKey inserts a new KEY leaf as the first child of
// list i, named ident, with no Augeas label/value of its own (it is
// wholly synthetic) and type uint64 at emission time. Returns the new
// child's index.
func insertSyntheticKey(t *ynode.Tree, i int, ident string) int {
	child := t.InsertChild(i)
	t.Nodes[child].Kind = ynode.Key
	t.Nodes[child].SNode = ynode.NoIndex
	t.Nodes[child].Label = ynode.NoIndex
	t.Nodes[child].Value = ynode.NoIndex
	t.Nodes[child].Choice = ynode.NoIndex
	t.Nodes[child].Ident = ident
	return child
}
