package transform

import "github.com/cesnet/augyang/pkg/ynode"

// ResolveRecursion is pipeline step 9: every Y-node the forest build
// left as Kind REC (one per REC lens cycle) is turned into a
// self-referential LIST - a synthetic "_r-id" key (marked
// WHEN_TARGET, spec §9's design note) plus a LEAFREF child whose Ref
// points back at that same key, modeling the cycle as an index
// reference instead of a parent/child loop.
func ResolveRecursion(t *ynode.Tree) {
	// IDs, not array indices: each InsertChild below shifts the array
	// positions of every node after the one it inserts under.
	var recs []int
	t.Walk(func(i int) {
		if t.Nodes[i].Kind == ynode.Rec {
			recs = append(recs, t.Nodes[i].ID)
		}
	})

	for _, id := range recs {
		i := t.ByID(id)
		t.Nodes[i].Kind = ynode.List

		keyIdx := insertSyntheticKey(t, i, "_r-id")
		t.Nodes[keyIdx].Flags |= ynode.WhenTarget
		keyID := t.Nodes[keyIdx].ID

		refIdx := t.InsertChild(i)
		t.Nodes[refIdx].Kind = ynode.Leafref
		t.Nodes[refIdx].Ref = keyID
		t.Nodes[refIdx].Ident = "_r-id-ref"
	}
}
