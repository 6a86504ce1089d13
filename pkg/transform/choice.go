package transform

import (
	"github.com/cesnet/augyang/pkg/lens"
	"github.com/cesnet/augyang/pkg/ynode"
)

// ShapeChoices is pipeline step 10: every group of siblings sharing
// the same non-NoIndex Choice L-node is a YANG `choice`; each member
// is wrapped in its own CASE node (the common shape for Augeas union
// arms, one SUBTREE lens per arm). CHOICE_MAND_FALSE is set on a case
// when a MAYBE sits between the UNION and that arm's SNode, meaning
// the branch itself is optional within the choice.
func ShapeChoices(t *ynode.Tree) {
	// Node.ID, not array index, is what survives the Wrap calls below:
	// every Wrap shifts array positions, so indices captured before any
	// mutation (parents here, and each group's members) would otherwise
	// go stale partway through the loop.
	var parentIDs []int
	t.Walk(func(i int) { parentIDs = append(parentIDs, t.Nodes[i].ID) })

	for _, pid := range parentIDs {
		p := t.ByID(pid)
		if p == ynode.NoIndex {
			continue // an earlier group's Wrap already consumed this node
		}

		groups := map[int][]int{} // choiceLNode -> member IDs
		for _, c := range t.Children(p) {
			if ch := t.Nodes[c].Choice; ch != ynode.NoIndex {
				groups[ch] = append(groups[ch], t.Nodes[c].ID)
			}
		}
		for choiceLNode, memberIDs := range groups {
			for _, mid := range memberIDs {
				m := t.ByID(mid)
				snode := t.Nodes[m].SNode // Wrap repositions m; read this first
				mandFalse := maybeBetween(t, choiceLNode, snode)

				caseIdx := t.Wrap(m)
				t.Nodes[caseIdx].Kind = ynode.Case
				t.Nodes[caseIdx].Choice = choiceLNode
				t.Nodes[caseIdx].Label = ynode.NoIndex
				t.Nodes[caseIdx].Value = ynode.NoIndex
				t.Nodes[caseIdx].SNode = ynode.NoIndex
				if mandFalse {
					t.Nodes[caseIdx].Flags |= ynode.ChoiceMandFalse
				}
			}
		}
	}
}

// maybeBetween reports whether a MAYBE lens lies on the L-tree path
// strictly between the union node and snode (exclusive of union,
// inclusive up to snode's parent chain).
func maybeBetween(t *ynode.Tree, union, snode int) bool {
	if snode == ynode.NoIndex {
		return false
	}
	lt := t.LTree
	found := false
	lt.AncestorsOf(snode, union, func(anc int) bool {
		if lt.Nodes[anc].L.Kind == lens.Maybe {
			found = true
			return false
		}
		return true
	})
	return found
}
