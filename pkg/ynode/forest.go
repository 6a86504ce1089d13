package ynode

import "github.com/cesnet/augyang/pkg/lens"

// BuildForest walks lt top-down, creating one Y-node per SUBTREE (or
// REC) L-node, and wraps the result in a single synthetic ROOT Y-node
// (spec §4.3). The returned Tree's Nodes[0] is that ROOT.
func BuildForest(lt *lens.Tree, moduleName string) *Tree {
	t := NewTree(lt, moduleName)

	// parentY is, while walking down, the Y-tree index of the nearest
	// enclosing Y-node (or NoIndex while still above
	// the first SUBTREE/REC).
	var walk func(lIdx, parentY int)
	walk = func(lIdx, parentY int) {
		n := lt.Nodes[lIdx]
		thisY := parentY
		if n.L.Kind == lens.Subtree || n.L.Kind == lens.Rec {
			thisY = t.newForestNode(lIdx, parentY)
		}
		for _, c := range lt.Children(lIdx) {
			walk(c, thisY)
		}
	}
	walk(lt.Root, NoIndex)
	t.recomputeDescendants()

	return t
}

// recomputeDescendants fills in every node's Descendants bottom-up.
// appendChild (unlike InsertChild/Wrap/DeleteAt) does not maintain it
// incrementally, since the forest build doesn't know a new Y-node's
// final position in its parent's child list until the whole subtree
// under it has been walked - so the whole tree gets one pass here
// once construction is complete.
func (t *Tree) recomputeDescendants() {
	var visit func(i int) int
	visit = func(i int) int {
		n := 0
		for _, c := range t.Children(i) {
			n += 1 + visit(c)
		}
		t.Nodes[i].Descendants = n
		return n
	}
	visit(0)
}

// newForestNode allocates a Y-node for the SUBTREE/REC L-node at
// lIdx, linking it under parentY (NoIndex meaning "under ROOT"), and
// fills in label/value/choice per spec §4.3.
func (t *Tree) newForestNode(lIdx, parentY int) int {
	idx := len(t.Nodes)
	n := zeroNode()
	n.ID = t.allocID()
	n.SNode = lIdx
	if t.LTree.Nodes[lIdx].L.Kind == lens.Rec {
		n.Kind = Rec
	}
	t.Nodes = append(t.Nodes, n)

	parent := parentY
	if parent == NoIndex {
		parent = 0 // ROOT
	}
	t.appendChild(parent, idx)

	label, value := t.scanLabelValue(lIdx)
	t.Nodes[idx].Label = label
	t.Nodes[idx].Value = value
	t.Nodes[idx].Choice = t.findChoice(lIdx)

	return idx
}

// appendChild links child as the last child of parent, spec §4.5's
// shape (used only during the initial, append-only forest build; the
// transform pipeline uses InsertChild/Wrap/InsertParent afterwards).
func (t *Tree) appendChild(parent, child int) {
	t.Nodes[child].Parent = parent
	if t.Nodes[parent].FirstChild == NoIndex {
		t.Nodes[parent].FirstChild = child
		return
	}
	c := t.Nodes[parent].FirstChild
	for t.Nodes[c].NextSibling != NoIndex {
		c = t.Nodes[c].NextSibling
	}
	t.Nodes[c].NextSibling = child
}

// scanLabelValue scans lIdx's subtree, not crossing nested
// SUBTREE/REC boundaries, for the first KEY/LABEL/SEQ L-node (label)
// and the first STORE/VALUE L-node (value), spec §4.3.
func (t *Tree) scanLabelValue(lIdx int) (label, value int) {
	lt := t.LTree
	label, value = NoIndex, NoIndex

	var scan func(i int)
	scan = func(i int) {
		if i != lIdx {
			k := lt.Nodes[i].L.Kind
			if k == lens.Subtree || k == lens.Rec {
				return // nested subtree: do not cross
			}
			if label == NoIndex && (k == lens.Key || k == lens.Label || k == lens.Seq) {
				label = i
			}
			if value == NoIndex && (k == lens.Store || k == lens.Value) {
				value = i
			}
		}
		for _, c := range lt.Children(i) {
			scan(c)
		}
	}
	scan(lIdx)
	return label, value
}

// findChoice walks lIdx's L-tree ancestors, starting immediately
// above lIdx itself, until either a UNION is found (the choice) or
// the enclosing SUBTREE is reached, whichever comes first (spec §4.3).
func (t *Tree) findChoice(lIdx int) int {
	lt := t.LTree
	choice := NoIndex
	lt.AncestorsOf(lIdx, -1, func(anc int) bool {
		switch lt.Nodes[anc].L.Kind {
		case lens.Union:
			choice = anc
			return false
		case lens.Subtree, lens.Rec:
			return false
		}
		return true
	})
	return choice
}
