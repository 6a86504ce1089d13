package transform

import "github.com/cesnet/augyang/pkg/ynode"

// WireWhens is pipeline step 11. The general form ("a node's
// existence is encoded, in the lens grammar, by a sibling's stored
// value") covers many Augeas idioms; this implements the common one:
// a CASE produced by ShapeChoices whose wrapped arm stores no value of
// its own (a fixed marker such as a bare DEL literal) depends on the
// one sibling LEAF/VALUE under the same parent that is not itself part
// of a choice. Cases outside that shape are left without a when (they
// simply have no conditional visibility encoded).
func WireWhens(t *ynode.Tree) {
	var cases []int
	t.Walk(func(i int) {
		if t.Nodes[i].Kind == ynode.Case {
			cases = append(cases, i)
		}
	})

	for _, c := range cases {
		parent := t.Nodes[c].Parent
		if parent == ynode.NoIndex {
			continue
		}
		if arm := t.Nodes[c].FirstChild; arm != ynode.NoIndex && t.Nodes[arm].Value != ynode.NoIndex {
			continue // the arm stores a value of its own
		}
		discriminant := findDiscriminantLeaf(t, parent, c)
		if discriminant == ynode.NoIndex {
			continue
		}
		t.Nodes[c].WhenRef = t.Nodes[discriminant].ID
		t.Nodes[c].WhenVal = t.Nodes[discriminant].Ident
		t.Nodes[discriminant].Flags |= ynode.WhenTarget
	}
}

// findDiscriminantLeaf looks, among self's siblings, for a single
// LEAF/VALUE node not itself part of any choice - the stand-in for
// "the sibling value this case's presence is keyed on".
func findDiscriminantLeaf(t *ynode.Tree, parent, self int) int {
	found := ynode.NoIndex
	for _, sib := range t.Children(parent) {
		if sib == self {
			continue
		}
		n := t.Nodes[sib]
		if (n.Kind == ynode.Leaf || n.Kind == ynode.Value) && n.Choice == ynode.NoIndex {
			if found != ynode.NoIndex {
				return ynode.NoIndex // ambiguous: more than one candidate
			}
			found = sib
		}
	}
	return found
}
