package transform

import "github.com/cesnet/augyang/pkg/ynode"

// InsertRootContainer is pipeline step 5: wraps every top-level
// Y-node (the direct children of the housekeeping ROOT) in a single
// new CONTAINER named after the module.
func InsertRootContainer(t *ynode.Tree) {
	old := t.Nodes[0].FirstChild
	rootDescendants := t.Nodes[0].Descendants

	newIdx := t.InsertAt(1)
	if old != ynode.NoIndex {
		old++ // InsertAt(1) shifted every index >= 1 up by one
	}

	t.Nodes[newIdx].ID = t.AllocID()
	t.Nodes[newIdx].Kind = ynode.Container
	t.Nodes[newIdx].Parent = 0
	t.Nodes[newIdx].NextSibling = ynode.NoIndex
	t.Nodes[newIdx].FirstChild = old
	t.Nodes[newIdx].Label = ynode.NoIndex
	t.Nodes[newIdx].Value = ynode.NoIndex
	t.Nodes[newIdx].Choice = ynode.NoIndex
	t.Nodes[newIdx].Ident = t.ModuleName
	t.Nodes[newIdx].Descendants = rootDescendants

	t.Nodes[0].FirstChild = newIdx
	t.Nodes[0].Descendants = rootDescendants + 1

	for c := old; c != ynode.NoIndex; c = t.Nodes[c].NextSibling {
		t.Nodes[c].Parent = newIdx
	}
}
