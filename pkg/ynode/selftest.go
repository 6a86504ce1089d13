package ynode

import "reflect"

// SelfTestInsertDelete implements the debug self-check spec §4.5/§8.1
// property 3 requires: InsertAt(pos) followed by DeleteAt(pos) must
// restore the tree to a byte-for-byte (here: deep-equal) copy of its
// pre-insertion state. It is the primitive every transform can run
// before/after its own InsertAt/DeleteAt calls to catch a pointer-
// rewriting bug immediately rather than producing a silently corrupt
// Y-tree (spec §7's "Debug self-check failed").
func SelfTestInsertDelete(t *Tree, pos int) bool {
	before := snapshot(t)
	t.InsertAt(pos)
	t.DeleteAt(pos)
	after := snapshot(t)
	return reflect.DeepEqual(before, after)
}

func snapshot(t *Tree) []Node {
	out := make([]Node, len(t.Nodes))
	copy(out, t.Nodes)
	return out
}
