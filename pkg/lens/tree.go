package lens

import "fmt"

// noIndex is the sentinel for "no such node", used throughout the
// index-array representation described in spec §3.9/§4.5/§9 (array of
// nodes, not a pointer-linked tree, so that later stages can use
// stable integer ids).
const noIndex = -1

// Node is one wrapper around a compiled lens, spec §3.2. Parent,
// FirstChild and NextSibling are indices into Tree.Nodes, or noIndex.
type Node struct {
	Parent      int
	FirstChild  int
	NextSibling int
	Descendants int

	L       *Lens
	Module  *Module
	PNode   int // index into the companion P-tree, or noIndex
	Flags   Flag
}

// Tree is the L-tree built by BuildTree: a stable, append-only array of
// Nodes. Positions never change after construction (spec §3.2).
type Tree struct {
	Nodes  []Node
	Root   int
	HasRec bool
}

// ErrRecUnsupported is returned by BuildTree when the caller has asked
// recursion to be rejected outright (used by callers that know the
// rest of their pipeline cannot shape REC lenses into LIST/LEAFREF
// pairs, spec §4.1).
var ErrRecUnsupported = fmt.Errorf("lens: recursive (REC) lens is unsupported")

// countLenses walks the lens DAG once to compute the exact node count
// BuildTree needs to preallocate, and reports whether any REC lens
// occurs (spec §4.1).
func countLenses(l *Lens) (count int, hasRec bool) {
	if l == nil {
		return 0, false
	}
	count = 1
	if l.Kind == Rec {
		hasRec = true
	}
	if l.Kind.HasOneChild() {
		c, r := countLenses(l.Child)
		count += c
		hasRec = hasRec || r
	} else if l.Kind.HasChildren() {
		for _, ch := range l.Children {
			c, r := countLenses(ch)
			count += c
			hasRec = hasRec || r
		}
	}
	return count, hasRec
}

// BuildTree walks mod's root lens depth-first and builds the L-tree.
// allowRec controls whether a REC lens aborts the build with
// ErrRecUnsupported (some hosting pipelines can shape recursion into
// LIST/LEAFREF pairs later and pass true; a pipeline stage that cannot
// do so yet passes false).
func BuildTree(mod *Module, allowRec bool) (*Tree, error) {
	if mod == nil || mod.Root == nil {
		return nil, fmt.Errorf("lens: module has no root lens")
	}

	n, hasRec := countLenses(mod.Root)
	if hasRec && !allowRec {
		return nil, ErrRecUnsupported
	}

	t := &Tree{Nodes: make([]Node, 0, n), HasRec: hasRec}
	t.Root = t.build(mod, mod.Root, noIndex)
	return t, nil
}

// build recursively allocates nodes in depth-first order, returning
// the index of the node created for l, and fixing up Descendants
// bottom-up as the recursion unwinds.
func (t *Tree) build(mod *Module, l *Lens, parent int) int {
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{
		Parent:      parent,
		FirstChild:  noIndex,
		NextSibling: noIndex,
		L:           l,
		Module:      mod,
		PNode:       noIndex,
	})
	if l.Kind == Key {
		t.Nodes[idx].Flags = classifyKeyPattern(l.Regexp)
	}

	descendants := 0
	var lastChild = noIndex
	addChild := func(child *Lens) {
		ci := t.build(mod, child, idx)
		descendants += 1 + t.Nodes[ci].Descendants
		if lastChild == noIndex {
			t.Nodes[idx].FirstChild = ci
		} else {
			t.Nodes[lastChild].NextSibling = ci
		}
		lastChild = ci
	}

	switch {
	case l.Kind.HasOneChild() && l.Child != nil:
		addChild(l.Child)
	case l.Kind.HasChildren():
		for _, ch := range l.Children {
			addChild(ch)
		}
	}

	t.Nodes[idx].Descendants = descendants
	return idx
}

// Children returns the ordered list of child indices of node i.
func (t *Tree) Children(i int) []int {
	var out []int
	for c := t.Nodes[i].FirstChild; c != noIndex; c = t.Nodes[c].NextSibling {
		out = append(out, c)
	}
	return out
}

// Walk visits every node of the tree in depth-first pre-order.
func (t *Tree) Walk(f func(i int)) {
	if len(t.Nodes) == 0 {
		return
	}
	var visit func(i int)
	visit = func(i int) {
		f(i)
		for c := t.Nodes[i].FirstChild; c != noIndex; c = t.Nodes[c].NextSibling {
			visit(c)
		}
	}
	visit(t.Root)
}

// AncestorsOf calls f for each ancestor of i, starting with i's direct
// parent and walking up to (and including) the root of the subtree
// bounded by stop (exclusive); AncestorsOf stops early if f returns
// false.
func (t *Tree) AncestorsOf(i, stop int, f func(anc int) bool) {
	for p := t.Nodes[i].Parent; p != noIndex && p != stop; p = t.Nodes[p].Parent {
		if !f(p) {
			return
		}
	}
}
