package term

import "fmt"

const noIndex = -1

// RefKind discriminates what a P-node's cross-reference points at,
// spec §3.3: either another P-node (an IDENT resolved to a FUNC
// parameter or a BIND) or a directly-linked regexp from an already
// compiled module.
type RefKind int

const (
	RefNone RefKind = iota
	RefNode
	RefRegexp
)

// Flag holds the per-P-node markers of spec §3.3 / original_source
// terms.h pnodeflags.
type Flag uint8

const (
	HasRegexp Flag = 1 << iota
	RegMinus       // subtree's regexp uses the MINUS operator
	RegUnmin       // a UNION branch contains a MINUS operator
	ForSnode       // this pnode is linked from some L-node
	ForSnodes      // this pnode is linked from more than one L-node
)

// Node wraps one parsed term, mirroring the term tree shape (spec §3.3).
type Node struct {
	Parent      int
	FirstChild  int
	NextSibling int
	Descendants int

	T    *Term
	Bind int // index of the enclosing top-level BIND node, or noIndex

	RefKind   RefKind
	Ref       int    // valid when RefKind == RefNode
	RefRegexp string // valid when RefKind == RefRegexp

	Flags Flag
}

// Tree is the P-tree built by BuildTree.
type Tree struct {
	Nodes []Node
	Root  int
}

func countTerms(t *Term) int {
	if t == nil {
		return 0
	}
	return 1 + countTerms(t.Left) + countTerms(t.Right)
}

// BuildTree walks the term tree returned by the external Augeas parser
// and builds the P-tree wrapper array (spec §4.2).
func BuildTree(root *Term) (*Tree, error) {
	if root == nil {
		return nil, fmt.Errorf("term: module has no parsed root term")
	}
	n := countTerms(root)
	pt := &Tree{Nodes: make([]Node, 0, n)}
	pt.Root = pt.build(root, noIndex, noIndex)
	return pt, nil
}

// build allocates nodes depth-first; bind is the index of the nearest
// enclosing BIND ancestor (or noIndex at/above the root).
func (pt *Tree) build(t *Term, parent, bind int) int {
	idx := len(pt.Nodes)
	pt.Nodes = append(pt.Nodes, Node{
		Parent:      parent,
		FirstChild:  noIndex,
		NextSibling: noIndex,
		Ref:         noIndex,
		Bind:        bind,
		T:           t,
	})

	childBind := bind
	if t.Kind == Bind {
		childBind = idx
	}

	descendants := 0
	lastChild := noIndex
	addChild := func(c *Term) {
		if c == nil {
			return
		}
		ci := pt.build(c, idx, childBind)
		descendants += 1 + pt.Nodes[ci].Descendants
		if lastChild == noIndex {
			pt.Nodes[idx].FirstChild = ci
		} else {
			pt.Nodes[lastChild].NextSibling = ci
		}
		lastChild = ci
	}
	addChild(t.Left)
	addChild(t.Right)

	pt.Nodes[idx].Descendants = descendants
	return idx
}

// Children returns the ordered child indices of node i.
func (pt *Tree) Children(i int) []int {
	var out []int
	for c := pt.Nodes[i].FirstChild; c != noIndex; c = pt.Nodes[c].NextSibling {
		out = append(out, c)
	}
	return out
}

// Walk visits every node of the tree in depth-first pre-order.
func (pt *Tree) Walk(f func(i int)) {
	if len(pt.Nodes) == 0 {
		return
	}
	var visit func(i int)
	visit = func(i int) {
		f(i)
		for c := pt.Nodes[i].FirstChild; c != noIndex; c = pt.Nodes[c].NextSibling {
			visit(c)
		}
	}
	visit(pt.Root)
}

// RewriteRepMinus performs the single P-node cleanup swap of spec
// §4.2: when a node is REP with a unique child that is MINUS, the two
// are swapped so downstream code sees a MINUS rooting its children as
// REP, without disturbing the wrapper tree's shape.
func RewriteRepMinus(pt *Tree) {
	for i := range pt.Nodes {
		n := &pt.Nodes[i]
		if n.T == nil || n.T.Kind != Rep || n.FirstChild == noIndex {
			continue
		}
		if pt.Nodes[n.FirstChild].NextSibling != noIndex {
			continue // not a unique child
		}
		child := n.FirstChild
		if pt.Nodes[child].T == nil || pt.Nodes[child].T.Kind != Minus {
			continue
		}
		pt.Nodes[i].T, pt.Nodes[child].T = pt.Nodes[child].T, pt.Nodes[i].T
	}
}
