// Package ynode implements the Y-forest/Y-tree of spec §3.4-§3.6,
// §4.3 and the array-based mutation primitives of spec §4.5. It is
// the central intermediate representation of the pipeline: every
// transform in pkg/transform operates on a *Tree built here.
package ynode

import "github.com/cesnet/augyang/pkg/lens"

// NoIndex is the sentinel for "no such node/lens/link", exported
// because pkg/transform and pkg/emit compare against it constantly.
const NoIndex = -1

// Kind is a Y-node's YANG-oriented role, spec §3.4.
type Kind int

const (
	Unknown Kind = iota
	Leaf
	Leafref
	LeafList
	List
	Container
	Case
	Key
	Value
	Uses
	Grouping
	Rec
	Root
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "UNKNOWN"
	case Leaf:
		return "LEAF"
	case Leafref:
		return "LEAFREF"
	case LeafList:
		return "LEAFLIST"
	case List:
		return "LIST"
	case Container:
		return "CONTAINER"
	case Case:
		return "CASE"
	case Key:
		return "KEY"
	case Value:
		return "VALUE"
	case Uses:
		return "USES"
	case Grouping:
		return "GROUPING"
	case Rec:
		return "REC"
	case Root:
		return "ROOT"
	default:
		return "UNKNOWN"
	}
}

// Flag holds the per-node markers of spec §3.8.
type Flag uint32

const (
	MandTrue Flag = 1 << iota
	MandFalse
	ChildrenMandFalse
	ValueMandFalse
	ChoiceMandFalse
	ValueInChoice
	GroupingChildren
	GroupingReduction
	GroupingChoice
	HintMandTrue
	HintMandFalse
	ChoiceCreated
	WhenTarget
)

// MandMask isolates the two mandatory-shaping bits that are mutually
// exclusive (spec §3.8).
const MandMask = MandTrue | MandFalse

// Node is one Y-tree node, spec §3.4. Parent/FirstChild/NextSibling
// are indices into Tree.Nodes, or NoIndex. Label, Value and Choice are
// indices into the companion L-tree (Tree.LTree), or NoIndex. Ref is
// a cross-link to another Y-node by ID (not array index - see Tree.ByID).
type Node struct {
	Parent      int
	FirstChild  int
	NextSibling int
	Descendants int

	Kind Kind

	SNode  int // originating SUBTREE/REC L-node, or NoIndex for synthetic nodes
	Label  int
	Value  int
	Choice int

	Ident string
	Ref   int // target Y-node ID (USES->GROUPING, LEAFREF->its list's key, ...), or NoIndex

	ID    int
	Flags Flag

	MinElems uint16

	WhenRef int // target Y-node ID, or NoIndex
	WhenVal string
}

// clearIdentity resets everything that makes a node semantically
// itself, leaving only tree-shape fields (Parent/FirstChild/
// NextSibling/Descendants) and a fresh ID - used by InsertParent to
// demote the original node to UNKNOWN (spec §4.5).
func (n *Node) clearIdentity(newID int) {
	n.Kind = Unknown
	n.SNode = NoIndex
	n.Label = NoIndex
	n.Value = NoIndex
	n.Choice = NoIndex
	n.Ident = ""
	n.Ref = NoIndex
	n.Flags = 0
	n.MinElems = 0
	n.WhenRef = NoIndex
	n.WhenVal = ""
	n.ID = newID
}

func zeroNode() Node {
	return Node{
		Parent:      NoIndex,
		FirstChild:  NoIndex,
		NextSibling: NoIndex,
		SNode:       NoIndex,
		Label:       NoIndex,
		Value:       NoIndex,
		Choice:      NoIndex,
		Ref:         NoIndex,
		WhenRef:     NoIndex,
	}
}

// Tree is the Y-forest/Y-tree: a single indexed array whose element 0
// is always the ROOT node (spec §3.4's "first element ... is always
// the ROOT Y-node"). The fields a real implementation would only find
// meaningful at the root live here on Tree itself rather than being
// wedged into every Node, per the §9 "tagged variant / base struct
// plus root-only overlay" design note.
type Tree struct {
	Nodes []Node

	LTree      *lens.Tree
	Labels     *Dict
	Values     *Dict
	PattTable  *PatternTable
	ModuleName string

	nextID int
}

// NewTree creates a Y-tree with just the ROOT node, ready for
// BuildForest to populate with the Y-forest.
func NewTree(lt *lens.Tree, moduleName string) *Tree {
	t := &Tree{
		LTree:      lt,
		Labels:     newDict(),
		Values:     newDict(),
		PattTable:  newPatternTable(),
		ModuleName: moduleName,
	}
	root := zeroNode()
	root.Kind = Root
	root.ID = t.allocID()
	t.Nodes = append(t.Nodes, root)
	return t
}

func (t *Tree) allocID() int {
	t.nextID++
	return t.nextID
}

// AllocID allocates a fresh, never-reused Y-node ID. Exported so
// transforms that synthesize nodes outside the mutate.go primitives
// (e.g. the root container of pipeline step 5) can mint identity for
// them directly.
func (t *Tree) AllocID() int {
	return t.allocID()
}

// ByID returns the array index of the node with the given ID, or
// NoIndex if no such node exists (e.g. it was deleted since the
// reference was recorded).
func (t *Tree) ByID(id int) int {
	for i := range t.Nodes {
		if t.Nodes[i].ID == id {
			return i
		}
	}
	return NoIndex
}

// Children returns the ordered child indices of node i.
func (t *Tree) Children(i int) []int {
	var out []int
	for c := t.Nodes[i].FirstChild; c != NoIndex; c = t.Nodes[c].NextSibling {
		out = append(out, c)
	}
	return out
}

// Walk visits every node reachable from the root in depth-first
// pre-order, matching the emitter's traversal order (spec §5).
func (t *Tree) Walk(f func(i int)) {
	if len(t.Nodes) == 0 {
		return
	}
	var visit func(i int)
	visit = func(i int) {
		f(i)
		for c := t.Nodes[i].FirstChild; c != NoIndex; c = t.Nodes[c].NextSibling {
			visit(c)
		}
	}
	visit(0)
}

// CountDescendants recomputes descendants(i) by brute-force traversal,
// for use by the property-based self-checks of spec §8.1 property 2.
func (t *Tree) CountDescendants(i int) int {
	n := 0
	for _, c := range t.Children(i) {
		n += 1 + t.CountDescendants(c)
	}
	return n
}
