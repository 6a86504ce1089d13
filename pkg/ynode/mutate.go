package ynode

// This file implements the five array mutation primitives of spec
// §4.5. Each primitive grows or shrinks the array by exactly one node
// per call. The transforms in pkg/transform call them directly; they
// do not pre-compute how many nodes they will add, and the array is
// not pre-sized.

// shiftIndex rewrites a single stored index in response to a gap
// opened at (or a hole closed at) position at: every index >= at
// moves by delta.
func shiftIndex(idx, at, delta int) int {
	if idx == NoIndex {
		return idx
	}
	if idx >= at {
		return idx + delta
	}
	return idx
}

// shiftAllPointers rewrites every Parent/FirstChild/NextSibling index
// in the tree in response to a gap opened (delta==+1) or closed
// (delta==-1) at position at. Label/Value/Choice/SNode index into the
// L-tree, not this array, so they are untouched; Ref/WhenRef index
// into Y-node IDs, not array positions, so they are also untouched.
func (t *Tree) shiftAllPointers(at, delta int) {
	for i := range t.Nodes {
		n := &t.Nodes[i]
		n.Parent = shiftIndex(n.Parent, at, delta)
		n.FirstChild = shiftIndex(n.FirstChild, at, delta)
		n.NextSibling = shiftIndex(n.NextSibling, at, delta)
	}
}

// InsertAt opens a gap at index i: every node at or after i moves to
// i+1, and every pointer referring to an index >= i is rewritten to
// follow it. The new slot at i is zero-valued (Kind Unknown, no
// links) and is the caller's responsibility to wire up. Returns i for
// convenience.
func (t *Tree) InsertAt(i int) int {
	t.Nodes = append(t.Nodes, Node{})
	copy(t.Nodes[i+1:], t.Nodes[i:len(t.Nodes)-1])
	t.shiftAllPointers(i, +1)
	t.Nodes[i] = zeroNode()
	return i
}

// DeleteAt removes the node at index i, reparenting its children onto
// its parent in its former position among its siblings, fixing
// sibling links, decrementing every ancestor's Descendants by one
// (only i itself leaves the tree), then compacting the array
// (spec §4.5). DeleteAt does not itself walk the removed node's
// former subtree to release owned resources; callers that stored
// externally-owned data keyed by node identity (e.g. ident strings)
// must do so before calling DeleteAt, per spec §3.9.
func (t *Tree) DeleteAt(i int) {
	n := t.Nodes[i]
	parent := n.Parent

	// Splice i's children into i's place among its siblings.
	if parent != NoIndex {
		firstChild := n.FirstChild
		lastChild := NoIndex
		if firstChild != NoIndex {
			for c := firstChild; c != NoIndex; c = t.Nodes[c].NextSibling {
				t.Nodes[c].Parent = parent
				if t.Nodes[c].NextSibling == NoIndex {
					lastChild = c
				}
			}
		}

		if t.Nodes[parent].FirstChild == i {
			if firstChild != NoIndex {
				t.Nodes[parent].FirstChild = firstChild
			} else {
				t.Nodes[parent].FirstChild = n.NextSibling
			}
		} else {
			prev := t.Nodes[parent].FirstChild
			for t.Nodes[prev].NextSibling != i {
				prev = t.Nodes[prev].NextSibling
			}
			if firstChild != NoIndex {
				t.Nodes[prev].NextSibling = firstChild
			} else {
				t.Nodes[prev].NextSibling = n.NextSibling
			}
		}
		if lastChild != NoIndex {
			t.Nodes[lastChild].NextSibling = n.NextSibling
		}

		for a := parent; a != NoIndex; a = t.Nodes[a].Parent {
			t.Nodes[a].Descendants--
		}
	}

	t.compact(i)
}

// compact physically removes the slot at i (which must already have
// no remaining owner of index i as a child/sibling target other than
// through pointers this function itself fixes) and rewrites every
// pointer referring to an index > i down by one, and any pointer that
// referred to exactly i is left as the caller arranged (DeleteAt
// always reroutes those before calling compact).
func (t *Tree) compact(i int) {
	copy(t.Nodes[i:], t.Nodes[i+1:])
	t.Nodes = t.Nodes[:len(t.Nodes)-1]
	for idx := range t.Nodes {
		n := &t.Nodes[idx]
		n.Parent = shiftIndexDown(n.Parent, i)
		n.FirstChild = shiftIndexDown(n.FirstChild, i)
		n.NextSibling = shiftIndexDown(n.NextSibling, i)
	}
}

func shiftIndexDown(idx, removed int) int {
	if idx == NoIndex {
		return idx
	}
	if idx > removed {
		return idx - 1
	}
	return idx
}

// Wrap inserts a new, empty parent immediately above node i,
// transferring i to be its sole child (spec §4.5). i keeps its own
// identity; the new parent is returned for the caller to fill in.
// Node IDs are unaffected: the new parent gets a freshly allocated ID.
func (t *Tree) Wrap(i int) int {
	oldParent := t.Nodes[i].Parent
	oldPrevSibling := t.prevSibling(i)

	t.InsertAt(i)
	// The previous sibling is usually < i, but after step 8's
	// moveSubtree it can sit after i; follow InsertAt's shift either way.
	oldPrevSibling = shiftIndex(oldPrevSibling, i, +1)
	newIdx := i
	childIdx := i + 1

	// i's own NextSibling was already corrected by
	// InsertAt's shiftAllPointers pass and now lives on childIdx - read
	// it from there before it gets cleared, rather than from a value
	// captured pre-shift.
	nextSibling := t.Nodes[childIdx].NextSibling

	t.Nodes[newIdx] = zeroNode()
	t.Nodes[newIdx].ID = t.allocID()
	t.Nodes[newIdx].Parent = oldParent
	t.Nodes[newIdx].FirstChild = childIdx
	t.Nodes[newIdx].NextSibling = nextSibling
	t.Nodes[newIdx].Descendants = t.Nodes[childIdx].Descendants + 1

	t.Nodes[childIdx].Parent = newIdx
	t.Nodes[childIdx].NextSibling = NoIndex

	if oldParent != NoIndex {
		if t.Nodes[oldParent].FirstChild == childIdx {
			t.Nodes[oldParent].FirstChild = newIdx
		}
	}
	if oldPrevSibling != NoIndex {
		t.Nodes[oldPrevSibling].NextSibling = newIdx
	}

	for a := oldParent; a != NoIndex; a = t.Nodes[a].Parent {
		t.Nodes[a].Descendants++
	}

	return newIdx
}

// InsertParent inserts a new parent above i whose identity (Kind,
// SNode, Label, Value, Choice, Ident, Flags, MinElems, WhenRef,
// WhenVal and ID) is the former content of i; i itself survives as
// the new parent's sole child, demoted to UNKNOWN with a freshly
// allocated ID (spec §4.5). Returns the index of the new parent
// (== i); the demoted former node is now at i+1.
func (t *Tree) InsertParent(i int) int {
	old := t.Nodes[i]
	newIdx := t.Wrap(i)
	childIdx := newIdx + 1

	t.Nodes[newIdx].Kind = old.Kind
	t.Nodes[newIdx].SNode = old.SNode
	t.Nodes[newIdx].Label = old.Label
	t.Nodes[newIdx].Value = old.Value
	t.Nodes[newIdx].Choice = old.Choice
	t.Nodes[newIdx].Ident = old.Ident
	t.Nodes[newIdx].Flags = old.Flags
	t.Nodes[newIdx].MinElems = old.MinElems
	t.Nodes[newIdx].WhenRef = old.WhenRef
	t.Nodes[newIdx].WhenVal = old.WhenVal
	t.Nodes[newIdx].ID = old.ID

	t.Nodes[childIdx].clearIdentity(t.allocID())

	return newIdx
}

// InsertChild appends a new, empty first child to node i (spec §4.5).
// Returns the new child's index.
func (t *Tree) InsertChild(i int) int {
	at := i + 1
	t.InsertAt(at)
	t.Nodes[at] = zeroNode()
	t.Nodes[at].ID = t.allocID()
	t.Nodes[at].Parent = i
	t.Nodes[at].NextSibling = t.Nodes[i].FirstChild
	t.Nodes[i].FirstChild = at
	for a := i; a != NoIndex; a = t.Nodes[a].Parent {
		t.Nodes[a].Descendants++
	}
	return at
}

func (t *Tree) prevSibling(i int) int {
	parent := t.Nodes[i].Parent
	if parent == NoIndex {
		return NoIndex
	}
	if t.Nodes[parent].FirstChild == i {
		return NoIndex
	}
	for c := t.Nodes[parent].FirstChild; c != NoIndex; c = t.Nodes[c].NextSibling {
		if t.Nodes[c].NextSibling == i {
			return c
		}
	}
	return NoIndex
}
