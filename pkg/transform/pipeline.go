package transform

import "github.com/cesnet/augyang/pkg/ynode"

// Run classifies the freshly built Y-forest and applies the thirteen
// transformation steps of spec §4.7 in the exact order pinned there.
// Every step is total; only identifier assignment can fail (spec
// §4.8's ErrIdentLimit/ErrIdentNotFound), at which point the Y-tree
// is abandoned without emitting anything.
func Run(t *ynode.Tree) error {
	ClassifyKinds(t)

	RemoveUnknownLeaves(t)    // 1
	RemoveComments(t)         // 2
	RemoveUselessLeaves(t)    // 3
	RemoveTopLevelChoice(t)   // 4
	InsertRootContainer(t)    // 5
	InsertListKeys(t)         // 6-7
	ExtractGroupings(t)       // 8
	ResolveRecursion(t)       // 9
	ShapeChoices(t) // 10
	WireWhens(t)    // 11

	if err := AssignIdentifiers(t); err != nil { // 12
		return err
	}
	DedupIdentifiers(t) // 13

	return nil
}
