package transform

import (
	"fmt"

	"github.com/cesnet/augyang/pkg/ynode"
)

// DedupIdentifiers is pipeline step 13: within every parent's direct
// children, a colliding identifier gets a numeric suffix - "2" for
// the first collision, continuing from whatever suffix the previous
// collision already used. Collisions reached only through a USES
// node's referenced grouping body are not expanded into this check:
// a grouping is shared by every use site, so renaming its internal
// children here would have to be site-specific, which plain sibling
// suffixing cannot express. A GROUPING's own children are checked by
// this same pass, as siblings under the GROUPING node; a collision
// between a grouping's child and a sibling of one of its USES nodes
// is not detected.
func DedupIdentifiers(t *ynode.Tree) {
	var parents []int
	t.Walk(func(i int) { parents = append(parents, i) })

	for _, p := range parents {
		seen := map[string]int{}
		for _, c := range t.Children(p) {
			id := t.Nodes[c].Ident
			if id == "" {
				continue
			}
			n, collided := seen[id]
			if !collided {
				seen[id] = 1
				continue
			}
			next := n + 1
			if next < 2 {
				next = 2
			}
			t.Nodes[c].Ident = fmt.Sprintf("%s%d", id, next)
			seen[id] = next
		}
	}
}
