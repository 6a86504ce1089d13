package ynode

import (
	"fmt"
	"strings"

	"github.com/cesnet/augyang/pkg/indent"
)

// DumpTree renders t as an indented debug listing, one line per
// Y-node, in depth-first pre-order. pkg/augyang uses it for the YTREE,
// YTREE_AFTER_TRANS and YNODE_ID_IN_YANG checkpoints of spec §6.1's
// vercode bitmask.
func DumpTree(t *Tree) string {
	var b strings.Builder
	var walk func(i, depth int)
	walk = func(i, depth int) {
		n := t.Nodes[i]
		w := indent.NewWriter(&b, strings.Repeat("  ", depth))
		fmt.Fprint(w, describeNode(n))
		fmt.Fprintln(&b)
		for c := n.FirstChild; c != NoIndex; c = t.Nodes[c].NextSibling {
			walk(c, depth+1)
		}
	}
	walk(0, 0)
	return b.String()
}

func describeNode(n Node) string {
	s := fmt.Sprintf("#%d %s", n.ID, n.Kind)
	if n.Ident != "" {
		s += fmt.Sprintf(" %q", n.Ident)
	}
	if n.Choice != NoIndex {
		s += fmt.Sprintf(" choice=L%d", n.Choice)
	}
	if n.Ref != NoIndex {
		s += fmt.Sprintf(" ref=#%d", n.Ref)
	}
	if n.WhenRef != NoIndex {
		s += fmt.Sprintf(" when(#%d=%q)", n.WhenRef, n.WhenVal)
	}
	if n.MinElems > 0 {
		s += fmt.Sprintf(" min-elements=%d", n.MinElems)
	}
	s += fmt.Sprintf(" (descendants=%d)", n.Descendants)
	return s
}
