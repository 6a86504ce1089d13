package term

import (
	"fmt"
	"strings"

	"github.com/cesnet/augyang/pkg/indent"
)

// DumpTree renders pt as an indented debug listing, one line per
// P-node, in depth-first pre-order (spec §6.1 print_input_terms).
func DumpTree(pt *Tree) string {
	var b strings.Builder
	if pt == nil || len(pt.Nodes) == 0 {
		return ""
	}
	var walk func(i, depth int)
	walk = func(i, depth int) {
		n := pt.Nodes[i]
		w := indent.NewWriter(&b, strings.Repeat("  ", depth))
		fmt.Fprint(w, describe(n))
		fmt.Fprintln(&b)
		for c := n.FirstChild; c != noIndex; c = pt.Nodes[c].NextSibling {
			walk(c, depth+1)
		}
	}
	walk(pt.Root, 0)
	return b.String()
}

func describe(n Node) string {
	s := n.T.Kind.String()
	if n.T.Name != "" {
		s += fmt.Sprintf(" %q", n.T.Name)
	}
	switch n.RefKind {
	case RefNode:
		s += fmt.Sprintf(" ->#%d", n.Ref)
	case RefRegexp:
		s += fmt.Sprintf(" ->/%s/", n.RefRegexp)
	}
	if n.Flags&RegMinus != 0 {
		s += " [REG_MINUS]"
	}
	if n.Flags&RegUnmin != 0 {
		s += " [REG_UNMIN]"
	}
	if n.Flags&ForSnode != 0 {
		s += " [FOR_SNODE]"
	}
	s += fmt.Sprintf(" (descendants=%d, %s)", n.Descendants, n.T.Info)
	return s
}
