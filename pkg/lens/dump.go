package lens

import (
	"fmt"
	"strings"

	"github.com/cesnet/augyang/pkg/indent"
)

// DumpTree renders t as an indented debug listing, one line per
// L-node, in depth-first pre-order (spec §6.1 print_input_lenses /
// SPEC_FULL §10.1). This is a development aid, not part of the
// compiled YANG output.
func DumpTree(t *Tree) string {
	var b strings.Builder
	if t == nil || len(t.Nodes) == 0 {
		return ""
	}
	var walk func(i, depth int)
	walk = func(i, depth int) {
		n := t.Nodes[i]
		prefix := strings.Repeat("  ", depth)
		w := indent.NewWriter(&b, prefix)
		fmt.Fprintf(w, "%s", describe(n))
		fmt.Fprintln(&b)
		for c := n.FirstChild; c != noIndex; c = t.Nodes[c].NextSibling {
			walk(c, depth+1)
		}
	}
	walk(t.Root, 0)
	return b.String()
}

func describe(n Node) string {
	s := fmt.Sprintf("%s", n.L.Kind)
	switch n.L.Kind {
	case Label, Del:
		if n.L.Literal != "" {
			s += fmt.Sprintf(" %q", n.L.Literal)
		}
	case Store, Key, Value, Counter, Seq:
		if n.L.Regexp != "" {
			s += fmt.Sprintf(" /%s/", n.L.Regexp)
		}
	}
	if n.Flags&KeyIsLabel != 0 {
		s += " [KEY_IS_LABEL]"
	}
	if n.Flags&KeyHasIdents != 0 {
		s += " [KEY_HAS_IDENTS]"
	}
	if n.Flags&KeyNoRegex != 0 {
		s += " [KEY_NOREGEX]"
	}
	s += fmt.Sprintf(" (descendants=%d, %s)", n.Descendants, n.L.Info)
	return s
}
