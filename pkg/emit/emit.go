// Package emit implements spec §4.11/§6.3: printing a transformed
// Y-tree as YANG 1.1 module text.
package emit

import (
	"fmt"
	"strings"

	"github.com/cesnet/augyang/pkg/ynode"
)

// Module renders t (after pkg/transform.Run has shaped it) as a
// complete YANG 1.1 module. augeasModName is the original Augeas
// module name, recorded verbatim in augex:augeas-mod-name.
func Module(t *ynode.Tree, augeasModName string) string {
	var b strings.Builder

	yangName := toYangName(augeasModName)
	top := topLevelContainer(t)
	needsInet := scanNeedsInet(t)

	fmt.Fprintf(&b, "module %s {\n", yangName)
	fmt.Fprintf(&b, "  yang-version 1.1;\n")
	fmt.Fprintf(&b, "  namespace \"urn:augeas:%s\";\n", yangName)
	fmt.Fprintf(&b, "  prefix \"%s\";\n\n", yangName)
	fmt.Fprintf(&b, "  import augeas-extension {\n    prefix augex;\n  }\n")
	if needsInet {
		fmt.Fprintf(&b, "  import ietf-inet-types {\n    prefix inet;\n  }\n")
	}
	fmt.Fprintf(&b, "\n  augex:augeas-mod-name \"%s\";\n\n", augeasModName)

	printNode(&b, t, top, 1)

	fmt.Fprintf(&b, "}\n")
	return b.String()
}

func topLevelContainer(t *ynode.Tree) int {
	if t.Nodes[0].FirstChild != ynode.NoIndex {
		return t.Nodes[0].FirstChild
	}
	return 0
}

func toYangName(augeasModName string) string {
	return strings.ToLower(strings.ReplaceAll(augeasModName, "_", "-"))
}

func scanNeedsInet(t *ynode.Tree) bool {
	found := false
	t.Walk(func(i int) {
		if found {
			return
		}
		_, needsInet := leafType(t, i)
		if needsInet {
			found = true
		}
	})
	return found
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

// printNode prints one Y-node's YANG statement, its non-structural
// extensions, then recurses into its structural children - the
// ordering spec §5 pins (non-structural before structural) within a
// CONTAINER/LIST body.
func printNode(b *strings.Builder, t *ynode.Tree, i, depth int) {
	n := t.Nodes[i]
	pad := indent(depth)

	switch n.Kind {
	case ynode.Container:
		fmt.Fprintf(b, "%scontainer %s {\n", pad, n.Ident)
		printExtensions(b, t, i, depth+1)
		printChildren(b, t, i, depth+1)
		fmt.Fprintf(b, "%s}\n", pad)

	case ynode.List:
		fmt.Fprintf(b, "%slist %s {\n", pad, n.Ident)
		if key := firstKeyChild(t, i); key != ynode.NoIndex {
			fmt.Fprintf(b, "%s  key \"%s\";\n", pad, t.Nodes[key].Ident)
		}
		if n.MinElems > 0 {
			fmt.Fprintf(b, "%s  min-elements %d;\n", pad, n.MinElems)
		}
		printExtensions(b, t, i, depth+1)
		printChildren(b, t, i, depth+1)
		fmt.Fprintf(b, "%s}\n", pad)

	case ynode.Leaf, ynode.LeafList, ynode.Key, ynode.Value:
		stmt := "leaf"
		if n.Kind == ynode.LeafList {
			stmt = "leaf-list"
		}
		fmt.Fprintf(b, "%s%s %s {\n", pad, stmt, n.Ident)
		yangType, _ := leafType(t, i)
		fmt.Fprintf(b, "%s  type %s;\n", pad, yangType)
		printExtensions(b, t, i, depth+1)
		fmt.Fprintf(b, "%s}\n", pad)

	case ynode.Leafref:
		target := t.ByID(n.Ref)
		targetIdent := "_r-id"
		if target != ynode.NoIndex {
			targetIdent = t.Nodes[target].Ident
		}
		fmt.Fprintf(b, "%sleaf %s {\n", pad, n.Ident)
		fmt.Fprintf(b, "%s  type leafref {\n", pad)
		fmt.Fprintf(b, "%s    path \"../%s\";\n", pad, targetIdent)
		fmt.Fprintf(b, "%s  }\n", pad)
		fmt.Fprintf(b, "%s}\n", pad)

	case ynode.Grouping:
		fmt.Fprintf(b, "%sgrouping %s {\n", pad, n.Ident)
		printChildren(b, t, i, depth+1)
		fmt.Fprintf(b, "%s}\n", pad)

	case ynode.Uses:
		fmt.Fprintf(b, "%suses %s;\n", pad, n.Ident)

	case ynode.Case:
		printExtensions(b, t, i, depth)
		printChildren(b, t, i, depth)

	default:
		printChildren(b, t, i, depth)
	}
}

func firstKeyChild(t *ynode.Tree, i int) int {
	for _, c := range t.Children(i) {
		if t.Nodes[c].Kind == ynode.Key {
			return c
		}
	}
	return ynode.NoIndex
}

// printExtensions prints data-path/value-yang-path/when, the
// non-structural statements spec §5 requires before any structural
// child.
func printExtensions(b *strings.Builder, t *ynode.Tree, i, depth int) {
	pad := indent(depth)
	n := t.Nodes[i]
	if dp, ok := dataPath(t, i); ok {
		fmt.Fprintf(b, "%saugex:data-path \"%s\";\n", pad, dp)
	}
	if vp, ok := valueYangPath(t, i); ok {
		fmt.Fprintf(b, "%saugex:value-yang-path \"%s\";\n", pad, vp)
	}
	if n.WhenRef != ynode.NoIndex {
		target := t.ByID(n.WhenRef)
		if target != ynode.NoIndex {
			expr := fmt.Sprintf("../%s = '%s'", t.Nodes[target].Ident, n.WhenVal)
			if strings.Contains(n.WhenVal, "'") {
				fmt.Fprintf(b, "%s// when \"%s\" omitted: value contains an apostrophe XPath 1.0 cannot express\n", pad, expr)
			} else {
				fmt.Fprintf(b, "%swhen \"%s\";\n", pad, expr)
			}
		}
	}
}

// printChildren prints i's children, grouping consecutive-or-scattered
// CASE children that share a Choice L-node into one `choice { ... }`
// block (spec §4.7 step 10; the choice statement itself has no
// dedicated Y-node, it is synthesized here at emission time).
func printChildren(b *strings.Builder, t *ynode.Tree, i, depth int) {
	children := t.Children(i)
	printedChoice := map[int]bool{}
	choiceSeq := 0

	for _, c := range children {
		n := t.Nodes[c]
		if n.Kind == ynode.Case && n.Choice != ynode.NoIndex {
			if printedChoice[n.Choice] {
				continue
			}
			printedChoice[n.Choice] = true
			choiceSeq++
			printChoice(b, t, i, n.Choice, children, depth, choiceSeq)
			continue
		}
		printNode(b, t, c, depth)
	}
}

func printChoice(b *strings.Builder, t *ynode.Tree, parent, choiceLNode int, siblings []int, depth, seq int) {
	pad := indent(depth)
	ident := choiceIdent(t.Nodes[parent].Ident, seq)
	fmt.Fprintf(b, "%schoice %s {\n", pad, ident)
	for _, c := range siblings {
		if t.Nodes[c].Kind == ynode.Case && t.Nodes[c].Choice == choiceLNode {
			printCase(b, t, c, depth+1)
		}
	}
	fmt.Fprintf(b, "%s}\n", pad)
}

func printCase(b *strings.Builder, t *ynode.Tree, i, depth int) {
	pad := indent(depth)
	n := t.Nodes[i]
	fmt.Fprintf(b, "%scase %s {\n", pad, n.Ident)
	printExtensions(b, t, i, depth+1)
	printChildren(b, t, i, depth+1)
	fmt.Fprintf(b, "%s}\n", pad)
}

// choiceIdent implements the Open Question resolution of spec §9:
// "ch-<parent>" unless parent already starts with "ch-", with a
// numeric suffix in order of appearance among sibling choices.
func choiceIdent(parentIdent string, seq int) string {
	base := "ch-" + parentIdent
	if strings.HasPrefix(parentIdent, "ch-") {
		base = parentIdent
	}
	if seq <= 1 {
		return base
	}
	return fmt.Sprintf("%s%d", base, seq)
}
