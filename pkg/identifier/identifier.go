// Package identifier implements spec §4.10: per-kind identifier
// synthesis and the standardization rules applied to every derived
// name before it is stored as a Y-node's final YANG identifier.
package identifier

import (
	"strings"
	"unicode"

	"github.com/cesnet/augyang/pkg/augerr"
	"github.com/cesnet/augyang/pkg/identscan"
	"github.com/cesnet/augyang/pkg/lens"
	"github.com/cesnet/augyang/pkg/ynode"
)

// MaxLength is the 64-character identifier limit of spec §7
// ("Identifier too long").
const MaxLength = 64

// Assign walks t in post-order (children before parents, so GROUPING
// and descendant-derived LIST names can see their children's already-
// computed identifiers) and fills in every Y-node's Ident that isn't
// already set. Synthetic, underscore-prefixed names (the "_id"/
// "_seq"/"_r-id" keys of InsertListKeys/ResolveRecursion, and the
// "_<ref>-ref" internal LEAFREF names) are left exactly as they are:
// spec §4.10 exempts these "internal names" from standardization.
func Assign(t *ynode.Tree) error {
	order := postOrder(t)
	for _, i := range order {
		if i == 0 {
			continue // housekeeping ROOT carries no identifier
		}
		n := &t.Nodes[i]
		if n.Ident != "" {
			if !strings.HasPrefix(n.Ident, "_") {
				n.Ident = Standardize(n.Ident)
			}
			continue
		}

		raw, err := source(t, i)
		if err != nil {
			return err
		}
		std := raw
		if n.Kind != ynode.Leafref {
			std = Standardize(raw)
		}
		if len(std) > MaxLength {
			return augerr.Newf(augerr.ErrIdentLimit, "identifier %q (%d chars)", std, len(std))
		}
		n.Ident = std
	}
	return nil
}

func postOrder(t *ynode.Tree) []int {
	var order []int
	var visit func(i int)
	visit = func(i int) {
		for _, c := range t.Children(i) {
			visit(c)
		}
		order = append(order, i)
	}
	visit(0)
	return order
}

// source computes the raw (pre-standardization) identifier for node
// i, per the priority-ordered sources of spec §4.10.
func source(t *ynode.Tree, i int) (string, error) {
	n := t.Nodes[i]
	switch n.Kind {
	case ynode.Grouping:
		return groupingSource(t, i)
	case ynode.Leafref:
		return leafrefSource(t, i)
	case ynode.Uses:
		target := t.ByID(n.Ref)
		if target == ynode.NoIndex {
			return "", augerr.New(augerr.ErrIdentNotFound, "uses target grouping missing")
		}
		return t.Nodes[target].Ident, nil
	case ynode.List:
		return listSource(t, i)
	case ynode.Key:
		return keySource(t, i)
	case ynode.Value:
		if name, ok := lensName(t, n.SNode); ok {
			return name, nil
		}
		return "value", nil
	case ynode.Case:
		if c := t.Nodes[i].FirstChild; c != ynode.NoIndex {
			return t.Nodes[c].Ident, nil
		}
		return "case", nil
	default: // LEAF, LEAFLIST, CONTAINER
		return leafLikeSource(t, i)
	}
}

func groupingSource(t *ynode.Tree, i int) (string, error) {
	for _, c := range t.Children(i) {
		if t.Nodes[c].Kind != ynode.Leafref {
			return t.Nodes[c].Ident, nil
		}
	}
	if name, ok := lensName(t, t.Nodes[i].SNode); ok {
		return name, nil
	}
	return "gr", nil
}

func leafrefSource(t *ynode.Tree, i int) (string, error) {
	key := t.ByID(t.Nodes[i].Ref)
	if key == ynode.NoIndex {
		return "", augerr.New(augerr.ErrIdentNotFound, "leafref target key missing")
	}
	list := t.Nodes[key].Parent
	child := t.Nodes[list].FirstChild
	if child == ynode.NoIndex {
		return "_ref", nil
	}
	return "_" + t.Nodes[child].Ident + "-ref", nil
}

func listSource(t *ynode.Tree, i int) (string, error) {
	n := t.Nodes[i]
	// Literal ROOT, not the synthesized top container: pipeline step 5
	// always inserts that container, so a LIST's parent is never
	// actually the housekeeping ROOT by the time identifiers are
	// assigned (step 12) - this source is the module-name rule for a
	// design where a sole top-level list could stand in for the root
	// container itself, preserved here for fidelity even though this
	// pipeline's unconditional step 5 never exercises it.
	if n.Parent == 0 {
		return t.ModuleName, nil
	}
	for _, c := range t.Children(i) {
		if t.Nodes[c].Kind == ynode.Leafref {
			// a self-referential list produced by recursion resolution
			if first := t.Nodes[i].FirstChild; first != ynode.NoIndex {
				return t.Nodes[first].Ident + "-list", nil
			}
		}
	}
	if n.Label != ynode.NoIndex && t.LTree.Nodes[n.Label].L.Kind == lens.Seq {
		// spec §4.10: "the label string" - the SEQ counter's own name,
		// not the enclosing SUBTREE's.
		if name, ok := lensName(t, n.Label); ok {
			return name + "-list", nil
		}
		return "entry-list", nil
	}
	if name, ok := lensName(t, n.Label); ok {
		return name, nil
	}
	if derived, ok := descendantDerivedName(t, i); ok {
		return derived + "-list", nil
	}
	return "config-entries", nil
}

func keySource(t *ynode.Tree, i int) (string, error) {
	n := t.Nodes[i]
	if n.Label != ynode.NoIndex && n.Value != ynode.NoIndex {
		if name, ok := lensName(t, n.Value); ok {
			return name, nil
		}
	}
	if name, ok := lensName(t, n.Label); ok {
		return name, nil
	}
	return "label", nil
}

func leafLikeSource(t *ynode.Tree, i int) (string, error) {
	n := t.Nodes[i]
	if name, ok := lensName(t, n.Label); ok {
		return name, nil
	}
	if name, ok := lensName(t, n.SNode); ok {
		return name, nil
	}
	return "node", nil
}

// descendantDerivedName falls back to the identifier of the first
// descendant that already has one, for LIST nodes with no usable
// label lens of their own.
func descendantDerivedName(t *ynode.Tree, i int) (string, bool) {
	for _, c := range t.Children(i) {
		if t.Nodes[c].Ident != "" {
			return t.Nodes[c].Ident, true
		}
	}
	return "", false
}

// lensName derives a human name for an L-node from its literal text
// or, failing that, the first identifier-like run inside its regexp,
// via identscan's expansion when the pattern resolves to exactly one
// identifier. It does not consult the P-tree's named bindings: lens
// nodes in this package carry no surviving symbol table, so a
// same-grammar pattern scan is the best available signal.
func lensName(t *ynode.Tree, lIdx int) (string, bool) {
	if lIdx == ynode.NoIndex {
		return "", false
	}
	l := t.LTree.Nodes[lIdx].L
	if l.Literal != "" {
		return l.Literal, true
	}
	if l.Regexp != "" {
		if idents, ok := identscan.Scan(l.Regexp); ok && len(idents) == 1 {
			return idents[0], true
		}
		return firstWord(l.Regexp), firstWord(l.Regexp) != ""
	}
	return "", false
}

func firstWord(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else if b.Len() > 0 {
			break
		}
	}
	return b.String()
}
