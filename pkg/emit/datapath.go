package emit

import (
	"github.com/cesnet/augyang/pkg/lens"
	"github.com/cesnet/augyang/pkg/ynode"
)

// dataPath renders the augex:data-path extension argument for node i:
// the Augeas label expression that identifies this node's position in
// the data tree (spec §4.11, §6.3). "$$" stands for a
// pattern-matched (non-literal) label, "#seq" for a counter label.
func dataPath(t *ynode.Tree, i int) (string, bool) {
	n := t.Nodes[i]
	if n.Label == ynode.NoIndex {
		return "", false
	}
	l := t.LTree.Nodes[n.Label].L
	switch l.Kind {
	case lens.Seq:
		return "#seq", true
	case lens.Label:
		if l.Literal != "" {
			return l.Literal, true
		}
		return "$$", true
	case lens.Key:
		if l.Literal != "" {
			return l.Literal, true
		}
		return "$$", true
	default:
		return "$$", true
	}
}

// valueYangPath renders the augex:value-yang-path extension argument:
// the identifier of the child leaf holding this node's stored value,
// when the value is kept in a separate KEY/VALUE child rather than in
// the node's own leaf type.
func valueYangPath(t *ynode.Tree, i int) (string, bool) {
	n := t.Nodes[i]
	if n.Value == ynode.NoIndex {
		return "", false
	}
	for _, c := range t.Children(i) {
		if t.Nodes[c].Kind == ynode.Value || t.Nodes[c].Kind == ynode.Key {
			return t.Nodes[c].Ident, true
		}
	}
	return "", false
}
