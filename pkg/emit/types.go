package emit

import (
	"strings"

	"github.com/cesnet/augyang/pkg/lens"
	"github.com/cesnet/augyang/pkg/ynode"
)

// builtinType maps a lens regex/name to a YANG built-in type per spec
// §4.11's heuristics ("Rx.integer" -> uint64, known numeric/boolean
// regex strings special-cased, "Rx.ip*" -> inet types). lIdx is the
// L-node supplying the value (a VALUE or STORE lens); needsInet is
// set when the mapping used an ietf-inet-types name.
func builtinType(t *ynode.Tree, lIdx int) (yangType string, needsInet bool) {
	if lIdx == ynode.NoIndex {
		return "string", false
	}
	l := t.LTree.Nodes[lIdx].L
	pattern := l.Regexp

	switch pattern {
	case "[0-9]+":
		return "uint64", false
	case "[-+]?[0-9]+", "-?[0-9]+":
		return "int64", false
	case "true|false", "(true|false)":
		return "boolean", false
	}

	lower := strings.ToLower(pattern)
	switch {
	case strings.Contains(lower, "ipv6"):
		return "inet:ipv6-address", true
	case strings.Contains(lower, "ipv4"):
		return "inet:ipv4-address", true
	case strings.Contains(lower, "ip-address") || isLikelyIPPattern(lower):
		return "inet:ip-address", true
	}

	return "string", false
}

// isLikelyIPPattern is a coarse stand-in for looking up the lens's
// source identifier in the Rx module (unavailable here - see
// identifier.lensName's note on the missing symbol table): a pattern
// built from four dotted numeric groups is almost always an IPv4
// address lens in Augeas's standard library.
func isLikelyIPPattern(pattern string) bool {
	return strings.Count(pattern, "0-9") >= 4 && strings.Count(pattern, ".") >= 3
}

// leafType picks the YANG type statement body for a LEAF/LEAFLIST/KEY
// node: a synthetic key gets uint64 (spec §6.3's ABI), everything else
// maps its value (or label, if that's where the stored text actually
// is) lens through builtinType. LEAFREF nodes do not come here: the
// node printer writes their leafref path itself.
func leafType(t *ynode.Tree, i int) (yangType string, needsInet bool) {
	n := t.Nodes[i]
	if n.Kind == ynode.Key && strings.HasPrefix(n.Ident, "_") {
		return "uint64", false
	}
	if n.Value != ynode.NoIndex {
		return builtinType(t, n.Value)
	}
	if n.Label != ynode.NoIndex && t.LTree.Nodes[n.Label].L.Kind == lens.Store {
		return builtinType(t, n.Label)
	}
	return "string", false
}
