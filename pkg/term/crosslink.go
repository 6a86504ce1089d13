package term

import (
	"regexp"
	"strings"

	"github.com/cesnet/augyang/pkg/lens"
)

// longPatternThreshold is the "long pattern" cutoff of spec §4.2.
const longPatternThreshold = 72

// These patterns let isMinusShape classify whether a regex source text
// has one of the three shapes spec §4.2/§4.9 can translate: "A - B",
// "(A - B)*", or "(A - B)|C".
var (
	reSimpleMinus  = regexp.MustCompile(`^\s*\([^()]* - [^()]*\)\s*$|^[^()]* - [^()]*$`)
	reStarMinus    = regexp.MustCompile(`^\s*\([^()]* - [^()]*\)\*\s*$`)
	reUnionMinus   = regexp.MustCompile(`^\s*\([^()]* - [^()]*\)\s*\|.*$`)
)

func isMinusShape(pattern string) bool {
	return reSimpleMinus.MatchString(pattern) || reStarMinus.MatchString(pattern) || reUnionMinus.MatchString(pattern)
}

// CrossLink locates, for every L-node whose lens is STORE or KEY with
// a long pattern, or whose lens is SUBTREE, the P-node with matching
// source location, and links them (spec §4.2 "Cross-linking into
// L-tree"). findByLocation is supplied by the caller: the external
// parser's locations are the join key and this package does not parse
// locations out of term/lens text itself.
func CrossLink(lt *lens.Tree, pt *Tree, findByLocation func(lens.SourceInfo) (pnode int, ok bool)) {
	for i := range lt.Nodes {
		n := &lt.Nodes[i]
		eligible := n.L.Kind == lens.Subtree
		if !eligible && (n.L.Kind == lens.Store || n.L.Kind == lens.Key) {
			eligible = len(n.L.Regexp) >= longPatternThreshold
		}
		if !eligible {
			continue
		}

		pidx, ok := findByLocation(n.L.Info)
		if !ok {
			continue
		}
		n.PNode = pidx
		pt.Nodes[pidx].Flags |= ForSnode

		if n.L.Kind == lens.Store || n.L.Kind == lens.Key {
			if isMinusShape(n.L.Regexp) {
				pt.Nodes[pidx].Flags |= RegMinus
			} else if strings.Contains(n.L.Regexp, "-") && strings.Contains(n.L.Regexp, "|") {
				pt.Nodes[pidx].Flags |= RegUnmin
			} else {
				// Not a minus shape: link the P-node naming the
				// enclosing function or bind instead of the literal
				// term, per spec §4.2.
				if enclosing := enclosingFuncOrBind(pt, pidx); enclosing != pidx {
					n.PNode = enclosing
					pt.Nodes[enclosing].Flags |= ForSnode
				}
			}
		}
	}
}

// enclosingFuncOrBind walks up from i to the nearest FUNC or BIND
// P-node, returning i itself if none is found.
func enclosingFuncOrBind(pt *Tree, i int) int {
	for p := pt.Nodes[i].Parent; p != noIndex; p = pt.Nodes[p].Parent {
		if pt.Nodes[p].T == nil {
			continue
		}
		switch pt.Nodes[p].T.Kind {
		case Func, Bind:
			return p
		}
	}
	return i
}
