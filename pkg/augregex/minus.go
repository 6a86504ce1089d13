package augregex

import "regexp"

// These mirror the three minus shapes pkg/term/crosslink.go detects
// for cross-linking purposes; this package re-detects them
// independently because it works on the pattern text alone, never on
// the P-tree flags. No other package in this repository calls
// TranslateMinus or FallbackLeft.
var (
	reSimple = regexp.MustCompile(`^\((.+) - (.+)\)$`)
	reStar   = regexp.MustCompile(`^\((.+) - (.+)\)\*$`)
	reUnion  = regexp.MustCompile(`^\((.+) - (.+)\)\|(.+)$`)
)

// TranslateMinus renders an Augeas "A - B" pattern as the two
// adjacent YANG pattern values spec §4.9 requires: the positive
// pattern and the inverted one (to be emitted with `modifier
// invert-match`). ok is false when the pattern isn't one of the three
// supported minus shapes, in which case callers fall back to treating
// the left operand alone as the full constraint (spec §9's minus
// design note).
func TranslateMinus(pattern string, nocase bool) (positive, inverted string, ok bool) {
	if m := reSimple.FindStringSubmatch(pattern); m != nil {
		return Translate(m[1], nocase), Translate(m[2], nocase), true
	}
	if m := reStar.FindStringSubmatch(pattern); m != nil {
		return Translate(m[1]+"*", nocase), Translate(m[2], nocase), true
	}
	if m := reUnion.FindStringSubmatch(pattern); m != nil {
		return Translate(m[1]+"|"+m[3], nocase), Translate(m[2], nocase), true
	}
	return "", "", false
}

// FallbackLeft extracts just the left operand of an "A - B" pattern
// that didn't match one of the supported shapes, per spec §9: "fall
// back to emitting the left operand only... may understate the
// constraint".
func FallbackLeft(pattern string) string {
	if i := indexOfMinusOperator(pattern); i >= 0 {
		left := pattern[:i]
		for len(left) > 0 && left[0] == '(' {
			left = left[1:]
		}
		return left
	}
	return pattern
}

func indexOfMinusOperator(pattern string) int {
	for i := 0; i+2 < len(pattern); i++ {
		if pattern[i] == ' ' && pattern[i+1] == '-' && pattern[i+2] == ' ' {
			return i
		}
	}
	return -1
}
