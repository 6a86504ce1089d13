package lens

import "strings"

// Flag describes the label/key shape of a KEY-tagged L-node, spec §3.7.
type Flag uint8

const (
	// KeyIsLabel marks a KEY lens whose pattern has no regex content,
	// so it behaves like a literal LABEL.
	KeyIsLabel Flag = 1 << iota
	// KeyHasIdents marks a KEY pattern that is a union of identifier
	// strings, eligible for pkg/identscan.
	KeyHasIdents
	// KeyNoRegex marks a KEY pattern that is a single simple name.
	KeyNoRegex
)

// isIdentChar reports whether c is a plain member of the Augeas
// "identifier" character class from spec §4.1: a letter, digit, '_',
// '-' or '.'. The class's escaped '.'/'-'/'+' and caseless-single-
// character "[Aa]" members are recognised by classifyKeyPattern itself.
func isIdentChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-' || c == '.':
		return true
	}
	return false
}

// classifyKeyPattern inspects a KEY lens's pattern source and reports
// the §3.7/§4.1 flags that apply to it.
func classifyKeyPattern(pattern string) Flag {
	if pattern == "" {
		return KeyIsLabel
	}

	hasVbar := false
	hasQuestion := false
	hasCaseless := false
	onlyIdentClass := true

	i := 0
	for i < len(pattern) {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern) && (pattern[i+1] == '.' || pattern[i+1] == '-' || pattern[i+1] == '+'):
			i += 2
			continue
		case c == '[' && i+3 < len(pattern) && pattern[i+3] == ']' && isCaselessPair(pattern[i+1], pattern[i+2]):
			// "[Aa]" caseless-single-character group.
			hasCaseless = true
			i += 4
			continue
		case c == '|':
			hasVbar = true
		case c == '?':
			hasQuestion = true
		case isIdentChar(c):
			// fine
		default:
			onlyIdentClass = false
		}
		i++
	}

	if !onlyIdentClass {
		return 0
	}
	if hasVbar || hasQuestion || hasCaseless {
		return KeyHasIdents
	}
	if isSimpleName(pattern) {
		return KeyNoRegex
	}
	return 0
}

// isCaselessPair reports whether a,b are the same letter in opposite
// case, e.g. 'A','a'.
func isCaselessPair(a, b byte) bool {
	return a != b && strings.EqualFold(string(a), string(b)) &&
		((a >= 'A' && a <= 'Z') || (a >= 'a' && a <= 'z')) &&
		((b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z'))
}

// isSimpleName reports whether pattern is a single name with no
// alternation/group/escape structure at all - i.e. truly just a name,
// not a list of identifiers.
func isSimpleName(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '|' || c == '?' || c == '(' || c == ')' || c == '[' || c == ']' || c == '\\' {
			return false
		}
	}
	return true
}
