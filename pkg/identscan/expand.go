package identscan

import "fmt"

// expand parses a single union token (no top-level '|' of its own —
// those were already split off by Scan) into the Cartesian product of
// its literal runs and "(alt|alt|...)?" groups, per spec §4.4's
// "arbitrarily nested optional groups, one | per group" grammar.
func expand(s string) ([]string, error) {
	parts, rest, err := parseParts(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("identscan: trailing input %q", rest)
	}
	return cartesian(parts), nil
}

// parseParts consumes s from the start, returning the sequence of
// parts found (each a set of candidate expansions) and any unconsumed
// suffix: non-"" only when s holds a ')' with no matching '(', where
// parseParts stops (expand then reports it as trailing input).
func parseParts(s string) (parts [][]string, rest string, err error) {
	for len(s) > 0 {
		if s[0] == ')' {
			return parts, s, nil
		}
		if s[0] == '(' {
			depth := 1
			j := 1
			for j < len(s) && depth > 0 {
				switch s[j] {
				case '(':
					depth++
				case ')':
					depth--
				}
				j++
			}
			if depth != 0 {
				return nil, "", fmt.Errorf("identscan: unbalanced parens in %q", s)
			}
			content := s[1 : j-1]
			optional := false
			if j < len(s) && s[j] == '?' {
				optional = true
				j++
			}

			var alts []string
			for _, alt := range splitTopLevel(content, '|') {
				sub, err := expand(alt)
				if err != nil {
					return nil, "", err
				}
				alts = append(alts, sub...)
			}
			if optional {
				alts = append(alts, "")
			}
			parts = append(parts, alts)
			s = s[j:]
			continue
		}

		// Literal run: up to the next '(' or ')'.
		k := 0
		for k < len(s) && s[k] != '(' && s[k] != ')' {
			k++
		}
		lit := s[:k]
		if !isIdentRun(lit) {
			return nil, "", fmt.Errorf("identscan: %q is not an identifier run", lit)
		}
		if lit != "" {
			parts = append(parts, []string{lit})
		}
		s = s[k:]
	}
	return parts, "", nil
}

// isIdentRun reports whether lit holds only identifier characters:
// letters, digits, '_', '-', '.', ' ', or a backslash-escaped '.'/'-'/'+'.
func isIdentRun(lit string) bool {
	for i := 0; i < len(lit); i++ {
		c := lit[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-', c == '.', c == ' ':
		case c == '\\' && i+1 < len(lit) && (lit[i+1] == '.' || lit[i+1] == '-' || lit[i+1] == '+'):
			i++
		default:
			return false
		}
	}
	return true
}

// cartesian concatenates one choice from each part, across every
// combination, preserving part order within each result.
func cartesian(parts [][]string) []string {
	results := []string{""}
	for _, options := range parts {
		if len(options) == 0 {
			continue
		}
		next := make([]string, 0, len(results)*len(options))
		for _, prefix := range results {
			for _, opt := range options {
				next = append(next, prefix+opt)
			}
		}
		results = next
	}
	return results
}
