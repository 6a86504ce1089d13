package ynode

// PatternEntry memoizes the identifier-list expansion of one Augeas
// KEY pattern (spec §3.6).
type PatternEntry struct {
	Origin string
	Substr []string
}

// PatternTable is an insertion-ordered, origin-keyed memo table, built
// the same way as Dict (spec §3.6, §9).
type PatternTable struct {
	entries []PatternEntry
	index   map[string]int
}

func newPatternTable() *PatternTable {
	return &PatternTable{index: map[string]int{}}
}

// Get returns the memoized expansion of origin, if any.
func (p *PatternTable) Get(origin string) ([]string, bool) {
	i, ok := p.index[origin]
	if !ok {
		return nil, false
	}
	return p.entries[i].Substr, true
}

// Set memoizes the expansion of origin, replacing any previous entry.
func (p *PatternTable) Set(origin string, substr []string) {
	if i, ok := p.index[origin]; ok {
		p.entries[i].Substr = substr
		return
	}
	p.index[origin] = len(p.entries)
	p.entries = append(p.entries, PatternEntry{Origin: origin, Substr: substr})
}

// Entries returns the packed array in insertion order.
func (p *PatternTable) Entries() []PatternEntry { return p.entries }
