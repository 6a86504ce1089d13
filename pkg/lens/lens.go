// Package lens models a compiled Augeas lens tree (the L-tree of
// spec §3.1-§3.2) and builds the wrapper array described in spec
// §4.1. The Augeas parser and lens compiler themselves are an
// external collaborator: this package only consumes their output,
// represented here as plain Go values so the rest of the pipeline,
// and its tests, do not need a live Augeas binding.
package lens

import "fmt"

// Kind is the tag of a compiled Augeas lens, per spec §3.1. The set is
// closed; CONCAT and UNION are n-ary, SUBTREE/STAR/MAYBE/SQUARE are
// unary, the rest are leaves.
type Kind int

const (
	Del Kind = iota
	Store
	Value
	Key
	Label
	Seq
	Counter
	Concat
	Union
	Subtree
	Star
	Maybe
	Rec
	Square
)

func (k Kind) String() string {
	switch k {
	case Del:
		return "DEL"
	case Store:
		return "STORE"
	case Value:
		return "VALUE"
	case Key:
		return "KEY"
	case Label:
		return "LABEL"
	case Seq:
		return "SEQ"
	case Counter:
		return "COUNTER"
	case Concat:
		return "CONCAT"
	case Union:
		return "UNION"
	case Subtree:
		return "SUBTREE"
	case Star:
		return "STAR"
	case Maybe:
		return "MAYBE"
	case Rec:
		return "REC"
	case Square:
		return "SQUARE"
	default:
		return "UNKNOWN"
	}
}

// HasOneChild reports whether lenses of kind k carry a single Child
// (SUBTREE, STAR, MAYBE, SQUARE - everything unary except REC, which
// instead carries a RecTarget back-reference).
func (k Kind) HasOneChild() bool {
	switch k {
	case Subtree, Star, Maybe, Square:
		return true
	default:
		return false
	}
}

// HasChildren reports whether lenses of kind k carry an n-ary Children
// slice (CONCAT, UNION).
func (k Kind) HasChildren() bool {
	return k == Concat || k == Union
}

// SourceInfo is the source-location info every lens carries (spec §3.1).
type SourceInfo struct {
	Filename string
	Line     int
	Col      int
}

func (s SourceInfo) String() string {
	if s.Filename == "" {
		return "?"
	}
	return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Col)
}

// Lens is one node of the compiled lens DAG. Exactly one of Literal or
// Regexp is meaningful, depending on Kind; leaves such as DEL carry
// neither.
type Lens struct {
	Kind     Kind
	Child    *Lens   // SUBTREE, STAR, MAYBE, SQUARE
	Children []*Lens // CONCAT, UNION

	// Literal is the fixed string carried by LABEL and some DEL/STORE
	// lenses.
	Literal string

	// Regexp is the Augeas source text of the pattern carried by
	// STORE, KEY, VALUE, COUNTER, SEQ-adjacent lenses. It is kept as
	// source text rather than a compiled regexp.Regexp because Augeas
	// regex syntax does not always compile under Go's RE2 engine
	// (lookaround-free minus operator, POSIX classes); the translator
	// to YANG pattern syntax is pkg/augregex.
	Regexp string
	NoCase bool

	// RecTarget is the lens body a REC lens refers back to, closing a
	// recursive grammar cycle (spec §3.1).
	RecTarget *Lens

	Info SourceInfo
}

// Module is the root of one compiled Augeas module: its name and the
// lens DAG rooted at Root.
type Module struct {
	Name string
	Root *Lens
}
