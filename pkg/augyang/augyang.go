// Package augyang is the compiler facade of spec §6.1: the four entry
// points (PrintInputLenses, PrintInputTerms, PrintYang, ErrorMessage)
// a caller - chiefly cmd/augyang - drives the whole pipeline through.
package augyang

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cesnet/augyang/pkg/augerr"
	"github.com/cesnet/augyang/pkg/emit"
	"github.com/cesnet/augyang/pkg/lens"
	"github.com/cesnet/augyang/pkg/term"
	"github.com/cesnet/augyang/pkg/transform"
	"github.com/cesnet/augyang/pkg/ynode"
)

// VerCode is the internal-dump bitmask of spec §6.1. It never affects
// the correctness of the emitted YANG, only which debug dumps
// PrintYang also returns.
type VerCode uint32

const (
	LTree VerCode = 1 << iota
	YTree
	YTreeAfterTrans
	TransRemove
	TransInsert1
	YNodeIDInYang
)

// Dumps holds the debug text requested by a VerCode, keyed by
// checkpoint name, alongside the final YANG text.
type Dumps struct {
	Yang  string
	Named map[string]string
}

// PrintInputLenses dumps mod's L-tree in debug format (spec §6.1).
func PrintInputLenses(mod *lens.Module) (string, error) {
	lt, err := lens.BuildTree(mod, true)
	if err != nil {
		return "", augerr.New(augerr.ErrLensNotFound, err.Error())
	}
	return lens.DumpTree(lt), nil
}

// TermSource obtains the parsed term tree for filename from the
// external Augeas parser - an opaque collaborator per spec §1, so
// this package never constructs one itself.
type TermSource func(filename string) (*term.Term, error)

// PrintInputTerms dumps filename's P-tree in debug format (spec
// §6.1).
func PrintInputTerms(parse TermSource, filename string) (string, error) {
	root, err := parse(filename)
	if err != nil {
		return "", augerr.New(augerr.ErrParseFailed, err.Error())
	}
	pt, err := term.BuildTree(root)
	if err != nil {
		return "", augerr.New(augerr.ErrParseFailed, err.Error())
	}
	return term.DumpTree(pt), nil
}

// PrintYang runs the full pipeline - L-tree, Y-forest, transforms,
// emission - and returns the YANG module text plus any checkpoint
// dumps vercode requested (spec §6.1). log receives the two non-fatal
// warning conditions spec §7 names; callers that don't care can pass
// logrus.StandardLogger() or any other logrus.FieldLogger, including a
// no-op one. PrintYang holds no logger of its own across calls, so
// concurrent or sequential compiles (SPEC_FULL §10.2's directory-batch
// mode) never share mutable state through this package.
func PrintYang(mod *lens.Module, vercode VerCode, log logrus.FieldLogger) (*Dumps, error) {
	lt, err := lens.BuildTree(mod, true)
	if err != nil {
		return nil, augerr.New(augerr.ErrLensNotFound, err.Error())
	}

	dumps := map[string]string{}
	if vercode&LTree != 0 {
		dumps["LTREE"] = lens.DumpTree(lt)
	}

	yt := ynode.BuildForest(lt, mod.Name)
	if vercode&YTree != 0 {
		dumps["YTREE"] = ynode.DumpTree(yt)
	}

	if err := transform.Run(yt); err != nil {
		return nil, err
	}
	if vercode&YTreeAfterTrans != 0 {
		dumps["YTREE_AFTER_TRANS"] = ynode.DumpTree(yt)
	}

	warnUnresolvedWhens(yt, log)

	yangText := emit.Module(yt, mod.Name)
	if vercode&YNodeIDInYang != 0 {
		dumps["YNODE_ID_IN_YANG"] = ynode.DumpTree(yt)
	}

	return &Dumps{Yang: yangText, Named: dumps}, nil
}

// warnUnresolvedWhens implements the two non-fatal warning conditions
// of spec §7: a when target that can't be located, and a when value
// containing an apostrophe (XPath 1.0 cannot express it, so the
// statement is emitted commented out rather than failing the build).
func warnUnresolvedWhens(t *ynode.Tree, log logrus.FieldLogger) {
	t.Walk(func(i int) {
		n := t.Nodes[i]
		if n.WhenRef == ynode.NoIndex {
			return
		}
		if t.ByID(n.WhenRef) == ynode.NoIndex {
			log.Warnf("when target id %d not found for node %q; when omitted", n.WhenRef, n.Ident)
			return
		}
		if strings.Contains(n.WhenVal, "'") {
			log.Warnf("when value %q for node %q contains an apostrophe; when commented out", n.WhenVal, n.Ident)
		}
	})
}

// ErrorMessage maps an error code to its English message (spec
// §6.1).
func ErrorMessage(code augerr.ErrCode) string {
	return augerr.Message(code)
}
