package term

import (
	"fmt"
	"strings"
)

// ModuleRegexpLookup resolves a qualified "module.name" IDENT to the
// regexp source text exported by that (already compiled) module. It
// is supplied by the caller because module compilation order and
// storage are owned by the external Augeas module loader, not by this
// package (spec §4.2 step 1).
type ModuleRegexpLookup func(module, name string) (regexp string, ok bool)

// ResolveIdents resolves every IDENT P-node's reference by trying, in
// order: a "module.name" qualified lookup, a local FUNC parameter, and
// a top-level BIND in the same module; resolution follows
// transitively through IDENT targets (spec §4.2).
func ResolveIdents(pt *Tree, lookupModule ModuleRegexpLookup) error {
	// top-level BIND terms indexed by name, for step 3.
	binds := map[string]int{}
	for i, n := range pt.Nodes {
		if n.T != nil && n.T.Kind == Bind && n.T.Name != "" {
			binds[n.T.Name] = i
		}
	}

	for i := range pt.Nodes {
		n := &pt.Nodes[i]
		if n.T == nil || n.T.Kind != Ident {
			continue
		}
		if err := resolveOne(pt, i, lookupModule, binds, map[int]bool{}); err != nil {
			return err
		}
	}
	return nil
}

func resolveOne(pt *Tree, i int, lookupModule ModuleRegexpLookup, binds map[string]int, seen map[int]bool) error {
	if seen[i] {
		return fmt.Errorf("term: cyclic identifier resolution at %s", pt.Nodes[i].T.Info)
	}
	seen[i] = true
	n := &pt.Nodes[i]

	name := n.T.Name

	// Step 1: "module.name" qualified form.
	if mod, local, ok := splitQualified(name); ok {
		if re, found := lookupModule(mod, local); found {
			n.RefKind = RefRegexp
			n.RefRegexp = re
			n.Flags |= HasRegexp
			return nil
		}
		return fmt.Errorf("term: identifier %q not found in module %q", local, mod)
	}

	// Step 2: local FUNC parameter on the path to the enclosing BIND.
	for p := pt.Nodes[i].Parent; p != noIndex; p = pt.Nodes[p].Parent {
		pn := pt.Nodes[p]
		if pn.T != nil && pn.T.Kind == Func && pn.T.Name == name {
			target := pn.FirstChild // the function's body
			if target == noIndex {
				return fmt.Errorf("term: function %q has no body", name)
			}
			return linkTransitively(pt, i, target, lookupModule, binds, seen)
		}
		if pn.T != nil && pn.T.Kind == Bind {
			break // stop searching for FUNC params past the enclosing BIND
		}
	}

	// Step 3: top-level BIND in the same module.
	if target, ok := binds[name]; ok {
		body := pt.Nodes[target].FirstChild
		if body == noIndex {
			return fmt.Errorf("term: bind %q has no body", name)
		}
		return linkTransitively(pt, i, body, lookupModule, binds, seen)
	}

	return fmt.Errorf("term: identifier %q could not be resolved (%s)", name, n.T.Info)
}

// linkTransitively links P-node i to target, following through target
// itself being an (as yet unresolved) IDENT.
func linkTransitively(pt *Tree, i, target int, lookupModule ModuleRegexpLookup, binds map[string]int, seen map[int]bool) error {
	if pt.Nodes[target].T != nil && pt.Nodes[target].T.Kind == Ident {
		if err := resolveOne(pt, target, lookupModule, binds, seen); err != nil {
			return err
		}
		pt.Nodes[i].RefKind = pt.Nodes[target].RefKind
		pt.Nodes[i].Ref = pt.Nodes[target].Ref
		pt.Nodes[i].RefRegexp = pt.Nodes[target].RefRegexp
		pt.Nodes[i].Flags |= pt.Nodes[target].Flags & HasRegexp
		return nil
	}
	pt.Nodes[i].RefKind = RefNode
	pt.Nodes[i].Ref = target
	return nil
}

func splitQualified(name string) (module, local string, ok bool) {
	idx := strings.IndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return "", "", false
	}
	return name[:idx], name[idx+1:], true
}
