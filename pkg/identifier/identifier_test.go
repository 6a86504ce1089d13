package identifier

import (
	"testing"

	"github.com/cesnet/augyang/pkg/lens"
	"github.com/cesnet/augyang/pkg/ynode"
)

func TestStandardizeBasicRules(t *testing.T) {
	cases := map[string]string{
		"":            "node",
		"Entry_Name":  "entry-name",
		"-debug":      "minus-debug",
		"foo+bar":     "fooplus-bar",
		"#weird@name": "weirdname",
		"host-re":     "host",
		"__leading":   "leading",
		"a--b":        "a-b",
	}
	for raw, want := range cases {
		if got := Standardize(raw); got != want {
			t.Errorf("Standardize(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestStandardizeIsIdempotent(t *testing.T) {
	for _, raw := range []string{"Entry_Name", "-debug", "foo+bar", "#weird@name", "host-re"} {
		once := Standardize(raw)
		twice := Standardize(once)
		if once != twice {
			t.Errorf("Standardize(%q) = %q, but Standardize(that) = %q, want idempotent", raw, once, twice)
		}
	}
}

func TestAssignLeavesSyntheticNamesAlone(t *testing.T) {
	mod := &lens.Module{Name: "x", Root: &lens.Lens{Kind: lens.Subtree}}
	lt, _ := lens.BuildTree(mod, false)
	yt := ynode.NewTree(lt, "x")
	key := yt.InsertChild(0)
	yt.Nodes[key].Kind = ynode.Key
	yt.Nodes[key].Ident = "_id"

	if err := Assign(yt); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if yt.Nodes[key].Ident != "_id" {
		t.Errorf("synthetic ident mutated: got %q, want unchanged \"_id\"", yt.Nodes[key].Ident)
	}
}

func TestAssignDerivesLeafNameFromLabelLiteral(t *testing.T) {
	mod := &lens.Module{
		Name: "x",
		Root: &lens.Lens{
			Kind: lens.Subtree,
			Child: &lens.Lens{
				Kind: lens.Concat,
				Children: []*lens.Lens{
					{Kind: lens.Label, Literal: "Server_Name"},
					{Kind: lens.Store, Regexp: "[a-z]+"},
				},
			},
		},
	}
	lt, err := lens.BuildTree(mod, false)
	if err != nil {
		t.Fatalf("lens.BuildTree: %v", err)
	}
	yt := ynode.BuildForest(lt, "x")
	entry := yt.Children(0)[0]
	yt.Nodes[entry].Kind = ynode.Leaf

	if err := Assign(yt); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got := yt.Nodes[entry].Ident; got != "server-name" {
		t.Errorf("entry Ident = %q, want %q", got, "server-name")
	}
}

func TestAssignNamesListUnderSyntheticContainerByDescendantName(t *testing.T) {
	// A LIST reparented under the step-5 synthesized container is NOT
	// the "module-root parent" case: it must keep its own descriptive
	// identifier, not collide with the container's module-name ident.
	mod := &lens.Module{Name: "hosts", Root: &lens.Lens{Kind: lens.Subtree}}
	lt, _ := lens.BuildTree(mod, false)
	yt := ynode.NewTree(lt, "hosts")
	container := yt.InsertChild(0)
	yt.Nodes[container].Kind = ynode.Container
	yt.Nodes[container].Ident = "hosts"
	list := yt.InsertChild(container)
	yt.Nodes[list].Kind = ynode.List
	entry := yt.InsertChild(list)
	yt.Nodes[entry].Kind = ynode.Leaf
	yt.Nodes[entry].Ident = "ipaddr"

	if err := Assign(yt); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got := yt.Nodes[list].Ident; got == "hosts" {
		t.Errorf("list under synthesized container took the module name %q, want its own descendant-derived name", got)
	}
}

func TestAssignNamesListWithLiteralRootParentAfterModule(t *testing.T) {
	mod := &lens.Module{Name: "hosts", Root: &lens.Lens{Kind: lens.Subtree}}
	lt, _ := lens.BuildTree(mod, false)
	yt := ynode.NewTree(lt, "hosts")
	list := yt.InsertChild(0) // direct child of the literal ROOT, index 0
	yt.Nodes[list].Kind = ynode.List

	if err := Assign(yt); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got := yt.Nodes[list].Ident; got != "hosts" {
		t.Errorf("list.Ident = %q, want module name %q", got, "hosts")
	}
}

func TestAssignNamesSeqListFromTheSeqLensItself(t *testing.T) {
	// The entry's enclosing SUBTREE carries no Literal/Regexp of its own
	// - only the SEQ label lens does - so this pins the fix reading
	// "the label string" (spec §4.10) from n.Label, not n.SNode.
	mod := &lens.Module{
		Name: "hosts",
		Root: &lens.Lens{
			Kind:  lens.Subtree,
			Child: &lens.Lens{Kind: lens.Seq, Literal: "host"},
		},
	}
	lt, err := lens.BuildTree(mod, false)
	if err != nil {
		t.Fatalf("lens.BuildTree: %v", err)
	}
	seqIdx := lt.Nodes[lt.Root].FirstChild

	yt := ynode.NewTree(lt, "hosts")
	container := yt.InsertChild(0)
	yt.Nodes[container].Kind = ynode.Container
	entry := yt.InsertChild(container)
	yt.Nodes[entry].Kind = ynode.List
	yt.Nodes[entry].SNode = lt.Root
	yt.Nodes[entry].Label = seqIdx

	if err := Assign(yt); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got := yt.Nodes[entry].Ident; got != "host-list" {
		t.Errorf("SEQ-based list Ident = %q, want %q", got, "host-list")
	}
}

func TestAssignErrorsOnOverlongIdentifier(t *testing.T) {
	long := ""
	for i := 0; i < MaxLength+10; i++ {
		long += "a"
	}
	mod := &lens.Module{
		Name: "x",
		Root: &lens.Lens{
			Kind: lens.Subtree,
			Child: &lens.Lens{
				Kind: lens.Concat,
				Children: []*lens.Lens{
					{Kind: lens.Label, Literal: long},
					{Kind: lens.Store, Regexp: "[a-z]+"},
				},
			},
		},
	}
	lt, err := lens.BuildTree(mod, false)
	if err != nil {
		t.Fatalf("lens.BuildTree: %v", err)
	}
	yt := ynode.BuildForest(lt, "x")
	entry := yt.Children(0)[0]
	yt.Nodes[entry].Kind = ynode.Leaf

	if err := Assign(yt); err == nil {
		t.Fatalf("expected an error for an identifier longer than %d characters", MaxLength)
	}
}
