package emit

import (
	"strings"
	"testing"

	"github.com/cesnet/augyang/pkg/lens"
	"github.com/cesnet/augyang/pkg/ynode"
)

func buildMinimalTree(t *testing.T) *ynode.Tree {
	t.Helper()
	mod := &lens.Module{Name: "hosts", Root: &lens.Lens{Kind: lens.Subtree}}
	lt, err := lens.BuildTree(mod, false)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	yt := ynode.NewTree(lt, "hosts")
	container := yt.InsertChild(0)
	yt.Nodes[container].Kind = ynode.Container
	yt.Nodes[container].Ident = "hosts"
	leaf := yt.InsertChild(container)
	yt.Nodes[leaf].Kind = ynode.Leaf
	yt.Nodes[leaf].Ident = "config-file"
	return yt
}

func TestModuleBasicShape(t *testing.T) {
	yt := buildMinimalTree(t)
	out := Module(yt, "hosts")

	for _, want := range []string{
		"module hosts {",
		"import augeas-extension {",
		"augex:augeas-mod-name \"hosts\";",
		"container hosts {",
		"leaf config-file {",
		"type string;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestChoiceIdent(t *testing.T) {
	if got := choiceIdent("entry", 1); got != "ch-entry" {
		t.Errorf("choiceIdent(entry, 1) = %q, want ch-entry", got)
	}
	if got := choiceIdent("ch-entry", 1); got != "ch-entry" {
		t.Errorf("choiceIdent(ch-entry, 1) = %q, want ch-entry", got)
	}
	if got := choiceIdent("entry", 2); got != "ch-entry2" {
		t.Errorf("choiceIdent(entry, 2) = %q, want ch-entry2", got)
	}
}
