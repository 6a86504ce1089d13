package lens

import "testing"

func TestBuildTreeShapeAndDescendants(t *testing.T) {
	mod := &Module{
		Name: "hosts",
		Root: &Lens{
			Kind: Subtree,
			Child: &Lens{
				Kind: Concat,
				Children: []*Lens{
					{Kind: Label, Literal: "entry"},
					{Kind: Store, Regexp: "[a-z]+"},
				},
			},
		},
	}

	lt, err := BuildTree(mod, false)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if len(lt.Nodes) != 4 {
		t.Fatalf("len(Nodes) = %d, want 4", len(lt.Nodes))
	}
	if lt.HasRec {
		t.Errorf("HasRec = true, want false")
	}

	root := lt.Nodes[lt.Root]
	if root.L.Kind != Subtree {
		t.Errorf("root kind = %v, want Subtree", root.L.Kind)
	}
	if root.Descendants != 3 {
		t.Errorf("root.Descendants = %d, want 3", root.Descendants)
	}

	children := lt.Children(lt.Root)
	if len(children) != 1 || lt.Nodes[children[0]].L.Kind != Concat {
		t.Fatalf("root children = %v, want single Concat", children)
	}

	concatChildren := lt.Children(children[0])
	if len(concatChildren) != 2 {
		t.Fatalf("concat children = %d, want 2", len(concatChildren))
	}
	if lt.Nodes[concatChildren[0]].L.Kind != Label {
		t.Errorf("first concat child = %v, want Label", lt.Nodes[concatChildren[0]].L.Kind)
	}
	if lt.Nodes[concatChildren[1]].L.Kind != Store {
		t.Errorf("second concat child = %v, want Store", lt.Nodes[concatChildren[1]].L.Kind)
	}
}

func TestBuildTreeRejectsRecByDefault(t *testing.T) {
	rec := &Lens{Kind: Rec}
	mod := &Module{Name: "m", Root: &Lens{Kind: Subtree, Child: rec}}

	if _, err := BuildTree(mod, false); err != ErrRecUnsupported {
		t.Fatalf("BuildTree(allowRec=false) err = %v, want ErrRecUnsupported", err)
	}
	lt, err := BuildTree(mod, true)
	if err != nil {
		t.Fatalf("BuildTree(allowRec=true): %v", err)
	}
	if !lt.HasRec {
		t.Errorf("HasRec = false, want true")
	}
}

func TestBuildTreeNilModule(t *testing.T) {
	if _, err := BuildTree(nil, false); err == nil {
		t.Fatalf("BuildTree(nil) err = nil, want error")
	}
	if _, err := BuildTree(&Module{}, false); err == nil {
		t.Fatalf("BuildTree(no root) err = nil, want error")
	}
}

func TestAncestorsOf(t *testing.T) {
	mod := &Module{
		Name: "m",
		Root: &Lens{
			Kind: Concat,
			Children: []*Lens{
				{Kind: Union, Children: []*Lens{
					{Kind: Del, Literal: "a"},
					{Kind: Del, Literal: "b"},
				}},
			},
		},
	}
	lt, err := BuildTree(mod, false)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	unionIdx := lt.Children(lt.Root)[0]
	leaf := lt.Children(unionIdx)[0]

	var seen []int
	lt.AncestorsOf(leaf, noIndex, func(anc int) bool {
		seen = append(seen, anc)
		return true
	})
	if len(seen) != 2 || seen[0] != unionIdx || seen[1] != lt.Root {
		t.Fatalf("AncestorsOf = %v, want [union, root]", seen)
	}

	seen = nil
	lt.AncestorsOf(leaf, unionIdx, func(anc int) bool {
		seen = append(seen, anc)
		return true
	})
	if len(seen) != 0 {
		t.Fatalf("AncestorsOf bounded by union = %v, want empty", seen)
	}
}

func TestClassifyKeyPattern(t *testing.T) {
	cases := []struct {
		pattern string
		want    Flag
	}{
		{"", KeyIsLabel},
		{"foo", KeyNoRegex},
		{"foo|bar|baz", KeyHasIdents},
		{"[Aa]pple", KeyHasIdents},
		{"foo.bar", KeyNoRegex},
		{"[a-z]+", 0},
	}
	for _, c := range cases {
		if got := classifyKeyPattern(c.pattern); got != c.want {
			t.Errorf("classifyKeyPattern(%q) = %v, want %v", c.pattern, got, c.want)
		}
	}
}

func TestKindHelpers(t *testing.T) {
	if !Subtree.HasOneChild() || Concat.HasOneChild() {
		t.Errorf("HasOneChild classification wrong")
	}
	if !Union.HasChildren() || Star.HasChildren() {
		t.Errorf("HasChildren classification wrong")
	}
	if Del.String() != "DEL" || Kind(99).String() != "UNKNOWN" {
		t.Errorf("String() mismatch")
	}
}
