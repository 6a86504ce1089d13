package term

import (
	"testing"

	"github.com/cesnet/augyang/pkg/lens"
)

func TestBuildTreeShapeAndBind(t *testing.T) {
	ident := &Term{Kind: Ident, Name: "body"}
	bind := &Term{Kind: Bind, Name: "lns", Left: ident}
	root := &Term{Kind: Module, Left: bind}

	pt, err := BuildTree(root)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if len(pt.Nodes) != 3 {
		t.Fatalf("len(Nodes) = %d, want 3", len(pt.Nodes))
	}
	if pt.Nodes[pt.Root].T.Kind != Module {
		t.Errorf("root kind = %v, want Module", pt.Nodes[pt.Root].T.Kind)
	}

	bindIdx := pt.Children(pt.Root)[0]
	if pt.Nodes[bindIdx].T.Kind != Bind {
		t.Fatalf("child of root = %v, want Bind", pt.Nodes[bindIdx].T.Kind)
	}
	identIdx := pt.Children(bindIdx)[0]
	if pt.Nodes[identIdx].Bind != bindIdx {
		t.Errorf("ident.Bind = %d, want %d", pt.Nodes[identIdx].Bind, bindIdx)
	}
}

func TestBuildTreeNilRoot(t *testing.T) {
	if _, err := BuildTree(nil); err == nil {
		t.Fatalf("BuildTree(nil) err = nil, want error")
	}
}

func TestRewriteRepMinus(t *testing.T) {
	minus := &Term{Kind: Minus}
	rep := &Term{Kind: Rep, Left: minus}
	root := &Term{Kind: Module, Left: rep}

	pt, err := BuildTree(root)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	RewriteRepMinus(pt)

	repIdx := pt.Children(pt.Root)[0]
	if pt.Nodes[repIdx].T.Kind != Minus {
		t.Errorf("after rewrite, former REP node kind = %v, want Minus", pt.Nodes[repIdx].T.Kind)
	}
	minusIdx := pt.Children(repIdx)[0]
	if pt.Nodes[minusIdx].T.Kind != Rep {
		t.Errorf("after rewrite, former MINUS node kind = %v, want Rep", pt.Nodes[minusIdx].T.Kind)
	}
}

func TestRewriteRepMinusSkipsNonUniqueChild(t *testing.T) {
	minus := &Term{Kind: Minus}
	other := &Term{Kind: Other}
	rep := &Term{Kind: Rep, Left: minus, Right: other}
	root := &Term{Kind: Module, Left: rep}

	pt, err := BuildTree(root)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	RewriteRepMinus(pt)

	repIdx := pt.Children(pt.Root)[0]
	if pt.Nodes[repIdx].T.Kind != Rep {
		t.Errorf("REP with two children must not be rewritten, got %v", pt.Nodes[repIdx].T.Kind)
	}
}

func TestResolveIdentsQualified(t *testing.T) {
	ident := &Term{Kind: Ident, Name: "hosts.word"}
	root := &Term{Kind: Module, Left: ident}

	pt, err := BuildTree(root)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	lookup := func(module, name string) (string, bool) {
		if module == "hosts" && name == "word" {
			return "[a-z]+", true
		}
		return "", false
	}
	if err := ResolveIdents(pt, lookup); err != nil {
		t.Fatalf("ResolveIdents: %v", err)
	}
	identIdx := pt.Children(pt.Root)[0]
	n := pt.Nodes[identIdx]
	if n.RefKind != RefRegexp || n.RefRegexp != "[a-z]+" {
		t.Errorf("RefKind/RefRegexp = %v/%q, want RefRegexp/[a-z]+", n.RefKind, n.RefRegexp)
	}
}

func TestResolveIdentsFuncParam(t *testing.T) {
	param := &Term{Kind: Ident, Name: "x"}
	body := &Term{Kind: Other}
	fn := &Term{Kind: Func, Name: "x", Left: body, Right: param}
	root := &Term{Kind: Module, Left: fn}

	pt, err := BuildTree(root)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if err := ResolveIdents(pt, nil); err != nil {
		t.Fatalf("ResolveIdents: %v", err)
	}
	fnIdx := pt.Children(pt.Root)[0]
	paramIdx := pt.Children(fnIdx)[1]
	bodyIdx := pt.Children(fnIdx)[0]
	if pt.Nodes[paramIdx].RefKind != RefNode || pt.Nodes[paramIdx].Ref != bodyIdx {
		t.Errorf("param RefKind/Ref = %v/%d, want RefNode/%d", pt.Nodes[paramIdx].RefKind, pt.Nodes[paramIdx].Ref, bodyIdx)
	}
}

func TestResolveIdentsTopLevelBind(t *testing.T) {
	use := &Term{Kind: Ident, Name: "lns"}
	body := &Term{Kind: Other}
	bind := &Term{Kind: Bind, Name: "lns", Left: body}
	root := &Term{Kind: Module, Left: bind, Right: use}

	pt, err := BuildTree(root)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if err := ResolveIdents(pt, nil); err != nil {
		t.Fatalf("ResolveIdents: %v", err)
	}
	bindIdx := pt.Children(pt.Root)[0]
	useIdx := pt.Children(pt.Root)[1]
	bodyIdx := pt.Children(bindIdx)[0]
	if pt.Nodes[useIdx].RefKind != RefNode || pt.Nodes[useIdx].Ref != bodyIdx {
		t.Errorf("use RefKind/Ref = %v/%d, want RefNode/%d", pt.Nodes[useIdx].RefKind, pt.Nodes[useIdx].Ref, bodyIdx)
	}
}

func TestResolveIdentsUnresolvable(t *testing.T) {
	ident := &Term{Kind: Ident, Name: "nowhere"}
	root := &Term{Kind: Module, Left: ident}
	pt, err := BuildTree(root)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if err := ResolveIdents(pt, nil); err == nil {
		t.Fatalf("ResolveIdents unresolvable ident: err = nil, want error")
	}
}

func TestCrossLinkSubtreeAndLongPattern(t *testing.T) {
	longPattern := ""
	for i := 0; i < 80; i++ {
		longPattern += "a"
	}

	storeLens := &lens.Lens{Kind: lens.Store, Regexp: longPattern, Info: lens.SourceInfo{Filename: "x.aug", Line: 1, Col: 1}}
	mod := &lens.Module{Name: "x", Root: &lens.Lens{Kind: lens.Subtree, Child: storeLens, Info: lens.SourceInfo{Filename: "x.aug", Line: 0, Col: 0}}}
	lt, err := lens.BuildTree(mod, false)
	if err != nil {
		t.Fatalf("lens.BuildTree: %v", err)
	}

	storeTerm := &Term{Kind: Other, Info: Info{Filename: "x.aug", Line: 1, Col: 1}}
	pt, err := BuildTree(storeTerm)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}

	findByLocation := func(si lens.SourceInfo) (int, bool) {
		if si.Filename == "x.aug" && si.Line == 1 && si.Col == 1 {
			return pt.Root, true
		}
		return 0, false
	}
	CrossLink(lt, pt, findByLocation)

	storeIdx := lt.Children(lt.Root)[0]
	if lt.Nodes[storeIdx].PNode != pt.Root {
		t.Errorf("STORE PNode = %d, want %d", lt.Nodes[storeIdx].PNode, pt.Root)
	}
	if pt.Nodes[pt.Root].Flags&ForSnode == 0 {
		t.Errorf("linked P-node missing ForSnode flag")
	}
}
