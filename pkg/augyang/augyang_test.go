package augyang

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/openconfig/gnmi/errdiff"
	"github.com/sirupsen/logrus"

	"github.com/cesnet/augyang/pkg/augerr"
	"github.com/cesnet/augyang/pkg/lens"
	"github.com/cesnet/augyang/pkg/term"
)

// discardLogger is a fresh, silent logger for tests that don't care
// about the two non-fatal warning conditions PrintYang logs - a new
// instance per call, so no test shares mutable logger state with
// another.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func hostsModule() *lens.Module {
	return &lens.Module{
		Name: "hosts",
		Root: &lens.Lens{
			Kind: lens.Star,
			Child: &lens.Lens{
				Kind: lens.Subtree,
				Child: &lens.Lens{
					Kind: lens.Concat,
					Children: []*lens.Lens{
						{Kind: lens.Label, Literal: "entry"},
						{Kind: lens.Store, Regexp: "[a-z]+"},
					},
				},
			},
		},
	}
}

func TestPrintInputLenses(t *testing.T) {
	out, err := PrintInputLenses(hostsModule())
	if err != nil {
		t.Fatalf("PrintInputLenses: %v", err)
	}
	if out == "" {
		t.Errorf("PrintInputLenses returned empty text")
	}
}

func TestPrintYangProducesContainerNamedAfterModule(t *testing.T) {
	dumps, err := PrintYang(hostsModule(), 0, discardLogger())
	if err != nil {
		t.Fatalf("PrintYang: %v", err)
	}
	if !strings.Contains(dumps.Yang, "container hosts") {
		t.Errorf("Yang text missing top-level container, got:\n%s", dumps.Yang)
	}
	if len(dumps.Named) != 0 {
		t.Errorf("vercode 0 should request no checkpoint dumps, got %v", dumps.Named)
	}
}

func TestPrintYangCheckspointDumps(t *testing.T) {
	dumps, err := PrintYang(hostsModule(), LTree|YTree|YTreeAfterTrans, discardLogger())
	if err != nil {
		t.Fatalf("PrintYang: %v", err)
	}
	for _, name := range []string{"LTREE", "YTREE", "YTREE_AFTER_TRANS"} {
		if dumps.Named[name] == "" {
			t.Errorf("missing checkpoint dump %q", name)
		}
	}
}

func TestPrintYangRejectsUnbuildableModule(t *testing.T) {
	mod := &lens.Module{Name: "bad", Root: nil}
	_, err := PrintYang(mod, 0, discardLogger())
	if diff := errdiff.Check(err, "no root lens"); diff != "" {
		t.Error(diff)
	}
	if augerr.CodeOf(err) != augerr.ErrLensNotFound {
		t.Errorf("CodeOf(err) = %v, want ErrLensNotFound", augerr.CodeOf(err))
	}
}

func TestPrintInputTermsPropagatesParseFailure(t *testing.T) {
	boom := errors.New("boom")
	parse := func(filename string) (*term.Term, error) { return nil, boom }

	_, err := PrintInputTerms(parse, "hosts.aug")
	if diff := errdiff.Check(err, "boom"); diff != "" {
		t.Error(diff)
	}
	if augerr.CodeOf(err) != augerr.ErrParseFailed {
		t.Errorf("CodeOf(err) = %v, want ErrParseFailed", augerr.CodeOf(err))
	}
}

func TestPrintInputTermsDumpsParsedTree(t *testing.T) {
	parse := func(filename string) (*term.Term, error) {
		return &term.Term{Kind: term.Module, Name: "hosts"}, nil
	}
	out, err := PrintInputTerms(parse, "hosts.aug")
	if err != nil {
		t.Fatalf("PrintInputTerms: %v", err)
	}
	if out == "" {
		t.Errorf("PrintInputTerms returned empty text")
	}
}

func TestWarnUnresolvedWhensToleratesModuleWithoutWhens(t *testing.T) {
	dumps, err := PrintYang(hostsModule(), 0, discardLogger())
	if err != nil {
		t.Fatalf("PrintYang: %v", err)
	}
	_ = dumps
	// warnUnresolvedWhens runs as part of PrintYang; a module with no
	// WHEN targets at all must not panic or error out.
}

func TestErrorMessageRoundTrips(t *testing.T) {
	msg := ErrorMessage(augerr.ErrMemory)
	if msg == "" {
		t.Errorf("ErrorMessage(ErrMemory) returned empty string")
	}
}
