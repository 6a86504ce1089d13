package augerr

import (
	"fmt"
	"testing"

	"github.com/openconfig/gnmi/errdiff"
)

func TestMessageKnownAndUnknownCodes(t *testing.T) {
	if got := Message(ErrMemory); got == "" || got == "unknown error" {
		t.Errorf("Message(ErrMemory) = %q, want a real description", got)
	}
	if got := Message(ErrCode(999)); got != "unknown error" {
		t.Errorf("Message(unregistered code) = %q, want \"unknown error\"", got)
	}
}

func TestNewAndNewfErrorText(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{"with context", New(ErrParseFailed, "hosts.aug"), "the external parser rejected.*hosts.aug"},
		{"no context", New(ErrIdentNotFound, ""), "no identifier source yielded a name"},
		{"formatted", Newf(ErrIdentLimit, "identifier %q (%d chars)", "x", 70), "standardized identifier exceeds.*x.*70 chars"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := errdiff.Check(tt.err, tt.wantErr); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestCodeOfUnwrapsCompileError(t *testing.T) {
	if got := CodeOf(nil); got != OK {
		t.Errorf("CodeOf(nil) = %v, want OK", got)
	}
	if got := CodeOf(New(ErrBadChar, "")); got != ErrBadChar {
		t.Errorf("CodeOf(CompileError) = %v, want ErrBadChar", got)
	}
	if got := CodeOf(fmt.Errorf("plain stdlib error")); got != ErrInternal {
		t.Errorf("CodeOf(plain error) = %v, want ErrInternal", got)
	}
}
