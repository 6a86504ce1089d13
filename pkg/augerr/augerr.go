// Package augerr defines the compiler's error taxonomy (spec §7),
// shared by every stage past L-tree construction so a failure in any
// one of them can be propagated, without conversion, all the way to
// the CLI.
package augerr

import (
	"errors"
	"fmt"
)

// ErrCode enumerates the kinds of failure the pipeline can report.
// Values are deliberately not iota-sequential with any external
// system; they are this compiler's own vocabulary.
type ErrCode int

const (
	// OK is the zero value: no error.
	OK ErrCode = iota
	ErrMemory
	ErrLensNotFound
	ErrRecUnsupported
	ErrSelfCheckFailed
	ErrIdentNotFound
	ErrIdentLimit
	ErrRegexLimit
	ErrParseFailed
	ErrBadChar
	ErrInternal
)

var messages = map[ErrCode]string{
	OK:                 "success",
	ErrMemory:           "memory allocation failed",
	ErrLensNotFound:     "module has no root lens to compile",
	ErrRecUnsupported:   "recursive lens could not be resolved into a list/leafref pair",
	ErrSelfCheckFailed:  "debug self-check failed",
	ErrIdentNotFound:    "no identifier source yielded a name",
	ErrIdentLimit:       "standardized identifier exceeds the length limit",
	ErrRegexLimit:       "translated pattern exceeds the length limit",
	ErrParseFailed:      "the external parser rejected the source module",
	ErrBadChar:          "untranslatable character in a derived identifier",
	ErrInternal:         "internal error: a local invariant was violated",
}

// Message maps code to its English description (spec §6.1's
// error_message entry point).
func Message(code ErrCode) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return "unknown error"
}

// CompileError pairs a code with the specific context that produced
// it. Its Error() text is what propagates to stderr.
type CompileError struct {
	Code    ErrCode
	Context string
}

func New(code ErrCode, context string) *CompileError {
	return &CompileError{Code: code, Context: context}
}

func Newf(code ErrCode, format string, args ...interface{}) *CompileError {
	return &CompileError{Code: code, Context: fmt.Sprintf(format, args...)}
}

func (e *CompileError) Error() string {
	if e.Context == "" {
		return Message(e.Code)
	}
	return fmt.Sprintf("%s: %s", Message(e.Code), e.Context)
}

// CodeOf extracts the ErrCode from err if it is (or wraps) a
// *CompileError, otherwise ErrInternal.
func CodeOf(err error) ErrCode {
	if err == nil {
		return OK
	}
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ErrInternal
}
