package shrimply

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Position is a 1-based (line, column) pair.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SyntaxError is a lexer or parser failure: fatal to the call that
// produced it, never recoverable by user code.
type SyntaxError struct {
	Message  string
	Position Position
	Filename string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s in file %q: %s", e.Position, e.Filename, e.Message)
}

// InvalidAST is the error kind for an internal parser-bug condition.
// The frame-stack parser in parser.go passes atoms through typed
// callbacks and never returns it.
type InvalidAST struct {
	Message  string
	Position Position
}

func (e *InvalidAST) Error() string {
	return fmt.Sprintf("internal error at %s: %s", e.Position, e.Message)
}

// Frame is one entry of a RuntimeError's backtrace snapshot: the
// position, function, and module active in a Stackframe at the moment
// the error was raised or re-thrown through it.
type Frame struct {
	Position     Position
	FunctionName string
	ModuleName   string
}

// RuntimeError is a user-visible failure during evaluation. It carries
// a message and a snapshot of the call chain, and is recoverable by
// user code via try/recover.
type RuntimeError struct {
	Message string
	Frames  []Frame
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %s", e.Message)
}

// Backtrace renders the full user-visible diagnostic.
func (e *RuntimeError) Backtrace() string {
	var b strings.Builder
	fmt.Fprintf(&b, "runtime error: %s\nbacktrace:\n", e.Message)
	for _, f := range e.Frames {
		fmt.Fprintf(&b, "    %s in %s (module %s)\n", f.Position, f.FunctionName, f.ModuleName)
	}
	return strings.TrimRight(b.String(), "\n")
}

// newRuntimeError constructs a RuntimeError with a full backtrace
// snapshot: frame and every one of its ancestors, innermost first.
func newRuntimeError(frame *Stackframe, format string, args ...any) *RuntimeError {
	var frames []Frame
	for f := frame; f != nil; f = f.parent {
		frames = append(frames, f.snapshot())
	}
	return &RuntimeError{
		Message: fmt.Sprintf(format, args...),
		Frames:  frames,
	}
}

// wrapModuleError wraps an underlying failure with the path that was
// being loaded when it occurred, the way original_source's initModule
// wraps nested RuntimeErrors and parse failures with the importing
// path. Uses github.com/pkg/errors so the original cause survives
// under errors.Cause/errors.Unwrap for callers that want it.
func wrapModuleError(path string, err error) error {
	return errors.Wrapf(err, "failed to load module at %q", path)
}
