// Package diag implements the single error-reporting sink shared by the
// compiler and the object model: an occurred flag, an internal/external
// distinction, the reporter's source location, and a formatted message.
package diag

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// inlineBufSize mirrors the fixed-size message buffer of the sink this
// package is modeled on: short messages (the overwhelming majority) never
// touch the heap for their formatted text beyond the string itself, and
// Truncated reports when a message would have overflowed a buffer of this
// size in that design.
const inlineBufSize = 256

// Sink accumulates at most one error. A second Report call on a sink that
// has already recorded one is forbidden and panics, matching the
// assert-based "no double report" contract it's modeled on.
type Sink struct {
	Occurred bool
	Internal bool

	File string
	Func string
	Line int

	SrcOffset int
	SrcLength int

	message   string
	truncated bool
}

// NewSink returns a zero-initialized sink, ready to receive at most one
// report.
func NewSink() *Sink {
	return &Sink{}
}

// Reset clears the sink so it can be reused.
func (s *Sink) Reset() {
	*s = Sink{}
}

// Report records an external (source-level) error at the given source
// range. Panics if the sink already carries an error.
func (s *Sink) Report(srcOffset, srcLength int, format string, args ...interface{}) {
	s.report(false, srcOffset, srcLength, fmt.Sprintf(format, args...))
}

// ReportInternal records an internal error (out-of-memory, a post-
// finalization invariant violation, or any other "should not happen"
// condition). The error is wrapped with github.com/pkg/errors so a stack
// trace is captured at the point of origin, since internal errors are
// exactly the class of bug that's otherwise hard to track down after the
// fact.
func (s *Sink) ReportInternal(srcOffset, srcLength int, err error) {
	wrapped := errors.WithStack(err)
	s.report(true, srcOffset, srcLength, fmt.Sprintf("%+v", wrapped))
}

func (s *Sink) report(internal bool, srcOffset, srcLength int, message string) {
	if s.Occurred {
		panic("diag: second report on a sink that already has an error")
	}

	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "unknown", 0
	}
	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}

	s.Occurred = true
	s.Internal = internal
	s.File = file
	s.Func = funcName
	s.Line = line
	s.SrcOffset = srcOffset
	s.SrcLength = srcLength
	s.message = message
	s.truncated = len(message) > inlineBufSize
}

// Message returns the formatted error message, ready to print.
func (s *Sink) Message() string { return s.message }

// Truncated reports whether the message exceeded the sink's nominal inline
// buffer size.
func (s *Sink) Truncated() bool { return s.truncated }

func (s *Sink) Error() string {
	if !s.Occurred {
		return ""
	}
	kind := "error"
	if s.Internal {
		kind = "internal error"
	}
	return fmt.Sprintf("%s: %s (at %s:%d, offset %d+%d)", kind, s.message, s.Func, s.Line, s.SrcOffset, s.SrcLength)
}
