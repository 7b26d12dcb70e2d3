// location.go — call-site resolution for xgx-trap events.
//
// Design goals:
//   - Interop & correctness: use runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - Minimal cost: events carry exactly ONE resolved frame — the report call
//     site — not a full stack. Interception is a control-flow tool, not a
//     debugger; a single frame answers "who reported this" cheaply.
//   - Minimal policy: the zero Frame means "unknown"; synthesized events may
//     leave it unset.
package xgxtrap

import (
	"runtime"
)

// Frame represents the single call site attached to an event.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// IsZero reports whether the frame carries no location (unresolved).
func (f Frame) IsZero() bool {
	return f == Frame{}
}

// callerFrame resolves the frame 'skip' levels above the caller of
// callerFrame.
//
// Skip model for a typical chain:
//
//	Report → NewEvent → callerFrame → runtime.Callers
//
// Internally we add +2 (runtime.Callers itself plus callerFrame) so that
// skip=0 resolves to callerFrame's direct caller; each helper in between
// adds +1 for itself.
func callerFrame(skip int) Frame {
	var pc [1]uintptr
	n := runtime.Callers(skip+2, pc[:])
	if n == 0 {
		return Frame{}
	}
	// CallersFrames rather than FuncForPC so inlined calls resolve correctly.
	fr, _ := runtime.CallersFrames(pc[:n]).Next()
	return Frame{
		PC:       fr.PC,
		File:     fr.File,
		Line:     fr.Line,
		Function: fr.Function,
	}
}
