// report.go — bridges from arbitrary errors into the ambient mechanism.
//
// Purpose
//   - Let plain Go errors participate in interception without ceremony:
//     ReportError(err) raises err as a SeverityError event; EventFrom builds
//     the event without raising it.
//   - Preserve provenance: the event context records the root cause's dynamic
//     type, found by walking Unwrap chains (both Unwrap() error and
//     Unwrap() []error, so errors.Join trees are handled).
//
// Stays policy-free: no logging, no classification beyond the severity the
// caller picked.
package xgxtrap

import (
	"fmt"
)

// single/multi unwrap interfaces (stdlib-compatible)
type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// rootUnwrapDepth bounds the walk; error chains deeper than this are
// pathological and the partial root is still useful.
const rootUnwrapDepth = 64

// EventFrom converts an arbitrary error into an Event at the given severity.
// The message is err.Error(); Location is the call site of EventFrom; the
// context carries cause_type (dynamic type of the deepest cause along the
// first unwrap path). A nil err yields a zero-message event.
func EventFrom(err error, sev Severity) Event {
	return eventFromSkip(err, sev, 1)
}

// eventFromSkip is EventFrom with explicit caller-skip so internal callers
// (Invoke's trailing-error conversion) attribute the location to themselves.
func eventFromSkip(err error, sev Severity, skip int) Event {
	ev := Event{
		Severity: sev,
		Location: callerFrame(skip + 1),
		ctx:      emptyFields,
	}
	if err == nil {
		return ev
	}
	ev.Message = err.Error()
	root := rootCause(err)
	ev.ctx = ctxFromKV("cause_type", typeName(root))
	return ev
}

// ReportError raises err through the current handler at SeverityError.
// Returns false without dispatching when err is nil.
func ReportError(err error) bool {
	if err == nil {
		return false
	}
	return dispatch(eventFromSkip(err, SeverityError, 1))
}

// typeName reports the dynamic type of an error for the cause_type field.
func typeName(err error) string {
	return fmt.Sprintf("%T", err)
}

// rootCause returns the deepest error along the FIRST unwrap path: for
// Unwrap() error chains that is the conventional root; for multi-unwraps
// (errors.Join) it follows the first child, matching pre-order DFS's first
// leaf. Depth-bounded; never returns nil for non-nil input.
func rootCause(err error) error {
	for i := 0; i < rootUnwrapDepth; i++ {
		switch u := err.(type) {
		case singleUnwrapper:
			next := u.Unwrap()
			if next == nil {
				return err
			}
			err = next
		case multiUnwrapper:
			kids := u.Unwrap()
			if len(kids) == 0 || kids[0] == nil {
				return err
			}
			err = kids[0]
		default:
			return err
		}
	}
	return err
}
