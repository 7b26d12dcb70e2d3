// handler.go — the ambient error-reporting mechanism for xgx-trap.
//
// Scope:
//   • One process-wide slot holding the current Handler.
//   • Report raises an Event through whatever handler is current.
//   • SwapHandler installs a handler and returns the previous one, so callers
//     (and the Interceptor) can save-install-restore with strict nesting.
//
// Discipline:
//   • The slot itself has no inherent concurrency safety beyond the mutex
//     guarding the swap; the save-install-restore pair around a generator
//     call must stay strictly nested. Interceptor enforces that with a
//     deferred, idempotent restore.
//   • A handler returning true means "handled": the event was consumed and
//     default treatment is suppressed. The default handler returns false.
package xgxtrap

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// A Handler processes events raised through the ambient mechanism.
// Handle returns true when the event was consumed (suppressing any default
// treatment) and false to report it unhandled.
type Handler interface {
	Handle(ev Event) bool
}

// The HandlerFunc type is an adapter to allow the use of ordinary functions
// as event handlers. If f is a function with the appropriate signature,
// HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(ev Event) bool

// Handle calls f(ev).
func (f HandlerFunc) Handle(ev Event) bool { return f(ev) }

// Discard is a handler that consumes every event without acting on it.
var Discard Handler = HandlerFunc(func(Event) bool { return true })

// defaultHandler writes the concise event form to a writer and reports the
// event unhandled. It is what an unattended warning gets: visible, ignored.
type defaultHandler struct {
	w io.Writer
}

func (d defaultHandler) Handle(ev Event) bool {
	// ignore write errors on the reporting path
	_, _ = fmt.Fprintf(d.w, "%v\n", ev)
	return false
}

// handlerSlot is the process-wide "current handler" register.
var handlerSlot = struct {
	mu sync.Mutex
	h  Handler
}{h: defaultHandler{w: os.Stderr}}

// CurrentHandler returns the handler currently installed in the ambient slot.
func CurrentHandler() Handler {
	handlerSlot.mu.Lock()
	defer handlerSlot.mu.Unlock()
	return handlerSlot.h
}

// SwapHandler installs h as the current handler and returns the previously
// installed one. Passing nil restores the built-in default (stderr) handler.
// Callers that install MUST restore the returned handler when their scope
// ends; Interceptor.Invoke does this unconditionally.
func SwapHandler(h Handler) (prev Handler) {
	if h == nil {
		h = defaultHandler{w: os.Stderr}
	}
	handlerSlot.mu.Lock()
	defer handlerSlot.mu.Unlock()
	prev = handlerSlot.h
	handlerSlot.h = h
	return prev
}

// Report raises an event through the current handler: severity, message, and
// optional key-value context (see ctxFromKV for the kv rules). The event's
// Location is the call site of Report. It returns the handler's verdict:
// true when the event was consumed.
func Report(sev Severity, msg string, kv ...any) bool {
	ev := Event{
		Severity: sev,
		Message:  msg,
		Location: callerFrame(1), // skip Report itself
		ctx:      ctxFromKV(kv...),
	}
	return dispatch(ev)
}

// dispatch hands a fully-formed event to the current handler.
func dispatch(ev Event) bool {
	return CurrentHandler().Handle(ev)
}

// scope is the save-install-restore guard around one generator call.
// restore is idempotent so it can run both deferred (panic path) and
// explicitly (normal path) without double-swapping.
type scope struct {
	prev Handler
	done bool
}

// installScope swaps h into the ambient slot and remembers the previous
// handler for restore.
func installScope(h Handler) *scope {
	return &scope{prev: SwapHandler(h)}
}

// restore reinstates the handler that was current when the scope was
// installed. Safe to call more than once; only the first call swaps.
func (s *scope) restore() {
	if s.done {
		return
	}
	s.done = true
	SwapHandler(s.prev)
}

var _ Handler = HandlerFunc(nil)
var _ Handler = defaultHandler{}
