// event.go — the event value carried by the ambient reporting mechanism.
//
// Design:
//   • Internal context representation: append-only []Field (deterministic order).
//   • Events are values; once published to a handler they are never mutated.
//   • Public view for callers: copy-on-read map[string]any (Context) or an
//     ordered copy ([]Field via Fields).
//
// Rationale:
//   • Go map iteration order is unspecified; slice preserves insertion order.
//   • Handlers may retain events (capture records do); value semantics plus
//     fresh slices on construction keep retention safe without synchronization.
package xgxtrap

// Field represents a single contextual key-value pair attached to an event.
// Keys SHOULD be snake_case for consistency, but the core does not enforce it.
type Field struct {
	Key string
	Val any
}

// fields is the internal immutable representation of event context.
// Treat it as append-only; never modify elements in place once published.
type fields []Field

// emptyFields is a canonical empty context.
var emptyFields = make(fields, 0)

// Event is one error/warning-level occurrence raised through the ambient
// mechanism: what happened (Severity, Message), where (Location), and any
// structured detail the reporter attached (context fields).
type Event struct {
	Severity Severity
	Message  string

	// Location is the resolved call site of the report, when known.
	// The zero Frame means "unknown" (e.g., synthesized events).
	Location Frame

	ctx fields
}

// NewEvent builds an event from a severity, message, and variadic key-value
// context, resolving Location to the caller. See ctxFromKV for the kv rules.
func NewEvent(sev Severity, msg string, kv ...any) Event {
	return Event{
		Severity: sev,
		Message:  msg,
		Location: callerFrame(1), // skip NewEvent itself
		ctx:      ctxFromKV(kv...),
	}
}

// Context returns a NEW map built from the event's context fields
// (copy-on-read). Later duplicate keys overwrite earlier ones
// (last-write-wins). Returns nil for an empty context.
func (ev Event) Context() map[string]any {
	if len(ev.ctx) == 0 {
		return nil
	}
	m := make(map[string]any, len(ev.ctx))
	for _, f := range ev.ctx {
		m[f.Key] = f.Val
	}
	return m
}

// Fields returns an ordered defensive copy of the event's context fields.
func (ev Event) Fields() []Field {
	if len(ev.ctx) == 0 {
		return nil
	}
	out := make([]Field, len(ev.ctx))
	copy(out, ev.ctx)
	return out
}

// With returns a copy of the event with one extra context field appended.
// The receiver is not modified.
func (ev Event) With(key string, val any) Event {
	n := ev
	n.ctx = ctxCloneAppend(ev.ctx, Field{Key: key, Val: val})
	return n
}

// ctxCloneAppend returns a NEW slice with dst's contents followed by add.
// It always allocates a fresh backing array to avoid aliasing via append.
func ctxCloneAppend(dst fields, add ...Field) fields {
	n := len(dst)
	m := len(add)
	if m == 0 {
		if n == 0 {
			return emptyFields
		}
		out := make(fields, n)
		copy(out, dst)
		return out
	}
	out := make(fields, n+m)
	copy(out, dst)
	copy(out[n:], add)
	return out
}

// ctxFromKV parses a variadic list of key-value arguments into fields.
//
// Rules (normative):
//   • Pairs are read left-to-right as (key, value).
//   • Keys MUST be strings; a non-string “key” causes the ENTIRE PAIR to be
//     dropped (the key and its following value, if any). This avoids surprising
//     misalignment where a value becomes the next pair’s key.
//   • A trailing key with no value becomes (key, nil).
func ctxFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return emptyFields
	}
	out := make(fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			// Drop the entire pair (key and its following value, if any)
			// to prevent misalignment of subsequent pairs.
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
			i += 2
		} else {
			// Trailing key with no value → nil
			i++
		}
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return emptyFields
	}
	return out
}
