// format.go — fmt.Formatter implementations for xgx-trap core.
//
// Behavior:
//
//	%s, %v   → concise string ("severity: message").
//	%+v      → verbose, structured multi-line format:
//	             severity=<severity> msg="<message>"
//	             at: funcA file.go:123
//	             ctx: key1=val1 key2=val2 ...
//	%q       → quoted concise string.
//
// Rationale:
//   - Keep core free of logging/JSON policy; only fmt formatting.
//   - Deterministic context order via []Field from event.go.
package xgxtrap

import (
	"fmt"
	"io"
)

// String returns the concise one-line form: "severity: message".
func (ev Event) String() string {
	if ev.Severity == "" {
		return ev.Message
	}
	if ev.Message == "" {
		return string(ev.Severity)
	}
	return string(ev.Severity) + ": " + ev.Message
}

// Format implements fmt.Formatter for Event.
func (ev Event) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, ev)
			return
		}
		_, _ = io.WriteString(s, ev.String())
	case 's':
		_, _ = io.WriteString(s, ev.String())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", ev.String())
	default:
		_, _ = io.WriteString(s, ev.String())
	}
}

// formatVerbose writes the structured multi-line event representation.
// Location and context sections are omitted when empty.
func formatVerbose(w io.Writer, ev Event) {
	if ev.Severity != "" {
		_, _ = fmt.Fprintf(w, "severity=%s ", ev.Severity)
	}
	// Always quote message for clarity (even if empty).
	_, _ = fmt.Fprintf(w, "msg=%q", ev.Message)

	if !ev.Location.IsZero() {
		_, _ = fmt.Fprintf(w, "\nat: %s %s:%d",
			ev.Location.Function, ev.Location.File, ev.Location.Line)
	}

	// Context (ordered, space-separated key=val)
	if len(ev.ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range ev.ctx {
			if f.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
			}
		}
	}
}

// Format implements fmt.Formatter for InvalidArgumentError.
//
//	%v, %s → Error()
//	%+v    → "invalid argument param=<param> reason=<reason>"
//	%q     → quoted Error()
func (e *InvalidArgumentError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "invalid argument param=%s reason=%q", e.Param, e.Reason)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}
