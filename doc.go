// doc.go — package documentation for xgx-trap
//
// Package xgxtrap provides a tiny, policy-free error-interception core: run a
// caller-supplied generator while the ambient error/warning reporting channel
// is redirected into a caller-supplied recovery function, whose return value
// becomes the overall result. It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter)
//   - Policy-free (no logging/retry/HTTP rules in core)
//
// # Model
//
// Three cooperating pieces:
//
//   - The ambient handler slot: a process-wide register holding the current
//     Handler. Report(severity, msg, kv...) raises an Event through it. The
//     default handler prints the concise form to stderr and reports the event
//     unhandled, which is what an unattended warning should do.
//   - The Interceptor: owns a generator (the operation to attempt) and a
//     recovery function. Invoke installs a per-call sink as the current
//     handler, runs the generator, restores the previous handler
//     unconditionally, and returns either the generator's own value or —
//     if any event fired — the recovery's value.
//   - The capture record: the transient per-invocation sink. It forwards each
//     event to recovery, marks itself invoked, and records recovery's result.
//     If the generator raises several events, recovery runs once per event
//     and the last result wins.
//
// # Raising events
//
// A generator signals failure two ways, both routed to the installed sink:
//
//   - Explicitly, by calling Report (or ReportError) during its execution.
//   - Implicitly, by returning a non-nil trailing error; Invoke converts it
//     into a SeverityError event.
//
// Either way the event never reaches the previously installed handler while
// the scope is active, and never surfaces to the caller as an error.
//
// # Error taxonomy
//
//   - Configuration errors (ErrInvalidArgument) — a non-function generator or
//     recovery, a malformed recovery signature, or arguments that do not fit
//     the generator. Fail fast, never suppressed.
//   - Suppressed operational errors — everything the generator reports while
//     the sink is installed. Converted into recovery's return value.
//   - Recovery errors — a non-nil error returned by recovery propagates out
//     of Invoke unmodified; the previous handler is restored first. A panic
//     in generator or recovery also propagates, with the handler restored.
//
// # Typical use
//
//	it, err := xgxtrap.New(
//	    func(s string) (int, error) { return strconv.Atoi(s) },
//	    func(ev xgxtrap.Event) int { return 123 },
//	)
//	if err != nil { ... }
//	v, err := it.Invoke("foo") // v == 123: Atoi failed, recovery supplied it
//
// Or the one-shot form, recovery last:
//
//	v, err := xgxtrap.Call(parse, "foo", func(ev xgxtrap.Event) int { return 123 })
//
// # Formatting
//
// Event and InvalidArgumentError implement fmt.Formatter:
//   - %v, %s → concise, single line
//   - %+v    → verbose, multi-line (severity, msg, location, ctx)
//   - %q     → quoted concise form
//
// # Minimal Surface, Clear Semantics
//
// The v1 surface is intentionally small:
//   - New / SetGenerator / SetRecovery / Invoke
//   - Call (one-shot entry point, recovery as final argument)
//   - Report / ReportError / EventFrom
//   - SwapHandler / CurrentHandler (the ambient mechanism itself)
//
// Adapters (slog bridges, testing harnesses) belong to sibling modules, not
// to the core.
package xgxtrap
