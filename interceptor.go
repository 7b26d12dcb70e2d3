// interceptor.go — orchestration of one suppressed generator call.
//
// Control flow per Invoke:
//
//	bind args → new capture record → install sink → call generator →
//	restore previous handler → sink fired ? recovery's value : generator's
//
// Invariants:
//   • Both fields are validated callable at construction; setters re-validate.
//   • Exactly one handler install and one unconditional restore per Invoke,
//     on every exit path (normal return, recovery error, panic).
//   • Configuration errors (bad arguments) surface before any handler swap.
package xgxtrap

// Interceptor owns a generator (the operation to attempt) and a recovery
// function, and runs the generator with the ambient reporting mechanism
// redirected into the recovery.
//
// An Interceptor is immutable except through SetGenerator/SetRecovery and is
// safe to reuse across invocations; each Invoke gets a fresh capture record.
type Interceptor struct {
	gen generatorFunc
	rec recoveryFunc
}

// New constructs an Interceptor from a generator and a recovery function.
//
// generator may be any Go function; its positional arguments are supplied per
// Invoke. recovery must match one of the shapes documented on recoveryFunc
// (optionally taking the Event, optionally returning a trailing error).
// A non-function value for either fails immediately with an
// InvalidArgumentError naming the parameter.
func New(generator, recovery any) (*Interceptor, error) {
	g, err := adaptGenerator(generator)
	if err != nil {
		return nil, err
	}
	r, err := adaptRecovery(recovery)
	if err != nil {
		return nil, err
	}
	return &Interceptor{gen: g, rec: r}, nil
}

// SetGenerator replaces the generator, re-validating it. On error the
// previous generator is kept.
func (it *Interceptor) SetGenerator(generator any) error {
	g, err := adaptGenerator(generator)
	if err != nil {
		return err
	}
	it.gen = g
	return nil
}

// SetRecovery replaces the recovery function, re-validating it. On error the
// previous recovery is kept.
func (it *Interceptor) SetRecovery(recovery any) error {
	r, err := adaptRecovery(recovery)
	if err != nil {
		return err
	}
	it.rec = r
	return nil
}

// Invoke calls the generator with args while a fresh capture record is
// installed as the ambient handler.
//
// Result:
//   - Sink never fired → the generator's own value, nil error.
//   - Sink fired → recovery's value for the LAST event; if recovery returned
//     a non-nil error for that event, Invoke returns it instead (the
//     "recovery raises" case), previous handler restored first.
//
// The generator signals failure by calling Report (or ReportError) during
// execution, or by returning a non-nil trailing error, which Invoke converts
// into a SeverityError event and routes through the installed sink. Either
// way the event is suppressed: it never reaches the previously installed
// handler and never surfaces as Invoke's error.
//
// An argument list that does not fit the generator's signature returns an
// InvalidArgumentError ("arguments") before any handler swap. Panics in the
// generator or recovery propagate to the caller; the previous handler is
// still restored.
func (it *Interceptor) Invoke(args ...any) (any, error) {
	value, _, err := it.InvokeEvents(args...)
	return value, err
}

// InvokeEvents is Invoke plus the ordered events the sink observed, for
// callers that want the full report history rather than just the last
// outcome. A quiet run returns a nil event slice.
func (it *Interceptor) InvokeEvents(args ...any) (any, []Event, error) {
	in, err := it.gen.bind(args)
	if err != nil {
		return nil, nil, err
	}

	record := newCaptureRecord(it.rec)
	sc := installScope(record)
	defer sc.restore() // panic path; idempotent

	value, genErr := it.gen.invoke(in)
	if genErr != nil {
		// Trailing error → operational event through the ambient path, so
		// the sink observes it exactly like an explicit Report.
		dispatch(eventFromSkip(genErr, SeverityError, 1))
	}

	sc.restore() // end the suppressed scope before consulting the record

	if record.isInvoked() {
		if rerr := record.capturedErr(); rerr != nil {
			return nil, record.Events(), rerr
		}
		return record.capturedValue(), record.Events(), nil
	}
	return value, nil, nil
}
