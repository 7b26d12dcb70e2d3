// call.go — one-shot entry point: generator, args..., recovery last.
package xgxtrap

// Call runs generator once under interception: the variadic tail supplies the
// generator's positional arguments, and the FINAL element must be the
// recovery function.
//
//	v, err := xgxtrap.Call(parse, "foo", func(ev Event) int { return 123 })
//
// Supplying no recovery (empty tail), a non-function generator, or a
// non-function final element fails with an InvalidArgumentError — two
// callables are the minimum. Semantics are otherwise exactly those of
// (*Interceptor).Invoke.
func Call(generator any, argsThenRecovery ...any) (any, error) {
	if len(argsThenRecovery) == 0 {
		return nil, invalidArg("recovery", "missing (generator and recovery are both required)")
	}
	recovery := argsThenRecovery[len(argsThenRecovery)-1]
	args := argsThenRecovery[:len(argsThenRecovery)-1]

	it, err := New(generator, recovery)
	if err != nil {
		return nil, err
	}
	return it.Invoke(args...)
}
