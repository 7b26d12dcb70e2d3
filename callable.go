// callable.go — reflected function values for generator and recovery.
//
// Scope (tiny core):
//   • Validate, at construction time, that what the caller handed us is
//     actually a function with a usable shape (fail-fast InvalidArgument
//     naming the offending parameter).
//   • Invoke generators of ANY signature with caller-supplied positional
//     arguments (variadic generators included), binding args with the same
//     assignability rules reflect.Call enforces — but surfaced as a
//     configuration error instead of a panic.
//
// Result convention (shared by generator and recovery):
//   • If the function's LAST result is of type error, it is split off as the
//     error channel; the value channel is then the first remaining result
//     (or nil if none).
//   • Otherwise the first result (or nil for none) is the value.
package xgxtrap

import (
	"reflect"
)

// errorType is the reflect.Type of the error interface.
var errorType = reflect.TypeOf((*error)(nil)).Elem()

// eventType is the reflect.Type of Event, for recovery signature checks.
var eventType = reflect.TypeOf(Event{})

// generatorFunc wraps an arbitrary function so the Interceptor can call it
// with []any positional arguments.
type generatorFunc struct {
	fn reflect.Value
}

// adaptGenerator validates that fn is a function and wraps it.
func adaptGenerator(fn any) (generatorFunc, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return generatorFunc{}, invalidArg("generator", "not a function")
	}
	if v.IsNil() {
		return generatorFunc{}, invalidArg("generator", "nil function")
	}
	return generatorFunc{fn: v}, nil
}

// bind converts positional arguments into reflect call values, checking
// arity and assignability against the generator's signature. A mismatch is
// a configuration error ("arguments"), reported before any handler swap.
func (g generatorFunc) bind(args []any) ([]reflect.Value, error) {
	t := g.fn.Type()
	n := t.NumIn()
	if t.IsVariadic() {
		if len(args) < n-1 {
			return nil, invalidArg("arguments", "too few for variadic generator")
		}
	} else if len(args) != n {
		return nil, invalidArg("arguments", "arity mismatch")
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		want := t.In(min(i, n-1))
		if t.IsVariadic() && i >= n-1 {
			want = want.Elem()
		}
		if a == nil {
			// Untyped nil binds only to nilable parameter types; the zero
			// value of the parameter type is what reflect.Call expects.
			switch want.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface,
				reflect.Map, reflect.Pointer, reflect.Slice:
				in[i] = reflect.Zero(want)
			default:
				return nil, invalidArg("arguments", "nil for non-nilable parameter")
			}
			continue
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(want) {
			return nil, invalidArg("arguments", "type mismatch")
		}
		in[i] = av
	}
	return in, nil
}

// invoke calls the generator with pre-bound arguments and splits the results
// into the value and (trailing) error channels. Panics propagate to the
// caller untouched.
func (g generatorFunc) invoke(in []reflect.Value) (any, error) {
	return splitResults(g.fn.Call(in))
}

// recoveryFunc wraps the caller's recovery function. Accepted shapes:
//
//	func() T            func(Event) T
//	func() (T, error)   func(Event) (T, error)
//	func()              func(Event)
//	func() error        func(Event) error
//
// Anything else fails construction with InvalidArgument("recovery").
type recoveryFunc struct {
	fn         reflect.Value
	wantsEvent bool
}

// adaptRecovery validates fn against the accepted recovery shapes.
func adaptRecovery(fn any) (recoveryFunc, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return recoveryFunc{}, invalidArg("recovery", "not a function")
	}
	if v.IsNil() {
		return recoveryFunc{}, invalidArg("recovery", "nil function")
	}
	t := v.Type()
	if t.IsVariadic() || t.NumIn() > 1 {
		return recoveryFunc{}, invalidArg("recovery", "must take no argument or a single Event")
	}
	wantsEvent := t.NumIn() == 1
	if wantsEvent && t.In(0) != eventType {
		return recoveryFunc{}, invalidArg("recovery", "argument must be Event")
	}
	if t.NumOut() > 2 {
		return recoveryFunc{}, invalidArg("recovery", "too many results")
	}
	if t.NumOut() == 2 && t.Out(1) != errorType {
		return recoveryFunc{}, invalidArg("recovery", "second result must be error")
	}
	return recoveryFunc{fn: v, wantsEvent: wantsEvent}, nil
}

// call invokes recovery for one event. A non-nil returned error is the
// "recovery raises" case the Interceptor propagates; a panic propagates
// directly from here.
func (r recoveryFunc) call(ev Event) (any, error) {
	var in []reflect.Value
	if r.wantsEvent {
		in = []reflect.Value{reflect.ValueOf(ev)}
	}
	return splitResults(r.fn.Call(in))
}

// splitResults applies the shared result convention: a trailing error result
// becomes the error channel; the first remaining result (if any) the value.
func splitResults(out []reflect.Value) (any, error) {
	if len(out) == 0 {
		return nil, nil
	}
	var err error
	last := out[len(out)-1]
	if last.Type() == errorType {
		if !last.IsNil() {
			err = last.Interface().(error)
		}
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return nil, err
	}
	return out[0].Interface(), err
}
