// invalid.go — configuration errors for xgx-trap core.
//
// Scope:
//   • One error category: InvalidArgument. A non-function generator or
//     recovery, a malformed recovery signature, or arguments that do not fit
//     the generator's signature.
//   • Fail-fast: these surface immediately and synchronously; the ambient
//     mechanism never sees them and the sink never suppresses them.
//
// Interop:
//   • errors.Is(err, ErrInvalidArgument) matches the category.
//   • errors.As(err, &*InvalidArgumentError) exposes Param and Reason.
package xgxtrap

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel every configuration error unwraps to.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports which parameter was invalid and why.
// Param is one of "generator", "recovery", or "arguments".
type InvalidArgumentError struct {
	Param  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Reason == "" {
		return "invalid " + e.Param
	}
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// Unwrap ties the typed error to the ErrInvalidArgument sentinel so
// errors.Is works across the category.
func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// invalidArg builds the one configuration error shape the core produces.
func invalidArg(param, reason string) error {
	return &InvalidArgumentError{Param: param, Reason: reason}
}

var _ error = (*InvalidArgumentError)(nil)
