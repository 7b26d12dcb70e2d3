// predicates.go — minimal, stdlib-aligned predicates for xgx-trap core.
//
// Scope:
//   • Zero-policy helpers that answer common classification questions.
//   • Interop-first: use errors.Is / errors.As so traversal works with both
//     single Unwrap() error and multi Unwrap() []error (e.g., errors.Join).
//
// Out of scope (by design):
//   • Severity→level mapping for loggers, retry policy, display.
package xgxtrap

import (
	"errors"
)

// IsInvalidArgument reports whether err is (or wraps) a configuration error
// from this package.
func IsInvalidArgument(err error) bool {
	return err != nil && errors.Is(err, ErrInvalidArgument)
}

// ParamOf returns the offending parameter name ("generator", "recovery",
// "arguments") of the first InvalidArgumentError along err's chain, or ""
// if there is none.
func ParamOf(err error) string {
	if err == nil {
		return ""
	}
	var ia *InvalidArgumentError
	if errors.As(err, &ia) {
		return ia.Param
	}
	return ""
}

// IsError reports whether the event is at SeverityError.
func (ev Event) IsError() bool { return ev.Severity == SeverityError }

// IsWarning reports whether the event is at SeverityWarning.
func (ev Event) IsWarning() bool { return ev.Severity == SeverityWarning }
