// severity.go — minimal, reusable severity definitions for xgx-trap core.
//
// Intent:
//   - Provide a small set of widely useful, human-readable severities.
//   - Keep semantics open-ended: no logging/display policy in core.
//   - Allow projects to extend with their own severities without a central
//     registry.
//
// Conventions (documented, not enforced here):
//   - Severities are lowercase snake_case ASCII.
//   - Avoid the empty string for custom severities; it is never a built-in.
//   - Higher-level modules (e.g., a slog bridge) may map severities onto
//     their own levels; core attaches no policy.
package xgxtrap

// Severity classifies reported events into machine-readable categories.
//
// Severities are stringly-typed for stability across serialization boundaries
// and to avoid a central enum with breaking changes. Projects may define their
// own severities; the core does not reserve semantics beyond the rank order
// used by AtLeast.
type Severity string

// Built-in severities, most to least severe.
const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeverityNotice     Severity = "notice"
	SeverityDeprecated Severity = "deprecated"
)

// allBuiltinSeverities is the ordered set of severities the core ships with.
// Unexported to avoid exposing mutable slice identity to callers.
// Order is stable (most severe first) to minimize churn in docs/examples.
var allBuiltinSeverities = []Severity{
	SeverityError,
	SeverityWarning,
	SeverityNotice,
	SeverityDeprecated,
}

// severityRank provides O(1) membership checks and the ordering AtLeast uses.
// Declared via composite literal to avoid runtime init loops. Higher rank is
// more severe; custom severities rank below every built-in.
var severityRank = map[Severity]int{
	SeverityError:      4,
	SeverityWarning:    3,
	SeverityNotice:     2,
	SeverityDeprecated: 1,
}

// BuiltinSeverities returns a defensive copy of the built-in severities in a
// stable most-severe-first order.
func BuiltinSeverities() []Severity {
	out := make([]Severity, len(allBuiltinSeverities))
	copy(out, allBuiltinSeverities)
	return out
}

// IsBuiltin reports whether s is one of the built-in core severities.
// This is ergonomics-only; projects may define and use custom severities.
func (s Severity) IsBuiltin() bool {
	_, ok := severityRank[s]
	return ok
}

// AtLeast reports whether s is at least as severe as min.
// Custom severities (rank 0) are at least as severe only as other custom
// severities; comparisons against built-ins rank them below deprecated.
func (s Severity) AtLeast(min Severity) bool {
	return severityRank[s] >= severityRank[min]
}
