// integration_test.go — end-to-end interception scenarios across the public
// surface: parsing fallbacks, multi-event runs, restore discipline.
//
// These tests exercise the process-wide handler slot and therefore do not run
// in parallel.
package xgxtrap

import (
	"errors"
	"strconv"
	"testing"
)

// The canonical fallback pair: parse a previously-serialized value, supply a
// literal when the input is garbage.
func TestScenario_ParseGarbageFallsBackToLiteral(t *testing.T) {
	v, err := Call(
		func(s string) (int, error) { return strconv.Atoi(s) },
		"foo",
		func(Event) int { return 123 },
	)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if v != 123 {
		t.Fatalf("garbage input should yield the recovery literal: want=123 got=%v", v)
	}
}

func TestScenario_ParseValidLiteralNeverRecovers(t *testing.T) {
	recoveryCalls := 0
	v, err := Call(
		func(s string) (string, error) { return strconv.Unquote(s) },
		`"foo"`,
		func(Event) string { recoveryCalls++; return "unused" },
	)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if v != "foo" {
		t.Fatalf("want the parsed string %q, got %v", "foo", v)
	}
	if recoveryCalls != 0 {
		t.Fatalf("recovery must not run when the generator succeeds")
	}
}

// A recovery that refuses: the refusal surfaces, the parsed value is lost,
// and the ambient slot is intact.
func TestScenario_RecoveryRefusal(t *testing.T) {
	before := CurrentHandler()
	refusal := errors.New("no fallback available")

	_, err := Call(
		func(s string) (int, error) { return strconv.Atoi(s) },
		"foo",
		func(Event) (int, error) { return 0, refusal },
	)
	if !errors.Is(err, refusal) {
		t.Fatalf("the refusal must surface from Call, got %v", err)
	}
	if CurrentHandler() != before {
		t.Fatalf("handler not restored after recovery refusal")
	}
}

// A reusable interceptor applied over a batch: per-invocation capture records
// must not bleed state into each other.
func TestScenario_BatchParsingWithSharedInterceptor(t *testing.T) {
	it, err := New(
		func(s string) (int, error) { return strconv.Atoi(s) },
		func(Event) int { return -1 },
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	inputs := []string{"10", "foo", "30", "", "50"}
	want := []int{10, -1, 30, -1, 50}

	for i, in := range inputs {
		v, err := it.Invoke(in)
		if err != nil {
			t.Fatalf("Invoke(%q): %v", in, err)
		}
		if v != want[i] {
			t.Fatalf("Invoke(%q): want=%d got=%v", in, want[i], v)
		}
	}
}

// Mixed signaling: explicit Reports and a trailing error in the same run all
// funnel through the same sink, in order, and the last one decides the value.
func TestScenario_MixedReportsAndTrailingError(t *testing.T) {
	it, err := New(
		func() error {
			Report(SeverityWarning, "attempt one failed", "attempt", 1)
			Report(SeverityWarning, "attempt two failed", "attempt", 2)
			return errors.New("all attempts failed")
		},
		func(ev Event) string { return ev.Message },
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	v, evs, ierr := it.InvokeEvents()
	if ierr != nil {
		t.Fatalf("InvokeEvents: %v", ierr)
	}
	if v != "all attempts failed" {
		t.Fatalf("trailing error fires last and should win: got %v", v)
	}
	if len(evs) != 3 {
		t.Fatalf("want 3 events, got %d: %v", len(evs), evs)
	}
	if evs[0].Message != "attempt one failed" || evs[0].Severity != SeverityWarning {
		t.Fatalf("first event mismatch: %v", evs[0])
	}
	if evs[2].Severity != SeverityError {
		t.Fatalf("converted trailing error should be SeverityError: %v", evs[2])
	}
	if got := evs[1].Context()["attempt"]; got != 2 {
		t.Fatalf("event context lost in transit: %v", evs[1].Context())
	}
}

// Interception nests: an inner Call inside a generator must restore the
// outer sink, so the outer scope keeps observing reports after the inner
// scope ends.
func TestScenario_NestedInterception(t *testing.T) {
	before := CurrentHandler()

	v, err := Call(
		func() string {
			inner, ierr := Call(
				func() (int, error) { return 0, errors.New("inner boom") },
				func(Event) int { return 99 },
			)
			if ierr != nil || inner != 99 {
				t.Fatalf("inner Call: (%v,%v)", inner, ierr)
			}
			Report(SeverityError, "outer boom")
			return "generator value"
		},
		func(ev Event) string { return "outer recovered: " + ev.Message },
	)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if v != "outer recovered: outer boom" {
		t.Fatalf("outer sink should have observed the post-nesting report: got %v", v)
	}
	if CurrentHandler() != before {
		t.Fatalf("nesting broke restore discipline")
	}
}

// Events reported with no interception scope go to whatever handler the
// process installed, untouched by this package's machinery.
func TestScenario_UnscopedReportReachesInstalledHandler(t *testing.T) {
	h := &memoHandler{verdict: true}
	prev := SwapHandler(h)
	defer SwapHandler(prev)

	Report(SeverityNotice, "just a note")

	if len(h.events) != 1 || h.events[0].Message != "just a note" {
		t.Fatalf("unscoped report mishandled: %v", h.events)
	}
}
