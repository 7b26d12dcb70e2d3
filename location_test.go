// location_test.go — verification of single-frame call-site resolution.
package xgxtrap

import (
	"strings"
	"testing"
)

func TestCallerFrame_ResolvesDirectCaller(t *testing.T) {
	t.Parallel()

	fr := callerFrame(0)
	if fr.IsZero() {
		t.Fatalf("expected a resolved frame")
	}
	if !strings.HasSuffix(fr.File, "location_test.go") {
		t.Fatalf("file: want suffix location_test.go, got %q", fr.File)
	}
	if !strings.Contains(fr.Function, "TestCallerFrame_ResolvesDirectCaller") {
		t.Fatalf("function: got %q", fr.Function)
	}
	if fr.Line <= 0 {
		t.Fatalf("line: want >0, got %d", fr.Line)
	}
}

func TestCallerFrame_SkipWalksUp(t *testing.T) {
	t.Parallel()

	// helper adds one frame; skip=1 from inside it should land back here.
	helper := func() Frame { return callerFrame(1) }
	fr := helper()
	if !strings.Contains(fr.Function, "TestCallerFrame_SkipWalksUp") {
		t.Fatalf("skip=1 should resolve the helper's caller, got %q", fr.Function)
	}
	if strings.Contains(fr.Function, ".func") {
		t.Fatalf("skip=1 resolved the closure itself, got %q", fr.Function)
	}
}

func TestFrame_IsZero(t *testing.T) {
	t.Parallel()

	var zero Frame
	if !zero.IsZero() {
		t.Fatalf("zero Frame should report IsZero")
	}
	if fr := callerFrame(0); fr.IsZero() {
		t.Fatalf("resolved frame should not report IsZero")
	}
}

func TestCallerFrame_ExcessiveSkipIsZero(t *testing.T) {
	t.Parallel()

	if fr := callerFrame(1 << 16); !fr.IsZero() {
		t.Fatalf("skip past the stack should yield the zero frame, got %+v", fr)
	}
}
