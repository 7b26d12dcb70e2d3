// format_test.go — verification of fmt.Formatter behavior for Event and
// InvalidArgumentError.
package xgxtrap

import (
	"fmt"
	"strings"
	"testing"
)

func TestEventFormat_Concise(t *testing.T) {
	t.Parallel()

	ev := Event{Severity: SeverityError, Message: "boom"}

	if got := fmt.Sprintf("%v", ev); got != "error: boom" {
		t.Fatalf("%%v: want=%q got=%q", "error: boom", got)
	}
	if got := fmt.Sprintf("%s", ev); got != "error: boom" {
		t.Fatalf("%%s: want=%q got=%q", "error: boom", got)
	}
	if got := fmt.Sprintf("%q", ev); got != `"error: boom"` {
		t.Fatalf("%%q: want=%q got=%q", `"error: boom"`, got)
	}
}

func TestEventFormat_ConciseDegenerateForms(t *testing.T) {
	t.Parallel()

	t.Run("no_severity", func(t *testing.T) {
		ev := Event{Message: "boom"}
		if got := ev.String(); got != "boom" {
			t.Fatalf("want=%q got=%q", "boom", got)
		}
	})
	t.Run("no_message", func(t *testing.T) {
		ev := Event{Severity: SeverityWarning}
		if got := ev.String(); got != "warning" {
			t.Fatalf("want=%q got=%q", "warning", got)
		}
	})
}

func TestEventFormat_Verbose(t *testing.T) {
	t.Parallel()

	ev := NewEvent(SeverityWarning, "careful", "k1", "v1", "k2", 2)
	out := fmt.Sprintf("%+v", ev)

	if !strings.Contains(out, `severity=warning msg="careful"`) {
		t.Fatalf("%%+v missing header: %q", out)
	}
	if !strings.Contains(out, "\nat: ") || !strings.Contains(out, "format_test.go:") {
		t.Fatalf("%%+v missing location: %q", out)
	}
	if !strings.Contains(out, "\nctx: k1=v1 k2=2") {
		t.Fatalf("%%+v missing ordered context: %q", out)
	}
}

func TestEventFormat_VerboseOmitsEmptySections(t *testing.T) {
	t.Parallel()

	ev := Event{Severity: SeverityError, Message: "boom"}
	out := fmt.Sprintf("%+v", ev)
	if strings.Contains(out, "\nat:") || strings.Contains(out, "\nctx:") {
		t.Fatalf("%%+v should omit empty location/context: %q", out)
	}
	if out != `severity=error msg="boom"` {
		t.Fatalf("%%+v compact form: got %q", out)
	}
}

func TestInvalidArgumentErrorFormat(t *testing.T) {
	t.Parallel()

	err := &InvalidArgumentError{Param: "generator", Reason: "not a function"}

	if got := fmt.Sprintf("%v", err); got != "invalid generator: not a function" {
		t.Fatalf("%%v: got %q", got)
	}
	if got := fmt.Sprintf("%+v", err); got != `invalid argument param=generator reason="not a function"` {
		t.Fatalf("%%+v: got %q", got)
	}
	if got := fmt.Sprintf("%q", err); got != `"invalid generator: not a function"` {
		t.Fatalf("%%q: got %q", got)
	}

	t.Run("no_reason", func(t *testing.T) {
		e := &InvalidArgumentError{Param: "recovery"}
		if got := e.Error(); got != "invalid recovery" {
			t.Fatalf("Error(): got %q", got)
		}
	})
}
