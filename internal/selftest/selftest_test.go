package selftest

import (
	"errors"
	"strings"
	"testing"
)

func TestRunPasses(t *testing.T) {
	var out, errOut strings.Builder
	if err := Run(&out, &errOut); err != nil {
		t.Fatalf("expected all checks to pass, got %v\noutput:\n%s%s", err, out.String(), errOut.String())
	}
	report := out.String()
	if !strings.Contains(report, "all 9 checks passed") {
		t.Fatalf("expected summary line, got:\n%s", report)
	}
	if got := strings.Count(report, "ok   "); got != 9 {
		t.Fatalf("expected 9 ok lines, got %d:\n%s", got, report)
	}
	if errOut.Len() != 0 {
		t.Fatalf("expected empty failure stream, got:\n%s", errOut.String())
	}
}

func TestRunRoutesFailureDetail(t *testing.T) {
	var out, errOut strings.Builder
	cs := []check{
		{"stays green", func() error { return nil }},
		{"goes red", func() error { return errors.New("boom") }},
	}
	err := run(&out, &errOut, cs)
	if err == nil || err.Error() != "1 of 2 checks failed" {
		t.Fatalf("expected aggregate failure, got %v", err)
	}
	if !strings.Contains(errOut.String(), "FAIL goes red: boom") {
		t.Fatalf("expected failure detail on the error stream, got:\n%s", errOut.String())
	}
	report := out.String()
	if !strings.Contains(report, "ok   stays green") {
		t.Fatalf("expected passing line on the report stream, got:\n%s", report)
	}
	if strings.Contains(report, "FAIL") || strings.Contains(report, "checks passed") {
		t.Fatalf("expected no failure or summary lines on the report stream, got:\n%s", report)
	}
}

func TestRunPropagatesWriteError(t *testing.T) {
	werr := errors.New("closed pipe")
	var errOut strings.Builder
	err := run(brokenWriter{werr}, &errOut, []check{{"stays green", func() error { return nil }}})
	if err != werr {
		t.Fatalf("expected write error propagated, got %v", err)
	}
}

type brokenWriter struct{ err error }

func (w brokenWriter) Write([]byte) (int, error) { return 0, w.err }
