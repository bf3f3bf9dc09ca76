package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/barun-bash/uigen/internal/pipeline"
)

func TestReporterPlainLines(t *testing.T) {
	defer func(old bool) { ColorEnabled = old }(ColorEnabled)
	ColorEnabled = false

	var buf bytes.Buffer
	r := NewReporter(&buf, "login.json", false)
	r.Report(pipeline.Progress{Phase: pipeline.PhaseBuilding, Step: "Building component tree", Percent: 30, Current: "Login"})
	r.Report(pipeline.Progress{Phase: pipeline.PhaseComplete, Step: "Done", Percent: 100, Current: "Login"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if want := "login.json [██████░░░░░░░░░░░░░░]  30% Building component tree (Login)"; strings.TrimSpace(lines[0]) != want {
		t.Errorf("line 0 = %q, want %q", strings.TrimSpace(lines[0]), want)
	}
	if !strings.HasSuffix(lines[1], "100% Done") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if r.Last().Phase != pipeline.PhaseComplete {
		t.Errorf("Last() = %v", r.Last())
	}
}

func TestReporterFail(t *testing.T) {
	defer func(old bool) { ColorEnabled = old }(ColorEnabled)
	ColorEnabled = false

	var buf bytes.Buffer
	r := NewReporter(&buf, "broken.json", true)
	r.Fail("no screen frame found")
	if got := buf.String(); got != "  ✗ broken.json: no screen frame found\n" {
		t.Errorf("got %q", got)
	}
}

func TestReporterClampsPercent(t *testing.T) {
	defer func(old bool) { ColorEnabled = old }(ColorEnabled)
	ColorEnabled = false

	r := NewReporter(&bytes.Buffer{}, "x", true)
	if got := r.line(pipeline.Progress{Percent: 140, Step: "s"}); !strings.Contains(got, "100%") {
		t.Errorf("expected clamp to 100%%, got %q", got)
	}
}
