package cli

import (
	"strings"
	"testing"
)

const sampleTSX = "export default function Login() {\n  return <main className=\"flex\" />;\n}\n"

func TestHighlightPlain(t *testing.T) {
	defer func(old bool) { ColorEnabled = old }(ColorEnabled)
	ColorEnabled = false

	if got := Highlight(sampleTSX); got != sampleTSX {
		t.Errorf("expected source unchanged, got %q", got)
	}
}

func TestHighlightColour(t *testing.T) {
	defer func(old bool) { ColorEnabled = old }(ColorEnabled)
	ColorEnabled = true

	got := Highlight(sampleTSX)
	if !strings.Contains(got, "\033[") {
		t.Error("expected ANSI escapes in highlighted output")
	}
	if !strings.Contains(got, "Login") {
		t.Error("expected identifiers to survive highlighting")
	}
}
