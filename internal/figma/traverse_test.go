package figma_test

import (
	"errors"
	"testing"

	"github.com/barun-bash/uigen/internal/figma"
	ft "github.com/barun-bash/uigen/internal/figma/figmatest"
)

// ---------------------------------------------------------------------------
// colors
// ---------------------------------------------------------------------------

func TestColorToHex(t *testing.T) {
	tests := []struct {
		color figma.Color
		want  string
	}{
		{figma.Color{R: 1, G: 0, B: 0, A: 1}, "#FF0000"},
		{figma.Color{R: 0, G: 1, B: 0, A: 1}, "#00FF00"},
		{figma.Color{R: 0, G: 0, B: 1, A: 1}, "#0000FF"},
		{figma.Color{R: 0, G: 0, B: 0, A: 1}, "#000000"},
		{figma.Color{R: 1, G: 1, B: 1, A: 1}, "#FFFFFF"},
		{figma.Color{R: 0.231, G: 0.510, B: 0.965, A: 1}, "#3B82F6"},
		{figma.Color{R: 1.4, G: -0.2, B: 0, A: 1}, "#FF0000"}, // out of range is clamped
	}
	for _, tt := range tests {
		if got := tt.color.ToHex(); got != tt.want {
			t.Errorf("Color{%v, %v, %v}.ToHex() = %q, want %q",
				tt.color.R, tt.color.G, tt.color.B, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// FindRoot
// ---------------------------------------------------------------------------

func TestFindRoot(t *testing.T) {
	login := ft.Frame("Login", ft.Text("Title", "Welcome"))

	tests := []struct {
		name    string
		input   *figma.Node
		want    *figma.Node
		wantErr error
	}{
		{"nil", nil, nil, figma.ErrNilNode},
		{"document", ft.Document(login), login, nil},
		{"canvas", ft.Node(figma.NodeCanvas, "Page", login), login, nil},
		{"bare frame", login, login, nil},
		{"empty document", ft.Node(figma.NodeDocument, "Doc"), nil, figma.ErrEmptyDocument},
		{"canvas without frames", ft.Node(figma.NodeCanvas, "Page", ft.Text("Stray", "x")), nil, figma.ErrNoRoot},
		{"hidden frame skipped", ft.Node(figma.NodeCanvas, "Page", ft.Hidden(ft.Frame("Draft")), login), login, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := figma.FindRoot(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FindRoot error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FindRoot = %q, want %q", got.Name, tt.want.Name)
			}
		})
	}
}

func TestFindRootUnwrapsBareWrapper(t *testing.T) {
	content := ft.Filled(ft.Frame("Content", ft.Text("T", "Hi")), ft.White)
	wrapper := ft.Frame("Desktop", content)

	got, err := figma.FindRoot(ft.Document(wrapper))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != content {
		t.Errorf("FindRoot = %q, want the styled inner frame", got.Name)
	}

	// A styled wrapper is meaningful on its own.
	styled := ft.Filled(ft.Frame("Desktop", content), ft.White)
	got, _ = figma.FindRoot(ft.Document(styled))
	if got != styled {
		t.Errorf("FindRoot = %q, want the styled wrapper", got.Name)
	}
}

// ---------------------------------------------------------------------------
// search helpers
// ---------------------------------------------------------------------------

func sampleTree() (root, button, label *figma.Node) {
	label = ft.Text("Label", "Log in")
	button = ft.Frame("Button", label)
	root = ft.Frame("Screen",
		ft.Text("Heading", "Welcome back"),
		button,
		ft.Hidden(ft.Frame("Hidden", ft.Text("Ghost", "boo"))),
	)
	return root, button, label
}

func TestFlatten(t *testing.T) {
	root, _, _ := sampleTree()

	if got := len(figma.Flatten(root, false)); got != 4 {
		t.Errorf("Flatten(visible) = %d nodes, want 4", got)
	}
	if got := len(figma.Flatten(root, true)); got != 6 {
		t.Errorf("Flatten(all) = %d nodes, want 6", got)
	}
	if got := figma.Flatten(root, false)[0]; got != root {
		t.Errorf("Flatten should start with the root, got %q", got.Name)
	}
}

func TestFindByType(t *testing.T) {
	root, _, _ := sampleTree()
	texts := figma.FindByType(root, figma.NodeText)
	if len(texts) != 3 {
		t.Errorf("FindByType(TEXT) = %d, want 3", len(texts))
	}
}

func TestFindByText(t *testing.T) {
	root, _, label := sampleTree()
	got := figma.FindByText(root, "LOG IN")
	if len(got) != 1 || got[0] != label {
		t.Errorf("FindByText(LOG IN) = %v, want the button label", got)
	}
	if len(figma.FindByText(root, "missing")) != 0 {
		t.Error("FindByText(missing) should be empty")
	}
}

func TestFindParent(t *testing.T) {
	root, button, label := sampleTree()
	if got := figma.FindParent(root, label); got != button {
		t.Errorf("FindParent(label) = %v, want button", got)
	}
	if got := figma.FindParent(root, button); got != root {
		t.Errorf("FindParent(button) = %v, want root", got)
	}
	if got := figma.FindParent(root, root); got != nil {
		t.Errorf("FindParent(root) = %v, want nil", got)
	}
}

func TestTextContent(t *testing.T) {
	root, _, _ := sampleTree()
	if got := figma.TextContent(root); got != "Welcome back Log in" {
		t.Errorf("TextContent = %q, want %q", got, "Welcome back Log in")
	}
	if figma.TextContent(nil) != "" {
		t.Error("TextContent(nil) should return empty string")
	}
}

func TestParseNodeType(t *testing.T) {
	tests := []struct {
		in   string
		want figma.NodeType
	}{
		{"FRAME", figma.NodeFrame},
		{"TEXT", figma.NodeText},
		{"INSTANCE", figma.NodeInstance},
		{"STICKY", figma.NodeUnknown},
		{"", figma.NodeUnknown},
	}
	for _, tt := range tests {
		if got := figma.ParseNodeType(tt.in); got != tt.want {
			t.Errorf("ParseNodeType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if figma.NodeFrame.String() != "FRAME" {
		t.Errorf("NodeFrame.String() = %q", figma.NodeFrame.String())
	}
}
