package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barun-bash/uigen/internal/figma"
	ft "github.com/barun-bash/uigen/internal/figma/figmatest"
)

func TestDimensionToken(t *testing.T) {
	tests := []struct {
		px   float64
		want string
	}{
		{48, "w-12"},
		{16, "w-4"},
		{384, "w-96"},
		{418, "w-[418px]"},
		{47.999999, "w-12"},
		{12.5, "w-[12.5px]"},
	}
	for _, tt := range tests {
		if got := DimensionToken("w", tt.px); got != tt.want {
			t.Errorf("DimensionToken(w, %v) = %q, want %q", tt.px, got, tt.want)
		}
	}
}

// Every standard pixel value must always use its scale name.
func TestStandardDimensionsNeverFallBack(t *testing.T) {
	for px, name := range spacingScale {
		n := ft.Sized(ft.Frame("box"), px, px)
		if px == 0 {
			continue
		}
		s := Extract(n)
		assert.Contains(t, s.Classes, "w-"+name, "width %v", px)
		assert.Contains(t, s.Classes, "h-"+name, "height %v", px)
		assert.NotContains(t, s.Classes, "w-["+num(px)+"px]")
	}
}

func TestGapToken(t *testing.T) {
	tests := []struct {
		spacing float64
		want    string
	}{
		{2, "gap-1"}, {4, "gap-1"}, {6, "gap-2"}, {8, "gap-2"}, {12, "gap-3"},
		{13, "gap-4"}, {20, "gap-5"}, {24, "gap-6"}, {32, "gap-[32px]"},
	}
	for _, tt := range tests {
		if got := GapToken(tt.spacing); got != tt.want {
			t.Errorf("GapToken(%v) = %q, want %q", tt.spacing, got, tt.want)
		}
	}
}

func TestExtractSizingDirectivesCoexist(t *testing.T) {
	n := ft.Sized(ft.Frame("row"), 418, 48)
	n.SizingHorizontal = "FILL"
	n.SizingVertical = "HUG"

	s := Extract(n)
	assert.Equal(t, []string{"w-[418px]", "h-12", "w-full", "h-auto"}, s.Classes)
	assert.Equal(t, 418.0, s.Width)
}

func TestExtractPosition(t *testing.T) {
	n := ft.Frame("badge")
	n.Bounds = &figma.Rect{X: 10, Y: 24.5, Width: 20, Height: 20}
	s := Extract(n)
	assert.Equal(t, "absolute", s.Position)
	assert.Contains(t, s.Classes, "absolute")
	assert.Contains(t, s.Classes, "top-[24.5px]")
	assert.Contains(t, s.Classes, "left-[10px]")

	origin := Extract(ft.Sized(ft.Frame("box"), 20, 20))
	assert.Empty(t, origin.Position)
	assert.NotContains(t, origin.Classes, "absolute")
}

func TestExtractFlex(t *testing.T) {
	n := ft.Layout(ft.Frame("stack"), figma.LayoutVertical, 16)
	n.CounterAxis = "CENTER"
	n.PrimaryAxis = "SPACE_BETWEEN"

	s := Extract(n)
	assert.Equal(t, []string{"flex", "flex-col", "items-center", "justify-between", "gap-4"}, s.Classes)

	row := ft.Layout(ft.Frame("row"), figma.LayoutHorizontal, 0)
	row.CounterAxis = "STRETCH"
	assert.Equal(t, []string{"flex", "flex-row", "items-stretch"}, Extract(row).Classes)
}

func TestExtractBackground(t *testing.T) {
	s := Extract(ft.Filled(ft.Frame("card"), ft.White))
	assert.Equal(t, []string{"bg-white"}, s.Classes)
	assert.Equal(t, "#FFFFFF", s.BackgroundColor)

	odd := Extract(ft.Filled(ft.Frame("odd"), figma.Color{R: 0.2, G: 0.4, B: 0.6, A: 1}))
	assert.Equal(t, []string{"bg-[#336699]"}, odd.Classes)

	grad := ft.Frame("hero")
	grad.Fills = []figma.Paint{{
		Type: figma.PaintGradientLinear, Visible: true,
		Stops: []figma.ColorStop{{Color: ft.Blue}, {Position: 1, Color: ft.White}},
	}}
	assert.Equal(t, []string{"bg-gradient-to-r", "from-blue-500", "to-white"}, Extract(grad).Classes)

	hidden := ft.Frame("hidden")
	hidden.Fills = []figma.Paint{{Type: figma.PaintSolid, Color: ft.White}}
	assert.Empty(t, Extract(hidden).Classes)
}

func TestExtractBorders(t *testing.T) {
	n := ft.Stroked(ft.Rounded(ft.Frame("input"), 8), ft.Gray, 1)
	s := Extract(n)
	assert.Equal(t, []string{"rounded-lg", "border", "border-gray-300"}, s.Classes)
	assert.Equal(t, 1.0, s.BorderWidth)

	assert.Equal(t, "rounded-full", RadiusToken(9999))
	assert.Equal(t, "rounded-[10px]", RadiusToken(10))

	// Strokes without weight are ignored.
	noWeight := ft.Stroked(ft.Frame("x"), ft.Gray, 0)
	assert.Empty(t, Extract(noWeight).Classes)

	thick := Extract(ft.Stroked(ft.Frame("x"), ft.Blue, 3))
	assert.Equal(t, []string{"border-[3px]", "border-blue-500"}, thick.Classes)
}

func TestExtractTypography(t *testing.T) {
	n := ft.Filled(ft.Text("Title", "Welcome"), figma.Color{A: 1})
	n.Style = &figma.TextStyle{FontSize: 24, FontWeight: 700, TextAlign: "CENTER", LineHeight: 32, LetterSpacing: -0.5}

	s := Extract(n)
	assert.Equal(t, []string{"text-black", "text-2xl", "font-bold", "text-center", "leading-[32px]", "tracking-[-0.5px]"}, s.Classes)
	assert.Equal(t, "#000000", s.TextColor)
	assert.Empty(t, s.BackgroundColor, "text fill is a text color")

	odd := ft.Text("Body", "x")
	odd.Style = &figma.TextStyle{FontSize: 15, FontWeight: 450, TextAlign: "JUSTIFIED"}
	assert.Equal(t, []string{"text-[15px]", "font-medium"}, Extract(odd).Classes)

	// Typography is ignored on non-text nodes.
	frame := ft.Frame("f")
	frame.Style = &figma.TextStyle{FontSize: 24}
	assert.Empty(t, Extract(frame).Classes)
}

func TestFontWeightToken(t *testing.T) {
	assert.Equal(t, "font-thin", FontWeightToken(40))
	assert.Equal(t, "font-semibold", FontWeightToken(600))
	assert.Equal(t, "font-black", FontWeightToken(1000))
}

func TestExtractEffects(t *testing.T) {
	n := ft.Frame("card")
	n.Effects = []figma.Effect{
		{Type: "INNER_SHADOW", Visible: true, OffsetY: 1, Radius: 3},
		{Type: "DROP_SHADOW", Visible: true, OffsetY: 4, Radius: 6},
	}
	assert.Equal(t, []string{"shadow-md"}, Extract(n).Classes)

	custom := ft.Frame("card")
	custom.Effects = []figma.Effect{{Type: "DROP_SHADOW", Visible: true, OffsetX: 2, OffsetY: 2, Radius: 8,
		Color: figma.Color{A: 0.25}}}
	assert.Equal(t, []string{"shadow-[2px_2px_8px_rgba(0,0,0,0.25)]"}, Extract(custom).Classes)

	invisible := ft.Frame("card")
	invisible.Effects = []figma.Effect{{Type: "DROP_SHADOW", OffsetY: 1, Radius: 3}}
	assert.Empty(t, Extract(invisible).Classes)
}

func TestExtractPadding(t *testing.T) {
	uniform := ft.Frame("p")
	uniform.Padding = figma.Padding{Top: 16, Right: 16, Bottom: 16, Left: 16}
	assert.Equal(t, []string{"p-4"}, Extract(uniform).Classes)

	mixed := ft.Frame("p")
	mixed.Padding = figma.Padding{Top: 8, Bottom: 8, Left: 13}
	assert.Equal(t, []string{"pt-2", "pb-2", "pl-[13px]"}, Extract(mixed).Classes)
}

func TestExtractNilAndEmpty(t *testing.T) {
	assert.Empty(t, Extract(nil).Classes)
	assert.Empty(t, Extract(&figma.Node{Type: figma.NodeFrame}).Classes)
	assert.Equal(t, "", (*Style)(nil).ClassName())
}

func TestStyleAdd(t *testing.T) {
	s := &Style{}
	s.Add("flex", "", "flex")
	assert.Equal(t, "flex flex", s.ClassName())
	assert.True(t, s.Has("flex"))
	assert.False(t, s.Has("grid"))
}
