// Package style maps a single design node's geometry, paint and typography
// to a Style record of Tailwind utility tokens. Extraction is purely local:
// nothing about siblings or ancestors is consulted, and missing data only
// produces fewer tokens.
package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/barun-bash/uigen/internal/figma"
)

// Style is the derived visual record of one node. Classes is append-only and
// its order is the emission order. The discrete fields serve consumers that
// do not read tokens.
type Style struct {
	Classes []string

	Width           float64
	Height          float64
	Position        string // "absolute" or empty
	BackgroundColor string // hex
	TextColor       string // hex
	BorderColor     string // hex
	BorderWidth     float64
	BorderRadius    float64
	FontSize        float64
	FontWeight      float64
	Shadow          string
}

// Add appends tokens, skipping empty strings. Duplicates are kept.
func (s *Style) Add(tokens ...string) {
	for _, t := range tokens {
		if t != "" {
			s.Classes = append(s.Classes, t)
		}
	}
}

// Has reports whether token was emitted.
func (s *Style) Has(token string) bool {
	for _, c := range s.Classes {
		if c == token {
			return true
		}
	}
	return false
}

// ClassName joins the tokens for a class attribute.
func (s *Style) ClassName() string {
	if s == nil {
		return ""
	}
	return strings.Join(s.Classes, " ")
}

// Extract builds the Style record for node. Every signal is attempted
// independently.
func Extract(node *figma.Node) *Style {
	s := &Style{}
	if node == nil {
		return s
	}
	extractDimensions(node, s)
	extractPosition(node, s)
	extractFlex(node, s)
	if node.Type == figma.NodeText {
		extractTextColor(node, s)
	} else {
		extractBackground(node, s)
	}
	extractBorders(node, s)
	if node.Type == figma.NodeText {
		extractTypography(node, s)
	}
	extractEffects(node, s)
	extractPadding(node, s)
	return s
}

// ── Dimensions and positioning ──

func extractDimensions(node *figma.Node, s *Style) {
	if b := node.Bounds; b != nil {
		if b.Width > 0 {
			s.Width = b.Width
			s.Add(DimensionToken("w", b.Width))
		}
		if b.Height > 0 {
			s.Height = b.Height
			s.Add(DimensionToken("h", b.Height))
		}
	}
	switch node.SizingHorizontal {
	case "FILL":
		s.Add("w-full")
	case "HUG":
		s.Add("w-auto")
	}
	switch node.SizingVertical {
	case "FILL":
		s.Add("h-full")
	case "HUG":
		s.Add("h-auto")
	}
}

// DimensionToken returns the scale token for a standard pixel value
// (w-12 for 48) and an explicit pixel token otherwise (w-[418px]).
func DimensionToken(prefix string, px float64) string {
	if name, ok := spacingScale[round2(px)]; ok {
		return prefix + "-" + name
	}
	return fmt.Sprintf("%s-[%s]", prefix, pixels(px))
}

func extractPosition(node *figma.Node, s *Style) {
	b := node.Bounds
	if b == nil || (b.X == 0 && b.Y == 0) {
		return
	}
	s.Position = "absolute"
	s.Add("absolute",
		fmt.Sprintf("top-[%s]", pixels(b.Y)),
		fmt.Sprintf("left-[%s]", pixels(b.X)))
}

// ── Flex layout ──

func extractFlex(node *figma.Node, s *Style) {
	switch node.LayoutMode {
	case figma.LayoutHorizontal:
		s.Add("flex", "flex-row")
	case figma.LayoutVertical:
		s.Add("flex", "flex-col")
	default:
		return
	}
	if node.LayoutWrap {
		s.Add("flex-wrap")
	}
	if a, ok := alignTokens[node.CounterAxis]; ok {
		s.Add("items-" + a)
	}
	s.Add(justifyTokens[node.PrimaryAxis])
	if node.ItemSpacing > 0 {
		s.Add(GapToken(node.ItemSpacing))
	}
}

// GapToken buckets item spacing into one of six gap sizes.
func GapToken(spacing float64) string {
	for _, b := range gapBuckets {
		if spacing <= b.max {
			return b.token
		}
	}
	return fmt.Sprintf("gap-[%s]", pixels(spacing))
}

// ── Paint ──

func extractBackground(node *figma.Node, s *Style) {
	for _, f := range node.Fills {
		if !f.Visible {
			continue
		}
		switch f.Type {
		case figma.PaintSolid:
			hex := f.Color.ToHex()
			s.BackgroundColor = hex
			s.Add(ColorToken("bg", f.Color))
			return
		case figma.PaintGradientLinear:
			s.Add("bg-gradient-to-r")
			if len(f.Stops) > 0 {
				s.Add(ColorToken("from", f.Stops[0].Color))
			}
			if len(f.Stops) > 1 {
				s.Add(ColorToken("to", f.Stops[len(f.Stops)-1].Color))
			}
			return
		}
	}
}

func extractTextColor(node *figma.Node, s *Style) {
	if f, ok := node.FirstFill(figma.PaintSolid); ok {
		s.TextColor = f.Color.ToHex()
		s.Add(ColorToken("text", f.Color))
	}
}

// ColorToken returns prefix-<palette name> when the color is in the palette
// and prefix-[#RRGGBB] otherwise.
func ColorToken(prefix string, c figma.Color) string {
	hex := c.ToHex()
	if name, ok := palette[hex]; ok {
		return prefix + "-" + name
	}
	return fmt.Sprintf("%s-[%s]", prefix, hex)
}

// ── Borders ──

func extractBorders(node *figma.Node, s *Style) {
	if r := node.CornerRadius; r > 0 {
		s.BorderRadius = r
		s.Add(RadiusToken(r))
	}
	if node.StrokeWeight <= 0 {
		return
	}
	for _, st := range node.Strokes {
		if !st.Visible {
			continue
		}
		s.BorderWidth = node.StrokeWeight
		s.BorderColor = st.Color.ToHex()
		if tok, ok := borderWidthTokens[round2(node.StrokeWeight)]; ok {
			s.Add(tok)
		} else {
			s.Add(fmt.Sprintf("border-[%s]", pixels(node.StrokeWeight)))
		}
		s.Add(ColorToken("border", st.Color))
		return
	}
}

// RadiusToken maps a corner radius to a Tailwind rounded-* token.
func RadiusToken(r float64) string {
	if r >= fullRadius {
		return "rounded-full"
	}
	if tok, ok := radiusTokens[round2(r)]; ok {
		return tok
	}
	return fmt.Sprintf("rounded-[%s]", pixels(r))
}

// ── Typography ──

func extractTypography(node *figma.Node, s *Style) {
	ts := node.Style
	if ts == nil {
		return
	}
	if ts.FontSize > 0 {
		s.FontSize = ts.FontSize
		if tok, ok := fontSizeTokens[round2(ts.FontSize)]; ok {
			s.Add(tok)
		} else {
			s.Add(fmt.Sprintf("text-[%s]", pixels(ts.FontSize)))
		}
	}
	if ts.FontWeight > 0 {
		s.FontWeight = ts.FontWeight
		s.Add(FontWeightToken(ts.FontWeight))
	}
	s.Add(textAlignTokens[ts.TextAlign])
	if ts.LineHeight > 0 {
		s.Add(fmt.Sprintf("leading-[%s]", pixels(ts.LineHeight)))
	}
	if ts.LetterSpacing != 0 {
		s.Add(fmt.Sprintf("tracking-[%s]", pixels(ts.LetterSpacing)))
	}
}

// FontWeightToken rounds weight to the nearest hundred within 100-900.
func FontWeightToken(weight float64) string {
	w := int(math.Round(weight/100)) * 100
	w = max(100, min(900, w))
	return fontWeightTokens[w]
}

// ── Effects ──

func extractEffects(node *figma.Node, s *Style) {
	for _, e := range node.Effects {
		if e.Type != "DROP_SHADOW" || !e.Visible {
			continue
		}
		key := fmt.Sprintf("%s/%s/%s", num(e.OffsetX), num(e.OffsetY), num(e.Radius))
		if tok, ok := shadowTokens[key]; ok {
			s.Shadow = tok
			s.Add(tok)
			return
		}
		c := e.Color
		s.Shadow = fmt.Sprintf("shadow-[%s_%s_%s_rgba(%d,%d,%d,%s)]",
			pixels(e.OffsetX), pixels(e.OffsetY), pixels(e.Radius),
			int(math.Round(c.R*255)), int(math.Round(c.G*255)), int(math.Round(c.B*255)), num(c.A))
		s.Add(s.Shadow)
		return
	}
}

// ── Spacing ──

func extractPadding(node *figma.Node, s *Style) {
	p := node.Padding
	if p.IsZero() {
		return
	}
	if p.Uniform() {
		s.Add(DimensionToken("p", p.Top))
		return
	}
	sides := []struct {
		prefix string
		value  float64
	}{
		{"pt", p.Top}, {"pr", p.Right}, {"pb", p.Bottom}, {"pl", p.Left},
	}
	for _, side := range sides {
		if side.value > 0 {
			s.Add(DimensionToken(side.prefix, side.value))
		}
	}
}

// ── formatting ──

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func num(v float64) string {
	return strconv.FormatFloat(round2(v), 'f', -1, 64)
}

func pixels(v float64) string {
	return num(v) + "px"
}
