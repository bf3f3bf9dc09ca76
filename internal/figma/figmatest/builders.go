// Package figmatest provides builders for design node fixtures used in tests.
package figmatest

import "github.com/barun-bash/uigen/internal/figma"

// White and Blue are common solid colors for fixtures.
var (
	White = figma.Color{R: 1, G: 1, B: 1, A: 1}
	Blue  = figma.Color{R: 0.231, G: 0.510, B: 0.965, A: 1} // #3B82F6
	Gray  = figma.Color{R: 0.820, G: 0.835, B: 0.859, A: 1} // #D1D5DB
)

// Node builds a visible node of type t.
func Node(t figma.NodeType, name string, children ...*figma.Node) *figma.Node {
	return &figma.Node{
		ID:       name,
		Name:     name,
		Type:     t,
		Visible:  true,
		Opacity:  1,
		Children: children,
	}
}

// Frame builds a visible FRAME.
func Frame(name string, children ...*figma.Node) *figma.Node {
	return Node(figma.NodeFrame, name, children...)
}

// Text builds a visible TEXT node with a 14px regular style.
func Text(name, characters string) *figma.Node {
	n := Node(figma.NodeText, name)
	n.Characters = characters
	n.Style = &figma.TextStyle{FontFamily: "Inter", FontSize: 14, FontWeight: 400}
	return n
}

// Sized sets the node's bounding box at the origin and returns it.
func Sized(n *figma.Node, w, h float64) *figma.Node {
	n.Bounds = &figma.Rect{Width: w, Height: h}
	return n
}

// Filled adds a visible solid fill and returns the node.
func Filled(n *figma.Node, c figma.Color) *figma.Node {
	n.Fills = append(n.Fills, figma.Paint{Type: figma.PaintSolid, Color: c, Visible: true, Opacity: 1})
	return n
}

// Stroked adds a visible solid stroke of the given weight and returns the node.
func Stroked(n *figma.Node, c figma.Color, weight float64) *figma.Node {
	n.Strokes = append(n.Strokes, figma.Paint{Type: figma.PaintSolid, Color: c, Visible: true, Opacity: 1})
	n.StrokeWeight = weight
	return n
}

// Rounded sets the corner radius and returns the node.
func Rounded(n *figma.Node, radius float64) *figma.Node {
	n.CornerRadius = radius
	return n
}

// Hidden marks the node invisible and returns it.
func Hidden(n *figma.Node) *figma.Node {
	n.Visible = false
	return n
}

// Layout sets an auto-layout mode and spacing and returns the node.
func Layout(n *figma.Node, mode figma.LayoutMode, spacing float64) *figma.Node {
	n.LayoutMode = mode
	n.ItemSpacing = spacing
	return n
}

// Document wraps frames in a DOCUMENT > CANVAS pair.
func Document(frames ...*figma.Node) *figma.Node {
	return Node(figma.NodeDocument, "Document", Node(figma.NodeCanvas, "Page 1", frames...))
}
