// Package figma models the design-tool document tree consumed by the
// generator. It decodes Figma REST JSON into Node values and provides
// read-only traversal helpers over them.
package figma

// NodeType is the closed set of design node kinds the pipeline understands.
// Anything else decodes to NodeUnknown.
type NodeType int

const (
	NodeUnknown NodeType = iota
	NodeDocument
	NodeCanvas
	NodeFrame
	NodeGroup
	NodeComponent
	NodeComponentSet
	NodeInstance
	NodeText
	NodeRectangle
	NodeVector
	NodeEllipse
	NodeLine
)

var nodeTypeNames = [...]string{
	"UNKNOWN", "DOCUMENT", "CANVAS", "FRAME", "GROUP", "COMPONENT",
	"COMPONENT_SET", "INSTANCE", "TEXT", "RECTANGLE", "VECTOR", "ELLIPSE", "LINE",
}

// String returns the Figma API spelling of the node type.
func (t NodeType) String() string {
	if int(t) >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "UNKNOWN"
}

// ParseNodeType maps a Figma API type string to a NodeType.
func ParseNodeType(s string) NodeType {
	for i, name := range nodeTypeNames {
		if name == s {
			return NodeType(i)
		}
	}
	return NodeUnknown
}

// IsFrameLike reports whether nodes of this type act as generic containers.
func (t NodeType) IsFrameLike() bool {
	switch t {
	case NodeFrame, NodeGroup, NodeComponent, NodeComponentSet, NodeInstance:
		return true
	}
	return false
}

// IsShape reports whether the type is a primitive drawable (vector, ellipse, rectangle).
func (t NodeType) IsShape() bool {
	switch t {
	case NodeVector, NodeEllipse, NodeRectangle:
		return true
	}
	return false
}

// LayoutMode is the auto-layout direction of a frame.
type LayoutMode int

const (
	LayoutNone LayoutMode = iota
	LayoutHorizontal
	LayoutVertical
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutHorizontal:
		return "HORIZONTAL"
	case LayoutVertical:
		return "VERTICAL"
	}
	return "NONE"
}

func parseLayoutMode(s string) LayoutMode {
	switch s {
	case "HORIZONTAL":
		return LayoutHorizontal
	case "VERTICAL":
		return LayoutVertical
	}
	return LayoutNone
}

// PaintType identifies the kind of a fill or stroke.
type PaintType int

const (
	PaintUnknown PaintType = iota
	PaintSolid
	PaintGradientLinear
	PaintGradientRadial
	PaintImage
)

func parsePaintType(s string) PaintType {
	switch s {
	case "SOLID":
		return PaintSolid
	case "GRADIENT_LINEAR":
		return PaintGradientLinear
	case "GRADIENT_RADIAL", "GRADIENT_ANGULAR", "GRADIENT_DIAMOND":
		return PaintGradientRadial
	case "IMAGE":
		return PaintImage
	}
	return PaintUnknown
}

// Node represents a node in the Figma document tree.
// Nodes are read-only once decoded.
type Node struct {
	ID       string
	Name     string
	Type     NodeType
	Visible  bool
	Children []*Node

	// Absolute bounding box; nil when the source omitted it.
	Bounds *Rect

	// Auto-layout
	LayoutMode  LayoutMode
	LayoutWrap  bool
	PrimaryAxis string // MIN, CENTER, MAX, SPACE_BETWEEN
	CounterAxis string // MIN, CENTER, MAX, STRETCH, BASELINE
	ItemSpacing float64
	Padding     Padding

	// Sizing directives: FIXED, FILL or HUG.
	SizingHorizontal string
	SizingVertical   string

	// Visual properties
	Fills        []Paint
	Strokes      []Paint
	StrokeWeight float64
	Effects      []Effect
	CornerRadius float64
	Opacity      float64

	// Text
	Characters string
	Style      *TextStyle

	// Prototype interactions attached to the node (onClick and friends).
	Interactions []string

	ComponentID string
}

// Rect is an absolute bounding box in canvas pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Padding holds per-side auto-layout padding.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Uniform reports whether all four sides are equal.
func (p Padding) Uniform() bool {
	return p.Top == p.Right && p.Right == p.Bottom && p.Bottom == p.Left
}

// IsZero reports whether no side has padding.
func (p Padding) IsZero() bool {
	return p.Top == 0 && p.Right == 0 && p.Bottom == 0 && p.Left == 0
}

// Paint represents a fill or stroke on a node.
type Paint struct {
	Type     PaintType
	Color    Color
	Visible  bool
	Opacity  float64
	ImageRef string
	Stops    []ColorStop
}

// ColorStop is one stop of a gradient paint.
type ColorStop struct {
	Position float64
	Color    Color
}

// Color represents an RGBA color with Figma's 0-1 float range.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// Effect represents a visual effect (shadow, blur) on a node.
type Effect struct {
	Type    string // DROP_SHADOW, INNER_SHADOW, LAYER_BLUR, BACKGROUND_BLUR
	Visible bool
	Radius  float64
	Spread  float64
	Color   Color
	OffsetX float64
	OffsetY float64
}

// TextStyle holds typography properties for TEXT nodes.
type TextStyle struct {
	FontFamily    string
	FontSize      float64
	FontWeight    float64
	LineHeight    float64
	LetterSpacing float64
	TextAlign     string // LEFT, CENTER, RIGHT, JUSTIFIED
}

// Width returns the bounding box width, or 0 when unknown.
func (n *Node) Width() float64 {
	if n == nil || n.Bounds == nil {
		return 0
	}
	return n.Bounds.Width
}

// Height returns the bounding box height, or 0 when unknown.
func (n *Node) Height() float64 {
	if n == nil || n.Bounds == nil {
		return 0
	}
	return n.Bounds.Height
}

// FirstFill returns the first visible fill of the given type.
func (n *Node) FirstFill(t PaintType) (Paint, bool) {
	for _, f := range n.Fills {
		if f.Visible && f.Type == t {
			return f, true
		}
	}
	return Paint{}, false
}

// HasSolidFill reports whether the node has a visible solid fill.
func (n *Node) HasSolidFill() bool {
	_, ok := n.FirstFill(PaintSolid)
	return ok
}

// HasImageFill reports whether the node has a visible image fill.
func (n *Node) HasImageFill() bool {
	_, ok := n.FirstFill(PaintImage)
	return ok
}

// HasStroke reports whether the node has a visible stroke.
func (n *Node) HasStroke() bool {
	for _, s := range n.Strokes {
		if s.Visible {
			return true
		}
	}
	return false
}
