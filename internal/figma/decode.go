package figma

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// ErrNotADesignNode is returned when the JSON input has neither a document,
// a nodes map, nor a node type.
var ErrNotADesignNode = errors.New("input is not a Figma document or node")

// Decode reads a Figma REST payload and returns its top node. It accepts the
// GET /v1/files/:key response (returns the DOCUMENT node), the
// GET /v1/files/:key/nodes response (returns the first requested node, by
// id order) or a bare node object.
func Decode(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading design JSON: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeFile decodes the Figma JSON file at path.
func DecodeFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	node, err := DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return node, nil
}

// DecodeBytes is Decode over an in-memory payload.
func DecodeBytes(data []byte) (*Node, error) {
	var envelope struct {
		Document *apiNode                `json:"document"`
		Nodes    map[string]apiNodeEntry `json:"nodes"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parsing design JSON: %w", err)
	}

	if envelope.Document != nil && envelope.Document.Type != "" {
		return convertAPINode(envelope.Document), nil
	}

	if len(envelope.Nodes) > 0 {
		ids := make([]string, 0, len(envelope.Nodes))
		for id := range envelope.Nodes {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			if doc := envelope.Nodes[id].Document; doc.Type != "" {
				return convertAPINode(&doc), nil
			}
		}
	}

	var bare apiNode
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("parsing design node: %w", err)
	}
	if bare.Type == "" {
		return nil, ErrNotADesignNode
	}
	return convertAPINode(&bare), nil
}

// ── Figma API payload types ──

type apiNodeEntry struct {
	Document apiNode `json:"document"`
}

type apiNode struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Children   []apiNode `json:"children"`
	Characters string    `json:"characters"`
	Visible    *bool     `json:"visible"` // nil = visible

	// Layout
	LayoutMode             string  `json:"layoutMode"`
	LayoutWrap             string  `json:"layoutWrap"`
	PrimaryAxisAlignItems  string  `json:"primaryAxisAlignItems"`
	CounterAxisAlignItems  string  `json:"counterAxisAlignItems"`
	ItemSpacing            float64 `json:"itemSpacing"`
	PaddingLeft            float64 `json:"paddingLeft"`
	PaddingRight           float64 `json:"paddingRight"`
	PaddingTop             float64 `json:"paddingTop"`
	PaddingBottom          float64 `json:"paddingBottom"`
	LayoutSizingHorizontal string  `json:"layoutSizingHorizontal"`
	LayoutSizingVertical   string  `json:"layoutSizingVertical"`

	// Visual
	Fills        []apiPaint  `json:"fills"`
	Strokes      []apiPaint  `json:"strokes"`
	StrokeWeight float64     `json:"strokeWeight"`
	Effects      []apiEffect `json:"effects"`
	CornerRadius float64     `json:"cornerRadius"`
	Opacity      *float64    `json:"opacity"`

	Style               *apiTextStyle `json:"style"`
	AbsoluteBoundingBox *apiRect      `json:"absoluteBoundingBox"`
	Reactions           []apiReaction `json:"reactions"`
	ComponentID         string        `json:"componentId"`
}

type apiPaint struct {
	Type          string         `json:"type"`
	Color         *apiColor      `json:"color"`
	Visible       *bool          `json:"visible"`
	Opacity       *float64       `json:"opacity"`
	ImageRef      string         `json:"imageRef"`
	GradientStops []apiColorStop `json:"gradientStops"`
}

type apiColorStop struct {
	Position float64  `json:"position"`
	Color    apiColor `json:"color"`
}

type apiColor struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

type apiEffect struct {
	Type    string     `json:"type"`
	Visible bool       `json:"visible"`
	Radius  float64    `json:"radius"`
	Spread  float64    `json:"spread"`
	Color   *apiColor  `json:"color"`
	Offset  *apiVector `json:"offset"`
}

type apiVector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type apiTextStyle struct {
	FontFamily          string  `json:"fontFamily"`
	FontSize            float64 `json:"fontSize"`
	FontWeight          float64 `json:"fontWeight"`
	LineHeightPx        float64 `json:"lineHeightPx"`
	LetterSpacing       float64 `json:"letterSpacing"`
	TextAlignHorizontal string  `json:"textAlignHorizontal"`
}

type apiRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type apiReaction struct {
	Trigger *struct {
		Type string `json:"type"`
	} `json:"trigger"`
}

// ── Conversion ──

func convertAPINode(n *apiNode) *Node {
	node := &Node{
		ID:               n.ID,
		Name:             n.Name,
		Type:             ParseNodeType(n.Type),
		Visible:          n.Visible == nil || *n.Visible,
		Characters:       n.Characters,
		LayoutMode:       parseLayoutMode(n.LayoutMode),
		LayoutWrap:       n.LayoutWrap == "WRAP",
		PrimaryAxis:      n.PrimaryAxisAlignItems,
		CounterAxis:      n.CounterAxisAlignItems,
		ItemSpacing:      n.ItemSpacing,
		SizingHorizontal: n.LayoutSizingHorizontal,
		SizingVertical:   n.LayoutSizingVertical,
		StrokeWeight:     n.StrokeWeight,
		CornerRadius:     n.CornerRadius,
		Opacity:          1,
		ComponentID:      n.ComponentID,
		Padding: Padding{
			Top:    n.PaddingTop,
			Right:  n.PaddingRight,
			Bottom: n.PaddingBottom,
			Left:   n.PaddingLeft,
		},
	}
	if n.Opacity != nil {
		node.Opacity = *n.Opacity
	}

	if b := n.AbsoluteBoundingBox; b != nil {
		node.Bounds = &Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
	}

	if s := n.Style; s != nil {
		node.Style = &TextStyle{
			FontFamily:    s.FontFamily,
			FontSize:      s.FontSize,
			FontWeight:    s.FontWeight,
			LineHeight:    s.LineHeightPx,
			LetterSpacing: s.LetterSpacing,
			TextAlign:     s.TextAlignHorizontal,
		}
	}

	for _, f := range n.Fills {
		node.Fills = append(node.Fills, convertPaint(f))
	}
	for _, s := range n.Strokes {
		node.Strokes = append(node.Strokes, convertPaint(s))
	}

	for _, e := range n.Effects {
		eff := Effect{
			Type:    e.Type,
			Visible: e.Visible,
			Radius:  e.Radius,
			Spread:  e.Spread,
		}
		if e.Color != nil {
			eff.Color = Color(*e.Color)
		}
		if e.Offset != nil {
			eff.OffsetX = e.Offset.X
			eff.OffsetY = e.Offset.Y
		}
		node.Effects = append(node.Effects, eff)
	}

	for _, r := range n.Reactions {
		if r.Trigger != nil && r.Trigger.Type != "" {
			node.Interactions = append(node.Interactions, r.Trigger.Type)
		}
	}

	// Hidden children are kept; the pipeline decides what to skip.
	for i := range n.Children {
		node.Children = append(node.Children, convertAPINode(&n.Children[i]))
	}

	return node
}

func convertPaint(f apiPaint) Paint {
	p := Paint{
		Type:     parsePaintType(f.Type),
		Visible:  f.Visible == nil || *f.Visible,
		Opacity:  1,
		ImageRef: f.ImageRef,
	}
	if f.Opacity != nil {
		p.Opacity = *f.Opacity
	}
	if f.Color != nil {
		p.Color = Color(*f.Color)
	}
	for _, s := range f.GradientStops {
		p.Stops = append(p.Stops, ColorStop{Position: s.Position, Color: Color(s.Color)})
	}
	return p
}
