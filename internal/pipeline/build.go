package pipeline

import (
	"strings"

	"github.com/barun-bash/uigen/internal/component"
	"github.com/barun-bash/uigen/internal/config"
	"github.com/barun-bash/uigen/internal/figma"
	"github.com/barun-bash/uigen/internal/style"
)

type builder struct {
	names     *namer
	imageURLs map[string]string
}

// BuildTree converts root and its visible descendants into components.
// The returned root is flagged as the screen root.
func BuildTree(root *figma.Node, naming config.Naming, imageURLs map[string]string) *component.Component {
	b := builder{names: newNamer(naming), imageURLs: imageURLs}
	c := b.build(root, nil)
	c.Root = true
	return c
}

func (b builder) build(n *figma.Node, parent *component.Component) *component.Component {
	c := &component.Component{
		Node:    n,
		Name:    b.name(n),
		Parent:  parent,
		Style:   style.Extract(n),
		Content: b.content(n),
		Props:   map[string]string{component.PropNodeID: n.ID},
		Layout:  layoutInfo(n),
	}
	if n.ComponentID != "" {
		c.Props[component.PropComponentID] = n.ComponentID
	}
	for _, child := range n.Children {
		if !child.Visible {
			continue
		}
		c.Children = append(c.Children, b.build(child, c))
	}
	return c
}

func (b builder) name(n *figma.Node) string {
	if name := b.names.name(n.Name); name != "" {
		return name
	}
	return b.names.name(n.Type.String())
}

// content takes the node's own characters, or the first visible TEXT
// child's, so a frame wrapping a label can still read as a button.
func (b builder) content(n *figma.Node) *component.Content {
	var out component.Content
	if n.Type == figma.NodeText {
		out.Text = strings.TrimSpace(n.Characters)
	} else {
		for _, child := range n.Children {
			if child.Visible && child.Type == figma.NodeText {
				out.Text = strings.TrimSpace(child.Characters)
				break
			}
		}
	}
	if fill, ok := n.FirstFill(figma.PaintImage); ok {
		out.ImageRef = fill.ImageRef
		out.ImageURL = b.imageURLs[fill.ImageRef]
	}
	if out == (component.Content{}) {
		return nil
	}
	return &out
}

func layoutInfo(n *figma.Node) component.LayoutInfo {
	info := component.LayoutInfo{IsContainer: len(n.Children) > 0}
	if n.Bounds != nil {
		info.Bounds = *n.Bounds
	}
	switch {
	case n.LayoutMode != figma.LayoutNone:
		info.Type = component.LayoutFlex
		if n.LayoutWrap {
			info.Type = component.LayoutGrid
		}
		info.AutoLayout = &component.AutoLayout{
			Direction:    n.LayoutMode,
			Spacing:      n.ItemSpacing,
			Padding:      n.Padding,
			PrimaryAlign: n.PrimaryAxis,
			CounterAlign: n.CounterAxis,
			Wrap:         n.LayoutWrap,
		}
	case n.Type.IsFrameLike() && len(n.Children) > 0:
		info.Type = component.LayoutAbsolute
	default:
		info.Type = component.LayoutFlow
	}
	return info
}
