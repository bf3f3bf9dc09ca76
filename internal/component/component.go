// Package component holds the classified representation of a design tree:
// Parsed Components, the Component Tree and Classification Results.
package component

import (
	"strings"

	"github.com/barun-bash/uigen/internal/figma"
	"github.com/barun-bash/uigen/internal/style"
)

// Type identifies the semantic UI role assigned to a component.
type Type int

const (
	TypeUnknown Type = iota
	TypeMainWrapper
	TypeSection
	TypeContainer
	TypeButton
	TypeInput
	TypeText
	TypeHeading
	TypeLabel
	TypeCard
	TypeImage
)

// String returns the lower-case name of a Type.
func (t Type) String() string {
	names := [...]string{
		"unknown", "main", "section", "container", "button", "input",
		"text", "heading", "label", "card", "image",
	}
	if int(t) >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// IsInteractive reports whether the type is an actionable element.
func (t Type) IsInteractive() bool {
	return t == TypeButton || t == TypeInput
}

// IsTextual reports whether the type renders as a text-level element.
func (t Type) IsTextual() bool {
	return t == TypeText || t == TypeHeading || t == TypeLabel
}

// UIContext is the semantic domain a repeatable component belongs to.
type UIContext string

const (
	ContextAuth      UIContext = "auth"
	ContextEcommerce UIContext = "ecommerce"
	ContextFinance   UIContext = "finance"
	ContextDashboard UIContext = "dashboard"
	ContextSocial    UIContext = "social"
	ContextGeneral   UIContext = "general"
)

// DataPattern marks a component as one instance of a repeated list.
type DataPattern struct {
	Repeatable bool
	Context    UIContext
}

// LayoutType is the approximate layout model of a component.
type LayoutType string

const (
	LayoutFlex     LayoutType = "flex"
	LayoutGrid     LayoutType = "grid"
	LayoutAbsolute LayoutType = "absolute"
	LayoutFlow     LayoutType = "flow"
)

// AutoLayout describes a node's auto-layout settings.
type AutoLayout struct {
	Direction    figma.LayoutMode
	Spacing      float64
	Padding      figma.Padding
	PrimaryAlign string
	CounterAlign string
	Wrap         bool
}

// LayoutInfo records the original geometry and layout model.
type LayoutInfo struct {
	Bounds      figma.Rect
	IsContainer bool
	Type        LayoutType
	AutoLayout  *AutoLayout
}

// Content is the extracted text or image reference of a component.
type Content struct {
	Text     string
	ImageRef string
	ImageURL string
}

// Traceability props set on every built component. Generators emit them as
// attributes when identifiers are requested.
const (
	PropNodeID      = "data-node-id"
	PropComponentID = "data-component-id"
)

// Component wraps one visible design node with its classification and
// derived data. Parent is a navigation-only back reference; the parent's
// Children slice owns the child.
type Component struct {
	Node        *figma.Node
	Type        Type
	Name        string
	Children    []*Component
	Parent      *Component
	Root        bool
	Style       *style.Style
	Content     *Content
	Props       map[string]string
	DataPattern *DataPattern
	Layout      LayoutInfo
}

// Text returns the component's extracted text, or "".
func (c *Component) Text() string {
	if c == nil || c.Content == nil {
		return ""
	}
	return c.Content.Text
}

// NodeType returns the underlying design node type.
func (c *Component) NodeType() figma.NodeType {
	if c == nil || c.Node == nil {
		return figma.NodeUnknown
	}
	return c.Node.Type
}

// Index returns the component's position among its parent's children, or -1.
func (c *Component) Index() int {
	if c.Parent == nil {
		return -1
	}
	for i, s := range c.Parent.Children {
		if s == c {
			return i
		}
	}
	return -1
}

// NextSibling returns the sibling immediately after c, or nil.
func (c *Component) NextSibling() *Component {
	i := c.Index()
	if i < 0 || i+1 >= len(c.Parent.Children) {
		return nil
	}
	return c.Parent.Children[i+1]
}

// PrevSibling returns the sibling immediately before c, or nil.
func (c *Component) PrevSibling() *Component {
	i := c.Index()
	if i <= 0 {
		return nil
	}
	return c.Parent.Children[i-1]
}

// SubtreeText joins the visible text of c and all its descendants.
func (c *Component) SubtreeText() string {
	var parts []string
	c.Walk(func(n *Component) {
		if n.NodeType() == figma.NodeText {
			if t := strings.TrimSpace(n.Node.Characters); t != "" {
				parts = append(parts, t)
			}
		}
	})
	return strings.Join(parts, " ")
}

// Walk visits c and its descendants depth-first, pre-order.
func (c *Component) Walk(fn func(*Component)) {
	if c == nil {
		return
	}
	fn(c)
	for _, child := range c.Children {
		child.Walk(fn)
	}
}

// PostOrder visits descendants before their parents.
func (c *Component) PostOrder(fn func(*Component)) {
	if c == nil {
		return
	}
	for _, child := range c.Children {
		child.PostOrder(fn)
	}
	fn(c)
}
