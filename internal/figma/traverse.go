package figma

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrNilNode is returned when a traversal starts from nil.
	ErrNilNode = errors.New("design node is nil")
	// ErrEmptyDocument is returned when a document or canvas has no children.
	ErrEmptyDocument = errors.New("design document has no children")
	// ErrNoRoot is returned when no frame can be found under a document.
	ErrNoRoot = errors.New("no screen frame found in document")
)

// ToHex converts a Figma Color (0-1 float range) to a hex string like "#RRGGBB".
func (c Color) ToHex() string {
	r := int(math.Round(clamp01(c.R) * 255))
	g := int(math.Round(clamp01(c.G) * 255))
	b := int(math.Round(clamp01(c.B) * 255))
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// FindRoot resolves the canonical screen node. A DOCUMENT descends into its
// first canvas, a CANVAS into its first visible frame, and a bare
// unstyled wrapper frame with a single frame child into that child. Any other
// node is its own root.
func FindRoot(node *Node) (*Node, error) {
	if node == nil {
		return nil, ErrNilNode
	}

	switch node.Type {
	case NodeDocument:
		if len(node.Children) == 0 {
			return nil, ErrEmptyDocument
		}
		for _, child := range node.Children {
			if child.Type == NodeCanvas && child.Visible {
				return FindRoot(child)
			}
		}
		// Documents without pages: treat the document itself like a canvas.
		return firstFrame(node)
	case NodeCanvas:
		if len(node.Children) == 0 {
			return nil, ErrEmptyDocument
		}
		return firstFrame(node)
	}
	return node, nil
}

func firstFrame(parent *Node) (*Node, error) {
	for _, child := range parent.Children {
		if child.Visible && child.Type.IsFrameLike() {
			return unwrap(child), nil
		}
	}
	return nil, fmt.Errorf("%w under %s %q", ErrNoRoot, parent.Type, parent.Name)
}

// unwrap skips wrapper frames that carry no styling and hold exactly one frame.
func unwrap(node *Node) *Node {
	for {
		visible := visibleChildren(node)
		if len(visible) != 1 || !visible[0].Type.IsFrameLike() {
			return node
		}
		if node.LayoutMode != LayoutNone || node.HasSolidFill() || node.HasStroke() || len(node.Effects) > 0 {
			return node
		}
		node = visible[0]
	}
}

func visibleChildren(node *Node) []*Node {
	var out []*Node
	for _, c := range node.Children {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits node and its descendants depth-first, pre-order. Returning
// false from fn skips the node's children.
func Walk(node *Node, fn func(n *Node, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node *Node, depth int, fn func(*Node, int) bool) {
	if node == nil {
		return
	}
	if !fn(node, depth) {
		return
	}
	for _, child := range node.Children {
		walk(child, depth+1, fn)
	}
}

// Flatten returns node and all of its descendants in depth-first pre-order.
// Invisible subtrees are included only when includeHidden is set.
func Flatten(node *Node, includeHidden bool) []*Node {
	var out []*Node
	Walk(node, func(n *Node, _ int) bool {
		if !n.Visible && !includeHidden {
			return false
		}
		out = append(out, n)
		return true
	})
	return out
}

// FindByType returns every node of type t under (and including) node.
func FindByType(node *Node, t NodeType) []*Node {
	var out []*Node
	Walk(node, func(n *Node, _ int) bool {
		if n.Type == t {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindByText returns TEXT nodes whose characters contain text, case-insensitively.
func FindByText(node *Node, text string) []*Node {
	needle := strings.ToLower(text)
	var out []*Node
	Walk(node, func(n *Node, _ int) bool {
		if n.Type == NodeText && strings.Contains(strings.ToLower(n.Characters), needle) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindParent returns the parent of target within the tree rooted at root,
// or nil when target is the root or absent.
func FindParent(root, target *Node) *Node {
	var parent *Node
	Walk(root, func(n *Node, _ int) bool {
		if parent != nil {
			return false
		}
		for _, c := range n.Children {
			if c == target {
				parent = n
				return false
			}
		}
		return true
	})
	return parent
}

// TextContent recursively collects the visible text under a node.
func TextContent(node *Node) string {
	if node == nil || !node.Visible {
		return ""
	}
	if node.Type == NodeText && node.Characters != "" {
		return strings.TrimSpace(node.Characters)
	}
	var parts []string
	for _, child := range node.Children {
		if text := TextContent(child); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
