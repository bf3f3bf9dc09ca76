// Package classifier assigns each component its semantic UI type. It runs
// the button, input and text rules in priority order, then falls through
// layout, card, image and fallback tests. The first branch that qualifies
// commits the type.
package classifier

import (
	"regexp"
	"strings"

	"github.com/barun-bash/uigen/internal/component"
	"github.com/barun-bash/uigen/internal/figma"
	"github.com/barun-bash/uigen/internal/rules"
)

// Commit thresholds for the rule-based branches.
const (
	ButtonThreshold = 0.2
	InputThreshold  = 0.2
	TextThreshold   = 0.5
)

// Fixed confidences for the structural branches.
const (
	sectionConfidence   = 0.75
	containerConfidence = 0.6
	autoLayoutBonus     = 0.1
	cardConfidence      = 0.7
	imageFillConfidence = 0.8
	iconConfidence      = 0.7
	fallbackConfidence  = 0.3
)

const (
	headingFontSize   = 20
	headingFontWeight = 600
	sectionChildren   = 5
	complexAutoLayout = 3
	maxIconSize       = 48
)

var iconNames = regexp.MustCompile(`\b(icon|arrow|check|close|menu|search|star|heart|user|mail|phone|home)`)

// Classify commits a type for c and returns the evidence behind it. The
// root is always the main wrapper and never reaches the rules. Children
// must be classified before their parent; see ClassifyTree.
func Classify(c *component.Component) component.Result {
	if c == nil {
		return component.Result{Type: component.TypeUnknown}
	}
	if c.Root {
		c.Type = component.TypeMainWrapper
		c.DataPattern = nil
		return component.Result{
			Component:  c,
			Type:       component.TypeMainWrapper,
			Confidence: 1,
			Reasons:    []string{"screen root"},
		}
	}

	var alts []component.Alternative
	reject := func(t component.Type, ev rules.Evaluation) {
		if ev.Confidence > 0 {
			alts = append(alts, component.Alternative{Type: t, Confidence: ev.Confidence})
		}
	}

	// 1-3. Rule-based interactive and text branches.
	button := rules.Button(c)
	if button.Confidence > ButtonThreshold {
		return commit(c, component.TypeButton, button.Confidence, button.Reasons, alts)
	}
	reject(component.TypeButton, button)

	input := rules.Input(c)
	if input.Confidence > InputThreshold {
		return commit(c, component.TypeInput, input.Confidence, input.Reasons, alts)
	}
	reject(component.TypeInput, input)

	text := rules.Text(c)
	if text.Confidence > TextThreshold {
		t, why := textVariant(c)
		return commit(c, t, text.Confidence, append(text.Reasons, why), alts)
	}
	reject(component.TypeText, text)

	// 4. Layout containers. Small icon glyphs drop through to the image test.
	if isLayoutContainer(c) && !isIconGlyph(c) {
		if isSection(c) {
			return commit(c, component.TypeSection, sectionConfidence,
				[]string{"top-level region with complex layout"}, alts)
		}
		if isCard(c) {
			return commit(c, component.TypeCard, cardConfidence, cardReasons, alts)
		}
		conf, reasons := containerConfidence, []string{"groups multiple children"}
		if c.Node.LayoutMode != figma.LayoutNone {
			conf += autoLayoutBonus
			reasons = []string{"uses auto-layout"}
		}
		return commit(c, component.TypeContainer, conf, reasons, alts)
	}

	// 5. Cards outside a layout container.
	if isCard(c) {
		return commit(c, component.TypeCard, cardConfidence, cardReasons, alts)
	}

	// 6. Images and icons.
	switch {
	case c.Node != nil && c.Node.HasImageFill():
		return commit(c, component.TypeImage, imageFillConfidence, []string{"has image fill"}, alts)
	case c.NodeType().IsShape() && iconNames.MatchString(strings.ToLower(c.Node.Name)):
		return commit(c, component.TypeImage, iconConfidence, []string{"shape named like an icon"}, alts)
	case isIconGlyph(c):
		return commit(c, component.TypeImage, iconConfidence, []string{"icon-sized frame named like an icon"}, alts)
	}

	// 7. Best guess.
	return commit(c, fallbackType(c), fallbackConfidence, []string{"fallback"}, alts)
}

// ClassifyTree classifies every component below root, children before
// parents, and returns the results in that order. The root itself is
// committed as the main wrapper but not included in the results.
func ClassifyTree(root *component.Component) []component.Result {
	var results []component.Result
	root.PostOrder(func(c *component.Component) {
		r := Classify(c)
		if !c.Root {
			results = append(results, r)
		}
	})
	return results
}

func commit(c *component.Component, t component.Type, conf float64, reasons []string, alts []component.Alternative) component.Result {
	c.Type = t
	c.DataPattern = dataPattern(c)
	return component.Result{
		Component:    c,
		Type:         t,
		Confidence:   rules.Clamp(conf),
		Reasons:      reasons,
		Alternatives: alts,
	}
}

func textVariant(c *component.Component) (component.Type, string) {
	if st := c.Node.Style; st != nil {
		if st.FontSize >= headingFontSize {
			return component.TypeHeading, "large font size"
		}
		if st.FontWeight >= headingFontWeight {
			return component.TypeHeading, "heavy font weight"
		}
	}
	if next := c.NextSibling(); next != nil && isInputLike(next) {
		return component.TypeLabel, "precedes an input field"
	}
	return component.TypeText, "plain text"
}

// isInputLike is a structural check; the sibling has not been classified yet.
func isInputLike(c *component.Component) bool {
	if c.Node == nil {
		return false
	}
	name := strings.ToLower(c.Node.Name)
	for _, kw := range []string{"input", "field", "textbox"} {
		if strings.Contains(name, kw) {
			return true
		}
	}
	t := c.NodeType()
	if !t.IsFrameLike() && t != figma.NodeRectangle {
		return false
	}
	return c.Node.HasStroke() && c.Node.Width() > 2*c.Node.Height()
}

func isLayoutContainer(c *component.Component) bool {
	n := len(c.Children)
	if n == 0 || c.Node == nil {
		return false
	}
	return c.Node.LayoutMode != figma.LayoutNone || (c.NodeType().IsFrameLike() && n > 1)
}

func isSection(c *component.Component) bool {
	if c.Parent != nil && !c.Parent.Root {
		return false
	}
	return len(c.Children) > sectionChildren || isComplexLayout(c)
}

func isComplexLayout(c *component.Component) bool {
	if c.Node.LayoutMode != figma.LayoutNone && len(c.Children) > complexAutoLayout {
		return true
	}
	for _, child := range c.Children {
		if child.NodeType().IsFrameLike() && len(child.Children) > 0 {
			return true
		}
	}
	return false
}

var cardReasons = []string{"rounded surface with text and nested content"}

func isCard(c *component.Component) bool {
	n := c.Node
	if n == nil || !n.Type.IsFrameLike() {
		return false
	}
	if !n.HasSolidFill() && !n.HasStroke() {
		return false
	}
	if n.CornerRadius <= 0 || c.SubtreeText() == "" {
		return false
	}
	for _, child := range c.Children {
		if child.NodeType() != figma.NodeText {
			return true
		}
	}
	return false
}

// isIconGlyph matches a small frame with no layout or text whose name, or a
// child's name, reads like an icon.
func isIconGlyph(c *component.Component) bool {
	n := c.Node
	if n == nil || !n.Type.IsFrameLike() || n.LayoutMode != figma.LayoutNone {
		return false
	}
	w, h := n.Width(), n.Height()
	if w <= 0 || h <= 0 || w > maxIconSize || h > maxIconSize {
		return false
	}
	if c.SubtreeText() != "" {
		return false
	}
	if iconNames.MatchString(strings.ToLower(n.Name)) {
		return true
	}
	for _, child := range c.Children {
		if child.Node != nil && iconNames.MatchString(strings.ToLower(child.Node.Name)) {
			return true
		}
	}
	return false
}

func fallbackType(c *component.Component) component.Type {
	t := c.NodeType()
	switch {
	case t.IsFrameLike() && len(c.Children) > 0:
		return component.TypeContainer
	case t == figma.NodeText:
		return component.TypeText
	case t.IsShape():
		return component.TypeImage
	}
	return component.TypeUnknown
}
