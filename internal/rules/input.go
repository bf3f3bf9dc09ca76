package rules

import (
	"regexp"
	"strings"

	"github.com/barun-bash/uigen/internal/component"
	"github.com/barun-bash/uigen/internal/figma"
)

var (
	inputStrongNames = phraseMatcher(
		"email", "e mail", "password", "username", "user name", "search", "phone",
		"first name", "last name", "full name", "zip", "city",
	)
	inputWeakNames = substringMatcher(
		"input", "field", "textbox", "text field", "enter your", "placeholder", "textarea",
	)

	// Matched against normalized text, so "e.g." arrives as "e g".
	placeholderWords = regexp.MustCompile(
		`\b(enter|type|your|search|e g|example|email|password|username)\b|@`,
	)

	inputSize = envelope{minW: 120, maxW: 800, minH: 28, maxH: 64, minAspect: 2.5, maxAspect: 100}
)

const (
	maxPlaceholder   = 40
	maxFieldLabel    = 30
	maxInputChildren = 3
)

var inputRule = Rule{
	Name: "input",
	Gate: inputGate,
	Scorers: []Scorer{
		inputName,
		inputStyling,
		inputContent,
		inputDimensions,
		inputContext,
		inputStructure,
	},
}

// Input scores c as a text input.
func Input(c *component.Component) Evaluation {
	return inputRule.Evaluate(c)
}

// inputGate admits frames and raw rectangles. Like buttons, a field never
// wraps another control.
func inputGate(c *component.Component) string {
	t := c.NodeType()
	if !t.IsFrameLike() && t != figma.NodeRectangle {
		return wrongNodeType
	}
	if hasInteractiveDescendant(c) {
		return "contains interactive children"
	}
	return ""
}

func inputName(c *component.Component) []Signal {
	name := normalize(c.Node.Name)
	switch {
	case inputStrongNames.MatchString(name):
		return []Signal{{0.4, "name matches field name"}}
	case inputWeakNames.MatchString(name):
		return []Signal{{0.2, "name contains generic input keyword"}}
	}
	return nil
}

func inputStyling(c *component.Component) []Signal {
	out := styling(c, 0.2, 0.1, 0.1)
	if c.Node.HasStroke() && c.Node.StrokeWeight > 0 && !c.Node.HasSolidFill() {
		out = append(out, Signal{0.15, "has outline border"})
	}
	return out
}

func inputContent(c *component.Component) []Signal {
	text := normalize(c.Text())
	if text == "" || !placeholderWords.MatchString(text) {
		return nil
	}
	out := []Signal{{0.2, "text reads like a placeholder"}}
	if n := len([]rune(text)); n <= maxPlaceholder {
		out = append(out, Signal{0.05, "text length suits a placeholder"})
	}
	return out
}

func inputDimensions(c *component.Component) []Signal {
	if inputSize.contains(c.Node.Width(), c.Node.Height()) {
		return []Signal{{0.15, "size within input range"}}
	}
	return nil
}

func inputContext(c *component.Component) []Signal {
	var out []Signal
	if prev := c.PrevSibling(); prev != nil && prev.NodeType() == figma.NodeText {
		if n := len([]rune(strings.TrimSpace(prev.Node.Characters))); n > 0 && n <= maxFieldLabel {
			out = append(out, Signal{0.15, "preceded by a short label"})
		}
	}
	if c.Parent != nil && c.Parent.Node != nil && strings.Contains(normalize(c.Parent.Node.Name), "form") {
		out = append(out, Signal{0.05, "inside a form"})
	}
	return out
}

// inputStructure penalizes shapes that hold more than a field would.
func inputStructure(c *component.Component) []Signal {
	var out []Signal
	if len(c.Children) > maxInputChildren {
		out = append(out, Signal{-0.2, "too many children for a field"})
	}
	texts := 0
	for _, child := range c.Children {
		if child.NodeType() == figma.NodeText {
			texts++
		}
	}
	if texts > 1 {
		out = append(out, Signal{-0.3, "holds several text blocks"})
	}
	return out
}
