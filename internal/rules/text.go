package rules

import (
	"strings"

	"github.com/barun-bash/uigen/internal/component"
	"github.com/barun-bash/uigen/internal/figma"
)

var textRule = Rule{
	Name: "text",
	Gate: func(c *component.Component) string {
		if c.NodeType() != figma.NodeText {
			return wrongNodeType
		}
		return ""
	},
	Scorers: []Scorer{textCharacters, textStyle},
}

// Text scores c as a text node. The node type alone is near-diagnostic.
func Text(c *component.Component) Evaluation {
	return textRule.Evaluate(c)
}

func textCharacters(c *component.Component) []Signal {
	if strings.TrimSpace(c.Node.Characters) != "" {
		return []Signal{{0.5, "has text characters"}}
	}
	return nil
}

func textStyle(c *component.Component) []Signal {
	s := c.Node.Style
	if s == nil {
		return nil
	}
	if s.FontSize > 0 || s.FontWeight > 0 || s.FontFamily != "" {
		return []Signal{{0.4, "has text style"}}
	}
	return nil
}
