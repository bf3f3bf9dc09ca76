package rules

import "github.com/barun-bash/uigen/internal/component"

var (
	buttonStrongNames = phraseMatcher(
		"log in", "login", "sign in", "signin", "sign up", "signup", "register",
		"continue", "continue with google", "continue with microsoft", "continue with apple",
		"forgot password", "remember me", "get started", "submit", "save", "cancel",
		"confirm", "next", "send", "buy now", "add to cart", "checkout", "learn more",
	)
	buttonWeakNames = substringMatcher("button", "btn", "click", "cta")

	actionWords = phraseMatcher(
		"log in", "login", "sign in", "sign up", "register", "continue", "submit",
		"save", "cancel", "next", "back", "confirm", "send", "buy", "add", "get started",
		"start", "learn more", "ok", "done", "delete", "remove", "edit", "apply",
		"subscribe", "join", "try", "forgot password", "checkout", "search",
	)

	buttonSize = envelope{minW: 40, maxW: 600, minH: 24, maxH: 72, minAspect: 1, maxAspect: 15}
)

const maxButtonLabel = 30

var buttonRule = Rule{
	Name: "button",
	Gate: buttonGate,
	Scorers: []Scorer{
		buttonName,
		buttonStyling,
		buttonContent,
		buttonDimensions,
		buttonInteractions,
	},
}

// Button scores c as a button.
func Button(c *component.Component) Evaluation {
	return buttonRule.Evaluate(c)
}

// buttonGate admits frame-like nodes only. A button never wraps another
// control, so an already classified interactive descendant is a structural
// mismatch as well.
func buttonGate(c *component.Component) string {
	if !c.NodeType().IsFrameLike() {
		return wrongNodeType
	}
	if hasInteractiveDescendant(c) {
		return "contains interactive children"
	}
	return ""
}

func buttonName(c *component.Component) []Signal {
	name := normalize(c.Node.Name)
	switch {
	case buttonStrongNames.MatchString(name):
		return []Signal{{0.4, "name matches action phrase"}}
	case buttonWeakNames.MatchString(name):
		return []Signal{{0.2, "name contains generic button keyword"}}
	case inputStrongNames.MatchString(name) || inputWeakNames.MatchString(name):
		return []Signal{{-0.3, "name reads like an input field"}}
	}
	return nil
}

func buttonStyling(c *component.Component) []Signal {
	return styling(c, 0.3, 0.15, 0.05)
}

func buttonContent(c *component.Component) []Signal {
	text := normalize(c.Text())
	if text == "" {
		return nil
	}
	if !actionWords.MatchString(text) {
		if placeholderWords.MatchString(text) {
			return []Signal{{-0.2, "text reads like a field placeholder"}}
		}
		return nil
	}
	out := []Signal{{0.2, "text contains action word"}}
	if n := len([]rune(text)); n >= 1 && n <= maxButtonLabel {
		out = append(out, Signal{0.1, "text length suits a button label"})
	}
	return out
}

func buttonDimensions(c *component.Component) []Signal {
	if buttonSize.contains(c.Node.Width(), c.Node.Height()) {
		return []Signal{{0.15, "size within button range"}}
	}
	return nil
}

func buttonInteractions(c *component.Component) []Signal {
	if len(c.Node.Interactions) > 0 {
		return []Signal{{0.2, "has prototype interaction"}}
	}
	return nil
}
