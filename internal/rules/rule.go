// Package rules scores a single component against the button, input and
// text patterns. Each rule is a pure function of the component and its
// children: a structural gate, a list of independent signal scorers, the
// minimum-evidence policy and a final clamp to [0, 1].
package rules

import (
	"regexp"
	"strings"

	"github.com/barun-bash/uigen/internal/component"
)

// Evidence policy. A verdict backed by fewer than MinimumEvidence signals is
// multiplied by DampeningFactor.
const (
	MinimumEvidence = 2
	DampeningFactor = 0.5
)

// Evaluation is a rule's verdict on one component.
type Evaluation struct {
	Confidence float64
	Raw        float64 // sum of signal scores before dampening and clamping
	Reasons    []string
}

// Signal is one matched piece of evidence. A negative Score counts against
// the match and still passes through dampening and clamping.
type Signal struct {
	Score  float64
	Reason string
}

// Scorer inspects one signal group and returns the signals that fired.
type Scorer func(c *component.Component) []Signal

// Gate rejects components that structurally cannot match (node type, nested
// controls). It returns the rejection reason, or "" to let scoring proceed.
type Gate func(c *component.Component) string

// Rule is a gate followed by a scorer pipeline.
type Rule struct {
	Name    string
	Gate    Gate
	Scorers []Scorer
}

// Evaluate runs the rule against c.
func (r Rule) Evaluate(c *component.Component) Evaluation {
	if c == nil || c.Node == nil {
		return Evaluation{Reasons: []string{"no design node"}}
	}
	if r.Gate != nil {
		if reason := r.Gate(c); reason != "" {
			return Evaluation{Reasons: []string{reason}}
		}
	}

	var ev Evaluation
	for _, score := range r.Scorers {
		for _, sig := range score(c) {
			ev.Raw += sig.Score
			ev.Reasons = append(ev.Reasons, sig.Reason)
		}
	}
	ev.Confidence = Clamp(Dampen(ev.Raw, len(ev.Reasons)))
	return ev
}

// Dampen applies the minimum-evidence policy: a score supported by fewer
// than MinimumEvidence reasons is halved.
func Dampen(score float64, reasons int) float64 {
	if reasons < MinimumEvidence {
		return score * DampeningFactor
	}
	return score
}

// Clamp bounds v to [0, 1].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ── shared helpers ──

const wrongNodeType = "wrong node type"

var separators = regexp.MustCompile(`[\s_\-/.]+`)

// normalize lower-cases s and collapses separators to single spaces.
func normalize(s string) string {
	return strings.TrimSpace(separators.ReplaceAllString(strings.ToLower(s), " "))
}

// phraseMatcher compiles a whole-word alternation over phrases.
func phraseMatcher(phrases ...string) *regexp.Regexp {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`)
}

// substringMatcher matches any phrase anywhere.
func substringMatcher(phrases ...string) *regexp.Regexp {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(strings.Join(quoted, "|"))
}

// hasInteractiveDescendant relies on children being classified first.
func hasInteractiveDescendant(c *component.Component) bool {
	for _, child := range c.Children {
		if child.Type.IsInteractive() || hasInteractiveDescendant(child) {
			return true
		}
	}
	return false
}

// styling scores the shared fill/corner/border combination.
func styling(c *component.Component, both, single, borderBonus float64) []Signal {
	n := c.Node
	fill := n.HasSolidFill()
	rounded := n.CornerRadius > 0
	stroke := n.HasStroke() && n.StrokeWeight > 0

	var out []Signal
	switch {
	case fill && rounded:
		out = append(out, Signal{both, "has background fill and rounded corners"})
	case fill:
		out = append(out, Signal{single, "has background fill"})
	case rounded:
		out = append(out, Signal{single, "has rounded corners"})
	}
	if stroke && fill {
		out = append(out, Signal{borderBonus, "has border over fill"})
	}
	return out
}

// envelope is an empirically derived size box plus an aspect-ratio band.
type envelope struct {
	minW, maxW float64
	minH, maxH float64
	minAspect  float64
	maxAspect  float64
}

func (e envelope) contains(w, h float64) bool {
	if w < e.minW || w > e.maxW || h < e.minH || h > e.maxH || h == 0 {
		return false
	}
	aspect := w / h
	return aspect >= e.minAspect && aspect <= e.maxAspect
}
