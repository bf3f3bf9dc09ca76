package classifier

import (
	"regexp"
	"strings"

	"github.com/barun-bash/uigen/internal/component"
)

type domainKeywords struct {
	context  component.UIContext
	keywords []string
}

// Ordered: the first matching domain wins.
var domains = []domainKeywords{
	{component.ContextAuth, []string{"login", "log in", "sign in", "sign up", "password", "register", "forgot", "email", "username", "account"}},
	{component.ContextEcommerce, []string{"cart", "checkout", "product", "price", "buy", "shop", "order", "$"}},
	{component.ContextFinance, []string{"balance", "transaction", "payment", "transfer", "bank", "invoice", "wallet"}},
	{component.ContextDashboard, []string{"dashboard", "analytics", "chart", "report", "metrics", "overview", "stats"}},
	{component.ContextSocial, []string{"like", "comment", "share", "follow", "post", "friend", "message", "profile"}},
}

var domainPatterns = compileDomains(domains)

var wordChars = regexp.MustCompile(`\w`)

func compileDomains(ds []domainKeywords) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(ds))
	for i, d := range ds {
		var words, symbols []string
		for _, kw := range d.keywords {
			if wordChars.MatchString(kw) {
				words = append(words, regexp.QuoteMeta(kw))
			} else {
				symbols = append(symbols, regexp.QuoteMeta(kw))
			}
		}
		// Whole words with an optional plural; symbols such as "$" match anywhere.
		alts := []string{`\b(?:` + strings.Join(words, "|") + `)(?:e?s)?\b`}
		if len(symbols) > 0 {
			alts = append(alts, strings.Join(symbols, "|"))
		}
		out[i] = regexp.MustCompile(strings.Join(alts, "|"))
	}
	return out
}

// InferContext scans the names and text of c and its descendants for
// domain keywords. It returns ContextGeneral when nothing matches.
func InferContext(c *component.Component) component.UIContext {
	var parts []string
	c.Walk(func(n *component.Component) {
		if n.Node == nil {
			return
		}
		parts = append(parts, n.Node.Name)
		if n.Node.Characters != "" {
			parts = append(parts, n.Node.Characters)
		}
	})
	hay := strings.ToLower(strings.Join(parts, " "))
	for i, re := range domainPatterns {
		if re.MatchString(hay) {
			return domains[i].context
		}
	}
	return component.ContextGeneral
}

// dataPattern flags cards, and text-bearing containers or buttons that share
// a parent with siblings, as one instance of a repeated list.
func dataPattern(c *component.Component) *component.DataPattern {
	if !isRepeatable(c) {
		return nil
	}
	return &component.DataPattern{Repeatable: true, Context: InferContext(c)}
}

func isRepeatable(c *component.Component) bool {
	switch c.Type {
	case component.TypeCard:
		return true
	case component.TypeContainer, component.TypeButton:
		return c.Parent != nil && len(c.Parent.Children) > 1 && c.SubtreeText() != ""
	}
	return false
}
