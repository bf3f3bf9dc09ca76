package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/barun-bash/uigen/internal/config"
	"github.com/barun-bash/uigen/internal/figma"
)

// DefaultScreenName is used when no meaningful frame name exists.
const DefaultScreenName = "Screen"

// genericName matches names the design tool assigns automatically.
var genericName = regexp.MustCompile(`^(Frame|Group|Rectangle|Component|Instance|Vector|Ellipse|Text)( \d+)?$`)

// ScreenName picks a readable name for the screen: the root's own name,
// else its first meaningfully named child, else DefaultScreenName.
func ScreenName(root *figma.Node) string {
	if root == nil {
		return DefaultScreenName
	}
	if name := strings.TrimSpace(root.Name); name != "" && !genericName.MatchString(name) {
		return name
	}
	for _, child := range root.Children {
		if !child.Visible {
			continue
		}
		if name := strings.TrimSpace(child.Name); name != "" && !genericName.MatchString(name) {
			return name
		}
	}
	return DefaultScreenName
}

// namer converts layer names into identifiers in one convention. Casers
// are stateful, so each run owns its own.
type namer struct {
	naming config.Naming
	title  cases.Caser
	lower  cases.Caser
}

func newNamer(naming config.Naming) *namer {
	return &namer{
		naming: naming,
		title:  cases.Title(language.Und),
		lower:  cases.Lower(language.Und),
	}
}

// name turns "sign up button" into "SignUpButton", or "signUpButton" in
// camel case.
func (n *namer) name(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	for i, w := range words {
		if i == 0 && n.naming == config.NamingCamel {
			b.WriteString(n.lower.String(w))
			continue
		}
		b.WriteString(n.title.String(w))
	}
	return b.String()
}

// splitWords breaks s on separators and lower-to-upper case transitions.
func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	var prev rune
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return words
}
