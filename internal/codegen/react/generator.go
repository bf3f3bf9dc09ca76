// Package react emits React function components styled with Tailwind
// utility classes from a classified component tree.
package react

import (
	"errors"
	"fmt"
	"html"
	"math"
	"strings"
	"unicode"

	"github.com/barun-bash/uigen/internal/codegen"
	"github.com/barun-bash/uigen/internal/component"
	"github.com/barun-bash/uigen/internal/config"
)

// traceProps are the component props emitted as attributes, in order.
var traceProps = []string{component.PropNodeID, component.PropComponentID}

// ErrNoTree is returned when there is nothing to generate.
var ErrNoTree = errors.New("no component tree to generate")

// DefaultCaption labels a button whose subtree has no text.
const DefaultCaption = "Button"

const componentsDir = "components"

// Generator produces a screen component and, unless SingleFile is set, one
// file per distinct card.
type Generator struct {
	Options config.Options
}

// New returns a generator for opts with unsupported values normalized.
func New(opts config.Options) *Generator {
	opts.Normalize()
	return &Generator{Options: opts}
}

var _ codegen.Generator = (*Generator)(nil)

// Generate renders tree into source files. The screen file comes first.
func (g *Generator) Generate(tree *component.Tree) ([]codegen.File, error) {
	if tree == nil || tree.Root == nil {
		return nil, ErrNoTree
	}

	screen := exportName(tree.Metadata.ScreenName, "Screen")
	e := newEmitter(g.Options, !g.Options.SingleFile)
	e.reserved = screen

	var body strings.Builder
	e.render(&body, tree.Root, 2)

	deps := []string{"react"}
	imports := make([]string, 0, len(e.cards))
	for _, card := range e.cards {
		rel := "./" + componentsDir + "/" + card.name
		imports = append(imports, fmt.Sprintf("import %s from '%s';", card.name, rel))
		deps = append(deps, rel)
	}

	files := []codegen.File{{
		Name:         screen + ".tsx",
		Path:         screen + ".tsx",
		Content:      componentSource(screen, imports, body.String()),
		Dependencies: deps,
	}}

	for _, card := range e.cards {
		inner := newEmitter(g.Options, false)
		var b strings.Builder
		inner.card(&b, card.node, 2)
		files = append(files, codegen.File{
			Name:         card.name + ".tsx",
			Path:         componentsDir + "/" + card.name + ".tsx",
			Content:      componentSource(card.name, nil, b.String()),
			Dependencies: []string{"react"},
		})
	}
	return files, nil
}

func componentSource(name string, imports []string, body string) string {
	var b strings.Builder
	b.WriteString("import React from 'react';\n")
	for _, imp := range imports {
		b.WriteString(imp)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "export default function %s() {\n", name)
	b.WriteString("  return (\n")
	b.WriteString(body)
	b.WriteString("  );\n")
	b.WriteString("}\n")
	return b.String()
}

// ── emission ──

type extractedCard struct {
	name string
	node *component.Component
}

type emitter struct {
	opts     config.Options
	extract  bool
	reserved string // screen component name; cards may not reuse it
	cards    []*extractedCard
	byName   map[string]*extractedCard
}

func newEmitter(opts config.Options, extract bool) *emitter {
	return &emitter{opts: opts, extract: extract, byName: map[string]*extractedCard{}}
}

func line(b *strings.Builder, depth int, format string, args ...any) {
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, format, args...)
	b.WriteString("\n")
}

func (e *emitter) render(b *strings.Builder, c *component.Component, depth int) {
	switch c.Type {
	case component.TypeMainWrapper:
		e.wrap(b, "main", c, c.Children, depth)
	case component.TypeSection:
		e.wrap(b, "section", c, c.Children, depth)
	case component.TypeButton:
		line(b, depth, `<button type="button"%s>%s</button>`, e.attrs(c), escapeText(buttonCaption(c)))
	case component.TypeInput:
		if hasStructuralChildren(c) {
			e.container(b, c, depth)
			return
		}
		placeholder := textOf(c)
		line(b, depth, `<input type="%s" placeholder="%s"%s />`,
			inputType(c.Name, placeholder), escapeAttr(placeholder), e.attrs(c))
	case component.TypeHeading:
		tag := headingTag(c)
		line(b, depth, "<%s%s>%s</%s>", tag, e.attrs(c), escapeText(textOf(c)), tag)
	case component.TypeLabel:
		line(b, depth, "<label%s>%s</label>", e.attrs(c), escapeText(textOf(c)))
	case component.TypeText:
		line(b, depth, "<p%s>%s</p>", e.attrs(c), escapeText(textOf(c)))
	case component.TypeCard:
		if e.extract {
			line(b, depth, "<%s />", e.register(c))
			return
		}
		e.card(b, c, depth)
	case component.TypeImage:
		line(b, depth, `<img src="%s" alt="%s"%s />`, escapeAttr(e.imageSource(c)), escapeAttr(c.Name), e.attrs(c))
	default:
		e.container(b, c, depth)
	}
}

// container surfaces interactive descendants directly when there is more
// than one, dropping the wrappers between them and c.
func (e *emitter) container(b *strings.Builder, c *component.Component, depth int) {
	if found := interactiveDescendants(c); len(found) > 1 {
		e.wrap(b, "div", c, found, depth)
		return
	}
	e.wrap(b, "div", c, c.Children, depth)
}

func (e *emitter) card(b *strings.Builder, c *component.Component, depth int) {
	line(b, depth, "<div%s>", e.attrs(c))
	e.wrap(b, "div", nil, c.Children, depth+1)
	line(b, depth, "</div>")
}

// wrap emits tag around children. A nil c yields the card content wrapper.
func (e *emitter) wrap(b *strings.Builder, tag string, c *component.Component, children []*component.Component, depth int) {
	attrs := ` className="flex flex-col"`
	if c != nil {
		attrs = e.attrs(c)
	}
	if len(children) == 0 {
		line(b, depth, "<%s%s />", tag, attrs)
		return
	}
	line(b, depth, "<%s%s>", tag, attrs)
	for _, child := range children {
		e.render(b, child, depth+1)
	}
	line(b, depth, "</%s>", tag)
}

func (e *emitter) attrs(c *component.Component) string {
	var b strings.Builder
	if cls := c.Style.ClassName(); cls != "" {
		fmt.Fprintf(&b, ` className="%s"`, escapeAttr(cls))
	}
	if e.opts.IncludeIDs {
		for _, key := range traceProps {
			if v := c.Props[key]; v != "" {
				fmt.Fprintf(&b, ` %s="%s"`, key, escapeAttr(v))
			}
		}
	}
	return b.String()
}

// register returns the component name for a card, recording the first card
// seen under each name.
func (e *emitter) register(c *component.Component) string {
	name := exportName(c.Name, "Card")
	if name == e.reserved {
		name += "Card"
	}
	if _, ok := e.byName[name]; !ok {
		card := &extractedCard{name: name, node: c}
		e.byName[name] = card
		e.cards = append(e.cards, card)
	}
	return name
}

func (e *emitter) imageSource(c *component.Component) string {
	if c.Content != nil && c.Content.ImageURL != "" {
		return c.Content.ImageURL
	}
	p := e.opts.ImagePlaceholder
	if p == "" {
		p = config.DefaultImagePlaceholder
	}
	if strings.Count(p, "%d") != 2 {
		return p
	}
	var w, h float64
	if c.Node != nil {
		w, h = c.Node.Width(), c.Node.Height()
	}
	return fmt.Sprintf(p, pixelSize(w), pixelSize(h))
}

func pixelSize(v float64) int {
	if v < 1 {
		return 100
	}
	return int(math.Round(v))
}

// ── content ──

// textOf walks the content field, then the characters of the node, then
// the first TEXT child.
func textOf(c *component.Component) string {
	if t := strings.TrimSpace(c.Text()); t != "" {
		return t
	}
	if c.Node != nil {
		if t := strings.TrimSpace(c.Node.Characters); t != "" {
			return t
		}
	}
	for _, child := range c.Children {
		if child.Node != nil && child.Node.Characters != "" {
			if t := strings.TrimSpace(child.Node.Characters); t != "" {
				return t
			}
		}
	}
	return ""
}

func buttonCaption(c *component.Component) string {
	if t := textOf(c); t != "" {
		return t
	}
	if t := c.SubtreeText(); t != "" {
		return t
	}
	return DefaultCaption
}

func interactiveDescendants(c *component.Component) []*component.Component {
	var out []*component.Component
	for _, child := range c.Children {
		if child.Type.IsInteractive() {
			out = append(out, child)
			continue
		}
		out = append(out, interactiveDescendants(child)...)
	}
	return out
}

// hasStructuralChildren reports children other than text and images. Only
// such children demote an input to a container: a field holding just its
// placeholder text and an adornment icon still emits <input>, although it
// technically has children.
func hasStructuralChildren(c *component.Component) bool {
	for _, child := range c.Children {
		if !child.Type.IsTextual() && child.Type != component.TypeImage {
			return true
		}
	}
	return false
}

func headingTag(c *component.Component) string {
	var size float64
	if c.Node != nil && c.Node.Style != nil {
		size = c.Node.Style.FontSize
	}
	switch {
	case size >= 32:
		return "h1"
	case size >= 24:
		return "h2"
	default:
		return "h3"
	}
}

func inputType(name, placeholder string) string {
	s := strings.ToLower(name + " " + placeholder)
	switch {
	case strings.Contains(s, "password"):
		return "password"
	case strings.Contains(s, "email"), strings.Contains(s, "e-mail"), strings.Contains(s, "@"):
		return "email"
	case strings.Contains(s, "search"):
		return "search"
	case strings.Contains(s, "phone"), strings.Contains(s, "mobile"):
		return "tel"
	}
	return "text"
}

// ── escaping and naming ──

var braces = strings.NewReplacer("{", "&#123;", "}", "&#125;")

func escapeText(s string) string {
	return braces.Replace(html.EscapeString(s))
}

func escapeAttr(s string) string {
	return html.EscapeString(s)
}

// exportName turns an arbitrary display name into a capitalized JSX
// component identifier.
func exportName(name, fallback string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	out := b.String()
	switch {
	case out == "":
		return fallback
	case unicode.IsDigit([]rune(out)[0]):
		return fallback + out
	}
	return out
}
