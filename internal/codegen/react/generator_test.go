package react

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barun-bash/uigen/internal/component"
	"github.com/barun-bash/uigen/internal/config"
	"github.com/barun-bash/uigen/internal/figma"
	ft "github.com/barun-bash/uigen/internal/figma/figmatest"
	"github.com/barun-bash/uigen/internal/style"
)

// ── Helpers ──

func comp(t component.Type, n *figma.Node, children ...*component.Component) *component.Component {
	c := &component.Component{Type: t, Node: n, Name: n.Name, Props: map[string]string{component.PropNodeID: n.ID}}
	for _, child := range children {
		child.Parent = c
		c.Children = append(c.Children, child)
	}
	return c
}

func tree(screen string, children ...*component.Component) *component.Tree {
	root := comp(component.TypeMainWrapper, ft.Frame(screen), children...)
	root.Root = true
	return &component.Tree{Root: root, Metadata: component.TreeMetadata{ScreenName: screen}}
}

func generate(t *testing.T, opts config.Options, tr *component.Tree) string {
	t.Helper()
	files, err := New(opts).Generate(tr)
	require.NoError(t, err)
	require.NotEmpty(t, files)
	return files[0].Content
}

func withIDs() config.Options {
	opts := config.Default()
	opts.IncludeIDs = true
	return opts
}

// ── Emission ──

func TestScreenSkeleton(t *testing.T) {
	out := generate(t, config.Default(), tree("Sign up screen"))
	want := "import React from 'react';\n\n" +
		"export default function SignUpScreen() {\n" +
		"  return (\n" +
		"    <main />\n" +
		"  );\n" +
		"}\n"
	assert.Equal(t, want, out)
}

func TestElementPerType(t *testing.T) {
	h1 := ft.Text("Title", "Welcome")
	h1.Style.FontSize = 36
	h2 := ft.Text("Subtitle", "Sign in")
	h2.Style.FontSize = 24
	h3 := ft.Text("Small heading", "Details")

	tests := []struct {
		name string
		c    *component.Component
		want string
	}{
		{"h1", comp(component.TypeHeading, h1), "<h1>Welcome</h1>"},
		{"h2", comp(component.TypeHeading, h2), "<h2>Sign in</h2>"},
		{"h3", comp(component.TypeHeading, h3), "<h3>Details</h3>"},
		{"label", comp(component.TypeLabel, ft.Text("Email", "Email")), "<label>Email</label>"},
		{"text", comp(component.TypeText, ft.Text("Body", "Hello")), "<p>Hello</p>"},
		{
			"button with text child",
			comp(component.TypeButton, ft.Frame("cta"), comp(component.TypeText, ft.Text("l", "Continue"))),
			`<button type="button">Continue</button>`,
		},
		{
			"button without text",
			comp(component.TypeButton, ft.Frame("cta")),
			`<button type="button">Button</button>`,
		},
		{
			"password input",
			comp(component.TypeInput, ft.Frame("Password"), comp(component.TypeText, ft.Text("p", "Your password"))),
			`<input type="password" placeholder="Your password" />`,
		},
		{
			"phone input",
			comp(component.TypeInput, ft.Frame("Mobile number")),
			`<input type="tel" placeholder="" />`,
		},
		{
			"image placeholder",
			comp(component.TypeImage, ft.Sized(ft.Node(figma.NodeRectangle, "Hero"), 320, 200)),
			`<img src="https://placehold.co/320x200" alt="Hero" />`,
		},
		{
			"unsized image",
			comp(component.TypeImage, ft.Node(figma.NodeVector, "icon")),
			`<img src="https://placehold.co/100x100" alt="icon" />`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := generate(t, config.Default(), tree("S", tt.c))
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestInputWithStructuralChildrenIsDemoted(t *testing.T) {
	in := comp(component.TypeInput, ft.Frame("Search"),
		comp(component.TypeContainer, ft.Frame("row"), comp(component.TypeText, ft.Text("t", "Search"))),
	)
	out := generate(t, config.Default(), tree("S", in))
	assert.NotContains(t, out, "<input")
	assert.Contains(t, out, "<p>Search</p>")
}

func TestInputKeepsTextAndIconChildren(t *testing.T) {
	in := comp(component.TypeInput, ft.Frame("Search"),
		comp(component.TypeImage, ft.Node(figma.NodeVector, "search-icon")),
		comp(component.TypeText, ft.Text("t", "Find items")),
	)
	out := generate(t, config.Default(), tree("S", in))
	assert.Contains(t, out, `<input type="search" placeholder="Find items" />`)
	assert.NotContains(t, out, "<img")
}

func TestCardWrapsContent(t *testing.T) {
	card := comp(component.TypeCard, ft.Frame("Item"), comp(component.TypeText, ft.Text("t", "Sample")))
	card.Style = &style.Style{}
	card.Style.Add("bg-white", "rounded-xl")

	out := generate(t, config.Default(), tree("S", card))
	assert.Contains(t, out, "      <div className=\"bg-white rounded-xl\">\n"+
		"        <div className=\"flex flex-col\">\n"+
		"          <p>Sample</p>\n"+
		"        </div>\n"+
		"      </div>\n")
}

func TestAttributes(t *testing.T) {
	btn := comp(component.TypeButton, ft.Frame("Go"), comp(component.TypeText, ft.Text("l", "Go")))
	btn.Style = &style.Style{}
	btn.Style.Add("bg-blue-500", "rounded-lg")

	out := generate(t, withIDs(), tree("S", btn))
	assert.Contains(t, out, `<button type="button" className="bg-blue-500 rounded-lg" data-node-id="Go">Go</button>`)

	out = generate(t, config.Default(), tree("S", btn))
	assert.NotContains(t, out, "data-node-id")

	btn.Props[component.PropNodeID] = "12:7"
	btn.Props[component.PropComponentID] = "40:1"
	out = generate(t, withIDs(), tree("S", btn))
	assert.Contains(t, out, `data-node-id="12:7" data-component-id="40:1">Go</button>`)

	btn.Props = nil
	out = generate(t, withIDs(), tree("S", btn))
	assert.Contains(t, out, `<button type="button" className="bg-blue-500 rounded-lg">Go</button>`)
}

func TestEscaping(t *testing.T) {
	txt := comp(component.TypeText, ft.Text("t", `Use {braces} & <tags> "quoted"`))
	out := generate(t, config.Default(), tree("S", txt))
	assert.Contains(t, out, "<p>Use &#123;braces&#125; &amp; &lt;tags&gt; &#34;quoted&#34;</p>")
}

// ── Container flattening ──

func TestContainerSurfacesInteractiveDescendants(t *testing.T) {
	button := comp(component.TypeButton, ft.Frame("btn"), comp(component.TypeText, ft.Text("l", "Save")))
	input := comp(component.TypeInput, ft.Frame("Email field"))
	decoration := comp(component.TypeImage, ft.Node(figma.NodeVector, "divider"))
	inner := comp(component.TypeContainer, ft.Frame("inner wrapper"), input, decoration)
	outer := comp(component.TypeContainer, ft.Frame("outer wrapper"), button, inner)
	form := comp(component.TypeContainer, ft.Frame("form"), outer)

	out := generate(t, withIDs(), tree("S", form))

	assert.Contains(t, out, `data-node-id="form"`)
	assert.NotContains(t, out, `data-node-id="outer wrapper"`)
	assert.NotContains(t, out, `data-node-id="inner wrapper"`)
	assert.NotContains(t, out, `data-node-id="divider"`)
	assert.Contains(t, out, `data-node-id="btn"`)
	assert.Contains(t, out, `data-node-id="Email field"`)
	assert.Less(t, strings.Index(out, `data-node-id="btn"`), strings.Index(out, `data-node-id="Email field"`))
}

func TestContainerWithSingleInteractiveKeepsStructure(t *testing.T) {
	button := comp(component.TypeButton, ft.Frame("btn"))
	wrapper := comp(component.TypeContainer, ft.Frame("wrapper"), button)
	box := comp(component.TypeContainer, ft.Frame("box"), wrapper, comp(component.TypeText, ft.Text("t", "Note")))

	out := generate(t, withIDs(), tree("S", box))
	assert.Contains(t, out, `data-node-id="wrapper"`)
	assert.Contains(t, out, "Note</p>")
}

// ── Files ──

func TestCardExtraction(t *testing.T) {
	mk := func(title string) *component.Component {
		return comp(component.TypeCard, ft.Frame("Product card"), comp(component.TypeText, ft.Text("t", title)))
	}
	opts := config.Default()
	opts.SingleFile = false

	files, err := New(opts).Generate(tree("Shop", comp(component.TypeSection, ft.Frame("List"), mk("Boots"), mk("Hats"))))
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "Shop.tsx", files[0].Name)
	assert.Equal(t, []string{"react", "./components/ProductCard"}, files[0].Dependencies)
	assert.Equal(t, 2, strings.Count(files[0].Content, "<ProductCard />"))
	assert.Contains(t, files[0].Content, "<section>")

	assert.Equal(t, "components/ProductCard.tsx", files[1].Path)
	assert.Contains(t, files[1].Content, "<p>Boots</p>")
	assert.NotContains(t, files[1].Content, "Hats")

	files, err = New(config.Default()).Generate(tree("Shop", mk("Boots")))
	require.NoError(t, err)
	assert.Len(t, files, 1, "single-file output inlines cards")
}

func TestCardNamedLikeScreen(t *testing.T) {
	card := comp(component.TypeCard, ft.Frame("Shop"), comp(component.TypeText, ft.Text("t", "Boots")))
	opts := config.Default()
	opts.SingleFile = false

	files, err := New(opts).Generate(tree("Shop", card))
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "components/ShopCard.tsx", files[1].Path)
	assert.Contains(t, files[0].Content, "import ShopCard from './components/ShopCard';")
	assert.Contains(t, files[0].Content, "export default function Shop()")
	assert.Contains(t, files[0].Content, "<ShopCard />")
	assert.Contains(t, files[1].Content, "export default function ShopCard()")
}

func TestGenerateWithoutTree(t *testing.T) {
	_, err := New(config.Default()).Generate(nil)
	assert.ErrorIs(t, err, ErrNoTree)
	_, err = New(config.Default()).Generate(&component.Tree{})
	assert.ErrorIs(t, err, ErrNoTree)
}

func TestExportName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Sign up", "SignUp"},
		{"loginScreen", "LoginScreen"},
		{"product-card_2", "ProductCard2"},
		{"2fa setup", "Screen2faSetup"},
		{"!!!", "Screen"},
		{"", "Screen"},
	}
	for _, tt := range tests {
		if got := exportName(tt.in, "Screen"); got != tt.want {
			t.Errorf("exportName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
