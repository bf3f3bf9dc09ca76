package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barun-bash/uigen/internal/cli"
	"github.com/barun-bash/uigen/internal/figma"
)

var (
	inspectHidden bool
	inspectType   string
	inspectText   string
	inspectRaw    bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.json>",
	Short: "Print the design node tree of an exported Figma file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	f := inspectCmd.Flags()
	f.BoolVar(&inspectHidden, "hidden", false, "Include invisible nodes")
	f.StringVar(&inspectType, "type", "", "Only list nodes of this type (e.g. TEXT, FRAME)")
	f.StringVar(&inspectText, "text", "", "Only list text nodes containing this string")
	f.BoolVar(&inspectRaw, "raw", false, "Start from the document instead of the resolved screen root")
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := decodeFile(args[0])
	if err != nil {
		return err
	}
	root := doc
	if !inspectRaw {
		if root, err = figma.FindRoot(doc); err != nil {
			return fmt.Errorf("resolving screen: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	switch {
	case inspectText != "":
		listNodes(out, figma.FindByText(root, inspectText))
	case inspectType != "":
		t := figma.ParseNodeType(strings.ToUpper(inspectType))
		if t == figma.NodeUnknown {
			return fmt.Errorf("unknown node type %q", inspectType)
		}
		listNodes(out, figma.FindByType(root, t))
	default:
		figma.Walk(root, func(n *figma.Node, depth int) bool {
			if !n.Visible && !inspectHidden {
				return false
			}
			fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), describe(n))
			return true
		})
		visible := len(figma.Flatten(root, false))
		fmt.Fprintln(out, cli.Muted(fmt.Sprintf("%d visible node%s", visible, plural(visible))))
	}
	return nil
}

func listNodes(out io.Writer, nodes []*figma.Node) {
	for _, n := range nodes {
		if !n.Visible && !inspectHidden {
			continue
		}
		fmt.Fprintln(out, describe(n))
	}
}

func describe(n *figma.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %q", cli.Info(n.Type.String()), n.Name)
	if n.Bounds != nil {
		fmt.Fprintf(&b, " %.0f×%.0f", n.Width(), n.Height())
	}
	if n.LayoutMode != figma.LayoutNone {
		fmt.Fprintf(&b, " layout=%s", n.LayoutMode)
	}
	if n.Type == figma.NodeText && n.Characters != "" {
		fmt.Fprintf(&b, " %q", truncate(n.Characters, 40))
	}
	if !n.Visible {
		b.WriteString(" " + cli.Muted("(hidden)"))
	}
	b.WriteString(" " + cli.Muted(n.ID))
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
