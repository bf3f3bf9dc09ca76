package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/barun-bash/uigen/internal/cli"
	"github.com/barun-bash/uigen/internal/component"
	"github.com/barun-bash/uigen/internal/pipeline"
)

var (
	showAlternatives bool
	classifyJSON     bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file.json>",
	Short: "Show how each component of a screen was classified",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().BoolVarP(&showAlternatives, "alternatives", "a", false, "List rejected classifications")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print classifications as JSON")
}

// classification is the printable form of one component's result.
type classification struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Depth        int      `json:"depth"`
	Type         string   `json:"type"`
	Confidence   float64  `json:"confidence"`
	Reasons      []string `json:"reasons"`
	Alternatives []string `json:"alternatives,omitempty"`
	Repeatable   bool     `json:"repeatable,omitempty"`
	Context      string   `json:"context,omitempty"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	doc, err := decodeFile(args[0])
	if err != nil {
		return err
	}
	analysis, err := pipeline.Analyze(doc, pipeline.Options{
		Config:  opts,
		Logger:  logger,
		OnError: printDiagnostic,
	})
	if err != nil {
		return err
	}

	rows := classifications(analysis)
	if classifyJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	printClassifications(cmd.OutOrStdout(), analysis.Tree.Metadata, rows)
	return nil
}

func classifications(a *pipeline.Analysis) []classification {
	byComponent := make(map[*component.Component]component.Result, len(a.Classifications))
	for _, r := range a.Classifications {
		byComponent[r.Component] = r
	}

	var rows []classification
	for _, c := range a.Tree.Components {
		row := classification{Name: c.Name, Depth: depth(c), Type: c.Type.String()}
		if c.Node != nil {
			row.ID = c.Node.ID
		}
		if r, ok := byComponent[c]; ok {
			row.Confidence = r.Confidence
			row.Reasons = r.Reasons
			for _, alt := range r.Alternatives {
				row.Alternatives = append(row.Alternatives, fmt.Sprintf("%s %.2f", alt.Type, alt.Confidence))
			}
		} else if c.Root {
			row.Confidence = 1
			row.Reasons = []string{"screen root"}
		}
		if c.DataPattern != nil && c.DataPattern.Repeatable {
			row.Repeatable = true
			row.Context = string(c.DataPattern.Context)
		}
		rows = append(rows, row)
	}
	return rows
}

func depth(c *component.Component) int {
	d := 0
	for p := c.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

func printClassifications(out io.Writer, md component.TreeMetadata, rows []classification) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", cli.Info(fmt.Sprintf("%s: %d component%s, %d interactive, %d repeatable (%s)",
		md.ScreenName, md.TotalComponents, plural(md.TotalComponents), md.InteractiveCount, md.RepeatableCount, md.Complexity)))
	fmt.Fprintln(out, rule(70))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Component\tType\tConfidence\tReasons")
	for _, r := range rows {
		typ := r.Type
		if r.Repeatable {
			typ += " *" + r.Context
		}
		fmt.Fprintf(tw, "  %s%s\t%s\t%.2f\t%s\n",
			strings.Repeat("  ", r.Depth), r.Name, typ, r.Confidence, strings.Join(r.Reasons, "; "))
		if showAlternatives && len(r.Alternatives) > 0 {
			fmt.Fprintf(tw, "  %s\t\t\t%s\n", strings.Repeat("  ", r.Depth+1), cli.Muted("also: "+strings.Join(r.Alternatives, ", ")))
		}
	}
	tw.Flush()
	fmt.Fprintln(out, rule(70))
}
