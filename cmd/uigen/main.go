// Command uigen turns exported Figma JSON into React components.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/barun-bash/uigen/internal/cli"
	"github.com/barun-bash/uigen/internal/config"
	"github.com/barun-bash/uigen/internal/errors"
	"github.com/barun-bash/uigen/internal/figma"
)

var (
	rootCmd = &cobra.Command{
		Use:           "uigen",
		Short:         "Generate React + Tailwind components from Figma designs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				cli.ColorEnabled = false
			}
			if verbose {
				logger = log.New(os.Stderr, "[uigen] ", log.LstdFlags)
			}
		},
	}

	configPath string
	cachePath  string
	verbose    bool
	noColor    bool

	logger = log.New(io.Discard, "", 0)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Error(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "uigen.yaml", "Path to the YAML options file")
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache-path", "", "Path to the result cache database (default: user cache dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline stages to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadOptions reads the options file and applies the generation flags the
// user set explicitly.
func loadOptions(cmd *cobra.Command) (config.Options, error) {
	opts, err := config.Load(configPath)
	if err != nil {
		return opts, err
	}
	flags := cmd.Flags()
	if flags.Changed("framework") {
		opts.Framework = framework
	}
	if flags.Changed("ids") {
		opts.IncludeIDs = includeIDs
	}
	if flags.Changed("single-file") {
		opts.SingleFile = singleFile
	}
	if flags.Changed("naming") {
		opts.Naming = config.Naming(naming)
	}
	return opts, nil
}

func decodeFile(path string) (*figma.Node, error) {
	doc, err := figma.DecodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return doc, nil
}

// printDiagnostic prints a pipeline diagnostic with its suggestion (if any) to stderr.
func printDiagnostic(e *errors.Error) {
	switch e.Severity {
	case errors.SeverityWarning:
		fmt.Fprintln(os.Stderr, cli.Warn(e.Format()))
	case errors.SeverityHint:
		fmt.Fprintln(os.Stderr, cli.Muted(e.Format()))
	default:
		fmt.Fprintln(os.Stderr, cli.Error(e.Format()))
	}
	if e.Suggestion != "" {
		fmt.Fprintf(os.Stderr, "  suggestion: %s\n", e.Suggestion)
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func rule(width int) string {
	return "  " + strings.Repeat("─", width)
}
