package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barun-bash/uigen/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of uigen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "uigen v%s\n", version.Info())
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n  built:  %s\n", version.CommitSHA, version.BuildDate)
		}
	},
}
