package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barun-bash/uigen/internal/cache"
	"github.com/barun-bash/uigen/internal/cli"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the generation result cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached result",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCache()
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Clear(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cli.Success(fmt.Sprintf("Removed %d cached result%s", n, plural(int(n)))))
		return nil
	},
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove cached results older than seven days",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCache()
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Prune(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cli.Success(fmt.Sprintf("Pruned %d expired result%s", n, plural(int(n)))))
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePruneCmd)
}

func openCache() (*cache.Store, error) {
	path := cachePath
	if path == "" {
		var err error
		if path, err = cache.DefaultPath(); err != nil {
			return nil, err
		}
	}
	logger.Printf("using cache %s", path)
	return cache.Open(path)
}
