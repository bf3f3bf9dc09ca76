package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/barun-bash/uigen/internal/cache"
	"github.com/barun-bash/uigen/internal/cli"
	"github.com/barun-bash/uigen/internal/codegen"
	"github.com/barun-bash/uigen/internal/config"
	"github.com/barun-bash/uigen/internal/errors"
	"github.com/barun-bash/uigen/internal/pipeline"
)

var (
	outDir     string
	framework  string
	includeIDs bool
	singleFile bool
	naming     string
	highlight  bool
	useCache   bool
	jobs       int
)

var errRunFailed = stderrors.New("generation failed")

var generateCmd = &cobra.Command{
	Use:   "generate <file.json>...",
	Short: "Generate components from one or more exported Figma files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&outDir, "out", "o", "generated", "Output directory")
	f.StringVar(&framework, "framework", config.FrameworkReact, "Target framework")
	f.BoolVar(&includeIDs, "ids", false, "Emit data-node-id and data-component-id attributes")
	f.BoolVar(&singleFile, "single-file", true, "Inline cards instead of extracting component files")
	f.StringVar(&naming, "naming", string(config.NamingTitle), "Component naming convention (title or camel)")
	f.BoolVar(&highlight, "highlight", false, "Print generated source to stdout with syntax highlighting")
	f.BoolVar(&useCache, "cache", false, "Reuse results cached for identical input")
	f.IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "Number of files processed concurrently")
}

// console serializes writes from concurrent runs.
type console struct {
	mu  sync.Mutex
	out io.Writer
}

func (c *console) println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, s)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := cli.SetupSignalHandler()
	defer cancel()

	var store *cache.Store
	if useCache {
		if store, err = openCache(); err != nil {
			return err
		}
		defer store.Close()
	}

	out := &console{out: cmd.OutOrStdout()}
	plain := len(args) > 1

	var (
		mu     sync.Mutex
		failed []string
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for _, path := range args {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := generateFile(ctx, path, opts, store, plain, out); err != nil {
				if !stderrors.Is(err, errRunFailed) {
					out.println(cli.Error(err.Error()))
				}
				mu.Lock()
				failed = append(failed, path)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d file%s failed: %s", len(failed), len(args), plural(len(args)), strings.Join(failed, ", "))
	}
	return nil
}

func generateFile(ctx context.Context, path string, opts config.Options, store *cache.Store, plain bool, out *console) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	title := filepath.Base(path)
	dest := filepath.Join(outDir, strings.TrimSuffix(title, filepath.Ext(title)))

	var key string
	if store != nil {
		key = cache.Key(data, opts)
		entry, ok, err := store.Get(ctx, key)
		switch {
		case err != nil:
			logger.Printf("cache lookup for %s: %v", path, err)
		case ok:
			if err := writeFiles(dest, entry.Files); err != nil {
				return err
			}
			out.println(cli.Success(fmt.Sprintf("%s: %s from cache, %d file%s in %s/",
				title, entry.ScreenName, len(entry.Files), plural(len(entry.Files)), dest)))
			printSources(out, entry.Files)
			return nil
		}
	}

	doc, err := decodeFile(path)
	if err != nil {
		return err
	}

	reporter := cli.NewReporter(os.Stderr, title, plain)
	res := pipeline.Run(doc, pipeline.Options{
		Config:   opts,
		Logger:   logger,
		Progress: reporter.Report,
		OnError: func(e *errors.Error) {
			if e.Recoverable {
				printDiagnostic(e)
			}
		},
	})
	if !res.Success {
		for _, e := range res.Errors {
			if !e.Recoverable {
				reporter.Fail(e.Format())
				if e.Suggestion != "" {
					fmt.Fprintf(os.Stderr, "  suggestion: %s\n", e.Suggestion)
				}
			}
		}
		return errRunFailed
	}

	if err := writeFiles(dest, res.Files); err != nil {
		return err
	}
	if store != nil {
		err := store.Put(ctx, &cache.Entry{
			Key:        key,
			RunID:      res.Metadata.RunID,
			ScreenName: res.Metadata.ScreenName,
			Files:      res.Files,
		})
		if err != nil {
			logger.Printf("caching %s: %v", path, err)
		}
	}

	md := res.Metadata
	out.println(cli.Success(fmt.Sprintf("%s: %s, %d component%s (%s), %d file%s, %d line%s in %s/",
		title, md.ScreenName, md.ComponentCount, plural(md.ComponentCount), md.Complexity,
		md.FileCount, plural(md.FileCount), md.LineCount, plural(md.LineCount), dest)))
	printSources(out, res.Files)
	return nil
}

func writeFiles(dir string, files []codegen.File) error {
	for _, f := range files {
		p := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(p), err)
		}
		if err := os.WriteFile(p, []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", p, err)
		}
	}
	return nil
}

func printSources(out *console, files []codegen.File) {
	if !highlight {
		return
	}
	for _, f := range files {
		out.println(cli.Muted("// " + f.Path))
		out.println(cli.Highlight(f.Content))
	}
}
