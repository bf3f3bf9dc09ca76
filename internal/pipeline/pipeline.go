// Package pipeline turns a design document into a classified component
// tree and generated source files. A run resolves the screen root, builds
// the component tree, classifies every non-root component and hands the
// finished tree to the code generator.
package pipeline

import (
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/barun-bash/uigen/internal/classifier"
	"github.com/barun-bash/uigen/internal/codegen"
	"github.com/barun-bash/uigen/internal/codegen/react"
	"github.com/barun-bash/uigen/internal/component"
	"github.com/barun-bash/uigen/internal/config"
	"github.com/barun-bash/uigen/internal/errors"
	"github.com/barun-bash/uigen/internal/figma"
)

// Phase names a progress milestone.
type Phase string

const (
	PhaseAnalyzing   Phase = "analyzing"
	PhaseBuilding    Phase = "building"
	PhaseClassifying Phase = "classifying"
	PhaseGenerating  Phase = "generating"
	PhaseComplete    Phase = "complete"
)

// Progress is one milestone notification.
type Progress struct {
	Phase   Phase
	Step    string
	Percent int
	Current string // component being processed, if any
}

// ProgressFunc receives milestones. It must not block.
type ProgressFunc func(Progress)

// ErrorFunc receives each diagnostic as it is recorded.
type ErrorFunc func(*errors.Error)

// Options configures a run. Config is normalized before use.
type Options struct {
	Config    config.Options
	Logger    *log.Logger
	Progress  ProgressFunc
	OnError   ErrorFunc
	ImageURLs map[string]string // image fill ref → resolved URL

	// Generator overrides the React generator built from Config.
	Generator codegen.Generator
}

// Metadata summarizes a run.
type Metadata struct {
	RunID          ulid.ULID            `json:"run_id"`
	ScreenName     string               `json:"screen_name"`
	Timestamp      time.Time            `json:"timestamp"`
	FileCount      int                  `json:"file_count"`
	LineCount      int                  `json:"line_count"`
	ComponentCount int                  `json:"component_count"`
	Complexity     component.Complexity `json:"complexity"`
	Duration       time.Duration        `json:"duration"`
}

// Result is the outcome of a run. On failure Files is empty and Errors
// holds the non-recoverable diagnostic.
type Result struct {
	Success bool            `json:"success"`
	Files   []codegen.File  `json:"files"`
	Errors  []*errors.Error `json:"errors,omitempty"`

	Tree            *component.Tree    `json:"-"`
	Classifications []component.Result `json:"-"`

	Metadata Metadata `json:"metadata"`
}

// Analysis is a classified tree without generated output.
type Analysis struct {
	Tree            *component.Tree
	Classifications []component.Result
}

type run struct {
	opts  Options
	log   *log.Logger
	errs  errors.List
	stage errors.Stage
}

func newRun(opts Options) *run {
	r := &run{opts: opts, log: opts.Logger, stage: errors.StageParse}
	if r.log == nil {
		r.log = log.New(io.Discard, "", 0)
	}
	return r
}

func (r *run) progress(phase Phase, step string, pct int, current string) {
	if r.opts.Progress != nil {
		r.opts.Progress(Progress{Phase: phase, Step: step, Percent: pct, Current: current})
	}
}

func (r *run) report(e *errors.Error) {
	r.errs.Add(e)
	if e.Severity == errors.SeverityError {
		r.log.Printf("%s", e.Format())
	}
	if r.opts.OnError != nil {
		r.opts.OnError(e)
	}
}

// Run executes the whole pipeline on doc, which may be a document, a
// canvas or a bare node.
func Run(doc *figma.Node, opts Options) (res *Result) {
	start := time.Now()
	r := newRun(opts)
	res = &Result{Metadata: Metadata{RunID: ulid.Make(), Timestamp: start.UTC()}}

	defer func() {
		if p := recover(); p != nil {
			r.report(errors.New(errors.CodePanic, r.stage, fmt.Errorf("internal error: %v", p)))
			res.Success = false
			res.Files = nil
		}
		res.Errors = r.errs.All()
		res.Metadata.Duration = time.Since(start)
	}()

	for _, w := range r.opts.Config.Normalize() {
		r.report(w)
	}

	analysis, err := r.analyze(doc)
	if err != nil {
		return res
	}
	res.Tree = analysis.Tree
	res.Classifications = analysis.Classifications
	res.Metadata.ScreenName = analysis.Tree.Metadata.ScreenName
	res.Metadata.ComponentCount = analysis.Tree.Metadata.TotalComponents
	res.Metadata.Complexity = analysis.Tree.Metadata.Complexity

	r.stage = errors.StageGenerate
	r.progress(PhaseGenerating, "Generating markup", 85, analysis.Tree.Metadata.ScreenName)
	gen := r.opts.Generator
	if gen == nil {
		gen = react.New(r.opts.Config)
	}
	files, err := gen.Generate(analysis.Tree)
	if err != nil {
		r.report(errors.New(errors.CodeGeneration, errors.StageGenerate, fmt.Errorf("generating markup: %w", err)))
		return res
	}

	res.Success = true
	res.Files = files
	res.Metadata.FileCount = len(files)
	for _, f := range files {
		res.Metadata.LineCount += f.Lines()
	}
	r.log.Printf("generated %d file(s), %d line(s)", res.Metadata.FileCount, res.Metadata.LineCount)
	r.progress(PhaseComplete, "Done", 100, "")
	return res
}

// Analyze resolves the root, builds the tree and classifies it without
// generating output. Diagnostics go to opts.OnError.
func Analyze(doc *figma.Node, opts Options) (*Analysis, error) {
	r := newRun(opts)
	return r.analyze(doc)
}

func (r *run) analyze(doc *figma.Node) (*Analysis, error) {
	r.progress(PhaseAnalyzing, "Analyzing document structure", 10, "")
	root, err := figma.FindRoot(doc)
	if err != nil {
		r.report(errors.New(rootErrorCode(err), errors.StageParse, fmt.Errorf("resolving screen: %w", err)))
		return nil, err
	}
	screen := ScreenName(root)
	r.log.Printf("resolved root %q (%s), screen %q", root.Name, root.Type, screen)

	r.progress(PhaseBuilding, "Building component tree", 30, screen)
	tree := &component.Tree{Root: BuildTree(root, r.opts.Config.Naming, r.opts.ImageURLs)}
	tree.Root.Walk(func(c *component.Component) {
		tree.Components = append(tree.Components, c)
	})

	r.stage = errors.StageClassify
	r.progress(PhaseClassifying, "Classifying components", 60, screen)
	results := classifier.ClassifyTree(tree.Root)

	tree.Metadata = summarize(tree, screen)
	r.log.Printf("classified %d component(s): %d interactive, %d repeatable",
		tree.Metadata.TotalComponents, tree.Metadata.InteractiveCount, tree.Metadata.RepeatableCount)
	return &Analysis{Tree: tree, Classifications: results}, nil
}

func summarize(tree *component.Tree, screen string) component.TreeMetadata {
	md := component.TreeMetadata{
		ScreenName:      screen,
		TotalComponents: len(tree.Components),
	}
	for _, c := range tree.Components {
		if c.Type.IsInteractive() {
			md.InteractiveCount++
		}
		if c.DataPattern != nil && c.DataPattern.Repeatable {
			md.RepeatableCount++
		}
	}
	md.Complexity = component.ComplexityFor(md.TotalComponents)
	return md
}

func rootErrorCode(err error) string {
	switch {
	case stderrors.Is(err, figma.ErrNilNode):
		return errors.CodeNilInput
	case stderrors.Is(err, figma.ErrEmptyDocument):
		return errors.CodeEmptyDocument
	default:
		return errors.CodeNoRoot
	}
}
