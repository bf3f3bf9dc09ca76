package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/barun-bash/uigen/internal/pipeline"
)

const barWidth = 20

// Reporter renders pipeline progress. On a TTY it redraws a single bar
// line; otherwise it prints one line per milestone.
type Reporter struct {
	out   io.Writer
	title string
	mu    sync.Mutex
	tty   bool
	last  pipeline.Progress
}

// NewReporter creates a reporter writing to out. Set plain to force
// line-per-milestone output, e.g. when several runs share a terminal.
func NewReporter(out io.Writer, title string, plain bool) *Reporter {
	tty := false
	if f, ok := out.(*os.File); ok && !plain {
		tty = isTerminal(f)
	}
	return &Reporter{out: out, title: title, tty: tty}
}

// Report implements pipeline.ProgressFunc.
func (r *Reporter) Report(p pipeline.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = p

	if r.tty {
		fmt.Fprintf(r.out, "\r\033[K%s", r.line(p))
		if p.Phase == pipeline.PhaseComplete {
			fmt.Fprintln(r.out)
		}
		return
	}
	fmt.Fprintln(r.out, r.line(p))
}

// Fail ends the display with an error marker.
func (r *Reporter) Fail(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tty {
		fmt.Fprint(r.out, "\r\033[K")
	}
	fmt.Fprintf(r.out, "  %s\n", Error(fmt.Sprintf("%s: %s", r.title, msg)))
}

// Last returns the most recent milestone.
func (r *Reporter) Last() pipeline.Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func (r *Reporter) line(p pipeline.Progress) string {
	pct := max(0, min(100, p.Percent))
	filled := pct * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	if ColorEnabled {
		bar = cyan + strings.Repeat("█", filled) + muted + strings.Repeat("░", barWidth-filled) + reset
	}

	step := p.Step
	if p.Current != "" && p.Phase != pipeline.PhaseComplete {
		step = fmt.Sprintf("%s (%s)", step, p.Current)
	}
	return fmt.Sprintf("  %s [%s] %3d%% %s", r.title, bar, pct, step)
}
