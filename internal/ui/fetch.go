package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	mdxsync "github.com/g5becks/mdxkit/internal/sync"
)

type styles struct {
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	dim    *color.Color
	bold   *color.Color
}

func newStyles() styles {
	return styles{
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		dim:    color.New(color.Faint),
		bold:   color.New(color.Bold),
	}
}

// FetchPrinter renders spec fetch events to stderr with colored output.
type FetchPrinter struct {
	w      io.Writer
	dryRun bool
	mu     sync.Mutex
	s      styles
}

// NewFetchPrinter creates a FetchPrinter that writes to stderr.
func NewFetchPrinter(dryRun bool) *FetchPrinter {
	return NewFetchPrinterWithWriter(os.Stderr, dryRun)
}

// NewFetchPrinterWithWriter creates a FetchPrinter that writes to the given writer.
func NewFetchPrinterWithWriter(w io.Writer, dryRun bool) *FetchPrinter {
	return &FetchPrinter{
		w:      w,
		dryRun: dryRun,
		s:      newStyles(),
	}
}

// HandleEvent is the callback wired into sync.Options.OnEvent.
func (p *FetchPrinter) HandleEvent(e mdxsync.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch e.Kind {
	case mdxsync.EventSourceStart:
		fmt.Fprintf(p.w, "%s fetching %s...\n",
			p.s.dim.Sprint("⟳"),
			p.s.bold.Sprint(e.Source),
		)

	case mdxsync.EventSourceDone:
		p.handleDone(e)
	}
}

func (p *FetchPrinter) handleDone(e mdxsync.Event) {
	if e.Err != nil {
		fmt.Fprintf(p.w, "%s %s: %s\n",
			p.s.red.Sprint("✗"),
			p.s.bold.Sprint(e.Source),
			e.Err,
		)
		return
	}

	if e.Result == nil {
		return
	}

	name := p.s.bold.Sprint(e.Source)

	if e.Result.Skipped {
		fmt.Fprintf(p.w, "%s %s %s\n",
			p.s.dim.Sprint("—"),
			name,
			p.s.dim.Sprint("(up to date)"),
		)
		return
	}

	fmt.Fprintf(p.w, "%s %s %s\n",
		p.s.green.Sprint("✓"),
		name,
		p.s.dim.Sprint(formatBytes(e.Result.Bytes)),
	)
}

func formatBytes(n int) string {
	const kib = 1024

	switch {
	case n >= kib*kib:
		return fmt.Sprintf("(%.1f MiB)", float64(n)/(kib*kib))
	case n >= kib:
		return fmt.Sprintf("(%.1f KiB)", float64(n)/kib)
	default:
		return fmt.Sprintf("(%d bytes)", n)
	}
}

// PrintSummary renders a final summary line after a fetch completes.
func (p *FetchPrinter) PrintSummary(r *mdxsync.RunResult) {
	if r == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.w)

	label := "fetch complete"
	if p.dryRun {
		label = p.s.yellow.Sprint("dry-run complete")
	}

	parts := fmt.Sprintf("%s: %d spec(s), %d downloaded, %d up-to-date",
		label,
		r.Sources,
		r.Downloaded,
		r.Skipped,
	)

	if r.Errors > 0 {
		parts += fmt.Sprintf(", %s",
			p.s.red.Sprintf("%d failed", r.Errors),
		)
	}

	fmt.Fprintln(p.w, parts)

	if p.dryRun {
		fmt.Fprintln(p.w, p.s.dim.Sprint("no files were written"))
	}
}
