// Package console is the terminal-reporting component spec.md treats as an
// external collaborator, implemented here so the walker has something to
// call. Every public method acquires the reporter's own mutex in addition
// to relying on charmbracelet/log's internal synchronization, because
// several of spec.md's report lines are composed from more than one value
// and must not be interleaved with another goroutine's report mid-line.
package console

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// Reporter serializes all of this tool's terminal output through a single
// mutex, matching spec.md §5's "output-console mutex".
type Reporter struct {
	mu      sync.Mutex
	logger  *log.Logger
	verbose bool
	quiet   bool
}

// New builds a Reporter writing every line to w. Progress lines and
// diagnostics share that single writer; Errorf has no separate error
// stream.
func New(w io.Writer, verbose, quiet bool) *Reporter {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
	})
	if quiet {
		logger.SetLevel(log.ErrorLevel)
	}
	return &Reporter{logger: logger, verbose: verbose, quiet: quiet}
}

// Default builds a Reporter writing progress to stdout and nothing to a
// second stream; diagnostics use Errorf which targets the same writer.
func Default(verbose, quiet bool) *Reporter {
	return New(os.Stdout, verbose, quiet)
}

// Entering reports that the walker has descended into a directory.
func (r *Reporter) Entering(name string) {
	if r.verbose || r.quiet {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger.Printf("Entering `%s'", name)
}

// Transcoded reports a completed transcode.
func (r *Reporter) Transcoded(outputName string) {
	if r.quiet {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger.Printf("Transcoded `%s'", outputName)
}

// Copied reports a completed copy, using the verbose "from' -> `to'" form
// when requested.
func (r *Reporter) Copied(inputPath, outputPath string) {
	if r.quiet {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.verbose {
		r.logger.Printf("`%s' -> `%s'", inputPath, outputPath)
	} else {
		r.logger.Printf("Copied `%s'", filepath.Base(outputPath))
	}
}

// Skipped reports a skipped file, verbose-only.
func (r *Reporter) Skipped(inputPath, reason string) {
	if !r.verbose {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger.Printf("skipping `%s' (%s)", inputPath, reason)
}

// Deleted reports a mirror-mode deletion.
func (r *Reporter) Deleted(path string) {
	if r.quiet {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.verbose {
		r.logger.Printf("Deleted `%s'", path)
	} else {
		r.logger.Printf("Deleted `%s'", filepath.Base(path))
	}
}

// Errorf reports a per-file or traversal error. It is never suppressed by
// -q/--quiet: error visibility is independent of progress verbosity.
func (r *Reporter) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger.Errorf(format, args...)
}

// DryRunBanner prints the closing "no actual changes made" notice.
func (r *Reporter) DryRunBanner() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger.Print("dry run: no actual changes made")
}

