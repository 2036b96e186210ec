// Package walker implements the directory traversal, routing decisions,
// output path construction, overwrite policy, metadata restoration, and
// mirror deletion that drive one run of the tool. It owns the
// configuration, the codec registry, the renaming filter, the console
// reporter, and the worker pool — every other collaborator is read-only
// from its perspective.
package walker

import (
	"os"
	"path/filepath"
	"strings"

	"go.tmthrgd.dev/audiomirror/internal/codec"
	"go.tmthrgd.dev/audiomirror/internal/config"
	"go.tmthrgd.dev/audiomirror/internal/console"
	"go.tmthrgd.dev/audiomirror/internal/renamefilter"
	"go.tmthrgd.dev/audiomirror/internal/workerpool"
)

// Walker orchestrates one run.
type Walker struct {
	cfg      *config.Config
	codecs   *codec.Set
	encoder  codec.Adapter
	filter   renamefilter.Filter
	reporter *console.Reporter
	pool     *workerpool.Pool
}

// New builds a Walker. pool must not have been started yet: Walk starts
// and shuts it down itself, matching spec.md §4.5.1's entry/exit protocol.
func New(cfg *config.Config, codecs *codec.Set, encoder codec.Adapter, filter renamefilter.Filter, reporter *console.Reporter, pool *workerpool.Pool) *Walker {
	return &Walker{
		cfg:      cfg,
		codecs:   codecs,
		encoder:  encoder,
		filter:   filter,
		reporter: reporter,
		pool:     pool,
	}
}

// Walk implements spec.md §4.5.1.
func (w *Walker) Walk() error {
	outputDir, err := filepath.Abs(w.cfg.OutputDir)
	if err != nil {
		return err
	}

	w.pool.Start(w.cfg.NumWorkers)

	for _, input := range w.cfg.Inputs {
		info, err := os.Stat(input)
		if err != nil {
			w.reporter.Errorf("`%s': %v", input, err)
			continue
		}

		switch {
		case info.IsDir():
			w.walkDirectoryInput(input, outputDir)
		case info.Mode().IsRegular():
			w.visitSingleFile(input, outputDir)
		default:
			w.reporter.Errorf("`%s' is not a regular file or directory", input)
		}
	}

	w.pool.Shutdown()

	if w.cfg.DryRun {
		w.reporter.DryRunBanner()
	}
	return nil
}

// visitSingleFile implements the single-file branch of §4.5.1 step 3:
// current_output_dir is output_dir itself, and mirror deletion never
// applies to a single-file input.
func (w *Walker) visitSingleFile(input, outputDir string) {
	st := newDirState(input, outputDir)
	w.visitFile(input, st)
}

// walkDirectoryInput implements the directory input protocol of §4.5.2 and
// the mirror-deletion pass of §4.5.6.
func (w *Walker) walkDirectoryInput(input, outputDir string) {
	rootInput, err := filepath.Abs(input)
	if err != nil {
		w.reporter.Errorf("`%s': %v", input, err)
		return
	}

	outInfo, statErr := os.Stat(outputDir)
	outputDirExists := statErr == nil && outInfo.IsDir()

	var rootOutput string
	if strings.HasSuffix(input, string(filepath.Separator)) || !outputDirExists {
		rootOutput = outputDir
	} else {
		rootOutput = filepath.Join(outputDir, w.filter.Apply(filepath.Base(rootInput)))
	}

	st := newDirState(rootInput, rootOutput)

	if err := w.traverse(rootInput, st); err != nil {
		w.reporter.Errorf("%v", err)
	}

	if w.cfg.DeleteExtraneous {
		w.mirrorDelete(st)
	}
}
