// Command audiomirror mirrors a source audio tree into a destination tree,
// transcoding recognized formats through external codec executables while
// copying everything else, preserving directory structure, permissions,
// timestamps, and tags.
package main

import (
	"fmt"
	"io"
	"os"

	"go.tmthrgd.dev/audiomirror/internal/codec"
	"go.tmthrgd.dev/audiomirror/internal/config"
	"go.tmthrgd.dev/audiomirror/internal/console"
	"go.tmthrgd.dev/audiomirror/internal/renamefilter"
	"go.tmthrgd.dev/audiomirror/internal/walker"
	"go.tmthrgd.dev/audiomirror/internal/workerpool"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == workerpool.WorkerFlag {
		os.Exit(runChild(os.Args[2:]))
	}
	os.Exit(run(os.Args[1:]))
}

// runChild re-parses the same flags the parent was invoked with, purely to
// reconstruct an identical codec.Set (extra encoder flags included), then
// executes exactly the one job described by the environment variables
// internal/workerpool set up before re-exec'ing this binary.
func runChild(argv []string) int {
	cfg, err := config.ParseArgs(argv, io.Discard)
	if err != nil {
		return 1
	}
	set := codec.NewSet(cfg.FlacOptions, cfg.LameOptions, cfg.VorbisOptions)
	return workerpool.RunChild(set)
}

func run(argv []string) int {
	cfg, err := config.ParseArgs(argv, os.Stderr)
	switch {
	case err == config.HelpRequested:
		return 0
	case err != nil:
		if _, ok := err.(*config.ValidationError); ok {
			fmt.Fprintf(os.Stderr, "audiomirror: %v\n", err)
			return 2
		}
		return 1
	}

	set := codec.NewSet(cfg.FlacOptions, cfg.LameOptions, cfg.VorbisOptions)
	encoder, err := set.EncoderByName(cfg.EncoderName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audiomirror: %v\n", err)
		return 2
	}

	filter, ok := renamefilter.ByName(cfg.RenamingFilterName)
	if !ok {
		fmt.Fprintf(os.Stderr, "audiomirror: unknown renaming filter %q\n", cfg.RenamingFilterName)
		return 2
	}

	reporter := console.Default(cfg.Verbose, cfg.Quiet)

	exePath, err := os.Executable()
	if err != nil {
		reporter.Errorf("failed to locate own executable: %v", err)
		return 1
	}

	pool := workerpool.New(exePath, argv, encoder.Name(), reporter, cfg.DryRun)

	w := walker.New(cfg, set, encoder, filter, reporter, pool)
	if err := w.Walk(); err != nil {
		reporter.Errorf("%v", err)
		return 1
	}
	return 0
}
