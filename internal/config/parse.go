package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// HelpRequested is returned by ParseArgs when -h/--help was given; the
// usage text has already been written to the FlagSet's output.
var HelpRequested = fmt.Errorf("help requested")

// ValidationError wraps a configuration problem detected after flags parsed
// successfully (unknown encoder, bad thread count, missing inputs, and so
// on). cmd/audiomirror maps it to exit status 2.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ParseArgs parses argv (excluding the program name) into a validated
// Config. out receives usage/error text, matching where callers typically
// route os.Stderr.
func ParseArgs(argv []string, out io.Writer) (*Config, error) {
	fs := pflag.NewFlagSet("audiomirror", pflag.ContinueOnError)
	fs.SetOutput(out)

	dontCopyOthers := fs.BoolP("dont-copy-others", "C", false, "do not copy files that aren't transcoded")
	dontRecurse := fs.BoolP("dont-recurse", "R", false, "do not descend into subdirectories")
	reencode := fs.BoolP("reencode", "r", false, "re-encode even when input format already matches the encoder")
	encoder := fs.StringP("encoder", "e", defaultEncoder, "output encoder: flac, lame/mp3, vorbis, alac, dummy/wav/wave")
	overwrite := fs.StringP("overwrite-mode", "o", "auto", "overwrite mode: auto, always, never")
	threads := fs.IntP("threads", "t", defaultThreads, "number of concurrent transcode workers, 1-200")
	filterName := fs.StringP("renaming-filter", "N", defaultRenamingFilter, "output name filter: conservative, none")
	flacOpts := fs.StringArrayP("flac-option", "F", nil, "extra flac encoder flag (may repeat)")
	lameOpts := fs.StringArrayP("lame-option", "L", nil, "extra lame encoder flag (may repeat)")
	vorbisOpts := fs.StringArrayP("vorbis-option", "V", nil, "extra vorbis encoder flag (may repeat)")
	mirror := fs.BoolP("mirror", "m", false, "delete output-side files and directories absent from the input")
	dryRun := fs.BoolP("dry-run", "n", false, "report what would happen without touching the filesystem")
	help := fs.BoolP("help", "h", false, "print usage")

	// -q and -v each turn the other off, so whichever was given last on the
	// command line wins; a shared pflag.Value records that instead of two
	// independent bools, since Parse invokes Set in command-line order.
	verbosity := new(verbosityFlag)
	fs.VarP(verbosity, "quiet", "q", "suppress progress lines")
	fs.Lookup("quiet").NoOptDefVal = "true"
	fs.VarP(verbosityVerbose{verbosity}, "verbose", "v", "print full paths and from/to lines instead of basenames")
	fs.Lookup("verbose").NoOptDefVal = "true"

	fs.Usage = func() {
		fmt.Fprintln(out, "usage: audiomirror [flags] <input> [<input> ...] <output_dir>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		fmt.Fprintln(out, err)
		return nil, err
	}

	if *help {
		fs.Usage()
		return nil, HelpRequested
	}

	overwriteMode, err := ParseOverwriteMode(*overwrite)
	if err != nil {
		return nil, validationErrorf("%v", err)
	}

	if _, err := resolveEncoderName(*encoder); err != nil {
		return nil, validationErrorf("%v", err)
	}

	if *filterName != "conservative" && *filterName != "none" {
		return nil, validationErrorf("unknown renaming filter %q (want conservative or none)", *filterName)
	}

	if *threads < minThreads || *threads > maxThreads {
		return nil, validationErrorf("thread count %d out of range [%d, %d]", *threads, minThreads, maxThreads)
	}

	args := fs.Args()
	if len(args) < 2 {
		return nil, validationErrorf("at least one input and an output directory are required")
	}

	inputs, outputDir := args[:len(args)-1], args[len(args)-1]
	if len(inputs) > 1 {
		fi, statErr := os.Stat(outputDir)
		if statErr != nil || !fi.IsDir() {
			return nil, validationErrorf("output directory `%s' must already exist when more than one input is given", outputDir)
		}
	}

	return &Config{
		Inputs:             inputs,
		OutputDir:          outputDir,
		OverwriteMode:      overwriteMode,
		Recursive:          !*dontRecurse,
		CopyOther:          !*dontCopyOthers,
		Reencode:           *reencode,
		DeleteExtraneous:   *mirror,
		DryRun:             *dryRun,
		Verbose:            verbosity.verbose,
		Quiet:              verbosity.quiet,
		NumWorkers:         *threads,
		EncoderName:        strings.ToLower(*encoder),
		RenamingFilterName: *filterName,
		DontTranscodeExts:  map[string]bool{},
		FlacOptions:        *flacOpts,
		LameOptions:        *lameOpts,
		VorbisOptions:      *vorbisOpts,
	}, nil
}

func resolveEncoderName(name string) (string, error) {
	switch strings.ToLower(name) {
	case "flac", "lame", "mp3", "vorbis", "ogg", "alac", "dummy", "wav", "wave":
		return strings.ToLower(name), nil
	default:
		return "", fmt.Errorf("unknown encoder %q", name)
	}
}
