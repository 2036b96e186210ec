// Package config turns CLI flags into a validated Config the rest of the
// tool runs against, parsing them with its own pflag.FlagSet.
package config

import (
	"fmt"
	"strings"
)

// OverwriteMode governs whether an existing output file is replaced.
type OverwriteMode int

const (
	Auto OverwriteMode = iota
	Always
	Never
)

func (m OverwriteMode) String() string {
	switch m {
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "auto"
	}
}

// ParseOverwriteMode resolves the -o/--overwrite-mode flag value.
func ParseOverwriteMode(s string) (OverwriteMode, error) {
	switch strings.ToLower(s) {
	case "auto":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	default:
		return 0, fmt.Errorf("unknown overwrite mode %q (want auto, always, or never)", s)
	}
}

// Config is the fully resolved, validated Walker Configuration plus the
// positional arguments the walker needs to start.
type Config struct {
	Inputs    []string
	OutputDir string

	OverwriteMode      OverwriteMode
	Recursive          bool
	CopyOther          bool
	Reencode           bool
	DeleteExtraneous   bool
	DryRun             bool
	Verbose            bool
	Quiet              bool
	NumWorkers         int
	EncoderName        string
	RenamingFilterName string

	ForcedOutputExt   string
	DontTranscodeExts map[string]bool

	FlacOptions   []string
	LameOptions   []string
	VorbisOptions []string
}

const (
	defaultEncoder        = "lame"
	defaultRenamingFilter = "none"
	defaultThreads        = 4
	minThreads            = 1
	maxThreads            = 200
)
