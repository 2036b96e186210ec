package config

import "strconv"

// verbosityFlag backs -q/--quiet and, through verbosityVerbose, -v/--verbose.
// Both flags toggle the same piece of state rather than two independent
// bools, because spec.md requires each to turn the other off — whichever
// was given last on the command line must win, and pflag invokes Set for
// each flag occurrence in command-line order (unlike Visit/VisitAll, which
// only ever iterate alphabetically).
type verbosityFlag struct {
	quiet   bool
	verbose bool
}

func (f *verbosityFlag) String() string     { return strconv.FormatBool(f.quiet) }
func (f *verbosityFlag) Type() string       { return "bool" }
func (f *verbosityFlag) IsBoolFlag() bool   { return true }
func (f *verbosityFlag) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if b {
		f.quiet, f.verbose = true, false
	} else {
		f.quiet = false
	}
	return nil
}

// verbosityVerbose is the -v/--verbose view of the same verbosityFlag.
type verbosityVerbose struct{ f *verbosityFlag }

func (v verbosityVerbose) String() string   { return strconv.FormatBool(v.f.verbose) }
func (v verbosityVerbose) Type() string     { return "bool" }
func (v verbosityVerbose) IsBoolFlag() bool { return true }
func (v verbosityVerbose) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if b {
		v.f.verbose, v.f.quiet = true, false
	} else {
		v.f.verbose = false
	}
	return nil
}
