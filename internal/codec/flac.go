package codec

import "go.tmthrgd.dev/audiomirror/internal/pipeline"

// FLACAdapter decodes and encodes the FLAC format via the `flac` command
// line tool. Both its decoder and encoder stages read stdin and write
// stdout.
type FLACAdapter struct {
	extraEncoderFlags []string
}

// NewFLAC builds a FLACAdapter, inserting extraEncoderFlags into the
// encoder argv in the order given.
func NewFLAC(extraEncoderFlags []string) *FLACAdapter {
	return &FLACAdapter{extraEncoderFlags: extraEncoderFlags}
}

func (a *FLACAdapter) Name() string         { return "flac" }
func (a *FLACAdapter) CanonicalExt() string { return ".flac" }
func (a *FLACAdapter) HasDecoder() bool     { return true }
func (a *FLACAdapter) HasEncoder() bool     { return true }
func (a *FLACAdapter) EncodesFromStdin() bool { return true }
func (a *FLACAdapter) EncodesToStdout() bool  { return true }

func (a *FLACAdapter) AttachDecoder(p *pipeline.Pipeline, inputFile string) {
	p.Add("flac", "-s", "-d", "-c", "-")
}

func (a *FLACAdapter) AttachEncoder(p *pipeline.Pipeline, opts EncodeOpts) {
	args := withExtra([]string{"flac", "-s", "-c"}, a.extraEncoderFlags)
	args = append(args, "-")
	p.Add(args...)
}
