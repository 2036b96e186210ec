package codec

import "go.tmthrgd.dev/audiomirror/internal/pipeline"

// ALACAdapter encodes Apple Lossless via `afconvert`. It has no decoder:
// ALAC is never read as an input format by this tool. Its encoder stage
// neither reads stdin nor writes stdout; it is always given explicit
// input/output file paths.
type ALACAdapter struct {
	extraEncoderFlags []string
}

// NewALAC builds an ALACAdapter.
func NewALAC(extraEncoderFlags []string) *ALACAdapter {
	return &ALACAdapter{extraEncoderFlags: extraEncoderFlags}
}

func (a *ALACAdapter) Name() string           { return "alac" }
func (a *ALACAdapter) CanonicalExt() string   { return ".m4a" }
func (a *ALACAdapter) HasDecoder() bool       { return false }
func (a *ALACAdapter) HasEncoder() bool       { return true }
func (a *ALACAdapter) EncodesFromStdin() bool { return false }
func (a *ALACAdapter) EncodesToStdout() bool  { return false }

func (a *ALACAdapter) AttachDecoder(p *pipeline.Pipeline, inputFile string) {
	// ALAC is never used as a decoder; nothing to attach.
}

func (a *ALACAdapter) AttachEncoder(p *pipeline.Pipeline, opts EncodeOpts) {
	args := withExtra([]string{"afconvert", "-d", "alac"}, a.extraEncoderFlags)
	args = append(args, opts.InFile, opts.OutFile)
	p.Add(args...)
}
