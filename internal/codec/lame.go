package codec

import "go.tmthrgd.dev/audiomirror/internal/pipeline"

// defaultLameFlags are inserted ahead of any user-supplied extra flags so a
// user override (e.g. a different -V level) still takes effect.
var defaultLameFlags = []string{"-V2"}

// LAMEAdapter decodes and encodes MP3 via the `lame` command line tool.
// Both stages read stdin and write stdout.
type LAMEAdapter struct {
	extraEncoderFlags []string
}

// NewLAME builds a LAMEAdapter. The default "-V2" quality flag is always
// present; extraEncoderFlags are appended after it.
func NewLAME(extraEncoderFlags []string) *LAMEAdapter {
	return &LAMEAdapter{extraEncoderFlags: extraEncoderFlags}
}

func (a *LAMEAdapter) Name() string           { return "lame" }
func (a *LAMEAdapter) CanonicalExt() string   { return ".mp3" }
func (a *LAMEAdapter) HasDecoder() bool       { return true }
func (a *LAMEAdapter) HasEncoder() bool       { return true }
func (a *LAMEAdapter) EncodesFromStdin() bool { return true }
func (a *LAMEAdapter) EncodesToStdout() bool  { return true }

func (a *LAMEAdapter) AttachDecoder(p *pipeline.Pipeline, inputFile string) {
	p.Add("lame", "-S", "--decode", "-", "-")
}

func (a *LAMEAdapter) AttachEncoder(p *pipeline.Pipeline, opts EncodeOpts) {
	args := withExtra([]string{"lame", "-S"}, defaultLameFlags)
	args = withExtra(args, a.extraEncoderFlags)
	args = append(args, "-", "-")
	p.Add(args...)
}
