package codec

import "go.tmthrgd.dev/audiomirror/internal/pipeline"

// VorbisAdapter decodes Ogg Vorbis via `oggdec` and encodes it via
// `oggenc`. Both stages read stdin and write stdout.
type VorbisAdapter struct {
	extraEncoderFlags []string
}

// NewVorbis builds a VorbisAdapter, inserting extraEncoderFlags into the
// encoder argv in the order given.
func NewVorbis(extraEncoderFlags []string) *VorbisAdapter {
	return &VorbisAdapter{extraEncoderFlags: extraEncoderFlags}
}

func (a *VorbisAdapter) Name() string           { return "vorbis" }
func (a *VorbisAdapter) CanonicalExt() string   { return ".ogg" }
func (a *VorbisAdapter) HasDecoder() bool       { return true }
func (a *VorbisAdapter) HasEncoder() bool       { return true }
func (a *VorbisAdapter) EncodesFromStdin() bool { return true }
func (a *VorbisAdapter) EncodesToStdout() bool  { return true }

func (a *VorbisAdapter) AttachDecoder(p *pipeline.Pipeline, inputFile string) {
	p.Add("oggdec", "-Q", "-o", "-", "-")
}

func (a *VorbisAdapter) AttachEncoder(p *pipeline.Pipeline, opts EncodeOpts) {
	args := withExtra([]string{"oggenc", "-Q", "-r"}, a.extraEncoderFlags)
	args = append(args, "-")
	p.Add(args...)
}
