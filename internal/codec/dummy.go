package codec

import "go.tmthrgd.dev/audiomirror/internal/pipeline"

// DummyAdapter is a passthrough: it has no decoder or encoder stage to
// attach. It is selected as the encoder when the user asks for "wav"
// output, and its canonical format is WAV: the transcode pipeline assembly
// (internal/workerpool) recognizes a dummy encoder and reduces the job to a
// direct decoder-to-file dump instead of adding an encoder stage.
type DummyAdapter struct{}

// NewDummy builds a DummyAdapter.
func NewDummy() *DummyAdapter { return &DummyAdapter{} }

func (a *DummyAdapter) Name() string           { return "dummy" }
func (a *DummyAdapter) CanonicalExt() string   { return ".wav" }
func (a *DummyAdapter) HasDecoder() bool       { return false }
func (a *DummyAdapter) HasEncoder() bool       { return false }
func (a *DummyAdapter) EncodesFromStdin() bool { return true }
func (a *DummyAdapter) EncodesToStdout() bool  { return true }

func (a *DummyAdapter) AttachDecoder(p *pipeline.Pipeline, inputFile string) {}
func (a *DummyAdapter) AttachEncoder(p *pipeline.Pipeline, opts EncodeOpts)  {}
