// Package codec describes, for each supported audio format, how to attach a
// decoding and/or encoding stage to a pipeline.Pipeline.
package codec

import "go.tmthrgd.dev/audiomirror/internal/pipeline"

// EncodeOpts carries the extra information an encoder stage needs when it
// cannot use stdio: the input file to read from (when EncodesFromStdin is
// false) and the output file to write to (when EncodesToStdout is false).
type EncodeOpts struct {
	InFile  string
	OutFile string
}

// Adapter describes one codec: what argv to spawn for its decoder and/or
// encoder stage, and whether the encoder stage can use stdio.
type Adapter interface {
	// Name is the codec's short tag, e.g. "flac".
	Name() string
	// CanonicalExt is the filename extension this codec produces as an
	// encoder, including the leading dot.
	CanonicalExt() string
	// HasDecoder reports whether AttachDecoder does anything.
	HasDecoder() bool
	// HasEncoder reports whether AttachEncoder does anything.
	HasEncoder() bool
	// EncodesFromStdin reports whether the encoder stage reads its input
	// from stdin. If false, AttachEncoder requires EncodeOpts.InFile.
	EncodesFromStdin() bool
	// EncodesToStdout reports whether the encoder stage writes its output
	// to stdout. If false, AttachEncoder requires EncodeOpts.OutFile.
	EncodesToStdout() bool
	// AttachDecoder appends this codec's decoder stage to p, reading
	// inputFile.
	AttachDecoder(p *pipeline.Pipeline, inputFile string)
	// AttachEncoder appends this codec's encoder stage to p.
	AttachEncoder(p *pipeline.Pipeline, opts EncodeOpts)
}

func withExtra(base []string, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}
