package workerpool

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.tmthrgd.dev/audiomirror/internal/codec"
	"go.tmthrgd.dev/audiomirror/internal/pipeline"
)

func skipUnlessBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available on PATH", name)
	}
}

// stdioAdapter fakes a codec whose decoder/encoder both read stdin and
// write stdout, standing in for flac/lame/vorbis without needing the real
// binaries.
type stdioAdapter struct {
	decodeArgs []string
	encodeArgs []string
	hasDecoder bool
	hasEncoder bool
}

func (a *stdioAdapter) Name() string           { return "fake" }
func (a *stdioAdapter) CanonicalExt() string   { return ".fake" }
func (a *stdioAdapter) HasDecoder() bool       { return a.hasDecoder }
func (a *stdioAdapter) HasEncoder() bool       { return a.hasEncoder }
func (a *stdioAdapter) EncodesFromStdin() bool { return true }
func (a *stdioAdapter) EncodesToStdout() bool  { return true }
func (a *stdioAdapter) AttachDecoder(p *pipeline.Pipeline, inputFile string) {
	p.Add(a.decodeArgs...)
}
func (a *stdioAdapter) AttachEncoder(p *pipeline.Pipeline, opts codec.EncodeOpts) {
	p.Add(a.encodeArgs...)
}

// fileAdapter fakes a codec like ALAC: no stdio, explicit file paths.
type fileAdapter struct{}

func (fileAdapter) Name() string           { return "fakefile" }
func (fileAdapter) CanonicalExt() string   { return ".fakefile" }
func (fileAdapter) HasDecoder() bool       { return false }
func (fileAdapter) HasEncoder() bool       { return true }
func (fileAdapter) EncodesFromStdin() bool { return false }
func (fileAdapter) EncodesToStdout() bool  { return false }
func (fileAdapter) AttachDecoder(p *pipeline.Pipeline, inputFile string) {}
func (fileAdapter) AttachEncoder(p *pipeline.Pipeline, opts codec.EncodeOpts) {
	p.Add("cp", opts.InFile, opts.OutFile)
}

func TestAssembleStdinStdoutChain(t *testing.T) {
	skipUnlessBinary(t, "cat")
	skipUnlessBinary(t, "rev")

	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("hello\n"), 0o644))
	out := filepath.Join(dir, "out.txt")

	decoder := &stdioAdapter{decodeArgs: []string{"cat"}, hasDecoder: true}
	encoder := &stdioAdapter{encodeArgs: []string{"rev"}, hasEncoder: true}

	require.NoError(t, assemble(decoder, encoder, in, out, 0o640))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "olleh\n", string(got))

	fi, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), fi.Mode().Perm())
}

func TestAssembleFileBasedEncoder(t *testing.T) {
	skipUnlessBinary(t, "cp")
	skipUnlessBinary(t, "cat")

	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("payload"), 0o644))
	out := filepath.Join(dir, "out.bin")

	decoder := &stdioAdapter{decodeArgs: []string{"cat"}, hasDecoder: true}
	var encoder fileAdapter

	require.NoError(t, assemble(decoder, encoder, in, out, 0o640))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))

	// temp wav must be cleaned up
	_, err = os.Stat(out + ".wav")
	assert.True(t, os.IsNotExist(err))

	fi, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), fi.Mode().Perm())
}

func TestAssembleDirectDumpWhenEncoderIsDummy(t *testing.T) {
	skipUnlessBinary(t, "cat")

	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("raw\n"), 0o644))
	out := filepath.Join(dir, "out.wav")

	decoder := &stdioAdapter{decodeArgs: []string{"cat"}, hasDecoder: true}
	dummy := codec.NewDummy()

	require.NoError(t, assemble(decoder, dummy, in, out, 0o644))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "raw\n", string(got))
}

func TestAssembleDegenerateCopyWhenBothSidesPassthrough(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	require.NoError(t, os.WriteFile(in, []byte("pcm"), 0o644))
	out := filepath.Join(dir, "out.wav")

	dummy := codec.NewDummy()
	require.NoError(t, assemble(dummy, dummy, in, out, 0o644))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "pcm", string(got))
}

func TestAssembleNoDecodeStageWhenInputAlreadyRaw(t *testing.T) {
	skipUnlessBinary(t, "rev")

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	require.NoError(t, os.WriteFile(in, []byte("hello\n"), 0o644))
	out := filepath.Join(dir, "out.mp3")

	dummy := codec.NewDummy()
	encoder := &stdioAdapter{encodeArgs: []string{"rev"}, hasEncoder: true}

	require.NoError(t, assemble(dummy, encoder, in, out, 0o644))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "olleh\n", string(got))
}

func TestAssembleRemovesPartialOutputOnFailure(t *testing.T) {
	skipUnlessBinary(t, "false")
	skipUnlessBinary(t, "cat")

	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("x"), 0o644))
	out := filepath.Join(dir, "out.txt")

	decoder := &stdioAdapter{decodeArgs: []string{"cat"}, hasDecoder: true}
	encoder := &stdioAdapter{encodeArgs: []string{"false"}, hasEncoder: true}

	err := assemble(decoder, encoder, in, out, 0o644)
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "failed transcode must not leave a partial output file")
}
