package tags

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtOf(t *testing.T) {
	assert.Equal(t, ".flac", extOf("/a/b/c.FLAC"))
	assert.Equal(t, ".mp3", extOf("track.mp3"))
	assert.Equal(t, "", extOf("no-extension"))
}

func TestSetEmpty(t *testing.T) {
	assert.True(t, (&Set{}).empty())
	assert.False(t, (&Set{Title: "x"}).empty())
	assert.False(t, (&Set{Track: 3}).empty())
}

func TestWriteToUnsupportedExtensionIsNoop(t *testing.T) {
	ok := writeTo(filepath.Join(t.TempDir(), "out.ogg"), &Set{Title: "x"})
	assert.False(t, ok, "ogg tag writing is an explicit unsupported no-op")
}

func TestTransferMissingInputIsNoop(t *testing.T) {
	dir := t.TempDir()
	ok := Transfer(filepath.Join(dir, "missing.flac"), filepath.Join(dir, "out.mp3"))
	assert.False(t, ok)
}
