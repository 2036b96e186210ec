package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnteringSuppressedWhenVerboseOrQuiet(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true, false)
	r.Entering("Album")
	assert.Empty(t, buf.String())

	buf.Reset()
	r = New(&buf, false, true)
	r.Entering("Album")
	assert.Empty(t, buf.String())
}

func TestEnteringNormalMode(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, false)
	r.Entering("Album")
	assert.Contains(t, buf.String(), "Entering `Album'")
}

func TestTranscodedSuppressedWhenQuiet(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, true)
	r.Transcoded("track.mp3")
	assert.Empty(t, buf.String())
}

func TestCopiedVerboseShowsFullPaths(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true, false)
	r.Copied("/in/a.jpg", "/out/a.jpg")
	out := buf.String()
	assert.Contains(t, out, "/in/a.jpg")
	assert.Contains(t, out, "/out/a.jpg")
}

func TestCopiedNormalShowsBasenameOnly(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, false)
	r.Copied("/in/a.jpg", "/out/nested/a.jpg")
	out := buf.String()
	assert.Contains(t, out, "Copied `a.jpg'")
	assert.False(t, strings.Contains(out, "/out/nested"))
}

func TestSkippedOnlyInVerbose(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, false)
	r.Skipped("/in/a.mp3", "up-to-date")
	assert.Empty(t, buf.String())

	buf.Reset()
	r = New(&buf, true, false)
	r.Skipped("/in/a.mp3", "up-to-date")
	assert.Contains(t, buf.String(), "up-to-date")
}

func TestErrorfAlwaysPrintsEvenWhenQuiet(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, true)
	r.Errorf("failed to stat `%s'", "/in/a.mp3")
	assert.Contains(t, buf.String(), "/in/a.mp3")
}
