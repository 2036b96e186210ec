package tags

import (
	"os"

	"github.com/dhowden/tag"
)

// readFrom opens path and reads its common tag set with dhowden/tag, which
// understands FLAC, MP3, OGG, and MP4/M4A containers without needing to
// know the format ahead of time. ok is false if the file can't be opened or
// carries no metadata dhowden/tag recognizes.
func readFrom(path string) (*Set, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, false
	}

	track, _ := m.Track()
	set := &Set{
		Title:   m.Title(),
		Artist:  m.Artist(),
		Album:   m.Album(),
		Genre:   m.Genre(),
		Comment: m.Comment(),
		Track:   track,
		Year:    m.Year(),
	}
	return set, true
}
