// Package tags duplicates the common subset of audio tags (title, artist,
// album, track number, year, genre, comment) from a transcode's input file
// to its output file. It never fails the transcode job: any error while
// reading the source or writing the destination is swallowed and reported
// as "no tags transferred" to the caller.
package tags

import "strings"

// Set is the common subset of tags this tool understands, format-agnostic.
type Set struct {
	Title   string
	Artist  string
	Album   string
	Genre   string
	Comment string
	Track   int
	Year    int
}

func (s *Set) empty() bool {
	return s.Title == "" && s.Artist == "" && s.Album == "" &&
		s.Genre == "" && s.Comment == "" && s.Track == 0 && s.Year == 0
}

// Transfer reads tags from inputPath and writes the ones it finds into
// outputPath, dispatching on each path's extension. It returns true if a
// write was attempted and succeeded, false for every other case (read
// failure, no tags present, unsupported output format, write failure) —
// none of which are errors from the caller's perspective.
func Transfer(inputPath, outputPath string) bool {
	set, ok := readFrom(inputPath)
	if !ok || set.empty() {
		return false
	}
	return writeTo(outputPath, set)
}

func extOf(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(path[i:])
}
