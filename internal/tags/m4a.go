package tags

import mp4tag "github.com/Sorrow446/go-mp4tag"

func writeM4A(path string, set *Set) bool {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return false
	}
	defer mp4.Close()

	tags := &mp4tag.MP4Tags{
		Title:  set.Title,
		Artist: set.Artist,
		Album:  set.Album,
		Genre:  set.Genre,
	}
	if set.Year != 0 {
		tags.Year = set.Year
	}
	if set.Track != 0 {
		tags.Track = set.Track
	}
	if set.Comment != "" {
		tags.Comment = set.Comment
	}

	return mp4.Write(tags, nil) == nil
}
