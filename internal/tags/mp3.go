package tags

import (
	"strconv"

	"github.com/bogem/id3v2/v2"
)

func writeMP3(path string, set *Set) bool {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return false
	}
	defer tag.Close()

	if set.Title != "" {
		tag.SetTitle(set.Title)
	}
	if set.Artist != "" {
		tag.SetArtist(set.Artist)
	}
	if set.Album != "" {
		tag.SetAlbum(set.Album)
	}
	if set.Genre != "" {
		tag.SetGenre(set.Genre)
	}
	if set.Year != 0 {
		tag.SetYear(strconv.Itoa(set.Year))
	}
	if set.Track != 0 {
		tag.AddTextFrame(tag.CommonID("Track number/Position in set"),
			tag.DefaultEncoding(), strconv.Itoa(set.Track))
	}
	if set.Comment != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    tag.DefaultEncoding(),
			Language:    "eng",
			Description: "",
			Text:        set.Comment,
		})
	}

	return tag.Save() == nil
}
