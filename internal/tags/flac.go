package tags

import (
	"strconv"

	flac "github.com/go-flac/go-flac"
	"github.com/go-flac/flacvorbis"
)

func writeFLAC(path string, set *Set) bool {
	f, err := flac.ParseFile(path)
	if err != nil {
		return false
	}

	var cmt *flacvorbis.MetaDataBlockVorbisComment
	cmtIdx := -1
	for i, meta := range f.Meta {
		if meta.Type == flac.VorbisComment {
			cmt, err = flacvorbis.ParseFromMetaDataBlock(*meta)
			if err != nil {
				return false
			}
			cmtIdx = i
			break
		}
	}
	if cmt == nil {
		cmt = flacvorbis.New()
	}

	add := func(field, value string) {
		if value == "" {
			return
		}
		_ = cmt.Add(field, value)
	}
	add(flacvorbis.FIELD_TITLE, set.Title)
	add(flacvorbis.FIELD_ARTIST, set.Artist)
	add(flacvorbis.FIELD_ALBUM, set.Album)
	add(flacvorbis.FIELD_GENRE, set.Genre)
	if set.Year != 0 {
		add("DATE", strconv.Itoa(set.Year))
	}
	if set.Track != 0 {
		add(flacvorbis.FIELD_TRACKNUMBER, strconv.Itoa(set.Track))
	}
	add("COMMENT", set.Comment)

	block := cmt.Marshal()
	if cmtIdx >= 0 {
		f.Meta[cmtIdx] = &block
	} else {
		f.Meta = append(f.Meta, &block)
	}

	return f.Save(path) == nil
}
