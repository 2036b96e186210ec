package codec

import (
	"fmt"
	"strings"
)

// Set is the fixed registry of codec adapters for one run. Adapters are
// shared read-only by all transcode workers once the set is built; their
// configuration (extra encoder flags) is finalized before any worker
// starts.
type Set struct {
	FLAC   Adapter
	LAME   Adapter
	Vorbis Adapter
	ALAC   Adapter
	Dummy  Adapter
}

// NewSet builds the registry of adapters, one per codec, applying the
// given extra encoder flags (as collected from repeated -F/-L/-V flags).
func NewSet(extraFlac, extraLame, extraVorbis []string) *Set {
	return &Set{
		FLAC:   NewFLAC(extraFlac),
		LAME:   NewLAME(extraLame),
		Vorbis: NewVorbis(extraVorbis),
		ALAC:   NewALAC(nil),
		Dummy:  NewDummy(),
	}
}

// decoderExts maps a lowercased extension to the adapter field on Set that
// decodes it. Extensions absent from this map have no decoder.
var decoderExts = map[string]func(*Set) Adapter{
	".flac": func(s *Set) Adapter { return s.FLAC },
	".mp3":  func(s *Set) Adapter { return s.LAME },
	".ogg":  func(s *Set) Adapter { return s.Vorbis },
	".oga":  func(s *Set) Adapter { return s.Vorbis },
	".wav":  func(s *Set) Adapter { return s.Dummy },
}

// DecoderFor returns the decoder adapter registered for ext (a lowercased
// extension including the leading dot), if any.
func (s *Set) DecoderFor(ext string) (Adapter, bool) {
	fn, ok := decoderExts[ext]
	if !ok {
		return nil, false
	}
	return fn(s), true
}

// EncoderByName resolves the -e/--encoder flag value, including its
// aliases ("mp3" -> lame, "wav"/"wave" -> dummy), to an Adapter.
func (s *Set) EncoderByName(name string) (Adapter, error) {
	switch strings.ToLower(name) {
	case "flac":
		return s.FLAC, nil
	case "lame", "mp3":
		return s.LAME, nil
	case "vorbis", "ogg":
		return s.Vorbis, nil
	case "alac":
		return s.ALAC, nil
	case "dummy", "wav", "wave":
		return s.Dummy, nil
	default:
		return nil, fmt.Errorf("unknown encoder %q", name)
	}
}

// ByName resolves an adapter's own canonical Name() (never an alias). Used
// by the re-exec transcode child to reconstruct the decoder/encoder pair
// for one job from the Job's codec names.
func (s *Set) ByName(name string) (Adapter, bool) {
	switch name {
	case "flac":
		return s.FLAC, true
	case "lame":
		return s.LAME, true
	case "vorbis":
		return s.Vorbis, true
	case "alac":
		return s.ALAC, true
	case "dummy":
		return s.Dummy, true
	default:
		return nil, false
	}
}
