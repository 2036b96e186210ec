package tags

// writeTo dispatches to the per-format writer for outputPath's extension.
// An unrecognized extension, or one with no writer available (raw Ogg
// Vorbis), is a silent no-op.
func writeTo(outputPath string, set *Set) bool {
	switch extOf(outputPath) {
	case ".mp3":
		return writeMP3(outputPath, set)
	case ".flac":
		return writeFLAC(outputPath, set)
	case ".m4a", ".m4b":
		return writeM4A(outputPath, set)
	default:
		// Includes ".ogg"/".oga": rewriting the Vorbis comment header of a
		// raw Ogg bitstream means repacketizing the stream, which none of
		// the libraries this tool depends on support safely. Tag transfer
		// to Ogg Vorbis output is unimplemented by design; see DESIGN.md.
		return false
	}
}
