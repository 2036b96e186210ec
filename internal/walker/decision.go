package walker

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.tmthrgd.dev/audiomirror/internal/codec"
	"go.tmthrgd.dev/audiomirror/internal/config"
	"go.tmthrgd.dev/audiomirror/internal/workerpool"
)

// visitFile implements spec.md §4.5.4, the per-file routing decision.
func (w *Walker) visitFile(p string, st *dirState) {
	if st.outputDirError {
		// Already reported once when the directory first failed; every
		// subsequent file under it skips silently.
		return
	}

	ext := strings.ToLower(filepath.Ext(p))

	var decoder = w.resolveDecoder(ext)
	transcoding := decoder != nil && (decoder != w.encoder || w.cfg.Reencode)

	var suffix string
	if transcoding {
		outExt := w.cfg.ForcedOutputExt
		if outExt == "" {
			outExt = w.encoder.CanonicalExt()
		}
		suffix = stem(p) + outExt
	} else {
		suffix = filepath.Base(p)
	}
	suffix = w.filter.Apply(suffix)
	outputPath := filepath.Join(st.currentOutputDir, suffix)

	inputInfo, err := os.Stat(p)
	if err != nil {
		w.reporter.Errorf("failed to stat `%s': %v", p, err)
		return
	}

	if kept := w.checkOverwriteGate(p, outputPath, inputInfo, st); kept {
		return
	}

	if !transcoding {
		w.visitCopyOrSkip(p, outputPath, inputInfo, st)
		return
	}

	if !w.createOutputDir(st) {
		return
	}
	st.markKeep(outputPath)

	w.pool.Publish(workerpool.WorkUnit{
		DecoderName: decoder.Name(),
		InputPath:   p,
		OutputPath:  outputPath,
		Mode:        inputInfo.Mode(),
		Atime:       atimeOf(inputInfo),
		Mtime:       inputInfo.ModTime(),
	})
}

// resolveDecoder looks up a decoder for ext, honoring dont_transcode_exts.
func (w *Walker) resolveDecoder(ext string) codec.Adapter {
	if w.cfg.DontTranscodeExts[ext] {
		return nil
	}
	a, ok := w.codecs.DecoderFor(ext)
	if !ok {
		return nil
	}
	return a
}

// checkOverwriteGate implements step 7: it reports and marks outputPath
// kept, returning true, when the existing output should be left alone.
func (w *Walker) checkOverwriteGate(inputPath, outputPath string, inputInfo os.FileInfo, st *dirState) bool {
	if w.cfg.OverwriteMode == config.Always {
		return false
	}

	outInfo, err := os.Stat(outputPath)
	if err != nil {
		return false
	}

	switch {
	case w.cfg.OverwriteMode == config.Never:
	case w.cfg.OverwriteMode == config.Auto && !inputInfo.ModTime().After(outInfo.ModTime()):
	default:
		return false
	}

	st.markKeep(outputPath)
	w.reporter.Skipped(inputPath, "output is up to date")
	return true
}

// visitCopyOrSkip implements step 8: the non-transcoding branch.
func (w *Walker) visitCopyOrSkip(inputPath, outputPath string, inputInfo os.FileInfo, st *dirState) {
	if !w.cfg.CopyOther {
		w.reporter.Skipped(inputPath, "not copying non-audio files")
		return
	}

	if !w.createOutputDir(st) {
		return
	}

	if !w.cfg.DryRun {
		if err := copyFileWithMode(inputPath, outputPath, inputInfo.Mode()); err != nil {
			w.reporter.Errorf("failed to copy `%s': %v", inputPath, err)
			return
		}
		if err := os.Chtimes(outputPath, atimeOf(inputInfo), inputInfo.ModTime()); err != nil {
			w.reporter.Errorf("failed to restore timestamps on `%s': %v", outputPath, err)
		}
	}

	st.markKeep(outputPath)
	w.reporter.Copied(inputPath, outputPath)
}

func copyFileWithMode(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}

// stem returns p's basename without its final extension.
func stem(p string) string {
	base := filepath.Base(p)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}
