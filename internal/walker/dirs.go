package walker

import "os"

// createOutputDir implements spec.md §4.5.5. It is a noop once a directory
// has been created (or found already errored) for this dirState, and a
// noop under dry-run, since dry-run never touches the filesystem.
func (w *Walker) createOutputDir(st *dirState) bool {
	if st.outputDirCreated {
		return true
	}
	if st.outputDirError {
		return false
	}
	if w.cfg.DryRun {
		st.outputDirCreated = true
		return true
	}

	if fi, err := os.Stat(st.currentOutputDir); err == nil {
		if !fi.IsDir() {
			w.reporter.Errorf("`%s' exists and is not a directory", st.currentOutputDir)
			st.outputDirError = true
			return false
		}
		st.outputDirCreated = true
		return true
	}

	if err := os.MkdirAll(st.currentOutputDir, 0o777); err != nil {
		w.reporter.Errorf("failed to create `%s': %v", st.currentOutputDir, err)
		st.outputDirError = true
		return false
	}
	st.outputDirCreated = true
	return true
}
