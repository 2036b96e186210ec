package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// traverse implements spec.md §4.5.3: depth-first recursion over dirPath,
// children visited in sorted order. A failure to enumerate dirPath itself
// is a traversal error and aborts this input's walk (caught once by the
// caller), matching the original's single try/catch around the whole
// directory walk rather than per-subdirectory recovery.
func (w *Walker) traverse(dirPath string, st *dirState) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to enumerate `%s': %w", dirPath, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		childPath := filepath.Join(dirPath, entry.Name())
		if entry.IsDir() {
			prevDir, prevCreated, prevErr := st.currentOutputDir, st.outputDirCreated, st.outputDirError
			if !w.enterDirectory(childPath, st) {
				continue
			}
			err := w.traverse(childPath, st)
			// Restore this directory's output state for its remaining entries.
			st.currentOutputDir, st.outputDirCreated, st.outputDirError = prevDir, prevCreated, prevErr
			if err != nil {
				return err
			}
			continue
		}
		w.visitFile(childPath, st)
	}
	return nil
}

// enterDirectory is spec.md §4.5.3's "directory enter" hook: it reports
// entry, decides whether to recurse, and (when recursing) repoints
// currentOutputDir at this directory's mirrored location.
func (w *Walker) enterDirectory(dirPath string, st *dirState) bool {
	w.reporter.Entering(filepath.Base(dirPath))

	if !w.cfg.Recursive {
		return false
	}

	rel, err := filepath.Rel(st.rootInputDir, dirPath)
	if err != nil {
		rel = filepath.Base(dirPath)
	}

	st.currentOutputDir = filepath.Join(st.rootOutputDir, w.filterRelPath(rel))
	st.outputDirCreated = false
	st.outputDirError = false
	return true
}

// filterRelPath applies the renaming filter to each component of rel
// independently, never to the joined path as a whole, so a filter can never
// introduce or consume a path separator.
func (w *Walker) filterRelPath(rel string) string {
	parts := strings.Split(rel, string(filepath.Separator))
	for i, p := range parts {
		parts[i] = w.filter.Apply(p)
	}
	return filepath.Join(parts...)
}
