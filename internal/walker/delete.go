package walker

import (
	"os"
	"path/filepath"
	"sort"
)

// mirrorDelete implements spec.md §4.5.6. It only runs for directory
// inputs, after that input's own traversal has finished.
func (w *Walker) mirrorDelete(st *dirState) {
	if st.outputDirError && !st.outputDirCreated {
		// The root output directory itself never came into existence;
		// there is nothing to walk.
		return
	}
	if _, err := os.Stat(st.rootOutputDir); err != nil {
		return
	}

	var toDelete []string
	w.walkForDeletion(st.rootOutputDir, st, &toDelete)

	sort.Slice(toDelete, func(i, j int) bool {
		return comparePathsForDeletion(toDelete[i], toDelete[j])
	})

	for _, path := range toDelete {
		if !w.cfg.DryRun {
			if err := os.Remove(path); err != nil {
				w.reporter.Errorf("failed to delete `%s': %v", path, err)
				continue
			}
		}
		w.reporter.Deleted(path)
	}
}

// walkForDeletion mirrors the original's unconditional recursion: a
// directory is scheduled for deletion when unkept, but its children are
// always visited regardless, since post-order deletion sorts it out.
func (w *Walker) walkForDeletion(dirPath string, st *dirState, out *[]string) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		w.reporter.Errorf("failed to enumerate `%s' for deletion: %v", dirPath, err)
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		childPath := filepath.Join(dirPath, entry.Name())
		if entry.IsDir() {
			if !st.keptPaths[childPath] {
				*out = append(*out, childPath)
			}
			w.walkForDeletion(childPath, st, out)
			continue
		}
		if !st.keptPaths[childPath] {
			*out = append(*out, childPath)
		}
	}
}
