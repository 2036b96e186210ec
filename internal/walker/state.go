package walker

import (
	"path/filepath"
	"strings"
)

// dirState is private to one top-level directory input, matching spec.md's
// Walk State: the output root and the traversal's current output
// directory, the create-output-directory latch, and the kept set consumed
// by mirror deletion once this input's traversal completes.
type dirState struct {
	rootInputDir  string
	rootOutputDir string

	currentOutputDir string
	outputDirCreated bool
	outputDirError   bool

	keptPaths map[string]bool
}

func newDirState(rootInput, rootOutput string) *dirState {
	return &dirState{
		rootInputDir:     rootInput,
		rootOutputDir:    rootOutput,
		currentOutputDir: rootOutput,
		keptPaths:        map[string]bool{},
	}
}

// markKeep protects outputPath and its immediate parent directory from
// mirror deletion. Grandparent directories are not protected by this call;
// an otherwise-empty intermediate directory two or more levels above a kept
// file can still be scheduled for deletion and fail harmlessly (its removal
// errors because a protected descendant still lives under it).
func (s *dirState) markKeep(outputPath string) {
	s.keptPaths[outputPath] = true
	s.keptPaths[filepath.Dir(outputPath)] = true
}

// comparePathsForDeletion orders a for deletion before b when b is a
// proper string prefix of a (which every ancestor directory of a is),
// guaranteeing post-order deletion (children removed before the
// directories that contain them). Otherwise it falls back to lexicographic
// order.
func comparePathsForDeletion(a, b string) bool {
	switch {
	case len(a) > len(b):
		if strings.HasPrefix(a, b) {
			return true
		}
		return a < b
	case len(b) > len(a):
		if strings.HasPrefix(b, a) {
			return false
		}
		return a < b
	default:
		return a < b
	}
}
