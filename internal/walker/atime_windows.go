//go:build windows

package walker

import (
	"os"
	"time"
)

// atimeOf falls back to ModTime on Windows: preserving access time isn't
// load-bearing for this tool's freshness/mirror semantics, only mtime is.
func atimeOf(fi os.FileInfo) time.Time {
	return fi.ModTime()
}
