// Package diff renders the difference between a fragment and its rewrite.
package diff

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// Unified returns a unified diff from original to rewritten, labeled
// a/<path> and b/<path>. It returns an empty string when they are equal.
func Unified(path, original, rewritten string) string {
	return udiff.Unified("a/"+path, "b/"+path, original, rewritten)
}

// Stat counts the added and removed lines of a unified diff. File headers
// and hunk headers are not counted.
func Stat(unified string) (added, removed int) {
	for line := range strings.SplitSeq(unified, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}

	return added, removed
}
