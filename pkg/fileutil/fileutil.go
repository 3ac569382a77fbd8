// =============================================================================
// moxbox - File Utilities
// =============================================================================
//
// Small filesystem helpers shared by the writer and the CLI commands.
// Output files are staged under unique temp names and renamed into place,
// so a crash mid-write never leaves a truncated file at the destination.
//
// =============================================================================

package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// EnsureDir creates a directory (and any parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// TempPath returns a unique sibling temp name for the given path.
// Keeping the temp file in the same directory makes the final rename
// atomic on POSIX filesystems.
func TempPath(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	id := uuid.New().String()[:8]
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, id))
}

// WriteFileAtomic writes data to path via a temp file and rename.
func WriteFileAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}

	tmp := TempPath(path)
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move %s into place: %w", tmp, err)
	}
	return nil
}
