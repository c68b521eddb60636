// Package fsutil provides filesystem helpers for rewriting documents
// safely in place.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is used for targets that do not exist yet.
const DefaultFileMode os.FileMode = 0644

// WriteAtomic replaces the file at path with content using a temp file in
// the same directory and a rename, so readers never observe a partial
// write. An existing file keeps its mode. On error the original file is
// left untouched.
func WriteAtomic(path string, content []byte) error {
	mode := DefaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	renamed := false
	defer func() {
		if !renamed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	renamed = true
	return nil
}
