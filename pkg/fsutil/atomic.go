// Package fsutil provides safe file rewriting for the CLI: atomic writes
// and sidecar backups.
package fsutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission mode for files that do not exist yet.
const DefaultFileMode os.FileMode = 0644

// WriteAtomic replaces path with content via a temp file in the same
// directory and a rename, so a crash mid-write leaves the original intact.
// An existing file keeps its permission bits; a new file gets
// DefaultFileMode.
func WriteAtomic(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	mode := DefaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("stage replacement: %w", err)
	}

	_, err = tmp.Write(content)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), mode)
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteAtomicIfChanged writes only when content differs from what is on
// disk, reporting whether a write happened. Skipping identical content keeps
// file mtimes stable for build tools watching the files.
func WriteAtomicIfChanged(ctx context.Context, path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, content):
		return false, nil
	case err != nil && !os.IsNotExist(err):
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := WriteAtomic(ctx, path, content); err != nil {
		return false, err
	}
	return true, nil
}
