package patch

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomically writes data to outPath through a temporary file in the
// same directory that is renamed into place. An existing file keeps its
// permission bits; a new one gets 0644.
func WriteFileAtomically(outPath string, data []byte) error {
	if outPath == "" {
		return fmt.Errorf("outPath is empty")
	}

	mode := os.FileMode(0o644)
	if fi, err := os.Stat(outPath); err == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// Removing after a successful rename is a no-op.
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, outPath); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
