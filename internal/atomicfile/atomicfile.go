// Package atomicfile replaces files through a temporary sibling and a rename,
// so readers never see a partial write.
package atomicfile

import (
	"os"
	"path/filepath"

	"github.com/samber/oops"
)

const defaultDirPerm = 0o750

// WriteFile writes data to path atomically, creating parent directories as
// needed. Errors carry the WRITE_FAILED code.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", dir).
			Wrapf(err, "creating destination directory")
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "creating temporary file")
	}

	tempPath := tempFile.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return oops.
			Code("WRITE_FAILED").
			With("path", tempPath).
			Wrapf(err, "writing temporary file")
	}

	if err := tempFile.Chmod(perm); err != nil {
		_ = tempFile.Close()
		return oops.
			Code("WRITE_FAILED").
			With("path", tempPath).
			Wrapf(err, "setting file mode")
	}

	if err := tempFile.Close(); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", tempPath).
			Wrapf(err, "closing temporary file")
	}

	if err := os.Rename(tempPath, path); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("from", tempPath).
			With("to", path).
			Wrapf(err, "replacing destination file")
	}

	return nil
}
