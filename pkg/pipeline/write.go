package pipeline

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/classtower/pkg/errors"
)

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers see either the old file or the new one.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "create temporary file in %s", dir)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", path)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "replace %s", path)
	}
	return nil
}
