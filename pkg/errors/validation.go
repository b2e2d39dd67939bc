package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePath validates a user-supplied filesystem path (a project root,
// a source path or an output file). Absolute and relative paths are both
// accepted since the tool runs locally on the user's own tree.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a diagram output path. On top of
// [ValidatePath] it requires a file name with an .svg extension, since every
// backend emits SVG.
func ValidateOutputPath(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}
	if !strings.EqualFold(filepath.Ext(base), ".svg") {
		return New(ErrCodeInvalidPath, "output path must end in .svg: %q", path)
	}

	return nil
}
