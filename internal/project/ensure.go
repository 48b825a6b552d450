package project

import (
	"fmt"
	"io"
	"os"
)

// DirPerm is the mode used for directories the bootstrapper creates.
const DirPerm os.FileMode = 0755

// EnsureDir creates path if it does not exist and reports progress to w.
// An existing directory is left untouched; an existing non-directory is an
// error.
func EnsureDir(w io.Writer, path string) (bool, error) {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return false, nil
		}
		return false, fmt.Errorf("%s exists but is not a directory", path)
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking directory %s: %w", path, err)
	}

	if err := os.MkdirAll(path, DirPerm); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return true, nil
}

// Exists reports whether path exists, whatever its type.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}
