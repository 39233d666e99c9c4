package file

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
)

// Prepend writes content in front of the current content of path, keeping
// the file mode. The file is rewritten in place, so an interrupted write
// can leave it truncated.
func Prepend(path, content string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return goerr.Wrap(err, "failed to stat file", goerr.V("path", path))
	}

	old, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read file", goerr.V("path", path))
	}

	data := make([]byte, 0, len(content)+len(old))
	data = append(data, content...)
	data = append(data, old...)

	if err := os.WriteFile(path, data, fi.Mode().Perm()); err != nil {
		return goerr.Wrap(err, "failed to write file", goerr.V("path", path))
	}

	return nil
}

// Exists reports whether path exists and is a regular file
func Exists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
