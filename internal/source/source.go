// Package source loads program text from disk for the file-runner CLI
// mode, translating host I/O failures into the exit-code-74 contract
// spec.md assigns to "file read failure".
package source

import (
	"fmt"
	"os"
)

// ReadError wraps a failure to load a source file. Its presence (as
// opposed to a parse or eval error) is what tells the CLI to exit 74.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %s", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Load reads the file at path and returns its contents, or a *ReadError
// on any os-level failure (missing file, permission denied, directory).
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return string(data), nil
}
