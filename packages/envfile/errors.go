package envfile

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectoryNotFound is returned when the target directory does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrNotADirectory is returned when the target exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// DirectoryError reports an unusable target directory.
type DirectoryError struct {
	Path string
	Err  error // ErrDirectoryNotFound or ErrNotADirectory
}

func (e *DirectoryError) Error() string {
	if errors.Is(e.Err, ErrNotADirectory) {
		return fmt.Sprintf("Invalid directory input: %s is not a directory.", e.Path)
	}
	return fmt.Sprintf("Invalid directory input: %s doesn't exist.", e.Path)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}
