package envfile

import (
	"os"
	"path/filepath"
)

const (
	// FileName is the name of the file written inside the target directory.
	FileName = ".env"

	// DefaultFileMode is used when Args.FileMode is zero.
	DefaultFileMode os.FileMode = 0644
)

// Path returns the location of the .env file for directory.
func Path(directory string) string {
	return filepath.Join(directory, FileName)
}

// ValidateDirectory checks that path exists and is a directory. Any failure to
// stat the path is reported as ErrDirectoryNotFound.
func ValidateDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &DirectoryError{Path: path, Err: ErrDirectoryNotFound}
	}
	if !info.IsDir() {
		return &DirectoryError{Path: path, Err: ErrNotADirectory}
	}
	return nil
}

// WriteFile creates or truncates path and writes content to it. Errors from
// the filesystem are returned as they are.
func WriteFile(path, content string, mode os.FileMode) error {
	if mode == 0 {
		mode = DefaultFileMode
	}
	return os.WriteFile(path, []byte(content), mode)
}
