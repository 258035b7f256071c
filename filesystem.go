package clipdata

import (
	"errors"
	"io/fs"
)

// FileSystem is the set of filesystem primitives the pipelines need. Writes replace the whole
// file; implementations must not expose partially written content.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
