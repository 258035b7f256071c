// Package osfs implements clipdata.FileSystem on the local disk. Writes go to a temporary file in
// the target directory and are renamed into place, so readers never see partial content.
package osfs

import (
	"io/fs"
	"os"
	"path/filepath"
)

type FS struct{}

func New() FS {
	return FS{}
}

func (FS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (FS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (FS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (FS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// WriteFile atomically replaces name with data.
func (FS) WriteFile(name string, data []byte, perm fs.FileMode) (err error) {
	dir := filepath.Dir(name)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(name)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, name)
}
