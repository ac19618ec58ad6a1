package resource

import (
	"io"
	"os"
)

// File is the handle returned by an FS.
type File interface {
	io.ReadWriteCloser
	Name() string
}

// FS is the file system seen by Files.
type FS interface {
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Remove(name string) error
}

// OSFS is the host file system.
type OSFS struct{}

func (OSFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (OSFS) Remove(name string) error {
	return os.Remove(name)
}
