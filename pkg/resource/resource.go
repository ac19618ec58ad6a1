package resource

import (
	"io"
	"os"

	"github.com/ib-77/faultline/pkg/rop"
	"github.com/ib-77/faultline/pkg/rop/kind"
)

const createPerm os.FileMode = 0o666

// Files performs file operations on an FS.
type Files struct {
	fs FS
}

func New(fsys FS) *Files {
	if fsys == nil {
		fsys = OSFS{}
	}
	return &Files{fs: fsys}
}

var std = New(OSFS{})

func (f *Files) Open(name string) rop.Result[File, *kind.Error] {
	return f.openFile("open", name, os.O_RDONLY, 0)
}

// Create truncates an existing file.
func (f *Files) Create(name string) rop.Result[File, *kind.Error] {
	return f.openFile("create", name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, createPerm)
}

// OpenOrCreate opens name and creates it only when it does not exist.
// Any other failure is returned as is.
func (f *Files) OpenOrCreate(name string) rop.Result[File, *kind.Error] {
	opened := f.Open(name)
	if err, failed := opened.Failure(); failed && err.Kind() == kind.NotFound {
		return f.Create(name)
	}
	return opened
}

func (f *Files) ReadString(name string) rop.Result[string, *kind.Error] {
	return rop.Do(func(fr *rop.Frame[*kind.Error]) rop.Result[string, *kind.Error] {
		file := rop.Try(fr, f.Open(name))
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			fr.Fail(kind.Wrap("read", name, err))
		}
		return rop.Success[string, *kind.Error](string(data))
	})
}

func (f *Files) Remove(name string) rop.Result[rop.Unit, *kind.Error] {
	if err := f.fs.Remove(name); err != nil {
		return rop.Fail[rop.Unit](kind.Wrap("remove", name, err))
	}
	return rop.Success[rop.Unit, *kind.Error](rop.Unit{})
}

func (f *Files) openFile(op, name string, flag int, perm os.FileMode) rop.Result[File, *kind.Error] {
	file, err := f.fs.OpenFile(name, flag, perm)
	if err != nil {
		return rop.Fail[File](kind.Wrap(op, name, err))
	}
	return rop.Success[File, *kind.Error](file)
}

func Open(name string) rop.Result[File, *kind.Error]         { return std.Open(name) }
func Create(name string) rop.Result[File, *kind.Error]       { return std.Create(name) }
func OpenOrCreate(name string) rop.Result[File, *kind.Error] { return std.OpenOrCreate(name) }
func ReadString(name string) rop.Result[string, *kind.Error] { return std.ReadString(name) }
func Remove(name string) rop.Result[rop.Unit, *kind.Error]   { return std.Remove(name) }
