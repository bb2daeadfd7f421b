package rat

import (
	"io"
	"io/fs"
	"os"
)

// Filesystem gives the dispatcher access to the inputs.
type Filesystem interface {
	// Lstat describes name without following a final symbolic link.
	Lstat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

// OSFilesystem is the Filesystem of the running process.
type OSFilesystem struct{}

func (OSFilesystem) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (OSFilesystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

var _ Filesystem = OSFilesystem{}
