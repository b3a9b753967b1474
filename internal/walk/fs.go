package treelist

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/karrick/godirwalk"
	"github.com/spf13/afero"
)

// FileSystem enumerates the immediate children of a directory.
// Both methods return full paths built with filepath.Join. Errors should wrap
// fs.ErrPermission or fs.ErrNotExist when the directory is inaccessible, so
// the walker can tell expected failures from unexpected ones.
type FileSystem interface {
	ReadDirectories(dir string) ([]string, error)
	ReadFiles(dir string) ([]string, error)
}

// OSFileSystem reads the host filesystem with godirwalk.
//
// An entry counts as a directory only when it is a directory itself, so
// symbolic links are never descended into and link cycles cannot trap the
// walk. Links to files are reported as files; links to directories are
// reported by neither method.
//
// The zero value is ready to use.
type OSFileSystem struct {
	scratch sync.Pool
}

// NewOSFileSystem returns a FileSystem backed by the operating system.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadDirectories implements FileSystem.
func (o *OSFileSystem) ReadDirectories(dir string) ([]string, error) {
	return o.read(dir, true)
}

// ReadFiles implements FileSystem.
func (o *OSFileSystem) ReadFiles(dir string) ([]string, error) {
	return o.read(dir, false)
}

func (o *OSFileSystem) read(dir string, wantDirs bool) ([]string, error) {
	bufp, _ := o.scratch.Get().(*[]byte)
	if bufp == nil {
		buf := make([]byte, godirwalk.MinimumScratchBufferSize)
		bufp = &buf
	}
	defer o.scratch.Put(bufp)

	dirents, err := godirwalk.ReadDirents(dir, *bufp)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(dirents))
	for _, de := range dirents {
		if de.IsSymlink() {
			if wantDirs {
				continue
			}
			if isDir, err := de.IsDirOrSymlinkToDir(); err == nil && isDir {
				continue
			}
		} else if de.IsDir() != wantDirs {
			continue
		}
		paths = append(paths, filepath.Join(dir, de.Name()))
	}
	return paths, nil
}

// AferoFileSystem adapts an afero.Fs, for example an in-memory tree or a
// base-path restricted view of the OS filesystem.
type AferoFileSystem struct {
	Fs afero.Fs
}

// NewAferoFileSystem wraps fs.
func NewAferoFileSystem(fs afero.Fs) *AferoFileSystem {
	return &AferoFileSystem{Fs: fs}
}

// ReadDirectories implements FileSystem.
func (a *AferoFileSystem) ReadDirectories(dir string) ([]string, error) {
	return a.read(dir, true)
}

// ReadFiles implements FileSystem.
func (a *AferoFileSystem) ReadFiles(dir string) ([]string, error) {
	return a.read(dir, false)
}

func (a *AferoFileSystem) read(dir string, wantDirs bool) ([]string, error) {
	infos, err := afero.ReadDir(a.Fs, dir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(infos))
	for _, info := range infos {
		path := filepath.Join(dir, info.Name())
		if info.Mode()&os.ModeSymlink != 0 {
			if wantDirs {
				continue
			}
			if target, err := a.Fs.Stat(path); err == nil && target.IsDir() {
				continue
			}
		} else if info.IsDir() != wantDirs {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}
