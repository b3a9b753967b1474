package treelist

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrFilterPanic wraps the value recovered from a Filter that panicked.
var ErrFilterPanic = errors.New("treelist: filter panicked")

// ErrReadPanic wraps the value recovered from a FileSystem method that
// panicked while enumerating a directory.
var ErrReadPanic = errors.New("treelist: directory read panicked")

const (
	opReadDirectories = "read directories"
	opReadFiles       = "read files"
	opFilter          = "filter"
)

// WalkError describes a failure that was absorbed during a listing. The walk
// carries on after every WalkError; they are reported for diagnostics only.
type WalkError struct {
	Op   string // "read directories", "read files" or "filter"
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *WalkError) Unwrap() error { return e.Err }

// IsInaccessible reports whether err means a path could not be read because
// it is missing or access was denied.
func IsInaccessible(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, fs.ErrNotExist)
}
