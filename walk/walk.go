package walk

import (
	"github.com/TFMV/treelist/internal/collect"
	internal "github.com/TFMV/treelist/internal/walk"
	"github.com/spf13/afero"
)

// Re-export the types from the internal package
type (
	// PathList is the concurrent append-only list a listing returns.
	PathList = internal.PathList

	// Filter decides whether a candidate path is kept. nil keeps everything.
	Filter = internal.Filter

	// FileSystem enumerates the immediate children of a directory.
	FileSystem = internal.FileSystem

	// Options configures a Walker.
	Options = internal.Options

	// Walker lists directories and files concurrently.
	Walker = internal.Walker

	// WalkError describes a failure absorbed during a listing.
	WalkError = internal.WalkError

	// Stats summarizes one listing call.
	Stats = internal.Stats

	// LogLevel defines the verbosity of logging.
	LogLevel = internal.LogLevel
)

// Log levels
const (
	LogLevelError = internal.LogLevelError
	LogLevelWarn  = internal.LogLevelWarn
	LogLevelInfo  = internal.LogLevelInfo
	LogLevelDebug = internal.LogLevelDebug
)

// ErrFilterPanic wraps the value recovered from a Filter that panicked.
var ErrFilterPanic = internal.ErrFilterPanic

// ErrReadPanic wraps the value recovered from a FileSystem that panicked.
var ErrReadPanic = internal.ErrReadPanic

// ListDirectories returns the directories under root that pass filter.
// With recursive set, passing directories are descended into; rejected ones
// are pruned with their whole subtree.
func ListDirectories(root string, recursive bool, filter Filter) *PathList {
	return internal.ListDirectories(root, recursive, filter)
}

// ListFiles returns the files under root whose paths pass filter.
// With recursive set every directory below root is scanned.
func ListFiles(root string, recursive bool, filter Filter) *PathList {
	return internal.ListFiles(root, recursive, filter)
}

// NewWalker creates a Walker with explicit options.
func NewWalker(opts Options) *Walker {
	return internal.NewWalker(opts)
}

// NewPathList creates an empty PathList, e.g. for merging several listings.
func NewPathList(paths ...string) *PathList {
	return collect.NewAppendList(paths...)
}

// OSFileSystem returns the default FileSystem backed by the host.
func OSFileSystem() FileSystem {
	return internal.NewOSFileSystem()
}

// AferoFileSystem adapts any afero.Fs.
func AferoFileSystem(fs afero.Fs) FileSystem {
	return internal.NewAferoFileSystem(fs)
}

// IsInaccessible reports whether err means a path was missing or access was
// denied.
func IsInaccessible(err error) bool {
	return internal.IsInaccessible(err)
}

// Filters
var (
	AcceptAll    Filter = internal.AcceptAll
	HasExtension        = internal.HasExtension
	HasSuffix           = internal.HasSuffix
	MatchRegexp         = internal.MatchRegexp
	ExcludeNames        = internal.ExcludeNames
	Not                 = internal.Not
	And                 = internal.And
	Or                  = internal.Or
)
