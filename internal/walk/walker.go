// Package treelist provides concurrent, filter-driven listing of the
// directories and files beneath a root path.
//
// Every subdirectory gets its own goroutine and each directory level joins
// before its results are merged upward. Failures are absorbed at the smallest
// scope: an unreadable directory contributes nothing, a panicking filter drops
// one candidate, and the call always returns whatever it collected.
package treelist

import (
	"fmt"
	"time"

	"github.com/TFMV/treelist/internal/collect"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// PathList is the result of a listing.
type PathList = collect.AppendList[string]

// LogLevel defines the verbosity of logging.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// Options configures a Walker.
type Options struct {
	// FS enumerates directories. Defaults to the operating system.
	FS FileSystem

	// Logger receives diagnostics. When nil one is built from LogLevel.
	Logger   *zap.Logger
	LogLevel LogLevel

	// OnError, if set, is called for every absorbed failure. It may be
	// called from many goroutines at once.
	OnError func(err *WalkError)
}

// Walker lists directories and files concurrently. A Walker holds no state
// between calls and is safe for concurrent use.
type Walker struct {
	fs      FileSystem
	logger  *zap.Logger
	onError func(err *WalkError)
}

// NewWalker creates a Walker from opts.
func NewWalker(opts Options) *Walker {
	w := &Walker{
		fs:      opts.FS,
		logger:  opts.Logger,
		onError: opts.OnError,
	}
	if w.fs == nil {
		w.fs = NewOSFileSystem()
	}
	if w.logger == nil {
		w.logger = createLogger(opts.LogLevel)
	}
	return w
}

// ListDirectories lists the directories under root on the host filesystem.
// See Walker.ListDirectories.
func ListDirectories(root string, recursive bool, filter Filter) *PathList {
	w := NewWalker(Options{LogLevel: LogLevelWarn})
	defer w.logger.Sync()
	return w.ListDirectories(root, recursive, filter)
}

// ListFiles lists the files under root on the host filesystem.
// See Walker.ListFiles.
func ListFiles(root string, recursive bool, filter Filter) *PathList {
	w := NewWalker(Options{LogLevel: LogLevelWarn})
	defer w.logger.Sync()
	return w.ListFiles(root, recursive, filter)
}

// ListDirectories returns the immediate subdirectories of root that pass
// filter, and with recursive set, their passing descendants too. A directory
// rejected by filter is not descended into, so its whole subtree is left out.
//
// If root cannot be read the result is empty.
func (w *Walker) ListDirectories(root string, recursive bool, filter Filter) *PathList {
	list, _ := w.ListDirectoriesWithStats(root, recursive, filter)
	return list
}

// ListFiles returns the files directly inside root that pass filter, and with
// recursive set, the passing files of every directory below root. The
// directories scanned are never filtered: filter applies to file paths only.
//
// Directories that cannot be read contribute nothing.
func (w *Walker) ListFiles(root string, recursive bool, filter Filter) *PathList {
	list, _ := w.ListFilesWithStats(root, recursive, filter)
	return list
}

// ListDirectoriesWithStats is ListDirectories that also reports Stats.
func (w *Walker) ListDirectoriesWithStats(root string, recursive bool, filter Filter) (*PathList, Stats) {
	r := w.newRun()
	w.logger.Debug("listing directories", zap.String("root", root), zap.Bool("recursive", recursive))

	list := r.listDirectories(root, recursive, filter)
	return list, r.finish("directories", root, list)
}

// ListFilesWithStats is ListFiles that also reports Stats.
func (w *Walker) ListFilesWithStats(root string, recursive bool, filter Filter) (*PathList, Stats) {
	r := w.newRun()
	w.logger.Debug("listing files", zap.String("root", root), zap.Bool("recursive", recursive))

	list := r.listFiles(root, recursive, filter)
	return list, r.finish("files", root, list)
}

// run holds the state of one top-level call.
type run struct {
	*Walker
	stats counters
	start time.Time
}

func (w *Walker) newRun() *run {
	return &run{Walker: w, start: time.Now()}
}

func (r *run) finish(kind, root string, list *PathList) Stats {
	stats := r.stats.snapshot(list.Len(), time.Since(r.start))
	r.logger.Debug("listing finished",
		zap.String("kind", kind),
		zap.String("root", root),
		zap.Int64("matches", stats.Matches),
		zap.Int64("dirs_read", stats.DirsRead),
		zap.Int64("inaccessible", stats.Inaccessible),
		zap.Duration("elapsed", stats.ElapsedTime),
	)
	return stats
}

// listDirectories fans out one goroutine per subdirectory of root. Each
// recursive call builds its own list, which is merged into this level's list
// only after that subtree has joined.
func (r *run) listDirectories(root string, recursive bool, filter Filter) *PathList {
	out := collect.NewAppendList[string]()

	dirs, ok := r.read(opReadDirectories, root, r.fs.ReadDirectories)
	if !ok {
		return out
	}

	var wg conc.WaitGroup
	for _, dir := range dirs {
		wg.Go(func() {
			if !r.match(filter, dir) {
				return
			}
			out.Append(dir)
			if recursive {
				out.Merge(r.listDirectories(dir, true, filter))
			}
		})
	}
	wg.Wait()

	return out
}

// listFiles gathers the full, unfiltered directory set first and then reads
// the files of every directory in parallel.
func (r *run) listFiles(root string, recursive bool, filter Filter) *PathList {
	dirs := collect.NewAppendList(root)
	if recursive {
		// Directories are counted once, by the file pass below.
		gather := &run{Walker: r.Walker, start: r.start}
		dirs.Merge(gather.listDirectories(root, true, nil))
		r.stats.inaccessible.Add(gather.stats.inaccessible.Load())
		r.stats.unexpected.Add(gather.stats.unexpected.Load())
	}

	out := collect.NewAppendList[string]()
	var wg conc.WaitGroup
	for _, dir := range dirs.All() {
		wg.Go(func() {
			files, ok := r.read(opReadFiles, dir, r.fs.ReadFiles)
			if !ok {
				return
			}

			matched := files[:0]
			for _, file := range files {
				if r.match(filter, file) {
					matched = append(matched, file)
				}
			}
			out.AppendAll(matched...)
		})
	}
	wg.Wait()

	return out
}

// read enumerates dir with readDir. Errors and panics raised by the
// FileSystem are reported and leave dir without children.
func (r *run) read(op, dir string, readDir func(string) ([]string, error)) ([]string, bool) {
	var paths []string
	var err error
	var pc panics.Catcher
	pc.Try(func() { paths, err = readDir(dir) })
	if rec := pc.Recovered(); rec != nil {
		err = fmt.Errorf("%w: %v", ErrReadPanic, rec.Value)
	}
	if err != nil {
		r.report(op, dir, err)
		return nil, false
	}
	r.stats.dirsRead.Inc()
	return paths, true
}

// match applies filter to path. A panic inside the filter is recovered and
// counts as a rejection.
func (r *run) match(filter Filter, path string) bool {
	if filter == nil {
		return true
	}

	var keep bool
	var pc panics.Catcher
	pc.Try(func() { keep = filter(path) })
	if rec := pc.Recovered(); rec != nil {
		r.report(opFilter, path, fmt.Errorf("%w: %v", ErrFilterPanic, rec.Value))
		return false
	}
	return keep
}

// report classifies an absorbed failure, logs it and hands it to OnError.
func (r *run) report(op, path string, err error) {
	werr := &WalkError{Op: op, Path: path, Err: err}

	switch {
	case op == opFilter:
		r.stats.filterPanics.Inc()
		r.logger.Warn("filter failed", zap.String("path", path), zap.Error(err))
	case IsInaccessible(err):
		r.stats.inaccessible.Inc()
		r.logger.Debug("skipping inaccessible directory", zap.String("op", op), zap.String("path", path), zap.Error(err))
	default:
		r.stats.unexpected.Inc()
		r.logger.Error("unexpected error, continuing", zap.String("op", op), zap.String("path", path), zap.Error(err))
	}

	if r.onError != nil {
		r.onError(werr)
	}
}

// createLogger creates a zap logger with the specified log level.
func createLogger(level LogLevel) *zap.Logger {
	var config zap.Config

	switch level {
	case LogLevelError:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	case LogLevelWarn:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case LogLevelInfo:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelDebug:
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
